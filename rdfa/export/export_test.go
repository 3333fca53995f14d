package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sample = `DUPTYPE_FIRST_OCCURRENCE 12 1 100 2049 11 1 ./a/x.bin
DUPTYPE_WITHIN_SAME_TREE -12 2 100 2049 12 1 ./a/b/x.bin
DUPTYPE_FIRST_OCCURRENCE 40 1 20 2049 13 1 ./notes with spaces.txt
DUPTYPE_OUTSIDE_TREE -40 1 20 2050 14 2 /mnt/other/notes with spaces.txt
DUPTYPE_OUTSIDE_TREE -40 1 20 2050 15 2 /mnt/other/copy.txt
`

func loadSample(t *testing.T) *report.Report {
	t.Helper()
	r, err := report.Read(strings.NewReader(sample))
	require.NoError(t, err)
	return r
}

func TestNewReportView(t *testing.T) {
	v := NewReportView(loadSample(t))

	assert.Equal(t, SummaryView{
		Groups:                    2,
		Entries:                   5,
		Size:                      260,
		SpaceToSave:               140,
		SizeAfterDuplicateRemoval: 120,
	}, v.Summary)

	require.Len(t, v.Groups, 2)
	g := v.Groups[1]
	assert.Equal(t, 1, g.Index)
	assert.Equal(t, uint64(40), g.ID)
	assert.Equal(t, "./notes with spaces.txt", g.Original)
	assert.Equal(t, int64(40), g.SpaceToSave)
	require.Len(t, g.Entries, 3)
	assert.Equal(t, report.DuplicateOutsideTree, g.Entries[2].Type)
	assert.Equal(t, int64(2050), g.Entries[2].Device)
}

func TestWriteText(t *testing.T) {
	r := loadSample(t)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# Automatically generated by rdfa\n"))
	assert.Contains(t, out, "DUPTYPE_OUTSIDE_TREE -40 1 20 2050 14 2 /mnt/other/notes with spaces.txt\n")

	t.Run("reads back to an equivalent report", func(t *testing.T) {
		back, err := report.Read(strings.NewReader(out), report.WithStrict(true))
		require.NoError(t, err)
		require.Equal(t, r.Len(), back.Len())
		for i := 0; i < r.Len(); i++ {
			assert.Equal(t, r.At(i).Entries(), back.At(i).Entries())
		}
	})
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, loadSample(t), FormatJSON))

	var decoded ReportView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, int64(140), decoded.Summary.SpaceToSave)
	assert.Contains(t, buf.String(), `"space_to_save": 140`)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, loadSample(t), FormatYAML))

	var decoded ReportView
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Groups, 2)
	assert.Equal(t, "./a/x.bin", decoded.Groups[0].Original)
	assert.Contains(t, buf.String(), "size_after_duplicate_removal: 120")
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, report.NewReport(), Format("xml"))
	assert.ErrorContains(t, err, `unsupported export format "xml"`)
}
