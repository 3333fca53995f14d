package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/export"
	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/report"
	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/workspace"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const results = `DUPTYPE_FIRST_OCCURRENCE 1 1 100 1 1 1 ./photos/a.jpg
DUPTYPE_WITHIN_SAME_TREE -1 2 100 1 2 1 ./photos/2019/a.jpg
DUPTYPE_FIRST_OCCURRENCE 2 1 30 1 3 1 ./music/b.mp3
DUPTYPE_OUTSIDE_TREE -2 1 30 2 4 2 /backup/b.mp3
DUPTYPE_WITHIN_SAME_TREE -2 1 30 1 5 1 ./photos/b.mp3
`

type fixture struct {
	router *gin.Engine
	id     uuid.UUID
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r, err := report.Read(strings.NewReader(results))
	require.NoError(t, err)

	m := workspace.NewManager()
	ws := m.Add("results.txt", r)
	return fixture{router: NewServer(m).SetupRouter(), id: ws.ID}
}

func (f fixture) get(t *testing.T, path string, out any) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec.Code
}

type groupsBody struct {
	Groups []export.GroupView `json:"groups"`
}

type errorBody struct {
	Error string `json:"error"`
}

func TestListAndGetReport(t *testing.T) {
	f := newFixture(t)

	var list struct {
		Reports []ReportInfo `json:"reports"`
	}
	require.Equal(t, http.StatusOK, f.get(t, "/reports", &list))
	require.Len(t, list.Reports, 1)
	assert.Equal(t, f.id, list.Reports[0].ID)

	var info ReportInfo
	require.Equal(t, http.StatusOK, f.get(t, "/reports/"+f.id.String(), &info))
	assert.Equal(t, "results.txt", info.Path)
	assert.Equal(t, int64(290), info.Summary.Size)
	assert.Equal(t, int64(160), info.Summary.SpaceToSave)
	assert.Equal(t, int64(130), info.Summary.SizeAfterDuplicateRemoval)

	t.Run("unknown report is 404", func(t *testing.T) {
		var body errorBody
		assert.Equal(t, http.StatusNotFound, f.get(t, "/reports/"+uuid.NewString(), &body))
		assert.Contains(t, body.Error, "workspace not found")
		assert.Equal(t, http.StatusNotFound, f.get(t, "/reports/garbage/groups", nil))
	})
}

func TestGroups(t *testing.T) {
	f := newFixture(t)
	base := "/reports/" + f.id.String()

	var all groupsBody
	require.Equal(t, http.StatusOK, f.get(t, base+"/groups", &all))
	require.Len(t, all.Groups, 2)
	assert.Equal(t, "./music/b.mp3", all.Groups[1].Original)

	t.Run("filtered by entry type", func(t *testing.T) {
		var body groupsBody
		require.Equal(t, http.StatusOK, f.get(t, base+"/groups?type=DUPTYPE_OUTSIDE_TREE", &body))
		require.Len(t, body.Groups, 1)
		assert.Equal(t, 1, body.Groups[0].Index)
	})

	t.Run("single group", func(t *testing.T) {
		var g export.GroupView
		require.Equal(t, http.StatusOK, f.get(t, base+"/groups/0", &g))
		assert.Equal(t, uint64(1), g.ID)
		assert.Len(t, g.Entries, 2)

		assert.Equal(t, http.StatusNotFound, f.get(t, base+"/groups/2", nil))
		assert.Equal(t, http.StatusBadRequest, f.get(t, base+"/groups/first", nil))
	})
}

func TestFind(t *testing.T) {
	f := newFixture(t)
	base := "/reports/" + f.id.String()

	var g export.GroupView
	require.Equal(t, http.StatusOK, f.get(t, base+"/find?name=/backup/b.mp3", &g))
	assert.Equal(t, 1, g.Index)

	var body errorBody
	assert.Equal(t, http.StatusNotFound, f.get(t, base+"/find?name=./nope", &body))
	assert.Contains(t, body.Error, "./nope")

	assert.Equal(t, http.StatusBadRequest, f.get(t, base+"/find", nil))
}

func TestPrefix(t *testing.T) {
	f := newFixture(t)
	base := "/reports/" + f.id.String()

	var body groupsBody
	require.Equal(t, http.StatusOK, f.get(t, base+"/prefix?path=./photos", &body))
	require.Len(t, body.Groups, 2)
	assert.Equal(t, 0, body.Groups[0].Index)
	assert.Equal(t, 1, body.Groups[1].Index)

	require.Equal(t, http.StatusOK, f.get(t, base+"/prefix?path=./music", &body))
	require.Len(t, body.Groups, 1)

	assert.Equal(t, http.StatusBadRequest, f.get(t, base+"/prefix", nil))
}

func TestStats(t *testing.T) {
	f := newFixture(t)

	var body struct {
		Groups      int   `json:"groups"`
		SpaceToSave int64 `json:"space_to_save"`
	}
	require.Equal(t, http.StatusOK, f.get(t, "/reports/"+f.id.String()+"/stats", &body))
	assert.Equal(t, 2, body.Groups)
	assert.Equal(t, int64(160), body.SpaceToSave)
}
