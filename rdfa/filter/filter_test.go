package filter

import (
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher_Excludes(t *testing.T) {
	m := NewMatcher("*.tmp", "/photos/old", "node_modules", "  ")

	cases := map[string]bool{
		"./a/b.tmp":                 true,
		"/abs/c.tmp":                true,
		"./photos/old/a.jpg":        true,
		"./x/photos/old/a.jpg":      false,
		"./app/node_modules/lib.js": true,
		"./photos/a.jpg":            false,
		"./tmp/readme":              false,
	}
	for name, want := range cases {
		assert.Equal(t, want, m.Excludes(name), name)
	}

	assert.Equal(t, []string{"*.tmp", "/photos/old", "node_modules"}, m.Patterns())
}

func TestMatcher_Empty(t *testing.T) {
	var nilMatcher *Matcher
	assert.False(t, nilMatcher.Excludes("./a"))
	assert.False(t, NewMatcher().Excludes("./a"))
	assert.Nil(t, nilMatcher.Patterns())
}

func TestMatcher_Apply(t *testing.T) {
	input := strings.Join([]string{
		"DUPTYPE_FIRST_OCCURRENCE 1 1 10 1 1 1 ./photos/a.jpg",
		"DUPTYPE_WITHIN_SAME_TREE -1 1 10 1 2 1 ./photos/old/a.jpg",
		"DUPTYPE_WITHIN_SAME_TREE -1 1 10 1 3 1 ./backup/a.jpg",
		"DUPTYPE_FIRST_OCCURRENCE 2 1 5 1 4 1 ./scratch.tmp",
		"DUPTYPE_WITHIN_SAME_TREE -2 1 5 1 5 1 ./keep/scratch",
		"DUPTYPE_FIRST_OCCURRENCE 3 1 7 1 6 1 ./music/a.mp3",
		"DUPTYPE_WITHIN_SAME_TREE -3 1 7 1 7 1 ./music/a.tmp",
	}, "\n")
	r, err := report.Read(strings.NewReader(input))
	require.NoError(t, err)

	filtered := NewMatcher("*.tmp", "/photos/old").Apply(r)

	require.Equal(t, 1, filtered.Len(), "groups with an excluded original or no copy left are dropped")
	g := filtered.At(0)
	require.Equal(t, 2, g.Len())
	assert.Equal(t, "./photos/a.jpg", g.At(0).Name)
	assert.Equal(t, "./backup/a.jpg", g.At(1).Name)
	assert.NoError(t, filtered.Validate())

	assert.Equal(t, 3, r.Len(), "the source report is untouched")

	t.Run("entries keeps order", func(t *testing.T) {
		kept := NewMatcher("/photos/old").Entries(r.At(0))
		require.Len(t, kept, 2)
		assert.Equal(t, "./photos/a.jpg", kept[0].Name)
	})

	t.Run("no patterns keeps everything", func(t *testing.T) {
		all := NewMatcher().Apply(r)
		assert.Equal(t, r.EntryCount(), all.EntryCount())
	})
}

func TestMatcher_ApplyKeepsGroupBoundaries(t *testing.T) {
	input := strings.Join([]string{
		"DUPTYPE_FIRST_OCCURRENCE 1 1 10 1 1 1 ./a/one",
		"DUPTYPE_WITHIN_SAME_TREE -1 1 10 1 2 1 ./a/two",
		"DUPTYPE_FIRST_OCCURRENCE 2 1 5 1 3 1 ./skip/x",
		"DUPTYPE_WITHIN_SAME_TREE -2 1 5 1 4 1 ./b/x",
		"DUPTYPE_FIRST_OCCURRENCE 1 1 10 1 5 1 ./c/one",
		"DUPTYPE_WITHIN_SAME_TREE -1 1 10 1 6 1 ./c/two",
	}, "\n")
	r, err := report.Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())

	filtered := NewMatcher("/skip").Apply(r)

	require.Equal(t, 2, filtered.Len(), "the two id 1 runs stay apart")
	for i := 0; i < filtered.Len(); i++ {
		g := filtered.At(i)
		assert.Equal(t, 2, g.Len())
		_, err := g.Duplicates()
		assert.NoError(t, err)
	}
	assert.Equal(t, "./c/one", filtered.At(1).At(0).Name)
}
