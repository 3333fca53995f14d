package indexing

import (
	"log/slog"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/report"

	"github.com/armon/go-radix"
)

// Position locates an entry inside a report.
type Position struct {
	Group int
	Entry int
}

// PathIndexStats tracks usage of the path index.
type PathIndexStats struct {
	TotalPaths    int64
	PathLookups   int64
	PrefixLookups int64
	Insertions    int64
}

// PathIndex maps entry names to their positions using a patricia tree, which
// gives O(k) exact lookups and cheap directory-prefix walks, k being the
// length of the name.
//
// Names are stored exactly as they appear in the report. The linear
// Report.FindGroupForEntryNamed stays the reference lookup; the index serves
// repeated and prefix queries.
type PathIndex struct {
	tree   *radix.Tree
	mu     sync.RWMutex
	logger *slog.Logger

	totalPaths    int64
	insertions    int64
	pathLookups   atomic.Int64
	prefixLookups atomic.Int64
}

// IndexOption customizes a PathIndex.
type IndexOption func(*PathIndex)

// WithLogger sets a custom logger
func WithLogger(logger *slog.Logger) IndexOption {
	return func(idx *PathIndex) {
		idx.logger = logger
	}
}

// NewPathIndex creates an empty path index.
func NewPathIndex(opts ...IndexOption) *PathIndex {
	idx := &PathIndex{
		tree:   radix.New(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// BuildPathIndex indexes every entry of r.
func BuildPathIndex(r *report.Report, opts ...IndexOption) *PathIndex {
	idx := NewPathIndex(opts...)
	for gi, g := range r.Groups() {
		for ei := 0; ei < g.Len(); ei++ {
			idx.Insert(g.At(ei).Name, Position{Group: gi, Entry: ei})
		}
	}
	idx.logger.Debug("path index built",
		"paths", idx.Size(),
		"groups", r.Len())
	return idx
}

// Insert records that name occurs at pos. A name may occur several times in
// a lenient report; positions are kept in insertion order.
func (idx *PathIndex) Insert(name string, pos Position) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	var positions []Position
	if existing, ok := idx.tree.Get(name); ok {
		positions = existing.([]Position)
	} else {
		idx.totalPaths++
	}
	idx.tree.Insert(name, append(positions, pos))
	idx.insertions++
}

// Lookup returns the positions of the entry named exactly name.
func (idx *PathIndex) Lookup(name string) ([]Position, bool) {
	idx.pathLookups.Add(1)

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	value, found := idx.tree.Get(name)
	if !found {
		idx.logger.Debug("path lookup miss", "path", name)
		return nil, false
	}
	positions := value.([]Position)
	return append([]Position(nil), positions...), true
}

// PrefixLookup returns the positions of every entry whose name starts with
// prefix, in lexical name order.
func (idx *PathIndex) PrefixLookup(prefix string) []Position {
	idx.prefixLookups.Add(1)

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var results []Position
	idx.tree.WalkPrefix(prefix, func(key string, value interface{}) bool {
		results = append(results, value.([]Position)...)
		return false // Continue walking
	})

	idx.logger.Debug("prefix lookup completed",
		"prefix", prefix,
		"results_count", len(results))

	return results
}

// GroupsUnder returns the sorted, distinct group indexes that have at least
// one entry inside directory dir. dir matches whole path segments only, so
// "./photo" does not match "./photos/a.jpg".
func (idx *PathIndex) GroupsUnder(dir string) []int {
	if dir != "" && !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	return distinctGroups(idx.PrefixLookup(dir))
}

// Size returns the number of distinct names in the index.
func (idx *PathIndex) Size() int64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.totalPaths
}

// GetStats returns a copy of the current statistics.
func (idx *PathIndex) GetStats() PathIndexStats {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return PathIndexStats{
		TotalPaths:    idx.totalPaths,
		Insertions:    idx.insertions,
		PathLookups:   idx.pathLookups.Load(),
		PrefixLookups: idx.prefixLookups.Load(),
	}
}

// WalkPaths calls fn for every name in lexical order until fn returns true.
func (idx *PathIndex) WalkPaths(fn func(name string, positions []Position) bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	idx.tree.Walk(func(key string, value interface{}) bool {
		return fn(key, value.([]Position))
	})
}

// LongestCommonPrefix returns the longest prefix shared by all names, which
// for a single-root scan is usually the scanned directory.
func (idx *PathIndex) LongestCommonPrefix() string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.tree.Len() == 0 {
		return ""
	}
	// Walk is lexical, so the first and last keys bound every other key.
	first, _, _ := idx.tree.Minimum()
	last, _, _ := idx.tree.Maximum()
	return commonPrefix(first, last)
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}

func distinctGroups(positions []Position) []int {
	seen := make(map[int]struct{}, len(positions))
	groups := make([]int, 0, len(positions))
	for _, p := range positions {
		if _, ok := seen[p.Group]; ok {
			continue
		}
		seen[p.Group] = struct{}{}
		groups = append(groups, p.Group)
	}
	sort.Ints(groups)
	return groups
}
