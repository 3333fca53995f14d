// Package filter hides report entries matching gitignore-style patterns.
package filter

import (
	"strings"

	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/report"

	ignore "github.com/sabhiram/go-gitignore"
)

// Matcher decides which entry names are excluded from listings.
// The zero value and a Matcher without patterns exclude nothing.
type Matcher struct {
	gi       *ignore.GitIgnore
	patterns []string
}

// NewMatcher compiles patterns using .gitignore syntax. Blank patterns are
// ignored.
func NewMatcher(patterns ...string) *Matcher {
	kept := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	m := &Matcher{patterns: kept}
	if len(kept) > 0 {
		m.gi = ignore.CompileIgnoreLines(kept...)
	}
	return m
}

// Patterns returns the compiled patterns.
func (m *Matcher) Patterns() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.patterns...)
}

// Excludes reports whether name matches one of the patterns. Names are
// matched relative to the scanned root, so a leading "./" or "/" is ignored.
func (m *Matcher) Excludes(name string) bool {
	if m == nil || m.gi == nil {
		return false
	}
	rel := strings.TrimPrefix(name, "./")
	rel = strings.TrimLeft(rel, "/")
	return m.gi.MatchesPath(rel)
}

// Entries returns the entries of g that are not excluded, in order.
func (m *Matcher) Entries(g *report.Group) []report.Entry {
	kept := make([]report.Entry, 0, g.Len())
	for i := 0; i < g.Len(); i++ {
		if e := g.At(i); !m.Excludes(e.Name) {
			kept = append(kept, e)
		}
	}
	return kept
}

// Apply returns a new report without the excluded entries. A group whose
// first entry is excluded is dropped whole, and so is a group left with no
// duplicate, so every remaining group still starts with its original.
// Surviving groups keep their boundaries, even when two runs of one id end up
// next to each other. r is not modified.
func (m *Matcher) Apply(r *report.Report) *report.Report {
	out := report.NewReport()
	for _, g := range r.Groups() {
		if m.Excludes(g.At(0).Name) {
			continue
		}
		kept := m.Entries(g)
		if len(kept) < 2 {
			continue
		}
		ng := report.NewGroup(kept[0])
		for _, e := range kept[1:] {
			ng.AddEntry(e)
		}
		out.AddGroup(ng)
	}
	return out
}
