// Package stats derives distribution statistics from a duplicate report.
package stats

import (
	"context"
	"sort"
	"time"

	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/report"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Distribution summarizes one numeric attribute over all groups.
type Distribution struct {
	Count  int     `json:"count" yaml:"count"`
	Total  float64 `json:"total" yaml:"total"`
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"stddev" yaml:"stddev"`
	Median float64 `json:"median" yaml:"median"`
	P90    float64 `json:"p90" yaml:"p90"`
	Max    float64 `json:"max" yaml:"max"`
}

// ReportStats holds the aggregates of a report and the distributions of its
// groups.
type ReportStats struct {
	Groups                    int                      `json:"groups" yaml:"groups"`
	Entries                   int                      `json:"entries" yaml:"entries"`
	Size                      int64                    `json:"size" yaml:"size"`
	SpaceToSave               int64                    `json:"space_to_save" yaml:"space_to_save"`
	SizeAfterDuplicateRemoval int64                    `json:"size_after_duplicate_removal" yaml:"size_after_duplicate_removal"`
	WastedRatio               float64                  `json:"wasted_ratio" yaml:"wasted_ratio"`
	EntriesByType             map[report.EntryType]int `json:"entries_by_type" yaml:"entries_by_type"`
	GroupSize                 Distribution             `json:"group_size" yaml:"group_size"`
	GroupSpaceToSave          Distribution             `json:"group_space_to_save" yaml:"group_space_to_save"`
	CopiesPerGroup            Distribution             `json:"copies_per_group" yaml:"copies_per_group"`
	ComputedAt                time.Time                `json:"computed_at" yaml:"computed_at"`
}

// Compute walks r once and returns its statistics. It only reads r, so it
// may run concurrently with other readers.
func Compute(ctx context.Context, r *report.Report) (*ReportStats, error) {
	groups := r.Groups()
	sizes := make([]float64, 0, len(groups))
	savings := make([]float64, 0, len(groups))
	copies := make([]float64, 0, len(groups))
	byType := make(map[report.EntryType]int)

	for _, g := range groups {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		sizes = append(sizes, float64(g.Size()))
		savings = append(savings, float64(g.SpaceToSave()))
		copies = append(copies, float64(g.Len()-1))
		for i := 0; i < g.Len(); i++ {
			byType[g.At(i).Type]++
		}
	}

	rs := &ReportStats{
		Groups:                    r.Len(),
		Entries:                   r.EntryCount(),
		Size:                      r.Size(),
		SpaceToSave:               r.SpaceToSave(),
		SizeAfterDuplicateRemoval: r.SizeAfterDuplicateRemoval(),
		EntriesByType:             byType,
		GroupSize:                 Describe(sizes),
		GroupSpaceToSave:          Describe(savings),
		CopiesPerGroup:            Describe(copies),
		ComputedAt:                time.Now(),
	}
	if rs.Size > 0 {
		rs.WastedRatio = float64(rs.SpaceToSave) / float64(rs.Size)
	}
	return rs, nil
}

// Describe computes the distribution of values. values is not modified.
func Describe(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	d := Distribution{
		Count:  len(sorted),
		Total:  floats.Sum(sorted),
		Mean:   stat.Mean(sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, sorted, nil),
		Max:    floats.Max(sorted),
	}
	// the unbiased estimator is undefined for a single sample
	if len(sorted) > 1 {
		d.StdDev = stat.StdDev(sorted, nil)
	}
	return d
}
