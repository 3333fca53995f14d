// Package export renders a report for viewers and for other tools.
package export

import (
	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/report"
)

// EntryView is the read-only projection of an entry.
type EntryView struct {
	Type     report.EntryType `json:"type" yaml:"type"`
	ID       uint64           `json:"id" yaml:"id"`
	Depth    int64            `json:"depth" yaml:"depth"`
	Size     int64            `json:"size" yaml:"size"`
	Device   int64            `json:"device" yaml:"device"`
	Inode    int64            `json:"inode" yaml:"inode"`
	Priority int64            `json:"priority" yaml:"priority"`
	Name     string           `json:"name" yaml:"name"`
}

// GroupView is the read-only projection of a group. Original is the name of
// the first entry, used as the group label by tree viewers.
type GroupView struct {
	Index       int         `json:"index" yaml:"index"`
	ID          uint64      `json:"id" yaml:"id"`
	Original    string      `json:"original" yaml:"original"`
	Size        int64       `json:"size" yaml:"size"`
	SpaceToSave int64       `json:"space_to_save" yaml:"space_to_save"`
	Entries     []EntryView `json:"entries" yaml:"entries"`
}

// SummaryView carries the report-wide aggregates, all in bytes.
type SummaryView struct {
	Groups                    int   `json:"groups" yaml:"groups"`
	Entries                   int   `json:"entries" yaml:"entries"`
	Size                      int64 `json:"size" yaml:"size"`
	SpaceToSave               int64 `json:"space_to_save" yaml:"space_to_save"`
	SizeAfterDuplicateRemoval int64 `json:"size_after_duplicate_removal" yaml:"size_after_duplicate_removal"`
}

// ReportView is a full projection of a report.
type ReportView struct {
	Summary SummaryView `json:"summary" yaml:"summary"`
	Groups  []GroupView `json:"groups" yaml:"groups"`
}

// NewEntryView projects e.
func NewEntryView(e report.Entry) EntryView {
	return EntryView{
		Type:     e.Type,
		ID:       e.ID,
		Depth:    e.Depth,
		Size:     e.Size,
		Device:   e.Device,
		Inode:    e.Inode,
		Priority: e.Priority,
		Name:     e.Name,
	}
}

// NewGroupView projects the group at position index.
func NewGroupView(index int, g *report.Group) GroupView {
	entries := make([]EntryView, 0, g.Len())
	for i := 0; i < g.Len(); i++ {
		entries = append(entries, NewEntryView(g.At(i)))
	}
	return GroupView{
		Index:       index,
		ID:          g.ID(),
		Original:    g.At(0).Name,
		Size:        g.Size(),
		SpaceToSave: g.SpaceToSave(),
		Entries:     entries,
	}
}

// NewSummaryView computes the aggregates of r.
func NewSummaryView(r *report.Report) SummaryView {
	return SummaryView{
		Groups:                    r.Len(),
		Entries:                   r.EntryCount(),
		Size:                      r.Size(),
		SpaceToSave:               r.SpaceToSave(),
		SizeAfterDuplicateRemoval: r.SizeAfterDuplicateRemoval(),
	}
}

// NewReportView projects r completely.
func NewReportView(r *report.Report) ReportView {
	groups := make([]GroupView, 0, r.Len())
	for i, g := range r.Groups() {
		groups = append(groups, NewGroupView(i, g))
	}
	return ReportView{
		Summary: NewSummaryView(r),
		Groups:  groups,
	}
}
