package indexing

import (
	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/report"

	roaring "github.com/RoaringBitmap/roaring"
)

// TypeBitmaps holds one roaring bitmap of group indexes per entry type.
// Example: DuplicateOutsideTree -> groups with at least one copy on another root.
type TypeBitmaps struct {
	Types map[report.EntryType]*roaring.Bitmap
	// Devices maps a device id to the groups with an entry stored on it.
	Devices map[int64]*roaring.Bitmap
}

func NewTypeBitmaps() *TypeBitmaps {
	return &TypeBitmaps{
		Types:   make(map[report.EntryType]*roaring.Bitmap),
		Devices: make(map[int64]*roaring.Bitmap),
	}
}

// BuildTypeBitmaps indexes the entry types and devices of every group of r.
func BuildTypeBitmaps(r *report.Report) *TypeBitmaps {
	tb := NewTypeBitmaps()
	for gi, g := range r.Groups() {
		for ei := 0; ei < g.Len(); ei++ {
			e := g.At(ei)
			tb.Add(e.Type, uint32(gi))
			tb.AddDevice(e.Device, uint32(gi))
		}
	}
	return tb
}

func (tb *TypeBitmaps) Add(t report.EntryType, group uint32) {
	bm, ok := tb.Types[t]
	if !ok {
		bm = roaring.New()
		tb.Types[t] = bm
	}
	bm.Add(group)
}

func (tb *TypeBitmaps) AddDevice(device int64, group uint32) {
	bm, ok := tb.Devices[device]
	if !ok {
		bm = roaring.New()
		tb.Devices[device] = bm
	}
	bm.Add(group)
}

// GroupsWith returns the groups containing every one of types.
func (tb *TypeBitmaps) GroupsWith(types ...report.EntryType) *roaring.Bitmap {
	if len(types) == 0 {
		return roaring.New()
	}
	// copy first
	res := clone(tb.Types[types[0]])
	for _, t := range types[1:] {
		other, ok := tb.Types[t]
		if !ok {
			return roaring.New()
		}
		res.And(other)
	}
	return res
}

// GroupsWithAny returns the groups containing at least one of types.
func (tb *TypeBitmaps) GroupsWithAny(types ...report.EntryType) *roaring.Bitmap {
	res := roaring.New()
	for _, t := range types {
		if bm, ok := tb.Types[t]; ok {
			res.Or(bm)
		}
	}
	return res
}

// CrossDeviceGroups returns the groups whose entries live on more than one
// device. Their copies cannot be hard-linked to the original.
func (tb *TypeBitmaps) CrossDeviceGroups() *roaring.Bitmap {
	seen := roaring.New()
	multi := roaring.New()
	for _, bm := range tb.Devices {
		multi.Or(roaring.And(seen, bm))
		seen.Or(bm)
	}
	return multi
}

// Count returns the number of groups holding an entry of type t.
func (tb *TypeBitmaps) Count(t report.EntryType) uint64 {
	if bm, ok := tb.Types[t]; ok {
		return bm.GetCardinality()
	}
	return 0
}

func clone(b *roaring.Bitmap) *roaring.Bitmap {
	if b == nil {
		return roaring.New()
	}
	return b.Clone()
}
