package report

// Report is the ordered list of duplicate groups read from one results file.
// The last group is the open one: AddEntry appends to it while ids match.
//
// A Report is built by a single goroutine. Once built, all read methods are
// safe for concurrent use.
type Report struct {
	groups []*Group
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{groups: make([]*Group, 0)}
}

// AddEntry assigns e to the open group if it shares its id, otherwise opens
// a new group with e as its first entry.
//
// Entries of one duplicate set must arrive contiguously. An id that shows up
// again after its run closed silently opens a second group; use Validate or
// the strict reader to detect that.
func (r *Report) AddEntry(e Entry) {
	if n := len(r.groups); n > 0 && r.groups[n-1].ShouldEntryBeAdded(e) {
		r.groups[n-1].AddEntry(e)
		return
	}
	r.groups = append(r.groups, NewGroup(e))
}

// AddGroup appends g as a group of its own, even when its id matches the
// last group. It is used to rebuild a report without regrouping.
func (r *Report) AddGroup(g *Group) {
	r.groups = append(r.groups, g)
}

// Groups returns the groups in report order. The slice is a copy; the groups
// are shared.
func (r *Report) Groups() []*Group {
	out := make([]*Group, len(r.groups))
	copy(out, r.groups)
	return out
}

// Len returns the number of groups.
func (r *Report) Len() int {
	return len(r.groups)
}

// At returns the i-th group.
func (r *Report) At(i int) *Group {
	return r.groups[i]
}

// EntryCount returns the number of entries across all groups.
func (r *Report) EntryCount() int {
	n := 0
	for _, g := range r.groups {
		n += g.Len()
	}
	return n
}

// Size is the total size of every file in the report.
func (r *Report) Size() int64 {
	var total int64
	for _, g := range r.groups {
		total += g.Size()
	}
	return total
}

// SpaceToSave is the number of bytes reclaimed by keeping only the original
// of each group.
func (r *Report) SpaceToSave() int64 {
	var total int64
	for _, g := range r.groups {
		total += g.SpaceToSave()
	}
	return total
}

// SizeAfterDuplicateRemoval is Size minus SpaceToSave.
func (r *Report) SizeAfterDuplicateRemoval() int64 {
	return r.Size() - r.SpaceToSave()
}

// FindGroupForEntryNamed returns the first group holding an entry whose name
// is exactly name. It fails with ErrNotFound otherwise.
func (r *Report) FindGroupForEntryNamed(name string) (*Group, error) {
	i, err := r.IndexOfEntryNamed(name)
	if err != nil {
		return nil, err
	}
	return r.groups[i], nil
}

// IndexOfEntryNamed is FindGroupForEntryNamed returning the group position.
func (r *Report) IndexOfEntryNamed(name string) (int, error) {
	for i, g := range r.groups {
		for _, e := range g.entries {
			if e.Name == name {
				return i, nil
			}
		}
	}
	return -1, notFound(name)
}

// Children implements Node.
func (r *Report) Children() []Node {
	nodes := make([]Node, len(r.groups))
	for i, g := range r.groups {
		nodes[i] = g
	}
	return nodes
}

// Walk calls fn for the report, every group and every entry, depth-first.
// The report itself has depth 0. A non-nil error from fn stops the walk.
func (r *Report) Walk(fn func(node Node, depth int) error) error {
	return walk(r, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) error) error {
	if err := fn(n, depth); err != nil {
		return err
	}
	for _, child := range n.Children() {
		if err := walk(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks that every group starts with its original, holds no other
// first occurrence, and that no id is split across several groups.
func (r *Report) Validate() error {
	v := newValidator()
	for i, g := range r.groups {
		for _, e := range g.entries {
			if err := v.check(i, e); err != nil {
				return err
			}
		}
	}
	return nil
}
