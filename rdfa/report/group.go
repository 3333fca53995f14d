package report

// Group is the ordered set of entries sharing one duplicate id. The first
// entry is the canonical original, the rest are its copies.
//
// A Group only grows by appending; it never validates ids on its own and
// relies on the Report builder to call ShouldEntryBeAdded first.
type Group struct {
	entries []Entry
}

// NewGroup starts a group with first as its defining entry.
func NewGroup(first Entry) *Group {
	return &Group{entries: []Entry{first}}
}

// ID returns the duplicate id defining the group.
func (g *Group) ID() uint64 {
	return g.entries[0].ID
}

// ShouldEntryBeAdded reports whether e belongs to this group.
func (g *Group) ShouldEntryBeAdded(e Entry) bool {
	return g.ID() == e.ID
}

// AddEntry appends e unconditionally.
func (g *Group) AddEntry(e Entry) {
	g.entries = append(g.entries, e)
}

// Len returns the number of entries, original included.
func (g *Group) Len() int {
	return len(g.entries)
}

// At returns the i-th entry.
func (g *Group) At(i int) Entry {
	return g.entries[i]
}

// Entries returns a copy of the group's entries in report order.
func (g *Group) Entries() []Entry {
	out := make([]Entry, len(g.entries))
	copy(out, g.entries)
	return out
}

// Original returns the canonical original. It fails with
// ErrInvariantViolation when the first entry is not a first occurrence.
func (g *Group) Original() (Entry, error) {
	first := g.entries[0]
	if !first.IsFirstOccurrence() {
		return Entry{}, &InvariantError{
			GroupIndex: -1,
			ID:         first.ID,
			Name:       first.Name,
			Reason:     "group does not start with " + string(DuplicateFirstOccurrence),
		}
	}
	return first, nil
}

// Duplicates returns every entry after the original. It fails with
// ErrInvariantViolation if one of them is itself a first occurrence.
func (g *Group) Duplicates() ([]Entry, error) {
	dups := make([]Entry, 0, len(g.entries)-1)
	for _, e := range g.entries[1:] {
		if e.IsFirstOccurrence() {
			return nil, &InvariantError{
				GroupIndex: -1,
				ID:         e.ID,
				Name:       e.Name,
				Reason:     "second " + string(DuplicateFirstOccurrence) + " inside group",
			}
		}
		dups = append(dups, e)
	}
	return dups, nil
}

// Size is the sum of all entry sizes.
func (g *Group) Size() int64 {
	var total int64
	for _, e := range g.entries {
		total += e.Size
	}
	return total
}

// SpaceToSave is the number of bytes freed by removing every entry except
// the first.
func (g *Group) SpaceToSave() int64 {
	return g.Size() - g.entries[0].Size
}

// Children implements Node.
func (g *Group) Children() []Node {
	nodes := make([]Node, len(g.entries))
	for i, e := range g.entries {
		nodes[i] = e
	}
	return nodes
}
