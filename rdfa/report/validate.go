package report

import "strconv"

// validator checks the grouping precondition one entry at a time, in report
// order. It is shared by Report.Validate and the strict reader.
type validator struct {
	seen    map[uint64]int // id -> index of the group that owns it
	current int
}

func newValidator() *validator {
	return &validator{seen: make(map[uint64]int), current: -1}
}

// check validates e, which was placed in the group at index.
func (v *validator) check(index int, e Entry) error {
	if index != v.current {
		v.current = index
		if prev, ok := v.seen[e.ID]; ok {
			return &InvariantError{
				GroupIndex: index,
				ID:         e.ID,
				Name:       e.Name,
				Reason:     "id already used by group " + strconv.Itoa(prev),
			}
		}
		v.seen[e.ID] = index
		if !e.IsFirstOccurrence() {
			return &InvariantError{
				GroupIndex: index,
				ID:         e.ID,
				Name:       e.Name,
				Reason:     "group does not start with " + string(DuplicateFirstOccurrence),
			}
		}
		return nil
	}
	if e.IsFirstOccurrence() {
		return &InvariantError{
			GroupIndex: index,
			ID:         e.ID,
			Name:       e.Name,
			Reason:     "second " + string(DuplicateFirstOccurrence) + " inside group",
		}
	}
	return nil
}
