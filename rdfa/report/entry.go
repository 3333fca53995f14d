package report

import (
	"fmt"
	"strconv"
)

// EntryType is the duplicate classification the scanner assigned to a file.
type EntryType string

const (
	// DuplicateFirstOccurrence marks the canonical original of a duplicate set.
	DuplicateFirstOccurrence EntryType = "DUPTYPE_FIRST_OCCURRENCE"
	// DuplicateWithinSameTree marks a copy found under the same scanned root.
	DuplicateWithinSameTree EntryType = "DUPTYPE_WITHIN_SAME_TREE"
	// DuplicateOutsideTree marks a copy found under a different scanned root.
	DuplicateOutsideTree EntryType = "DUPTYPE_OUTSIDE_TREE"
)

// EntryTypes lists the classifications rdfind emits, in report order of precedence.
var EntryTypes = []EntryType{
	DuplicateFirstOccurrence,
	DuplicateWithinSameTree,
	DuplicateOutsideTree,
}

// Known reports whether t is one of the classifications rdfind documents.
func (t EntryType) Known() bool {
	switch t {
	case DuplicateFirstOccurrence, DuplicateWithinSameTree, DuplicateOutsideTree:
		return true
	}
	return false
}

// Entry is one file record of a duplicate report.
type Entry struct {
	// Type is the scanner's classification of the file.
	Type EntryType

	// ID identifies the duplicate set. The sign used in the report text is
	// dropped, only the magnitude is kept.
	ID uint64

	// Depth is the directory depth relative to the scanned root.
	Depth int64

	// Size is the file size in bytes.
	Size int64

	// Device and Inode identify where the file is physically stored. They
	// are kept signed since the report text may carry any integer.
	Device int64
	Inode  int64

	// Priority is the metric rdfind used to pick the original.
	Priority int64

	// Name is the full path exactly as written in the report.
	Name string
}

// IsFirstOccurrence reports whether e is the canonical original of its set.
func (e Entry) IsFirstOccurrence() bool {
	return e.Type == DuplicateFirstOccurrence
}

// IsWithinSameTree reports whether e duplicates a file under the same root.
func (e Entry) IsWithinSameTree() bool {
	return e.Type == DuplicateWithinSameTree
}

// IsOutsideTree reports whether e duplicates a file under another root.
func (e Entry) IsOutsideTree() bool {
	return e.Type == DuplicateOutsideTree
}

// String renders e in the rdfind results layout. Parsing the result with
// ParseEntry yields an Entry equal to e.
func (e Entry) String() string {
	sign := "-"
	if e.IsFirstOccurrence() {
		sign = ""
	}
	return fmt.Sprintf("%s %s%d %d %d %d %d %d %s",
		e.Type, sign, e.ID, e.Depth, e.Size, e.Device, e.Inode, e.Priority, e.Name)
}

// Values returns the columns a tabular viewer displays for e: type, id,
// depth, size, device, inode, priority and name.
func (e Entry) Values() []string {
	return []string{
		string(e.Type),
		strconv.FormatUint(e.ID, 10),
		strconv.FormatInt(e.Depth, 10),
		strconv.FormatInt(e.Size, 10),
		strconv.FormatInt(e.Device, 10),
		strconv.FormatInt(e.Inode, 10),
		strconv.FormatInt(e.Priority, 10),
		e.Name,
	}
}

// Children implements Node. Entries are leaves.
func (e Entry) Children() []Node {
	return nil
}
