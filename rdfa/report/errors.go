package report

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord is returned when a report line cannot be parsed.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrInvariantViolation is returned when a group breaks the contiguous,
	// original-first layout the report builder relies on.
	ErrInvariantViolation = errors.New("invariant violation")
	// ErrNotFound is returned when a lookup matches no entry.
	ErrNotFound = errors.New("not found")
)

// RecordError describes a report line that could not be parsed. Line is the
// 1-based line number in the source stream, or 0 when unknown.
type RecordError struct {
	Line   int
	Text   string
	Reason string
	Err    error
}

func (e *RecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d (%s): %q", ErrMalformedRecord, e.Line, e.Reason, e.Text)
	}
	return fmt.Sprintf("%s (%s): %q", ErrMalformedRecord, e.Reason, e.Text)
}

// Is makes every RecordError match ErrMalformedRecord.
func (e *RecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

func (e *RecordError) Unwrap() error { return e.Err }

// InvariantError describes where a report broke the grouping precondition.
// GroupIndex is -1 when the group position is unknown.
type InvariantError struct {
	GroupIndex int
	ID         uint64
	Name       string
	Reason     string
}

func (e *InvariantError) Error() string {
	if e.GroupIndex < 0 {
		return fmt.Sprintf("%s: id %d (%q): %s", ErrInvariantViolation, e.ID, e.Name, e.Reason)
	}
	return fmt.Sprintf("%s: group %d (id %d, %q): %s", ErrInvariantViolation, e.GroupIndex, e.ID, e.Name, e.Reason)
}

func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariantViolation
}

func notFound(name string) error {
	return fmt.Errorf("no entry named %q: %w", name, ErrNotFound)
}
