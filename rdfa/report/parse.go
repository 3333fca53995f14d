package report

import (
	"strconv"
	"strings"
	"unicode"
)

// numFields is the number of fields of a record; the last one is the name.
const numFields = 8

// ParseEntry parses one results line, already stripped of its line
// terminator. Comment lines must be filtered out by the caller.
//
// The first seven whitespace separated fields are the type, the signed id,
// depth, size, device, inode and priority. Everything after them, embedded
// whitespace included, is the file name.
func ParseEntry(line string) (Entry, error) {
	fields, ok := splitRecord(line)
	if !ok {
		return Entry{}, &RecordError{Text: line, Reason: "expected at least 8 fields"}
	}

	id, err := parseID(fields[1])
	if err != nil {
		return Entry{}, fieldError(line, "id", err)
	}
	depth, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return Entry{}, fieldError(line, "depth", err)
	}
	size, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return Entry{}, fieldError(line, "size", err)
	}
	if size < 0 {
		return Entry{}, &RecordError{Text: line, Reason: "negative size"}
	}
	device, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return Entry{}, fieldError(line, "device", err)
	}
	inode, err := strconv.ParseInt(fields[5], 10, 64)
	if err != nil {
		return Entry{}, fieldError(line, "inode", err)
	}
	priority, err := strconv.ParseInt(fields[6], 10, 64)
	if err != nil {
		return Entry{}, fieldError(line, "priority", err)
	}

	return Entry{
		Type:     EntryType(fields[0]),
		ID:       id,
		Depth:    depth,
		Size:     size,
		Device:   device,
		Inode:    inode,
		Priority: priority,
		Name:     fields[7],
	}, nil
}

func fieldError(line, field string, err error) error {
	return &RecordError{Text: line, Reason: "invalid " + field, Err: err}
}

// parseID accepts an optionally signed integer and returns its magnitude.
func parseID(s string) (uint64, error) {
	if len(s) > 1 && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	// ParseUint rejects any sign left over, so "--5" fails here
	return strconv.ParseUint(s, 10, 64)
}

// splitRecord splits line into seven leading tokens and the remainder. The
// remainder keeps its inner and trailing whitespace.
func splitRecord(line string) ([numFields]string, bool) {
	var fields [numFields]string
	rest := line
	for i := 0; i < numFields-1; i++ {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		end := strings.IndexFunc(rest, unicode.IsSpace)
		if end < 0 {
			return fields, false
		}
		fields[i] = rest[:end]
		rest = rest[end:]
	}
	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	if rest == "" {
		return fields, false
	}
	fields[numFields-1] = rest
	return fields, true
}
