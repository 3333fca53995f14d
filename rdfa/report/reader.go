package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"
)

// DefaultMaxLineSize bounds the length of a single results line.
const DefaultMaxLineSize = 1 << 20

// CommentPrefix starts header and comment lines, which are skipped.
const CommentPrefix = "#"

type readConfig struct {
	logger      *slog.Logger
	strict      bool
	maxLineSize int
}

// ReadOption customizes Read and LoadFile.
type ReadOption func(*readConfig)

// WithLogger sets the logger used while reading.
func WithLogger(logger *slog.Logger) ReadOption {
	return func(c *readConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStrict makes the reader fail with ErrInvariantViolation as soon as the
// input breaks the contiguous, original-first grouping.
func WithStrict(strict bool) ReadOption {
	return func(c *readConfig) {
		c.strict = strict
	}
}

// WithMaxLineSize sets the longest accepted line in bytes.
func WithMaxLineSize(n int) ReadOption {
	return func(c *readConfig) {
		if n > 0 {
			c.maxLineSize = n
		}
	}
}

func newReadConfig(opts []ReadOption) *readConfig {
	c := &readConfig{
		logger:      slog.Default(),
		maxLineSize: DefaultMaxLineSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Read builds a Report from an rdfind results stream in a single pass.
// The first malformed line aborts the read and no report is returned.
func Read(r io.Reader, opts ...ReadOption) (*Report, error) {
	cfg := newReadConfig(opts)
	start := time.Now()

	report := NewReport()
	var v *validator
	if cfg.strict {
		v = newValidator()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), cfg.maxLineSize)

	// Sizes are non-negative, so bounding the running total keeps every group
	// and report aggregate in range.
	var total int64
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.HasPrefix(line, CommentPrefix) {
			continue
		}

		entry, err := ParseEntry(line)
		if err != nil {
			var recErr *RecordError
			if errors.As(err, &recErr) {
				recErr.Line = lineNo
			}
			cfg.logger.Debug("rejecting results line", "line", lineNo, "error", err)
			return nil, err
		}

		if entry.Size > math.MaxInt64-total {
			return nil, &RecordError{Line: lineNo, Text: line, Reason: "total size overflows int64"}
		}
		total += entry.Size

		report.AddEntry(entry)
		if v != nil {
			if err := v.check(report.Len()-1, entry); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &RecordError{Line: lineNo + 1, Reason: "line too long", Err: err}
		}
		return nil, fmt.Errorf("reading results: %w", err)
	}

	cfg.logger.Debug("results read",
		"lines", lineNo,
		"groups", report.Len(),
		"entries", report.EntryCount(),
		"strict", cfg.strict,
		"duration", time.Since(start))

	return report, nil
}

// LoadFile reads the results file at path. The file is closed before
// LoadFile returns, whether or not parsing succeeded.
func LoadFile(path string, opts ...ReadOption) (report *Report, err error) {
	cfg := newReadConfig(opts)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening results file %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing results file %s: %w", path, cerr)
			report = nil
		}
	}()

	report, err = Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	cfg.logger.Info("results file loaded",
		"path", path,
		"groups", report.Len(),
		"entries", report.EntryCount(),
		"space_to_save", report.SpaceToSave())

	return report, nil
}
