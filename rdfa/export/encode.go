package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/report"

	"gopkg.in/yaml.v3"
)

// Format selects an encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// textHeader mirrors the header rdfind writes; report.Read skips it.
var textHeader = []string{
	"# Automatically generated by rdfa",
	"# duptype id depth size device inode priority name",
}

// Write encodes r to w in the given format.
func Write(w io.Writer, r *report.Report, format Format) error {
	switch format {
	case FormatText:
		return WriteText(w, r)
	case FormatJSON:
		return WriteJSON(w, NewReportView(r))
	case FormatYAML:
		return WriteYAML(w, NewReportView(r))
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteText writes r in the rdfind results layout. Reading the output back
// with report.Read yields an equivalent report.
func WriteText(w io.Writer, r *report.Report) error {
	bw := bufio.NewWriter(w)
	for _, line := range textHeader {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	err := r.Walk(func(n report.Node, _ int) error {
		e, ok := n.(report.Entry)
		if !ok {
			return nil
		}
		_, err := fmt.Fprintln(bw, e.String())
		return err
	})
	if err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return bw.Flush()
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// WriteYAML writes v as YAML.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
