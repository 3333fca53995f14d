package cli

import (
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/config"
	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/export"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show report totals and the space duplicates waste",
	Long: `Show the number of groups and entries, the total size of every listed
file, the space deleting all duplicates would free and the size left after
removing them.

Examples:
  rdfa summary
  rdfa summary -r /tmp/results.txt
  rdfa summary --exclude '*.tmp' -o json`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}

	view := export.NewSummaryView(ws.Report)
	out := cmd.OutOrStdout()
	if cfg.Output.Format != config.FormatText {
		return writeStructured(out, view)
	}

	fmt.Fprintln(out, defaultTheme.titleStyle().Render("Duplicate report "+ws.Path))
	printField(out, "Groups", view.Groups)
	printField(out, "Entries", view.Entries)
	printField(out, "Total size (bytes)", view.Size)
	printField(out, "Size after removal (bytes)", view.SizeAfterDuplicateRemoval)
	fmt.Fprintln(out, defaultTheme.saveStyle().Render(fmt.Sprintf("Size to save %d bytes", view.SpaceToSave)))
	return nil
}

// writeStructured renders v in the configured json or yaml format.
func writeStructured(w io.Writer, v any) error {
	if cfg.Output.Format == config.FormatYAML {
		return export.WriteYAML(w, v)
	}
	return export.WriteJSON(w, v)
}
