package cli

import (
	"fmt"

	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/report"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the report is well formed and its groups contiguous",
	Long: `Parse the whole results file and check that every group starts with
its original, holds no second original and that no id shows up in two
separate runs. Exclusion patterns are ignored. Exits with status 1 on the
first problem found.

Examples:
  rdfa validate -r results.txt`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := resultsPath()
	r, err := report.LoadFile(path,
		report.WithLogger(logger),
		report.WithMaxLineSize(cfg.Report.MaxLineSize))
	if err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d groups, %d entries\n",
		defaultTheme.saveStyle().Render("OK"), path, r.Len(), r.EntryCount())
	return nil
}
