package cli

import (
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/config"
	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/report"
	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/stats"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show distribution statistics over the groups",
	Long: `Show how group sizes, reclaimable space and copy counts are
distributed across the report.

Examples:
  rdfa stats
  rdfa stats -o yaml`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}

	rs, err := stats.Compute(cmd.Context(), ws.Report)
	if err != nil {
		return fmt.Errorf("compute stats: %w", err)
	}

	out := cmd.OutOrStdout()
	if cfg.Output.Format != config.FormatText {
		return writeStructured(out, rs)
	}

	fmt.Fprintln(out, defaultTheme.titleStyle().Render("Report statistics"))
	printField(out, "Groups", rs.Groups)
	printField(out, "Entries", rs.Entries)
	printField(out, "Wasted ratio", fmt.Sprintf("%.1f%%", rs.WastedRatio*100))
	for _, t := range report.EntryTypes {
		printField(out, string(t), rs.EntriesByType[t])
	}
	printDistribution(out, "Group size (bytes)", rs.GroupSize)
	printDistribution(out, "Space to save (bytes)", rs.GroupSpaceToSave)
	printDistribution(out, "Copies per group", rs.CopiesPerGroup)
	return nil
}

func printDistribution(out io.Writer, title string, d stats.Distribution) {
	fmt.Fprintln(out, defaultTheme.titleStyle().Render(title))
	printField(out, "  mean", fmt.Sprintf("%.1f", d.Mean))
	printField(out, "  stddev", fmt.Sprintf("%.1f", d.StdDev))
	printField(out, "  median", fmt.Sprintf("%.0f", d.Median))
	printField(out, "  p90", fmt.Sprintf("%.0f", d.P90))
	printField(out, "  max", fmt.Sprintf("%.0f", d.Max))
}
