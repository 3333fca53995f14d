package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "Print the path of every redundant copy",
	Long: `Print the name of every entry that is not the original of its group,
one per line. Nothing is deleted; the output is meant to be reviewed or fed
to another tool.

Examples:
  rdfa duplicates
  rdfa duplicates --exclude '/photos/keep' > to-review.txt`,
	Args: cobra.NoArgs,
	RunE: runDuplicates,
}

func runDuplicates(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, g := range ws.Report.Groups() {
		dups, err := g.Duplicates()
		if err != nil {
			return err
		}
		for _, e := range dups {
			fmt.Fprintln(out, e.Name)
		}
	}
	return nil
}
