package cli

import (
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Show the group holding an entry",
	Long: `Show the duplicate group containing the entry whose name is exactly
<name>, as written in the results file. Exits with status 1 when no entry
has that name.

Examples:
  rdfa find ./photos/2019/img_0001.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}

	index, err := ws.Report.IndexOfEntryNamed(args[0])
	if err != nil {
		return err
	}
	return printGroups(cmd.OutOrStdout(), ws.Report, []int{index})
}
