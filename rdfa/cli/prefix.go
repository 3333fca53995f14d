package cli

import (
	"github.com/spf13/cobra"
)

var prefixCmd = &cobra.Command{
	Use:   "prefix <dir>",
	Short: "List groups with an entry below a directory",
	Long: `List the duplicate groups that have at least one entry below <dir>.
<dir> is matched against entry names as written in the results file, so use
the same form rdfind was given (for example ./photos).

Examples:
  rdfa prefix ./photos
  rdfa prefix /mnt/backup -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runPrefix,
}

func runPrefix(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}

	indexes := ws.Paths.GroupsUnder(args[0])
	logger.Debug("prefix lookup", "dir", args[0], "groups", len(indexes))
	return printGroups(cmd.OutOrStdout(), ws.Report, indexes)
}
