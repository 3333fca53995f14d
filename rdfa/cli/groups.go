package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/config"
	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/export"
	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/report"

	"github.com/RoaringBitmap/roaring"
	"github.com/spf13/cobra"
)

var (
	groupsTypes       []string
	groupsAnyType     bool
	groupsCrossDevice bool
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List duplicate groups in report order",
	Long: `List every duplicate group, labelled by the name of its original,
followed by its entries: type, id, depth, size, device, inode, priority and
name.

Examples:
  rdfa groups
  rdfa groups --type DUPTYPE_OUTSIDE_TREE
  rdfa groups --type DUPTYPE_OUTSIDE_TREE,DUPTYPE_WITHIN_SAME_TREE --any
  rdfa groups --cross-device -o yaml`,
	Args: cobra.NoArgs,
	RunE: runGroups,
}

func init() {
	groupsCmd.Flags().StringSliceVarP(&groupsTypes, "type", "t", nil, "only groups holding entries of all these types")
	groupsCmd.Flags().BoolVar(&groupsAnyType, "any", false, "match groups holding any of the --type values instead of all")
	groupsCmd.Flags().BoolVar(&groupsCrossDevice, "cross-device", false, "only groups spanning several devices")
}

func runGroups(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}

	indexes := make([]int, 0, ws.Report.Len())
	if len(groupsTypes) == 0 && !groupsCrossDevice {
		for i := 0; i < ws.Report.Len(); i++ {
			indexes = append(indexes, i)
		}
		return printGroups(cmd.OutOrStdout(), ws.Report, indexes)
	}

	var selected *roaring.Bitmap
	if len(groupsTypes) > 0 {
		types := make([]report.EntryType, len(groupsTypes))
		for i, t := range groupsTypes {
			types[i] = report.EntryType(t)
		}
		if groupsAnyType {
			selected = ws.Types.GroupsWithAny(types...)
		} else {
			selected = ws.Types.GroupsWith(types...)
		}
	}
	if groupsCrossDevice {
		cross := ws.Types.CrossDeviceGroups()
		if selected == nil {
			selected = cross
		} else {
			selected.And(cross)
		}
	}
	for _, i := range selected.ToArray() {
		indexes = append(indexes, int(i))
	}

	return printGroups(cmd.OutOrStdout(), ws.Report, indexes)
}

// printGroups renders the groups at the given positions of r.
func printGroups(out io.Writer, r *report.Report, indexes []int) error {
	views := make([]export.GroupView, 0, len(indexes))
	for _, i := range indexes {
		views = append(views, export.NewGroupView(i, r.At(i)))
	}
	if cfg.Output.Format != config.FormatText {
		return writeStructured(out, views)
	}

	if len(views) == 0 {
		fmt.Fprintln(out, defaultTheme.hintStyle().Render("No duplicate groups."))
		return nil
	}
	for _, g := range views {
		fmt.Fprintf(out, "%s %s\n",
			defaultTheme.titleStyle().Render(fmt.Sprintf("[%d]", g.Index)), g.Original)
		for _, e := range r.At(g.Index).Entries() {
			fmt.Fprintf(out, "  %s\n", strings.Join(e.Values(), " "))
		}
		fmt.Fprintf(out, "  %s\n", defaultTheme.hintStyle().Render(fmt.Sprintf("%d bytes to save", g.SpaceToSave)))
	}
	return nil
}
