package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/config"
	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/export"

	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportFile   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Re-render the report as text, JSON or YAML",
	Long: `Write the report, after --exclude filtering, in one of three formats:

  text  the rdfind results layout, readable again by rdfa
  json  groups and summary as JSON
  yaml  groups and summary as YAML

Examples:
  rdfa export --format json
  rdfa export --exclude '*.tmp' --format text --file filtered.txt`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "text, json or yaml (default from config)")
	exportCmd.Flags().StringVar(&exportFile, "file", "", "write to this file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	format := cfg.Output.Format
	if exportFormat != "" {
		format = strings.ToLower(exportFormat)
	}
	if err := config.ValidateFormat(format); err != nil {
		return err
	}

	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if exportFile != "" {
		f, createErr := os.Create(exportFile)
		if createErr != nil {
			return fmt.Errorf("create export file: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close export file: %w", cerr)
			}
		}()
		out = f
	}

	if err := export.Write(out, ws.Report, export.Format(format)); err != nil {
		return err
	}
	logger.Debug("report exported", "format", format, "groups", ws.Report.Len(), "file", exportFile)
	return nil
}
