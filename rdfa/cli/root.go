// Package cli provides the command-line interface for rdfa.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	internal "github.com/ZanzyTHEbar/rdfind-analyzer/rdfa"
	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/config"
	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/filter"
	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/report"
	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/workspace"

	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	cfgFile      string
	reportPath   string
	strict       bool
	verbose      bool
	excludes     []string
	outputFormat string

	cfg      *config.Config
	logger   *slog.Logger
	closeLog func() error
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   internal.DefaultAppName,
	Short: "Inspect rdfind duplicate reports",
	Long: `rdfa reads the results file written by rdfind and answers questions
about it: how much space the duplicates waste, which files are copies of
which, and where they live.

The report is never modified and no file is ever deleted.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		level, _ := config.ParseLogLevel(cfg.Log.Level)
		if verbose {
			level = slog.LevelDebug
		}
		logger, closeLog = config.SetupLogger(cfg.Log.File, level)

		if outputFormat != "" {
			if err := config.ValidateFormat(outputFormat); err != nil {
				return err
			}
			cfg.Output.Format = outputFormat
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeLog != nil {
			return closeLog()
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml or ~/.config/rdfa/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&reportPath, "report", "r", "", "rdfind results file (default from config, results.txt)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "reject reports whose groups are not contiguous")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringSliceVar(&excludes, "exclude", nil, "gitignore-style pattern of entries to hide (repeatable)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: text, json or yaml (default from config)")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(prefixCmd)
	rootCmd.AddCommand(duplicatesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
}

// newManager builds a workspace manager from the effective configuration.
func newManager() *workspace.Manager {
	patterns := append(append([]string(nil), cfg.Filter.Patterns...), excludes...)

	opts := []workspace.Option{
		workspace.WithLogger(logger),
		workspace.WithConcurrency(cfg.Workspace.Concurrency),
		workspace.WithReadOptions(
			report.WithStrict(strict || cfg.Report.Strict),
			report.WithMaxLineSize(cfg.Report.MaxLineSize),
		),
	}
	if len(patterns) > 0 {
		opts = append(opts, workspace.WithFilter(filter.NewMatcher(patterns...)))
	}
	return workspace.NewManager(opts...)
}

// resultsPath returns the results file selected by flag or config.
func resultsPath() string {
	if reportPath != "" {
		return reportPath
	}
	return cfg.Report.Path
}

// loadWorkspace loads the selected results file with filters applied.
func loadWorkspace(ctx context.Context) (*workspace.Workspace, error) {
	return newManager().Load(ctx, resultsPath())
}
