package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/server"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve [results-file...]",
	Short: "Serve reports over a read-only HTTP API",
	Long: `Load one or more results files and serve them as JSON until
interrupted. Without arguments the file selected by --report is served.

Routes:
  GET /reports
  GET /reports/:id
  GET /reports/:id/groups[?type=DUPTYPE_...]
  GET /reports/:id/groups/:index
  GET /reports/:id/find?name=NAME
  GET /reports/:id/prefix?path=DIR
  GET /reports/:id/stats

Examples:
  rdfa serve
  rdfa serve --addr 127.0.0.1:9000 home.txt backup.txt`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{resultsPath()}
	}
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := newManager()
	if _, err := m.LoadAll(ctx, paths); err != nil {
		return err
	}

	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	return server.NewServer(m, server.WithLogger(logger)).Run(ctx, addr)
}
