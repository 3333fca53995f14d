// Package server exposes loaded reports over a read-only HTTP API.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/export"
	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/report"
	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/stats"
	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/workspace"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	workspaces *workspace.Manager
	logger     *slog.Logger
}

// Option customizes a Server.
type Option func(*Server)

// WithLogger sets a custom logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewServer(workspaces *workspace.Manager, opts ...Option) *Server {
	s := &Server{
		workspaces: workspaces,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	reports := r.Group("/reports")
	reports.GET("", s.ListReports)
	reports.GET("/:id", s.GetReport)
	reports.GET("/:id/groups", s.ListGroups)
	reports.GET("/:id/groups/:index", s.GetGroup)
	reports.GET("/:id/find", s.FindEntry)
	reports.GET("/:id/prefix", s.GroupsUnderPrefix)
	reports.GET("/:id/stats", s.Stats)

	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.SetupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving reports", "addr", addr, "reports", len(s.workspaces.List()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

// ReportInfo describes one loaded results file.
type ReportInfo struct {
	ID       uuid.UUID          `json:"id"`
	Path     string             `json:"path"`
	LoadedAt time.Time          `json:"loaded_at"`
	Summary  export.SummaryView `json:"summary"`
}

func newReportInfo(ws *workspace.Workspace) ReportInfo {
	return ReportInfo{
		ID:       ws.ID,
		Path:     ws.Path,
		LoadedAt: ws.LoadedAt,
		Summary:  export.NewSummaryView(ws.Report),
	}
}

func (s *Server) ListReports(c *gin.Context) {
	list := s.workspaces.List()
	infos := make([]ReportInfo, 0, len(list))
	for _, ws := range list {
		infos = append(infos, newReportInfo(ws))
	}
	c.JSON(http.StatusOK, gin.H{"reports": infos})
}

func (s *Server) GetReport(c *gin.Context) {
	ws, ok := s.workspace(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newReportInfo(ws))
}

// ListGroups returns every group in report order. Repeated "type" query
// parameters restrict the listing to groups holding all of those kinds.
func (s *Server) ListGroups(c *gin.Context) {
	ws, ok := s.workspace(c)
	if !ok {
		return
	}

	types := c.QueryArray("type")
	if len(types) == 0 {
		c.JSON(http.StatusOK, gin.H{"groups": export.NewReportView(ws.Report).Groups})
		return
	}

	kinds := make([]report.EntryType, len(types))
	for i, t := range types {
		kinds[i] = report.EntryType(t)
	}
	indexes := ws.Types.GroupsWith(kinds...).ToArray()
	groups := make([]export.GroupView, 0, len(indexes))
	for _, i := range indexes {
		groups = append(groups, export.NewGroupView(int(i), ws.Report.At(int(i))))
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

func (s *Server) GetGroup(c *gin.Context) {
	ws, ok := s.workspace(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "group index must be an integer"})
		return
	}
	if index < 0 || index >= ws.Report.Len() {
		c.JSON(http.StatusNotFound, gin.H{"error": "group index out of range"})
		return
	}
	c.JSON(http.StatusOK, export.NewGroupView(index, ws.Report.At(index)))
}

// FindEntry returns the group holding the entry with the exact given name.
func (s *Server) FindEntry(c *gin.Context) {
	ws, ok := s.workspace(c)
	if !ok {
		return
	}
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing name parameter"})
		return
	}
	index, err := ws.Report.IndexOfEntryNamed(name)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, export.NewGroupView(index, ws.Report.At(index)))
}

// GroupsUnderPrefix returns the groups with at least one entry below a
// directory.
func (s *Server) GroupsUnderPrefix(c *gin.Context) {
	ws, ok := s.workspace(c)
	if !ok {
		return
	}
	dir := c.Query("path")
	if dir == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing path parameter"})
		return
	}
	indexes := ws.Paths.GroupsUnder(dir)
	groups := make([]export.GroupView, 0, len(indexes))
	for _, i := range indexes {
		groups = append(groups, export.NewGroupView(i, ws.Report.At(i)))
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

func (s *Server) Stats(c *gin.Context) {
	ws, ok := s.workspace(c)
	if !ok {
		return
	}
	rs, err := stats.Compute(c.Request.Context(), ws.Report)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rs)
}

func (s *Server) workspace(c *gin.Context) (*workspace.Workspace, bool) {
	ws, err := s.workspaces.Lookup(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return nil, false
	}
	return ws, true
}

func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, workspace.ErrWorkspaceNotFound), errors.Is(err, report.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		s.logger.Error("request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
