package workspace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/config"
	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/filter"
	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/indexing"
	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/report"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
)

// ErrWorkspaceNotFound is returned for an unknown workspace id.
var ErrWorkspaceNotFound = errors.New("workspace not found")

// Workspace is one loaded results file together with its indexes.
type Workspace struct {
	ID       uuid.UUID
	Path     string
	LoadedAt time.Time
	Report   *report.Report
	Paths    *indexing.PathIndex
	Types    *indexing.TypeBitmaps
}

// Manager keeps the loaded reports of a process. It is safe for concurrent
// use; the reports themselves are never modified once registered.
type Manager struct {
	mu         sync.RWMutex
	workspaces map[uuid.UUID]*Workspace
	order      []uuid.UUID

	logger      *slog.Logger
	concurrency int
	readOpts    []report.ReadOption
	matcher     *filter.Matcher
}

// Option customizes a Manager.
type Option func(*Manager)

// WithLogger sets a custom logger
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithConcurrency bounds the number of files LoadAll reads at once.
func WithConcurrency(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.concurrency = n
		}
	}
}

// WithReadOptions passes options to every report.LoadFile call.
func WithReadOptions(opts ...report.ReadOption) Option {
	return func(m *Manager) {
		m.readOpts = append(m.readOpts, opts...)
	}
}

// WithFilter drops excluded entries from every loaded report.
func WithFilter(matcher *filter.Matcher) Option {
	return func(m *Manager) {
		m.matcher = matcher
	}
}

// NewManager creates an empty manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		workspaces:  make(map[uuid.UUID]*Workspace),
		logger:      slog.Default(),
		concurrency: config.DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add registers an already built report under a fresh id.
func (m *Manager) Add(path string, r *report.Report) *Workspace {
	if m.matcher != nil {
		r = m.matcher.Apply(r)
	}
	ws := &Workspace{
		ID:       uuid.New(),
		Path:     path,
		LoadedAt: time.Now(),
		Report:   r,
		Paths:    indexing.BuildPathIndex(r, indexing.WithLogger(m.logger)),
		Types:    indexing.BuildTypeBitmaps(r),
	}

	m.mu.Lock()
	m.workspaces[ws.ID] = ws
	m.order = append(m.order, ws.ID)
	m.mu.Unlock()

	m.logger.Debug("workspace registered", "id", ws.ID, "path", path, "groups", r.Len())
	return ws
}

// Load reads the results file at path and registers it.
func (m *Manager) Load(ctx context.Context, path string) (*Workspace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	opts := append([]report.ReadOption{report.WithLogger(m.logger)}, m.readOpts...)
	r, err := report.LoadFile(abs, opts...)
	if err != nil {
		return nil, err
	}
	return m.Add(abs, r), nil
}

// LoadAll reads several results files with bounded concurrency. Each file is
// still parsed sequentially, so grouping is unaffected. The returned slice
// follows the order of paths and omits files that failed; the error joins
// every failure.
func (m *Manager) LoadAll(ctx context.Context, paths []string) ([]*Workspace, error) {
	results := make([]*Workspace, len(paths))
	p := pool.New().WithMaxGoroutines(m.concurrency).WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		p.Go(func(ctx context.Context) error {
			ws, err := m.Load(ctx, path)
			if err != nil {
				m.logger.Warn("failed to load results file", "path", path, "error", err)
				return err
			}
			results[i] = ws
			return nil
		})
	}
	err := p.Wait()

	loaded := make([]*Workspace, 0, len(paths))
	for _, ws := range results {
		if ws != nil {
			loaded = append(loaded, ws)
		}
	}
	m.logger.Info("results files loaded", "requested", len(paths), "loaded", len(loaded))
	return loaded, err
}

// Get returns the workspace registered under id.
func (m *Manager) Get(id uuid.UUID) (*Workspace, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ws, ok := m.workspaces[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrWorkspaceNotFound)
	}
	return ws, nil
}

// Lookup parses id and returns the matching workspace.
func (m *Manager) Lookup(id string) (*Workspace, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid workspace id %q: %w", id, ErrWorkspaceNotFound)
	}
	return m.Get(parsed)
}

// List returns the workspaces in registration order.
func (m *Manager) List() []*Workspace {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Workspace, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.workspaces[id])
	}
	return out
}

// Remove forgets the workspace registered under id.
func (m *Manager) Remove(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.workspaces[id]; !ok {
		return fmt.Errorf("%s: %w", id, ErrWorkspaceNotFound)
	}
	delete(m.workspaces, id)
	for i, cur := range m.order {
		if cur == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.logger.Debug("workspace removed", "id", id)
	return nil
}
