// Package selfcheck runs the built-in catalog checks offered from the main menu.
//
// Every check works on a scratch catalog in a temporary directory, so the user's catalog file and
// the in-memory catalog of the running session are never touched.
package selfcheck

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/abgdnv/inventory/internal/product/repository"
	"github.com/abgdnv/inventory/internal/product/service"
	"github.com/abgdnv/inventory/internal/product/store"
	"github.com/abgdnv/inventory/internal/terminal"
	"github.com/google/uuid"
)

// Summary counts passed checks.
type Summary struct {
	Passed int
	Total  int
}

// OK reports whether every check passed.
func (s Summary) OK() bool {
	return s.Passed == s.Total
}

// Runner runs the unit suite and the end-to-end scenarios.
type Runner struct {
	styles        terminal.Styles
	logger        *slog.Logger
	stepDelay     time.Duration
	reservedLines int
	sleep         func(time.Duration)
}

// NewRunner returns a Runner. stepDelay is the pause after each announced step in step-by-step replay.
func NewRunner(styles terminal.Styles, logger *slog.Logger, stepDelay time.Duration, reservedLines int) *Runner {
	return &Runner{
		styles:        styles,
		logger:        logger.With("component", "selfcheck"),
		stepDelay:     stepDelay,
		reservedLines: reservedLines,
		sleep:         time.Sleep,
	}
}

// scratch is a throwaway catalog with its own file, store and service.
type scratch struct {
	dir     string
	path    string
	store   *store.InMemory
	repo    *repository.FileRepository
	service *service.Service
}

func (r *Runner) newScratch() (*scratch, error) {
	runID := uuid.NewString()
	dir, err := os.MkdirTemp("", "inventory-selfcheck-"+runID[:8]+"-")
	if err != nil {
		return nil, fmt.Errorf("create scratch directory: %w", err)
	}
	path := filepath.Join(dir, "products.csv")
	logger := r.logger.With("run_id", runID)
	repo := repository.NewFileRepository(path, logger)
	catalog := store.NewInMemoryStore()
	return &scratch{
		dir:     dir,
		path:    path,
		store:   catalog,
		repo:    repo,
		service: service.NewService(catalog, repo, logger),
	}, nil
}

// reload returns a service over a fresh store loaded from the same file.
func (s *scratch) reload(logger *slog.Logger) (*service.Service, error) {
	svc := service.NewService(store.NewInMemoryStore(), s.repo, logger)
	if _, err := svc.Load(); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *scratch) close() {
	_ = os.RemoveAll(s.dir)
}

func (r *Runner) pass(w io.Writer, name string) {
	fmt.Fprintf(w, "%s %s\n", r.styles.Success.Render("[PASS]"), name)
}

func (r *Runner) fail(w io.Writer, name string, err error) {
	fmt.Fprintf(w, "%s %s\n", r.styles.Error.Render("[FAIL]"), name)
	fmt.Fprintf(w, "    %v\n", err)
}
