// Package app contains the application setup for the inventory manager.
package app

import (
	"log/slog"

	"github.com/abgdnv/inventory/internal/config"
	"github.com/abgdnv/inventory/internal/menu"
	"github.com/abgdnv/inventory/internal/product/repository"
	"github.com/abgdnv/inventory/internal/product/service"
	"github.com/abgdnv/inventory/internal/product/store"
	"github.com/abgdnv/inventory/internal/selfcheck"
	"github.com/abgdnv/inventory/internal/terminal"
)

type Dependencies struct {
	ProductService service.ProductService
	Controller     *menu.Controller
	Logger         *slog.Logger
}

// SetupDependencies builds the catalog service and the list controller on term.
// The catalog is not loaded yet; callers run ProductService.Load first.
func SetupDependencies(cfg *config.Config, term terminal.Terminal, styles terminal.Styles, logger *slog.Logger) *Dependencies {
	repo := repository.NewFileRepository(cfg.Catalog.Path, logger)
	pService := service.NewService(store.NewInMemoryStore(), repo, logger)

	runner := selfcheck.NewRunner(styles, logger, cfg.SelfCheck.StepDelay, cfg.Terminal.ReservedLines)
	controller := menu.NewController(pService, term, styles, logger, menu.Options{
		ReservedLines:    cfg.Terminal.ReservedLines,
		RunUnitTests:     runner.UnitTests,
		RunEndToEndTests: runner.EndToEndTests,
	})

	return &Dependencies{
		ProductService: pService,
		Controller:     controller,
		Logger:         logger,
	}
}
