// Package main runs the interactive product inventory manager.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/abgdnv/inventory/internal/app"
	"github.com/abgdnv/inventory/internal/config"
	"github.com/abgdnv/inventory/internal/terminal"
	"github.com/abgdnv/inventory/pkg/bootstrap"
	"github.com/google/uuid"
)

func main() {
	if err := run(); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
}

// run loads the configuration and the catalog, then hands the terminal to the list controller until Exit.
func run() error {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}

	logOutput, err := bootstrap.OpenLogOutput(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logOutput.Close()

	logger := bootstrap.NewLogger(cfg.Log.Level, logOutput).With("session_id", uuid.NewString())
	slog.SetDefault(logger)
	logger.Debug("Configuration loaded", "config", cfg.String())

	console := terminal.NewConsole(os.Stdin, os.Stdout, cfg.Terminal.DefaultRows)
	deps := app.SetupDependencies(cfg, console, terminal.NewStyles(os.Stdout), logger)

	loaded, err := deps.ProductService.Load()
	if err != nil {
		logger.Error("Catalog load failed", "path", cfg.Catalog.Path, "error", err)
		return err
	}
	logger.Info("Inventory manager started", "products", loaded, "catalog", cfg.Catalog.Path)

	if err := deps.Controller.Run(); err != nil && !errors.Is(err, io.EOF) {
		logger.Error("Terminal input failed", "error", err)
		return err
	}
	logger.Info("Inventory manager stopped")
	return nil
}
