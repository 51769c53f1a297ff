package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stream-panel/internal/logger"
	"github.com/MKhiriev/go-stream-panel/internal/tui"
	"github.com/MKhiriev/go-stream-panel/internal/workers"
)

type App struct {
	ui      *tui.TUI
	workers *workers.Workers
	logger  *logger.Logger
}

func NewApp(ui *tui.TUI, w *workers.Workers, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, fmt.Errorf("nil terminal ui")
	}
	return &App{ui: ui, workers: w, logger: log}, nil
}

// Run starts the background workers and blocks in the terminal UI until the
// user quits. Workers are stopped before Run returns so no refresh goroutine
// outlives the screen.
func (a *App) Run() error {
	if a.workers != nil {
		a.workers.Run()
		defer a.workers.Stop()
	}

	a.logger.Info().Msg("panel started")
	if err := a.ui.Run(context.Background()); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}

	a.logger.Info().Msg("panel stopped")
	return nil
}
