package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-stream-panel/internal/adapter"
	"github.com/MKhiriev/go-stream-panel/internal/client"
	"github.com/MKhiriev/go-stream-panel/internal/config"
	"github.com/MKhiriev/go-stream-panel/internal/logger"
	"github.com/MKhiriev/go-stream-panel/internal/service"
	"github.com/MKhiriev/go-stream-panel/internal/session"
	"github.com/MKhiriev/go-stream-panel/internal/tui"
	"github.com/MKhiriev/go-stream-panel/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetPanelConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	// panel logs go to a file so the TUI owns the terminal
	log := logger.NewPanelLogger("stream-panel", cfg.Storage.LogPath)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	sessionStore := session.NewStore(cfg.Storage.SessionPath, log)
	syncer := service.NewRosterSynchronizer(serverAdapter, log)

	ui := tui.New(serverAdapter, syncer, sessionStore, cfg.App, log)

	app, err := client.NewApp(ui, workers.NewWorkers(workers.NewResyncWorker(syncer, cfg.Workers, log)), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init panel app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("panel run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
