package config

import (
	"fmt"
	"time"
)

// PanelApp holds application-level settings used by the panel client.
type PanelApp struct {
	// AdminEmail is the reserved administrator address. The panel uses it
	// to hide the delete action for the administrator row.
	AdminEmail string
	// Version is the application version shown on the sign-in screen.
	Version string
}

// PanelAdapter holds network settings used by the panel transport layer.
type PanelAdapter struct {
	// ServerAddress is the base address of the roster server API.
	ServerAddress string
	// RequestTimeout is the default timeout for outbound panel requests.
	RequestTimeout time.Duration
	// PollInterval is how often the revision endpoint is polled for
	// change detection.
	PollInterval time.Duration
}

// PanelStorage groups panel-local persistence settings.
type PanelStorage struct {
	// SessionPath is the file where session state and remembered
	// credentials live.
	SessionPath string
	// LogPath is the panel log file.
	LogPath string
}

// PanelWorkers contains panel background worker settings.
type PanelWorkers struct {
	// ResyncInterval defines how often the safety-net resync runs.
	ResyncInterval time.Duration
}

// PanelConfig is the top-level panel configuration assembled from
// [StructuredConfig].
type PanelConfig struct {
	// App contains application-level panel settings.
	App PanelApp
	// Adapter contains panel transport addresses and timeouts.
	Adapter PanelAdapter
	// Storage contains panel persistence settings.
	Storage PanelStorage
	// Workers contains background job settings.
	Workers PanelWorkers
}

// GetPanelConfig builds and validates a panel-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the panel runtime, and validates the resulting [PanelConfig].
func GetPanelConfig() (*PanelConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	panelCfg := &PanelConfig{
		App: PanelApp{
			AdminEmail: cfg.App.AdminEmail,
			Version:    cfg.App.Version,
		},
		Adapter: PanelAdapter{
			ServerAddress:  cfg.Panel.ServerAddress,
			RequestTimeout: cfg.Panel.RequestTimeout,
			PollInterval:   cfg.Panel.PollInterval,
		},
		Storage: PanelStorage{
			SessionPath: cfg.Panel.SessionPath,
			LogPath:     cfg.Panel.LogPath,
		},
		Workers: PanelWorkers{ResyncInterval: cfg.Workers.ResyncInterval},
	}

	return panelCfg, panelCfg.validate()
}
