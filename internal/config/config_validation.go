// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AdminEmail == "" || cfg.App.AdminAccessCode == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *PanelConfig) validate() error {
	if cfg.Adapter.ServerAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.PollInterval <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.ResyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.AdminEmail == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}