package service

import (
	"github.com/MKhiriev/go-stream-panel/internal/config"
	"github.com/MKhiriev/go-stream-panel/internal/logger"
	"github.com/MKhiriev/go-stream-panel/internal/store"
)

type Services struct {
	AuthService   AuthService
	RosterService RosterService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.Roster, cfg.App, logger),
		RosterService: NewRosterValidationService().Wrap(NewRosterService(storages.Roster, cfg.App, logger)),
	}
}
