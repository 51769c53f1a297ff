package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stream-panel/internal/config"
	"github.com/MKhiriev/go-stream-panel/internal/logger"
)

// Storages is the aggregate of all persistence dependencies handed to the
// service layer. Roster is always the notifying decorator, so every caller
// shares the same change feed and revision counter.
type Storages struct {
	Roster NotifyingStore
}

// NewStorages opens the configured database, applies migrations and wires
// the roster repository behind the change-notifying decorator.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	}
	if err != nil {
		return Storages{}, fmt.Errorf("opening roster database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return Storages{}, fmt.Errorf("migrating roster database: %w", err)
	}

	return Storages{
		Roster: NewNotifyingStore(NewRosterRepository(db, log), log),
	}, nil
}
