package store

import (
	"database/sql"

	"github.com/MKhiriev/go-stream-panel/internal/logger"
	"github.com/MKhiriev/go-stream-panel/migrations"
)

// DB wraps the raw database handle together with the dialect it was opened
// with, so migrations and error classification pick the right behavior.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// Migrate applies the embedded schema migrations using the connection's
// dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the goose/driver dialect the connection was opened with
// ("pgx" or "sqlite3").
func (db *DB) Dialect() string {
	return db.dialect
}
