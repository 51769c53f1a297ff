package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-stream-panel/internal/logger"
	"github.com/MKhiriev/go-stream-panel/internal/utils"
	"github.com/MKhiriev/go-stream-panel/models"
	"github.com/jackc/pgerrcode"
)

// rosterRepository is the SQL-backed implementation of [RosterStore].
// It handles member account CRUD against the "users" table and works over
// both supported dialects (PostgreSQL and SQLite).
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type rosterRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

// NewRosterRepository constructs a [RosterStore] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewRosterRepository(db *DB, logger *logger.Logger) RosterStore {
	logger.Debug().Msg("creating roster repository")
	return &rosterRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// List returns the full roster ordered by creation time descending.
// The result is rebuilt wholesale on every call; there is no incremental
// diffing because rosters stay small.
func (r *rosterRepository) List(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		log.Err(err).Str("func", "*rosterRepository.List").Msg("error: listing users failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var roster []models.User
	for rows.Next() {
		var user models.User
		if err = rows.Scan(&user.ID, &user.Email, &user.Password, &user.Status, &user.ExpireTime, &user.CreatedAt, &user.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*rosterRepository.List").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		roster = append(roster, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*rosterRepository.List").Msg("error: rows iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return roster, nil
}

// Insert persists a new member account and returns the fully populated
// [models.User] with store-assigned fields (ID, CreatedAt, UpdatedAt).
//
// The INSERT uses the [insertUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *rosterRepository) Insert(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.ID = r.ids.Generate()
	row := r.db.QueryRowContext(ctx, insertUser, user.ID, user.Email, user.Password, string(user.Status), user.ExpireTime)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*rosterRepository.Insert").Msg("error: insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var saved models.User
	if err := row.Scan(&saved.ID, &saved.Email, &saved.Password, &saved.Status, &saved.ExpireTime, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*rosterRepository.Insert").Msg("error: scanning error")

		// sqlite surfaces constraint violations at Scan time
		if postgresError(err) == pgerrcode.UniqueViolation || isUniqueConstraint(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// Update applies a partial patch to the record with the given id and reports
// whether a row was touched. An unknown id yields (false, nil).
func (r *rosterRepository) Update(ctx context.Context, id string, patch models.UserPatch) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(id, patch, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*rosterRepository.Update").Msg("error: building update query failed")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*rosterRepository.Update").Msg("error: executing update failed")

		if postgresError(err) == pgerrcode.UniqueViolation || isUniqueConstraint(err) {
			return false, ErrEmailAlreadyExists
		}
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// Delete removes the record with the given id and reports whether a row was
// removed. The reserved administrator guard lives in the service layer, not
// here: the repository stays policy-free.
func (r *rosterRepository) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, id)
	if err != nil {
		log.Err(err).Str("func", "*rosterRepository.Delete").Msg("error: executing delete failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}
