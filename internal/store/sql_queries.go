package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-stream-panel/models"
)

const (
	listUsers = `
		SELECT
			id,
			email,
			password,
			status,
			expire_time,
			created_at,
			updated_at
		FROM users
		ORDER BY created_at DESC;`

	insertUser = `
		INSERT INTO users (id, email, password, status, expire_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, password, status, expire_time, created_at, updated_at;`

	deleteUser = `DELETE FROM users WHERE id = $1;`
)

// buildUpdateUserQuery assembles a partial UPDATE for the given patch.
// Only non-nil fields are written; updated_at is always bumped. Returns
// [ErrEmptyPatch] when the patch carries nothing to change.
func buildUpdateUserQuery(id string, patch models.UserPatch, now time.Time) (string, []any, error) {
	if patch.Empty() {
		return "", nil, ErrEmptyPatch
	}

	update := sq.Update(models.User{}.TableName()).
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", now).
		Where(sq.Eq{"id": id})

	if patch.Email != nil {
		update = update.Set("email", *patch.Email)
	}
	if patch.Password != nil {
		update = update.Set("password", *patch.Password)
	}
	if patch.Status != nil {
		update = update.Set("status", string(*patch.Status))
	}
	if patch.ExpireTime != nil {
		update = update.Set("expire_time", *patch.ExpireTime)
	}

	return update.ToSql()
}
