// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-stream-panel/models"
)

type AuthService interface {
	// Login checks the supplied credentials against the current roster and
	// returns the sign-in outcome. A rejection is not an error: the outcome
	// carries the reason. Errors are reserved for store failures.
	Login(ctx context.Context, credentials models.Credentials) (models.Outcome, error)

	// VerifyAccessCode checks the shared admin access code and issues a
	// signed gate token on success. A wrong code yields ErrWrongAccessCode.
	VerifyAccessCode(ctx context.Context, code string) (models.Token, error)

	// ParseToken validates a raw gate token string from the Authorization
	// header. Any failure is normalised to ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type RosterService interface {
	// List returns the full roster, newest first.
	List(ctx context.Context) ([]models.User, error)

	// Create adds a member account from the admin form draft and returns
	// the stored record with server-assigned fields.
	Create(ctx context.Context, draft models.UserDraft) (models.User, error)

	// Update applies the non-empty draft fields to the record with the
	// given id. Reports whether a row was touched.
	Update(ctx context.Context, id string, draft models.UserDraft) (bool, error)

	// Delete removes the record with the given id. Deleting the reserved
	// administrator record yields ErrAdminUndeletable with the roster
	// unchanged.
	Delete(ctx context.Context, id string) (bool, error)

	// Revision returns the current roster mutation counter, the cheap
	// change-poll target for remote clients.
	Revision(ctx context.Context) (uint64, error)
}

// RosterServiceWrapper defines middleware composition for RosterService.
// Implementations wrap an existing RosterService to add behavior such as
// logging or validating.
type RosterServiceWrapper interface {
	Wrap(RosterService) RosterService // returns a decorated RosterService applying additional behavior
}
