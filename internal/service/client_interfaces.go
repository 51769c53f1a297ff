// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-stream-panel/internal/store"
	"github.com/MKhiriev/go-stream-panel/models"
)

// RemoteSource is the slice of the server adapter the synchronizer needs:
// roster reads and mutations plus the change subscription.
type RemoteSource interface {
	store.RosterStore
	store.ChangeFeed
}

// Synchronizer defines the client-side contract for keeping a local roster
// cache aligned with the server.
type Synchronizer interface {
	// Refresh fetches the full roster and atomically replaces the local
	// cache. On failure the last-known-good cache is kept and the
	// connection flag flips to false; success flips it back to true.
	Refresh(ctx context.Context) ([]models.User, error)

	// Watch subscribes to the change feed. Each change event triggers
	// exactly one Refresh and, when it succeeds, one handler call with the
	// new roster. Returns an idempotent unsubscribe function.
	Watch(ctx context.Context, handler func([]models.User)) func()

	// Snapshot returns a copy of the cached roster.
	Snapshot() []models.User

	// Connected reports whether the most recent refresh succeeded.
	Connected() bool

	// Updates returns the count of successful change-driven refreshes.
	Updates() uint64

	// Prune drops the record with the given id from the local cache
	// without a round trip, so the acting client sees its own delete
	// immediately.
	Prune(id string)
}
