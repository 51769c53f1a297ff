// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-stream-panel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/roster_store_mock.go -package=mock

// RosterStore is the persistent record store holding the member roster.
//
// List returns every record ordered by creation time descending (newest
// first). Insert assigns the record identifier and returns the canonical
// stored row. Update and Delete report whether a row was touched; targeting
// an unknown id yields (false, nil), not an error.
type RosterStore interface {
	List(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, user models.User) (models.User, error)
	Update(ctx context.Context, id string, patch models.UserPatch) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ChangeFeed announces roster mutations to subscribers.
//
// Handlers receive no delta payload: an event only means "something changed,
// refetch if you care". Subscribe returns a deregistration function that is
// safe to call more than once; after the first call the handler is never
// invoked again.
type ChangeFeed interface {
	Subscribe(handler func()) (unsubscribe func())
}

// NotifyingStore combines a RosterStore with its change feed and a
// monotonically increasing revision counter bumped on every successful
// mutation. The revision is what remote clients poll.
type NotifyingStore interface {
	RosterStore
	ChangeFeed
	Revision() uint64
}