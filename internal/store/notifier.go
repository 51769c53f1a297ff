package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-stream-panel/internal/logger"
	"github.com/MKhiriev/go-stream-panel/models"
)

// changeHub is an in-process fan-out of roster change events.
//
// Handlers are invoked synchronously, once per event, with no delta payload.
// The hub is safe for concurrent use; unsubscribe functions are idempotent.
type changeHub struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]func()
}

func newChangeHub() *changeHub {
	return &changeHub{handlers: make(map[int]func())}
}

// Subscribe registers handler and returns its deregistration function.
// Calling the returned function more than once has no additional effect.
func (h *changeHub) Subscribe(handler func()) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.handlers[id] = handler
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.handlers, id)
			h.mu.Unlock()
		})
	}
}

// notify invokes every registered handler once.
func (h *changeHub) notify() {
	h.mu.Lock()
	handlers := make([]func(), 0, len(h.handlers))
	for _, fn := range h.handlers {
		handlers = append(handlers, fn)
	}
	h.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}

// notifyingStore decorates a [RosterStore] with change notification and a
// monotonic revision counter. Every successful Insert/Update/Delete bumps
// the revision and fires one event to all subscribers; reads pass through
// untouched. Updates and deletes that touched no row fire nothing.
type notifyingStore struct {
	inner  RosterStore
	hub    *changeHub
	logger *logger.Logger

	mu       sync.Mutex
	revision uint64
}

// NewNotifyingStore wraps inner with change notification.
func NewNotifyingStore(inner RosterStore, logger *logger.Logger) NotifyingStore {
	logger.Debug().Msg("creating notifying roster store")
	return &notifyingStore{
		inner:  inner,
		hub:    newChangeHub(),
		logger: logger,
	}
}

func (n *notifyingStore) List(ctx context.Context) ([]models.User, error) {
	return n.inner.List(ctx)
}

func (n *notifyingStore) Insert(ctx context.Context, user models.User) (models.User, error) {
	saved, err := n.inner.Insert(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	n.bump(ctx)
	return saved, nil
}

func (n *notifyingStore) Update(ctx context.Context, id string, patch models.UserPatch) (bool, error) {
	updated, err := n.inner.Update(ctx, id, patch)
	if err != nil || !updated {
		return updated, err
	}

	n.bump(ctx)
	return true, nil
}

func (n *notifyingStore) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := n.inner.Delete(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}

	n.bump(ctx)
	return true, nil
}

// Subscribe implements [ChangeFeed].
func (n *notifyingStore) Subscribe(handler func()) func() {
	return n.hub.Subscribe(handler)
}

// Revision returns the current mutation counter.
func (n *notifyingStore) Revision() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.revision
}

func (n *notifyingStore) bump(ctx context.Context) {
	n.mu.Lock()
	n.revision++
	revision := n.revision
	n.mu.Unlock()

	logger.FromContext(ctx).Debug().Uint64("revision", revision).Msg("roster changed")
	n.hub.notify()
}
