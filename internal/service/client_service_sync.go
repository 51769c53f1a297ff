package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-stream-panel/internal/logger"
	"github.com/MKhiriev/go-stream-panel/models"
)

// rosterSynchronizer keeps a local copy of the roster aligned with the
// server by refetching the whole list on every change event. There is no
// coalescing: a burst of N events costs N refreshes, which is acceptable
// for panel-sized rosters.
type rosterSynchronizer struct {
	remote RemoteSource
	logger *logger.Logger

	mu        sync.Mutex
	cache     []models.User
	connected bool
	updates   uint64
}

// NewRosterSynchronizer creates a Synchronizer over the given remote source.
// The cache is empty and the connection flag false until the first Refresh.
func NewRosterSynchronizer(remote RemoteSource, logger *logger.Logger) Synchronizer {
	return &rosterSynchronizer{
		remote: remote,
		logger: logger,
	}
}

// Refresh implements Synchronizer. The cache is replaced wholesale under the
// lock, so readers never observe a partially applied roster.
func (s *rosterSynchronizer) Refresh(ctx context.Context) ([]models.User, error) {
	roster, err := s.remote.List(ctx)
	if err != nil {
		s.mu.Lock()
		s.connected = false
		s.mu.Unlock()

		s.logger.Err(err).Msg("roster refresh failed, keeping last known state")
		return nil, fmt.Errorf("roster refresh failed: %w", err)
	}

	s.mu.Lock()
	s.cache = roster
	s.connected = true
	s.mu.Unlock()

	return s.Snapshot(), nil
}

// Watch implements Synchronizer.
func (s *rosterSynchronizer) Watch(ctx context.Context, handler func([]models.User)) func() {
	unsubscribe := s.remote.Subscribe(func() {
		roster, err := s.Refresh(ctx)
		if err != nil {
			return
		}

		s.mu.Lock()
		s.updates++
		s.mu.Unlock()

		handler(roster)
	})

	var once sync.Once
	return func() {
		once.Do(unsubscribe)
	}
}

// Snapshot implements Synchronizer. The returned slice is a copy; callers
// may mutate it freely.
func (s *rosterSynchronizer) Snapshot() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]models.User, len(s.cache))
	copy(snapshot, s.cache)
	return snapshot
}

func (s *rosterSynchronizer) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

func (s *rosterSynchronizer) Updates() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updates
}

// Prune implements Synchronizer. The next change-driven refresh harmlessly
// echoes the deletion back.
func (s *rosterSynchronizer) Prune(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.cache[:0]
	for _, user := range s.cache {
		if user.ID != id {
			filtered = append(filtered, user)
		}
	}
	s.cache = filtered
}
