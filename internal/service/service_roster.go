package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stream-panel/internal/config"
	"github.com/MKhiriev/go-stream-panel/internal/logger"
	"github.com/MKhiriev/go-stream-panel/internal/store"
	"github.com/MKhiriev/go-stream-panel/models"
)

// rosterService is the concrete implementation of RosterService.
// It translates admin form drafts into store mutations and enforces the
// single business rule the store stays ignorant of: the reserved
// administrator record cannot be deleted.
type rosterService struct {
	store      store.NotifyingStore
	adminEmail string
	logger     *logger.Logger
}

// NewRosterService constructs a RosterService on top of the notifying store.
func NewRosterService(notifying store.NotifyingStore, cfg config.App, logger *logger.Logger) RosterService {
	return &rosterService{
		store:      notifying,
		adminEmail: cfg.AdminEmail,
		logger:     logger,
	}
}

func (r *rosterService) List(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	roster, err := r.store.List(ctx)
	if err != nil {
		log.Err(err).Msg("roster listing failed")
		return nil, fmt.Errorf("roster listing failed: %w", err)
	}

	return roster, nil
}

// Create adds a member account from the admin form draft. Validation of the
// draft happens in the validators decorator before this method runs; here
// the draft is only converted to its canonical record form.
func (r *rosterService) Create(ctx context.Context, draft models.UserDraft) (models.User, error) {
	log := logger.FromContext(ctx)

	expiry, err := draft.Expiry()
	if err != nil {
		log.Error().Str("expire_time", draft.ExpireTime).Msg("unparsable expiry in draft")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	status := draft.Status
	if status == "" {
		status = models.StatusLive
	}

	user := models.User{
		Email:      draft.Email,
		Password:   draft.Password,
		Status:     status,
		ExpireTime: expiry,
	}

	saved, err := r.store.Insert(ctx, user)
	if err != nil {
		log.Err(err).Str("email", draft.Email).Msg("member creation failed")
		return models.User{}, fmt.Errorf("member creation failed: %w", err)
	}

	log.Info().Str("id", saved.ID).Str("email", saved.Email).Msg("member created")
	return saved, nil
}

// Update applies the non-empty draft fields to the record with the given id.
// Changing the administrator's email is allowed and simply redefines which
// record is the administrator.
func (r *rosterService) Update(ctx context.Context, id string, draft models.UserDraft) (bool, error) {
	log := logger.FromContext(ctx)

	patch, err := draft.Patch()
	if err != nil {
		log.Error().Str("expire_time", draft.ExpireTime).Msg("unparsable expiry in draft")
		return false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := r.store.Update(ctx, id, patch)
	if err != nil {
		log.Err(err).Str("id", id).Msg("member update failed")
		return false, fmt.Errorf("member update failed: %w", err)
	}

	return updated, nil
}

// Delete removes the record with the given id unless it is the reserved
// administrator record, which must survive so the admin surface stays
// reachable.
func (r *rosterService) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	roster, err := r.store.List(ctx)
	if err != nil {
		log.Err(err).Str("id", id).Msg("roster fetch for delete failed")
		return false, fmt.Errorf("roster fetch for delete failed: %w", err)
	}

	for _, user := range roster {
		if user.ID == id && user.Email == r.adminEmail {
			log.Warn().Str("id", id).Msg("refusing to delete reserved administrator record")
			return false, ErrAdminUndeletable
		}
	}

	deleted, err := r.store.Delete(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("member deletion failed")
		return false, fmt.Errorf("member deletion failed: %w", err)
	}

	return deleted, nil
}

func (r *rosterService) Revision(ctx context.Context) (uint64, error) {
	return r.store.Revision(), nil
}
