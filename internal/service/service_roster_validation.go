package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stream-panel/internal/validators"
	"github.com/MKhiriev/go-stream-panel/models"
)

// RosterValidationService is the validating decorator around a RosterService.
// Drafts are rejected before any store call so that form errors stay cheap
// and the storage layer only ever sees well-formed input.
type RosterValidationService struct {
	inner     RosterService
	validator validators.Validator
}

func NewRosterValidationService() RosterServiceWrapper {
	return &RosterValidationService{
		validator: validators.NewUserDraftValidator(),
	}
}

// Wrap returns a RosterService that validates drafts before delegating to inner.
func (v *RosterValidationService) Wrap(inner RosterService) RosterService {
	return &RosterValidationService{
		inner:     inner,
		validator: v.validator,
	}
}

func (v *RosterValidationService) List(ctx context.Context) ([]models.User, error) {
	return v.inner.List(ctx)
}

// Create requires every draft field: the admin add form submits all of them.
func (v *RosterValidationService) Create(ctx context.Context, draft models.UserDraft) (models.User, error) {
	if err := v.validator.Validate(ctx, draft); err != nil {
		return models.User{}, fmt.Errorf("error during draft validation before saving: %w", err)
	}

	return v.inner.Create(ctx, draft)
}

// Update validates only the fields the draft actually carries; empty fields
// mean "leave unchanged" and are skipped.
func (v *RosterValidationService) Update(ctx context.Context, id string, draft models.UserDraft) (bool, error) {
	var fields []string
	if draft.Email != "" {
		fields = append(fields, validators.FieldEmail)
	}
	if draft.Password != "" {
		fields = append(fields, validators.FieldPassword)
	}
	if draft.Status != "" {
		fields = append(fields, validators.FieldStatus)
	}
	if draft.ExpireTime != "" {
		fields = append(fields, validators.FieldExpiry)
	}

	if len(fields) > 0 {
		if err := v.validator.Validate(ctx, draft, fields...); err != nil {
			return false, fmt.Errorf("error during draft validation before update: %w", err)
		}
	}

	return v.inner.Update(ctx, id, draft)
}

func (v *RosterValidationService) Delete(ctx context.Context, id string) (bool, error) {
	return v.inner.Delete(ctx, id)
}

func (v *RosterValidationService) Revision(ctx context.Context) (uint64, error) {
	return v.inner.Revision(ctx)
}
