package validators

import (
	"context"

	"github.com/MKhiriev/go-stream-panel/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldEmail targets the unique sign-in key of a member account.
	FieldEmail = "email"

	// FieldPassword targets the plain-text password of a member account.
	FieldPassword = "password"

	// FieldStatus targets the Live/Off sign-in gate of a member account.
	FieldStatus = "status"

	// FieldExpiry targets the textual expiry timestamp of an admin form draft.
	FieldExpiry = "expire_time"
)

// UserDraftValidator implements the Validator interface for the admin form
// draft of a member account.
//
// It supports both value and pointer receivers and allows optional
// field-level scoping via variadic field name arguments.
type UserDraftValidator struct {
}

// NewUserDraftValidator constructs a new UserDraftValidator
// and returns it as the Validator interface.
func NewUserDraftValidator() Validator {
	return &UserDraftValidator{}
}

// Validate dispatches validation to the draft-specific method based on the
// dynamic type of obj. Both value and pointer forms are accepted.
//
// Returns ErrUnsupportedType if obj is not a user draft.
// Optional fields restrict validation to the named subset; when omitted,
// every draft field is validated.
func (v *UserDraftValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserDraft:
		return v.validateUserDraft(ctx, value, fields...)
	case *models.UserDraft:
		return v.validateUserDraft(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUserDraft validates a single admin form draft.
//
// Default validated fields (when none specified):
// Email, Password, Status, Expiry. The expiry must be present and parse to
// an absolute timestamp; the status may be empty (it defaults downstream)
// but must be a known value when set.
//
// Returns the first encountered validation error or nil.
func (v *UserDraftValidator) validateUserDraft(_ context.Context, draft models.UserDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldStatus, FieldExpiry}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if draft.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if draft.Password == "" {
				return ErrEmptyPassword
			}
		case FieldStatus:
			if draft.Status != "" && !draft.Status.Valid() {
				return ErrInvalidStatus
			}
		case FieldExpiry:
			if draft.ExpireTime == "" {
				return ErrEmptyExpiry
			}
			if _, err := draft.Expiry(); err != nil {
				return ErrInvalidExpiry
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
