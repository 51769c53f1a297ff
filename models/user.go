package models

import (
	"errors"
	"time"
)

// Status describes whether a member account is allowed to sign in.
type Status string

const (
	// StatusLive marks an active account that may authenticate until its
	// expiry time passes.
	StatusLive Status = "Live"

	// StatusOff marks a disabled account. Sign-in attempts are rejected
	// regardless of the expiry time.
	StatusOff Status = "Off"
)

// Valid reports whether s is one of the two known status values.
func (s Status) Valid() bool {
	return s == StatusLive || s == StatusOff
}

// User represents a member account of the streaming panel.
//
// Credentials are stored and compared as plain text by design: the panel
// manages shared demo accounts, not personal identities, and the product
// explicitly scopes out password hashing.
type User struct {
	// ID is the store-assigned unique identifier (UUID string).
	// It is immutable after creation.
	ID string `json:"id"`

	// Email is the unique sign-in key of the account.
	Email string `json:"email"`

	// Password is compared by case-sensitive equality during sign-in.
	Password string `json:"password"`

	// Status gates sign-in: only StatusLive accounts may authenticate.
	Status Status `json:"status"`

	// ExpireTime is the instant after which the account no longer
	// authenticates. An account whose expiry is at or before "now" is
	// treated the same as a disabled one.
	ExpireTime time.Time `json:"expire_time"`

	// CreatedAt is set by the store on insert. Rosters are listed newest
	// first by this field.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped by the store on every update.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserDraft is the admin form input for creating a member account.
// ExpireTime arrives as text (RFC 3339 or the HTML datetime-local layout)
// and is normalized to an absolute timestamp via Expiry.
type UserDraft struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Status     Status `json:"status"`
	ExpireTime string `json:"expire_time"`
}

// expiryLayouts are the accepted textual forms of UserDraft.ExpireTime:
// RFC 3339 and the HTML datetime-local form layout.
var expiryLayouts = []string{time.RFC3339, "2006-01-02T15:04"}

// ErrUnparsableExpiry is returned when a draft expiry matches none of the
// accepted layouts.
var ErrUnparsableExpiry = errors.New("expiry time matches no accepted layout")

// Expiry parses the draft expiry text into an absolute timestamp.
func (d UserDraft) Expiry() (time.Time, error) {
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, d.ExpireTime); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrUnparsableExpiry
}

// Patch converts the draft into a partial update. Empty fields mean
// "leave unchanged" and are omitted from the patch.
func (d UserDraft) Patch() (UserPatch, error) {
	var patch UserPatch
	if d.Email != "" {
		patch.Email = &d.Email
	}
	if d.Password != "" {
		patch.Password = &d.Password
	}
	if d.Status != "" {
		patch.Status = &d.Status
	}
	if d.ExpireTime != "" {
		expiry, err := d.Expiry()
		if err != nil {
			return UserPatch{}, err
		}
		patch.ExpireTime = &expiry
	}
	return patch, nil
}

// UserPatch is a partial update of a member account. Nil fields are left
// untouched by the store.
type UserPatch struct {
	Email      *string    `json:"email,omitempty"`
	Password   *string    `json:"password,omitempty"`
	Status     *Status    `json:"status,omitempty"`
	ExpireTime *time.Time `json:"expire_time,omitempty"`
}

// Empty reports whether the patch carries no changes at all.
func (p UserPatch) Empty() bool {
	return p.Email == nil && p.Password == nil && p.Status == nil && p.ExpireTime == nil
}
