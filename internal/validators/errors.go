package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail    = errors.New("email is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrEmptyExpiry   = errors.New("expiry time is required")
	ErrInvalidExpiry = errors.New("invalid expiry time")
	ErrInvalidStatus = errors.New("invalid status")
)
