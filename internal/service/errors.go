package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrWrongAccessCode = errors.New("wrong access code")

	ErrAdminUndeletable = errors.New("reserved administrator record cannot be deleted")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
