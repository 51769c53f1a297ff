// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// streaming panel's server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgSignedIn is returned when a credential pair matched a live,
	// unexpired account. The wording matches the panel's sign-in toast.
	MsgSignedIn = "Signed In!"

	// MsgWrongCredentials is returned when no account matched the supplied
	// email/password pair. It deliberately never says which of the two
	// fields was wrong.
	MsgWrongCredentials = "Wrong Credentials!"

	// MsgAccountExpired is returned when an account matched but is disabled
	// or past its expiry time. Both cases share one message on purpose.
	MsgAccountExpired = "Account Expired!"

	// MsgWrongAccessCode is returned when the admin gate rejects the shared
	// access code.
	MsgWrongAccessCode = "wrong access code"

	// MsgEmailAlreadyExists is returned when a member creation or update is
	// rejected because the email is already taken by another record.
	MsgEmailAlreadyExists = "email already exists"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"
)
