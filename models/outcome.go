// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RejectReason classifies a failed sign-in attempt.
type RejectReason string

const (
	// WrongCredentials means no account matched the supplied email and
	// password pair. The message shown to the user never says which of
	// the two fields was wrong.
	WrongCredentials RejectReason = "wrong_credentials"

	// AccountExpired means an account matched but is disabled or past its
	// expiry time. Both cases share one reason on purpose.
	AccountExpired RejectReason = "account_expired"
)

// Outcome is the result of evaluating a credential pair against a roster.
// Exactly one of Accepted/Rejected applies: when Accepted is true, User and
// Admin are set; otherwise Reason is set.
type Outcome struct {
	Accepted bool
	User     User
	Admin    bool
	Reason   RejectReason
}

// Accept builds an accepted outcome for user.
func Accept(user User, admin bool) Outcome {
	return Outcome{Accepted: true, User: user, Admin: admin}
}

// Reject builds a rejected outcome with the given reason.
func Reject(reason RejectReason) Outcome {
	return Outcome{Reason: reason}
}