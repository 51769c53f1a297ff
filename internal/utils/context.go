// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key used to store the request trace identifier in
// the context. Used together with GetTraceIDFromContext for type-safe
// retrieval of the trace ID from context.Context.
var TraceIDCtxKey = contextKey("traceID")

// GateSubjectCtxKey is the key under which the subject of a validated
// admin-gate token is stored after the authorization middleware admits
// a request.
var GateSubjectCtxKey = contextKey("gateSubject")

// GetTraceIDFromContext retrieves the request trace identifier from the
// context.
//
// Returns the trace ID and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}

// GetGateSubjectFromContext retrieves the admin-gate token subject from
// the context. A missing value means the request never passed the
// authorization middleware.
func GetGateSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(GateSubjectCtxKey).(string)
	return subject, ok
}
