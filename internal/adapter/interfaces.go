// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the panel uses to talk to the
// roster server.
//
// The primary abstraction is [ServerAdapter], which decouples the panel's
// service layer from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-stream-panel/internal/service"
	"github.com/MKhiriev/go-stream-panel/models"
)

// ServerAdapter defines transport-agnostic communication with the roster
// server. Implementations are responsible for serialisation, bearer token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
//
// The embedded [service.RemoteSource] covers roster reads, mutations and the
// change subscription; everything else here concerns authentication.
type ServerAdapter interface {
	service.RemoteSource

	// SetToken stores the admin-gate bearer token attached to all
	// subsequent roster requests. It is called automatically after a
	// successful VerifyAccessCode.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if the gate has not been passed yet.
	Token() string

	// Login submits a credential pair for evaluation. When the server
	// rejects the pair with 401, the returned error wraps
	// [ErrUnauthorized] and the response still carries the server's
	// rejection message, so callers can surface it verbatim.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// VerifyAccessCode submits the shared admin access code. On success
	// the gate token from the Authorization response header is stored via
	// SetToken and returned. A wrong code yields [ErrUnauthorized].
	VerifyAccessCode(ctx context.Context, code string) (string, error)

	// Revision fetches the server's roster revision counter. The change
	// subscription polls it under the hood; it is exposed for callers
	// that want a one-off read.
	Revision(ctx context.Context) (uint64, error)
}
