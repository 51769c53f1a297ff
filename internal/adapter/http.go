// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-stream-panel/internal/config"
	"github.com/MKhiriev/go-stream-panel/internal/logger"
	"github.com/MKhiriev/go-stream-panel/internal/utils"
	"github.com/MKhiriev/go-stream-panel/models"
	"github.com/go-resty/resty/v2"
)

const (
	defaultRequestTimeout = 15 * time.Second
	defaultPollInterval   = 2 * time.Second
)

type httpServerAdapter struct {
	client       *utils.HTTPClient
	pollInterval time.Duration

	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.ServerAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if cfg.ServerAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.PanelAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server address: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpServerAdapter{client: client, pollInterval: pollInterval, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent roster requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credential pair to
// POST /api/auth/login. On 401 the returned [models.LoginResponse] carries
// the server's rejection message and the error wraps [ErrUnauthorized], so
// the caller can show the message and still branch on the sentinel.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	var out models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Email: creds.Email, Password: creds.Password}).
		SetResult(&out).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		out.Message = errorBody(resp)
		return out, mapHTTPError(resp)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	return out, nil
}

// VerifyAccessCode implements [ServerAdapter]. It POSTs the shared access
// code to POST /api/admin/verify. On success the gate token is extracted
// from the Authorization response header, stored via SetToken and returned.
// Returns an error wrapping [ErrUnauthorized] when the code is wrong.
func (h *httpServerAdapter) VerifyAccessCode(ctx context.Context, code string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.VerifyRequest{Code: code}).
		Post("/api/admin/verify")
	if err != nil {
		return "", fmt.Errorf("verify access code request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("verify access code parse bearer token: %w", err)
	}

	h.SetToken(token)
	return token, nil
}

// List implements [service.RemoteSource]. It GETs the full roster from
// GET /api/roster. Requires the gate token to be set.
func (h *httpServerAdapter) List(ctx context.Context) ([]models.User, error) {
	var roster []models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&roster).
		Get("/api/roster")
	if err != nil {
		return nil, fmt.Errorf("list roster request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return roster, nil
}

// Insert implements [service.RemoteSource]. It POSTs a member draft built
// from user to POST /api/roster and returns the canonical stored record.
// Requires the gate token. Returns [ErrConflict] (wrapped) on a duplicate
// email and [ErrBadRequest] (wrapped) on a rejected draft.
func (h *httpServerAdapter) Insert(ctx context.Context, user models.User) (models.User, error) {
	var saved models.User

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draftFromUser(user)).
		SetResult(&saved).
		Post("/api/roster")
	if err != nil {
		return models.User{}, fmt.Errorf("insert member request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return saved, nil
}

// Update implements [service.RemoteSource]. It PATCHes the draft form of
// patch to PATCH /api/roster/{id} and reports whether a row was touched.
// Requires the gate token.
func (h *httpServerAdapter) Update(ctx context.Context, id string, patch models.UserPatch) (bool, error) {
	var out models.UpdateResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draftFromPatch(patch)).
		SetResult(&out).
		Patch("/api/roster/" + url.PathEscape(id))
	if err != nil {
		return false, fmt.Errorf("update member request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return out.Updated, nil
}

// Delete implements [service.RemoteSource]. It sends DELETE /api/roster/{id}
// and reports whether a row was removed. Requires the gate token. Returns
// [ErrForbidden] (wrapped) when the server refuses to delete the reserved
// administrator record.
func (h *httpServerAdapter) Delete(ctx context.Context, id string) (bool, error) {
	var out models.DeleteResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&out).
		Delete("/api/roster/" + url.PathEscape(id))
	if err != nil {
		return false, fmt.Errorf("delete member request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return out.Deleted, nil
}

// Revision implements [ServerAdapter]. It GETs the roster revision counter
// from GET /api/roster/revision. Requires the gate token.
func (h *httpServerAdapter) Revision(ctx context.Context) (uint64, error) {
	var out models.RevisionResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&out).
		Get("/api/roster/revision")
	if err != nil {
		return 0, fmt.Errorf("revision request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return out.Revision, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// draftFromUser converts a full record into the wire form the server's
// create endpoint accepts. The expiry travels as RFC 3339 text.
func draftFromUser(user models.User) models.UserDraft {
	return models.UserDraft{
		Email:      user.Email,
		Password:   user.Password,
		Status:     user.Status,
		ExpireTime: user.ExpireTime.Format(time.RFC3339),
	}
}

// draftFromPatch converts a partial update into the wire form the server's
// update endpoint accepts. Nil fields stay empty and mean "leave unchanged".
func draftFromPatch(patch models.UserPatch) models.UserDraft {
	var draft models.UserDraft
	if patch.Email != nil {
		draft.Email = *patch.Email
	}
	if patch.Password != nil {
		draft.Password = *patch.Password
	}
	if patch.Status != nil {
		draft.Status = *patch.Status
	}
	if patch.ExpireTime != nil {
		draft.ExpireTime = patch.ExpireTime.Format(time.RFC3339)
	}
	return draft
}
