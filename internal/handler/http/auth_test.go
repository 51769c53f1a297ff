// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-stream-panel/internal/app"
	"github.com/MKhiriev/go-stream-panel/internal/logger"
	"github.com/MKhiriev/go-stream-panel/internal/service"
	"github.com/MKhiriev/go-stream-panel/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn            func(ctx context.Context, credentials models.Credentials) (models.Outcome, error)
	verifyAccessCodeFn func(ctx context.Context, code string) (models.Token, error)
	parseTokenFn       func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Outcome, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) VerifyAccessCode(ctx context.Context, code string) (models.Token, error) {
	return m.verifyAccessCodeFn(ctx, code)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(auth service.AuthService, roster service.RosterService) *Handler {
	return NewHandler(&service.Services{
		AuthService:   auth,
		RosterService: roster,
	}, logger.NewLogger("test"))
}

func memberUser() models.User {
	return models.User{
		ID:         "member-id",
		Email:      "viewer@example.com",
		Password:   "viewer-pass",
		Status:     models.StatusLive,
		ExpireTime: time.Now().Add(30 * 24 * time.Hour),
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Accept(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, credentials models.Credentials) (models.Outcome, error) {
			assert.Equal(t, "viewer@example.com", credentials.Email)
			return models.Accept(memberUser(), false), nil
		},
	}
	handler := newTestHandler(auth, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"viewer@example.com","password":"viewer-pass"}`))
	rec := httptest.NewRecorder()

	handler.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, app.MsgSignedIn, resp.Message)
	assert.Equal(t, "member-id", resp.User.ID)
	assert.False(t, resp.Admin)
}

func TestLogin_AcceptAdmin(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.Outcome, error) {
			return models.Accept(memberUser(), true), nil
		},
	}
	handler := newTestHandler(auth, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"admin@netflix.com","password":"admin123"}`))
	rec := httptest.NewRecorder()

	handler.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Admin)
}

func TestLogin_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		reason  models.RejectReason
		message string
	}{
		{name: "wrong credentials", reason: models.WrongCredentials, message: app.MsgWrongCredentials},
		{name: "account expired", reason: models.AccountExpired, message: app.MsgAccountExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(_ context.Context, _ models.Credentials) (models.Outcome, error) {
					return models.Reject(tt.reason), nil
				},
			}
			handler := newTestHandler(auth, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
				strings.NewReader(`{"email":"viewer@example.com","password":"nope"}`))
			rec := httptest.NewRecorder()

			handler.login(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.message, resp.Error)
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	handler := newTestHandler(&mockAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	handler.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.Outcome, error) {
			return models.Outcome{}, service.ErrInvalidDataProvided
		},
	}
	handler := newTestHandler(auth, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	handler.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_StoreFailure(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.Outcome, error) {
			return models.Outcome{}, errors.New("db down")
		},
	}
	handler := newTestHandler(auth, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"viewer@example.com","password":"viewer-pass"}`))
	rec := httptest.NewRecorder()

	handler.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
