package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-stream-panel/internal/service"
	"github.com/MKhiriev/go-stream-panel/models"
	"github.com/stretchr/testify/assert"
)

func testRouterHandler() *Handler {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.Outcome, error) {
			return models.Accept(memberUser(), false), nil
		},
		verifyAccessCodeFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{SignedString: "gate"}, nil
		},
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "gate" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{}, nil
		},
	}
	roster := &mockRosterService{
		listFn:     func(_ context.Context) ([]models.User, error) { return nil, nil },
		revisionFn: func(_ context.Context) (uint64, error) { return 0, nil },
	}
	return newTestHandler(auth, roster)
}

func TestRoutes_PublicEndpoints(t *testing.T) {
	router := testRouterHandler().Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a","password":"b"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/admin/verify", strings.NewReader(`{"code":"786391"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_RosterRequiresGateToken(t *testing.T) {
	router := testRouterHandler().Init()

	req := httptest.NewRequest(http.MethodGet, "/api/roster", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/roster", nil)
	req.Header.Set("Authorization", "Bearer gate")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_RevisionRequiresGateToken(t *testing.T) {
	router := testRouterHandler().Init()

	req := httptest.NewRequest(http.MethodGet, "/api/roster/revision", nil)
	req.Header.Set("Authorization", "Bearer gate")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_UnsupportedMethodHidden(t *testing.T) {
	router := testRouterHandler().Init()

	// PUT is not registered on the login route; the router answers 404
	// instead of 405 to avoid leaking route existence
	req := httptest.NewRequest(http.MethodPut, "/api/auth/login", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_TraceIDHeaderSet(t *testing.T) {
	router := testRouterHandler().Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a","password":"b"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestRoutes_TraceIDHeaderEchoed(t *testing.T) {
	router := testRouterHandler().Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a","password":"b"}`))
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}
