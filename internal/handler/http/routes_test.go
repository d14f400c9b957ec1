// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Khailov

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/internal/service"
	"github.com/mkhailov/go-storage-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires a full router over mocked services.
func newTestRouter(t *testing.T, auth service.AuthService, storage service.StorageService) http.Handler {
	t.Helper()
	h := NewHandler(&service.Services{AuthService: auth, StorageService: storage}, logger.Nop())
	return h.Init()
}

// TestRoutes_StorageRequiresAuth verifies that every storage route is
// behind the auth middleware.
func TestRoutes_StorageRequiresAuth(t *testing.T) {
	router := newTestRouter(t, &mockAuthService{}, &mockStorageService{})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/storage/manifest"},
		{http.MethodPost, "/api/v1/storage/read"},
		{http.MethodPut, "/api/v1/storage"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

// TestRoutes_AuthRoutesArePublic verifies that registration and login are
// reachable without a token.
func TestRoutes_AuthRoutesArePublic(t *testing.T) {
	auth := &mockAuthService{
		registerAccountFn: func(_ context.Context, _, _ string) (models.Account, error) {
			return testAccount, nil
		},
		loginFn: func(_ context.Context, _, _ string) (models.Account, error) {
			return testAccount, nil
		},
		createTokenFn: func(_ context.Context, _ models.Account) (models.Token, error) {
			return stubToken("t"), nil
		},
	}
	router := newTestRouter(t, auth, &mockStorageService{})

	for _, path := range []string{"/api/v1/auth/register", "/api/v1/auth/login"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(authBody(t, "alice", "secret")))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

// TestRoutes_FullStorageFlow drives an authenticated request through the
// whole middleware chain down to the storage handler.
func TestRoutes_FullStorageFlow(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{AccountID: 7}, nil
		},
	}
	storage := &mockStorageService{
		getManifestFn: func(_ context.Context, accountID int64) (models.Manifest, error) {
			assert.Equal(t, int64(7), accountID)
			return models.Manifest{Version: 2}, nil
		},
	}
	router := newTestRouter(t, auth, storage)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/storage/manifest", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version":2`)
}

// TestRoutes_TraceIDHeader verifies that every response carries a trace
// identifier, either echoed from the request or freshly minted.
func TestRoutes_TraceIDHeader(t *testing.T) {
	router := newTestRouter(t, &mockAuthService{}, &mockStorageService{})

	t.Run("generated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/storage/manifest", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
	})

	t.Run("echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/storage/manifest", nil)
		req.Header.Set(traceIDHeader, "trace-123")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
	})
}

// TestRoutes_UnknownPath verifies chi's default 404 for unregistered paths.
func TestRoutes_UnknownPath(t *testing.T) {
	router := newTestRouter(t, &mockAuthService{}, &mockStorageService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
