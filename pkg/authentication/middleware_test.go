// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

func newTestMiddleware() *Middleware {
	return NewMiddleware(tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestAuthenticateInjectsPrincipal(t *testing.T) {
	m := newTestMiddleware()

	var got *Principal
	handler := m.Authenticate()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = PrincipalFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Authenticated-User-Id", "user-1")
	req.Header.Set("X-Authenticated-Email", "u@example.com")
	req.Header.Set("X-Email-Verified", "true")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got == nil || got.UserID != "user-1" || got.Email != "u@example.com" || !got.EmailVerified {
		t.Errorf("unexpected principal: %+v", got)
	}
}

func TestAuthenticateRejectsMissingIdentity(t *testing.T) {
	m := newTestMiddleware()

	called := false
	handler := m.Authenticate()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if called {
		t.Error("handler must not run without identity")
	}
}

func TestAuthenticateUnverifiedEmailDefaultsFalse(t *testing.T) {
	m := newTestMiddleware()

	var got *Principal
	handler := m.Authenticate()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = PrincipalFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Authenticated-User-Id", "user-1")

	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil || got.EmailVerified {
		t.Errorf("expected unverified principal, got %+v", got)
	}
}
