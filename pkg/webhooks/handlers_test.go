// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/workspace-service/internal/logging"
	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

func setupAPI(t *testing.T, token string) (*chi.Mux, *MockServiceInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := NewMockServiceInterface(ctrl)

	mux := chi.NewMux()
	NewAPI(service, token, logging.NewNoopLogger()).RegisterEndpoints(mux)

	return mux, service
}

func TestRegistrationWebhook(t *testing.T) {
	mux, service := setupAPI(t, "hook-token")

	service.EXPECT().HandleRegistration(gomock.Any(), "identity-1", "jane@example.com").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/registration",
		bytes.NewBufferString(`{"id":"identity-1","traits":{"email":"jane@example.com"}}`))
	req.Header.Set("Authorization", "Bearer hook-token")
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRegistrationWebhookRejectsBadToken(t *testing.T) {
	mux, _ := setupAPI(t, "hook-token")

	req := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/registration",
		bytes.NewBufferString(`{"id":"identity-1","traits":{"email":"jane@example.com"}}`))
	req.Header.Set("Authorization", "Bearer wrong")
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRegistrationWebhookRejectsBadBody(t *testing.T) {
	mux, _ := setupAPI(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/registration", bytes.NewBufferString(`{`))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
