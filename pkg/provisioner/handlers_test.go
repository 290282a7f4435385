// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/workspace-service/internal/access"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/authentication"
	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

func setupAPI(t *testing.T) (*chi.Mux, *MockServiceInterface, *access.MockResolverInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := NewMockServiceInterface(ctrl)
	resolver := access.NewMockResolverInterface(ctrl)

	mux := chi.NewMux()
	NewAPI(service, resolver, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger()).RegisterEndpoints(mux)

	return mux, service, resolver
}

func authenticate(r *http.Request, userID string) *http.Request {
	return r.WithContext(authentication.WithPrincipal(r.Context(), &authentication.Principal{
		UserID: userID,
		Email:  "user@example.com",
	}))
}

func wsAuthz(admin bool) *access.AuthorizedContext {
	return &access.AuthorizedContext{
		UserID:      "user-1",
		CompanyID:   "co-1",
		WorkspaceID: "ws-1",
		Company:     &access.CompanyAccess{CanMember: true, Role: "member"},
		Workspace:   &access.WorkspaceAccess{Read: true, Write: admin, Admin: admin},
	}
}

func TestArchiveWorkspaceHandler(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*MockServiceInterface, *access.MockResolverInterface)
		wantStatus int
	}{
		{
			name: "synced",
			setupMocks: func(s *MockServiceInterface, r *access.MockResolverInterface) {
				authz := wsAuthz(true)
				r.EXPECT().ResolveWorkspaceAccess(gomock.Any(), "user-1", "ws-1").Return(authz, nil)
				s.EXPECT().ArchiveWorkspace(gomock.Any(), authz).Return(&SyncResult{Synced: true}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "already archived",
			setupMocks: func(s *MockServiceInterface, r *access.MockResolverInterface) {
				authz := wsAuthz(true)
				r.EXPECT().ResolveWorkspaceAccess(gomock.Any(), "user-1", "ws-1").Return(authz, nil)
				s.EXPECT().ArchiveWorkspace(gomock.Any(), authz).Return(nil, ErrAlreadyArchived)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "forbidden",
			setupMocks: func(s *MockServiceInterface, r *access.MockResolverInterface) {
				authz := wsAuthz(false)
				r.EXPECT().ResolveWorkspaceAccess(gomock.Any(), "user-1", "ws-1").Return(authz, nil)
				s.EXPECT().ArchiveWorkspace(gomock.Any(), authz).Return(nil, ErrForbidden)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "unknown workspace",
			setupMocks: func(s *MockServiceInterface, r *access.MockResolverInterface) {
				r.EXPECT().ResolveWorkspaceAccess(gomock.Any(), "user-1", "ws-1").Return(nil, access.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, service, resolver := setupAPI(t)
			tt.setupMocks(service, resolver)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/workspaces/ws-1/archive", nil)
			req = authenticate(req, "user-1")
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestArchiveWorkspaceHandlerReportsUnsynced(t *testing.T) {
	mux, service, resolver := setupAPI(t)

	authz := wsAuthz(true)
	resolver.EXPECT().ResolveWorkspaceAccess(gomock.Any(), "user-1", "ws-1").Return(authz, nil)
	service.EXPECT().ArchiveWorkspace(gomock.Any(), authz).
		Return(&SyncResult{Synced: false, Detail: "remote archive pending reconciliation"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/workspaces/ws-1/archive", nil)
	req = authenticate(req, "user-1")
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Data SyncResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Data.Synced {
		t.Error("expected synced false in response")
	}
	if body.Data.Detail == "" {
		t.Error("expected a detail explaining the pending sync")
	}
}

func TestCreateAPIKeyHandler(t *testing.T) {
	mux, service, resolver := setupAPI(t)

	authz := wsAuthz(true)
	resolver.EXPECT().ResolveWorkspaceAccess(gomock.Any(), "user-1", "ws-1").Return(authz, nil)
	service.EXPECT().CreateAPIKey(gomock.Any(), authz, "ci key").
		Return(&types.APIKey{ID: "key-1", Name: "ci key", SecretHash: "beefcafe"}, "plaintext-secret", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/workspaces/ws-1/api-keys", bytes.NewBufferString(`{"name":"ci key"}`))
	req = authenticate(req, "user-1")
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Data["secret"] != "plaintext-secret" {
		t.Errorf("expected plaintext secret in creation response, got %v", body.Data["secret"])
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("beefcafe")) {
		t.Error("response leaked the stored secret hash")
	}
}

func TestCreateAPIKeyHandlerArchivedWorkspace(t *testing.T) {
	mux, service, resolver := setupAPI(t)

	authz := wsAuthz(true)
	resolver.EXPECT().ResolveWorkspaceAccess(gomock.Any(), "user-1", "ws-1").Return(authz, nil)
	service.EXPECT().CreateAPIKey(gomock.Any(), authz, "ci key").Return(nil, "", ErrNotActive)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/workspaces/ws-1/api-keys", bytes.NewBufferString(`{"name":"ci key"}`))
	req = authenticate(req, "user-1")
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestRevokeAPIKeyHandler(t *testing.T) {
	mux, service, resolver := setupAPI(t)

	authz := wsAuthz(true)
	resolver.EXPECT().ResolveWorkspaceAccess(gomock.Any(), "user-1", "ws-1").Return(authz, nil)
	service.EXPECT().RevokeAPIKey(gomock.Any(), authz, "key-1").Return(&SyncResult{Synced: true}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v0/workspaces/ws-1/api-keys/key-1", nil)
	req = authenticate(req, "user-1")
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReconcileWorkspaceHandlerRequiresAdmin(t *testing.T) {
	mux, _, resolver := setupAPI(t)

	resolver.EXPECT().ResolveWorkspaceAccess(gomock.Any(), "user-1", "ws-1").Return(wsAuthz(false), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/workspaces/ws-1/reconcile", nil)
	req = authenticate(req, "user-1")
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestReconcileCompanyHandler(t *testing.T) {
	mux, service, resolver := setupAPI(t)

	authz := &access.AuthorizedContext{
		UserID:    "user-1",
		CompanyID: "co-1",
		Company:   &access.CompanyAccess{CanAdmin: true, Role: "admin"},
	}
	resolver.EXPECT().ResolveCompanyAccess(gomock.Any(), "user-1", "co-1").Return(authz, nil)
	service.EXPECT().ReconcileCompany(gomock.Any(), "co-1").Return("remote-co-1", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/companies/co-1/reconcile", nil)
	req = authenticate(req, "user-1")
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
