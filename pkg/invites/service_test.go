// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"errors"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/canonical/workspace-service/internal/access"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/mail"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/roles"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tokens"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package invites -destination ./mock_invites.go -source=./interfaces.go

// passthroughDB runs the transaction body directly, the storage layer is
// mocked in these tests.
type passthroughDB struct{}

func (passthroughDB) Statement(context.Context) sq.StatementBuilderType { return sq.StatementBuilderType{} }
func (passthroughDB) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
func (passthroughDB) Close() {}

type stubChecker struct {
	disposable bool
	err        error
}

func (s stubChecker) IsDisposable(context.Context, string) (bool, error) {
	return s.disposable, s.err
}

func adminAuthz() *access.AuthorizedContext {
	return &access.AuthorizedContext{
		UserID:    "admin-1",
		CompanyID: "co-1",
		Company:   &access.CompanyAccess{CanAdmin: true, Role: roles.CompanyAdmin},
	}
}

func memberAuthz() *access.AuthorizedContext {
	return &access.AuthorizedContext{
		UserID:    "member-1",
		CompanyID: "co-1",
		Company:   &access.CompanyAccess{CanMember: true, Role: roles.CompanyMember},
	}
}

func newService(t *testing.T, checker stubChecker) (*Service, *MockStorageInterface, *access.MockResolverInterface) {
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	mockResolver := access.NewMockResolverInterface(ctrl)

	s := NewService(
		mockStorage,
		passthroughDB{},
		mockResolver,
		checker,
		mail.NewLogSender(logging.NewNoopLogger()),
		"https://app.example.com",
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return s, mockStorage, mockResolver
}

func TestCreateInvite(t *testing.T) {
	s, mockStorage, _ := newService(t, stubChecker{})

	var captured *types.Invitation
	mockStorage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, invite *types.Invitation) (*types.Invitation, error) {
			captured = invite
			out := *invite
			out.ID = "inv-1"
			return &out, nil
		})
	mockStorage.EXPECT().CreateAuditRecord(gomock.Any(), "co-1", "admin-1", "invite.created", gomock.Any()).Return(nil)
	mockStorage.EXPECT().GetCompanyByID(gomock.Any(), "co-1").Return(&types.Company{ID: "co-1", Name: "Acme"}, nil)

	created, err := s.CreateInvite(context.Background(), adminAuthz(), &CreateInviteRequest{
		Email:       "New.Hire@Example.com",
		Scope:       types.InviteScopeCompany,
		CompanyRole: roles.CompanyMember,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "inv-1" {
		t.Errorf("expected created invite, got %+v", created)
	}

	if captured.EmailNormalized != "new.hire@example.com" {
		t.Errorf("expected normalized email, got %q", captured.EmailNormalized)
	}
	if captured.PendingKey == nil || *captured.PendingKey != "company:co-1:new.hire@example.com" {
		t.Errorf("unexpected pending key: %v", captured.PendingKey)
	}
	if captured.TokenHash == "" || len(captured.TokenHash) != 64 {
		t.Errorf("expected a stored fingerprint, got %q", captured.TokenHash)
	}
	if until := time.Until(captured.ExpiresAt); until < 6*24*time.Hour || until > 8*24*time.Hour {
		t.Errorf("expected a seven day expiry, got %v", captured.ExpiresAt)
	}
}

func TestCreateInviteRequiresCompanyAdmin(t *testing.T) {
	s, _, _ := newService(t, stubChecker{})

	_, err := s.CreateInvite(context.Background(), memberAuthz(), &CreateInviteRequest{
		Email:       "x@example.com",
		Scope:       types.InviteScopeCompany,
		CompanyRole: roles.CompanyMember,
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateInviteRejectsOwnerRole(t *testing.T) {
	s, _, _ := newService(t, stubChecker{})

	_, err := s.CreateInvite(context.Background(), adminAuthz(), &CreateInviteRequest{
		Email:       "x@example.com",
		Scope:       types.InviteScopeCompany,
		CompanyRole: roles.CompanyOwner,
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}

func TestCreateInviteRejectsDisposableDomain(t *testing.T) {
	s, _, _ := newService(t, stubChecker{disposable: true})

	_, err := s.CreateInvite(context.Background(), adminAuthz(), &CreateInviteRequest{
		Email:       "x@mailinator.com",
		Scope:       types.InviteScopeCompany,
		CompanyRole: roles.CompanyMember,
	})
	if !errors.Is(err, ErrDisposableDomain) {
		t.Errorf("expected ErrDisposableDomain, got %v", err)
	}
}

func TestCreateInviteDuplicatePending(t *testing.T) {
	s, mockStorage, _ := newService(t, stubChecker{})

	mockStorage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)

	_, err := s.CreateInvite(context.Background(), adminAuthz(), &CreateInviteRequest{
		Email:       "x@example.com",
		Scope:       types.InviteScopeCompany,
		CompanyRole: roles.CompanyMember,
	})
	if !errors.Is(err, ErrDuplicateInvite) {
		t.Errorf("expected ErrDuplicateInvite, got %v", err)
	}
}

func TestCreateInviteWorkspaceScope(t *testing.T) {
	testCases := []struct {
		name        string
		workspace   *types.Workspace
		wsErr       error
		expectedErr error
	}{
		{
			name:      "valid workspace",
			workspace: &types.Workspace{ID: "ws-1", CompanyID: "co-1", Status: types.WorkspaceStatusActive},
		},
		{
			name:        "workspace in another company",
			workspace:   &types.Workspace{ID: "ws-1", CompanyID: "co-other"},
			expectedErr: ErrWorkspaceMismatch,
		},
		{
			name:        "workspace missing",
			wsErr:       storage.ErrNotFound,
			expectedErr: ErrWorkspaceMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, _ := newService(t, stubChecker{})

			mockStorage.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(tc.workspace, tc.wsErr)
			if tc.expectedErr == nil {
				mockStorage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, invite *types.Invitation) (*types.Invitation, error) {
						if invite.PendingKey == nil || *invite.PendingKey != "workspace:ws-1:x@example.com" {
							t.Errorf("unexpected pending key: %v", invite.PendingKey)
						}
						out := *invite
						out.ID = "inv-1"
						return &out, nil
					})
				mockStorage.EXPECT().CreateAuditRecord(gomock.Any(), "co-1", "admin-1", "invite.created", gomock.Any()).Return(nil)
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), "co-1").Return(&types.Company{ID: "co-1", Name: "Acme"}, nil)
			}

			_, err := s.CreateInvite(context.Background(), adminAuthz(), &CreateInviteRequest{
				Email:         "x@example.com",
				Scope:         types.InviteScopeWorkspace,
				WorkspaceID:   "ws-1",
				WorkspaceRole: roles.WorkspaceReader,
			})
			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestCreateInviteWorkspaceAdminWithoutCompanyRights(t *testing.T) {
	// A workspace admin who is only a company member may still invite
	// into their own workspace.
	s, mockStorage, mockResolver := newService(t, stubChecker{})

	mockResolver.EXPECT().ResolveWorkspaceAccess(gomock.Any(), "member-1", "ws-1").Return(&access.AuthorizedContext{
		UserID:      "member-1",
		CompanyID:   "co-1",
		WorkspaceID: "ws-1",
		Company:     &access.CompanyAccess{CanMember: true, Role: roles.CompanyMember},
		Workspace:   &access.WorkspaceAccess{Read: true, Write: true, Admin: true, WorkspaceRole: roles.WorkspaceAdmin},
	}, nil)
	mockStorage.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(&types.Workspace{ID: "ws-1", CompanyID: "co-1", Status: types.WorkspaceStatusActive}, nil)
	mockStorage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, invite *types.Invitation) (*types.Invitation, error) {
			out := *invite
			out.ID = "inv-1"
			return &out, nil
		})
	mockStorage.EXPECT().CreateAuditRecord(gomock.Any(), "co-1", "member-1", "invite.created", gomock.Any()).Return(nil)
	mockStorage.EXPECT().GetCompanyByID(gomock.Any(), "co-1").Return(&types.Company{ID: "co-1", Name: "Acme"}, nil)

	_, err := s.CreateInvite(context.Background(), memberAuthz(), &CreateInviteRequest{
		Email:         "x@example.com",
		Scope:         types.InviteScopeWorkspace,
		WorkspaceID:   "ws-1",
		WorkspaceRole: roles.WorkspaceReader,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateInviteWorkspaceNonAdminDenied(t *testing.T) {
	s, _, mockResolver := newService(t, stubChecker{})

	mockResolver.EXPECT().ResolveWorkspaceAccess(gomock.Any(), "member-1", "ws-1").Return(&access.AuthorizedContext{
		UserID:      "member-1",
		CompanyID:   "co-1",
		WorkspaceID: "ws-1",
		Company:     &access.CompanyAccess{CanMember: true, Role: roles.CompanyMember},
		Workspace:   &access.WorkspaceAccess{Read: true, Write: true, WorkspaceRole: roles.WorkspaceWriter},
	}, nil)

	_, err := s.CreateInvite(context.Background(), memberAuthz(), &CreateInviteRequest{
		Email:         "x@example.com",
		Scope:         types.InviteScopeWorkspace,
		WorkspaceID:   "ws-1",
		WorkspaceRole: roles.WorkspaceReader,
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestValidateToken(t *testing.T) {
	token := "presented-token"
	fingerprint := tokens.Fingerprint(token)
	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Hour)

	testCases := []struct {
		name        string
		invite      *types.Invitation
		storageErr  error
		expectedErr error
	}{
		{
			name:        "unknown token",
			storageErr:  storage.ErrNotFound,
			expectedErr: ErrInvalidToken,
		},
		{
			name:        "revoked",
			invite:      &types.Invitation{Status: types.InviteStatusRevoked, ExpiresAt: future},
			expectedErr: ErrRevoked,
		},
		{
			name:        "already used",
			invite:      &types.Invitation{Status: types.InviteStatusAccepted, ExpiresAt: future},
			expectedErr: ErrAlreadyUsed,
		},
		{
			name:        "expired",
			invite:      &types.Invitation{Status: types.InviteStatusPending, ExpiresAt: past},
			expectedErr: ErrExpired,
		},
		{
			name:   "valid",
			invite: &types.Invitation{ID: "inv-1", Status: types.InviteStatusPending, ExpiresAt: future},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, _ := newService(t, stubChecker{})
			mockStorage.EXPECT().GetInvitationByTokenHash(gomock.Any(), fingerprint).Return(tc.invite, tc.storageErr)

			invite, err := s.ValidateToken(context.Background(), token)
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
			if tc.expectedErr == nil && invite.ID != "inv-1" {
				t.Errorf("expected the invite back, got %+v", invite)
			}
		})
	}
}

func TestAcceptInviteNewMember(t *testing.T) {
	token := "presented-token"
	companyRole := roles.CompanyBilling
	invite := &types.Invitation{
		ID:              "inv-1",
		CompanyID:       "co-1",
		Scope:           types.InviteScopeCompany,
		CompanyRole:     &companyRole,
		EmailNormalized: "new@example.com",
		Status:          types.InviteStatusPending,
		ExpiresAt:       time.Now().Add(time.Hour),
	}
	user := &types.User{ID: "user-9", Email: "New@Example.com"}

	s, mockStorage, _ := newService(t, stubChecker{})
	mockStorage.EXPECT().GetInvitationByTokenHash(gomock.Any(), tokens.Fingerprint(token)).Return(invite, nil)
	mockStorage.EXPECT().MarkInvitationAccepted(gomock.Any(), "inv-1", "user-9", gomock.Any()).Return(nil)
	mockStorage.EXPECT().GetCompanyMembership(gomock.Any(), "co-1", "user-9").Return(nil, storage.ErrNotFound)
	mockStorage.EXPECT().CreateCompanyMembership(gomock.Any(), "co-1", "user-9", roles.CompanyBilling).Return("cm-1", nil)
	mockStorage.EXPECT().CreateAuditRecord(gomock.Any(), "co-1", "user-9", "invite.accepted", gomock.Any()).Return(nil)

	accepted, err := s.AcceptInvite(context.Background(), token, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if accepted.ID != "inv-1" {
		t.Errorf("expected the invite back, got %+v", accepted)
	}
}

func TestAcceptInviteNeverDowngrades(t *testing.T) {
	// A writer invite accepted by an existing workspace admin must leave
	// the admin role untouched.
	token := "presented-token"
	wsID := "ws-1"
	wsRole := roles.WorkspaceWriter
	invite := &types.Invitation{
		ID:              "inv-1",
		CompanyID:       "co-1",
		Scope:           types.InviteScopeWorkspace,
		WorkspaceID:     &wsID,
		WorkspaceRole:   &wsRole,
		EmailNormalized: "existing@example.com",
		Status:          types.InviteStatusPending,
		ExpiresAt:       time.Now().Add(time.Hour),
	}
	user := &types.User{ID: "user-5", Email: "existing@example.com"}

	s, mockStorage, _ := newService(t, stubChecker{})
	mockStorage.EXPECT().GetInvitationByTokenHash(gomock.Any(), tokens.Fingerprint(token)).Return(invite, nil)
	mockStorage.EXPECT().MarkInvitationAccepted(gomock.Any(), "inv-1", "user-5", gomock.Any()).Return(nil)
	mockStorage.EXPECT().GetCompanyMembership(gomock.Any(), "co-1", "user-5").Return(&types.CompanyMembership{Role: roles.CompanyMember}, nil)
	mockStorage.EXPECT().GetWorkspaceMembership(gomock.Any(), "ws-1", "user-5").Return(&types.WorkspaceMembership{Role: roles.WorkspaceAdmin}, nil)
	// No role updates expected: both memberships already meet or exceed
	// what the invite grants.
	mockStorage.EXPECT().CreateAuditRecord(gomock.Any(), "co-1", "user-5", "invite.accepted", gomock.Any()).Return(nil)

	if _, err := s.AcceptInvite(context.Background(), token, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAcceptInviteUpgradesWorkspaceRole(t *testing.T) {
	token := "presented-token"
	wsID := "ws-1"
	wsRole := roles.WorkspaceAdmin
	invite := &types.Invitation{
		ID:              "inv-1",
		CompanyID:       "co-1",
		Scope:           types.InviteScopeWorkspace,
		WorkspaceID:     &wsID,
		WorkspaceRole:   &wsRole,
		EmailNormalized: "existing@example.com",
		Status:          types.InviteStatusPending,
		ExpiresAt:       time.Now().Add(time.Hour),
	}
	user := &types.User{ID: "user-5", Email: "existing@example.com"}

	s, mockStorage, _ := newService(t, stubChecker{})
	mockStorage.EXPECT().GetInvitationByTokenHash(gomock.Any(), tokens.Fingerprint(token)).Return(invite, nil)
	mockStorage.EXPECT().MarkInvitationAccepted(gomock.Any(), "inv-1", "user-5", gomock.Any()).Return(nil)
	mockStorage.EXPECT().GetCompanyMembership(gomock.Any(), "co-1", "user-5").Return(&types.CompanyMembership{Role: roles.CompanyMember}, nil)
	mockStorage.EXPECT().GetWorkspaceMembership(gomock.Any(), "ws-1", "user-5").Return(&types.WorkspaceMembership{Role: roles.WorkspaceReader}, nil)
	mockStorage.EXPECT().UpdateWorkspaceMembershipRole(gomock.Any(), "ws-1", "user-5", roles.WorkspaceAdmin).Return(nil)
	mockStorage.EXPECT().CreateAuditRecord(gomock.Any(), "co-1", "user-5", "invite.accepted", gomock.Any()).Return(nil)

	if _, err := s.AcceptInvite(context.Background(), token, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAcceptInviteEmailMismatch(t *testing.T) {
	token := "presented-token"
	invite := &types.Invitation{
		ID:              "inv-1",
		CompanyID:       "co-1",
		EmailNormalized: "invited@example.com",
		Status:          types.InviteStatusPending,
		ExpiresAt:       time.Now().Add(time.Hour),
	}

	s, mockStorage, _ := newService(t, stubChecker{})
	mockStorage.EXPECT().GetInvitationByTokenHash(gomock.Any(), tokens.Fingerprint(token)).Return(invite, nil)

	_, err := s.AcceptInvite(context.Background(), token, &types.User{ID: "user-5", Email: "other@example.com"})
	if !errors.Is(err, ErrEmailMismatch) {
		t.Errorf("expected ErrEmailMismatch, got %v", err)
	}
}

func TestAcceptInviteLosesRace(t *testing.T) {
	token := "presented-token"
	invite := &types.Invitation{
		ID:              "inv-1",
		CompanyID:       "co-1",
		EmailNormalized: "invited@example.com",
		Status:          types.InviteStatusPending,
		ExpiresAt:       time.Now().Add(time.Hour),
	}

	s, mockStorage, _ := newService(t, stubChecker{})
	mockStorage.EXPECT().GetInvitationByTokenHash(gomock.Any(), tokens.Fingerprint(token)).Return(invite, nil)
	mockStorage.EXPECT().MarkInvitationAccepted(gomock.Any(), "inv-1", "user-5", gomock.Any()).Return(storage.ErrNotFound)

	_, err := s.AcceptInvite(context.Background(), token, &types.User{ID: "user-5", Email: "invited@example.com"})
	if !errors.Is(err, ErrAlreadyUsed) {
		t.Errorf("expected ErrAlreadyUsed, got %v", err)
	}
}

func TestRevokeInvite(t *testing.T) {
	s, mockStorage, _ := newService(t, stubChecker{})

	mockStorage.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").Return(&types.Invitation{ID: "inv-1", CompanyID: "co-1"}, nil)
	mockStorage.EXPECT().MarkInvitationRevoked(gomock.Any(), "inv-1", "admin-1", gomock.Any()).Return(nil)
	mockStorage.EXPECT().CreateAuditRecord(gomock.Any(), "co-1", "admin-1", "invite.revoked", gomock.Any()).Return(nil)

	if err := s.RevokeInvite(context.Background(), adminAuthz(), "inv-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRevokeInviteCrossCompany(t *testing.T) {
	s, mockStorage, _ := newService(t, stubChecker{})

	mockStorage.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").Return(&types.Invitation{ID: "inv-1", CompanyID: "co-other"}, nil)

	if err := s.RevokeInvite(context.Background(), adminAuthz(), "inv-1"); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestRevokeInviteNotPending(t *testing.T) {
	s, mockStorage, _ := newService(t, stubChecker{})

	mockStorage.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").Return(&types.Invitation{ID: "inv-1", CompanyID: "co-1"}, nil)
	mockStorage.EXPECT().MarkInvitationRevoked(gomock.Any(), "inv-1", "admin-1", gomock.Any()).Return(storage.ErrNotFound)

	if err := s.RevokeInvite(context.Background(), adminAuthz(), "inv-1"); !errors.Is(err, ErrNotPending) {
		t.Errorf("expected ErrNotPending, got %v", err)
	}
}

func TestRevokeInviteWorkspaceAdmin(t *testing.T) {
	wsID := "ws-1"
	s, mockStorage, mockResolver := newService(t, stubChecker{})

	mockStorage.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").Return(&types.Invitation{
		ID:          "inv-1",
		CompanyID:   "co-1",
		Scope:       types.InviteScopeWorkspace,
		WorkspaceID: &wsID,
	}, nil)
	mockResolver.EXPECT().ResolveWorkspaceAccess(gomock.Any(), "member-1", "ws-1").Return(&access.AuthorizedContext{
		UserID:    "member-1",
		CompanyID: "co-1",
		Company:   &access.CompanyAccess{CanMember: true, Role: roles.CompanyMember},
		Workspace: &access.WorkspaceAccess{Read: true, Write: true, Admin: true, WorkspaceRole: roles.WorkspaceAdmin},
	}, nil)
	mockStorage.EXPECT().MarkInvitationRevoked(gomock.Any(), "inv-1", "member-1", gomock.Any()).Return(nil)
	mockStorage.EXPECT().CreateAuditRecord(gomock.Any(), "co-1", "member-1", "invite.revoked", gomock.Any()).Return(nil)

	if err := s.RevokeInvite(context.Background(), memberAuthz(), "inv-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRevokeInviteCompanyScopeRequiresCompanyAdmin(t *testing.T) {
	s, mockStorage, _ := newService(t, stubChecker{})

	mockStorage.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").Return(&types.Invitation{
		ID:        "inv-1",
		CompanyID: "co-1",
		Scope:     types.InviteScopeCompany,
	}, nil)

	if err := s.RevokeInvite(context.Background(), memberAuthz(), "inv-1"); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestListPendingRequiresAdmin(t *testing.T) {
	s, _, _ := newService(t, stubChecker{})

	if _, err := s.ListPending(context.Background(), memberAuthz()); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}
