// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/roles"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_access.go -source=./interfaces.go

func newResolver(t *testing.T) (*Resolver, *MockStorageInterface) {
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)

	r := NewResolver(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return r, mockStorage
}

func TestResolveWorkspaceAccess(t *testing.T) {
	userID := "user-1"
	workspace := &types.Workspace{ID: "ws-1", CompanyID: "co-1", Status: types.WorkspaceStatusActive}
	deletedAt := time.Now()

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
		validate    func(*testing.T, *AuthorizedContext)
	}{
		{
			name: "workspace missing",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "workspace soft deleted",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(&types.Workspace{ID: "ws-1", CompanyID: "co-1", DeletedAt: &deletedAt}, nil)
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "caller not a company member",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(workspace, nil)
				m.EXPECT().GetCompanyMembership(gomock.Any(), "co-1", userID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "company owner gets full access without workspace row",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(workspace, nil)
				m.EXPECT().GetCompanyMembership(gomock.Any(), "co-1", userID).Return(&types.CompanyMembership{Role: roles.CompanyOwner}, nil)
			},
			validate: func(t *testing.T, authz *AuthorizedContext) {
				wa := authz.Workspace
				if !wa.Read || !wa.Write || !wa.Admin {
					t.Errorf("expected full access, got %+v", wa)
				}
				if wa.WorkspaceRole != "" {
					t.Errorf("expected no workspace role, got %q", wa.WorkspaceRole)
				}
			},
		},
		{
			name: "company admin gets full access",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(workspace, nil)
				m.EXPECT().GetCompanyMembership(gomock.Any(), "co-1", userID).Return(&types.CompanyMembership{Role: roles.CompanyAdmin}, nil)
			},
			validate: func(t *testing.T, authz *AuthorizedContext) {
				if !authz.Workspace.Admin {
					t.Errorf("expected admin access, got %+v", authz.Workspace)
				}
			},
		},
		{
			name: "billing gets read-only",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(workspace, nil)
				m.EXPECT().GetCompanyMembership(gomock.Any(), "co-1", userID).Return(&types.CompanyMembership{Role: roles.CompanyBilling}, nil)
			},
			validate: func(t *testing.T, authz *AuthorizedContext) {
				wa := authz.Workspace
				if !wa.Read || wa.Write || wa.Admin {
					t.Errorf("expected read-only, got %+v", wa)
				}
			},
		},
		{
			name: "member without workspace row gets zero access, not NotFound",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(workspace, nil)
				m.EXPECT().GetCompanyMembership(gomock.Any(), "co-1", userID).Return(&types.CompanyMembership{Role: roles.CompanyMember}, nil)
				m.EXPECT().GetWorkspaceMembership(gomock.Any(), "ws-1", userID).Return(nil, storage.ErrNotFound)
			},
			validate: func(t *testing.T, authz *AuthorizedContext) {
				wa := authz.Workspace
				if wa.Read || wa.Write || wa.Admin {
					t.Errorf("expected zero access, got %+v", wa)
				}
			},
		},
		{
			name: "member with writer row",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(workspace, nil)
				m.EXPECT().GetCompanyMembership(gomock.Any(), "co-1", userID).Return(&types.CompanyMembership{Role: roles.CompanyMember}, nil)
				m.EXPECT().GetWorkspaceMembership(gomock.Any(), "ws-1", userID).Return(&types.WorkspaceMembership{Role: roles.WorkspaceWriter}, nil)
			},
			validate: func(t *testing.T, authz *AuthorizedContext) {
				wa := authz.Workspace
				if !wa.Read || !wa.Write || wa.Admin {
					t.Errorf("expected read+write, got %+v", wa)
				}
				if wa.WorkspaceRole != roles.WorkspaceWriter {
					t.Errorf("expected writer role, got %q", wa.WorkspaceRole)
				}
			},
		},
		{
			name: "member with reader row",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(workspace, nil)
				m.EXPECT().GetCompanyMembership(gomock.Any(), "co-1", userID).Return(&types.CompanyMembership{Role: roles.CompanyMember}, nil)
				m.EXPECT().GetWorkspaceMembership(gomock.Any(), "ws-1", userID).Return(&types.WorkspaceMembership{Role: roles.WorkspaceReader}, nil)
			},
			validate: func(t *testing.T, authz *AuthorizedContext) {
				wa := authz.Workspace
				if !wa.Read || wa.Write || wa.Admin {
					t.Errorf("expected read-only, got %+v", wa)
				}
			},
		},
		{
			name: "member with workspace admin row",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(workspace, nil)
				m.EXPECT().GetCompanyMembership(gomock.Any(), "co-1", userID).Return(&types.CompanyMembership{Role: roles.CompanyMember}, nil)
				m.EXPECT().GetWorkspaceMembership(gomock.Any(), "ws-1", userID).Return(&types.WorkspaceMembership{Role: roles.WorkspaceAdmin}, nil)
			},
			validate: func(t *testing.T, authz *AuthorizedContext) {
				if !authz.Workspace.Admin {
					t.Errorf("expected admin, got %+v", authz.Workspace)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, mockStorage := newResolver(t)
			tc.setupMocks(mockStorage)

			authz, err := r.ResolveWorkspaceAccess(context.Background(), userID, "ws-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.validate(t, authz)
		})
	}
}

func TestResolveWorkspaceAccessIsDeterministic(t *testing.T) {
	r, mockStorage := newResolver(t)

	workspace := &types.Workspace{ID: "ws-1", CompanyID: "co-1"}
	mockStorage.EXPECT().GetWorkspaceByID(gomock.Any(), "ws-1").Return(workspace, nil).Times(2)
	mockStorage.EXPECT().GetCompanyMembership(gomock.Any(), "co-1", "user-1").Return(&types.CompanyMembership{Role: roles.CompanyMember}, nil).Times(2)
	mockStorage.EXPECT().GetWorkspaceMembership(gomock.Any(), "ws-1", "user-1").Return(&types.WorkspaceMembership{Role: roles.WorkspaceWriter}, nil).Times(2)

	first, err := r.ResolveWorkspaceAccess(context.Background(), "user-1", "ws-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := r.ResolveWorkspaceAccess(context.Background(), "user-1", "ws-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if *first.Workspace != *second.Workspace {
		t.Errorf("expected identical decisions, got %+v and %+v", first.Workspace, second.Workspace)
	}
}

func TestResolveCompanyAccess(t *testing.T) {
	company := &types.Company{ID: "co-1", Slug: "acme"}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
		validate    func(*testing.T, *AuthorizedContext)
	}{
		{
			name: "company missing",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetCompanyByID(gomock.Any(), "co-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "not a member looks identical to missing company",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetCompanyByID(gomock.Any(), "co-1").Return(company, nil)
				m.EXPECT().GetCompanyMembership(gomock.Any(), "co-1", "user-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "owner can admin",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetCompanyByID(gomock.Any(), "co-1").Return(company, nil)
				m.EXPECT().GetCompanyMembership(gomock.Any(), "co-1", "user-1").Return(&types.CompanyMembership{Role: roles.CompanyOwner}, nil)
			},
			validate: func(t *testing.T, authz *AuthorizedContext) {
				if !authz.Company.CanAdmin {
					t.Errorf("expected CanAdmin, got %+v", authz.Company)
				}
			},
		},
		{
			name: "billing maps to CanBilling only",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetCompanyByID(gomock.Any(), "co-1").Return(company, nil)
				m.EXPECT().GetCompanyMembership(gomock.Any(), "co-1", "user-1").Return(&types.CompanyMembership{Role: roles.CompanyBilling}, nil)
			},
			validate: func(t *testing.T, authz *AuthorizedContext) {
				ca := authz.Company
				if ca.CanAdmin || !ca.CanBilling || ca.CanMember {
					t.Errorf("unexpected capability set: %+v", ca)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, mockStorage := newResolver(t)
			tc.setupMocks(mockStorage)

			authz, err := r.ResolveCompanyAccess(context.Background(), "user-1", "co-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.validate(t, authz)
		})
	}
}
