// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package members

import (
	"context"

	"github.com/canonical/workspace-service/internal/access"
	"github.com/canonical/workspace-service/internal/types"
)

type StorageInterface interface {
	GetCompanyByID(ctx context.Context, id string) (*types.Company, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)

	GetCompanyMembership(ctx context.Context, companyID, userID string) (*types.CompanyMembership, error)
	UpdateCompanyMembershipRole(ctx context.Context, companyID, userID, role string) error
	DeleteCompanyMembership(ctx context.Context, companyID, userID string) error
	CountCompanyOwners(ctx context.Context, companyID string) (int, error)
	ListCompanyMemberships(ctx context.Context, companyID string) ([]*types.CompanyMembership, error)

	GetWorkspaceMembership(ctx context.Context, workspaceID, userID string) (*types.WorkspaceMembership, error)
	CreateWorkspaceMembership(ctx context.Context, workspaceID, userID, role string) (string, error)
	UpdateWorkspaceMembershipRole(ctx context.Context, workspaceID, userID, role string) error
	DeleteWorkspaceMembership(ctx context.Context, workspaceID, userID string) error

	CreateAuditRecord(ctx context.Context, companyID, actorID, action, detail string) error
}

type ServiceInterface interface {
	ListMembers(ctx context.Context, authz *access.AuthorizedContext) ([]*types.CompanyMembership, error)
	UpdateCompanyRole(ctx context.Context, authz *access.AuthorizedContext, targetUserID, role string) error
	RemoveCompanyMember(ctx context.Context, authz *access.AuthorizedContext, targetUserID string) error
	TransferOwnership(ctx context.Context, authz *access.AuthorizedContext, targetUserID, confirmation string) error
	AssignWorkspaceRole(ctx context.Context, authz *access.AuthorizedContext, targetUserID, role string) error
	RemoveWorkspaceMember(ctx context.Context, authz *access.AuthorizedContext, targetUserID string) error
}
