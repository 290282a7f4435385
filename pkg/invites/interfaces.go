// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"time"

	"github.com/canonical/workspace-service/internal/access"
	"github.com/canonical/workspace-service/internal/types"
)

// StorageInterface is the subset of the storage surface the invite
// lifecycle needs.
type StorageInterface interface {
	GetCompanyByID(ctx context.Context, id string) (*types.Company, error)
	GetWorkspaceByID(ctx context.Context, id string) (*types.Workspace, error)

	GetCompanyMembership(ctx context.Context, companyID, userID string) (*types.CompanyMembership, error)
	CreateCompanyMembership(ctx context.Context, companyID, userID, role string) (string, error)
	UpdateCompanyMembershipRole(ctx context.Context, companyID, userID, role string) error

	GetWorkspaceMembership(ctx context.Context, workspaceID, userID string) (*types.WorkspaceMembership, error)
	CreateWorkspaceMembership(ctx context.Context, workspaceID, userID, role string) (string, error)
	UpdateWorkspaceMembershipRole(ctx context.Context, workspaceID, userID, role string) error

	CreateInvitation(ctx context.Context, invite *types.Invitation) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error)
	GetInvitationByTokenHash(ctx context.Context, tokenHash string) (*types.Invitation, error)
	MarkInvitationAccepted(ctx context.Context, id, userID string, at time.Time) error
	MarkInvitationRevoked(ctx context.Context, id, actorID string, at time.Time) error
	ListPendingInvitationsByCompany(ctx context.Context, companyID string) ([]*types.Invitation, error)

	CreateAuditRecord(ctx context.Context, companyID, actorID, action, detail string) error
}

type ServiceInterface interface {
	CreateInvite(ctx context.Context, authz *access.AuthorizedContext, req *CreateInviteRequest) (*types.Invitation, error)
	ValidateToken(ctx context.Context, token string) (*types.Invitation, error)
	AcceptInvite(ctx context.Context, token string, user *types.User) (*types.Invitation, error)
	RevokeInvite(ctx context.Context, authz *access.AuthorizedContext, inviteID string) error
	ListPending(ctx context.Context, authz *access.AuthorizedContext) ([]*types.Invitation, error)
}
