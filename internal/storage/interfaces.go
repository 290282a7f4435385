// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/workspace-service/internal/types"
)

type StorageInterface interface {
	CreateCompany(ctx context.Context, name, slug string) (*types.Company, error)
	GetCompanyByID(ctx context.Context, id string) (*types.Company, error)
	SetCompanyAPIID(ctx context.Context, id, apiID string) error

	GetWorkspaceByID(ctx context.Context, id string) (*types.Workspace, error)
	SetWorkspaceAPIID(ctx context.Context, id, apiID string) error
	SetWorkspaceStatus(ctx context.Context, id, status string) error

	CreateUser(ctx context.Context, id, email string) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	SetUserEmailVerified(ctx context.Context, id string) error

	GetCompanyMembership(ctx context.Context, companyID, userID string) (*types.CompanyMembership, error)
	CreateCompanyMembership(ctx context.Context, companyID, userID, role string) (string, error)
	UpdateCompanyMembershipRole(ctx context.Context, companyID, userID, role string) error
	DeleteCompanyMembership(ctx context.Context, companyID, userID string) error
	CountCompanyOwners(ctx context.Context, companyID string) (int, error)
	ListCompanyMemberships(ctx context.Context, companyID string) ([]*types.CompanyMembership, error)

	GetWorkspaceMembership(ctx context.Context, workspaceID, userID string) (*types.WorkspaceMembership, error)
	CreateWorkspaceMembership(ctx context.Context, workspaceID, userID, role string) (string, error)
	UpdateWorkspaceMembershipRole(ctx context.Context, workspaceID, userID, role string) error
	DeleteWorkspaceMembership(ctx context.Context, workspaceID, userID string) error

	CreateInvitation(ctx context.Context, invite *types.Invitation) (*types.Invitation, error)
	GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error)
	GetInvitationByTokenHash(ctx context.Context, tokenHash string) (*types.Invitation, error)
	MarkInvitationAccepted(ctx context.Context, id, userID string, at time.Time) error
	MarkInvitationRevoked(ctx context.Context, id, actorID string, at time.Time) error
	ListPendingInvitationsByCompany(ctx context.Context, companyID string) ([]*types.Invitation, error)

	CreateEmailChallenge(ctx context.Context, c *types.EmailChallenge) (*types.EmailChallenge, error)
	RevokeActiveChallenges(ctx context.Context, userID string, at time.Time) error
	GetChallengeByID(ctx context.Context, id string) (*types.EmailChallenge, error)
	GetActiveChallengeByUserID(ctx context.Context, userID string) (*types.EmailChallenge, error)
	IncrementOTPAttempts(ctx context.Context, id string) (int, error)
	MarkChallengeUsed(ctx context.Context, id string, at time.Time) error

	CreateAPIKey(ctx context.Context, k *types.APIKey) (*types.APIKey, error)
	GetAPIKeyByID(ctx context.Context, id string) (*types.APIKey, error)
	SetAPIKeyRemoteID(ctx context.Context, id, remoteID string) error
	RevokeAPIKey(ctx context.Context, id string, at time.Time) error
	RevokeAPIKeysForWorkspace(ctx context.Context, workspaceID string, at time.Time) (int64, error)
	DeleteAPIKey(ctx context.Context, id string) error
	ListActiveAPIKeysByWorkspace(ctx context.Context, workspaceID string) ([]*types.APIKey, error)

	CreateAuditRecord(ctx context.Context, companyID, actorID, action, detail string) error
}
