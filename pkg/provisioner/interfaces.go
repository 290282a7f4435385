// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

import (
	"context"
	"time"

	"github.com/canonical/workspace-service/internal/access"
	"github.com/canonical/workspace-service/internal/types"
)

type StorageInterface interface {
	GetCompanyByID(ctx context.Context, id string) (*types.Company, error)
	SetCompanyAPIID(ctx context.Context, id, apiID string) error

	GetWorkspaceByID(ctx context.Context, id string) (*types.Workspace, error)
	SetWorkspaceAPIID(ctx context.Context, id, apiID string) error
	SetWorkspaceStatus(ctx context.Context, id, status string) error

	CreateAPIKey(ctx context.Context, k *types.APIKey) (*types.APIKey, error)
	GetAPIKeyByID(ctx context.Context, id string) (*types.APIKey, error)
	SetAPIKeyRemoteID(ctx context.Context, id, remoteID string) error
	RevokeAPIKey(ctx context.Context, id string, at time.Time) error
	RevokeAPIKeysForWorkspace(ctx context.Context, workspaceID string, at time.Time) (int64, error)
	DeleteAPIKey(ctx context.Context, id string) error
	ListActiveAPIKeysByWorkspace(ctx context.Context, workspaceID string) ([]*types.APIKey, error)

	CreateAuditRecord(ctx context.Context, companyID, actorID, action, detail string) error
}

type ServiceInterface interface {
	ProvisionCompany(ctx context.Context, actorID, companyID string) (string, error)
	ProvisionWorkspace(ctx context.Context, actorID, workspaceID string) (string, error)
	ArchiveWorkspace(ctx context.Context, authz *access.AuthorizedContext) (*SyncResult, error)
	RestoreWorkspace(ctx context.Context, authz *access.AuthorizedContext) (*SyncResult, error)
	CreateAPIKey(ctx context.Context, authz *access.AuthorizedContext, name string) (*types.APIKey, string, error)
	RevokeAPIKey(ctx context.Context, authz *access.AuthorizedContext, keyID string) (*SyncResult, error)
	ReconcileCompany(ctx context.Context, companyID string) (string, error)
	ReconcileWorkspace(ctx context.Context, workspaceID string) (string, error)
}
