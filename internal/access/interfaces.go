// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
)

// StorageInterface is the subset of the storage surface the resolver
// needs. Decisions are computed from these rows only.
type StorageInterface interface {
	GetWorkspaceByID(ctx context.Context, id string) (*types.Workspace, error)
	GetCompanyByID(ctx context.Context, id string) (*types.Company, error)
	GetCompanyMembership(ctx context.Context, companyID, userID string) (*types.CompanyMembership, error)
	GetWorkspaceMembership(ctx context.Context, workspaceID, userID string) (*types.WorkspaceMembership, error)
}

type ResolverInterface interface {
	ResolveWorkspaceAccess(ctx context.Context, userID, workspaceID string) (*AuthorizedContext, error)
	ResolveCompanyAccess(ctx context.Context, userID, companyID string) (*AuthorizedContext, error)
}
