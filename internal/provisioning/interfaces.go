// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import "context"

// ClientInterface is the remote provisioning surface consumed by the
// orchestrator. All methods are synchronous and safe to retry.
type ClientInterface interface {
	CreateCompany(ctx context.Context, actor *Actor, externalID, name string) (string, error)
	GetCompanyByExternalID(ctx context.Context, externalID string) (string, error)
	CreateWorkspace(ctx context.Context, actor *Actor, externalID, remoteCompanyID, name, region string) (string, error)
	GetWorkspaceByExternalID(ctx context.Context, externalID string) (string, error)
	CreateAPIKey(ctx context.Context, actor *Actor, remoteWorkspaceID, name, secretHash string) (string, error)
	RevokeAPIKey(ctx context.Context, actor *Actor, remoteKeyID string) error
	ArchiveWorkspace(ctx context.Context, actor *Actor, remoteWorkspaceID string) error
	RestoreWorkspace(ctx context.Context, actor *Actor, remoteWorkspaceID string) error
}

var _ ClientInterface = (*Client)(nil)
