// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package provisioner keeps local records and the downstream
// provisioning system in step. Local state is authoritative: mutations
// commit locally first, the remote call follows, and a failed remote
// call degrades to an unsynced result instead of rolling anything back.
package provisioner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/workspace-service/internal/access"
	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/provisioning"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tokens"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

// SyncResult reports whether the remote system reflects the local change.
// Unsynced results are not errors; reconciliation closes the gap later.
type SyncResult struct {
	Synced bool   `json:"synced"`
	Detail string `json:"detail,omitempty"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	db      db.DBClientInterface
	remote  provisioning.ClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(s StorageInterface, dbClient db.DBClientInterface, remote provisioning.ClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage: s,
		db:      dbClient,
		remote:  remote,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// ProvisionCompany registers the company downstream and records the
// remote id. Idempotent: an already provisioned company returns its
// existing remote id, and a remote conflict resolves to a lookup.
func (s *Service) ProvisionCompany(ctx context.Context, actorID, companyID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "provisioner.Service.ProvisionCompany")
	defer span.End()

	company, err := s.storage.GetCompanyByID(ctx, companyID)
	if err != nil {
		return "", err
	}
	if company.Provisioned() {
		return *company.APICompanyID, nil
	}

	remoteID, err := s.remote.CreateCompany(ctx, &provisioning.Actor{ID: actorID}, companyID, company.Name)
	if err != nil {
		if !provisioning.IsConflict(err) {
			return "", err
		}
		remoteID, err = s.remote.GetCompanyByExternalID(ctx, companyID)
		if err != nil {
			return "", err
		}
	}

	if err := s.linkCompany(ctx, companyID, remoteID); err != nil {
		return "", err
	}
	return remoteID, nil
}

// linkCompany records the remote id. The column is write once; losing the
// race to a concurrent provision is fine as long as both sides agree.
func (s *Service) linkCompany(ctx context.Context, companyID, remoteID string) error {
	err := s.storage.SetCompanyAPIID(ctx, companyID, remoteID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	company, err := s.storage.GetCompanyByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company.Provisioned() && *company.APICompanyID == remoteID {
		return nil
	}
	return fmt.Errorf("company %s already linked to a different remote id", companyID)
}

// ProvisionWorkspace provisions the workspace downstream, provisioning
// its company first when needed.
func (s *Service) ProvisionWorkspace(ctx context.Context, actorID, workspaceID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "provisioner.Service.ProvisionWorkspace")
	defer span.End()

	workspace, err := s.storage.GetWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return "", err
	}
	if workspace.Provisioned() {
		return *workspace.APIWorkspaceID, nil
	}

	remoteCompanyID, err := s.ProvisionCompany(ctx, actorID, workspace.CompanyID)
	if err != nil {
		return "", err
	}

	remoteID, err := s.remote.CreateWorkspace(ctx, &provisioning.Actor{ID: actorID}, workspaceID, remoteCompanyID, workspace.Name, workspace.Region)
	if err != nil {
		if !provisioning.IsConflict(err) {
			return "", err
		}
		remoteID, err = s.remote.GetWorkspaceByExternalID(ctx, workspaceID)
		if err != nil {
			return "", err
		}
	}

	if err := s.linkWorkspace(ctx, workspaceID, remoteID); err != nil {
		return "", err
	}
	return remoteID, nil
}

func (s *Service) linkWorkspace(ctx context.Context, workspaceID, remoteID string) error {
	err := s.storage.SetWorkspaceAPIID(ctx, workspaceID, remoteID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	workspace, err := s.storage.GetWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return err
	}
	if workspace.Provisioned() && *workspace.APIWorkspaceID == remoteID {
		return nil
	}
	return fmt.Errorf("workspace %s already linked to a different remote id", workspaceID)
}

// ArchiveWorkspace archives the workspace and revokes its API keys
// locally in one transaction, then mirrors the archive downstream. The
// local change stands even when the remote call fails.
func (s *Service) ArchiveWorkspace(ctx context.Context, authz *access.AuthorizedContext) (*SyncResult, error) {
	ctx, span := s.tracer.Start(ctx, "provisioner.Service.ArchiveWorkspace")
	defer span.End()

	if !authz.Workspace.Admin {
		s.logger.Security().AuthzDenied(authz.UserID, "workspace", "archive requires workspace admin")
		return nil, ErrForbidden
	}

	var workspace *types.Workspace
	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		var err error
		workspace, err = s.storage.GetWorkspaceByID(ctx, authz.WorkspaceID)
		if err != nil {
			return err
		}
		if workspace.Status == types.WorkspaceStatusArchived {
			return ErrAlreadyArchived
		}

		if err := s.storage.SetWorkspaceStatus(ctx, authz.WorkspaceID, types.WorkspaceStatusArchived); err != nil {
			return err
		}
		revoked, err := s.storage.RevokeAPIKeysForWorkspace(ctx, authz.WorkspaceID, time.Now().UTC())
		if err != nil {
			return err
		}
		return s.storage.CreateAuditRecord(ctx, authz.CompanyID, authz.UserID,
			"workspace.archived", fmt.Sprintf("workspace %s archived, %d keys revoked", authz.WorkspaceID, revoked))
	})
	if err != nil {
		return nil, err
	}

	if !workspace.Provisioned() {
		return &SyncResult{Synced: true}, nil
	}

	if err := s.remote.ArchiveWorkspace(ctx, s.actor(authz), *workspace.APIWorkspaceID); err != nil {
		s.logger.Warnf("remote archive failed for workspace %s: %v", authz.WorkspaceID, err)
		return &SyncResult{Detail: "remote archive pending reconciliation"}, nil
	}
	return &SyncResult{Synced: true}, nil
}

// RestoreWorkspace reactivates an archived workspace. Revoked API keys
// stay revoked; revocation is one way.
func (s *Service) RestoreWorkspace(ctx context.Context, authz *access.AuthorizedContext) (*SyncResult, error) {
	ctx, span := s.tracer.Start(ctx, "provisioner.Service.RestoreWorkspace")
	defer span.End()

	if !authz.Workspace.Admin {
		s.logger.Security().AuthzDenied(authz.UserID, "workspace", "restore requires workspace admin")
		return nil, ErrForbidden
	}

	var workspace *types.Workspace
	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		var err error
		workspace, err = s.storage.GetWorkspaceByID(ctx, authz.WorkspaceID)
		if err != nil {
			return err
		}
		if workspace.Status == types.WorkspaceStatusActive {
			return ErrAlreadyActive
		}

		if err := s.storage.SetWorkspaceStatus(ctx, authz.WorkspaceID, types.WorkspaceStatusActive); err != nil {
			return err
		}
		return s.storage.CreateAuditRecord(ctx, authz.CompanyID, authz.UserID,
			"workspace.restored", fmt.Sprintf("workspace %s restored", authz.WorkspaceID))
	})
	if err != nil {
		return nil, err
	}

	if !workspace.Provisioned() {
		return &SyncResult{Synced: true}, nil
	}

	if err := s.remote.RestoreWorkspace(ctx, s.actor(authz), *workspace.APIWorkspaceID); err != nil {
		s.logger.Warnf("remote restore failed for workspace %s: %v", authz.WorkspaceID, err)
		return &SyncResult{Detail: "remote restore pending reconciliation"}, nil
	}
	return &SyncResult{Synced: true}, nil
}

// CreateAPIKey mints a key for an active workspace. The secret is
// returned exactly once; only its fingerprint is stored. If the remote
// registration fails the local row is deleted so no half-created key
// lingers.
func (s *Service) CreateAPIKey(ctx context.Context, authz *access.AuthorizedContext, name string) (*types.APIKey, string, error) {
	ctx, span := s.tracer.Start(ctx, "provisioner.Service.CreateAPIKey")
	defer span.End()

	if !authz.Workspace.Admin {
		s.logger.Security().AuthzDenied(authz.UserID, "apikey", "create requires workspace admin")
		return nil, "", ErrForbidden
	}

	workspace, err := s.storage.GetWorkspaceByID(ctx, authz.WorkspaceID)
	if err != nil {
		return nil, "", err
	}
	if workspace.Status != types.WorkspaceStatusActive {
		return nil, "", ErrNotActive
	}

	remoteWorkspaceID, err := s.ProvisionWorkspace(ctx, authz.UserID, authz.WorkspaceID)
	if err != nil {
		return nil, "", err
	}

	secret, fingerprint, err := tokens.GenerateToken()
	if err != nil {
		return nil, "", err
	}

	// The local row commits before any network I/O. The remote call can
	// retry for longer than a transaction may stay open, so it must not
	// ride the transaction that wrote the row.
	var created *types.APIKey
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.storage.CreateAPIKey(ctx, &types.APIKey{
			WorkspaceID: authz.WorkspaceID,
			Name:        name,
			SecretHash:  fingerprint,
			CreatedBy:   authz.UserID,
		})
		return err
	})
	if err != nil {
		return nil, "", err
	}

	remoteKeyID, err := s.remote.CreateAPIKey(ctx, s.actor(authz), remoteWorkspaceID, name, fingerprint)
	if err != nil {
		// Compensate in a fresh transaction: a key the remote does not
		// know about must not exist locally either.
		if delErr := s.db.WithTx(ctx, func(ctx context.Context) error {
			return s.storage.DeleteAPIKey(ctx, created.ID)
		}); delErr != nil {
			s.logger.Errorf("failed to delete api key %s after remote failure: %v", created.ID, delErr)
		}
		return nil, "", err
	}

	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.SetAPIKeyRemoteID(ctx, created.ID, remoteKeyID); err != nil {
			return err
		}
		return s.storage.CreateAuditRecord(ctx, authz.CompanyID, authz.UserID,
			"apikey.created", fmt.Sprintf("api key %s created for workspace %s", created.ID, authz.WorkspaceID))
	})
	if err != nil {
		s.logger.Warnf("failed to record remote id for api key %s: %v", created.ID, err)
	}

	created.APIKeyID = &remoteKeyID
	return created, secret, nil
}

// RevokeAPIKey revokes the key locally then mirrors downstream. Local
// revocation is one way and survives a failed remote call.
func (s *Service) RevokeAPIKey(ctx context.Context, authz *access.AuthorizedContext, keyID string) (*SyncResult, error) {
	ctx, span := s.tracer.Start(ctx, "provisioner.Service.RevokeAPIKey")
	defer span.End()

	if !authz.Workspace.Admin {
		s.logger.Security().AuthzDenied(authz.UserID, "apikey", "revoke requires workspace admin")
		return nil, ErrForbidden
	}

	key, err := s.storage.GetAPIKeyByID(ctx, keyID)
	if err != nil {
		return nil, err
	}
	if key.WorkspaceID != authz.WorkspaceID {
		return nil, ErrForbidden
	}

	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.RevokeAPIKey(ctx, keyID, time.Now().UTC()); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				// Already revoked, nothing more to do locally.
				return nil
			}
			return err
		}
		return s.storage.CreateAuditRecord(ctx, authz.CompanyID, authz.UserID,
			"apikey.revoked", fmt.Sprintf("api key %s revoked", keyID))
	})
	if err != nil {
		return nil, err
	}

	if key.APIKeyID == nil || *key.APIKeyID == "" {
		return &SyncResult{Synced: true}, nil
	}

	if err := s.remote.RevokeAPIKey(ctx, s.actor(authz), *key.APIKeyID); err != nil {
		s.logger.Warnf("remote revoke failed for api key %s: %v", keyID, err)
		return &SyncResult{Detail: "remote revoke pending reconciliation"}, nil
	}
	return &SyncResult{Synced: true}, nil
}

// ReconcileCompany backfills a missing remote link. If the remote knows
// the company it is adopted; otherwise it is created.
func (s *Service) ReconcileCompany(ctx context.Context, companyID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "provisioner.Service.ReconcileCompany")
	defer span.End()

	company, err := s.storage.GetCompanyByID(ctx, companyID)
	if err != nil {
		return "", err
	}
	if company.Provisioned() {
		return *company.APICompanyID, nil
	}

	remoteID, err := s.remote.GetCompanyByExternalID(ctx, companyID)
	if err != nil {
		if !provisioning.IsNotFound(err) {
			return "", err
		}
		return s.ProvisionCompany(ctx, "", companyID)
	}

	if err := s.linkCompany(ctx, companyID, remoteID); err != nil {
		return "", err
	}
	return remoteID, nil
}

func (s *Service) ReconcileWorkspace(ctx context.Context, workspaceID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "provisioner.Service.ReconcileWorkspace")
	defer span.End()

	workspace, err := s.storage.GetWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return "", err
	}
	if workspace.Provisioned() {
		return *workspace.APIWorkspaceID, nil
	}

	if _, err := s.ReconcileCompany(ctx, workspace.CompanyID); err != nil {
		return "", err
	}

	remoteID, err := s.remote.GetWorkspaceByExternalID(ctx, workspaceID)
	if err != nil {
		if !provisioning.IsNotFound(err) {
			return "", err
		}
		return s.ProvisionWorkspace(ctx, "", workspaceID)
	}

	if err := s.linkWorkspace(ctx, workspaceID, remoteID); err != nil {
		return "", err
	}
	return remoteID, nil
}

func (s *Service) actor(authz *access.AuthorizedContext) *provisioning.Actor {
	actor := &provisioning.Actor{ID: authz.UserID, CompanyID: authz.CompanyID}
	if authz.Company != nil {
		actor.Role = authz.Company.Role
	}
	return actor
}
