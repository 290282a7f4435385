// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package invites implements the invitation lifecycle: minting, token
// validation, acceptance with membership merging, and revocation.
package invites

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/workspace-service/internal/access"
	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/mail"
	"github.com/canonical/workspace-service/internal/maildomain"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/roles"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tokens"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

const inviteTTL = 7 * 24 * time.Hour

type CreateInviteRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Scope         string `json:"scope" validate:"required,oneof=company workspace"`
	WorkspaceID   string `json:"workspace_id,omitempty"`
	CompanyRole   string `json:"company_role,omitempty"`
	WorkspaceRole string `json:"workspace_role,omitempty"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	db       db.DBClientInterface
	resolver access.ResolverInterface
	checker  maildomain.CheckerInterface
	emails   mail.EmailInterface
	baseURL  string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(s StorageInterface, dbClient db.DBClientInterface, resolver access.ResolverInterface, checker maildomain.CheckerInterface, emails mail.EmailInterface, baseURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage:  s,
		db:       dbClient,
		resolver: resolver,
		checker:  checker,
		emails:   emails,
		baseURL:  baseURL,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// canAdminInvite decides whether the caller may administer an invite of
// the given scope. Company admins may administer any invite in their
// company; a workspace admin without company-level rights may only
// administer invites scoped to a workspace they administer.
func (s *Service) canAdminInvite(ctx context.Context, authz *access.AuthorizedContext, scope string, workspaceID *string) (bool, error) {
	if authz.Company.CanAdmin {
		return true, nil
	}
	if scope != types.InviteScopeWorkspace || workspaceID == nil || *workspaceID == "" {
		return false, nil
	}

	wsAuthz, err := s.resolver.ResolveWorkspaceAccess(ctx, authz.UserID, *workspaceID)
	if err != nil {
		if errors.Is(err, access.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return wsAuthz.Workspace != nil && wsAuthz.Workspace.Admin, nil
}

// CreateInvite mints a pending invitation. At most one pending invite may
// exist per (scope, target, normalized email); a second attempt surfaces
// ErrDuplicateInvite off the partial unique index rather than a racy
// read-then-write check.
func (s *Service) CreateInvite(ctx context.Context, authz *access.AuthorizedContext, req *CreateInviteRequest) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.CreateInvite")
	defer span.End()

	allowed, err := s.canAdminInvite(ctx, authz, req.Scope, &req.WorkspaceID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		s.logger.Security().AuthzDenied(authz.UserID, "invite", "create requires admin on the invite scope")
		return nil, ErrForbidden
	}

	invite, err := s.buildInvite(ctx, authz, req)
	if err != nil {
		return nil, err
	}

	token, fingerprint, err := tokens.GenerateToken()
	if err != nil {
		return nil, err
	}
	invite.TokenHash = fingerprint

	var created *types.Invitation
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.storage.CreateInvitation(ctx, invite)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				return ErrDuplicateInvite
			}
			return err
		}
		return s.storage.CreateAuditRecord(ctx, invite.CompanyID, authz.UserID,
			"invite.created", fmt.Sprintf("invite %s scope %s for %s", created.ID, invite.Scope, invite.EmailNormalized))
	})
	if err != nil {
		return nil, err
	}

	// Delivery is best effort; the invite stays valid and can be resent.
	company, err := s.storage.GetCompanyByID(ctx, invite.CompanyID)
	if err != nil {
		s.logger.Warnf("failed to load company for invite email: %v", err)
		return created, nil
	}
	mailErr := s.emails.SendInvite(ctx, &mail.Invite{
		Email:       invite.Email,
		CompanyName: company.Name,
		Scope:       invite.Scope,
		Role:        inviteRole(invite),
		AcceptURL:   fmt.Sprintf("%s/invites/accept?token=%s", s.baseURL, token),
	})
	if mailErr != nil {
		s.logger.Warnf("failed to send invite email for %s: %v", created.ID, mailErr)
	}

	return created, nil
}

func (s *Service) buildInvite(ctx context.Context, authz *access.AuthorizedContext, req *CreateInviteRequest) (*types.Invitation, error) {
	email := strings.TrimSpace(req.Email)
	normalized := strings.ToLower(email)

	disposable, err := s.checker.IsDisposable(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if disposable {
		return nil, ErrDisposableDomain
	}

	invite := &types.Invitation{
		Email:           email,
		EmailNormalized: normalized,
		Scope:           req.Scope,
		CompanyID:       authz.CompanyID,
		Status:          types.InviteStatusPending,
		InvitedBy:       authz.UserID,
		ExpiresAt:       time.Now().UTC().Add(inviteTTL),
	}

	switch req.Scope {
	case types.InviteScopeCompany:
		// Ownership is only ever granted through an explicit transfer.
		if !roles.ValidCompanyRole(req.CompanyRole) || req.CompanyRole == roles.CompanyOwner {
			return nil, ErrInvalidRole
		}
		role := req.CompanyRole
		invite.CompanyRole = &role
		key := pendingKey(req.Scope, authz.CompanyID, normalized)
		invite.PendingKey = &key

	case types.InviteScopeWorkspace:
		if !roles.ValidWorkspaceRole(req.WorkspaceRole) {
			return nil, ErrInvalidRole
		}
		workspace, err := s.storage.GetWorkspaceByID(ctx, req.WorkspaceID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, ErrWorkspaceMismatch
			}
			return nil, err
		}
		if workspace.CompanyID != authz.CompanyID || workspace.DeletedAt != nil {
			return nil, ErrWorkspaceMismatch
		}
		wsID := workspace.ID
		role := req.WorkspaceRole
		invite.WorkspaceID = &wsID
		invite.WorkspaceRole = &role
		key := pendingKey(req.Scope, wsID, normalized)
		invite.PendingKey = &key

	default:
		return nil, ErrInvalidRole
	}

	return invite, nil
}

// ValidateToken checks a presented token without consuming it. The
// checks run in a fixed order so the caller-visible failure is stable:
// unknown, then revoked, then used, then expired.
func (s *Service) ValidateToken(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.ValidateToken")
	defer span.End()

	invite, err := s.storage.GetInvitationByTokenHash(ctx, tokens.Fingerprint(token))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	switch invite.Status {
	case types.InviteStatusRevoked:
		return nil, ErrRevoked
	case types.InviteStatusAccepted:
		return nil, ErrAlreadyUsed
	}
	if time.Now().After(invite.ExpiresAt) {
		return nil, ErrExpired
	}

	return invite, nil
}

// AcceptInvite consumes a token for the given user. The invite is bound
// to its email: only an account whose address matches may accept. The
// acceptance and membership merge commit atomically; the status guard on
// the update makes the token single use even under concurrent accepts.
func (s *Service) AcceptInvite(ctx context.Context, token string, user *types.User) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.AcceptInvite")
	defer span.End()

	var invite *types.Invitation
	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		var err error
		invite, err = s.ValidateToken(ctx, token)
		if err != nil {
			return err
		}

		if strings.ToLower(strings.TrimSpace(user.Email)) != invite.EmailNormalized {
			return ErrEmailMismatch
		}

		now := time.Now().UTC()
		if err := s.storage.MarkInvitationAccepted(ctx, invite.ID, user.ID, now); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				// Lost the race with another accept or a revoke.
				return ErrAlreadyUsed
			}
			return err
		}

		if err := s.mergeMemberships(ctx, invite, user.ID); err != nil {
			return err
		}

		return s.storage.CreateAuditRecord(ctx, invite.CompanyID, user.ID,
			"invite.accepted", fmt.Sprintf("invite %s accepted", invite.ID))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Security().InviteAccepted(invite.ID, user.ID)
	return invite, nil
}

// mergeMemberships applies the invite's roles on top of whatever the user
// already holds. Merging is upgrade only; accepting a lesser invite never
// demotes an existing membership.
func (s *Service) mergeMemberships(ctx context.Context, invite *types.Invitation, userID string) error {
	companyRole := roles.CompanyMember
	if invite.CompanyRole != nil {
		companyRole = *invite.CompanyRole
	}

	existing, err := s.storage.GetCompanyMembership(ctx, invite.CompanyID, userID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		if _, err := s.storage.CreateCompanyMembership(ctx, invite.CompanyID, userID, companyRole); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		merged := roles.MergeCompanyRoles(existing.Role, companyRole)
		if merged != existing.Role {
			if err := s.storage.UpdateCompanyMembershipRole(ctx, invite.CompanyID, userID, merged); err != nil {
				return err
			}
		}
	}

	if invite.Scope != types.InviteScopeWorkspace || invite.WorkspaceID == nil || invite.WorkspaceRole == nil {
		return nil
	}

	existingWS, err := s.storage.GetWorkspaceMembership(ctx, *invite.WorkspaceID, userID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		_, err := s.storage.CreateWorkspaceMembership(ctx, *invite.WorkspaceID, userID, *invite.WorkspaceRole)
		return err
	case err != nil:
		return err
	default:
		merged := roles.MergeWorkspaceRoles(existingWS.Role, *invite.WorkspaceRole)
		if merged != existingWS.Role {
			return s.storage.UpdateWorkspaceMembershipRole(ctx, *invite.WorkspaceID, userID, merged)
		}
	}

	return nil
}

// RevokeInvite cancels a pending invite. Company admins may revoke any
// invite in their company, including workspace-scoped ones; workspace
// admins may revoke invites scoped to their own workspace.
func (s *Service) RevokeInvite(ctx context.Context, authz *access.AuthorizedContext, inviteID string) error {
	ctx, span := s.tracer.Start(ctx, "invites.Service.RevokeInvite")
	defer span.End()

	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		invite, err := s.storage.GetInvitationByID(ctx, inviteID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrInvalidToken
			}
			return err
		}
		if invite.CompanyID != authz.CompanyID {
			return ErrForbidden
		}

		allowed, err := s.canAdminInvite(ctx, authz, invite.Scope, invite.WorkspaceID)
		if err != nil {
			return err
		}
		if !allowed {
			s.logger.Security().AuthzDenied(authz.UserID, "invite", "revoke requires admin on the invite scope")
			return ErrForbidden
		}

		if err := s.storage.MarkInvitationRevoked(ctx, inviteID, authz.UserID, time.Now().UTC()); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrNotPending
			}
			return err
		}

		return s.storage.CreateAuditRecord(ctx, invite.CompanyID, authz.UserID,
			"invite.revoked", fmt.Sprintf("invite %s revoked", inviteID))
	})
	if err != nil {
		return err
	}

	s.logger.Security().InviteRevoked(inviteID, authz.UserID)
	return nil
}

func (s *Service) ListPending(ctx context.Context, authz *access.AuthorizedContext) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.ListPending")
	defer span.End()

	if !authz.Company.CanAdmin {
		return nil, ErrForbidden
	}

	return s.storage.ListPendingInvitationsByCompany(ctx, authz.CompanyID)
}

func pendingKey(scope, targetID, normalizedEmail string) string {
	return fmt.Sprintf("%s:%s:%s", scope, targetID, normalizedEmail)
}

func inviteRole(invite *types.Invitation) string {
	if invite.Scope == types.InviteScopeWorkspace && invite.WorkspaceRole != nil {
		return *invite.WorkspaceRole
	}
	if invite.CompanyRole != nil {
		return *invite.CompanyRole
	}
	return roles.CompanyMember
}
