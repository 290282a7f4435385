// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package members manages company and workspace membership rows:
// role changes, removal, and ownership transfer. The one invariant every
// mutation here must respect is that a company never drops to zero
// owners.
package members

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/workspace-service/internal/access"
	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/roles"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	db      db.DBClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(s StorageInterface, dbClient db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage: s,
		db:      dbClient,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) ListMembers(ctx context.Context, authz *access.AuthorizedContext) ([]*types.CompanyMembership, error) {
	ctx, span := s.tracer.Start(ctx, "members.Service.ListMembers")
	defer span.End()

	if !authz.Company.CanAdmin && !authz.Company.CanBilling {
		return nil, ErrForbidden
	}

	return s.storage.ListCompanyMemberships(ctx, authz.CompanyID)
}

// UpdateCompanyRole changes a member's company role. Ownership is out of
// scope here: the owner role can be neither granted nor taken away
// except through TransferOwnership.
func (s *Service) UpdateCompanyRole(ctx context.Context, authz *access.AuthorizedContext, targetUserID, role string) error {
	ctx, span := s.tracer.Start(ctx, "members.Service.UpdateCompanyRole")
	defer span.End()

	if !authz.Company.CanAdmin {
		s.logger.Security().AuthzDenied(authz.UserID, "membership", "role change requires company admin")
		return ErrForbidden
	}
	if !roles.ValidCompanyRole(role) || role == roles.CompanyOwner {
		return ErrInvalidRole
	}

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		membership, err := s.storage.GetCompanyMembership(ctx, authz.CompanyID, targetUserID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrNotMember
			}
			return err
		}
		if membership.Role == roles.CompanyOwner {
			return ErrInvalidRole
		}
		if membership.Role == role {
			return nil
		}

		if err := s.storage.UpdateCompanyMembershipRole(ctx, authz.CompanyID, targetUserID, role); err != nil {
			return err
		}
		return s.storage.CreateAuditRecord(ctx, authz.CompanyID, authz.UserID,
			"member.role_changed", fmt.Sprintf("user %s: %s -> %s", targetUserID, membership.Role, role))
	})
}

// RemoveCompanyMember deletes a membership. The owner count is checked
// inside the same transaction as the delete, so two concurrent removals
// cannot strip the final owner.
func (s *Service) RemoveCompanyMember(ctx context.Context, authz *access.AuthorizedContext, targetUserID string) error {
	ctx, span := s.tracer.Start(ctx, "members.Service.RemoveCompanyMember")
	defer span.End()

	if !authz.Company.CanAdmin && authz.UserID != targetUserID {
		s.logger.Security().AuthzDenied(authz.UserID, "membership", "removal requires company admin")
		return ErrForbidden
	}

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		membership, err := s.storage.GetCompanyMembership(ctx, authz.CompanyID, targetUserID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrNotMember
			}
			return err
		}

		if membership.Role == roles.CompanyOwner {
			owners, err := s.storage.CountCompanyOwners(ctx, authz.CompanyID)
			if err != nil {
				return err
			}
			if owners <= 1 {
				return ErrLastOwner
			}
		}

		if err := s.storage.DeleteCompanyMembership(ctx, authz.CompanyID, targetUserID); err != nil {
			return err
		}
		return s.storage.CreateAuditRecord(ctx, authz.CompanyID, authz.UserID,
			"member.removed", fmt.Sprintf("user %s removed (was %s)", targetUserID, membership.Role))
	})
}

// TransferOwnership promotes the target to owner and demotes the caller
// to admin in one transaction. The caller confirms by repeating the
// company slug; the target must be an active member with a verified
// email.
func (s *Service) TransferOwnership(ctx context.Context, authz *access.AuthorizedContext, targetUserID, confirmation string) error {
	ctx, span := s.tracer.Start(ctx, "members.Service.TransferOwnership")
	defer span.End()

	if authz.Company.Role != roles.CompanyOwner {
		s.logger.Security().AuthzDenied(authz.UserID, "ownership", "transfer requires the current owner")
		return ErrForbidden
	}
	if targetUserID == authz.UserID {
		return ErrTargetNotEligible
	}

	company, err := s.storage.GetCompanyByID(ctx, authz.CompanyID)
	if err != nil {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(confirmation), company.Slug) {
		return ErrConfirmationMismatch
	}

	target, err := s.storage.GetUserByID(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotMember
		}
		return err
	}
	if !target.Active || !target.EmailVerified {
		return ErrTargetNotEligible
	}

	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.storage.GetCompanyMembership(ctx, authz.CompanyID, targetUserID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrNotMember
			}
			return err
		}

		if err := s.storage.UpdateCompanyMembershipRole(ctx, authz.CompanyID, targetUserID, roles.CompanyOwner); err != nil {
			return err
		}
		if err := s.storage.UpdateCompanyMembershipRole(ctx, authz.CompanyID, authz.UserID, roles.CompanyAdmin); err != nil {
			return err
		}

		// Re-check inside the transaction: the demote above must not
		// have left the company ownerless.
		owners, err := s.storage.CountCompanyOwners(ctx, authz.CompanyID)
		if err != nil {
			return err
		}
		if owners < 1 {
			return ErrLastOwner
		}

		return s.storage.CreateAuditRecord(ctx, authz.CompanyID, authz.UserID,
			"ownership.transferred", fmt.Sprintf("ownership moved from %s to %s", authz.UserID, targetUserID))
	})
	if err != nil {
		return err
	}

	s.logger.Security().OwnershipTransferred(authz.CompanyID, authz.UserID, targetUserID)
	return nil
}

// AssignWorkspaceRole sets a member's workspace role exactly. Unlike
// invite acceptance this is a deliberate admin action and may downgrade.
func (s *Service) AssignWorkspaceRole(ctx context.Context, authz *access.AuthorizedContext, targetUserID, role string) error {
	ctx, span := s.tracer.Start(ctx, "members.Service.AssignWorkspaceRole")
	defer span.End()

	if !authz.Workspace.Admin {
		s.logger.Security().AuthzDenied(authz.UserID, "workspace membership", "assignment requires workspace admin")
		return ErrForbidden
	}
	if !roles.ValidWorkspaceRole(role) {
		return ErrInvalidRole
	}

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		// Workspace grants only go to company members.
		if _, err := s.storage.GetCompanyMembership(ctx, authz.CompanyID, targetUserID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrNotMember
			}
			return err
		}

		existing, err := s.storage.GetWorkspaceMembership(ctx, authz.WorkspaceID, targetUserID)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			if _, err := s.storage.CreateWorkspaceMembership(ctx, authz.WorkspaceID, targetUserID, role); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if existing.Role == role {
				return nil
			}
			if err := s.storage.UpdateWorkspaceMembershipRole(ctx, authz.WorkspaceID, targetUserID, role); err != nil {
				return err
			}
		}

		return s.storage.CreateAuditRecord(ctx, authz.CompanyID, authz.UserID,
			"workspace.role_assigned", fmt.Sprintf("user %s assigned %s on workspace %s", targetUserID, role, authz.WorkspaceID))
	})
}

func (s *Service) RemoveWorkspaceMember(ctx context.Context, authz *access.AuthorizedContext, targetUserID string) error {
	ctx, span := s.tracer.Start(ctx, "members.Service.RemoveWorkspaceMember")
	defer span.End()

	if !authz.Workspace.Admin {
		s.logger.Security().AuthzDenied(authz.UserID, "workspace membership", "removal requires workspace admin")
		return ErrForbidden
	}

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.DeleteWorkspaceMembership(ctx, authz.WorkspaceID, targetUserID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrNotMember
			}
			return err
		}
		return s.storage.CreateAuditRecord(ctx, authz.CompanyID, authz.UserID,
			"workspace.member_removed", fmt.Sprintf("user %s removed from workspace %s", targetUserID, authz.WorkspaceID))
	})
}
