// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package access computes effective permissions. Every privileged
// operation consults a Resolver before acting; no caller is allowed to
// compare raw role strings on its own.
package access

import (
	"context"
	"errors"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/roles"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
)

// ErrNotFound is returned both when the resource does not exist and when
// the caller has no membership at all, so a denied caller cannot probe
// for resource existence.
var ErrNotFound = errors.New("not found")

// WorkspaceAccess is the resolved capability set for a user on a
// workspace. CompanyRole is always set; WorkspaceRole only when the
// capabilities came from a workspace membership row.
type WorkspaceAccess struct {
	Read  bool
	Write bool
	Admin bool

	CompanyRole   string
	WorkspaceRole string
}

// CompanyAccess is the resolved capability set for company-level
// surfaces (members, invites, settings).
type CompanyAccess struct {
	CanAdmin   bool
	CanBilling bool
	CanMember  bool

	Role string
}

// AuthorizedContext is produced once per request by the resolver and
// threaded through call signatures, so downstream code never has to
// re-derive who the caller is or what they may do.
type AuthorizedContext struct {
	UserID      string
	CompanyID   string
	WorkspaceID string

	Company   *CompanyAccess
	Workspace *WorkspaceAccess
}

var _ ResolverInterface = (*Resolver)(nil)

type Resolver struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewResolver(s StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Resolver {
	return &Resolver{
		storage: s,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// ResolveWorkspaceAccess computes the capability cascade for a user on a
// workspace: company owners and admins get full access, billing gets
// read-only, and members fall through to their workspace membership row.
// A member with no row is authenticated but has zero access, which is
// distinct from ErrNotFound.
func (r *Resolver) ResolveWorkspaceAccess(ctx context.Context, userID, workspaceID string) (*AuthorizedContext, error) {
	ctx, span := r.tracer.Start(ctx, "access.Resolver.ResolveWorkspaceAccess")
	defer span.End()

	workspace, err := r.storage.GetWorkspaceByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if workspace.DeletedAt != nil {
		return nil, ErrNotFound
	}

	membership, err := r.storage.GetCompanyMembership(ctx, workspace.CompanyID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	authz := &AuthorizedContext{
		UserID:      userID,
		CompanyID:   workspace.CompanyID,
		WorkspaceID: workspaceID,
		Company:     companyAccess(membership.Role),
	}

	switch membership.Role {
	case roles.CompanyOwner, roles.CompanyAdmin:
		authz.Workspace = &WorkspaceAccess{
			Read:        true,
			Write:       true,
			Admin:       true,
			CompanyRole: membership.Role,
		}
		return authz, nil
	case roles.CompanyBilling:
		authz.Workspace = &WorkspaceAccess{
			Read:        true,
			CompanyRole: membership.Role,
		}
		return authz, nil
	}

	wa := &WorkspaceAccess{CompanyRole: membership.Role}

	wm, err := r.storage.GetWorkspaceMembership(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Authenticated member of the company with no grant on
			// this workspace: zero capabilities, not NotFound.
			authz.Workspace = wa
			return authz, nil
		}
		return nil, err
	}

	wa.WorkspaceRole = wm.Role
	switch wm.Role {
	case roles.WorkspaceAdmin:
		wa.Read, wa.Write, wa.Admin = true, true, true
	case roles.WorkspaceWriter:
		wa.Read, wa.Write = true, true
	case roles.WorkspaceReader:
		wa.Read = true
	}

	authz.Workspace = wa
	return authz, nil
}

// ResolveCompanyAccess resolves the company-level capability set.
func (r *Resolver) ResolveCompanyAccess(ctx context.Context, userID, companyID string) (*AuthorizedContext, error) {
	ctx, span := r.tracer.Start(ctx, "access.Resolver.ResolveCompanyAccess")
	defer span.End()

	company, err := r.storage.GetCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if company.DeletedAt != nil {
		return nil, ErrNotFound
	}

	membership, err := r.storage.GetCompanyMembership(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &AuthorizedContext{
		UserID:    userID,
		CompanyID: companyID,
		Company:   companyAccess(membership.Role),
	}, nil
}

func companyAccess(role string) *CompanyAccess {
	return &CompanyAccess{
		CanAdmin:   role == roles.CompanyOwner || role == roles.CompanyAdmin,
		CanBilling: role == roles.CompanyBilling,
		CanMember:  role == roles.CompanyMember,
		Role:       role,
	}
}
