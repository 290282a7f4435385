// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/google/uuid"
)

func (s *Storage) GetCompanyMembership(ctx context.Context, companyID, userID string) (*types.CompanyMembership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCompanyMembership")
	defer span.End()

	var m types.CompanyMembership
	err := s.db.Statement(ctx).
		Select("id", "company_id", "user_id", "role", "created_at").
		From("company_memberships").
		Where(sq.Eq{"company_id": companyID, "user_id": userID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.CompanyID, &m.UserID, &m.Role, &m.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) CreateCompanyMembership(ctx context.Context, companyID, userID, role string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCompanyMembership")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate membership ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("company_memberships").
		Columns("id", "company_id", "user_id", "role").
		Values(id.String(), companyID, userID, role).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return "", ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return "", ErrForeignKeyViolation
		}
		return "", fmt.Errorf("failed to create company membership: %w", err)
	}

	return id.String(), nil
}

func (s *Storage) UpdateCompanyMembershipRole(ctx context.Context, companyID, userID, role string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCompanyMembershipRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("company_memberships").
		Set("role", role).
		Where(sq.Eq{"company_id": companyID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update company membership: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteCompanyMembership(ctx context.Context, companyID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCompanyMembership")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("company_memberships").
		Where(sq.Eq{"company_id": companyID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete company membership: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// CountCompanyOwners reports the number of owner rows for the company.
// Callers enforcing the last-owner invariant must run this inside the
// same transaction as the mutation it guards.
func (s *Storage) CountCompanyOwners(ctx context.Context, companyID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountCompanyOwners")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("company_memberships").
		Where(sq.Eq{"company_id": companyID, "role": "owner"}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count company owners: %w", err)
	}

	return count, nil
}

func (s *Storage) ListCompanyMemberships(ctx context.Context, companyID string) ([]*types.CompanyMembership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCompanyMemberships")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "company_id", "user_id", "role", "created_at").
		From("company_memberships").
		Where(sq.Eq{"company_id": companyID}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list company memberships: %w", err)
	}
	defer rows.Close()

	var members []*types.CompanyMembership
	for rows.Next() {
		var m types.CompanyMembership
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.UserID, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan company membership: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) GetWorkspaceMembership(ctx context.Context, workspaceID, userID string) (*types.WorkspaceMembership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWorkspaceMembership")
	defer span.End()

	var m types.WorkspaceMembership
	err := s.db.Statement(ctx).
		Select("id", "workspace_id", "user_id", "role", "created_at").
		From("workspace_memberships").
		Where(sq.Eq{"workspace_id": workspaceID, "user_id": userID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.WorkspaceID, &m.UserID, &m.Role, &m.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workspace membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) CreateWorkspaceMembership(ctx context.Context, workspaceID, userID, role string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateWorkspaceMembership")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate membership ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("workspace_memberships").
		Columns("id", "workspace_id", "user_id", "role").
		Values(id.String(), workspaceID, userID, role).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return "", ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return "", ErrForeignKeyViolation
		}
		return "", fmt.Errorf("failed to create workspace membership: %w", err)
	}

	return id.String(), nil
}

func (s *Storage) UpdateWorkspaceMembershipRole(ctx context.Context, workspaceID, userID, role string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateWorkspaceMembershipRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("workspace_memberships").
		Set("role", role).
		Where(sq.Eq{"workspace_id": workspaceID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update workspace membership: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteWorkspaceMembership(ctx context.Context, workspaceID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteWorkspaceMembership")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("workspace_memberships").
		Where(sq.Eq{"workspace_id": workspaceID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete workspace membership: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
