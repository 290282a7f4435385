// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/google/uuid"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) GetCompanyByID(ctx context.Context, id string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCompanyByID")
	defer span.End()

	var c types.Company
	err := s.db.Statement(ctx).
		Select("id", "name", "slug", "api_company_id", "created_at", "deleted_at").
		From("companies").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.Name, &c.Slug, &c.APICompanyID, &c.CreatedAt, &c.DeletedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return &c, nil
}

// SetCompanyAPIID links the company to its downstream counterpart. The
// link is write-once: an already linked row is left untouched.
func (s *Storage) SetCompanyAPIID(ctx context.Context, id, apiID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetCompanyAPIID")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("companies").
		Set("api_company_id", apiID).
		Where(sq.Eq{"id": id, "api_company_id": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set company api id: %w", err)
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

func (s *Storage) GetWorkspaceByID(ctx context.Context, id string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWorkspaceByID")
	defer span.End()

	var w types.Workspace
	err := s.db.Statement(ctx).
		Select("id", "company_id", "name", "region", "status", "api_workspace_id", "created_at", "deleted_at").
		From("workspaces").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&w.ID, &w.CompanyID, &w.Name, &w.Region, &w.Status, &w.APIWorkspaceID, &w.CreatedAt, &w.DeletedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return &w, nil
}

func (s *Storage) SetWorkspaceAPIID(ctx context.Context, id, apiID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetWorkspaceAPIID")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("workspaces").
		Set("api_workspace_id", apiID).
		Where(sq.Eq{"id": id, "api_workspace_id": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set workspace api id: %w", err)
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

func (s *Storage) SetWorkspaceStatus(ctx context.Context, id, status string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetWorkspaceStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("workspaces").
		Set("status", status).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set workspace status: %w", err)
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

// CreateCompany inserts a new company row.
func (s *Storage) CreateCompany(ctx context.Context, name, slug string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCompany")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate company ID: %w", err)
	}

	var c types.Company
	err = s.db.Statement(ctx).
		Insert("companies").
		Columns("id", "name", "slug").
		Values(id.String(), name, slug).
		Suffix("RETURNING id, name, slug, api_company_id, created_at, deleted_at").
		QueryRowContext(ctx).
		Scan(&c.ID, &c.Name, &c.Slug, &c.APICompanyID, &c.CreatedAt, &c.DeletedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return &c, nil
}

// CreateUser inserts a user row keyed by the identity provider id.
func (s *Storage) CreateUser(ctx context.Context, id, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "email").
		Values(id, email).
		Suffix("RETURNING id, email, email_verified, active, created_at").
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Email, &u.EmailVerified, &u.Active, &u.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &u, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Select("id", "email", "email_verified", "active", "created_at").
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Email, &u.EmailVerified, &u.Active, &u.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func (s *Storage) SetUserEmailVerified(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetUserEmailVerified")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("users").
		Set("email_verified", true).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}

	return nil
}
