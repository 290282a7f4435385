// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/google/uuid"
)

const apiKeyColumns = "id, workspace_id, name, secret_hash, api_key_id, created_by, created_at, revoked_at"

func scanAPIKey(row sq.RowScanner) (*types.APIKey, error) {
	var k types.APIKey
	err := row.Scan(
		&k.ID, &k.WorkspaceID, &k.Name, &k.SecretHash,
		&k.APIKeyID, &k.CreatedBy, &k.CreatedAt, &k.RevokedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan api key: %w", err)
	}
	return &k, nil
}

func (s *Storage) CreateAPIKey(ctx context.Context, k *types.APIKey) (*types.APIKey, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAPIKey")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate api key ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("api_keys").
		Columns("id", "workspace_id", "name", "secret_hash", "created_by").
		Values(id.String(), k.WorkspaceID, k.Name, k.SecretHash, k.CreatedBy).
		Suffix("RETURNING " + apiKeyColumns).
		QueryRowContext(ctx)

	created, err := scanAPIKey(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, err
	}

	return created, nil
}

func (s *Storage) GetAPIKeyByID(ctx context.Context, id string) (*types.APIKey, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAPIKeyByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(apiKeyColumns).
		From("api_keys").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	return scanAPIKey(row)
}

func (s *Storage) SetAPIKeyRemoteID(ctx context.Context, id, remoteID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetAPIKeyRemoteID")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("api_keys").
		Set("api_key_id", remoteID).
		Where(sq.Eq{"id": id, "api_key_id": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set api key remote id: %w", err)
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

// RevokeAPIKey stamps revoked_at. Revocation is a one-way ratchet, an
// already revoked key keeps its original timestamp.
func (s *Storage) RevokeAPIKey(ctx context.Context, id string, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeAPIKey")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("api_keys").
		Set("revoked_at", at).
		Where(sq.Eq{"id": id, "revoked_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to revoke api key: %w", err)
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

func (s *Storage) RevokeAPIKeysForWorkspace(ctx context.Context, workspaceID string, at time.Time) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeAPIKeysForWorkspace")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("api_keys").
		Set("revoked_at", at).
		Where(sq.Eq{"workspace_id": workspaceID, "revoked_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to revoke workspace api keys: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}

// DeleteAPIKey removes the row entirely. Used as the compensating action
// when remote sync fails right after local creation.
func (s *Storage) DeleteAPIKey(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteAPIKey")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("api_keys").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete api key: %w", err)
	}

	return nil
}

func (s *Storage) ListActiveAPIKeysByWorkspace(ctx context.Context, workspaceID string) ([]*types.APIKey, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveAPIKeysByWorkspace")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(apiKeyColumns).
		From("api_keys").
		Where(sq.Eq{"workspace_id": workspaceID, "revoked_at": nil}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}
	defer rows.Close()

	var keys []*types.APIKey
	for rows.Next() {
		var k types.APIKey
		if err := rows.Scan(&k.ID, &k.WorkspaceID, &k.Name, &k.SecretHash, &k.APIKeyID, &k.CreatedBy, &k.CreatedAt, &k.RevokedAt); err != nil {
			return nil, fmt.Errorf("failed to scan api key: %w", err)
		}
		keys = append(keys, &k)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return keys, nil
}
