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

const invitationColumns = "id, email, email_normalized, scope, company_id, workspace_id, company_role, workspace_role, token_hash, pending_key, status, invited_by, expires_at, revoked_at, revoked_by, accepted_at, accepted_by_user_id, created_at"

func scanInvitation(row sq.RowScanner) (*types.Invitation, error) {
	var i types.Invitation
	err := row.Scan(
		&i.ID, &i.Email, &i.EmailNormalized, &i.Scope, &i.CompanyID,
		&i.WorkspaceID, &i.CompanyRole, &i.WorkspaceRole, &i.TokenHash,
		&i.PendingKey, &i.Status, &i.InvitedBy, &i.ExpiresAt,
		&i.RevokedAt, &i.RevokedBy, &i.AcceptedAt, &i.AcceptedBy, &i.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan invitation: %w", err)
	}
	return &i, nil
}

// CreateInvitation inserts a pending invitation. The partial unique index
// on pending_key is the duplicate-invite guard: a second pending invite
// for the same (scope, target, email) surfaces as ErrDuplicateKey.
func (s *Storage) CreateInvitation(ctx context.Context, invite *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("invitations").
		Columns("id", "email", "email_normalized", "scope", "company_id", "workspace_id",
			"company_role", "workspace_role", "token_hash", "pending_key", "status",
			"invited_by", "expires_at").
		Values(id.String(), invite.Email, invite.EmailNormalized, invite.Scope, invite.CompanyID,
			invite.WorkspaceID, invite.CompanyRole, invite.WorkspaceRole, invite.TokenHash,
			invite.PendingKey, types.InviteStatusPending, invite.InvitedBy, invite.ExpiresAt).
		Suffix("RETURNING " + invitationColumns).
		QueryRowContext(ctx)

	created, err := scanInvitation(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}

	return created, nil
}

func (s *Storage) GetInvitationByID(ctx context.Context, id string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(invitationColumns).
		From("invitations").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	return scanInvitation(row)
}

// GetInvitationByTokenHash looks up an invitation by its token hash.
// Lookups never use raw tokens or row ids so presented tokens cannot be
// used to enumerate invitations.
func (s *Storage) GetInvitationByTokenHash(ctx context.Context, tokenHash string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByTokenHash")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(invitationColumns).
		From("invitations").
		Where(sq.Eq{"token_hash": tokenHash}).
		QueryRowContext(ctx)

	return scanInvitation(row)
}

// MarkInvitationAccepted flips a pending invitation to accepted and
// clears its pending key. The status guard in the WHERE clause makes the
// transition single-shot under concurrent accepts.
func (s *Storage) MarkInvitationAccepted(ctx context.Context, id, userID string, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkInvitationAccepted")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invitations").
		Set("status", types.InviteStatusAccepted).
		Set("accepted_at", at).
		Set("accepted_by_user_id", userID).
		Set("pending_key", nil).
		Where(sq.Eq{"id": id, "status": types.InviteStatusPending}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to accept invitation: %w", err)
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

func (s *Storage) MarkInvitationRevoked(ctx context.Context, id, actorID string, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkInvitationRevoked")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invitations").
		Set("status", types.InviteStatusRevoked).
		Set("revoked_at", at).
		Set("revoked_by", actorID).
		Set("pending_key", nil).
		Where(sq.Eq{"id": id, "status": types.InviteStatusPending}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to revoke invitation: %w", err)
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

func (s *Storage) ListPendingInvitationsByCompany(ctx context.Context, companyID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingInvitationsByCompany")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(invitationColumns).
		From("invitations").
		Where(sq.Eq{"company_id": companyID, "status": types.InviteStatusPending}).
		OrderBy("created_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invites []*types.Invitation
	for rows.Next() {
		var i types.Invitation
		if err := rows.Scan(
			&i.ID, &i.Email, &i.EmailNormalized, &i.Scope, &i.CompanyID,
			&i.WorkspaceID, &i.CompanyRole, &i.WorkspaceRole, &i.TokenHash,
			&i.PendingKey, &i.Status, &i.InvitedBy, &i.ExpiresAt,
			&i.RevokedAt, &i.RevokedBy, &i.AcceptedAt, &i.AcceptedBy, &i.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invites = append(invites, &i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invites, nil
}
