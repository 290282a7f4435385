// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var invitationTestColumns = []string{
	"id", "email", "email_normalized", "scope", "company_id", "workspace_id",
	"company_role", "workspace_role", "token_hash", "pending_key", "status",
	"invited_by", "expires_at", "revoked_at", "revoked_by", "accepted_at",
	"accepted_by_user_id", "created_at",
}

func pendingInviteRow(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(invitationTestColumns).AddRow(
		"invite-1", "Jane@Example.com", "jane@example.com", types.InviteScopeCompany, "company-1", nil,
		"member", nil, "tokenhash", "company:company-1:jane@example.com", types.InviteStatusPending,
		"user-1", now.Add(7*24*time.Hour), nil, nil, nil,
		nil, now,
	)
}

func TestCreateInvitation(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	role := "member"
	pendingKey := "company:company-1:jane@example.com"

	invite := &types.Invitation{
		Email:           "Jane@Example.com",
		EmailNormalized: "jane@example.com",
		Scope:           types.InviteScopeCompany,
		CompanyID:       "company-1",
		CompanyRole:     &role,
		TokenHash:       "tokenhash",
		PendingKey:      &pendingKey,
		InvitedBy:       "user-1",
		ExpiresAt:       now.Add(7 * 24 * time.Hour),
	}

	t.Run("success", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectQuery("INSERT INTO invitations").
			WillReturnRows(pendingInviteRow(now))

		created, err := s.CreateInvitation(ctx, invite)
		require.NoError(t, err)
		assert.Equal(t, "invite-1", created.ID)
		assert.Equal(t, types.InviteStatusPending, created.Status)
		assert.Equal(t, "jane@example.com", created.EmailNormalized)
		require.NotNil(t, created.PendingKey)
		assert.Equal(t, pendingKey, *created.PendingKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("pending invite already exists", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectQuery("INSERT INTO invitations").
			WillReturnError(duplicateKeyErr())

		created, err := s.CreateInvitation(ctx, invite)
		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrDuplicateKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetInvitationByTokenHash(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectQuery("SELECT (.+) FROM invitations").
			WithArgs("tokenhash").
			WillReturnRows(pendingInviteRow(now))

		i, err := s.GetInvitationByTokenHash(ctx, "tokenhash")
		require.NoError(t, err)
		assert.Equal(t, "invite-1", i.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown token", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectQuery("SELECT (.+) FROM invitations").
			WithArgs("bogus").
			WillReturnError(sql.ErrNoRows)

		i, err := s.GetInvitationByTokenHash(ctx, "bogus")
		assert.Nil(t, i)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMarkInvitationAccepted(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("pending invite flips", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectExec("UPDATE invitations SET status").
			WithArgs(types.InviteStatusAccepted, now, "user-2", nil, "invite-1", types.InviteStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := s.MarkInvitationAccepted(ctx, "invite-1", "user-2", now)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already settled", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectExec("UPDATE invitations SET status").
			WithArgs(types.InviteStatusAccepted, now, "user-2", nil, "invite-1", types.InviteStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.MarkInvitationAccepted(ctx, "invite-1", "user-2", now)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMarkInvitationRevoked(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	s, mock := newTestStorage(t)

	mock.ExpectExec("UPDATE invitations SET status").
		WithArgs(types.InviteStatusRevoked, now, "user-1", nil, "invite-1", types.InviteStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.MarkInvitationRevoked(ctx, "invite-1", "user-1", now)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPendingInvitationsByCompany(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	s, mock := newTestStorage(t)

	mock.ExpectQuery("SELECT (.+) FROM invitations").
		WithArgs("company-1", types.InviteStatusPending).
		WillReturnRows(pendingInviteRow(now))

	invites, err := s.ListPendingInvitationsByCompany(ctx, "company-1")
	require.NoError(t, err)
	require.Len(t, invites, 1)
	assert.Equal(t, "invite-1", invites[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
