// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var apiKeyTestColumns = []string{
	"id", "workspace_id", "name", "secret_hash", "api_key_id",
	"created_by", "created_at", "revoked_at",
}

func TestCreateAPIKey(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	key := &types.APIKey{
		WorkspaceID: "ws-1",
		Name:        "ci-deploy",
		SecretHash:  "secrethash",
		CreatedBy:   "user-1",
	}

	t.Run("success", func(t *testing.T) {
		s, mock := newTestStorage(t)

		rows := sqlmock.NewRows(apiKeyTestColumns).
			AddRow("key-1", "ws-1", "ci-deploy", "secrethash", nil, "user-1", now, nil)
		mock.ExpectQuery("INSERT INTO api_keys").
			WithArgs(sqlmock.AnyArg(), "ws-1", "ci-deploy", "secrethash", "user-1").
			WillReturnRows(rows)

		created, err := s.CreateAPIKey(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "key-1", created.ID)
		assert.Nil(t, created.RevokedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown workspace", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectQuery("INSERT INTO api_keys").
			WithArgs(sqlmock.AnyArg(), "ws-1", "ci-deploy", "secrethash", "user-1").
			WillReturnError(foreignKeyErr())

		created, err := s.CreateAPIKey(ctx, key)
		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrForeignKeyViolation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRevokeAPIKey(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("live key", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectExec("UPDATE api_keys SET revoked_at").
			WithArgs(now, "key-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := s.RevokeAPIKey(ctx, "key-1", now)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already revoked keeps original timestamp", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectExec("UPDATE api_keys SET revoked_at").
			WithArgs(now, "key-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.RevokeAPIKey(ctx, "key-1", now)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRevokeAPIKeysForWorkspace(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	s, mock := newTestStorage(t)

	mock.ExpectExec("UPDATE api_keys SET revoked_at").
		WithArgs(now, "ws-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	revoked, err := s.RevokeAPIKeysForWorkspace(ctx, "ws-1", now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), revoked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveAPIKeysByWorkspace(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	s, mock := newTestStorage(t)

	rows := sqlmock.NewRows(apiKeyTestColumns).
		AddRow("key-1", "ws-1", "ci-deploy", "secrethash", "remote-key-1", "user-1", now, nil).
		AddRow("key-2", "ws-1", "backup", "otherhash", nil, "user-2", now, nil)
	mock.ExpectQuery("SELECT (.+) FROM api_keys").
		WithArgs("ws-1").
		WillReturnRows(rows)

	keys, err := s.ListActiveAPIKeysByWorkspace(ctx, "ws-1")
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, "ci-deploy", keys[0].Name)
	require.NotNil(t, keys[0].APIKeyID)
	assert.Equal(t, "remote-key-1", *keys[0].APIKeyID)
	assert.Nil(t, keys[1].APIKeyID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
