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

var challengeTestColumns = []string{
	"id", "user_id", "email", "magic_token_hash", "otp_hash",
	"magic_expires_at", "otp_expires_at", "otp_attempts",
	"used_at", "revoked_at", "last_sent_at", "created_at",
}

func TestCreateEmailChallenge(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	challenge := &types.EmailChallenge{
		UserID:         "user-1",
		Email:          "jane@example.com",
		MagicTokenHash: "magichash",
		OTPHash:        "otphash",
		MagicExpiresAt: now.Add(time.Hour),
		OTPExpiresAt:   now.Add(10 * time.Minute),
		LastSentAt:     now,
	}

	s, mock := newTestStorage(t)

	rows := sqlmock.NewRows(challengeTestColumns).AddRow(
		"challenge-1", "user-1", "jane@example.com", "magichash", "otphash",
		now.Add(time.Hour), now.Add(10*time.Minute), 0,
		nil, nil, now, now,
	)
	mock.ExpectQuery("INSERT INTO email_challenges").
		WillReturnRows(rows)

	created, err := s.CreateEmailChallenge(ctx, challenge)
	require.NoError(t, err)
	assert.Equal(t, "challenge-1", created.ID)
	assert.Equal(t, 0, created.OTPAttempts)
	assert.Nil(t, created.UsedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveChallengeByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("no live challenge", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectQuery("SELECT (.+) FROM email_challenges").
			WithArgs("user-1").
			WillReturnError(sql.ErrNoRows)

		c, err := s.GetActiveChallengeByUserID(ctx, "user-1")
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIncrementOTPAttempts(t *testing.T) {
	ctx := context.Background()

	t.Run("returns bumped counter", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectQuery("UPDATE email_challenges SET otp_attempts").
			WithArgs("challenge-1").
			WillReturnRows(sqlmock.NewRows([]string{"otp_attempts"}).AddRow(3))

		attempts, err := s.IncrementOTPAttempts(ctx, "challenge-1")
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown challenge", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectQuery("UPDATE email_challenges SET otp_attempts").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := s.IncrementOTPAttempts(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMarkChallengeUsed(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("first use", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectExec("UPDATE email_challenges SET used_at").
			WithArgs(now, "challenge-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := s.MarkChallengeUsed(ctx, "challenge-1", now)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already used", func(t *testing.T) {
		s, mock := newTestStorage(t)

		mock.ExpectExec("UPDATE email_challenges SET used_at").
			WithArgs(now, "challenge-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.MarkChallengeUsed(ctx, "challenge-1", now)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
