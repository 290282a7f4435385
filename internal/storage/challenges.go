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

const challengeColumns = "id, user_id, email, magic_token_hash, otp_hash, magic_expires_at, otp_expires_at, otp_attempts, used_at, revoked_at, last_sent_at, created_at"

func scanChallenge(row sq.RowScanner) (*types.EmailChallenge, error) {
	var c types.EmailChallenge
	err := row.Scan(
		&c.ID, &c.UserID, &c.Email, &c.MagicTokenHash, &c.OTPHash,
		&c.MagicExpiresAt, &c.OTPExpiresAt, &c.OTPAttempts,
		&c.UsedAt, &c.RevokedAt, &c.LastSentAt, &c.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan challenge: %w", err)
	}
	return &c, nil
}

func (s *Storage) CreateEmailChallenge(ctx context.Context, c *types.EmailChallenge) (*types.EmailChallenge, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateEmailChallenge")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate challenge ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("email_challenges").
		Columns("id", "user_id", "email", "magic_token_hash", "otp_hash",
			"magic_expires_at", "otp_expires_at", "last_sent_at").
		Values(id.String(), c.UserID, c.Email, c.MagicTokenHash, c.OTPHash,
			c.MagicExpiresAt, c.OTPExpiresAt, c.LastSentAt).
		Suffix("RETURNING " + challengeColumns).
		QueryRowContext(ctx)

	return scanChallenge(row)
}

// RevokeActiveChallenges revokes every live challenge for the user so at
// most one challenge is active at a time.
func (s *Storage) RevokeActiveChallenges(ctx context.Context, userID string, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeActiveChallenges")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("email_challenges").
		Set("revoked_at", at).
		Where(sq.Eq{"user_id": userID, "used_at": nil, "revoked_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to revoke challenges: %w", err)
	}

	return nil
}

func (s *Storage) GetChallengeByID(ctx context.Context, id string) (*types.EmailChallenge, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetChallengeByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(challengeColumns).
		From("email_challenges").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	return scanChallenge(row)
}

func (s *Storage) GetActiveChallengeByUserID(ctx context.Context, userID string) (*types.EmailChallenge, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetActiveChallengeByUserID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(challengeColumns).
		From("email_challenges").
		Where(sq.Eq{"user_id": userID, "used_at": nil, "revoked_at": nil}).
		OrderBy("created_at DESC").
		Limit(1).
		QueryRowContext(ctx)

	return scanChallenge(row)
}

// IncrementOTPAttempts bumps the attempt counter and returns the new
// value in one statement, so concurrent submissions cannot race past the
// lockout ceiling.
func (s *Storage) IncrementOTPAttempts(ctx context.Context, id string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IncrementOTPAttempts")
	defer span.End()

	var attempts int
	err := s.db.Statement(ctx).
		Update("email_challenges").
		Set("otp_attempts", sq.Expr("otp_attempts + 1")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING otp_attempts").
		QueryRowContext(ctx).
		Scan(&attempts)

	if err != nil {
		if isNoRows(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to increment otp attempts: %w", err)
	}

	return attempts, nil
}

func (s *Storage) MarkChallengeUsed(ctx context.Context, id string, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkChallengeUsed")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("email_challenges").
		Set("used_at", at).
		Where(sq.Eq{"id": id, "used_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark challenge used: %w", err)
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
