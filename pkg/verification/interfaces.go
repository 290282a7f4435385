// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package verification

import (
	"context"
	"time"

	"github.com/canonical/workspace-service/internal/types"
)

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	SetUserEmailVerified(ctx context.Context, id string) error

	CreateEmailChallenge(ctx context.Context, c *types.EmailChallenge) (*types.EmailChallenge, error)
	RevokeActiveChallenges(ctx context.Context, userID string, at time.Time) error
	GetChallengeByID(ctx context.Context, id string) (*types.EmailChallenge, error)
	GetActiveChallengeByUserID(ctx context.Context, userID string) (*types.EmailChallenge, error)
	IncrementOTPAttempts(ctx context.Context, id string) (int, error)
	MarkChallengeUsed(ctx context.Context, id string, at time.Time) error
}

type ServiceInterface interface {
	IssueChallenge(ctx context.Context, userID string) (*types.EmailChallenge, error)
	VerifyMagic(ctx context.Context, challengeID, token string) error
	VerifyOTP(ctx context.Context, userID, code string) error
}
