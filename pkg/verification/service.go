// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package verification implements email ownership challenges. Each
// challenge carries two secrets for the same claim: a long magic-link
// token and a short one-time code with an attempt budget.
package verification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/mail"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tokens"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

const (
	magicTTL       = 15 * time.Minute
	otpTTL         = 10 * time.Minute
	maxOTPAttempts = 5
	resendCooldown = time.Minute
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	db      db.DBClientInterface
	emails  mail.EmailInterface
	baseURL string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(s StorageInterface, dbClient db.DBClientInterface, emails mail.EmailInterface, baseURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage: s,
		db:      dbClient,
		emails:  emails,
		baseURL: baseURL,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// IssueChallenge mints a fresh challenge for the user and revokes any
// outstanding one, so at most one challenge is live per user. Resends
// within the cooldown are rejected instead of minting new secrets.
func (s *Service) IssueChallenge(ctx context.Context, userID string) (*types.EmailChallenge, error) {
	ctx, span := s.tracer.Start(ctx, "verification.Service.IssueChallenge")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.EmailVerified {
		return nil, ErrAlreadyVerified
	}

	active, err := s.storage.GetActiveChallengeByUserID(ctx, userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	if active != nil && time.Since(active.LastSentAt) < resendCooldown {
		return nil, ErrTooSoon
	}

	magicToken, magicFingerprint, err := tokens.GenerateToken()
	if err != nil {
		return nil, err
	}
	otp, err := tokens.GenerateOTP()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	challenge := &types.EmailChallenge{
		UserID:         userID,
		Email:          user.Email,
		MagicTokenHash: magicFingerprint,
		OTPHash:        tokens.Fingerprint(otp),
		MagicExpiresAt: now.Add(magicTTL),
		OTPExpiresAt:   now.Add(otpTTL),
		LastSentAt:     now,
	}

	var created *types.EmailChallenge
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.RevokeActiveChallenges(ctx, userID, now); err != nil {
			return err
		}
		var err error
		created, err = s.storage.CreateEmailChallenge(ctx, challenge)
		return err
	})
	if err != nil {
		return nil, err
	}

	mailErr := s.emails.SendVerification(ctx, &mail.Verification{
		Email:    user.Email,
		// The challenge id scopes the token lookup, so guessing a token
		// also means guessing a live challenge id.
		MagicURL: fmt.Sprintf("%s/verify?cid=%s&token=%s", s.baseURL, created.ID, magicToken),
		OTP:      otp,
	})
	if mailErr != nil {
		s.logger.Warnf("failed to send verification email for user %s: %v", userID, mailErr)
	}

	return created, nil
}

// VerifyMagic consumes a magic-link token. A replay of an already used
// link for a user who is verified succeeds quietly, since clicking the
// same email link twice is not an attack.
func (s *Service) VerifyMagic(ctx context.Context, challengeID, token string) error {
	ctx, span := s.tracer.Start(ctx, "verification.Service.VerifyMagic")
	defer span.End()

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		challenge, err := s.storage.GetChallengeByID(ctx, challengeID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrInvalid
			}
			return err
		}

		if !tokens.FingerprintEqual(token, challenge.MagicTokenHash) {
			return ErrInvalid
		}

		if challenge.UsedAt != nil {
			user, err := s.storage.GetUserByID(ctx, challenge.UserID)
			if err != nil {
				return err
			}
			if user.EmailVerified {
				return nil
			}
			return ErrInvalid
		}
		if challenge.RevokedAt != nil {
			return ErrInvalid
		}
		if time.Now().After(challenge.MagicExpiresAt) {
			return ErrExpired
		}

		return s.consume(ctx, challenge)
	})
}

// VerifyOTP consumes a one-time code. The attempt counter is bumped
// atomically before the code is compared, so a correct guess after the
// budget is spent still fails.
func (s *Service) VerifyOTP(ctx context.Context, userID, code string) error {
	ctx, span := s.tracer.Start(ctx, "verification.Service.VerifyOTP")
	defer span.End()

	challenge, err := s.storage.GetActiveChallengeByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrInvalid
		}
		return err
	}

	if time.Now().After(challenge.OTPExpiresAt) {
		return ErrExpired
	}

	// The attempt is burned in its own committed transaction, detached
	// from the request scope. A wrong code fails the request, and that
	// failure must not roll the counter back with it, or the lockout
	// ceiling could never be reached.
	var attempts int
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		var err error
		attempts, err = s.storage.IncrementOTPAttempts(ctx, challenge.ID)
		return err
	})
	if err != nil {
		return err
	}
	if attempts > maxOTPAttempts {
		if attempts == maxOTPAttempts+1 {
			s.logger.Security().OTPLockout(challenge.ID, userID)
		}
		return ErrLocked
	}

	if !tokens.FingerprintEqual(code, challenge.OTPHash) {
		return ErrInvalid
	}

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		return s.consume(ctx, challenge)
	})
}

func (s *Service) consume(ctx context.Context, challenge *types.EmailChallenge) error {
	now := time.Now().UTC()
	if err := s.storage.MarkChallengeUsed(ctx, challenge.ID, now); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Another request consumed it first.
			return ErrInvalid
		}
		return err
	}
	if err := s.storage.SetUserEmailVerified(ctx, challenge.UserID); err != nil {
		return err
	}

	s.logger.Security().EmailVerified(challenge.UserID)
	return nil
}
