// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package webhooks bootstraps local records when the identity provider
// reports a completed signup.
package webhooks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/roles"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/google/uuid"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage    StorageInterface
	db         db.DBClientInterface
	identities IdentityInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// NewService builds the webhook service. identities may be nil, in
// which case the email from the webhook payload is used as-is.
func NewService(s StorageInterface, dbClient db.DBClientInterface, identities IdentityInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage:    s,
		db:         dbClient,
		identities: identities,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

// HandleRegistration creates the user row and a personal company owned
// by the new user. Replayed deliveries are acknowledged without change.
func (s *Service) HandleRegistration(ctx context.Context, identityID, email string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if identityID == "" || email == "" {
		return fmt.Errorf("identity id or email is empty")
	}

	if s.identities != nil {
		canonical, err := s.identities.GetIdentityEmail(ctx, identityID)
		if err != nil {
			return fmt.Errorf("failed to resolve identity %s: %w", identityID, err)
		}
		if canonical != email {
			s.logger.Warnf("webhook email for %s does not match identity provider, using canonical", identityID)
		}
		email = canonical
	}

	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		user, err := s.storage.CreateUser(ctx, identityID, email)
		if err != nil {
			return err
		}

		company, err := s.storage.CreateCompany(ctx, fmt.Sprintf("%s's company", email), personalSlug(email))
		if err != nil {
			return err
		}

		if _, err := s.storage.CreateCompanyMembership(ctx, company.ID, user.ID, roles.CompanyOwner); err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			// Webhook retries are expected, the first delivery won.
			s.logger.Debugf("registration for %s already processed", identityID)
			return nil
		}
		return fmt.Errorf("failed to handle registration: %w", err)
	}

	s.logger.Infof("provisioned personal company for user %s", identityID)
	return nil
}

func personalSlug(email string) string {
	local, _, _ := strings.Cut(email, "@")
	cleaned := make([]rune, 0, len(local))
	for _, r := range strings.ToLower(local) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			cleaned = append(cleaned, r)
		} else {
			cleaned = append(cleaned, '-')
		}
	}

	// Suffix keeps slugs unique across users sharing a local part.
	return fmt.Sprintf("%s-%s", string(cleaned), uuid.NewString()[:8])
}
