// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/canonical/workspace-service/internal/logging"
)

var _ EmailInterface = (*LogSender)(nil)

// LogSender records outbound mail in the logs instead of delivering it.
// Secrets are never logged, only the destination and template.
type LogSender struct {
	logger logging.LoggerInterface
}

func NewLogSender(logger logging.LoggerInterface) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) SendInvite(ctx context.Context, invite *Invite) error {
	s.logger.Infof("invite email queued for %s (company %q, scope %s, role %s)", invite.Email, invite.CompanyName, invite.Scope, invite.Role)
	return nil
}

func (s *LogSender) SendVerification(ctx context.Context, verification *Verification) error {
	s.logger.Infof("verification email queued for %s", verification.Email)
	return nil
}
