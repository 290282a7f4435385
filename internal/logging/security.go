// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system.startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system.shutdown"))
}

func (s *SecurityLogger) AuthzDenied(userID, resource, detail string) {
	s.l.Warn("authorization denied",
		zap.String("event", "authz.denied"),
		zap.String("user_id", userID),
		zap.String("resource", resource),
		zap.String("detail", detail),
	)
}

func (s *SecurityLogger) InviteAccepted(inviteID, userID string) {
	s.l.Info("invite accepted",
		zap.String("event", "invite.accepted"),
		zap.String("invite_id", inviteID),
		zap.String("user_id", userID),
	)
}

func (s *SecurityLogger) InviteRevoked(inviteID, actorID string) {
	s.l.Info("invite revoked",
		zap.String("event", "invite.revoked"),
		zap.String("invite_id", inviteID),
		zap.String("actor_id", actorID),
	)
}

func (s *SecurityLogger) OwnershipTransferred(companyID, fromUserID, toUserID string) {
	s.l.Info("company ownership transferred",
		zap.String("event", "company.ownership_transferred"),
		zap.String("company_id", companyID),
		zap.String("from_user_id", fromUserID),
		zap.String("to_user_id", toUserID),
	)
}

func (s *SecurityLogger) EmailVerified(userID string) {
	s.l.Info("email verified",
		zap.String("event", "email.verified"),
		zap.String("user_id", userID),
	)
}

func (s *SecurityLogger) OTPLockout(challengeID, userID string) {
	s.l.Warn("otp challenge locked",
		zap.String("event", "otp.lockout"),
		zap.String("challenge_id", challengeID),
		zap.String("user_id", userID),
	)
}
