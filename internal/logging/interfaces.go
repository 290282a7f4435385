// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface is a dedicated channel for security-relevant
// events, kept separate so that audit pipelines can filter on it.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AuthzDenied(userID, resource, detail string)
	InviteAccepted(inviteID, userID string)
	InviteRevoked(inviteID, actorID string)
	OwnershipTransferred(companyID, fromUserID, toUserID string)
	EmailVerified(userID string)
	OTPLockout(challengeID, userID string)
}
