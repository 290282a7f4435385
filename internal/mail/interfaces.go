// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package mail is the outbound email boundary. Delivery is pluggable;
// the default implementation only logs, real transports are wired in
// deployment-specific builds.
package mail

import "context"

type Invite struct {
	Email       string
	CompanyName string
	Scope       string
	Role        string
	AcceptURL   string
}

type Verification struct {
	Email    string
	MagicURL string
	OTP      string
}

type EmailInterface interface {
	SendInvite(ctx context.Context, invite *Invite) error
	SendVerification(ctx context.Context, verification *Verification) error
}
