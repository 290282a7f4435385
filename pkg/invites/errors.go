// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import "errors"

var (
	// ErrForbidden means the caller lacks the capability for the
	// operation.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidToken covers unknown tokens. Callers must present it with
	// the same generic message as the other token failures so a probing
	// client learns nothing.
	ErrInvalidToken = errors.New("invite is not valid")
	ErrRevoked      = errors.New("invite has been revoked")
	ErrAlreadyUsed  = errors.New("invite has already been used")
	ErrExpired      = errors.New("invite has expired")

	// ErrEmailMismatch means the accepting account's email does not match
	// the invited address.
	ErrEmailMismatch = errors.New("invite was issued for a different email address")

	// ErrDuplicateInvite means a pending invite already exists for the
	// same email and target.
	ErrDuplicateInvite = errors.New("a pending invite already exists for this email")

	ErrDisposableDomain  = errors.New("disposable email domains are not accepted")
	ErrInvalidRole       = errors.New("invalid role for invite scope")
	ErrWorkspaceMismatch = errors.New("workspace does not belong to this company")
	ErrNotPending        = errors.New("invite is not pending")
)
