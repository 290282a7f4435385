// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package verification

import "errors"

var (
	// ErrInvalid covers unknown challenges, revoked challenges and wrong
	// secrets. Callers present it with one generic message so failures
	// are indistinguishable to a guessing client.
	ErrInvalid = errors.New("verification failed")

	ErrExpired = errors.New("verification challenge has expired")

	// ErrLocked means the challenge burned through its attempt budget. A
	// locked challenge rejects even the correct code.
	ErrLocked = errors.New("too many attempts, request a new code")

	// ErrTooSoon throttles resends.
	ErrTooSoon = errors.New("a verification email was sent recently, try again later")

	ErrAlreadyVerified = errors.New("email is already verified")
)
