// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package members

import "errors"

var (
	ErrForbidden = errors.New("forbidden")

	// ErrLastOwner guards the invariant that a company always has at
	// least one owner.
	ErrLastOwner = errors.New("a company must keep at least one owner")

	ErrInvalidRole = errors.New("invalid role")
	ErrNotMember   = errors.New("user is not a member")

	// ErrConfirmationMismatch means the transfer confirmation did not
	// repeat the company slug.
	ErrConfirmationMismatch = errors.New("confirmation does not match the company slug")

	// ErrTargetNotEligible means the transfer target is inactive or has
	// not verified their email.
	ErrTargetNotEligible = errors.New("target user is not eligible for ownership")
)
