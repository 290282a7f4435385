// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

import "errors"

var (
	ErrForbidden = errors.New("forbidden")

	// ErrNotActive means the workspace is archived and cannot take new
	// API keys or writes.
	ErrNotActive = errors.New("workspace is not active")

	ErrAlreadyActive   = errors.New("workspace is already active")
	ErrAlreadyArchived = errors.New("workspace is already archived")
)
