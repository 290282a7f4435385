// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// RegistrationEvent is the payload the identity provider posts after a
// new signup completes.
type RegistrationEvent struct {
	ID     string `json:"id"`
	Traits Traits `json:"traits"`
}

type Traits struct {
	Email string `json:"email"`
}
