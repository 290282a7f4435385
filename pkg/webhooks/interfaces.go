// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
)

type StorageInterface interface {
	CreateUser(ctx context.Context, id, email string) (*types.User, error)
	CreateCompany(ctx context.Context, name, slug string) (*types.Company, error)
	CreateCompanyMembership(ctx context.Context, companyID, userID, role string) (string, error)
}

// IdentityInterface resolves identity traits from the identity
// provider's admin API.
type IdentityInterface interface {
	GetIdentityEmail(ctx context.Context, id string) (string, error)
}

type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identityID, email string) error
}
