// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

// Principal is the authenticated caller as asserted by the fronting
// gateway. This service never sees credentials, only identity headers.
type Principal struct {
	UserID        string
	Email         string
	EmailVerified bool
}

type contextKey struct{}

var principalContextKey = contextKey{}

// WithPrincipal returns a new context carrying the principal.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// PrincipalFrom retrieves the principal from the context.
func PrincipalFrom(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(*Principal)
	return p, ok
}
