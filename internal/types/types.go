// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Company struct {
	ID           string     `db:"id"`
	Name         string     `db:"name"`
	Slug         string     `db:"slug"`
	APICompanyID *string    `db:"api_company_id"`
	CreatedAt    time.Time  `db:"created_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

// Provisioned reports whether the company has been linked to its
// counterpart in the downstream provisioning system.
func (c *Company) Provisioned() bool {
	return c.APICompanyID != nil && *c.APICompanyID != ""
}

const (
	WorkspaceStatusActive   = "active"
	WorkspaceStatusArchived = "archived"
)

type Workspace struct {
	ID             string     `db:"id"`
	CompanyID      string     `db:"company_id"`
	Name           string     `db:"name"`
	Region         string     `db:"region"`
	Status         string     `db:"status"`
	APIWorkspaceID *string    `db:"api_workspace_id"`
	CreatedAt      time.Time  `db:"created_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

func (w *Workspace) Provisioned() bool {
	return w.APIWorkspaceID != nil && *w.APIWorkspaceID != ""
}

type User struct {
	ID            string    `db:"id"`
	Email         string    `db:"email"`
	EmailVerified bool      `db:"email_verified"`
	Active        bool      `db:"active"`
	CreatedAt     time.Time `db:"created_at"`
}

type CompanyMembership struct {
	ID        string    `db:"id"`
	CompanyID string    `db:"company_id"`
	UserID    string    `db:"user_id"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

type WorkspaceMembership struct {
	ID          string    `db:"id"`
	WorkspaceID string    `db:"workspace_id"`
	UserID      string    `db:"user_id"`
	Role        string    `db:"role"`
	CreatedAt   time.Time `db:"created_at"`
}

const (
	InviteScopeCompany   = "company"
	InviteScopeWorkspace = "workspace"

	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusRevoked  = "revoked"
)

type Invitation struct {
	ID              string     `db:"id"`
	Email           string     `db:"email"`
	EmailNormalized string     `db:"email_normalized"`
	Scope           string     `db:"scope"`
	CompanyID       string     `db:"company_id"`
	WorkspaceID     *string    `db:"workspace_id"`
	CompanyRole     *string    `db:"company_role"`
	WorkspaceRole   *string    `db:"workspace_role"`
	TokenHash       string     `db:"token_hash"`
	PendingKey      *string    `db:"pending_key"`
	Status          string     `db:"status"`
	InvitedBy       string     `db:"invited_by"`
	ExpiresAt       time.Time  `db:"expires_at"`
	RevokedAt       *time.Time `db:"revoked_at"`
	RevokedBy       *string    `db:"revoked_by"`
	AcceptedAt      *time.Time `db:"accepted_at"`
	AcceptedBy      *string    `db:"accepted_by_user_id"`
	CreatedAt       time.Time  `db:"created_at"`
}

type EmailChallenge struct {
	ID             string     `db:"id"`
	UserID         string     `db:"user_id"`
	Email          string     `db:"email"`
	MagicTokenHash string     `db:"magic_token_hash"`
	OTPHash        string     `db:"otp_hash"`
	MagicExpiresAt time.Time  `db:"magic_expires_at"`
	OTPExpiresAt   time.Time  `db:"otp_expires_at"`
	OTPAttempts    int        `db:"otp_attempts"`
	UsedAt         *time.Time `db:"used_at"`
	RevokedAt      *time.Time `db:"revoked_at"`
	LastSentAt     time.Time  `db:"last_sent_at"`
	CreatedAt      time.Time  `db:"created_at"`
}

type APIKey struct {
	ID          string     `db:"id"`
	WorkspaceID string     `db:"workspace_id"`
	Name        string     `db:"name"`
	SecretHash  string     `db:"secret_hash"`
	APIKeyID    *string    `db:"api_key_id"`
	CreatedBy   string     `db:"created_by"`
	CreatedAt   time.Time  `db:"created_at"`
	RevokedAt   *time.Time `db:"revoked_at"`
}

type AuditRecord struct {
	ID        string    `db:"id"`
	CompanyID string    `db:"company_id"`
	ActorID   string    `db:"actor_id"`
	Action    string    `db:"action"`
	Detail    string    `db:"detail"`
	CreatedAt time.Time `db:"created_at"`
}
