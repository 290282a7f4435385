// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/canonical/workspace-service/internal/access"
	"github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	domain "github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/authentication"
	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type API struct {
	service  ServiceInterface
	resolver access.ResolverInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, resolver access.ResolverInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		resolver: resolver,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/companies/{companyID}/invites", a.create)
	mux.Get("/api/v0/companies/{companyID}/invites", a.list)
	mux.Delete("/api/v0/companies/{companyID}/invites/{inviteID}", a.revoke)
	mux.Get("/api/v0/invites/validate", a.validateToken)
	mux.Post("/api/v0/invites/accept", a.accept)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.create")
	defer span.End()

	principal, ok := authentication.PrincipalFrom(ctx)
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	req := new(CreateInviteRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	authz, err := a.resolver.ResolveCompanyAccess(ctx, principal.UserID, chi.URLParam(r, "companyID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	invite, err := a.service.CreateInvite(ctx, authz, req)
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusCreated, "invite created", inviteView{
		ID:            invite.ID,
		Email:         invite.Email,
		Scope:         invite.Scope,
		WorkspaceID:   invite.WorkspaceID,
		CompanyRole:   invite.CompanyRole,
		WorkspaceRole: invite.WorkspaceRole,
		InvitedBy:     invite.InvitedBy,
		ExpiresAt:     invite.ExpiresAt,
		CreatedAt:     invite.CreatedAt,
	})
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.list")
	defer span.End()

	principal, ok := authentication.PrincipalFrom(ctx)
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	authz, err := a.resolver.ResolveCompanyAccess(ctx, principal.UserID, chi.URLParam(r, "companyID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	invites, err := a.service.ListPending(ctx, authz)
	if err != nil {
		a.writeError(w, err)
		return
	}

	// Token fingerprints stay out of list responses.
	views := make([]inviteView, 0, len(invites))
	for _, invite := range invites {
		views = append(views, inviteView{
			ID:            invite.ID,
			Email:         invite.Email,
			Scope:         invite.Scope,
			WorkspaceID:   invite.WorkspaceID,
			CompanyRole:   invite.CompanyRole,
			WorkspaceRole: invite.WorkspaceRole,
			InvitedBy:     invite.InvitedBy,
			ExpiresAt:     invite.ExpiresAt,
			CreatedAt:     invite.CreatedAt,
		})
	}

	types.WriteJSON(w, http.StatusOK, "", views)
}

type inviteView struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	Scope         string     `json:"scope"`
	WorkspaceID   *string    `json:"workspace_id,omitempty"`
	CompanyRole   *string    `json:"company_role,omitempty"`
	WorkspaceRole *string    `json:"workspace_role,omitempty"`
	InvitedBy     string     `json:"invited_by"`
	ExpiresAt     time.Time  `json:"expires_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (a *API) revoke(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.revoke")
	defer span.End()

	principal, ok := authentication.PrincipalFrom(ctx)
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	authz, err := a.resolver.ResolveCompanyAccess(ctx, principal.UserID, chi.URLParam(r, "companyID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := a.service.RevokeInvite(ctx, authz, chi.URLParam(r, "inviteID")); err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "invite revoked", nil)
}

func (a *API) validateToken(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.validateToken")
	defer span.End()

	token := r.URL.Query().Get("token")
	if token == "" {
		types.WriteError(w, http.StatusBadRequest, "token is required")
		return
	}

	invite, err := a.service.ValidateToken(ctx, token)
	if err != nil {
		a.writeError(w, err)
		return
	}

	// Only the shape of the invite is returned, never the token or who
	// else was invited.
	types.WriteJSON(w, http.StatusOK, "", map[string]interface{}{
		"scope":      invite.Scope,
		"company_id": invite.CompanyID,
		"expires_at": invite.ExpiresAt,
	})
}

func (a *API) accept(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.accept")
	defer span.End()

	principal, ok := authentication.PrincipalFrom(ctx)
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}
	// The invite is bound to an email address, so the caller must have
	// proven control of theirs before any grant is applied.
	if !principal.EmailVerified {
		types.WriteError(w, http.StatusForbidden, "email not verified")
		return
	}

	var req struct {
		Token string `json:"token" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user := &domain.User{ID: principal.UserID, Email: principal.Email}
	invite, err := a.service.AcceptInvite(ctx, req.Token, user)
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "invite accepted", map[string]string{
		"company_id": invite.CompanyID,
	})
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, access.ErrNotFound):
		types.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrEmailMismatch):
		types.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrDuplicateInvite), errors.Is(err, ErrNotPending):
		types.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrRevoked), errors.Is(err, ErrAlreadyUsed):
		// Revoked and spent invites are indistinguishable from outside, so
		// a caller learns nothing about what happened to the invite.
		types.WriteError(w, http.StatusBadRequest, "invite is no longer valid")
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrExpired),
		errors.Is(err, ErrDisposableDomain), errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrWorkspaceMismatch):
		types.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		a.logger.Errorf("invite request failed: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
