// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package members

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/workspace-service/internal/access"
	"github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
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
	mux.Get("/api/v0/companies/{companyID}/members", a.list)
	mux.Patch("/api/v0/companies/{companyID}/members/{userID}", a.updateRole)
	mux.Delete("/api/v0/companies/{companyID}/members/{userID}", a.remove)
	mux.Post("/api/v0/companies/{companyID}/transfer-ownership", a.transferOwnership)
	mux.Put("/api/v0/workspaces/{workspaceID}/members/{userID}", a.assignWorkspaceRole)
	mux.Delete("/api/v0/workspaces/{workspaceID}/members/{userID}", a.removeWorkspaceMember)
}

func (a *API) companyAuthz(r *http.Request) (*access.AuthorizedContext, error) {
	principal, ok := authentication.PrincipalFrom(r.Context())
	if !ok {
		return nil, errUnauthenticated
	}
	return a.resolver.ResolveCompanyAccess(r.Context(), principal.UserID, chi.URLParam(r, "companyID"))
}

func (a *API) workspaceAuthz(r *http.Request) (*access.AuthorizedContext, error) {
	principal, ok := authentication.PrincipalFrom(r.Context())
	if !ok {
		return nil, errUnauthenticated
	}
	return a.resolver.ResolveWorkspaceAccess(r.Context(), principal.UserID, chi.URLParam(r, "workspaceID"))
}

var errUnauthenticated = errors.New("unauthenticated")

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "members.API.list")
	defer span.End()

	authz, err := a.companyAuthz(r.WithContext(ctx))
	if err != nil {
		a.writeError(w, err)
		return
	}

	memberships, err := a.service.ListMembers(ctx, authz)
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "", memberships)
}

func (a *API) updateRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "members.API.updateRole")
	defer span.End()

	var req struct {
		Role string `json:"role" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	authz, err := a.companyAuthz(r.WithContext(ctx))
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := a.service.UpdateCompanyRole(ctx, authz, chi.URLParam(r, "userID"), req.Role); err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "role updated", nil)
}

func (a *API) remove(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "members.API.remove")
	defer span.End()

	authz, err := a.companyAuthz(r.WithContext(ctx))
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := a.service.RemoveCompanyMember(ctx, authz, chi.URLParam(r, "userID")); err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "member removed", nil)
}

func (a *API) transferOwnership(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "members.API.transferOwnership")
	defer span.End()

	var req struct {
		TargetUserID string `json:"target_user_id" validate:"required"`
		Confirmation string `json:"confirmation" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	authz, err := a.companyAuthz(r.WithContext(ctx))
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := a.service.TransferOwnership(ctx, authz, req.TargetUserID, req.Confirmation); err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "ownership transferred", nil)
}

func (a *API) assignWorkspaceRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "members.API.assignWorkspaceRole")
	defer span.End()

	var req struct {
		Role string `json:"role" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	authz, err := a.workspaceAuthz(r.WithContext(ctx))
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := a.service.AssignWorkspaceRole(ctx, authz, chi.URLParam(r, "userID"), req.Role); err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "workspace role assigned", nil)
}

func (a *API) removeWorkspaceMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "members.API.removeWorkspaceMember")
	defer span.End()

	authz, err := a.workspaceAuthz(r.WithContext(ctx))
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := a.service.RemoveWorkspaceMember(ctx, authz, chi.URLParam(r, "userID")); err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "workspace member removed", nil)
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errUnauthenticated):
		types.WriteError(w, http.StatusUnauthorized, "unauthenticated")
	case errors.Is(err, access.ErrNotFound):
		types.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, ErrForbidden):
		types.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrLastOwner):
		types.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrNotMember):
		types.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidRole), errors.Is(err, ErrConfirmationMismatch),
		errors.Is(err, ErrTargetNotEligible):
		types.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		a.logger.Errorf("member request failed: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
