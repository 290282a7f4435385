// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioner

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
	mux.Post("/api/v0/workspaces/{workspaceID}/archive", a.archive)
	mux.Post("/api/v0/workspaces/{workspaceID}/restore", a.restore)
	mux.Post("/api/v0/workspaces/{workspaceID}/api-keys", a.createAPIKey)
	mux.Delete("/api/v0/workspaces/{workspaceID}/api-keys/{keyID}", a.revokeAPIKey)
	mux.Post("/api/v0/workspaces/{workspaceID}/reconcile", a.reconcileWorkspace)
	mux.Post("/api/v0/companies/{companyID}/reconcile", a.reconcileCompany)
}

func (a *API) workspaceAuthz(r *http.Request) (*access.AuthorizedContext, error) {
	principal, ok := authentication.PrincipalFrom(r.Context())
	if !ok {
		return nil, errUnauthenticated
	}
	return a.resolver.ResolveWorkspaceAccess(r.Context(), principal.UserID, chi.URLParam(r, "workspaceID"))
}

var errUnauthenticated = errors.New("unauthenticated")

func (a *API) archive(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "provisioner.API.archive")
	defer span.End()

	authz, err := a.workspaceAuthz(r.WithContext(ctx))
	if err != nil {
		a.writeError(w, err)
		return
	}

	result, err := a.service.ArchiveWorkspace(ctx, authz)
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "workspace archived", result)
}

func (a *API) restore(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "provisioner.API.restore")
	defer span.End()

	authz, err := a.workspaceAuthz(r.WithContext(ctx))
	if err != nil {
		a.writeError(w, err)
		return
	}

	result, err := a.service.RestoreWorkspace(ctx, authz)
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "workspace restored", result)
}

func (a *API) createAPIKey(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "provisioner.API.createAPIKey")
	defer span.End()

	var req struct {
		Name string `json:"name" validate:"required,max=120"`
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

	key, secret, err := a.service.CreateAPIKey(ctx, authz, req.Name)
	if err != nil {
		a.writeError(w, err)
		return
	}

	// The plaintext secret is shown exactly once, on creation.
	types.WriteJSON(w, http.StatusCreated, "api key created", map[string]interface{}{
		"id":     key.ID,
		"name":   key.Name,
		"secret": secret,
	})
}

func (a *API) revokeAPIKey(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "provisioner.API.revokeAPIKey")
	defer span.End()

	authz, err := a.workspaceAuthz(r.WithContext(ctx))
	if err != nil {
		a.writeError(w, err)
		return
	}

	result, err := a.service.RevokeAPIKey(ctx, authz, chi.URLParam(r, "keyID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "api key revoked", result)
}

func (a *API) reconcileWorkspace(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "provisioner.API.reconcileWorkspace")
	defer span.End()

	authz, err := a.workspaceAuthz(r.WithContext(ctx))
	if err != nil {
		a.writeError(w, err)
		return
	}
	if !authz.Workspace.Admin {
		types.WriteError(w, http.StatusForbidden, "forbidden")
		return
	}

	remoteID, err := a.service.ReconcileWorkspace(ctx, authz.WorkspaceID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "workspace reconciled", map[string]string{"remote_id": remoteID})
}

func (a *API) reconcileCompany(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "provisioner.API.reconcileCompany")
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
	if !authz.Company.CanAdmin {
		types.WriteError(w, http.StatusForbidden, "forbidden")
		return
	}

	remoteID, err := a.service.ReconcileCompany(ctx, authz.CompanyID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "company reconciled", map[string]string{"remote_id": remoteID})
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errUnauthenticated):
		types.WriteError(w, http.StatusUnauthorized, "unauthenticated")
	case errors.Is(err, access.ErrNotFound):
		types.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, ErrForbidden):
		types.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrAlreadyArchived), errors.Is(err, ErrAlreadyActive):
		types.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrNotActive):
		types.WriteError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		a.logger.Errorf("provisioning request failed: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
