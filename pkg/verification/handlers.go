// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package verification

import (
	"encoding/json"
	"errors"
	"net/http"

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
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/verification", a.issue)
	mux.Post("/api/v0/verification/{challengeID}/magic", a.verifyMagic)
	mux.Post("/api/v0/verification/otp", a.verifyOTP)
}

func (a *API) issue(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "verification.API.issue")
	defer span.End()

	principal, ok := authentication.PrincipalFrom(ctx)
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	challenge, err := a.service.IssueChallenge(ctx, principal.UserID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	// The challenge id is needed to redeem the magic link. The secrets
	// themselves travel only by mail.
	types.WriteJSON(w, http.StatusCreated, "verification challenge issued", map[string]string{
		"challenge_id": challenge.ID,
	})
}

func (a *API) verifyMagic(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "verification.API.verifyMagic")
	defer span.End()

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

	if err := a.service.VerifyMagic(ctx, chi.URLParam(r, "challengeID"), req.Token); err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "email verified", nil)
}

func (a *API) verifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "verification.API.verifyOTP")
	defer span.End()

	principal, ok := authentication.PrincipalFrom(ctx)
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req struct {
		Code string `json:"code" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.service.VerifyOTP(ctx, principal.UserID, req.Code); err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, "email verified", nil)
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrAlreadyVerified):
		types.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrTooSoon):
		types.WriteError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, ErrLocked):
		types.WriteError(w, http.StatusLocked, err.Error())
	case errors.Is(err, ErrInvalid), errors.Is(err, ErrExpired):
		types.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		a.logger.Errorf("verification request failed: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
