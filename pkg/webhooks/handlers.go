// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	chi "github.com/go-chi/chi/v5"
)

type API struct {
	service ServiceInterface
	token   string
	logger  logging.LoggerInterface
}

// NewAPI builds the webhook surface. When token is empty the endpoint
// accepts unauthenticated deliveries, which is only suitable for tests.
func NewAPI(service ServiceInterface, token string, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		token:   token,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/webhooks/registration", a.registration)
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	if a.token != "" {
		presented := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(presented), []byte(a.token)) != 1 {
			types.WriteError(w, http.StatusUnauthorized, "invalid webhook token")
			return
		}
	}

	var event RegistrationEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.service.HandleRegistration(r.Context(), event.ID, event.Traits.Email); err != nil {
		a.logger.Errorf("registration webhook failed: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	types.WriteJSON(w, http.StatusOK, "registration processed", nil)
}
