// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	"github.com/canonical/workspace-service/internal/access"
	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/mail"
	"github.com/canonical/workspace-service/internal/maildomain"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/provisioning"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/pkg/authentication"
	"github.com/canonical/workspace-service/pkg/invites"
	"github.com/canonical/workspace-service/pkg/members"
	"github.com/canonical/workspace-service/pkg/metrics"
	"github.com/canonical/workspace-service/pkg/provisioner"
	"github.com/canonical/workspace-service/pkg/status"
	"github.com/canonical/workspace-service/pkg/verification"
	"github.com/canonical/workspace-service/pkg/webhooks"
	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	remote provisioning.ClientInterface,
	identities webhooks.IdentityInterface,
	emails mail.EmailInterface,
	checker maildomain.CheckerInterface,
	baseURL string,
	webhookToken string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	// The registration webhook authenticates with its own shared token,
	// not the gateway identity headers.
	webhooksService := webhooks.NewService(s, dbClient, identities, tracer, monitor, logger)
	webhooks.NewAPI(webhooksService, webhookToken, logger).RegisterEndpoints(router)

	resolver := access.NewResolver(s, tracer, monitor, logger)

	invitesService := invites.NewService(s, dbClient, resolver, checker, emails, baseURL, tracer, monitor, logger)
	verificationService := verification.NewService(s, dbClient, emails, baseURL, tracer, monitor, logger)
	membersService := members.NewService(s, dbClient, tracer, monitor, logger)
	provisionerService := provisioner.NewService(s, dbClient, remote, tracer, monitor, logger)

	// Everything below the gateway identity check shares the lazy
	// per-request transaction.
	apiRouter := chi.NewMux()
	apiRouter.Use(
		authentication.NewMiddleware(tracer, monitor, logger).Authenticate(),
		db.TransactionMiddleware(dbClient, logger),
	)

	invites.NewAPI(invitesService, resolver, tracer, monitor, logger).RegisterEndpoints(apiRouter)
	verification.NewAPI(verificationService, tracer, monitor, logger).RegisterEndpoints(apiRouter)
	members.NewAPI(membersService, resolver, tracer, monitor, logger).RegisterEndpoints(apiRouter)
	provisioner.NewAPI(provisionerService, resolver, tracer, monitor, logger).RegisterEndpoints(apiRouter)

	router.Mount("/", apiRouter)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
