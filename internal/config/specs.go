// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	AppBaseURL string `envconfig:"app_base_url" default:"http://localhost:8080"`

	ProvisioningAPIURL   string `envconfig:"provisioning_api_url" required:"true"`
	ProvisioningAPIToken string `envconfig:"provisioning_api_token" required:"true"`

	DisposableDomainsURL string        `envconfig:"disposable_domains_url"`
	DisposableDomainsTTL time.Duration `envconfig:"disposable_domains_ttl" default:"6h"`

	RegistrationWebhookToken string `envconfig:"registration_webhook_token"`
	KratosAdminURL           string `envconfig:"kratos_admin_url"`
}
