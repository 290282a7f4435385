// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package provisioning is the client for the downstream provisioning
// API. It is a thin hardened wrapper: service auth, a fresh request id
// and optional actor attribution headers on every call, with bounded
// retry on transient failures.
package provisioning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/google/uuid"
)

const (
	defaultTimeout  = 30 * time.Second
	maxAttempts     = 4 // first try plus three retries
	baseBackoff     = 500 * time.Millisecond
	maxResponseSize = 1 << 20
)

// Actor carries caller identity forwarded to the downstream system for
// audit attribution. The zero value sends no actor headers.
type Actor struct {
	ID        string
	Email     string
	Role      string
	CompanyID string
}

type Config struct {
	BaseURL      string
	ServiceToken string

	// Backoff overrides the retry base delay, tests set it low.
	Backoff time.Duration
}

type Client struct {
	baseURL      string
	serviceToken string
	backoff      time.Duration
	client       *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	backoff := cfg.Backoff
	if backoff == 0 {
		backoff = baseBackoff
	}

	return &Client{
		baseURL:      cfg.BaseURL,
		serviceToken: cfg.ServiceToken,
		backoff:      backoff,
		client:       &http.Client{Timeout: defaultTimeout},
		tracer:       tracer,
		monitor:      monitor,
		logger:       logger,
	}
}

type requestConfig struct {
	method string
	path   string
	actor  *Actor
	body   interface{}
}

// do executes one API call. 5xx responses and network errors are retried
// with exponential backoff until the attempt budget runs out; 4xx fails
// immediately since a client error is not transient. The last error is
// surfaced verbatim.
func (c *Client) do(ctx context.Context, cfg requestConfig, result interface{}) error {
	var bodyBytes []byte
	if cfg.body != nil {
		var err error
		bodyBytes, err = json.Marshal(cfg.body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	var lastErr error
	backoff := c.backoff

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			if err := sleepContext(ctx, backoff); err != nil {
				return lastErr
			}
			backoff *= 2
		}

		respBody, status, err := c.doOnce(ctx, cfg, bodyBytes)
		if err != nil {
			// Network-level failure, retry within budget.
			lastErr = err
			continue
		}

		if status >= 500 {
			lastErr = newAPIError(status, respBody)
			continue
		}

		if status >= 400 {
			return newAPIError(status, respBody)
		}

		if result != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, result); err != nil {
				return fmt.Errorf("failed to unmarshal response: %w", err)
			}
		}
		return nil
	}

	return lastErr
}

func (c *Client) doOnce(ctx context.Context, cfg requestConfig, body []byte) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, cfg.method, c.baseURL+cfg.path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.serviceToken)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if a := cfg.actor; a != nil && a.ID != "" {
		req.Header.Set("X-Actor-Id", a.ID)
		req.Header.Set("X-Actor-Email", a.Email)
		req.Header.Set("X-Actor-Role", a.Role)
		req.Header.Set("X-Actor-Company", a.CompanyID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	return respBody, resp.StatusCode, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type remoteCompany struct {
	ID         string `json:"id"`
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
}

type remoteWorkspace struct {
	ID         string `json:"id"`
	ExternalID string `json:"external_id"`
	CompanyID  string `json:"company_id"`
	Region     string `json:"region"`
	Status     string `json:"status"`
}

type remoteAPIKey struct {
	ID string `json:"id"`
}

// CreateCompany registers the company downstream and returns its remote id.
func (c *Client) CreateCompany(ctx context.Context, actor *Actor, externalID, name string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "provisioning.Client.CreateCompany")
	defer span.End()

	var created remoteCompany
	err := c.do(ctx, requestConfig{
		method: http.MethodPost,
		path:   "/companies",
		actor:  actor,
		body: map[string]string{
			"external_id": externalID,
			"name":        name,
		},
	}, &created)
	if err != nil {
		return "", err
	}

	return created.ID, nil
}

// GetCompanyByExternalID looks up a company downstream by the local id
// it was registered with. Returns ErrRemoteNotFound when absent.
func (c *Client) GetCompanyByExternalID(ctx context.Context, externalID string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "provisioning.Client.GetCompanyByExternalID")
	defer span.End()

	var found remoteCompany
	err := c.do(ctx, requestConfig{
		method: http.MethodGet,
		path:   "/companies/" + url.PathEscape(externalID),
	}, &found)
	if err != nil {
		return "", err
	}

	return found.ID, nil
}

func (c *Client) CreateWorkspace(ctx context.Context, actor *Actor, externalID, remoteCompanyID, name, region string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "provisioning.Client.CreateWorkspace")
	defer span.End()

	var created remoteWorkspace
	err := c.do(ctx, requestConfig{
		method: http.MethodPost,
		path:   "/workspaces",
		actor:  actor,
		body: map[string]string{
			"external_id": externalID,
			"company_id":  remoteCompanyID,
			"name":        name,
			"region":      region,
		},
	}, &created)
	if err != nil {
		return "", err
	}

	return created.ID, nil
}

func (c *Client) GetWorkspaceByExternalID(ctx context.Context, externalID string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "provisioning.Client.GetWorkspaceByExternalID")
	defer span.End()

	var found remoteWorkspace
	err := c.do(ctx, requestConfig{
		method: http.MethodGet,
		path:   "/workspaces/" + url.PathEscape(externalID),
	}, &found)
	if err != nil {
		return "", err
	}

	return found.ID, nil
}

func (c *Client) CreateAPIKey(ctx context.Context, actor *Actor, remoteWorkspaceID, name, secretHash string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "provisioning.Client.CreateAPIKey")
	defer span.End()

	var created remoteAPIKey
	err := c.do(ctx, requestConfig{
		method: http.MethodPost,
		path:   "/api-keys",
		actor:  actor,
		body: map[string]string{
			"workspace_id": remoteWorkspaceID,
			"name":         name,
			"secret_hash":  secretHash,
		},
	}, &created)
	if err != nil {
		return "", err
	}

	return created.ID, nil
}

func (c *Client) RevokeAPIKey(ctx context.Context, actor *Actor, remoteKeyID string) error {
	ctx, span := c.tracer.Start(ctx, "provisioning.Client.RevokeAPIKey")
	defer span.End()

	return c.do(ctx, requestConfig{
		method: http.MethodPost,
		path:   "/api-keys/" + url.PathEscape(remoteKeyID) + "/revoke",
		actor:  actor,
	}, nil)
}

// ArchiveWorkspace archives the workspace downstream, which also revokes
// its keys remotely.
func (c *Client) ArchiveWorkspace(ctx context.Context, actor *Actor, remoteWorkspaceID string) error {
	ctx, span := c.tracer.Start(ctx, "provisioning.Client.ArchiveWorkspace")
	defer span.End()

	return c.do(ctx, requestConfig{
		method: http.MethodPost,
		path:   "/workspaces/" + url.PathEscape(remoteWorkspaceID) + "/archive",
		actor:  actor,
	}, nil)
}

func (c *Client) RestoreWorkspace(ctx context.Context, actor *Actor, remoteWorkspaceID string) error {
	ctx, span := c.tracer.Start(ctx, "provisioning.Client.RestoreWorkspace")
	defer span.End()

	return c.do(ctx, requestConfig{
		method: http.MethodPost,
		path:   "/workspaces/" + url.PathEscape(remoteWorkspaceID) + "/restore",
		actor:  actor,
	}, nil)
}
