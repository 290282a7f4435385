// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package maildomain guards invitations against disposable email
// domains. The blocklist is fetched from a configurable URL and verdicts
// are cached with a TTL so the hot path never blocks on the network.
package maildomain

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	verdictCacheSize = 4096
	fetchTimeout     = 10 * time.Second
)

type CheckerInterface interface {
	IsDisposable(ctx context.Context, email string) (bool, error)
}

var _ CheckerInterface = (*Checker)(nil)

type Checker struct {
	url    string
	ttl    time.Duration
	client *http.Client

	verdicts *expirable.LRU[string, bool]

	mu        sync.Mutex
	blocklist map[string]struct{}
	fetchedAt time.Time

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// NewChecker builds a checker. An empty url disables the guard, every
// domain is then considered acceptable.
func NewChecker(url string, ttl time.Duration, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Checker {
	return &Checker{
		url:      url,
		ttl:      ttl,
		client:   &http.Client{Timeout: fetchTimeout},
		verdicts: expirable.NewLRU[string, bool](verdictCacheSize, nil, ttl),
		tracer:   tracer,
		logger:   logger,
	}
}

// IsDisposable reports whether the email's domain is on the disposable
// blocklist. The guard fails open: if the blocklist cannot be fetched the
// domain is allowed and the failure is logged, since blocking signups on
// a third-party outage is worse than letting a throwaway address through.
func (c *Checker) IsDisposable(ctx context.Context, email string) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "maildomain.Checker.IsDisposable")
	defer span.End()

	if c.url == "" {
		return false, nil
	}

	domain := domainOf(email)
	if domain == "" {
		return false, fmt.Errorf("malformed email address")
	}

	if verdict, ok := c.verdicts.Get(domain); ok {
		return verdict, nil
	}

	blocklist, err := c.currentBlocklist(ctx)
	if err != nil {
		c.logger.Warnf("disposable domain list unavailable, allowing %q: %v", domain, err)
		return false, nil
	}

	_, blocked := blocklist[domain]
	c.verdicts.Add(domain, blocked)
	return blocked, nil
}

func (c *Checker) currentBlocklist(ctx context.Context) (map[string]struct{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.blocklist != nil && time.Since(c.fetchedAt) < c.ttl {
		return c.blocklist, nil
	}

	fetched, err := c.fetch(ctx)
	if err != nil {
		// Serve the stale list if we have one.
		if c.blocklist != nil {
			return c.blocklist, nil
		}
		return nil, err
	}

	c.blocklist = fetched
	c.fetchedAt = time.Now()
	return c.blocklist, nil
}

func (c *Checker) fetch(ctx context.Context) (map[string]struct{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching domain list", resp.StatusCode)
	}

	domains := make(map[string]struct{})
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		domains[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return domains, nil
}

func domainOf(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}
