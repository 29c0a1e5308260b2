// Package service implements the core gateway forwarding logic.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"

	"tide-gateway-go/internal/client"
	"tide-gateway-go/internal/config"
)

// allowedUpstreamHosts restricts which hosts the gateway will forward to.
// The upstream origin comes from config, never from request input, and this
// allowlist keeps a misconfigured base_url from turning the gateway into an
// open proxy.
var allowedUpstreamHosts = map[string]bool{
	"api.iwls-sine.azure.cloud-nuage.dfo-mpo.gc.ca": true,
}

// UpstreamStatusError reports a non-success status from the CHS API.
// Body holds the upstream response text when it could be read.
type UpstreamStatusError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// GatewayService resolves upstream URLs and performs the single upstream
// call per inbound request.
type GatewayService struct {
	client  *client.TideClient
	logger  *slog.Logger
	baseURL *url.URL
}

// NewGatewayService creates a GatewayService.
func NewGatewayService(c *client.TideClient, cfg *config.Config, logger *slog.Logger) (*GatewayService, error) {
	u, err := url.Parse(cfg.Upstream.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse upstream base_url: %w", err)
	}

	if !allowedUpstreamHosts[u.Hostname()] {
		return nil, fmt.Errorf("upstream host %q is not in the allowlist", u.Hostname())
	}

	return &GatewayService{
		client:  c,
		logger:  logger.With("component", "gateway_service"),
		baseURL: u,
	}, nil
}

// NewGatewayServiceForTest creates a GatewayService without host allowlist
// validation. This is intended only for tests that use httptest servers on
// localhost.
func NewGatewayServiceForTest(c *client.TideClient, cfg *config.Config, logger *slog.Logger) (*GatewayService, error) {
	u, err := url.Parse(cfg.Upstream.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse upstream base_url: %w", err)
	}

	return &GatewayService{
		client:  c,
		logger:  logger.With("component", "gateway_service"),
		baseURL: u,
	}, nil
}

// Fetch issues one upstream GET for the resolved path (which may carry a
// query string) and returns the upstream JSON body.
//
// A non-success upstream status yields an *UpstreamStatusError carrying the
// status and best-effort body text. A success status whose body is not valid
// JSON is an error like any other transport failure; the raw text is never
// forwarded.
func (s *GatewayService) Fetch(ctx context.Context, path string) ([]byte, error) {
	upstreamURL := s.baseURL.String() + path

	s.logger.Debug("forwarding request", "path", path)

	resp, err := s.client.Get(ctx, upstreamURL)
	if err != nil {
		return nil, fmt.Errorf("forward to upstream: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e := &UpstreamStatusError{StatusCode: resp.StatusCode}
		// Body capture is best effort; on a read failure the caller
		// omits the details field.
		if readErr == nil {
			e.Body = string(body)
		}
		return nil, e
	}

	if readErr != nil {
		return nil, fmt.Errorf("read upstream body: %w", readErr)
	}

	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode upstream body: %w", err)
	}

	return body, nil
}
