// Package client provides the upstream HTTP client for the CHS IWLS API.
package client

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"tide-gateway-go/internal/config"
	"tide-gateway-go/internal/metrics"
	"tide-gateway-go/internal/model"
)

const userAgent = "tide-gateway-go/1.0"

// TideClient sends requests to the upstream CHS IWLS API.
type TideClient struct {
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// NewTideClient creates a TideClient with connection pooling and timeouts.
// The metrics parameter is optional; pass nil to disable upstream metrics recording.
func NewTideClient(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *TideClient {
	transport := &http.Transport{
		MaxIdleConns:        cfg.Upstream.IdleConnections,
		MaxIdleConnsPerHost: cfg.Upstream.IdleConnections,
		IdleConnTimeout:     90 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}

	return &TideClient{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second,
		},
		logger:  logger.With("component", "tide_client"),
		metrics: m,
	}
}

// Get issues a single GET against the upstream and returns the raw response.
// The caller is responsible for closing the response body. The provided
// context controls the lifetime of the upstream request: when the context is
// canceled (e.g. the browser disconnects), the upstream request is also
// canceled.
func (c *TideClient) Get(ctx context.Context, url string) (*model.UpstreamResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("upstream request", "path", req.URL.Path)

	start := time.Now()
	resp, err := c.httpClient.Do(req) //nolint:bodyclose // body ownership transfers to caller via UpstreamResponse
	duration := time.Since(start).Seconds()

	if err != nil {
		if c.metrics != nil {
			c.metrics.UpstreamDuration.Observe(duration)
		}
		return nil, fmt.Errorf("upstream request: %w", err)
	}

	if c.metrics != nil {
		c.metrics.UpstreamDuration.Observe(duration)
		c.metrics.UpstreamResponses.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	}

	return &model.UpstreamResponse{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
	}, nil
}
