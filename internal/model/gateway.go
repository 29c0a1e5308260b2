// Package model defines shared types for the gateway.
package model

import (
	"io"
)

// UpstreamResponse represents the raw response from the CHS IWLS API.
// Upstream headers are not relayed: the gateway re-emits the body as its own
// JSON response.
type UpstreamResponse struct {
	StatusCode int
	Body       io.ReadCloser
}

// ErrorEnvelope is the JSON body returned to the client on any failure.
// Details is omitted when no diagnostic text could be captured.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
