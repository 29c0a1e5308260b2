package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"tide-gateway-go/internal/model"
	"tide-gateway-go/internal/service"
)

// TideHandler relays tide-data requests to the upstream CHS IWLS API.
type TideHandler struct {
	service *service.GatewayService
	logger  *slog.Logger
}

// NewTideHandler creates a TideHandler.
func NewTideHandler(svc *service.GatewayService, logger *slog.Logger) *TideHandler {
	return &TideHandler{
		service: svc,
		logger:  logger.With("component", "tide_handler"),
	}
}

// HandlePath serves GET /proxy/*: the wildcard segments become the upstream
// path and any query string is forwarded verbatim.
func (h *TideHandler) HandlePath(c echo.Context) error {
	path := "/" + c.Param("*")
	if q := c.Request().URL.RawQuery; q != "" {
		path += "?" + q
	}
	return h.relay(c, path)
}

// HandleEndpoint serves GET /proxy?endpoint=<path>: the endpoint parameter
// value is a literal upstream path, e.g. /stations/123/data.
func (h *TideHandler) HandleEndpoint(c echo.Context) error {
	endpoint := c.QueryParam("endpoint")
	if endpoint == "" {
		return c.JSON(http.StatusBadRequest, model.ErrorEnvelope{
			Error: "Endpoint parameter is required",
		})
	}
	return h.relay(c, endpoint)
}

// relay is the single forwarding path shared by both route variants.
func (h *TideHandler) relay(c echo.Context, path string) error {
	body, err := h.service.Fetch(c.Request().Context(), path)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSONBlob(http.StatusOK, body)
}

func (h *TideHandler) mapError(c echo.Context, err error) error {
	h.logger.Error("gateway error",
		"err", err,
		"path", c.Request().URL.Path,
	)

	var statusErr *service.UpstreamStatusError
	if errors.As(err, &statusErr) {
		return c.JSON(statusErr.StatusCode, model.ErrorEnvelope{
			Error:   fmt.Sprintf("CHS API error: %d", statusErr.StatusCode),
			Details: statusErr.Body,
		})
	}

	return c.JSON(http.StatusInternalServerError, model.ErrorEnvelope{
		Error:   "Failed to fetch tide data",
		Details: err.Error(),
	})
}
