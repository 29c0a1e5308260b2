package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"tide-gateway-go/internal/client"
	"tide-gateway-go/internal/config"
	"tide-gateway-go/internal/middleware"
	"tide-gateway-go/internal/service"
)

func TestRegisterRoutes_Wiring(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer upstream.Close()

	cfg := &config.Config{
		Upstream: config.UpstreamConfig{
			BaseURL:         upstream.URL,
			TimeoutSeconds:  10,
			IdleConnections: 10,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tc := client.NewTideClient(cfg, logger, nil)
	svc, err := service.NewGatewayServiceForTest(tc, cfg, logger)
	if err != nil {
		t.Fatalf("NewGatewayServiceForTest: %v", err)
	}

	tides := NewTideHandler(svc, logger)
	health := NewHealthHandler(cfg, "test")

	e := echo.New()
	e.Use(middleware.CORS())
	RegisterRoutes(e, tides, health)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"GET /healthz", http.MethodGet, "/healthz", http.StatusOK},
		{"GET /status", http.MethodGet, "/status", http.StatusOK},
		{"GET /proxy/stations", http.MethodGet, "/proxy/stations", http.StatusOK},
		{"GET /proxy with endpoint", http.MethodGet, "/proxy?endpoint=%2Fstations", http.StatusOK},
		{"GET /proxy without endpoint", http.MethodGet, "/proxy", http.StatusBadRequest},
		{"OPTIONS /proxy preflight", http.MethodOptions, "/proxy", http.StatusOK},
		{"OPTIONS /proxy/stations preflight", http.MethodOptions, "/proxy/stations/123/data", http.StatusOK},
		{"OPTIONS unknown path preflight", http.MethodOptions, "/nope", http.StatusOK},
		{"GET /unknown returns 404", http.MethodGet, "/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "*")
			}
			if tt.method == http.MethodOptions && rec.Body.Len() != 0 {
				t.Errorf("preflight body = %q, want empty", rec.Body.String())
			}
		})
	}
}
