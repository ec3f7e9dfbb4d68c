package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler_Root(t *testing.T) {
	c, rec := newJSONContext(http.MethodGet, "/", "")

	if err := NewHealthHandler().Root(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp statusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "ok" || resp.Message != "POS Server is running" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestHealthDependenciesHandler_Readiness(t *testing.T) {
	cases := []struct {
		name   string
		ping   error
		code   int
		status string
	}{
		{name: "store up", code: http.StatusOK, status: "ok"},
		{name: "store down", ping: errors.New("connection refused"), code: http.StatusServiceUnavailable, status: "degraded"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHealthDependenciesHandler(pingerFunc(func(context.Context) error { return tc.ping }), "relational")
			c, rec := newJSONContext(http.MethodGet, "/health/ready", "")

			if err := h.Readiness(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var resp readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Status != tc.status {
				t.Fatalf("expected status %q, got %q", tc.status, resp.Status)
			}
			if _, ok := resp.Dependencies["relational"]; !ok {
				t.Fatalf("missing dependency entry: %+v", resp.Dependencies)
			}
		})
	}
}
