package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/campusadmin/internal/app/features/health"
	"github.com/dalemusser/campusadmin/internal/testutil"
	"go.uber.org/zap"
)

type response struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Backend  string `json:"backend"`
}

func serve(t *testing.T, h *health.Handler) (*httptest.ResponseRecorder, response) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}
	var resp response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return rec, resp
}

func TestServe_AllReachable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	backend := testutil.NewBackend(t)
	h := health.NewHandler(db.Client(), backend.Client(t), zap.NewNop())

	rec, resp := serve(t, h)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if resp.Status != "ok" || resp.Database != "connected" || resp.Backend != "reachable" {
		t.Errorf("response: %+v", resp)
	}
}

func TestServe_BackendDown(t *testing.T) {
	db := testutil.SetupTestDB(t)
	backend := testutil.NewBackend(t)
	client := backend.Client(t)
	backend.Server.Close()

	h := health.NewHandler(db.Client(), client, zap.NewNop())
	rec, resp := serve(t, h)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if resp.Status != "degraded" || resp.Backend != "unreachable" {
		t.Errorf("response: %+v", resp)
	}
}
