package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eks-go-app/api/models"
	"eks-go-app/internal/buildinfo"
	"eks-go-app/internal/config"

	"github.com/gin-gonic/gin"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	start := time.Now()
	HealthCheck("staging")(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp models.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if resp.Status != "healthy" || resp.Environment != "staging" || resp.Version != buildinfo.Version {
		t.Fatalf("unexpected response: %+v", resp)
	}
	ts, err := time.Parse(time.RFC3339Nano, resp.Timestamp)
	if err != nil {
		t.Fatalf("timestamp not RFC3339: %v", err)
	}
	if ts.Before(start) {
		t.Fatalf("timestamp %s earlier than start %s", ts, start)
	}
}

func TestHealthCheckTimestampPerCall(t *testing.T) {
	gin.SetMode(gin.TestMode)
	calls := []time.Time{
		time.Date(2025, 1, 1, 0, 0, 0, 250000000, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 750000000, time.UTC),
	}
	i := 0
	now = func() time.Time { ts := calls[i]; i++; return ts }
	defer func() { now = time.Now }()

	handler := HealthCheck("development")
	var got []string
	for range calls {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		handler(c)

		var resp models.HealthResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode err: %v", err)
		}
		got = append(got, resp.Timestamp)
	}
	if got[0] != "2025-01-01T00:00:00.25Z" || got[1] != "2025-01-01T00:00:00.75Z" {
		t.Fatalf("timestamps not taken per call: %v", got)
	}
}

func TestHealthTimestampNotBeforeStart(t *testing.T) {
	start := time.Now()
	r := newTestRouter(config.Config{})

	w := serve(r, http.MethodGet, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp models.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, resp.Timestamp)
	if err != nil {
		t.Fatalf("timestamp not RFC3339: %v", err)
	}
	if ts.Before(start) {
		t.Fatalf("timestamp %s is earlier than start %s", resp.Timestamp, start.UTC().Format(time.RFC3339Nano))
	}
}
