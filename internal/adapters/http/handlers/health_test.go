package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotesync/internal/mocks"
	"github.com/jsamuelsen/quotesync/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func probeRouter(t *testing.T, registry ports.HealthRegistry, info BuildInfo, gatherer prometheus.Gatherer) *gin.Engine {
	t.Helper()

	router := gin.New()
	NewHealthHandler(registry, info, gatherer).RegisterHealthRoutesOnEngine(router)

	return router
}

func probe(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	return w
}

func TestNewBuildInfo(t *testing.T) {
	bi := NewBuildInfo("0.4.0", "9f1c2e7", "2026-03-02T08:00:00Z")

	assert.Equal(t, BuildInfo{
		Version:   "0.4.0",
		Commit:    "9f1c2e7",
		BuildTime: "2026-03-02T08:00:00Z",
		GoVersion: runtime.Version(),
	}, bi)
}

func TestHealthHandler_Liveness_SkipsChecks(t *testing.T) {
	// No CheckAll expectation: liveness must not touch storage or the remote.
	router := probeRouter(t, mocks.NewMockHealthRegistry(t), BuildInfo{}, nil)

	w := probe(router, "/-/live")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp livenessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name   string
		checks map[string]*ports.CheckResult
		status ports.HealthStatus
		code   int
	}{
		{
			name: "storage and remote reachable",
			checks: map[string]*ports.CheckResult{
				"storage": {Status: ports.HealthStatusHealthy},
				"remote":  {Status: ports.HealthStatusHealthy},
			},
			status: ports.HealthStatusHealthy,
			code:   http.StatusOK,
		},
		{
			name: "remote circuit open",
			checks: map[string]*ports.CheckResult{
				"storage": {Status: ports.HealthStatusHealthy},
				"remote":  {Status: ports.HealthStatusUnhealthy, Message: "circuit breaker is open"},
			},
			status: ports.HealthStatusUnhealthy,
			code:   http.StatusServiceUnavailable,
		},
		{
			name:   "in-memory storage only",
			checks: map[string]*ports.CheckResult{},
			status: ports.HealthStatusHealthy,
			code:   http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(&ports.HealthResult{Status: tt.status, Checks: tt.checks})

			w := probe(probeRouter(t, registry, BuildInfo{}, nil), "/-/ready")

			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), string(tt.status))

			for _, c := range tt.checks {
				if c.Message != "" {
					assert.Contains(t, w.Body.String(), c.Message)
				}
			}
		})
	}
}

func TestHealthHandler_BuildInfo(t *testing.T) {
	info := BuildInfo{Version: "0.4.0", Commit: "9f1c2e7", BuildTime: "2026-03-02T08:00:00Z", GoVersion: "go1.25.7"}

	w := probe(probeRouter(t, mocks.NewMockHealthRegistry(t), info, nil), "/-/build")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, info, resp)
}

func TestMetricsHandler(t *testing.T) {
	t.Run("default gatherer", func(t *testing.T) {
		w := httptest.NewRecorder()
		MetricsHandler(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	})

	t.Run("runtime registry", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		runs := prometheus.NewCounter(prometheus.CounterOpts{Name: "quotesync_test_runs_total", Help: "test"})
		reg.MustRegister(runs)
		runs.Inc()

		w := probe(probeRouter(t, mocks.NewMockHealthRegistry(t), BuildInfo{}, reg), "/-/metrics")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "quotesync_test_runs_total 1")
		assert.NotContains(t, w.Body.String(), "go_goroutines", "only the runtime registry is exposed")
	})
}

func TestHealthHandler_RegisterHealthRoutes(t *testing.T) {
	router := gin.New()
	NewHealthHandler(mocks.NewMockHealthRegistry(t), BuildInfo{}, nil).RegisterHealthRoutes(router.Group("/-"))

	registered := make(map[string]bool)
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{"GET /-/live", "GET /-/ready", "GET /-/build", "GET /-/metrics"} {
		assert.True(t, registered[want], "missing route: %s", want)
	}
}
