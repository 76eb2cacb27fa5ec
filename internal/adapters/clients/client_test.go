package clients

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotesync/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotesync/internal/platform/config"
)

func defaultConfig(baseURL string) *Config {
	return &Config{
		BaseURL:     baseURL,
		ServiceName: "remote-quotes",
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
			JitterFactor:    0.25,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 2,
		},
		Transport: config.TransportConfig{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     time.Second,
		},
	}
}

// closeBody closes the response body and fails the test on error.
func closeBody(t *testing.T, resp *http.Response) {
	t.Helper()

	if err := resp.Body.Close(); err != nil {
		t.Errorf("failed to close response body: %v", err)
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	require.ErrorContains(t, err, "config is required")

	cfg := defaultConfig("https://api.example.com")
	cfg.ServiceName = ""
	_, err = New(cfg)
	require.ErrorContains(t, err, "service name is required")

	_, err = New(defaultConfig(""))
	require.ErrorContains(t, err, "base URL is required")
}

func TestNew_Defaults(t *testing.T) {
	cfg := &Config{BaseURL: "https://api.example.com/posts/", ServiceName: "remote"}

	client, err := New(cfg)

	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/posts", client.baseURL)
	assert.Equal(t, defaultTimeout, client.http.Timeout)
	assert.Equal(t, 1, cfg.Retry.MaxAttempts)
	assert.Equal(t, "remote", client.ServiceName())
	assert.Equal(t, StateClosed, client.CircuitState())
}

func TestClient_BuildURL(t *testing.T) {
	client, err := New(defaultConfig("https://api.example.com/posts"))
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/posts", client.buildURL(""))
	assert.Equal(t, "https://api.example.com/posts/1", client.buildURL("/1"))
	assert.Equal(t, "https://api.example.com/posts/1", client.buildURL("1"))
}

func TestClient_HeaderPropagation(t *testing.T) {
	var requestID, correlationID, userAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get(middleware.HeaderRequestID)
		correlationID = r.Header.Get(middleware.HeaderCorrelationID)
		userAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := defaultConfig(server.URL)
	cfg.UserAgent = "quotesync/test"

	client, err := New(cfg)
	require.NoError(t, err)

	ctx := middleware.ContextWithRequestID(context.Background(), "req-123")
	ctx = middleware.ContextWithCorrelationID(ctx, "corr-456")

	resp, err := client.Get(ctx, "")
	require.NoError(t, err)
	defer closeBody(t, resp)

	assert.Equal(t, "req-123", requestID)
	assert.Equal(t, "corr-456", correlationID)
	assert.Equal(t, "quotesync/test", userAgent)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(defaultConfig(server.URL))
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), "")
	require.NoError(t, err)
	defer closeBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestClient_RetriesReplayJSONBody(t *testing.T) {
	var attempts atomic.Int32

	var bodies []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(raw))

		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)

			return
		}

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client, err := New(defaultConfig(server.URL))
	require.NoError(t, err)

	resp, err := client.PostJSON(context.Background(), "", map[string]string{"title": "Be brave"})
	require.NoError(t, err)
	defer closeBody(t, resp)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, bodies, 2)
	assert.Equal(t, bodies[0], bodies[1])

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(bodies[1]), &decoded))
	assert.Equal(t, "Be brave", decoded["title"])
}

func TestClient_ClientErrorsAreNotRetried(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := New(defaultConfig(server.URL))
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), "")
	require.NoError(t, err)
	defer closeBody(t, resp)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestClient_ExhaustedRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := New(defaultConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "")

	require.ErrorIs(t, err, ErrMaxRetriesExceeded)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_CircuitOpensAfterFailures(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := defaultConfig(server.URL)
	cfg.Retry.MaxAttempts = 1
	cfg.Circuit.MaxFailures = 2

	client, err := New(cfg)
	require.NoError(t, err)

	for range 2 {
		_, err = client.Get(context.Background(), "")
		require.Error(t, err)
	}

	assert.Equal(t, StateOpen, client.CircuitState())

	_, err = client.Get(context.Background(), "")
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestClient_CancelledContextStopsRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := defaultConfig(server.URL)
	cfg.Retry.InitialInterval = time.Second
	cfg.Retry.MaxInterval = time.Second

	client, err := New(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.Get(ctx, "")

	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := defaultConfig(server.URL)
	cfg.Timeout = 50 * time.Millisecond
	cfg.Retry.MaxAttempts = 1

	client, err := New(cfg)
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "")

	require.Error(t, err)
}

func TestClient_CalculateBackoff(t *testing.T) {
	cfg := defaultConfig("https://api.example.com")
	cfg.Retry.InitialInterval = 100 * time.Millisecond
	cfg.Retry.MaxInterval = time.Second

	client, err := New(cfg)
	require.NoError(t, err)

	first := client.calculateBackoff(1)
	assert.GreaterOrEqual(t, first, 150*time.Millisecond)
	assert.LessOrEqual(t, first, 250*time.Millisecond)

	capped := client.calculateBackoff(10)
	assert.LessOrEqual(t, capped, cfg.Retry.MaxInterval+cfg.Retry.MaxInterval/4)
}

func TestIsRetryableError(t *testing.T) {
	assert.False(t, isRetryableError(nil))
	assert.False(t, isRetryableError(context.Canceled))
	assert.False(t, isRetryableError(context.DeadlineExceeded))
	assert.False(t, isRetryableError(assert.AnError))
}
