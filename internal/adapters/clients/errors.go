// Package clients provides the instrumented HTTP client used to reach the
// remote quote endpoint.
package clients

import "errors"

// Client errors are infrastructure failures. Callers translate them into
// domain errors before they leave the adapter layer.
var (
	// ErrCircuitOpen is returned while the breaker rejects requests.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last error once every attempt failed.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
