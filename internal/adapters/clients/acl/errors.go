package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/quotesync/internal/adapters/clients"
	"github.com/jsamuelsen/quotesync/internal/domain"
)

// maxErrorBody bounds how much of an error response is read for context.
const maxErrorBody = 4 << 10

// ErrorResponse is the error body some remotes return. Both nested
// ({"error":{"message":...}}) and flat ({"message":...}) shapes are accepted.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorDetail is the nested error object.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GetCode returns the error code from either shape.
func (e *ErrorResponse) GetCode() string {
	if e.Error.Code != "" {
		return e.Error.Code
	}

	return e.Code
}

// GetMessage returns the error message from either shape.
func (e *ErrorResponse) GetMessage() string {
	if e.Error.Message != "" {
		return e.Error.Message
	}

	return e.Message
}

// ParseErrorResponse decodes an error body. It returns nil when the body is
// empty, not JSON, or carries neither a code nor a message.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&errResp); err != nil {
		return nil
	}

	if errResp.GetCode() == "" && errResp.GetMessage() == "" {
		return nil
	}

	return &errResp
}

// MapHTTPError turns a failed exchange with the remote into a
// domain.NetworkError. resp is nil when no response arrived. A 2xx response
// with no client error maps to nil.
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewNetworkError(serviceName, operation, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	reason := fmt.Sprintf("status %d", resp.StatusCode)

	if errResp := ParseErrorResponse(resp.Body); errResp != nil && errResp.GetMessage() != "" {
		reason += ": " + errResp.GetMessage()
	}

	return domain.NewNetworkError(serviceName, operation, reason)
}

func mapClientError(err error, serviceName, operation string) error {
	if errors.Is(err, clients.ErrCircuitOpen) {
		return &domain.NetworkError{Service: serviceName, Op: operation, Reason: "circuit breaker open", Cause: err}
	}

	return domain.NewNetworkErrorWithCause(serviceName, operation, err)
}

// decodeError reports a response body that could not be understood.
func decodeError(serviceName, operation string, err error) error {
	return &domain.NetworkError{
		Service: serviceName,
		Op:      operation,
		Reason:  "decoding response: " + err.Error(),
		Cause:   err,
	}
}
