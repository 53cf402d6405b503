// Package adapter provides implementations for external AI provider integrations.
package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrProviderUnavailable signals that a provider cannot serve any request,
// so the dispatcher should move on to the next one.
var ErrProviderUnavailable = errors.New("provider unavailable")

// ProviderError describes a failed upstream call.
type ProviderError struct {
	Provider string

	// StatusCode is the upstream HTTP status, or 0 if no response was received.
	StatusCode int

	// Message is the upstream error message when one could be parsed.
	Message string

	// Body is the raw upstream response body, kept for operator logs.
	Body string

	Err error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s API error [%d]: %s", e.Provider, e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s request failed: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("%s request failed: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// StatusCode extracts the upstream HTTP status from err, if any.
func StatusCode(err error) (int, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) && pe.StatusCode != 0 {
		return pe.StatusCode, true
	}
	return 0, false
}

// ResponseDetail returns the raw upstream body attached to err, if any.
func ResponseDetail(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Body
	}
	return ""
}

// isRetryableError determines if another credential should be tried.
// Retryable: 429 (Rate Limited), 5xx (Server Errors).
// Non-retryable: other 4xx and transport failures.
func isRetryableError(err error) bool {
	status, ok := StatusCode(err)
	if !ok {
		return false
	}
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
