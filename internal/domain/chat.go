// Package domain contains the core business entities and value objects.
package domain

import "strings"

// ChatRequest is the body of POST /api/message.
type ChatRequest struct {
	// Message is the user's question. Required, non-empty after trimming.
	Message string `json:"message"`

	// Location is an optional Indian state or city.
	Location string `json:"location,omitempty"`

	// Language optionally overrides detection ("hinglish" or "english").
	Language string `json:"language,omitempty"`
}

// HasMessage reports whether the request carries a usable message.
func (r ChatRequest) HasMessage() bool {
	return strings.TrimSpace(r.Message) != ""
}

// ChatResponse is the success body of POST /api/message.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ErrorResponse is the body returned for rejected requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Reply is the outcome of composing an answer for one request.
type Reply struct {
	// Text is the reply sent to the caller. Never empty.
	Text string

	// Provider names the provider that produced Text.
	Provider string

	// Language is the effective language used for the request.
	Language Language

	// Err is the absorbed provider failure, if any. Text then holds the
	// user-facing error message.
	Err error
}
