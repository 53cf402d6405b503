// Package adapter provides implementations for external AI provider integrations.
package adapter

import (
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout is the default HTTP client timeout.
const DefaultTimeout = 30 * time.Second

type options struct {
	model       string
	baseURL     string
	httpClient  *http.Client
	maxTokens   int
	temperature float64
}

// Option is a functional option shared by the HTTP-backed adapters.
type Option func(*options)

// WithModel overrides the upstream model name.
func WithModel(model string) Option {
	return func(o *options) {
		if model != "" {
			o.model = model
		}
	}
}

// WithBaseURL sets a custom base URL for the upstream API.
func WithBaseURL(url string) Option {
	return func(o *options) {
		if url != "" {
			o.baseURL = strings.TrimSuffix(url, "/")
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.httpClient = &http.Client{Timeout: timeout, Transport: o.httpClient.Transport}
		}
	}
}

// WithMaxTokens bounds the completion length (OpenAI only).
func WithMaxTokens(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxTokens = n
		}
	}
}

// WithTemperature sets the sampling temperature (OpenAI only).
func WithTemperature(t float64) Option {
	return func(o *options) {
		o.temperature = t
	}
}

func newOptions(model, baseURL string, opts []Option) options {
	o := options{
		model:       model,
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		maxTokens:   DefaultOpenAIMaxTokens,
		temperature: DefaultOpenAITemperature,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
