// Package client is a Go client for the chatbot HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hpn/codered-chatbot/internal/domain"
)

const (
	// DefaultBaseURL is the local development server.
	DefaultBaseURL = "http://localhost:3000"

	// DefaultTimeout bounds a single message round trip.
	DefaultTimeout = 15 * time.Second

	// HealthTimeout bounds a health check.
	HealthTimeout = 5 * time.Second

	requestIDHeader = "X-Request-ID"
)

// HTTPError is returned when the server answers with a non-200 status.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("Error: %d - %s", e.StatusCode, e.Body)
}

// NetworkError wraps a transport failure.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "Network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Client talks to a chatbot server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d}
		}
	}
}

// New creates a Client for baseURL. An empty baseURL uses DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the server address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// MessageOption sets an optional field of a message request.
type MessageOption func(*domain.ChatRequest)

// WithLocation attaches the user's location.
func WithLocation(location string) MessageOption {
	return func(r *domain.ChatRequest) {
		r.Location = strings.TrimSpace(location)
	}
}

// WithLanguage forces the reply language instead of auto-detection.
func WithLanguage(language string) MessageOption {
	return func(r *domain.ChatRequest) {
		r.Language = strings.TrimSpace(language)
	}
}

// messagePayload omits empty optional fields on the wire.
type messagePayload struct {
	Message  string `json:"message"`
	Location string `json:"location,omitempty"`
	Language string `json:"language,omitempty"`
}

// SendMessage posts message to /api/message and returns the reply text.
func (c *Client) SendMessage(ctx context.Context, message string, opts ...MessageOption) (string, error) {
	req := domain.ChatRequest{Message: message}
	for _, opt := range opts {
		opt(&req)
	}

	body, err := json.Marshal(messagePayload{
		Message:  req.Message,
		Location: req.Location,
		Language: req.Language,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/message", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(requestIDHeader, uuid.NewString())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &HTTPError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var chatResp domain.ChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return chatResp.Reply, nil
}

// CheckHealth reports whether GET / answers 200.
func (c *Client) CheckHealth(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, HealthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK
}
