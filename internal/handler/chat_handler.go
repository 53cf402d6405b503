// Package handler provides HTTP handlers for the chatbot API.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hpn/codered-chatbot/internal/domain"
)

const (
	// HealthMessage is the plain-text body of GET /.
	HealthMessage = "Code-Red Chatbot Backend is running!"

	// ErrMessageRequired is returned when the request has no usable message.
	ErrMessageRequired = "Message is required."

	// ErrInvalidBody is returned when the request body is not valid JSON.
	ErrInvalidBody = "Invalid request body."
)

// Context keys read by LoggingMiddleware.
const (
	ctxKeyProvider = "provider"
	ctxKeyLanguage = "language"
)

// Composer produces a reply for a validated request.
type Composer interface {
	Compose(ctx context.Context, req domain.ChatRequest) domain.Reply
}

// ChatHandler serves the chatbot endpoints.
type ChatHandler struct {
	composer  Composer
	providers []string
	logger    *slog.Logger
	startedAt time.Time
}

// ChatHandlerOption is a functional option for configuring ChatHandler.
type ChatHandlerOption func(*ChatHandler)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) ChatHandlerOption {
	return func(h *ChatHandler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithProviders sets the provider names reported by the health endpoint.
func WithProviders(names []string) ChatHandlerOption {
	return func(h *ChatHandler) {
		h.providers = names
	}
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(composer Composer, opts ...ChatHandlerOption) *ChatHandler {
	h := &ChatHandler{
		composer:  composer,
		logger:    slog.Default(),
		startedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HandleMessage handles POST /api/message.
// Only a missing message changes the status code; provider failures are
// already folded into the reply text by the Composer.
func (h *ChatHandler) HandleMessage(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: ErrMessageRequired})
			return
		}
		h.logger.Debug("invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: ErrInvalidBody})
		return
	}

	if !req.HasMessage() {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: ErrMessageRequired})
		return
	}

	reply := h.composer.Compose(c.Request.Context(), req)

	c.Set(ctxKeyProvider, reply.Provider)
	c.Set(ctxKeyLanguage, string(reply.Language))

	c.JSON(http.StatusOK, domain.ChatResponse{Reply: reply.Text})
}

// HandleRoot handles GET /.
func (h *ChatHandler) HandleRoot(c *gin.Context) {
	c.String(http.StatusOK, HealthMessage)
}

// HandleHealth handles GET /health.
// Returns server status and the provider chain.
func (h *ChatHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"providers":      h.providers,
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
	})
}
