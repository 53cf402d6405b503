// Package chat composes assistant replies: it resolves the reply language,
// assembles the system instruction and walks the provider chain.
package chat

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hpn/codered-chatbot/internal/adapter"
	"github.com/hpn/codered-chatbot/internal/domain"
)

// errEmptyReply is reported when a provider returns blank text.
var errEmptyReply = errors.New("provider returned an empty reply")

// Composer turns a ChatRequest into a reply. It holds no per-request state
// and is safe for concurrent use.
type Composer struct {
	profile   domain.Profile
	providers []adapter.ReplyProvider
	logger    *slog.Logger
}

// ComposerOption is a functional option for configuring Composer.
type ComposerOption func(*Composer)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) ComposerOption {
	return func(c *Composer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewComposer creates a Composer that tries providers in order.
// When every provider reports ErrProviderUnavailable the profile's
// fallback ladder answers.
func NewComposer(profile domain.Profile, providers []adapter.ReplyProvider, opts ...ComposerOption) *Composer {
	c := &Composer{
		profile:   profile,
		providers: providers,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Providers returns the names of the configured providers, in order.
func (c *Composer) Providers() []string {
	names := make([]string, len(c.providers))
	for i, p := range c.providers {
		names[i] = p.Name()
	}
	return names
}

// Compose produces the reply for req. Provider failures never escape:
// they are logged and turned into a user-facing message.
func (c *Composer) Compose(ctx context.Context, req domain.ChatRequest) domain.Reply {
	lang := domain.ResolveLanguage(req.Language, req.Message)
	prompt := adapter.Prompt{
		Instruction: c.profile.SystemInstruction(lang, req.Location),
		Message:     req.Message,
		Language:    lang,
	}

	for _, p := range c.providers {
		text, err := p.Complete(ctx, prompt)
		if errors.Is(err, adapter.ErrProviderUnavailable) {
			c.logger.Debug("provider unavailable, trying next", slog.String("provider", p.Name()))
			continue
		}
		if err == nil && strings.TrimSpace(text) == "" {
			err = errEmptyReply
		}
		if err != nil {
			status, _ := adapter.StatusCode(err)
			c.logger.Error("error processing request",
				slog.String("provider", p.Name()),
				slog.Int("upstream_status", status),
				slog.String("error", err.Error()),
				slog.String("detail", adapter.ResponseDetail(err)),
			)
			return domain.Reply{
				Text:     c.errorReply(err),
				Provider: p.Name(),
				Language: lang,
				Err:      err,
			}
		}

		return domain.Reply{Text: text, Provider: p.Name(), Language: lang}
	}

	return domain.Reply{
		Text:     c.profile.FallbackReply(req.Message, lang),
		Provider: domain.ProviderFallback.String(),
		Language: lang,
	}
}

// errorReply maps an upstream failure to the profile's user-facing copy.
func (c *Composer) errorReply(err error) string {
	status, _ := adapter.StatusCode(err)
	switch status {
	case http.StatusUnauthorized:
		return c.profile.Errors.Unauthorized
	case http.StatusNotFound:
		return c.profile.Errors.NotFound
	case http.StatusBadRequest:
		return c.profile.Errors.BadRequest
	default:
		return c.profile.Errors.Generic
	}
}
