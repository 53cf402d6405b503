// Package adapter provides implementations for external AI provider integrations.
package adapter

import (
	"context"
	"errors"
	"strings"

	"github.com/hpn/codered-chatbot/internal/domain"
	"google.golang.org/genai"
)

// DefaultGeminiModel is the model used when none is configured.
const DefaultGeminiModel = "gemini-1.5-flash-latest"

// GeminiAdapter implements ReplyProvider for the Google Gemini API.
// The instruction and the user message are sent as one text part.
type GeminiAdapter struct {
	keys domain.CredentialSet
	opts options
}

// NewGeminiAdapter creates a new GeminiAdapter for the given keys.
// An empty base URL keeps the SDK's default endpoint.
func NewGeminiAdapter(keys domain.CredentialSet, opts ...Option) *GeminiAdapter {
	return &GeminiAdapter{
		keys: keys,
		opts: newOptions(DefaultGeminiModel, "", opts),
	}
}

// Name returns the provider identifier.
func (g *GeminiAdapter) Name() string {
	return domain.ProviderGemini.String()
}

// Complete generates a reply, trying each configured key in turn on
// rate-limit and server errors.
func (g *GeminiAdapter) Complete(ctx context.Context, prompt Prompt) (string, error) {
	return withKeyFailover(ctx, g.keys, func(key string) (string, error) {
		return g.generate(ctx, key, prompt)
	})
}

// generate performs one generateContent call with a single key.
// A client is built per call so the rotated key is never shared.
func (g *GeminiAdapter) generate(ctx context.Context, key string, prompt Prompt) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     key,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.opts.httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: g.opts.baseURL,
		},
	})
	if err != nil {
		return "", &ProviderError{
			Provider: g.Name(),
			Message:  "failed to create gemini client",
			Err:      err,
		}
	}

	resp, err := client.Models.GenerateContent(ctx, g.opts.model, genai.Text(prompt.Combined()), nil)
	if err != nil {
		return "", g.wrapError(err)
	}

	text := strings.TrimSpace(responseText(resp))
	if text == "" {
		return "", &ProviderError{
			Provider: g.Name(),
			Message:  "gemini response contained no text",
		}
	}
	return text, nil
}

// wrapError converts SDK errors into ProviderError, keeping the HTTP status.
func (g *GeminiAdapter) wrapError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{
			Provider:   g.Name(),
			StatusCode: apiErr.Code,
			Message:    apiErr.Message,
			Body:       apiErr.Status,
			Err:        err,
		}
	}
	return &ProviderError{
		Provider: g.Name(),
		Message:  "failed to execute gemini request",
		Err:      err,
	}
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}
