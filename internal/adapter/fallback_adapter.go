// Package adapter provides implementations for external AI provider integrations.
package adapter

import (
	"context"

	"github.com/hpn/codered-chatbot/internal/domain"
)

// FallbackAdapter answers from the profile's canned keyword ladder.
// It never fails and never touches the network.
type FallbackAdapter struct {
	profile domain.Profile
}

// NewFallbackAdapter creates a FallbackAdapter for profile.
func NewFallbackAdapter(profile domain.Profile) *FallbackAdapter {
	return &FallbackAdapter{profile: profile}
}

// Name returns the provider identifier.
func (f *FallbackAdapter) Name() string {
	return domain.ProviderFallback.String()
}

// Complete returns the canned reply for the message in the prompt's language.
func (f *FallbackAdapter) Complete(_ context.Context, prompt Prompt) (string, error) {
	return f.profile.FallbackReply(prompt.Message, prompt.Language), nil
}
