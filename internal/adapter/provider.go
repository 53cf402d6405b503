// Package adapter provides implementations for external AI provider integrations.
// It uses the Adapter pattern to abstract provider-specific APIs behind a common interface.
package adapter

import (
	"context"

	"github.com/hpn/codered-chatbot/internal/domain"
)

// ReplyProvider is one step of the reply dispatch chain.
// Complete either returns reply text, ErrProviderUnavailable when the
// provider cannot serve the request at all (e.g. no credentials), or any
// other error when the upstream call failed.
type ReplyProvider interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)

	// Name returns the provider's identifier string.
	Name() string
}

// Prompt carries everything a provider needs to answer one message.
type Prompt struct {
	// Instruction is the assembled system instruction.
	Instruction string

	// Message is the user's raw message.
	Message string

	// Language is the effective reply language.
	Language domain.Language
}

// Combined returns the single-text form used by providers without roles.
func (p Prompt) Combined() string {
	return p.Instruction + "\n\nUser: " + p.Message
}
