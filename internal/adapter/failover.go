// Package adapter provides implementations for external AI provider integrations.
package adapter

import (
	"context"

	"github.com/hpn/codered-chatbot/internal/domain"
)

// withKeyFailover calls fn with each key in order until one succeeds or a
// non-retryable error occurs. The last error is returned when all keys fail.
func withKeyFailover(ctx context.Context, keys domain.CredentialSet, fn func(key string) (string, error)) (string, error) {
	if keys.Empty() {
		return "", ErrProviderUnavailable
	}

	var lastErr error
	for _, key := range keys.Keys() {
		reply, err := fn(key)
		if err == nil {
			return reply, nil
		}
		lastErr = err

		if !isRetryableError(err) || ctx.Err() != nil {
			return "", err
		}
	}
	return "", lastErr
}
