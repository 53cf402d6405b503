package chat

import (
	"github.com/hpn/codered-chatbot/internal/adapter"
	"github.com/hpn/codered-chatbot/internal/config"
)

// NewProviderChain builds the dispatch chain from configuration: Gemini if
// it has a key, then OpenAI if it has a key, then the local fallback ladder.
func NewProviderChain(cfg *config.Configuration) []adapter.ReplyProvider {
	chain := make([]adapter.ReplyProvider, 0, 3)

	gemini := cfg.Providers.Gemini
	if creds := gemini.Credentials(); !creds.Empty() {
		chain = append(chain, adapter.NewGeminiAdapter(creds,
			adapter.WithModel(gemini.Model),
			adapter.WithBaseURL(gemini.BaseURL),
			adapter.WithTimeout(gemini.Timeout()),
		))
	}

	openai := cfg.Providers.OpenAI
	if creds := openai.Credentials(); !creds.Empty() {
		chain = append(chain, adapter.NewOpenAIAdapter(creds,
			adapter.WithModel(openai.Model),
			adapter.WithBaseURL(openai.BaseURL),
			adapter.WithTimeout(openai.Timeout()),
			adapter.WithMaxTokens(openai.MaxTokens),
			adapter.WithTemperature(openai.Temperature),
		))
	}

	return append(chain, adapter.NewFallbackAdapter(cfg.Profile()))
}
