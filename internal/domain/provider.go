// Package domain contains the core business entities and value objects.
package domain

// ProviderType identifies a reply provider in the dispatch chain.
type ProviderType string

const (
	ProviderGemini   ProviderType = "gemini"
	ProviderOpenAI   ProviderType = "openai"
	ProviderFallback ProviderType = "fallback"
)

// String implements fmt.Stringer.
func (p ProviderType) String() string {
	return string(p)
}
