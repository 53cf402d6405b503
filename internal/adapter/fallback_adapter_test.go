package adapter

import (
	"context"
	"testing"

	"github.com/hpn/codered-chatbot/internal/domain"
)

func TestFallbackAdapter_Complete(t *testing.T) {
	profile, _ := domain.LookupProfile(domain.ProfileIndia)
	a := NewFallbackAdapter(profile)

	tests := []struct {
		name    string
		message string
		lang    domain.Language
		want    string
	}{
		{name: "keyword english", message: "Flood in my area", lang: domain.LanguageEnglish, want: profile.Rules[1].Reply.English},
		{name: "keyword hinglish", message: "Flood in my area", lang: domain.LanguageHinglish, want: profile.Rules[1].Reply.Hinglish},
		{name: "generic", message: "hello", lang: domain.LanguageEnglish, want: profile.Greeting.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Complete(context.Background(), Prompt{Message: tt.message, Language: tt.lang})
			if err != nil {
				t.Fatalf("Complete() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Complete() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProviderError_Error(t *testing.T) {
	withStatus := &ProviderError{Provider: "openai", StatusCode: 404, Message: "model not found"}
	if got := withStatus.Error(); got != "openai API error [404]: model not found" {
		t.Errorf("Error() = %q", got)
	}

	if isRetryableError(withStatus) {
		t.Error("404 should not be retryable")
	}
	if !isRetryableError(&ProviderError{Provider: "openai", StatusCode: 503}) {
		t.Error("503 should be retryable")
	}
	if isRetryableError(&ProviderError{Provider: "openai", Message: "dial failed"}) {
		t.Error("transport failure should not be retryable")
	}
}
