package chat

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/hpn/codered-chatbot/internal/adapter"
	"github.com/hpn/codered-chatbot/internal/config"
	"github.com/hpn/codered-chatbot/internal/domain"
)

// stubProvider records the prompt it was given and returns a fixed result.
type stubProvider struct {
	name  string
	reply string
	err   error

	mu     sync.Mutex
	prompt adapter.Prompt
	calls  int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Complete(_ context.Context, p adapter.Prompt) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompt = p
	s.calls++
	return s.reply, s.err
}

func india(t *testing.T) domain.Profile {
	t.Helper()
	p, ok := domain.LookupProfile(domain.ProfileIndia)
	if !ok {
		t.Fatal("india profile missing")
	}
	return p
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestComposer_FirstAvailableProviderWins(t *testing.T) {
	primary := &stubProvider{name: "gemini", reply: "primary says hi"}
	secondary := &stubProvider{name: "openai", reply: "secondary says hi"}
	c := NewComposer(india(t), []adapter.ReplyProvider{primary, secondary}, WithLogger(quietLogger()))

	reply := c.Compose(context.Background(), domain.ChatRequest{Message: "Flood help", Location: "Patna"})

	if reply.Text != "primary says hi" || reply.Provider != "gemini" {
		t.Errorf("reply = %+v, want primary", reply)
	}
	if secondary.calls != 0 {
		t.Errorf("secondary called %d times, want 0", secondary.calls)
	}
	if !strings.Contains(primary.prompt.Instruction, "The user's location is: Patna, India.") {
		t.Errorf("instruction missing location clause: %q", primary.prompt.Instruction)
	}
	if primary.prompt.Message != "Flood help" {
		t.Errorf("prompt message = %q", primary.prompt.Message)
	}
}

func TestComposer_SkipsUnavailableProviders(t *testing.T) {
	primary := &stubProvider{name: "gemini", err: adapter.ErrProviderUnavailable}
	secondary := &stubProvider{name: "openai", reply: "from openai"}
	c := NewComposer(india(t), []adapter.ReplyProvider{primary, secondary}, WithLogger(quietLogger()))

	reply := c.Compose(context.Background(), domain.ChatRequest{Message: "storm"})
	if reply.Provider != "openai" || reply.Text != "from openai" {
		t.Errorf("reply = %+v, want openai", reply)
	}
}

func TestComposer_NoProvidersUsesFallbackLadder(t *testing.T) {
	profile := india(t)
	c := NewComposer(profile, nil, WithLogger(quietLogger()))

	tests := []struct {
		name string
		req  domain.ChatRequest
		want string
	}{
		{name: "earthquake detected english", req: domain.ChatRequest{Message: "EARTHQUAKE now!"}, want: profile.Rules[0].Reply.English},
		{name: "earthquake detected hinglish", req: domain.ChatRequest{Message: "earthquake aa raha hai"}, want: profile.Rules[0].Reply.Hinglish},
		{name: "explicit english beats detection", req: domain.ChatRequest{Message: "flood aa raha hai", Language: "english"}, want: profile.Rules[1].Reply.English},
		{name: "explicit hinglish beats detection", req: domain.ChatRequest{Message: "FIRE!", Language: "hinglish"}, want: profile.Rules[2].Reply.Hinglish},
		{name: "storm", req: domain.ChatRequest{Message: "Storm!!"}, want: profile.Rules[3].Reply.English},
		{name: "no keyword", req: domain.ChatRequest{Message: "Hello!"}, want: profile.Greeting.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := c.Compose(context.Background(), tt.req)
			if reply.Text != tt.want {
				t.Errorf("Text = %q, want %q", reply.Text, tt.want)
			}
			if reply.Provider != "fallback" {
				t.Errorf("Provider = %s, want fallback", reply.Provider)
			}
		})
	}
}

func TestComposer_ProviderErrorsBecomeReplies(t *testing.T) {
	profile := india(t)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "unauthorized", err: &adapter.ProviderError{Provider: "gemini", StatusCode: http.StatusUnauthorized}, want: profile.Errors.Unauthorized},
		{name: "not found", err: &adapter.ProviderError{Provider: "gemini", StatusCode: http.StatusNotFound}, want: profile.Errors.NotFound},
		{name: "bad request", err: &adapter.ProviderError{Provider: "gemini", StatusCode: http.StatusBadRequest}, want: profile.Errors.BadRequest},
		{name: "server error", err: &adapter.ProviderError{Provider: "gemini", StatusCode: http.StatusBadGateway}, want: profile.Errors.Generic},
		{name: "transport error", err: errors.New("connection reset"), want: profile.Errors.Generic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failing := &stubProvider{name: "gemini", err: tt.err}
			next := &stubProvider{name: "openai", reply: "should not be used"}
			c := NewComposer(profile, []adapter.ReplyProvider{failing, next}, WithLogger(quietLogger()))

			reply := c.Compose(context.Background(), domain.ChatRequest{Message: "help"})
			if reply.Text != tt.want {
				t.Errorf("Text = %q, want %q", reply.Text, tt.want)
			}
			if reply.Err == nil {
				t.Error("Err = nil, want the absorbed failure")
			}
			if next.calls != 0 {
				t.Error("a failed provider must not cascade to the next one")
			}
		})
	}
}

func TestComposer_EmptyProviderTextIsGenericError(t *testing.T) {
	profile := india(t)
	c := NewComposer(profile, []adapter.ReplyProvider{&stubProvider{name: "custom", reply: "   "}}, WithLogger(quietLogger()))

	reply := c.Compose(context.Background(), domain.ChatRequest{Message: "help"})
	if reply.Text != profile.Errors.Generic {
		t.Errorf("Text = %q, want generic error", reply.Text)
	}
}

func TestComposer_Idempotent(t *testing.T) {
	c := NewComposer(india(t), []adapter.ReplyProvider{adapter.NewFallbackAdapter(india(t))}, WithLogger(quietLogger()))
	req := domain.ChatRequest{Message: "cyclone kab aayega", Location: "Odisha"}

	first := c.Compose(context.Background(), req)
	for i := 0; i < 5; i++ {
		if got := c.Compose(context.Background(), req); got.Text != first.Text {
			t.Fatalf("call %d = %q, want %q", i, got.Text, first.Text)
		}
	}
}

func TestNewProviderChain(t *testing.T) {
	tests := []struct {
		name   string
		gemini string
		openai string
		want   []string
	}{
		{name: "no keys", want: []string{"fallback"}},
		{name: "gemini only", gemini: "AIza-x", want: []string{"gemini", "fallback"}},
		{name: "openai only", openai: "sk-x", want: []string{"openai", "fallback"}},
		{name: "both", gemini: "AIza-x", openai: "sk-x", want: []string{"gemini", "openai", "fallback"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Configuration{}
			cfg.Assistant.Profile = "india"
			cfg.Providers.Gemini.APIKey = tt.gemini
			cfg.Providers.OpenAI.APIKey = tt.openai

			c := NewComposer(cfg.Profile(), NewProviderChain(cfg))
			if got := c.Providers(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Providers() = %v, want %v", got, tt.want)
			}
			if !reflect.DeepEqual(cfg.ProviderOrder(), tt.want) {
				t.Errorf("ProviderOrder() = %v, want %v", cfg.ProviderOrder(), tt.want)
			}
		})
	}
}
