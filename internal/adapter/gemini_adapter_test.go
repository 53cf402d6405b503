package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hpn/codered-chatbot/internal/domain"
)

// newGeminiMock simulates the generateContent endpoint. The API key may
// arrive as a header or a query parameter.
func newGeminiMock(t *testing.T, status int, body any, gotText *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			t.Errorf("path = %s, want a generateContent call", r.URL.Path)
		}
		key := r.Header.Get("x-goog-api-key")
		if key == "" {
			key = r.URL.Query().Get("key")
		}
		if key != "AIza-test" {
			t.Errorf("api key = %q, want AIza-test", key)
		}

		if gotText != nil {
			raw, _ := io.ReadAll(r.Body)
			var req struct {
				Contents []struct {
					Parts []struct {
						Text string `json:"text"`
					} `json:"parts"`
				} `json:"contents"`
			}
			if err := json.Unmarshal(raw, &req); err != nil {
				t.Errorf("decode request: %v", err)
			} else if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
				*gotText = req.Contents[0].Parts[0].Text
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
}

func geminiSuccessBody(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": text}},
				},
				"finishReason": "STOP",
				"index":        0,
			},
		},
	}
}

func geminiErrorBody(code int, status string) map[string]any {
	return map[string]any{
		"error": map[string]any{"code": code, "message": "upstream says no", "status": status},
	}
}

func TestGeminiAdapter_Complete_Success(t *testing.T) {
	var sent string
	server := newGeminiMock(t, http.StatusOK, geminiSuccessBody("\n  Drop, Cover, Hold!  "), &sent)
	defer server.Close()

	a := NewGeminiAdapter(domain.ParseCredentials("AIza-test"), WithBaseURL(server.URL))
	reply, err := a.Complete(context.Background(), testPrompt())
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if reply != "Drop, Cover, Hold!" {
		t.Errorf("reply = %q, want trimmed text", reply)
	}
	if want := "You are a disaster assistant.\n\nUser: flood help"; sent != want {
		t.Errorf("sent text = %q, want %q", sent, want)
	}
}

func TestGeminiAdapter_Complete_StatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   any
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: geminiErrorBody(401, "UNAUTHENTICATED")},
		{name: "bad request", status: http.StatusBadRequest, body: geminiErrorBody(400, "INVALID_ARGUMENT")},
		{name: "not found", status: http.StatusNotFound, body: geminiErrorBody(404, "NOT_FOUND")},
		{name: "forbidden", status: http.StatusForbidden, body: geminiErrorBody(403, "PERMISSION_DENIED")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newGeminiMock(t, tt.status, tt.body, nil)
			defer server.Close()

			a := NewGeminiAdapter(domain.ParseCredentials("AIza-test"), WithBaseURL(server.URL))
			_, err := a.Complete(context.Background(), testPrompt())
			if err == nil {
				t.Fatal("Complete() error = nil, want error")
			}
			if status, _ := StatusCode(err); status != tt.status {
				t.Errorf("StatusCode() = %d, want %d", status, tt.status)
			}
		})
	}
}

func TestGeminiAdapter_Complete_NoCandidates(t *testing.T) {
	server := newGeminiMock(t, http.StatusOK, map[string]any{"candidates": []any{}}, nil)
	defer server.Close()

	a := NewGeminiAdapter(domain.ParseCredentials("AIza-test"), WithBaseURL(server.URL))
	_, err := a.Complete(context.Background(), testPrompt())
	if err == nil {
		t.Fatal("Complete() error = nil, want error for empty response")
	}
	var pe *ProviderError
	if !errors.As(err, &pe) || pe.Provider != "gemini" {
		t.Errorf("error = %v, want gemini ProviderError", err)
	}
}

func TestGeminiAdapter_Complete_NoKeys(t *testing.T) {
	a := NewGeminiAdapter(domain.ParseCredentials(""))
	if _, err := a.Complete(context.Background(), testPrompt()); !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("Complete() error = %v, want ErrProviderUnavailable", err)
	}
}

func TestGeminiAdapter_Name(t *testing.T) {
	if got := NewGeminiAdapter(domain.CredentialSet{}).Name(); got != "gemini" {
		t.Errorf("Name() = %s, want gemini", got)
	}
}
