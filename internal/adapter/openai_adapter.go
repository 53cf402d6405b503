// Package adapter provides implementations for external AI provider integrations.
package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hpn/codered-chatbot/internal/domain"
)

const (
	// DefaultOpenAIBaseURL is the default OpenAI API endpoint.
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"

	// DefaultOpenAIModel is the model used when none is configured.
	DefaultOpenAIModel = "gpt-3.5-turbo"

	// DefaultOpenAIMaxTokens bounds the completion length.
	DefaultOpenAIMaxTokens = 256

	// DefaultOpenAITemperature is the fixed sampling temperature.
	DefaultOpenAITemperature = 0.7
)

// OpenAIAdapter implements ReplyProvider for the OpenAI chat-completion API.
// The instruction is sent as a system-role message and the user's text as
// a user-role message.
type OpenAIAdapter struct {
	keys domain.CredentialSet
	opts options
}

// NewOpenAIAdapter creates a new OpenAIAdapter for the given keys.
func NewOpenAIAdapter(keys domain.CredentialSet, opts ...Option) *OpenAIAdapter {
	return &OpenAIAdapter{
		keys: keys,
		opts: newOptions(DefaultOpenAIModel, DefaultOpenAIBaseURL, opts),
	}
}

// Name returns the provider identifier.
func (o *OpenAIAdapter) Name() string {
	return domain.ProviderOpenAI.String()
}

// Complete performs a chat completion, trying each configured key in turn
// on rate-limit and server errors.
func (o *OpenAIAdapter) Complete(ctx context.Context, prompt Prompt) (string, error) {
	return withKeyFailover(ctx, o.keys, func(key string) (string, error) {
		return o.chatCompletion(ctx, key, prompt)
	})
}

// buildRequest maps a Prompt to the OpenAI wire format.
func (o *OpenAIAdapter) buildRequest(prompt Prompt) OpenAIRequest {
	maxTokens := o.opts.maxTokens
	temperature := o.opts.temperature
	return OpenAIRequest{
		Model: o.opts.model,
		Messages: []OpenAIMessage{
			{Role: "system", Content: prompt.Instruction},
			{Role: "user", Content: prompt.Message},
		},
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	}
}

func (o *OpenAIAdapter) chatCompletion(ctx context.Context, key string, prompt Prompt) (string, error) {
	body, err := json.Marshal(o.buildRequest(prompt))
	if err != nil {
		return "", &ProviderError{Provider: o.Name(), Message: "failed to marshal openai request", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.opts.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &ProviderError{Provider: o.Name(), Message: "failed to create http request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+key)

	resp, err := o.opts.httpClient.Do(httpReq)
	if err != nil {
		return "", &ProviderError{Provider: o.Name(), Message: "failed to execute openai request", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Provider: o.Name(), StatusCode: resp.StatusCode, Message: "failed to read openai response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		message := string(respBody)
		var apiErr OpenAIError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			message = apiErr.Error.Message
		}
		return "", &ProviderError{
			Provider:   o.Name(),
			StatusCode: resp.StatusCode,
			Message:    message,
			Body:       string(respBody),
		}
	}

	var completion OpenAIResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", &ProviderError{Provider: o.Name(), Message: "failed to unmarshal openai response", Body: string(respBody), Err: err}
	}
	if len(completion.Choices) == 0 {
		return "", &ProviderError{Provider: o.Name(), Message: "openai response contained no choices", Body: string(respBody)}
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		return "", &ProviderError{Provider: o.Name(), Message: fmt.Sprintf("empty completion (finish_reason=%s)", completion.Choices[0].FinishReason)}
	}
	return text, nil
}
