// Package config provides configuration management.
// It loads configuration from a .env file, environment variables and an
// optional config.yaml using Viper. The result is an explicit value built
// once at startup and passed to the components that need it.
package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hpn/codered-chatbot/internal/domain"
)

// Configuration holds all application configuration values.
type Configuration struct {
	// Server configuration
	Server ServerConfig `json:"server" mapstructure:"server"`

	// Providers holds upstream LLM settings, in dispatch priority order.
	Providers ProvidersConfig `json:"providers" mapstructure:"providers"`

	// Assistant selects the prompt/fallback profile.
	Assistant AssistantConfig `json:"assistant" mapstructure:"assistant"`

	// CORS configuration
	CORS CORSConfig `json:"cors" mapstructure:"cors"`

	// Logging configuration
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`

	// File is the config file that was read, empty when none was found.
	File string `json:"-" mapstructure:"-"`
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	// Host is the server bind address.
	Host string `json:"host" mapstructure:"host"`

	// Port is the server port number.
	Port int `json:"port" mapstructure:"port" validate:"min=1,max=65535"`

	ReadTimeoutSeconds     int `json:"read_timeout_seconds" mapstructure:"read_timeout_seconds" validate:"gte=0"`
	WriteTimeoutSeconds    int `json:"write_timeout_seconds" mapstructure:"write_timeout_seconds" validate:"gte=0"`
	ShutdownTimeoutSeconds int `json:"shutdown_timeout_seconds" mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ProvidersConfig holds the per-provider settings.
type ProvidersConfig struct {
	Gemini GeminiConfig `json:"gemini" mapstructure:"gemini"`
	OpenAI OpenAIConfig `json:"openai" mapstructure:"openai"`
}

// GeminiConfig configures the primary provider.
type GeminiConfig struct {
	// APIKey is one key or a comma-separated list. Empty disables the provider.
	APIKey string `json:"-" mapstructure:"api_key"`

	Model   string `json:"model" mapstructure:"model"`
	BaseURL string `json:"base_url" mapstructure:"base_url" validate:"omitempty,url"`

	TimeoutSeconds int `json:"timeout_seconds" mapstructure:"timeout_seconds" validate:"gte=0"`
}

// Credentials returns the parsed key list.
func (g GeminiConfig) Credentials() domain.CredentialSet {
	return domain.ParseCredentials(g.APIKey)
}

// Timeout returns the upstream HTTP timeout.
func (g GeminiConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// OpenAIConfig configures the secondary provider.
type OpenAIConfig struct {
	// APIKey is one key or a comma-separated list. Empty disables the provider.
	APIKey string `json:"-" mapstructure:"api_key"`

	Model   string `json:"model" mapstructure:"model"`
	BaseURL string `json:"base_url" mapstructure:"base_url" validate:"omitempty,url"`

	// MaxTokens bounds the completion length.
	MaxTokens int `json:"max_tokens" mapstructure:"max_tokens" validate:"gt=0"`

	// Temperature is the sampling temperature.
	Temperature float64 `json:"temperature" mapstructure:"temperature" validate:"gte=0,lte=2"`

	TimeoutSeconds int `json:"timeout_seconds" mapstructure:"timeout_seconds" validate:"gte=0"`
}

// Credentials returns the parsed key list.
func (o OpenAIConfig) Credentials() domain.CredentialSet {
	return domain.ParseCredentials(o.APIKey)
}

// Timeout returns the upstream HTTP timeout.
func (o OpenAIConfig) Timeout() time.Duration {
	return time.Duration(o.TimeoutSeconds) * time.Second
}

// AssistantConfig selects the assistant's data profile.
type AssistantConfig struct {
	// Profile is the name of a built-in profile (india, global).
	Profile string `json:"profile" mapstructure:"profile" validate:"required,profile"`
}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	// AllowedOrigins lists permitted origins; "*" allows any.
	AllowedOrigins []string `json:"allowed_origins" mapstructure:"allowed_origins" validate:"min=1"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level" mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`

	// Quiet disables the coloured console banner.
	Quiet bool `json:"quiet" mapstructure:"quiet"`
}

// Profile resolves the configured assistant profile.
func (c *Configuration) Profile() domain.Profile {
	p, ok := domain.LookupProfile(domain.ProfileName(c.Assistant.Profile))
	if !ok {
		p, _ = domain.LookupProfile(domain.ProfileIndia)
	}
	return p
}

// Secrets returns every configured credential, for log redaction.
func (c *Configuration) Secrets() []string {
	secrets := c.Providers.Gemini.Credentials().Keys()
	return append(secrets, c.Providers.OpenAI.Credentials().Keys()...)
}

// ProviderOrder names the providers that will be tried, in order.
func (c *Configuration) ProviderOrder() []string {
	order := make([]string, 0, 3)
	if !c.Providers.Gemini.Credentials().Empty() {
		order = append(order, domain.ProviderGemini.String())
	}
	if !c.Providers.OpenAI.Credentials().Empty() {
		order = append(order, domain.ProviderOpenAI.String())
	}
	return append(order, domain.ProviderFallback.String())
}

var validate = newValidator()

// newValidator builds a validator that reports fields by their
// mapstructure path (e.g. "server.port").
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("profile", func(fl validator.FieldLevel) bool {
		_, ok := domain.LookupProfile(domain.ProfileName(fl.Field().String()))
		return ok
	})
	return v
}

// Validate validates the configuration and returns an error if required fields are missing.
func (c *Configuration) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ConfigError{Op: "validate", Err: err}
	}

	validationErrors := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		validationErrors = append(validationErrors, describeFieldError(fe))
	}
	return &ValidationError{Errors: validationErrors}
}

// describeFieldError renders one validator failure as a readable message.
func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Configuration.")
	switch fe.Tag() {
	case "profile":
		return fmt.Sprintf("%s '%v' is invalid, must be one of: %s", field, fe.Value(), strings.Join(domain.ProfileNames(), ", "))
	case "oneof":
		return fmt.Sprintf("%s '%v' is invalid, must be one of: %s", field, fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min", "max", "gte", "lte", "gt":
		return fmt.Sprintf("%s must satisfy %s=%s (got %v)", field, fe.Tag(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed '%s' validation", field, fe.Tag())
	}
}
