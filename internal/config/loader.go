// Package config provides configuration management.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultConfigName = "config"
	defaultConfigType = "yaml"
	envPrefix         = "CODERED"
)

// legacyEnv maps config keys to the bare environment variable names the
// service has always accepted. They are consulted after the prefixed form.
var legacyEnv = map[string]string{
	"server.port":               "PORT",
	"providers.gemini.api_key":  "GEMINI_API_KEY",
	"providers.gemini.model":    "GEMINI_MODEL",
	"providers.gemini.base_url": "GEMINI_BASE_URL",
	"providers.openai.api_key":  "OPENAI_API_KEY",
	"providers.openai.model":    "OPENAI_MODEL",
	"providers.openai.base_url": "OPENAI_BASE_URL",
}

// Load builds the configuration.
// Priority order (highest to lowest):
//  1. Environment variables (CODERED_ prefixed, then the bare legacy names)
//  2. .env file in the working directory (loaded into the environment, never
//     overriding variables that are already set)
//  3. config.yaml (configPath if given, else ., ./configs, /etc/codered)
//  4. Default values
func Load(configPath string) (*Configuration, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, &ConfigError{
			Op:  "read_dotenv",
			Err: fmt.Errorf("failed to parse .env file: %w", err),
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName(defaultConfigName)
	v.SetConfigType(defaultConfigType)
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/codered")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := bindLegacyEnv(v); err != nil {
		return nil, &ConfigError{Op: "bind_env", Err: err}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, &ConfigError{
				Op:  "read",
				Err: fmt.Errorf("failed to read config file: %w", err),
			}
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigError{
			Op:  "unmarshal",
			Err: fmt.Errorf("failed to unmarshal config: %w", err),
		}
	}

	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// bindLegacyEnv binds each key to its prefixed variable first and its bare
// legacy name second; Viper uses the first one that is set.
func bindLegacyEnv(v *viper.Viper) error {
	replacer := strings.NewReplacer(".", "_")
	for key, legacy := range legacyEnv {
		prefixed := envPrefix + "_" + strings.ToUpper(replacer.Replace(key))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}
	return nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.read_timeout_seconds", 30)
	v.SetDefault("server.write_timeout_seconds", 60)
	v.SetDefault("server.shutdown_timeout_seconds", 15)

	// Provider defaults
	v.SetDefault("providers.gemini.api_key", "")
	v.SetDefault("providers.gemini.model", "gemini-1.5-flash-latest")
	v.SetDefault("providers.gemini.base_url", "")
	v.SetDefault("providers.gemini.timeout_seconds", 30)
	v.SetDefault("providers.openai.api_key", "")
	v.SetDefault("providers.openai.model", "gpt-3.5-turbo")
	v.SetDefault("providers.openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("providers.openai.max_tokens", 256)
	v.SetDefault("providers.openai.temperature", 0.7)
	v.SetDefault("providers.openai.timeout_seconds", 30)

	// Assistant defaults
	v.SetDefault("assistant.profile", "india")

	// CORS defaults
	v.SetDefault("cors.allowed_origins", []string{"*"})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.quiet", false)
}
