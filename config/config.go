package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"promptlab/ai"
	"promptlab/logger"
)

// DefaultEnvFiles are loaded, when present, before the environment is read.
// Variables already set in the process win.
var DefaultEnvFiles = []string{".env.local", ".env"}

type Config struct {
	Provider  string           `mapstructure:"provider"`
	Model     string           `mapstructure:"model"`
	BaseURL   string           `mapstructure:"base_url"`
	OpenAI    CredentialConfig `mapstructure:"openai"`
	Anthropic CredentialConfig `mapstructure:"anthropic"`
	Log       LogConfig        `mapstructure:"log"`
}

type CredentialConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ServiceType returns the configured backend.
func (c *Config) ServiceType() ai.AiServiceType {
	return ai.AiServiceType(strings.ToLower(c.Provider))
}

// APIKey returns the credential of the configured backend, possibly empty.
func (c *Config) APIKey() string {
	if c.ServiceType() == ai.AnthropicServiceType {
		return c.Anthropic.APIKey
	}
	return c.OpenAI.APIKey
}

// ResolvedModel returns the configured model or the backend default.
func (c *Config) ResolvedModel() string {
	if c.Model != "" {
		return c.Model
	}
	return ai.DefaultModel(c.ServiceType())
}

// ProviderOptions returns what the backend needs to reach its endpoint.
func (c *Config) ProviderOptions() ai.Options {
	return ai.Options{
		APIKey:  c.APIKey(),
		BaseURL: c.BaseURL,
	}
}

// Validate checks configuration for issues and returns warnings. A missing
// credential is not one of them: the service reports it.
func (c *Config) Validate() []string {
	var warnings []string

	known := false
	for _, t := range ai.ServiceTypes {
		if c.ServiceType() == t {
			known = true
		}
	}
	if !known {
		warnings = append(warnings, fmt.Sprintf("provider '%s' is not supported (use openai or anthropic)", c.Provider))
	}

	if _, ok := logger.ParseLevel(c.Log.Level); !ok {
		warnings = append(warnings, fmt.Sprintf("log level '%s' is unknown, using warn", c.Log.Level))
	}

	return warnings
}

// Load reads the optional env files, the optional config file at path and the
// environment (PROMPTLAB_*, OPENAI_API_KEY, ANTHROPIC_API_KEY).
func Load(path string, envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("loading %s: %w", file, err)
		}
		log.Debug().Str("component", logger.CONFIG).Str("file", file).Msg("Loaded env file")
	}

	v := viper.New()
	v.SetDefault("provider", string(ai.OpenAiServiceType))
	v.SetDefault("model", "")
	v.SetDefault("base_url", "")
	v.SetDefault("log.level", "warn")

	v.SetEnvPrefix("PROMPTLAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("openai.api_key", "OPENAI_API_KEY"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("anthropic.api_key", "ANTHROPIC_API_KEY"); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}
