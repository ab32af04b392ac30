// Package config loads the matching engine's runtime configuration
// from environment variables (and an optional .env file), modeled on
// freewebtopdf-asset-injector's config layer but reduced to what the engine and its
// CLI actually need: no server/cache/community sections, since the
// engine is a pure library with a thin CLI front end.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/pact-foundation/pact-go-match/internal/matcherror"
)

// Config holds all configuration for the pact-go-match CLI and any
// service embedding the matching engine.
type Config struct {
	Broker struct {
		BaseURL string        `env:"PACT_BROKER_BASE_URL"`
		Token   string        `env:"PACT_BROKER_TOKEN"`
		Timeout time.Duration `env:"PACT_BROKER_TIMEOUT" envDefault:"10s"`
	}

	Matching struct {
		// DiffConfig names a top-level body diff config: "strict"
		// (NoUnexpectedKeys) or "lenient" (AllowUnexpectedKeys). pactmatch
		// validates and logs it at startup; it does not change matching:
		// `match request` always compares bodies strictly and
		// `match response` always leniently.
		DiffConfig string `env:"MATCH_DIFF_CONFIG" envDefault:"lenient" validate:"oneof=strict lenient"`
	}

	Logging struct {
		Level  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
		Format string `env:"LOG_FORMAT" envDefault:"console" validate:"oneof=json console"`
	}
}

// Load loads configuration from environment variables and an optional
// .env file in the working directory, then validates it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates cfg's struct tags.
func Validate(cfg *Config) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	if cfg.Broker.Timeout < time.Millisecond {
		return matcherror.New(matcherror.ErrConfig, "broker timeout must be at least 1ms", cfg.Broker.Timeout)
	}
	return nil
}

func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "oneof":
				messages = append(messages, fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param()))
			default:
				messages = append(messages, fmt.Sprintf("%s failed validation: %s", e.Field(), e.Tag()))
			}
		}
		return matcherror.New(matcherror.ErrConfig, strings.Join(messages, "; "), nil)
	}
	return err
}
