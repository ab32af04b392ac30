// Package logging configures the process-global zerolog logger used
// by cmd/pactmatch and the dsl broker client, following freewebtopdf-asset-injector's
// setupLogger pattern (cmd/server/main.go) adapted to the engine's
// Config shape.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pact-foundation/pact-go-match/internal/config"
)

// Setup configures the global zerolog logger's level and output
// writer from cfg.Logging.
func Setup(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339

	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if cfg.Logging.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
