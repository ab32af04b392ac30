// Command pactmatch is a thin CLI front end over the matching engine:
// it loads a pact-shaped request/response pair from disk, decodes its
// matching rules into internal/matching/rules.Category values, and
// reports mismatches against an actual HTTP interaction captured the
// same way. It exercises the engine end to end the way a contract
// test runner would, without implementing one.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/pact-foundation/pact-go-match/internal/config"
	"github.com/pact-foundation/pact-go-match/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadRuntime() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.Setup(cfg)
	log.Debug().Str("diff_config", cfg.Matching.DiffConfig).Msg("pactmatch runtime configured")
	return cfg, nil
}
