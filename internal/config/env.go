package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv builds the environment layer of the configuration. A nil
// environ reads the process environment; tests pass an explicit map.
//
// Unset variables leave zero values, which the builder treats as "not
// provided" when merging layers.
func parseEnv(environ map[string]string) (*StructuredConfig, error) {
	cfg, err := env.ParseAsWithOptions[StructuredConfig](env.Options{Environment: environ})
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
