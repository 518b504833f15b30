// Package config loads CLI configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries the settings shared by the CLI subcommands. The keystore
// path is configuration of the keypair provider, not ambient state: every
// operation receives it explicitly.
type Config struct {
	KeystorePath string `env:"ATTEST_KEYSTORE" envDefault:"oracle_keypair.json"`
}

// Load parses the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
