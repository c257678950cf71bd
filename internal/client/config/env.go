package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

func parseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
