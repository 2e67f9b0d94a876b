package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type envConfig struct {
	BackendBaseAddr  string `env:"API_URL"`
	StoragePath      string `env:"PLANNER_STORAGE_PATH"`
	LogLevel         string `env:"LOG_LEVEL"`
	AuthFallback     *bool  `env:"PLANNER_AUTH_FALLBACK"`
	GenerateFallback *bool  `env:"PLANNER_GENERATE_FALLBACK"`
}

// parseEnv overlays non-empty environment variables. A .env file in the
// working directory is loaded first; it never overrides variables that are
// already set.
func parseEnv(cfg *Config) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	// The switches point at cfg, so env writes them only when set.
	ec := envConfig{
		AuthFallback:     &cfg.AuthFallback,
		GenerateFallback: &cfg.GenerateFallback,
	}
	if err := env.Parse(&ec); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	if ec.BackendBaseAddr != "" {
		cfg.BackendBaseAddr = ec.BackendBaseAddr
	}
	if ec.StoragePath != "" {
		cfg.StoragePath = ec.StoragePath
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	return nil
}
