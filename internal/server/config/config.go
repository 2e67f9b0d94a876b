// Package config loads settings for the reference backend: defaults, an
// optional JSON file (-c/-config or CONFIG), .env plus environment, then
// flags.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the backend.
//
// An empty DatabaseDSN keeps users in memory; otherwise they are stored in
// PostgreSQL. SecretKey signs the HS256 bearer tokens and must be overridden
// outside development.
type Config struct {
	Addr            string        `validate:"required,hostname_port"`
	DatabaseDSN     string
	SecretKey       string        `validate:"required"`
	TokenValidity   time.Duration `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
	LogLevel        string        `validate:"oneof=debug info warn error"`
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.TokenValidity = 24 * time.Hour
	c.ShutdownTimeout = 5 * time.Second
	c.LogLevel = "info"
}

func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
