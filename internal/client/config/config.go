package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/tripplanner/internal/netx"
	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the planner CLI.
type Config struct {
	BackendBaseAddr  string `validate:"omitempty,url"`
	StoragePath      string `validate:"required"`
	LogLevel         string `validate:"oneof=debug info warn error"`
	AuthFallback     bool
	GenerateFallback bool
}

// LoadDefaults populates c with defaults: simulated mode, a database in the
// user config directory, quiet logging and fallback for generation only.
func (c *Config) LoadDefaults() {
	c.BackendBaseAddr = ""
	c.StoragePath = defaultStoragePath()
	c.LogLevel = "warn"
	c.AuthFallback = false
	c.GenerateFallback = true
}

// Simulated reports whether no backend is configured.
func (c *Config) Simulated() bool {
	return c.BackendBaseAddr == ""
}

func defaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "tripplanner", "planner.db")
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and os.Args, in that order.
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
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	addr, err := netx.NormalizeBaseURL(c.BackendBaseAddr)
	if err != nil {
		return fmt.Errorf("backend address: %w", err)
	}
	c.BackendBaseAddr = addr

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
