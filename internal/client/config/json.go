package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/tripplanner/internal/flagx"
)

// JsonConfig is the on-disk shape. Keys that are absent leave the
// corresponding setting untouched.
type JsonConfig struct {
	BackendBaseAddr  *string `json:"api_url"`
	StoragePath      *string `json:"storage_path"`
	LogLevel         *string `json:"log_level"`
	AuthFallback     *bool   `json:"auth_fallback"`
	GenerateFallback *bool   `json:"generate_fallback"`
}

func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if jc.BackendBaseAddr != nil {
		cfg.BackendBaseAddr = *jc.BackendBaseAddr
	}
	if jc.StoragePath != nil {
		cfg.StoragePath = *jc.StoragePath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.AuthFallback != nil {
		cfg.AuthFallback = *jc.AuthFallback
	}
	if jc.GenerateFallback != nil {
		cfg.GenerateFallback = *jc.GenerateFallback
	}
	return nil
}
