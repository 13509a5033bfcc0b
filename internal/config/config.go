package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application settings.
type Config struct {
	DatabasePath string `yaml:"database_path"`
	DocumentKey  string `yaml:"document_key"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns the settings used when no config file is present.
func Default() Config {
	return Config{
		DatabasePath: "scrap-auction.db",
		DocumentKey:  "scrap-auction-document",
		LogLevel:     "info",
	}
}

// Load reads a YAML config file and applies environment overrides on top.
// A missing file is not an error: defaults plus environment apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	applyEnv(&cfg)

	if cfg.DatabasePath == "" {
		return Config{}, fmt.Errorf("config: database_path must not be empty")
	}
	return cfg, nil
}

// applyEnv overrides file values with environment variables when set.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SCRAP_AUCTION_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("SCRAP_AUCTION_DOCUMENT_KEY"); v != "" {
		cfg.DocumentKey = v
	}
	if v := os.Getenv("SCRAP_AUCTION_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
