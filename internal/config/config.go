// Package config loads clientbook settings from defaults, an optional JSON
// file and CLIENTBOOK_ environment variables, in that order of precedence.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "CLIENTBOOK_"

// Configuration represents the clientbook settings
type Configuration struct {
	DataFile      string `koanf:"data_file" validate:"required"`
	StorageDriver string `koanf:"storage_driver" validate:"required,oneof=json sqlite"`
	LogLevel      string `koanf:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat     string `koanf:"log_format" validate:"required,oneof=text json"`
	HTTPAddr      string `koanf:"http_addr" validate:"required,hostname_port"`
}

// Load reads configuration. An empty path skips the file layer; a path that
// does not exist is an error.
// Priority: Environment variables > Config file > Defaults
func Load(path string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints. Callers that override fields after Load
// run it again.
func (c *Configuration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// SlogLevel maps LogLevel onto slog.
func (c *Configuration) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// envTransform converts environment variable names to config keys
// Example: CLIENTBOOK_DATA_FILE -> data_file
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
