// Package runcfg loads the demo runner's configuration using koanf.
package runcfg

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultDemoTimeout bounds a single demo run.
	DefaultDemoTimeout = 10 * time.Second
)

// Config is the runner configuration.
type Config struct {
	Log  LogConfig  `koanf:"log"  validate:"required"`
	Demo DemoConfig `koanf:"demo" validate:"required"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `koanf:"level"  validate:"required,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"required,oneof=text pretty json"`
}

// DemoConfig contains demo execution settings.
type DemoConfig struct {
	Timeout time.Duration `koanf:"timeout" validate:"required,min=100ms"`
}

var configValidate = validator.New()

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"log.level":    "info",
		"log.format":   "pretty",
		"demo.timeout": DefaultDemoTimeout.String(),
	}
}

// Load builds the configuration with the following precedence (highest to
// lowest):
//  1. Environment variables (EFFECTIVEGO_ prefix)
//  2. Config file (path, if non-empty)
//  3. Default values
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("runcfg: loading defaults: %w", err)
	}

	if err := loadFileIfExists(k, path); err != nil {
		return nil, fmt.Errorf("runcfg: loading config file %q: %w", path, err)
	}

	err := k.Load(env.Provider("EFFECTIVEGO_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "EFFECTIVEGO_")),
			"_",
			".",
		)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("runcfg: loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("runcfg: unmarshalling: %w", err)
	}
	if err := configValidate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("runcfg: invalid configuration: %w", err)
	}
	return &cfg, nil
}

// loadFileIfExists loads a YAML config file if it exists. A missing file is
// not an error; a present but unreadable one is.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return k.Load(file.Provider(path), yaml.Parser())
}
