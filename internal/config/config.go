// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/abhisek/persona/internal/i18n"
)

// DefaultEnvFile is read when present. A missing file is not an error.
const DefaultEnvFile = ".env"

// Config holds everything the CLI and TUI need at startup.
type Config struct {
	Lang     string `env:"PERSONA_LANG" envDefault:"zh"`
	Seed     uint64 `env:"PERSONA_SEED" envDefault:"0"`
	LogFile  string `env:"PERSONA_LOG_FILE"`
	LogLevel string `env:"PERSONA_LOG_LEVEL" envDefault:"info"`
}

// Load reads envFiles (DefaultEnvFile when none are given) into the
// process environment without overriding variables already set, then
// parses Config from it.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", namedParseError(err))
	}
	return &cfg, nil
}

// namedParseError rewrites env's field-level parse errors to name the
// variable the user actually set.
func namedParseError(err error) error {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return err
	}
	t := reflect.TypeOf(Config{})
	for _, e := range agg.Errors {
		var pe env.ParseError
		if !errors.As(e, &pe) {
			continue
		}
		if f, ok := t.FieldByName(pe.Name); ok {
			if key := f.Tag.Get("env"); key != "" {
				return fmt.Errorf("%s: %w", key, pe.Err)
			}
		}
	}
	return err
}

// Validate rejects settings that would otherwise be silently replaced by
// defaults.
func (c *Config) Validate() error {
	if _, ok := i18n.Parse(c.Lang); !ok {
		return fmt.Errorf("unsupported language %q (use en or zh)", c.Lang)
	}
	return nil
}

// Locale resolves Lang, falling back to the default locale.
func (c *Config) Locale() i18n.Locale {
	return i18n.Resolve(c.Lang)
}
