// Package config loads runner settings from an optional YAML file and
// layers command-line overrides on top.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/marcodamonte/basics/internal/runner"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds runner settings. Keys match basics.yaml.
type Config struct {
	Banner        string   `mapstructure:"banner"`         // hash | rule
	Color         string   `mapstructure:"color"`          // auto | always | never
	LogLevel      string   `mapstructure:"log_level"`      // debug | info | warn | error
	GroupHeadings string   `mapstructure:"group_headings"` // auto | always | never
	Topics        []string `mapstructure:"topics"`         // empty runs everything
}

// Default returns the settings used when no file or flag says otherwise.
func Default() Config {
	return Config{
		Banner:        string(runner.StyleHash),
		Color:         "auto",
		LogLevel:      "warn",
		GroupHeadings: "auto",
	}
}

// Load reads path (a missing file is not an error), applies overrides and
// validates the result. Override keys use the same names as the file.
func Load(path string, overrides map[string]any) (Config, error) {
	raw := map[string]any{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	for k, v := range overrides {
		raw[k] = v
	}

	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the runner does not understand.
func (c Config) Validate() error {
	if _, ok := runner.ParseStyle(c.Banner); !ok {
		return fmt.Errorf("%w: banner %q", ErrInvalidConfig, c.Banner)
	}
	if !oneOf(c.Color, "auto", "always", "never") {
		return fmt.Errorf("%w: color %q", ErrInvalidConfig, c.Color)
	}
	if !oneOf(c.GroupHeadings, "auto", "always", "never") {
		return fmt.Errorf("%w: group_headings %q", ErrInvalidConfig, c.GroupHeadings)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(c.LogLevel))
	return l, err
}

// Headings maps GroupHeadings to the runner setting.
func (c Config) Headings() runner.Headings {
	switch c.GroupHeadings {
	case "always":
		return runner.HeadingsAlways
	case "never":
		return runner.HeadingsNever
	}
	return runner.HeadingsAuto
}

func oneOf(s string, options ...string) bool {
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}
