// Package config loads the optional REPL preferences file described in
// SPEC_FULL.md §4.8. It is a purely ambient/ops concern: nothing about
// language semantics depends on it, and a missing or malformed file falls
// back to defaults rather than failing the run.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// ColorMode selects when diagnostics are colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds the REPL's optional settings.
type Config struct {
	Color       ColorMode `yaml:"color"`
	Prompt      string    `yaml:"prompt"`
	HistoryFile string    `yaml:"history_file"`
}

// Default returns the built-in defaults used when no config file exists.
func Default() Config {
	return Config{
		Color:       ColorAuto,
		Prompt:      "> ",
		HistoryFile: "~/.lox_history",
	}
}

// Load reads $HOME/.loxrc.yaml, if present, layering its fields over
// Default(). A missing file is not an error. A malformed file produces a
// warning on warn and falls back to the defaults — config is advisory
// only, never fatal (SPEC_FULL.md §4.8).
func Load(warn func(string)) Config {
	cfg := Default()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}

	path := filepath.Join(home, ".loxrc.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		if warn != nil {
			warn(fmt.Sprintf("ignoring malformed %s: %v", path, err))
		}
		return cfg
	}

	if parsed.Color != "" {
		cfg.Color = parsed.Color
	}
	if parsed.Prompt != "" {
		cfg.Prompt = parsed.Prompt
	}
	if parsed.HistoryFile != "" {
		cfg.HistoryFile = parsed.HistoryFile
	}

	return cfg
}
