// Package config loads the lined YAML configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the full lined configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Session SessionConfig `yaml:"session"`
	TUI     TUIConfig     `yaml:"tui"`
}

// LogConfig controls the diagnostic logger. Logs never go to stdout.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
	File   string `yaml:"file"`   // empty means stderr
}

// SessionConfig controls the opcode command session.
type SessionConfig struct {
	Strict bool `yaml:"strict"` // check document invariants after every command
}

// TUIConfig controls the terminal editor.
type TUIConfig struct {
	ShowLineNums bool        `yaml:"show_line_numbers"`
	PrintOnExit  bool        `yaml:"print_on_exit"`
	Scroll       string      `yaml:"scroll"` // manual or follow-cursor
	Colors       ColorConfig `yaml:"colors"`
}

// ColorConfig holds lipgloss color strings (ANSI index or hex).
type ColorConfig struct {
	LineNum       string `yaml:"line_number"`
	LineNumActive string `yaml:"line_number_active"`
	Control       string `yaml:"control"`
}

// Env var overrides, applied after the file.
const (
	EnvLogLevel = "LINED_LOG_LEVEL"
	EnvLogFile  = "LINED_LOG_FILE"
)

func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		TUI: TUIConfig{
			ShowLineNums: true,
			Scroll:       "manual",
			Colors: ColorConfig{
				LineNum:       "240",
				LineNumActive: "250",
				Control:       "204",
			},
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path (if path is
// not empty) and then with environment overrides. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Log.File = v
	}
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q (must be debug, info, warn, or error)", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format: %q (must be console or json)", c.Log.Format)
	}
	switch c.TUI.Scroll {
	case "manual", "follow-cursor":
	default:
		return fmt.Errorf("invalid tui scroll: %q (must be manual or follow-cursor)", c.TUI.Scroll)
	}
	return nil
}
