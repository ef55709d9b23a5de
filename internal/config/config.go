// Package config loads labnotex settings from YAML with environment
// overrides. Flags are applied on top by the command layer.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"labnotex/internal/output"
)

// Config holds all labnotex configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Units   UnitsConfig   `yaml:"units"`
	Stats   StatsConfig   `yaml:"stats"`
	Serial  SerialConfig  `yaml:"serial"`
	Logging LoggingConfig `yaml:"logging"`
}

type OutputConfig struct {
	Format string `yaml:"format"` // text | tsv | json | xlsx
	Header *bool  `yaml:"header"` // tsv header row, default true
}

// UnitsConfig are free-form labels; values are never converted.
type UnitsConfig struct {
	Concentration string `yaml:"concentration"`
	Volume        string `yaml:"volume"`
}

type StatsConfig struct {
	Alpha         float64 `yaml:"alpha"`
	EqualVariance *bool   `yaml:"equal_variance"`
}

type SerialConfig struct {
	MaxSteps int `yaml:"max_steps"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Environment variables consulted by Load.
const (
	EnvConfig   = "LABNOTEX_CONFIG"
	EnvOutput   = "LABNOTEX_OUTPUT"
	EnvLogLevel = "LABNOTEX_LOG_LEVEL"
	EnvAlpha    = "LABNOTEX_ALPHA"
)

func boolPtr(b bool) *bool { return &b }

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Output:  OutputConfig{Format: output.FormatText, Header: boolPtr(true)},
		Units:   UnitsConfig{Concentration: "mol/L", Volume: "mL"},
		Stats:   StatsConfig{Alpha: 0.05, EqualVariance: boolPtr(true)},
		Serial:  SerialConfig{MaxSteps: 1000},
		Logging: LoggingConfig{Level: "warn"},
	}
}

// DefaultPath resolves the config file location: $LABNOTEX_CONFIG, then
// $XDG_CONFIG_HOME/labnotex/config.yaml, then ~/.config/labnotex/config.yaml.
// It returns "" when none can be determined.
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "labnotex", "config.yaml")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "labnotex", "config.yaml")
	}
	return ""
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error; an empty path skips the file. Values are
// not validated here: flags still apply on top, so callers run Validate once
// they are done, and commands check the sections they use.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parse config %s", path)
			}
		case os.IsNotExist(err):
		default:
			return nil, errors.Wrap(err, "read config")
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	cfg.fillDefaults()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output.Format = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv(EnvAlpha); v != "" {
		a, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return errors.Errorf("%s=%q is not a number", EnvAlpha, v)
		}
		c.Stats.Alpha = a
	}
	return nil
}

// fillDefaults restores keys that a partial YAML file cleared.
func (c *Config) fillDefaults() {
	d := DefaultConfig()
	if c.Output.Format == "" {
		c.Output.Format = d.Output.Format
	}
	if c.Output.Header == nil {
		c.Output.Header = d.Output.Header
	}
	if c.Units.Concentration == "" {
		c.Units.Concentration = d.Units.Concentration
	}
	if c.Units.Volume == "" {
		c.Units.Volume = d.Units.Volume
	}
	if c.Stats.EqualVariance == nil {
		c.Stats.EqualVariance = d.Stats.EqualVariance
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate rejects settings every command depends on. Section values
// that only one command reads are checked by that command.
func (c *Config) Validate() error {
	if !output.ValidFormat(c.Output.Format) {
		return errors.Errorf("output.format must be one of %s, got %q", strings.Join(output.Formats(), ", "), c.Output.Format)
	}
	if !logLevels[c.Logging.Level] {
		return errors.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}

func (s StatsConfig) Validate() error {
	if !(s.Alpha > 0 && s.Alpha < 1) {
		return errors.Errorf("stats.alpha must be between 0 and 1, got %v", s.Alpha)
	}
	return nil
}

func (s SerialConfig) Validate() error {
	if s.MaxSteps < 1 {
		return errors.Errorf("serial.max_steps must be >= 1, got %d", s.MaxSteps)
	}
	return nil
}

// Save writes c as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create config directory")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}
	return errors.Wrap(os.WriteFile(path, data, 0o644), "write config")
}
