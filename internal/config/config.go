package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file when --config is unset.
const DefaultPath = ".gearsum.yaml"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all gearsum configuration.
type Config struct {
	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Schematic input
	Input InputConfig `yaml:"input"`

	// Gear report rendering
	Report ReportConfig `yaml:"report"`
}

// InputConfig configures how schematic rows are read.
type InputConfig struct {
	MaxLineBytes int `yaml:"max_line_bytes"`
}

// ReportConfig configures the gear report.
type ReportConfig struct {
	Theme string `yaml:"theme"` // light, dark, auto
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Input: InputConfig{
			MaxLineBytes: 1024 * 1024,
		},
		Report: ReportConfig{
			Theme: "auto",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Defaults if config file doesn't exist
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("GEARSUM_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
	if format := os.Getenv("GEARSUM_LOG_FORMAT"); format != "" {
		c.Logging.Format = strings.ToLower(format)
	}
	if v := os.Getenv("GEARSUM_MAX_LINE_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Input.MaxLineBytes = n
		}
	}
	if theme := os.Getenv("GEARSUM_THEME"); theme != "" {
		c.Report.Theme = strings.ToLower(theme)
	}
}

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// ValidFormats lists the accepted logging formats.
var ValidFormats = []string{"json", "console"}

// ValidThemes lists the accepted report themes.
var ValidThemes = []string{"auto", "light", "dark"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("%w: logging level %q (valid: %v)", ErrInvalid, c.Logging.Level, ValidLevels)
	}
	if !contains(ValidFormats, c.Logging.Format) {
		return fmt.Errorf("%w: logging format %q (valid: %v)", ErrInvalid, c.Logging.Format, ValidFormats)
	}
	if c.Input.MaxLineBytes <= 0 {
		return fmt.Errorf("%w: input max_line_bytes must be positive, got %d", ErrInvalid, c.Input.MaxLineBytes)
	}
	if !contains(ValidThemes, c.Report.Theme) {
		return fmt.Errorf("%w: report theme %q (valid: %v)", ErrInvalid, c.Report.Theme, ValidThemes)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
