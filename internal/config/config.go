package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all tempconv configuration.
type Config struct {
	// UI: theme, locale and label overrides
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		UI: *DefaultUIConfig(),
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
			Format:    "json",
		},
	}
}

// DefaultPath returns <user config dir>/tempconv/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, "tempconv", "config.yaml"), nil
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults if config file doesn't exist
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

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
	if locale := os.Getenv("TEMPCONV_LOCALE"); locale != "" {
		c.UI.Locale = locale
	}
	if theme := os.Getenv("TEMPCONV_THEME"); theme != "" {
		c.UI.Theme = strings.ToLower(theme)
	}
	if debug := os.Getenv("TEMPCONV_DEBUG"); debug != "" {
		if on, err := strconv.ParseBool(debug); err == nil {
			c.Logging.DebugMode = on
		}
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("invalid ui.theme: %q (valid: %s, %s, %s)", c.UI.Theme, ThemeAuto, ThemeLight, ThemeDark)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level: %q (valid: debug, info, warn, error)", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging.format: %q (valid: json, console)", c.Logging.Format)
	}

	return nil
}

// LabelsPath resolves ui.labels_file relative to the config file.
func (c *Config) LabelsPath(configPath string) string {
	p := c.UI.LabelsFile
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(configPath), p)
}

// LogPath resolves logging.file, defaulting to tempconv.log beside the
// config file.
func (c *Config) LogPath(configPath string) string {
	p := c.Logging.File
	if p == "" {
		return filepath.Join(filepath.Dir(configPath), "tempconv.log")
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(configPath), p)
}
