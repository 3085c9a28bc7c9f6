// Package config provides configuration loading for contrast-audit.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CONTRAST_AUDIT_BACKGROUND.
const EnvPrefix = "CONTRAST_AUDIT"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the resolved configuration for a run.
type Config struct {
	// ThemeFile is audited when no path argument is given.
	ThemeFile  string        `mapstructure:"theme_file"`
	Background string        `mapstructure:"background"`
	Fix        bool          `mapstructure:"fix"`
	Format     string        `mapstructure:"format"`
	Color      string        `mapstructure:"color"`
	Logging    LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig controls diagnostic output on stderr.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		ThemeFile:  filepath.Join("editor", "themes", "theme_classic.cpp"),
		Background: "#333333",
		Fix:        false,
		Format:     FormatText,
		Color:      ColorAuto,
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Validate checks that enumerated settings hold known values.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is required")
	}
	if strings.TrimSpace(c.Background) == "" {
		return errors.New("background is required")
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", c.Format)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", c.Color)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown logging format %q", c.Logging.Format)
	}
	return nil
}

// SearchPaths returns config file candidates in precedence order.
func SearchPaths(workDir string) []string {
	paths := make([]string, 0, 2)
	if workDir != "" {
		paths = append(paths, filepath.Join(workDir, ".contrast-audit.yaml"))
	}
	if dir := DefaultConfigDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "config.yaml"))
	}
	return paths
}

// DefaultConfigDir returns the per-user config directory, honoring XDG_CONFIG_HOME.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "contrast-audit")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "contrast-audit")
}

// Load resolves configuration from defaults, the first config file found (or
// path when set), and CONTRAST_AUDIT_* environment variables. Flags bound on v
// by the caller take precedence over all of these.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path == "" {
		workDir, _ := os.Getwd()
		for _, candidate := range SearchPaths(workDir) {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("theme_file", cfg.ThemeFile)
	v.SetDefault("background", cfg.Background)
	v.SetDefault("fix", cfg.Fix)
	v.SetDefault("format", cfg.Format)
	v.SetDefault("color", cfg.Color)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
}
