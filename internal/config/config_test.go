package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := DefaultConfig()
	if *cfg != *want {
		t.Fatalf("expected defaults %+v, got %+v", want, cfg)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("CONTRAST_AUDIT_BACKGROUND", "#000000")
	t.Setenv("CONTRAST_AUDIT_FORMAT", "JSON")
	t.Setenv("CONTRAST_AUDIT_LOGGING_LEVEL", "debug")

	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Background != "#000000" {
		t.Fatalf("expected env background, got %q", cfg.Background)
	}
	if cfg.Format != FormatJSON {
		t.Fatalf("expected json format, got %q", cfg.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.Logging.Level)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	content := "background: \"#FFFFFF\"\nfix: true\nformat: yaml\nlogging:\n  format: json\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(viper.New(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Background != "#FFFFFF" || !cfg.Fix || cfg.Format != FormatYAML {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
	if cfg.ThemeFile != DefaultConfig().ThemeFile {
		t.Fatalf("expected default theme file, got %q", cfg.ThemeFile)
	}
}

func TestLoadProjectFileWins(t *testing.T) {
	dir := isolate(t)

	userDir := filepath.Join(dir, "contrast-audit")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte("background: \"#111111\"\n"), 0644); err != nil {
		t.Fatalf("write user config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".contrast-audit.yaml"), []byte("background: \"#222222\"\n"), 0644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Background != "#222222" {
		t.Fatalf("expected project config to win, got %q", cfg.Background)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	if _, err := Load(viper.New(), filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadInvalidFormat(t *testing.T) {
	isolate(t)
	t.Setenv("CONTRAST_AUDIT_FORMAT", "xml")

	_, err := Load(viper.New(), "")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty background", mutate: func(c *Config) { c.Background = " " }},
		{name: "bad color", mutate: func(c *Config) { c.Color = "sometimes" }},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	var nilCfg *Config
	if err := nilCfg.Validate(); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestDefaultConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	if dir := DefaultConfigDir(); dir != "/custom/config/contrast-audit" {
		t.Fatalf("expected /custom/config/contrast-audit, got %s", dir)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	homeDir, _ := os.UserHomeDir()
	expected := filepath.Join(homeDir, ".config", "contrast-audit")
	if dir := DefaultConfigDir(); dir != expected {
		t.Fatalf("expected %s, got %s", expected, dir)
	}
}

func TestTemplateMatchesDefaults(t *testing.T) {
	dir := isolate(t)

	path, written, err := WriteTemplate(dir, false)
	if err != nil || !written {
		t.Fatalf("WriteTemplate: written=%v err=%v", written, err)
	}

	cfg, err := Load(viper.New(), path)
	if err != nil {
		t.Fatalf("Load template: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Fatalf("template diverges from defaults: %+v", cfg)
	}
}

func TestWriteTemplateExistingNoForce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("existing"), 0644); err != nil {
		t.Fatalf("write existing: %v", err)
	}

	_, written, err := WriteTemplate(dir, false)
	if err != nil || written {
		t.Fatalf("expected skip, written=%v err=%v", written, err)
	}
	content, _ := os.ReadFile(path)
	if string(content) != "existing" {
		t.Fatal("existing config was modified")
	}

	if _, written, err := WriteTemplate(dir, true); err != nil || !written {
		t.Fatalf("expected forced write, written=%v err=%v", written, err)
	}
	content, _ = os.ReadFile(path)
	if !strings.HasPrefix(string(content), "# contrast-audit Configuration File") {
		t.Fatal("forced write did not replace config")
	}
}
