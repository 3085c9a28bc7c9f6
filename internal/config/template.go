package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Template is the commented config written by `contrast-audit init`.
const Template = `# contrast-audit Configuration File
# Values here are overridden by CONTRAST_AUDIT_* environment variables and flags.

# Theme source audited when no path argument is given.
theme_file: editor/themes/theme_classic.cpp

# Background every color is compared against (#RRGGBB or #RRGGBBAA).
background: "#333333"

# Print suggested replacement colors for each violation.
fix: false

# Report format: text, json or yaml.
format: text

# Terminal colors: auto, always or never.
color: auto

logging:
  # trace, debug, info, warn, error
  level: warn
  # console or json
  format: console
`

// WriteTemplate writes Template to dir/config.yaml. It returns written=false
// without touching the file when one exists and force is not set.
func WriteTemplate(dir string, force bool) (path string, written bool, err error) {
	if dir == "" {
		return "", false, fmt.Errorf("config directory is required")
	}
	path = filepath.Join(dir, "config.yaml")

	if _, statErr := os.Stat(path); statErr == nil && !force {
		return path, false, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return path, false, fmt.Errorf("create config dir %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(Template), 0o644); err != nil {
		return path, false, fmt.Errorf("write config %s: %w", path, err)
	}
	return path, true, nil
}
