package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const failingTheme = `void make_theme(Ref<Theme> &p_theme) {
	p_theme->set_color("font_color", "Label", Color(0.3, 0.3, 0.3));
	p_theme->set_color("font_color", "Button", Color(0.875, 0.875, 0.875));
	p_theme->set_color("border_color", "Panel", Color(0.375, 0.375, 0.375));
}
`

const passingTheme = `p_theme->set_color("font_color", "Button", Color(0.875, 0.875, 0.875));
p_theme->set_color("border_color", "Panel", Color(0.875, 0.875, 0.875));
`

// isolateEnv keeps user config files and color env vars out of CLI runs.
func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, key := range []string{"CONTRAST_AUDIT_BACKGROUND", "CONTRAST_AUDIT_FORMAT", "CONTRAST_AUDIT_THEME_FILE", "CONTRAST_AUDIT_FIX"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return dir
}

func writeTheme(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "theme.cpp")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestAuditReportsViolations(t *testing.T) {
	dir := isolateEnv(t)
	path := writeTheme(t, dir, failingTheme)

	code, out, _ := runCLI(path)

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Auditing theme file: "+path)
	assert.Contains(t, out, "Background color: #333333")
	assert.Contains(t, out, "Found 3 color definitions.")
	assert.Contains(t, out, "1. Label.font_color (Line 2)")
	assert.Contains(t, out, "2. Panel.border_color (Line 4)")
	assert.NotContains(t, out, "Button.font_color")
	assert.NotContains(t, out, "Fixed:")
	assert.NotContains(t, out, "\x1b[")
}

func TestAuditWithFixes(t *testing.T) {
	dir := isolateEnv(t)
	path := writeTheme(t, dir, failingTheme)

	code, out, _ := runCLI("--theme-file", path, "--fix")

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Suggested: #FFFFFF")
	assert.Contains(t, out, `Fixed:     set_color("font_color", "Label", Color(1.000, 1.000, 1.000))`)
}

func TestAuditPasses(t *testing.T) {
	dir := isolateEnv(t)
	path := writeTheme(t, dir, passingTheme)

	code, out, errOut := runCLI(path, "--background", "333333")

	assert.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "All colors pass")
}

func TestAuditFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		args    func(path string) []string
		stdout  string
		stderr  string
	}{
		{
			name:    "missing file",
			content: "",
			args:    func(path string) []string { return []string{path + ".missing"} },
			stderr:  "Theme file not found",
		},
		{
			name:    "no colors",
			content: "// empty theme\n",
			args:    func(path string) []string { return []string{path} },
			stdout:  "No colors found in theme file.",
			stderr:  "No colors found in theme file.",
		},
		{
			name:    "bad background",
			content: passingTheme,
			args:    func(path string) []string { return []string{path, "--background", "#33"} },
			stdout:  "Found 2 color definitions.",
			stderr:  "Invalid background color: #33",
		},
		{
			name:    "bad format",
			content: passingTheme,
			args:    func(path string) []string { return []string{path, "--format", "xml"} },
			stderr:  "unknown format",
		},
		{
			name:    "too many args",
			content: passingTheme,
			args:    func(path string) []string { return []string{path, path} },
			stderr:  "Error:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolateEnv(t)
			path := writeTheme(t, dir, tt.content)

			code, out, errOut := runCLI(tt.args(path)...)

			assert.Equal(t, 1, code)
			assert.Contains(t, errOut, tt.stderr)
			if tt.stdout != "" {
				assert.Contains(t, out, tt.stdout)
			}
		})
	}
}

func TestAuditDefaultThemeFromConfig(t *testing.T) {
	dir := isolateEnv(t)
	path := writeTheme(t, dir, passingTheme)

	configPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("theme_file: "+path+"\n"), 0644))

	code, out, errOut := runCLI("--config", configPath)
	assert.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Auditing theme file: "+path)
}

func TestAuditEnvBackground(t *testing.T) {
	dir := isolateEnv(t)
	path := writeTheme(t, dir, passingTheme)
	t.Setenv("CONTRAST_AUDIT_BACKGROUND", "#FFFFFF")

	code, out, _ := runCLI(path)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Background color: #FFFFFF")

	// Flags win over the environment.
	code, _, _ = runCLI(path, "--background", "#333333")
	assert.Equal(t, 0, code)
}

func TestAuditJSON(t *testing.T) {
	dir := isolateEnv(t)
	path := writeTheme(t, dir, failingTheme)

	code, out, _ := runCLI(path, "--format", "json")
	assert.Equal(t, 1, code)

	var decoded struct {
		Entries    int  `json:"entries"`
		Passed     bool `json:"passed"`
		Violations []struct {
			Widget      string `json:"widget"`
			Requirement string `json:"requirement"`
		} `json:"violations"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 3, decoded.Entries)
	assert.False(t, decoded.Passed)
	require.Len(t, decoded.Violations, 2)
	assert.Equal(t, "WCAG AA UI (3:1)", decoded.Violations[1].Requirement)
}

func TestAuditYAMLNoColors(t *testing.T) {
	dir := isolateEnv(t)
	path := writeTheme(t, dir, "nothing to see\n")

	code, out, errOut := runCLI(path, "--format", "yaml")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "entries: 0")
	assert.True(t, strings.Contains(errOut, "No colors found"))
}

func TestAuditSkippedDeclarationReportedOnce(t *testing.T) {
	dir := isolateEnv(t)
	path := writeTheme(t, dir, `p_theme->set_color("font_color", "Button", Color(0.875, 0.875, 0.875));
p_theme->set_color("font_color", "Label", Color(0.5, 0.5));
`)

	code, out, errOut := runCLI(path)
	assert.Equal(t, 0, code, errOut)
	assert.Equal(t, 1, strings.Count(out, "Warning: could not parse color at line 2"))
	assert.Contains(t, out, "Found 1 color definitions.")
	assert.NotContains(t, errOut, "could not parse")
	assert.NotContains(t, errOut, "skipping unparseable color")
	assert.NotContains(t, errOut, "\x1b[")

	code, _, errOut = runCLI(path, "--log-level", "debug")
	assert.Equal(t, 0, code, errOut)
	assert.Equal(t, 1, strings.Count(errOut, "skipping unparseable color"))
	assert.NotContains(t, errOut, "\x1b[")
}
