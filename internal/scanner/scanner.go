// Package scanner extracts color declarations from theme source text.
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/opencode-ai/contrast-audit/internal/color"
	"github.com/rs/zerolog"
)

// ErrThemeNotFound is returned when the theme file does not exist.
var ErrThemeNotFound = errors.New("theme file not found")

// Entry is one color declaration discovered in theme text.
type Entry struct {
	Widget   string      `json:"widget" yaml:"widget"`
	Property string      `json:"property" yaml:"property"`
	Color    color.Color `json:"color" yaml:"color"`
	Line     int         `json:"line" yaml:"line"`
	Original string      `json:"original" yaml:"original"`
}

// Warning records a declaration that matched but whose color did not parse.
type Warning struct {
	Line int    `json:"line" yaml:"line"`
	Text string `json:"text" yaml:"text"`
	Err  error  `json:"-" yaml:"-"`
}

func (w Warning) String() string {
	return fmt.Sprintf("could not parse color at line %d: %v", w.Line, w.Err)
}

// Result holds the entries and warnings produced by a scan.
type Result struct {
	Entries  []Entry
	Warnings []Warning
}

// declarationPattern matches set_color("property", "Widget", Color(...)).
var declarationPattern = regexp.MustCompile(
	`set_color\s*\(\s*"([^"]+)"\s*,\s*"([^"]+)"\s*,\s*(Color\([^)]+\))`,
)

// Scanner extracts color declarations, logging skipped entries.
type Scanner struct {
	logger zerolog.Logger
}

// NewScanner creates a scanner that logs through logger.
func NewScanner(logger zerolog.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// Scan extracts declarations from text using a scanner that does not log.
func Scan(text string) Result {
	return NewScanner(zerolog.Nop()).Scan(text)
}

// Scan returns declarations in order of occurrence. Declarations whose
// constructor cannot be parsed are skipped and reported as warnings.
func (s *Scanner) Scan(text string) Result {
	result := Result{
		Entries:  []Entry{},
		Warnings: []Warning{},
	}

	for _, loc := range declarationPattern.FindAllStringSubmatchIndex(text, -1) {
		line := lineAt(text, loc[0])
		original := text[loc[0]:loc[1]]
		property := text[loc[2]:loc[3]]
		widget := text[loc[4]:loc[5]]
		constructor := text[loc[6]:loc[7]]

		parsed, err := color.ParseConstructor(constructor)
		if err != nil {
			warning := Warning{Line: line, Text: original, Err: err}
			result.Warnings = append(result.Warnings, warning)
			s.logger.Debug().
				Int("line", line).
				Str("widget", widget).
				Str("property", property).
				Err(err).
				Msg("skipping unparseable color")
			continue
		}

		result.Entries = append(result.Entries, Entry{
			Widget:   widget,
			Property: property,
			Color:    parsed,
			Line:     line,
			Original: original,
		})
	}

	s.logger.Debug().
		Int("entries", len(result.Entries)).
		Int("warnings", len(result.Warnings)).
		Msg("theme scanned")

	return result
}

// ScanFile reads path fully and scans its contents.
func (s *Scanner) ScanFile(path string) (Result, error) {
	if strings.TrimSpace(path) == "" {
		return Result{}, fmt.Errorf("theme path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("%w: %s", ErrThemeNotFound, path)
		}
		return Result{}, fmt.Errorf("read theme %s: %w", path, err)
	}

	return s.Scan(string(data)), nil
}

func lineAt(text string, offset int) int {
	return strings.Count(text[:offset], "\n") + 1
}
