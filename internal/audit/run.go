package audit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opencode-ai/contrast-audit/internal/color"
	"github.com/opencode-ai/contrast-audit/internal/scanner"
	"github.com/rs/zerolog"
)

// ErrNoColors is returned when the theme file holds no color declarations.
var ErrNoColors = errors.New("no colors found in theme file")

// Options configure a single audit run.
type Options struct {
	// ThemeFile is the theme source to audit.
	ThemeFile string
	// Background is the hex color every entry is compared against.
	Background string
}

// Outcome is the result of a run.
type Outcome struct {
	ThemeFile      string
	BackgroundText string
	Background     color.Color
	Entries        []scanner.Entry
	Warnings       []scanner.Warning
	Violations     []Violation
}

// Passed reports whether every entry met its requirement.
func (o *Outcome) Passed() bool {
	return o != nil && len(o.Entries) > 0 && len(o.Violations) == 0
}

// Run scans the theme file and audits it against the background.
//
// A missing file is returned as an error with no outcome. An empty theme or an
// unparseable background returns the partial outcome together with the error.
func Run(opts Options, logger zerolog.Logger) (*Outcome, error) {
	if strings.TrimSpace(opts.ThemeFile) == "" {
		return nil, errors.New("theme file is required")
	}

	result, err := scanner.NewScanner(logger).ScanFile(opts.ThemeFile)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{
		ThemeFile:      opts.ThemeFile,
		BackgroundText: opts.Background,
		Entries:        result.Entries,
		Warnings:       result.Warnings,
		Violations:     []Violation{},
	}
	if len(result.Entries) == 0 {
		return outcome, ErrNoColors
	}

	background, err := color.ParseHex(opts.Background)
	if err != nil {
		return outcome, fmt.Errorf("parse background: %w", err)
	}
	outcome.Background = background
	outcome.Violations = Audit(result.Entries, background)

	logger.Info().
		Str("theme", opts.ThemeFile).
		Str("background", background.Hex()).
		Int("entries", len(result.Entries)).
		Int("violations", len(outcome.Violations)).
		Msg("audit complete")

	return outcome, nil
}
