package cli

import (
	"errors"
	"fmt"

	"github.com/opencode-ai/contrast-audit/internal/audit"
	"github.com/opencode-ai/contrast-audit/internal/color"
	"github.com/opencode-ai/contrast-audit/internal/config"
	"github.com/opencode-ai/contrast-audit/internal/logging"
	"github.com/opencode-ai/contrast-audit/internal/report"
	"github.com/opencode-ai/contrast-audit/internal/scanner"
	"github.com/spf13/cobra"
)

func (a *app) runAudit(cmd *cobra.Command, args []string) error {
	themeFile := a.cfg.ThemeFile
	if len(args) > 0 {
		themeFile = args[0]
	}
	return a.auditOnce(themeFile)
}

// auditOnce runs a full audit of themeFile and prints the report.
func (a *app) auditOnce(themeFile string) error {
	cfg := a.cfg
	renderer := report.NewRenderer(a.out, report.Options{
		ShowFixes: cfg.Fix,
		Color:     a.colorEnabled(),
	})

	progress := a.startProgress("Auditing " + themeFile)
	outcome, err := audit.Run(audit.Options{
		ThemeFile:  themeFile,
		Background: cfg.Background,
	}, logging.Component("audit"))
	if err != nil {
		progress.Fail(err)
		return a.auditFailure(renderer, themeFile, outcome, err)
	}
	progress.Done()

	if err := renderer.Render(report.New(outcome), cfg.Format); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if !outcome.Passed() {
		return errViolations
	}
	return nil
}

func (a *app) auditFailure(renderer *report.Renderer, themeFile string, outcome *audit.Outcome, err error) error {
	text := a.cfg.Format == config.FormatText
	if text {
		renderer.Header(themeFile, a.cfg.Background)
	}

	switch {
	case errors.Is(err, scanner.ErrThemeNotFound):
		return &PreflightError{
			Message:  fmt.Sprintf("Theme file not found: %s", themeFile),
			Hint:     "Pass the theme path as an argument or set theme_file in the config",
			NextStep: "contrast-audit --help",
			Err:      err,
		}
	case errors.Is(err, audit.ErrNoColors):
		if text {
			renderer.Failure("No colors found in theme file.")
		} else if renderErr := renderer.Render(report.New(outcome), a.cfg.Format); renderErr != nil {
			return fmt.Errorf("render report: %w", renderErr)
		}
		return &PreflightError{
			Message: "No colors found in theme file.",
			Hint:    `Declarations must look like set_color("font_color", "Button", Color(r, g, b))`,
			Err:     err,
		}
	case errors.Is(err, color.ErrInvalidFormat):
		if text && outcome != nil {
			renderer.Count(len(outcome.Entries))
		}
		return &PreflightError{
			Message: fmt.Sprintf("Invalid background color: %s", a.cfg.Background),
			Hint:    "Use #RRGGBB or #RRGGBBAA, with or without the leading #",
			Err:     err,
		}
	default:
		return err
	}
}
