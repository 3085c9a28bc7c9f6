package cli

import (
	"io"
	"os"

	"github.com/opencode-ai/contrast-audit/internal/config"
	"golang.org/x/term"
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (a *app) colorEnabled() bool {
	return a.colorEnabledFor(a.out)
}

// colorEnabledFor applies the color setting, NO_COLOR and TTY detection to w.
func (a *app) colorEnabledFor(w io.Writer) bool {
	switch a.cfg.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isTerminal(w)
}
