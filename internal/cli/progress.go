package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/opencode-ai/contrast-audit/internal/config"
)

type progressStep struct {
	out     io.Writer
	label   string
	started time.Time
}

func (a *app) startProgress(label string) *progressStep {
	if !a.progressEnabled() {
		return nil
	}
	fmt.Fprintf(a.errOut, "%s... ", label)
	return &progressStep{
		out:     a.errOut,
		label:   label,
		started: time.Now(),
	}
}

func (p *progressStep) Done() {
	if p == nil {
		return
	}
	fmt.Fprintf(p.out, "done (%s)\n", formatDuration(time.Since(p.started)))
}

func (p *progressStep) Fail(err error) {
	if p == nil {
		return
	}
	if err != nil {
		fmt.Fprintf(p.out, "failed: %v\n", err)
		return
	}
	fmt.Fprintln(p.out, "failed")
}

func (a *app) progressEnabled() bool {
	if a.cfg != nil && a.cfg.Format != config.FormatText {
		return false
	}
	if a.noProgress {
		return false
	}
	if _, ok := os.LookupEnv("CONTRAST_AUDIT_NO_PROGRESS"); ok {
		return false
	}
	if _, ok := os.LookupEnv("NO_PROGRESS"); ok {
		return false
	}
	return isTerminal(a.errOut)
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.String()
	}
	if d < time.Second {
		return d.Round(10 * time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
