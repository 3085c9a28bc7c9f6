package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/opencode-ai/contrast-audit/internal/logging"
	"github.com/spf13/cobra"
)

const watchDebounce = 150 * time.Millisecond

func (a *app) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [theme-file]",
		Short: "Re-run the audit whenever the theme file changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			themeFile := a.cfg.ThemeFile
			if len(args) > 0 {
				themeFile = args[0]
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.watch(ctx, themeFile)
		},
	}
}

// watch audits themeFile once, then again after each change until ctx ends.
// The parent directory is watched so editors that replace the file on save
// are still seen.
func (a *app) watch(ctx context.Context, themeFile string) error {
	logger := logging.Component("watch")

	abs, err := filepath.Abs(themeFile)
	if err != nil {
		return fmt.Errorf("resolve theme path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	a.reaudit(themeFile)
	logger.Info().Str("theme", abs).Msg("watching for changes")

	timer := time.NewTimer(watchDebounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("watch stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || event.Op == fsnotify.Chmod {
				continue
			}
			logger.Debug().Str("op", event.Op.String()).Msg("theme changed")
			timer.Reset(watchDebounce)
		case <-timer.C:
			a.reaudit(themeFile)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("file watcher error")
		}
	}
}

func (a *app) reaudit(themeFile string) {
	err := a.auditOnce(themeFile)
	if err != nil && !errors.Is(err, errViolations) {
		printError(a.errOut, err)
	}
	fmt.Fprintln(a.out)
}
