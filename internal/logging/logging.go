// Package logging configures the zerolog loggers used across contrast-audit.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/opencode-ai/contrast-audit/internal/config"
	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	base = newLogger(os.Stderr, "console", zerolog.WarnLevel, false)
)

// Init replaces the base logger. Output goes to w (stderr when nil).
// Console output is colored only when color is true.
func Init(w io.Writer, cfg config.LoggingConfig, color bool) error {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	if w == nil {
		w = os.Stderr
	}

	mu.Lock()
	base = newLogger(w, cfg.Format, level, color)
	mu.Unlock()
	return nil
}

// Component returns a child logger tagged with the component name.
func Component(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().Str("component", name).Logger()
}

// ParseLevel maps a level name to a zerolog level. Empty means warn.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

func newLogger(w io.Writer, format string, level zerolog.Level, color bool) zerolog.Logger {
	if format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !color}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
