// Package cli implements the contrast-audit command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/opencode-ai/contrast-audit/internal/config"
	"github.com/opencode-ai/contrast-audit/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time.
var Version = "dev"

// errViolations signals a completed audit with failures. The report has
// already been printed, so it only drives the exit code.
var errViolations = errors.New("contrast violations found")

type app struct {
	out    io.Writer
	errOut io.Writer
	v      *viper.Viper
	cfg    *config.Config

	configPath string
	noColor    bool
	noProgress bool

	// configDir is where `init` writes the config; overridden in tests.
	configDir func() string
}

// Execute runs the CLI with os.Args and returns the process exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{
		out:       stdout,
		errOut:    stderr,
		v:         viper.New(),
		configDir: config.DefaultConfigDir,
	}
	cmd := a.rootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errViolations) {
			printError(stderr, err)
		}
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "contrast-audit [theme-file]",
		Short: "Audit theme colors against WCAG 2.1 AA contrast",
		Long: `Audit color declarations in a theme source file against WCAG 2.1 AA
contrast thresholds (4.5:1 for text, 3:1 for UI components) and optionally
suggest adjusted colors.`,
		Example: `  contrast-audit
  contrast-audit editor/themes/theme_classic.cpp --fix
  contrast-audit --background "#202020" --format json`,
		Version:           Version,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
		RunE:              a.runAudit,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default .contrast-audit.yaml or ~/.config/contrast-audit/config.yaml)")
	flags.String("theme-file", "", "path to theme file to audit")
	flags.String("background", config.DefaultConfig().Background, "background color as hex")
	flags.Bool("fix", false, "show suggested fixes for violations")
	flags.String("format", config.FormatText, "output format (text, json, yaml)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&a.noProgress, "no-progress", false, "disable progress output")

	a.bindFlag("theme_file", root, "theme-file")
	a.bindFlag("background", root, "background")
	a.bindFlag("fix", root, "fix")
	a.bindFlag("format", root, "format")
	a.bindFlag("logging.level", root, "log-level")

	root.AddCommand(a.initCommand())
	root.AddCommand(a.checkCommand())
	root.AddCommand(a.watchCommand())

	return root
}

func (a *app) bindFlag(key string, cmd *cobra.Command, name string) {
	if err := a.v.BindPFlag(key, cmd.PersistentFlags().Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", name, err))
	}
}

func (a *app) loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	if a.noColor {
		cfg.Color = config.ColorNever
	}
	a.cfg = cfg
	return logging.Init(a.errOut, cfg.Logging, a.colorEnabledFor(a.errOut))
}
