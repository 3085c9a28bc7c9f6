package cli

import (
	"fmt"

	"github.com/opencode-ai/contrast-audit/internal/config"
	"github.com/spf13/cobra"
)

func (a *app) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long:  "Write a commented default config to ~/.config/contrast-audit/config.yaml (or $XDG_CONFIG_HOME).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.configDir()
			if dir == "" {
				return &PreflightError{
					Message: "Could not determine config directory",
					Hint:    "Set XDG_CONFIG_HOME or HOME",
				}
			}

			path, written, err := config.WriteTemplate(dir, force)
			if err != nil {
				return err
			}
			if !written {
				fmt.Fprintf(a.out, "Config already exists at %s (use --force to overwrite)\n", path)
				return nil
			}
			fmt.Fprintf(a.out, "Wrote config to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
