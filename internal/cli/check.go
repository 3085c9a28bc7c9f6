package cli

import (
	"fmt"

	"github.com/opencode-ai/contrast-audit/internal/color"
	"github.com/opencode-ai/contrast-audit/internal/contrast"
	"github.com/opencode-ai/contrast-audit/internal/report"
	"github.com/spf13/cobra"
)

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <foreground> [background]",
		Short: "Check the contrast of a single color pair",
		Long: `Print the contrast ratio of a foreground/background pair and whether it
meets WCAG AA for normal text, large text and UI components. The background
defaults to the configured one.`,
		Example: `  contrast-audit check "#777777" "#FFFFFF"`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bgText := a.cfg.Background
			if len(args) > 1 {
				bgText = args[1]
			}

			fg, err := color.ParseHex(args[0])
			if err != nil {
				return &PreflightError{Message: fmt.Sprintf("Invalid foreground color: %s", args[0]), Err: err}
			}
			bg, err := color.ParseHex(bgText)
			if err != nil {
				return &PreflightError{Message: fmt.Sprintf("Invalid background color: %s", bgText), Err: err}
			}

			pair := checkPair(fg, bg)
			pair.Foreground = args[0]
			pair.Background = bgText

			renderer := report.NewRenderer(a.out, report.Options{Color: a.colorEnabled()})
			if err := renderer.RenderCheck(pair, a.cfg.Format); err != nil {
				return err
			}
			if !pair.Text {
				return errViolations
			}
			return nil
		},
	}
}

func checkPair(fg, bg color.Color) report.CheckPair {
	ratio := contrast.Ratio(fg, bg)
	pair := report.CheckPair{
		Ratio:     ratio,
		Text:      contrast.MeetsAAText(ratio),
		LargeText: contrast.MeetsAALargeText(ratio),
		UI:        contrast.MeetsAAUI(ratio),
	}
	if !pair.Text {
		pair.Suggested = contrast.Adjust(fg, bg, contrast.TextRatio).Hex()
	}
	return pair
}
