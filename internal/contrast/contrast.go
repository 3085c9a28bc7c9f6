// Package contrast computes WCAG 2.1 contrast ratios and suggests adjusted colors.
package contrast

import (
	"math"

	"github.com/opencode-ai/contrast-audit/internal/color"
)

// WCAG AA thresholds.
const (
	TextRatio      = 4.5
	LargeTextRatio = 3.0
	UIRatio        = 3.0

	DefaultTargetRatio = TextRatio
)

// luminanceOffset is the flare term added to both luminances.
const luminanceOffset = 0.05

// Ratio returns the contrast ratio between two colors, from 1 to 21.
func Ratio(a, b color.Color) float64 {
	return ratioFromLuminance(a.RelativeLuminance(), b.RelativeLuminance())
}

func ratioFromLuminance(l1, l2 float64) float64 {
	lighter := math.Max(l1, l2)
	darker := math.Min(l1, l2)
	return (lighter + luminanceOffset) / (darker + luminanceOffset)
}

// MeetsAAText reports whether ratio satisfies WCAG AA for normal text.
func MeetsAAText(ratio float64) bool {
	return ratio >= TextRatio
}

// MeetsAALargeText reports whether ratio satisfies WCAG AA for large text.
func MeetsAALargeText(ratio float64) bool {
	return ratio >= LargeTextRatio
}

// MeetsAAUI reports whether ratio satisfies WCAG AA for UI components.
func MeetsAAUI(ratio float64) bool {
	return ratio >= UIRatio
}
