package contrast

import (
	"math"

	"github.com/opencode-ai/contrast-audit/internal/color"
)

// Adjust suggests a replacement for fg that moves it toward target contrast
// against bg by scaling its RGB channels toward the luminance the ratio needs.
//
// The result is a best-effort suggestion. Uniform RGB scaling does not map
// linearly onto luminance, so the returned color is not guaranteed to reach
// the target and callers should not assume it does.
func Adjust(fg, bg color.Color, target float64) color.Color {
	if target <= 0 {
		target = DefaultTargetRatio
	}

	fgLum := fg.RelativeLuminance()
	bgLum := bg.RelativeLuminance()

	var targetLum float64
	if fgLum > bgLum {
		// fg is the lighter side of the pair: push it lighter.
		targetLum = target*(bgLum+luminanceOffset) - luminanceOffset
	} else {
		targetLum = (bgLum+luminanceOffset)/target - luminanceOffset
	}
	targetLum = math.Max(0, math.Min(1, targetLum))

	// Scaling zero is a no-op, so pure black jumps by the target itself.
	scale := targetLum
	if fgLum != 0 {
		scale = targetLum / fgLum
	}

	return color.New(
		math.Min(1, fg.R*scale),
		math.Min(1, fg.G*scale),
		math.Min(1, fg.B*scale),
		fg.A,
	)
}
