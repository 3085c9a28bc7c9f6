// Package color provides the RGBA color model used by the contrast auditor.
package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// WCAG relative luminance coefficients.
const (
	redCoefficient   = 0.2126
	greenCoefficient = 0.7152
	blueCoefficient  = 0.0722

	// linearThreshold is the sRGB channel value below which the linear segment applies.
	linearThreshold = 0.03928
)

// Color is an RGBA color with every channel in [0,1].
// Values are immutable once constructed; adjustments return a new Color.
type Color struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
	A float64 `json:"a" yaml:"a"`
}

// New constructs a Color, clamping each channel into [0,1].
func New(r, g, b, a float64) Color {
	return Color{
		R: clamp(r),
		G: clamp(g),
		B: clamp(b),
		A: clamp(a),
	}
}

// RGB constructs an opaque Color.
func RGB(r, g, b float64) Color {
	return New(r, g, b, 1.0)
}

// Common colors.
var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
)

// RelativeLuminance returns the WCAG 2.1 relative luminance of the color.
func (c Color) RelativeLuminance() float64 {
	return redCoefficient*linearize(c.R) +
		greenCoefficient*linearize(c.G) +
		blueCoefficient*linearize(c.B)
}

// Hex renders the color as #RRGGBB. Channels are truncated, not rounded.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", to255(c.R), to255(c.G), to255(c.B))
}

// String renders the color in constructor form.
func (c Color) String() string {
	if c.A < 1.0 {
		return fmt.Sprintf("Color(%.3f, %.3f, %.3f, %.3f)", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("Color(%.3f, %.3f, %.3f)", c.R, c.G, c.B)
}

// Colorful returns the RGB part of the color as a go-colorful value.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// FromColorful converts a go-colorful value into an opaque Color.
func FromColorful(c colorful.Color) Color {
	return RGB(c.R, c.G, c.B)
}

func linearize(v float64) float64 {
	if v <= linearThreshold {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func to255(v float64) int {
	return int(v * 255)
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
