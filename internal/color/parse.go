package color

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidFormat is matched by every FormatError via errors.Is.
var ErrInvalidFormat = errors.New("invalid color format")

// FormatError describes text that could not be parsed as a color.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Input)
}

// Is reports whether target is ErrInvalidFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

var constructorPattern = regexp.MustCompile(
	`Color\s*\(\s*([\d.]+)\s*,\s*([\d.]+)\s*,\s*([\d.]+)(?:\s*,\s*([\d.]+))?\s*\)`,
)

// ParseHex parses #RRGGBB or #RRGGBBAA. The leading '#' is optional.
func ParseHex(value string) (Color, error) {
	digits := strings.TrimLeft(value, "#")
	if len(digits) != 6 && len(digits) != 8 {
		return Color{}, &FormatError{Input: value, Reason: "invalid hex color"}
	}

	rgb, err := colorful.Hex("#" + digits[:6])
	if err != nil || !isHex(digits[:6]) {
		return Color{}, &FormatError{Input: value, Reason: "invalid hex color"}
	}

	c := FromColorful(rgb)
	if len(digits) == 8 {
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return Color{}, &FormatError{Input: value, Reason: "invalid hex color"}
		}
		c.A = float64(a) / 255.0
	}
	return c, nil
}

// ParseConstructor parses the first Color(r, g, b[, a]) call found in text.
func ParseConstructor(text string) (Color, error) {
	match := constructorPattern.FindStringSubmatch(text)
	if match == nil {
		return Color{}, &FormatError{Input: text, Reason: "invalid Color constructor"}
	}

	channels := make([]float64, 0, 4)
	for _, raw := range match[1:] {
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Color{}, &FormatError{Input: text, Reason: fmt.Sprintf("invalid Color component %q", raw)}
		}
		channels = append(channels, v)
	}

	alpha := 1.0
	if len(channels) == 4 {
		alpha = channels[3]
	}
	return New(channels[0], channels[1], channels[2], alpha), nil
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
