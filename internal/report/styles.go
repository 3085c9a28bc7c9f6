package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette defines the semantic color roles for terminal output.
type Palette struct {
	Name       string
	Background string
	Text       string
	TextMuted  string
	Accent     string
	Success    string
	Warning    string
	Error      string
}

// DefaultPalette is used on dark terminals.
var DefaultPalette = Palette{
	Name:       "default",
	Background: "#1E1E1E",
	Text:       "#E6E6E6",
	TextMuted:  "#A0A0A0",
	Accent:     "#6CB6FF",
	Success:    "#4EC97A",
	Warning:    "#E5B567",
	Error:      "#FF6B6B",
}

// HighContrastPalette favors visibility on low-contrast terminals.
var HighContrastPalette = Palette{
	Name:       "high-contrast",
	Background: "#000000",
	Text:       "#FFFFFF",
	TextMuted:  "#C0C0C0",
	Accent:     "#00A2FF",
	Success:    "#00FF5A",
	Warning:    "#FFB000",
	Error:      "#FF4040",
}

// Styles contains lipgloss styles derived from a palette.
type Styles struct {
	renderer *lipgloss.Renderer

	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// BuildStyles converts a palette into styles bound to w. When color is false
// every style renders plain text.
func BuildStyles(w io.Writer, palette Palette, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.TrueColor)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		renderer: r,
		Title:    r.NewStyle().Foreground(lipgloss.Color(palette.Text)).Bold(true),
		Text:     r.NewStyle().Foreground(lipgloss.Color(palette.Text)),
		Muted:    r.NewStyle().Foreground(lipgloss.Color(palette.TextMuted)),
		Accent:   r.NewStyle().Foreground(lipgloss.Color(palette.Accent)),
		Success:  r.NewStyle().Foreground(lipgloss.Color(palette.Success)).Bold(true),
		Warning:  r.NewStyle().Foreground(lipgloss.Color(palette.Warning)),
		Error:    r.NewStyle().Foreground(lipgloss.Color(palette.Error)).Bold(true),
	}
}

// Swatch renders a two-cell block filled with hex. It is empty without color.
func (s Styles) Swatch(hex string) string {
	if s.renderer.ColorProfile() == termenv.Ascii {
		return ""
	}
	return s.renderer.NewStyle().Background(lipgloss.Color(hex)).Render("  ") + " "
}
