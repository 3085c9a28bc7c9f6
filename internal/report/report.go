// Package report renders audit outcomes as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/opencode-ai/contrast-audit/internal/audit"
	"github.com/opencode-ai/contrast-audit/internal/config"
	"github.com/opencode-ai/contrast-audit/internal/contrast"
	"gopkg.in/yaml.v3"
)

const ruleWidth = 100

// Report is the renderable form of an audit outcome.
type Report struct {
	RunID       string            `json:"run_id" yaml:"run_id"`
	ThemeFile   string            `json:"theme_file" yaml:"theme_file"`
	Background  string            `json:"background" yaml:"background"`
	GeneratedAt time.Time         `json:"generated_at" yaml:"generated_at"`
	Entries     int               `json:"entries" yaml:"entries"`
	Passed      bool              `json:"passed" yaml:"passed"`
	Summary     []CategorySummary `json:"summary" yaml:"summary"`
	Warnings    []WarningRecord   `json:"warnings" yaml:"warnings"`
	Violations  []audit.Violation `json:"violations" yaml:"violations"`
}

// CategorySummary counts checked and failed entries for one category.
type CategorySummary struct {
	Category audit.Category `json:"category" yaml:"category"`
	Checked  int            `json:"checked" yaml:"checked"`
	Failed   int            `json:"failed" yaml:"failed"`
}

// WarningRecord is a skipped declaration.
type WarningRecord struct {
	Line    int    `json:"line" yaml:"line"`
	Message string `json:"message" yaml:"message"`
}

// New builds a report from an outcome.
func New(outcome *audit.Outcome) *Report {
	r := &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Summary:     []CategorySummary{},
		Warnings:    []WarningRecord{},
		Violations:  []audit.Violation{},
	}
	if outcome == nil {
		return r
	}

	r.ThemeFile = outcome.ThemeFile
	r.Background = outcome.BackgroundText
	r.Entries = len(outcome.Entries)
	r.Passed = outcome.Passed()
	if outcome.Violations != nil {
		r.Violations = outcome.Violations
	}
	for _, w := range outcome.Warnings {
		r.Warnings = append(r.Warnings, WarningRecord{Line: w.Line, Message: w.String()})
	}

	counts := make(map[audit.Category]*CategorySummary)
	order := []audit.Category{audit.CategoryText, audit.CategoryUI, audit.CategoryDefault}
	for _, c := range order {
		counts[c] = &CategorySummary{Category: c}
	}
	for _, e := range outcome.Entries {
		counts[audit.Classify(e.Property)].Checked++
	}
	for _, v := range r.Violations {
		counts[v.Category].Failed++
	}
	for _, c := range order {
		if counts[c].Checked > 0 {
			r.Summary = append(r.Summary, *counts[c])
		}
	}

	return r
}

// Options control text rendering.
type Options struct {
	ShowFixes bool
	Color     bool
	Palette   Palette
}

// Renderer writes reports to an output stream.
type Renderer struct {
	out    io.Writer
	opts   Options
	styles Styles
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer, opts Options) *Renderer {
	if opts.Palette.Name == "" {
		opts.Palette = DefaultPalette
	}
	return &Renderer{
		out:    out,
		opts:   opts,
		styles: BuildStyles(out, opts.Palette, opts.Color),
	}
}

// Render writes r in the given format.
func (rd *Renderer) Render(r *Report, format string) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(rd.out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.FormatYAML:
		enc := yaml.NewEncoder(rd.out)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		return enc.Close()
	case config.FormatText, "":
		return rd.renderText(r)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// Header writes the audited file and background lines.
func (rd *Renderer) Header(themeFile, background string) {
	fmt.Fprintf(rd.out, "%s %s\n", rd.styles.Title.Render("Auditing theme file:"), themeFile)
	fmt.Fprintf(rd.out, "%s %s\n", rd.styles.Title.Render("Background color:"), background)
}

// Count writes the number of declarations found.
func (rd *Renderer) Count(entries int) {
	fmt.Fprintf(rd.out, "Found %d color definitions.\n", entries)
}

// Failure writes a one-line error message.
func (rd *Renderer) Failure(message string) {
	fmt.Fprintln(rd.out, rd.styles.Error.Render(message))
}

func (rd *Renderer) renderText(r *Report) error {
	rd.Header(r.ThemeFile, r.Background)
	for _, w := range r.Warnings {
		fmt.Fprintln(rd.out, rd.styles.Warning.Render("Warning: "+w.Message))
	}
	rd.Count(r.Entries)

	if len(r.Violations) == 0 {
		fmt.Fprintln(rd.out)
		fmt.Fprintln(rd.out, rd.styles.Success.Render("✅ All colors pass WCAG 2.1 AA contrast requirements!"))
		return nil
	}

	fmt.Fprintln(rd.out)
	fmt.Fprintln(rd.out, rd.styles.Error.Render(fmt.Sprintf("❌ Found %d contrast violations:", len(r.Violations))))
	fmt.Fprintln(rd.out)
	fmt.Fprintln(rd.out, strings.Repeat("=", ruleWidth))

	for i, v := range r.Violations {
		rd.writeViolation(i+1, v)
		fmt.Fprintln(rd.out, rd.styles.Muted.Render(strings.Repeat("-", ruleWidth)))
	}

	fmt.Fprintln(rd.out)
	rows := make([][]string, 0, len(r.Summary))
	for _, s := range r.Summary {
		rows = append(rows, []string{string(s.Category), s.Category.Requirement(), fmt.Sprint(s.Checked), fmt.Sprint(s.Failed)})
	}
	if err := writeTable(rd.out, []string{"CATEGORY", "REQUIREMENT", "CHECKED", "FAILED"}, rows); err != nil {
		return err
	}

	fmt.Fprintf(rd.out, "\nTotal violations: %d\n", len(r.Violations))
	if !rd.opts.ShowFixes {
		fmt.Fprintln(rd.out, rd.styles.Muted.Render("Run with --fix to see suggested corrections."))
	}
	return nil
}

func (rd *Renderer) writeViolation(n int, v audit.Violation) {
	fmt.Fprintf(rd.out, "\n%d. %s (Line %d)\n", n, rd.styles.Accent.Render(v.Widget+"."+v.Property), v.Line)
	fmt.Fprintf(rd.out, "   Current:  %s%s (ratio: %.2f:1)\n",
		rd.styles.Swatch(v.Current.Colorful().Hex()), v.Current.Hex(), v.Ratio)
	fmt.Fprintf(rd.out, "   Required: %s\n", v.Requirement)

	if !rd.opts.ShowFixes {
		return
	}
	marker := ""
	if !v.Category.Passes(v.SuggestedRatio) {
		marker = rd.styles.Warning.Render(" (best effort, still below target)")
	}
	fmt.Fprintf(rd.out, "   Suggested: %s%s (ratio: %.2f:1)%s\n",
		rd.styles.Swatch(v.Suggested.Colorful().Hex()), v.Suggested.Hex(), v.SuggestedRatio, marker)
	fmt.Fprintf(rd.out, "   Original:  %s\n", v.Original)
	fmt.Fprintf(rd.out, "   Fixed:     %s\n", FixedStatement(v))
}

// FixedStatement reproduces the declaration with the suggested color.
func FixedStatement(v audit.Violation) string {
	return fmt.Sprintf(`set_color("%s", "%s", %s)`, v.Property, v.Widget, v.Suggested.String())
}

// CheckPair describes a single foreground/background comparison.
type CheckPair struct {
	Foreground string  `json:"foreground" yaml:"foreground"`
	Background string  `json:"background" yaml:"background"`
	Ratio      float64 `json:"ratio" yaml:"ratio"`
	Text       bool    `json:"aa_text" yaml:"aa_text"`
	LargeText  bool    `json:"aa_large_text" yaml:"aa_large_text"`
	UI         bool    `json:"aa_ui" yaml:"aa_ui"`
	Suggested  string  `json:"suggested,omitempty" yaml:"suggested,omitempty"`
}

// RenderCheck writes the verdicts for a single pair as a table.
func (rd *Renderer) RenderCheck(p CheckPair, format string) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(rd.out)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case config.FormatYAML:
		data, err := yaml.Marshal(p)
		if err != nil {
			return fmt.Errorf("encode yaml check: %w", err)
		}
		_, err = rd.out.Write(data)
		return err
	}

	fmt.Fprintf(rd.out, "%s on %s: %.2f:1\n", p.Foreground, p.Background, p.Ratio)
	rows := [][]string{
		{"AA text", fmt.Sprintf("%.1f:1", contrast.TextRatio), rd.verdict(p.Text)},
		{"AA large text", fmt.Sprintf("%.1f:1", contrast.LargeTextRatio), rd.verdict(p.LargeText)},
		{"AA UI", fmt.Sprintf("%.1f:1", contrast.UIRatio), rd.verdict(p.UI)},
	}
	if err := writeTable(rd.out, []string{"CHECK", "MINIMUM", "RESULT"}, rows); err != nil {
		return err
	}
	if p.Suggested != "" {
		fmt.Fprintf(rd.out, "Suggested text color: %s%s\n", rd.styles.Swatch(p.Suggested), p.Suggested)
	}
	return nil
}

func (rd *Renderer) verdict(ok bool) string {
	if ok {
		return rd.styles.Success.Render("pass")
	}
	return rd.styles.Error.Render("fail")
}
