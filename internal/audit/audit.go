package audit

import (
	"github.com/opencode-ai/contrast-audit/internal/color"
	"github.com/opencode-ai/contrast-audit/internal/contrast"
	"github.com/opencode-ai/contrast-audit/internal/scanner"
)

// Violation is a declaration that fails its contrast requirement.
type Violation struct {
	Widget         string      `json:"widget" yaml:"widget"`
	Property       string      `json:"property" yaml:"property"`
	Line           int         `json:"line" yaml:"line"`
	Category       Category    `json:"category" yaml:"category"`
	Current        color.Color `json:"current" yaml:"current"`
	Ratio          float64     `json:"ratio" yaml:"ratio"`
	Requirement    string      `json:"requirement" yaml:"requirement"`
	Suggested      color.Color `json:"suggested" yaml:"suggested"`
	SuggestedRatio float64     `json:"suggested_ratio" yaml:"suggested_ratio"`
	Original       string      `json:"original" yaml:"original"`
}

// Audit compares every entry against background and returns the failures in
// input order.
func Audit(entries []scanner.Entry, background color.Color) []Violation {
	violations := make([]Violation, 0)

	for _, entry := range entries {
		category := Classify(entry.Property)
		ratio := contrast.Ratio(entry.Color, background)
		if category.Passes(ratio) {
			continue
		}

		suggested := contrast.Adjust(entry.Color, background, category.TargetRatio())
		violations = append(violations, Violation{
			Widget:         entry.Widget,
			Property:       entry.Property,
			Line:           entry.Line,
			Category:       category,
			Current:        entry.Color,
			Ratio:          ratio,
			Requirement:    category.Requirement(),
			Suggested:      suggested,
			SuggestedRatio: contrast.Ratio(suggested, background),
			Original:       entry.Original,
		})
	}

	return violations
}
