// Package audit checks scanned theme colors against WCAG AA thresholds.
package audit

import (
	"strings"

	"github.com/opencode-ai/contrast-audit/internal/contrast"
)

// Category selects which contrast requirement applies to a property.
type Category string

// Categories, in classification precedence order.
const (
	CategoryText    Category = "text"
	CategoryUI      Category = "ui"
	CategoryDefault Category = "default"
)

var (
	textKeywords = []string{"font", "text"}
	uiKeywords   = []string{"border", "outline"}
)

// Classify maps a property name to a category. Text keywords win over UI
// keywords; anything unmatched still gets the default 3:1 requirement.
func Classify(property string) Category {
	lower := strings.ToLower(property)
	if containsAny(lower, textKeywords...) {
		return CategoryText
	}
	if containsAny(lower, uiKeywords...) {
		return CategoryUI
	}
	return CategoryDefault
}

// Requirement returns the human-readable requirement label.
func (c Category) Requirement() string {
	switch c {
	case CategoryText:
		return "WCAG AA Text (4.5:1)"
	case CategoryUI:
		return "WCAG AA UI (3:1)"
	default:
		return "WCAG AA (3:1)"
	}
}

// TargetRatio returns the ratio a suggested color should aim for.
func (c Category) TargetRatio() float64 {
	if c == CategoryText {
		return contrast.TextRatio
	}
	return contrast.UIRatio
}

// Passes reports whether ratio satisfies the category's requirement.
func (c Category) Passes(ratio float64) bool {
	if c == CategoryText {
		return contrast.MeetsAAText(ratio)
	}
	return contrast.MeetsAAUI(ratio)
}

func containsAny(text string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}
