// Package summary renders a compact operator-facing overview of the design
// system, used by the show command. Unlike the context block, this output is
// not a consumer contract and favors readability.
package summary

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/maestro-inspector/ctxhook/internal/domain"
)

// Render builds the summary text for a normalized design system.
func Render(ds domain.DesignSystem) string {
	var b strings.Builder
	caser := cases.Title(language.English)

	b.WriteString("# Design System Summary\n\n")
	fmt.Fprintf(&b, "- Colors: %s\n", countLabel(len(ds.Colors), "token"))
	fmt.Fprintf(&b, "- Typography: %s\n", countLabel(len(ds.Typography), "token"))
	fmt.Fprintf(&b, "- Spacing: %dpx base unit, %s\n",
		ds.Spacing.Unit, countLabel(len(ds.Spacing.Scale), "scale step"))
	fmt.Fprintf(&b, "- Accessibility: contrast %.1f:1, touch targets %.0fpt, labels %s\n",
		ds.Accessibility.MinContrast, ds.Accessibility.MinTouchTarget,
		labelsRequirement(ds.Accessibility.RequireLabels))

	if len(ds.Patterns) == 0 {
		b.WriteString("- Patterns: none discovered\n")
		return b.String()
	}

	b.WriteString("- Patterns:\n")
	for _, p := range ds.Patterns {
		fmt.Fprintf(&b, "  - %s (%s)\n",
			caser.String(p.Type), countLabel(p.ScreenCount, "screen"))
	}

	return b.String()
}

func countLabel(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func labelsRequirement(required bool) string {
	if required {
		return "required"
	}
	return "optional"
}
