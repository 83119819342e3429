// Package context renders the design-system advisory block injected ahead of
// visual-inspection tool calls.
//
// The template wording is a contract with the consumer prompt: the section
// headers, entry-line shapes, and closing skills pointer must not drift.
package context

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maestro-inspector/ctxhook/internal/domain"
)

const placeholder = "  - (none discovered yet)"

// Render produces the advisory text block for a normalized design system.
// It is a pure function: identical input yields byte-identical output.
func Render(ds domain.DesignSystem) string {
	var b strings.Builder

	minContrast := formatNumber(ds.Accessibility.MinContrast)
	minTouch := formatNumber(ds.Accessibility.MinTouchTarget)

	b.WriteString("📐 **Design System Verification Active**\n")
	b.WriteString("\n")
	b.WriteString("Before analyzing this screen/component, check against these design system constraints:\n")
	b.WriteString("\n")

	b.WriteString("**Colors (from design-system.json):**\n")
	writeEntries(&b, ds.Colors)
	b.WriteString("- Verify color consistency across components\n")
	fmt.Fprintf(&b, "- Check contrast ratios meet WCAG AA (%s:1 minimum)\n", minContrast)
	b.WriteString("\n")

	b.WriteString("**Typography:**\n")
	writeEntries(&b, ds.Typography)
	fmt.Fprintf(&b, "- Font sizes should follow %dpx scale\n", ds.Spacing.Unit)
	b.WriteString("- Verify hierarchy and consistency\n")
	b.WriteString("\n")

	b.WriteString("**Spacing:**\n")
	fmt.Fprintf(&b, "- Base unit: %dpx\n", ds.Spacing.Unit)
	fmt.Fprintf(&b, "- Scale: %s\n", joinScale(ds.Spacing.Scale))
	b.WriteString("- Verify padding/margins align to grid\n")
	b.WriteString("- Check component spacing consistency\n")
	b.WriteString("\n")

	b.WriteString("**Accessibility (constraints):**\n")
	fmt.Fprintf(&b, "- Touch targets: minimum %sx%s points\n", minTouch, minTouch)
	fmt.Fprintf(&b, "- Labels required: %t\n", ds.Accessibility.RequireLabels)
	fmt.Fprintf(&b, "- Contrast: minimum %s:1 for normal text, 3:1 for large text\n", minContrast)
	b.WriteString("- Focus indicators: visible and clear\n")
	b.WriteString("\n")

	b.WriteString("**Discovered Patterns:**\n")
	if len(ds.Patterns) == 0 {
		b.WriteString(placeholder + "\n")
	} else {
		for _, p := range ds.Patterns {
			fmt.Fprintf(&b, "  - %s (seen on %d screens)\n", p.Type, p.ScreenCount)
		}
	}
	b.WriteString("\n")

	b.WriteString("**Analysis Questions:**\n")
	b.WriteString("1. Does this component/screen match the design system?\n")
	b.WriteString("2. Are there any inconsistencies with previously seen screens?\n")
	b.WriteString("3. Are accessibility requirements met?\n")
	b.WriteString("4. What patterns or components are being used?\n")
	b.WriteString("5. Should any new patterns be added using maestro_update_constraint?\n")
	b.WriteString("\n")
	b.WriteString("Use the /a11y-check, /color-audit, /typography-audit, and /spacing-audit skills for detailed analysis.\n")

	return b.String()
}

func writeEntries(b *strings.Builder, entries domain.EntryList) {
	if len(entries) == 0 {
		b.WriteString(placeholder + "\n")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(b, "  - %s: %s\n", e.Name, e.Value)
	}
}

func joinScale(scale []int) string {
	parts := make([]string, len(scale))
	for i, s := range scale {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ", ")
}

// formatNumber renders a float without trailing zeros, so whole-number
// constraints print as "44" and fractional ones as "4.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
