// Package display renders scan results as human-readable, optionally
// colored text.
package display

import (
	"fmt"
	"strings"

	"github.com/backmassage/mediareport/internal/term"
)

// BarWidth is the number of cells inside a bar graph's brackets.
const BarWidth = 20

// Bar color thresholds. Stricter than the overall status thresholds.
const (
	BarGoodMin = 90.0
	BarFairMin = 70.0
)

// BarSeverity picks the bar color tier for a single percentage.
func BarSeverity(pct float64) term.Severity {
	switch {
	case pct >= BarGoodMin:
		return term.SeverityGood
	case pct >= BarFairMin:
		return term.SeverityFair
	default:
		return term.SeverityPoor
	}
}

// BarFill returns the number of filled cells for pct, rounded down and
// clamped to [0, BarWidth].
func BarFill(pct float64) int {
	n := int(pct / 100 * BarWidth)
	return max(0, min(BarWidth, n))
}

// Bar renders "[####----]" colored by [BarSeverity].
func Bar(pct float64, pal term.Palette) string {
	fill := BarFill(pct)
	body := strings.Repeat("#", fill) + strings.Repeat("-", BarWidth-fill)
	return pal.Color(BarSeverity(pct)) + "[" + body + "]" + pal.Reset
}

// FormatPercent formats pct with one decimal place, e.g. "66.7%".
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}
