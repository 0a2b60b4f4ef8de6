package ui

import (
	"fmt"
	"strconv"
	"strings"

	"arsenal/internal/derive"

	"github.com/charmbracelet/lipgloss"
)

// BarChart draws the DPS ranking. Bars must be drawn in the order given.
type BarChart interface {
	Render(bars []derive.ChartBar, width int) string
}

const (
	barGlyph       = "█"
	minBarCells    = 10
	defaultBarArea = 40
)

// LipglossBarChart draws one horizontal bar per weapon, labelled by name,
// sized relative to the largest DPS and colored by category.
type LipglossBarChart struct {
	Styles Styles
}

// NewBarChart returns the default chart renderer.
func NewBarChart(styles Styles) *LipglossBarChart {
	return &LipglossBarChart{Styles: styles}
}

// Render implements BarChart. A width below the label columns falls back to
// a fixed bar area.
func (c *LipglossBarChart) Render(bars []derive.ChartBar, width int) string {
	if len(bars) == 0 {
		return c.Styles.Muted.Render("no weapons match")
	}

	nameW, valueW, peak := 0, 0, 0
	for _, b := range bars {
		nameW = max(nameW, lipgloss.Width(b.Name))
		valueW = max(valueW, len(strconv.Itoa(b.DPS)))
		peak = max(peak, b.DPS)
	}

	area := width - nameW - valueW - 3
	if width <= 0 {
		area = defaultBarArea
	}
	area = max(area, minBarCells)

	var sb strings.Builder
	for i, b := range bars {
		if i > 0 {
			sb.WriteString("\n")
		}
		bar := lipgloss.NewStyle().Foreground(CategoryColor(b.Category)).
			Render(strings.Repeat(barGlyph, barLength(b.DPS, peak, area)))
		fmt.Fprintf(&sb, "%s %s %s",
			c.Styles.Body.Render(padRight(b.Name, nameW)),
			bar,
			c.Styles.Bold.Render(strconv.Itoa(b.DPS)))
	}
	return sb.String()
}

// barLength scales dps into area cells. Any positive value gets at least one
// cell.
func barLength(dps, peak, area int) int {
	if dps <= 0 || peak <= 0 {
		return 0
	}
	n := dps * area / peak
	return max(n, 1)
}

func padRight(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// ChartTitle is the heading above the chart, e.g. "DPS top 10".
func ChartTitle(bars []derive.ChartBar) string {
	return fmt.Sprintf("DPS top %d", len(bars))
}
