package ui

import "strings"

// Layout constants for the explorer screen.
const (
	HeaderHeight = 1
	StatusHeight = 1
	FooterHeight = 1 // key help

	// MinPaneRows fits the table header, its rule and one row.
	MinPaneRows = 3

	SplitPaneLeftRatio = 0.62
	SplitPaneDivider   = 2

	MinimumTerminalWidth = 80
	CompactModeWidth     = 130
)

// LayoutConfig provides computed layout dimensions based on terminal size
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	IsCompact      bool
}

// NewLayoutConfig creates a layout configuration for the given terminal size
func NewLayoutConfig(width, height int) LayoutConfig {
	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		IsCompact:      width < CompactModeWidth,
	}
}

// Panes returns the widths of the table pane and the chart pane. In compact
// mode only one of them is on screen at a time and it gets the full width.
func (l LayoutConfig) Panes() (table, chart int) {
	if l.IsCompact {
		return l.TerminalWidth, l.TerminalWidth
	}
	table = int(float64(l.TerminalWidth) * SplitPaneLeftRatio)
	chart = l.TerminalWidth - table - SplitPaneDivider
	return table, chart
}

// PaneHeight returns the lines left for the table (or, in compact mode, the
// chart) once the header, the controls block, the status line and the key
// help are placed. controls is the rendered height of the controls block.
func (l LayoutConfig) PaneHeight(controls int) int {
	return l.TerminalHeight - HeaderHeight - controls - StatusHeight - FooterHeight
}

// ChartHeight returns the lines available to the chart pane.
func (l LayoutConfig) ChartHeight(controls int) int {
	if l.IsCompact {
		return l.PaneHeight(controls)
	}
	return l.TerminalHeight - HeaderHeight - FooterHeight
}

// TooSmall reports whether the terminal cannot hold the screen at all.
func (l LayoutConfig) TooSmall(controls int) bool {
	return l.TerminalWidth < MinimumTerminalWidth || l.PaneHeight(controls) < MinPaneRows
}

// CardWidth returns the outer width of each comparison card.
func (l LayoutConfig) CardWidth() int {
	table, _ := l.Panes()
	return max((table-1)/2, 20)
}

// ClipLines keeps the first n lines of s. It also returns how many lines
// were dropped.
func ClipLines(s string, n int) (string, int) {
	lines := strings.Split(s, "\n")
	if n < 0 {
		n = 0
	}
	if len(lines) <= n {
		return s, 0
	}
	return strings.Join(lines[:n], "\n"), len(lines) - n
}
