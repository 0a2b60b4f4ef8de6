package ui

import (
	"strconv"

	"arsenal/internal/state"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCost renders a price with thousands separators ("2,900").
func FormatCost(cost int) string {
	return printer.Sprintf("%d", cost)
}

// FormatNumber renders a stat without trailing zeros ("6.75", "26").
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Checkbox is the compare cell of a row: [x] selected, [-] unavailable
// because two other weapons are picked, [ ] available.
func Checkbox(s state.State, id string) string {
	switch {
	case s.IsCompared(id):
		return "[x]"
	case s.CompareDisabled(id):
		return "[-]"
	default:
		return "[ ]"
	}
}

// CompareHint is the line above the comparison cards.
func CompareHint(s state.State) string {
	if s.CompareFull() {
		return "comparing 2"
	}
	return printer.Sprintf("pick up to %d to compare (%d left)", state.MaxCompare, s.CompareRemaining())
}

// ShowingLine is the row count shown under the table.
func ShowingLine(n int) string {
	return printer.Sprintf("showing %d", n)
}
