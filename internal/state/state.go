// Package state holds the explorer's UI selection: category, search text,
// sort column, comparison picks and chart size.
//
// State is a value type. Every mutator returns a new State and never
// modifies the receiver, so a State can be shared freely between the event
// loop and the renderers.
package state

import (
	"slices"

	"arsenal/internal/catalog"
	"arsenal/internal/derive"
)

// MaxCompare is the comparison capacity.
const MaxCompare = 2

// DefaultChartTopN is the initial chart size.
const DefaultChartTopN = 10

// ChartTopNOptions are the chart sizes offered by the selector.
var ChartTopNOptions = []int{5, 10, 15, 20}

// State is the complete UI selection.
type State struct {
	Category   string
	Query      string
	SortColumn derive.Column
	SortOrder  derive.Order
	CompareIDs []string
	ChartTopN  int
}

// New returns the startup state.
func New() State {
	return State{
		Category:   catalog.AllCategories,
		SortColumn: derive.ColumnNone,
		SortOrder:  derive.Ascending,
		ChartTopN:  DefaultChartTopN,
	}
}

// Params projects the state onto the derivation inputs.
func (s State) Params() derive.Params {
	return derive.Params{
		Category:   s.Category,
		Query:      s.Query,
		SortColumn: s.SortColumn,
		SortOrder:  s.SortOrder,
		ChartTopN:  s.ChartTopN,
	}
}

// SetCategory replaces the category filter. Unknown values are accepted and
// simply match nothing.
func (s State) SetCategory(c string) State {
	s.Category = c
	return s
}

// SetQuery stores the search text verbatim.
func (s State) SetQuery(q string) State {
	s.Query = q
	return s
}

// ClearQuery empties the search text.
func (s State) ClearQuery() State {
	s.Query = ""
	return s
}

// ToggleHeaderSort flips the order when col is already active, otherwise
// makes col active in ascending order.
func (s State) ToggleHeaderSort(col derive.Column) State {
	if s.SortColumn == col {
		s.SortOrder = s.SortOrder.Flip()
		return s
	}
	s.SortColumn = col
	s.SortOrder = derive.Ascending
	return s
}

// ClearSort restores catalog order.
func (s State) ClearSort() State {
	s.SortColumn = derive.ColumnNone
	s.SortOrder = derive.Ascending
	return s
}

// ToggleCompare removes id when selected, appends it when there is room, and
// otherwise leaves the selection unchanged.
func (s State) ToggleCompare(id string) State {
	if i := slices.Index(s.CompareIDs, id); i >= 0 {
		s.CompareIDs = slices.Delete(slices.Clone(s.CompareIDs), i, i+1)
		return s
	}
	if len(s.CompareIDs) >= MaxCompare {
		return s
	}
	ids := make([]string, 0, MaxCompare)
	ids = append(ids, s.CompareIDs...)
	s.CompareIDs = append(ids, id)
	return s
}

// ClearCompare empties the comparison selection.
func (s State) ClearCompare() State {
	s.CompareIDs = nil
	return s
}

// SetChartTopN replaces the chart size. Clamping happens in derive.Chart.
func (s State) SetChartTopN(n int) State {
	s.ChartTopN = n
	return s
}

// CycleChartTopN advances to the next entry of ChartTopNOptions, wrapping.
// A size not in the options restarts at the first entry.
func (s State) CycleChartTopN() State {
	i := slices.Index(ChartTopNOptions, s.ChartTopN)
	s.ChartTopN = ChartTopNOptions[(i+1)%len(ChartTopNOptions)]
	return s
}

// NextCategory selects the option after the current one, wrapping.
func (s State) NextCategory(options []string) State {
	return s.stepCategory(options, 1)
}

// PrevCategory selects the option before the current one, wrapping.
func (s State) PrevCategory(options []string) State {
	return s.stepCategory(options, -1)
}

func (s State) stepCategory(options []string, delta int) State {
	if len(options) == 0 {
		return s
	}
	i := slices.Index(options, s.Category)
	if i < 0 {
		s.Category = options[0]
		return s
	}
	n := len(options)
	s.Category = options[((i+delta)%n+n)%n]
	return s
}

// IsCompared reports whether id is in the comparison selection.
func (s State) IsCompared(id string) bool {
	return slices.Contains(s.CompareIDs, id)
}

// CompareFull reports whether the comparison selection is at capacity.
func (s State) CompareFull() bool {
	return len(s.CompareIDs) >= MaxCompare
}

// CompareRemaining is the number of further weapons that can be picked.
func (s State) CompareRemaining() int {
	return max(0, MaxCompare-len(s.CompareIDs))
}

// CompareDisabled reports whether the compare toggle for id is unavailable:
// the selection is full and id is not part of it.
func (s State) CompareDisabled(id string) bool {
	return s.CompareFull() && !s.IsCompared(id)
}

// SortIndicator is the header arrow for col: " ▲", " ▼", or "" when col is
// not the active sort column.
func (s State) SortIndicator(col derive.Column) string {
	if col == derive.ColumnNone || s.SortColumn != col {
		return ""
	}
	if s.SortOrder == derive.Descending {
		return " ▼"
	}
	return " ▲"
}
