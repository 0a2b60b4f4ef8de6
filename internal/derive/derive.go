package derive

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"arsenal/internal/catalog"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DPS is body damage times fire rate, rounded half away from zero.
// Catalog values are non-negative, so this is the same as round-half-up:
// 26 × 6.75 = 175.5 gives 176.
func DPS(w catalog.Weapon) int {
	return int(math.Round(w.Damage.Body * w.FireRate))
}

// Filter keeps weapons in category (catalog.AllCategories keeps every
// category) whose lower-cased name contains the trimmed, lower-cased query.
// Input order is preserved.
func Filter(weapons []catalog.Weapon, category, query string) []catalog.Weapon {
	lower := cases.Lower(language.Und)
	q := lower.String(strings.TrimSpace(query))

	out := make([]catalog.Weapon, 0, len(weapons))
	for _, w := range weapons {
		if category != catalog.AllCategories && string(w.Category) != category {
			continue
		}
		if q != "" && !strings.Contains(lower.String(w.Name), q) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Sort returns a stably sorted copy of weapons. ColumnNone keeps input order.
// Equal keys keep their input order in both directions.
func Sort(weapons []catalog.Weapon, column Column, order Order) []catalog.Weapon {
	out := slices.Clone(weapons)
	if column == ColumnNone {
		return out
	}
	slices.SortStableFunc(out, func(a, b catalog.Weapon) int {
		if order == Descending {
			return cmp.Compare(column.Value(b), column.Value(a))
		}
		return cmp.Compare(column.Value(a), column.Value(b))
	})
	return out
}

// ChartBar is one bar handed to the chart renderer.
type ChartBar struct {
	ID       string
	Name     string
	Category catalog.Category
	DPS      int
}

// Chart ranks weapons by descending DPS (stable) and keeps the first
// clamp(topN, 1, len(weapons)) of them. An empty input yields no bars.
func Chart(weapons []catalog.Weapon, topN int) []ChartBar {
	if len(weapons) == 0 {
		return nil
	}
	bars := make([]ChartBar, len(weapons))
	for i, w := range weapons {
		bars[i] = ChartBar{ID: w.ID, Name: w.Name, Category: w.Category, DPS: DPS(w)}
	}
	slices.SortStableFunc(bars, func(a, b ChartBar) int {
		return cmp.Compare(b.DPS, a.DPS)
	})
	return bars[:clamp(topN, 1, len(bars))]
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Params is the subset of UI state the pipeline reads.
type Params struct {
	Category   string
	Query      string
	SortColumn Column
	SortOrder  Order
	ChartTopN  int
}

// Row is one table row: the weapon plus its derived DPS.
type Row struct {
	catalog.Weapon
	DPS int
}

// View is everything rendered for one state.
type View struct {
	Rows  []Row
	Chart []ChartBar
}

// Count is the number of rows after filtering.
func (v View) Count() int {
	return len(v.Rows)
}

// Weapons returns the row weapons in display order.
func (v View) Weapons() []catalog.Weapon {
	out := make([]catalog.Weapon, len(v.Rows))
	for i, r := range v.Rows {
		out[i] = r.Weapon
	}
	return out
}

// Derive runs filter, sort and chart over weapons.
func Derive(weapons []catalog.Weapon, p Params) View {
	sorted := Sort(Filter(weapons, p.Category, p.Query), p.SortColumn, p.SortOrder)

	rows := make([]Row, len(sorted))
	for i, w := range sorted {
		rows[i] = Row{Weapon: w, DPS: DPS(w)}
	}

	return View{
		Rows:  rows,
		Chart: Chart(sorted, p.ChartTopN),
	}
}
