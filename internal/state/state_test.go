package state

import (
	"testing"

	"arsenal/internal/catalog"
	"arsenal/internal/derive"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	s := New()
	assert.Equal(t, catalog.AllCategories, s.Category)
	assert.Empty(t, s.Query)
	assert.Equal(t, derive.ColumnNone, s.SortColumn)
	assert.Equal(t, derive.Ascending, s.SortOrder)
	assert.Empty(t, s.CompareIDs)
	assert.Equal(t, 10, s.ChartTopN)
}

func TestQuery(t *testing.T) {
	s := New().SetQuery("  Van ")
	assert.Equal(t, "  Van ", s.Query, "query is stored verbatim")

	s = s.ClearQuery()
	assert.Empty(t, s.Query)
}

func TestSetCategory_NoValidation(t *testing.T) {
	s := New().SetCategory("Melee")
	assert.Equal(t, "Melee", s.Category)
}

func TestToggleHeaderSort_Cycle(t *testing.T) {
	s := New()
	assert.Equal(t, "", s.SortIndicator(derive.ColumnDPS))

	s = s.ToggleHeaderSort(derive.ColumnDPS)
	assert.Equal(t, derive.ColumnDPS, s.SortColumn)
	assert.Equal(t, derive.Ascending, s.SortOrder)
	assert.Equal(t, " ▲", s.SortIndicator(derive.ColumnDPS))

	s = s.ToggleHeaderSort(derive.ColumnDPS)
	assert.Equal(t, derive.Descending, s.SortOrder)
	assert.Equal(t, " ▼", s.SortIndicator(derive.ColumnDPS))

	s = s.ToggleHeaderSort(derive.ColumnDPS)
	assert.Equal(t, derive.Ascending, s.SortOrder)
	assert.Equal(t, " ▲", s.SortIndicator(derive.ColumnDPS))

	for _, col := range derive.Columns() {
		if col != derive.ColumnDPS {
			assert.Empty(t, s.SortIndicator(col), "only the active column has an arrow")
		}
	}
}

func TestToggleHeaderSort_OtherColumnResetsToAscending(t *testing.T) {
	s := New().
		ToggleHeaderSort(derive.ColumnCost).
		ToggleHeaderSort(derive.ColumnCost)
	assert.Equal(t, derive.Descending, s.SortOrder)

	s = s.ToggleHeaderSort(derive.ColumnMagazine)
	assert.Equal(t, derive.ColumnMagazine, s.SortColumn)
	assert.Equal(t, derive.Ascending, s.SortOrder)
}

func TestClearSort(t *testing.T) {
	s := New().ToggleHeaderSort(derive.ColumnCost).ToggleHeaderSort(derive.ColumnCost).ClearSort()
	assert.Equal(t, derive.ColumnNone, s.SortColumn)
	assert.Equal(t, derive.Ascending, s.SortOrder)
}

func TestToggleCompare_Scenario(t *testing.T) {
	s := New()

	s = s.ToggleCompare("a")
	assert.Equal(t, []string{"a"}, s.CompareIDs)
	assert.Equal(t, 1, s.CompareRemaining())

	s = s.ToggleCompare("b")
	assert.Equal(t, []string{"a", "b"}, s.CompareIDs)
	assert.True(t, s.CompareFull())

	s = s.ToggleCompare("c")
	assert.Equal(t, []string{"a", "b"}, s.CompareIDs, "third pick is ignored")
	assert.True(t, s.CompareDisabled("c"))
	assert.False(t, s.CompareDisabled("a"))

	s = s.ToggleCompare("a")
	assert.Equal(t, []string{"b"}, s.CompareIDs)
	assert.False(t, s.CompareDisabled("c"))
}

func TestToggleCompare_DoesNotAlias(t *testing.T) {
	base := New().ToggleCompare("a")
	left := base.ToggleCompare("b")
	right := base.ToggleCompare("c")

	assert.Equal(t, []string{"a"}, base.CompareIDs)
	assert.Equal(t, []string{"a", "b"}, left.CompareIDs)
	assert.Equal(t, []string{"a", "c"}, right.CompareIDs)

	removed := left.ToggleCompare("a")
	assert.Equal(t, []string{"a", "b"}, left.CompareIDs)
	assert.Equal(t, []string{"b"}, removed.CompareIDs)
}

func TestClearCompare_Idempotent(t *testing.T) {
	s := New().ClearCompare()
	assert.Empty(t, s.CompareIDs)

	s = s.ToggleCompare("a").ClearCompare().ClearCompare()
	assert.Empty(t, s.CompareIDs)
	assert.Equal(t, MaxCompare, s.CompareRemaining())
}

func TestChartTopN(t *testing.T) {
	s := New().SetChartTopN(99)
	assert.Equal(t, 99, s.ChartTopN, "stored unclamped")

	s = s.CycleChartTopN()
	assert.Equal(t, 5, s.ChartTopN, "unknown size restarts the cycle")

	var seen []int
	for range ChartTopNOptions {
		s = s.CycleChartTopN()
		seen = append(seen, s.ChartTopN)
	}
	assert.Equal(t, []int{10, 15, 20, 5}, seen)
}

func TestCategoryStepping(t *testing.T) {
	options := []string{"All", "Sidearm", "Rifle"}

	s := New()
	s = s.NextCategory(options)
	assert.Equal(t, "Sidearm", s.Category)
	s = s.NextCategory(options).NextCategory(options)
	assert.Equal(t, "All", s.Category)
	s = s.PrevCategory(options)
	assert.Equal(t, "Rifle", s.Category)

	s = s.SetCategory("Melee").NextCategory(options)
	assert.Equal(t, "All", s.Category)

	assert.Equal(t, "All", New().NextCategory(nil).Category)
}

func TestParams(t *testing.T) {
	s := New().SetCategory("Rifle").SetQuery("ph").ToggleHeaderSort(derive.ColumnDPS).SetChartTopN(5)
	assert.Equal(t, derive.Params{
		Category:   "Rifle",
		Query:      "ph",
		SortColumn: derive.ColumnDPS,
		SortOrder:  derive.Ascending,
		ChartTopN:  5,
	}, s.Params())
}
