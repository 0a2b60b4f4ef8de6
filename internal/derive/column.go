// Package derive computes the table rows and chart bars shown for a weapon
// catalog under a given filter and sort selection.
//
// Every function here is pure: inputs are never mutated and the same inputs
// always produce the same output.
package derive

import (
	"errors"
	"fmt"
	"strings"

	"arsenal/internal/catalog"
)

// ErrUnknownColumn is returned by ParseColumn for names outside Columns().
var ErrUnknownColumn = errors.New("unknown sort column")

// Column identifies a sortable numeric column.
type Column string

const (
	ColumnNone       Column = ""
	ColumnCost       Column = "cost"
	ColumnHeadDamage Column = "headDamage"
	ColumnBodyDamage Column = "bodyDamage"
	ColumnLegDamage  Column = "legDamage"
	ColumnFireRate   Column = "fireRate"
	ColumnMagazine   Column = "magazine"
	ColumnDPS        Column = "dps"
)

// Columns returns the sortable columns in header order.
func Columns() []Column {
	return []Column{
		ColumnCost,
		ColumnHeadDamage,
		ColumnBodyDamage,
		ColumnLegDamage,
		ColumnFireRate,
		ColumnMagazine,
		ColumnDPS,
	}
}

// Value returns the numeric sort key of w for this column.
func (c Column) Value(w catalog.Weapon) float64 {
	switch c {
	case ColumnCost:
		return float64(w.Cost)
	case ColumnFireRate:
		return w.FireRate
	case ColumnMagazine:
		return float64(w.Magazine)
	case ColumnDPS:
		return float64(DPS(w))
	case ColumnHeadDamage:
		return w.Damage.Head
	case ColumnBodyDamage:
		return w.Damage.Body
	case ColumnLegDamage:
		return w.Damage.Leg
	}
	return 0
}

// ParseColumn accepts a column name case-insensitively. The empty string and
// "none" map to ColumnNone.
func ParseColumn(s string) (Column, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return ColumnNone, nil
	}
	for _, c := range Columns() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return ColumnNone, fmt.Errorf("%w %q (valid: %v)", ErrUnknownColumn, s, Columns())
}

// Order is the sort direction.
type Order int

const (
	Ascending Order = iota
	Descending
)

// String returns "asc" or "desc".
func (o Order) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}

// Flip returns the opposite direction.
func (o Order) Flip() Order {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

// ParseOrder accepts "asc"/"ascending" and "desc"/"descending". The empty
// string is Ascending.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("unknown sort order %q (valid: asc, desc)", s)
}
