package ui

import "arsenal/internal/derive"

var columnLabels = map[derive.Column]string{
	derive.ColumnCost:       "Cost",
	derive.ColumnHeadDamage: "Head",
	derive.ColumnBodyDamage: "Body",
	derive.ColumnLegDamage:  "Leg",
	derive.ColumnFireRate:   "RoF",
	derive.ColumnMagazine:   "Mag",
	derive.ColumnDPS:        "DPS",
}

// ColumnLabel is the header title of a sortable column.
func ColumnLabel(c derive.Column) string {
	if l, ok := columnLabels[c]; ok {
		return l
	}
	return string(c)
}
