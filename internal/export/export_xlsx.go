// Package export writes the currently derived weapon view to a spreadsheet.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"arsenal/internal/derive"
	"arsenal/internal/logging"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	SheetWeapons = "Weapons"
	SheetChart   = "DPS Chart"
	SheetFilter  = "Filter"
)

// WeaponHeaders is the header row of the weapons sheet.
var WeaponHeaders = []string{"ID", "Weapon", "Category", "Cost", "Head", "Body", "Leg", "Fire Rate", "Magazine", "DPS"}

// Filename returns a dated file name for the export, e.g.
// 20260102_arsenal_rifle.xlsx.
func Filename(now time.Time, category string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(category), "-"))
	if slug == "" {
		slug = "all"
	}
	return fmt.Sprintf("%s_arsenal_%s.xlsx", now.Format("20060102"), slug)
}

// ToDir writes the export into dir under Filename and returns the path.
func ToDir(dir string, now time.Time, v derive.View, p derive.Params) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, Filename(now, p.Category))
	if err := WriteXLSX(path, v, p); err != nil {
		return "", err
	}
	return path, nil
}

// WriteXLSX writes the table rows, chart bars and filter settings to path.
func WriteXLSX(path string, v derive.View, p derive.Params) error {
	log := logging.Get(logging.CategoryExport)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetWeapons); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeWeapons(f, v); err != nil {
		return err
	}
	if _, err := f.NewSheet(SheetChart); err != nil {
		return fmt.Errorf("create chart sheet: %w", err)
	}
	if err := writeChart(f, v); err != nil {
		return err
	}
	if _, err := f.NewSheet(SheetFilter); err != nil {
		return fmt.Errorf("create filter sheet: %w", err)
	}
	writeFilter(f, v, p)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	log.Info("view exported",
		zap.String("path", path),
		zap.Int("rows", v.Count()),
		zap.Int("bars", len(v.Chart)))
	return nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func writeWeapons(f *excelize.File, v derive.View) error {
	for i, h := range WeaponHeaders {
		f.SetCellValue(SheetWeapons, cell(i+1, 1), h)
	}

	headerStyleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetWeapons, "A1", cell(len(WeaponHeaders), 1), headerStyleID); err != nil {
		return err
	}

	for i, r := range v.Rows {
		row := i + 2
		values := []any{
			r.ID,
			r.Name,
			string(r.Category),
			r.Cost,
			r.Damage.Head,
			r.Damage.Body,
			r.Damage.Leg,
			r.FireRate,
			r.Magazine,
			r.DPS,
		}
		for col, val := range values {
			f.SetCellValue(SheetWeapons, cell(col+1, row), val)
		}
	}

	if err := f.SetColWidth(SheetWeapons, "B", "C", 14); err != nil {
		return err
	}
	return nil
}

func writeChart(f *excelize.File, v derive.View) error {
	f.SetCellValue(SheetChart, "A1", "Weapon")
	f.SetCellValue(SheetChart, "B1", "DPS")
	f.SetCellValue(SheetChart, "C1", "Category")
	for i, b := range v.Chart {
		row := i + 2
		f.SetCellValue(SheetChart, cell(1, row), b.Name)
		f.SetCellValue(SheetChart, cell(2, row), b.DPS)
		f.SetCellValue(SheetChart, cell(3, row), string(b.Category))
	}

	if len(v.Chart) == 0 {
		return nil
	}

	last := len(v.Chart) + 1
	ref := fmt.Sprintf("'%s'", SheetChart)
	return f.AddChart(SheetChart, "E2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       ref + "!$B$1",
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", ref, last),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", ref, last),
		}},
		Title: []excelize.RichTextRun{{Text: fmt.Sprintf("Top %d DPS", len(v.Chart))}},
	})
}

func writeFilter(f *excelize.File, v derive.View, p derive.Params) {
	column := string(p.SortColumn)
	if column == "" {
		column = "none"
	}
	rows := [][2]any{
		{"Category", p.Category},
		{"Search", p.Query},
		{"Sort column", column},
		{"Sort order", p.SortOrder.String()},
		{"Chart size", p.ChartTopN},
		{"Rows", v.Count()},
	}
	for i, kv := range rows {
		f.SetCellValue(SheetFilter, cell(1, i+1), kv[0])
		f.SetCellValue(SheetFilter, cell(2, i+1), kv[1])
	}
}
