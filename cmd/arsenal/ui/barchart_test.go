package ui

import (
	"strings"
	"testing"

	"arsenal/internal/catalog"
	"arsenal/internal/derive"
)

func TestLipglossBarChart_Render(t *testing.T) {
	bars := []derive.ChartBar{
		{ID: "phantom", Name: "Phantom", Category: catalog.CategoryRifle, DPS: 429},
		{ID: "spectre", Name: "Spectre", Category: catalog.CategorySMG, DPS: 347},
		{ID: "classic", Name: "Classic", Category: catalog.CategorySidearm, DPS: 176},
	}
	out := NewBarChart(NewStyles(LightTheme())).Render(bars, 60)
	lines := strings.Split(out, "\n")
	if len(lines) != len(bars) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(bars), len(lines), out)
	}
	for i, b := range bars {
		if !strings.HasPrefix(lines[i], b.Name) {
			t.Errorf("line %d = %q, want bar for %s in list order", i, lines[i], b.Name)
		}
	}
	if strings.Count(lines[0], barGlyph) <= strings.Count(lines[2], barGlyph) {
		t.Error("higher DPS should draw a longer bar")
	}
}

func TestLipglossBarChart_Empty(t *testing.T) {
	out := NewBarChart(NewStyles(LightTheme())).Render(nil, 60)
	if !strings.Contains(out, "no weapons match") {
		t.Errorf("unexpected empty chart: %q", out)
	}
}

func TestBarLength(t *testing.T) {
	tests := []struct {
		dps, peak, area, want int
	}{
		{429, 429, 20, 20},
		{0, 429, 20, 0},
		{1, 429, 20, 1},
		{200, 400, 20, 10},
	}
	for _, tt := range tests {
		if got := barLength(tt.dps, tt.peak, tt.area); got != tt.want {
			t.Errorf("barLength(%d, %d, %d) = %d, want %d", tt.dps, tt.peak, tt.area, got, tt.want)
		}
	}
}

func TestChartTitle(t *testing.T) {
	if got := ChartTitle(make([]derive.ChartBar, 3)); got != "DPS top 3" {
		t.Errorf("ChartTitle = %q", got)
	}
}
