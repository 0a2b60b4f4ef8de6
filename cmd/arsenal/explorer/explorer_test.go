package explorer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"arsenal/cmd/arsenal/ui"
	"arsenal/internal/catalog"
	"arsenal/internal/derive"
	"arsenal/internal/state"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	return New(Options{
		Catalog:   catalog.Default(),
		State:     state.New(),
		Styles:    ui.NewStyles(ui.LightTheme()),
		ExportDir: t.TempDir(),
		Now:       func() time.Time { return time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC) },
	})
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press feeds keys through Update and returns the resulting model and the
// last command.
func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNew_InitialView(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, catalog.AllCategories, m.State().Category)
	assert.Equal(t, 18, m.Derived().Count())
	assert.Len(t, m.Derived().Chart, state.DefaultChartTopN)
	assert.Equal(t, "classic", m.cursorID())
}

func TestCategoryKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "tab")
	assert.Equal(t, "Sidearm", m.State().Category)
	assert.Equal(t, 5, m.Derived().Count())
	assert.Len(t, m.Derived().Chart, 5, "chart is clamped to the filtered list")

	m, _ = press(t, m, "shift+tab", "shift+tab")
	assert.Equal(t, "Heavy", m.State().Category)
	assert.Equal(t, 2, m.Derived().Count())
}

func TestSortKeysCycle(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "1")
	assert.Equal(t, derive.ColumnCost, m.State().SortColumn)
	assert.Equal(t, derive.Ascending, m.State().SortOrder)
	assert.Equal(t, "classic", m.Derived().Rows[0].ID)
	assert.Equal(t, "Cost ▲", m.columns()[3].Title)

	m, _ = press(t, m, "1")
	assert.Equal(t, derive.Descending, m.State().SortOrder)
	assert.Equal(t, "operator", m.Derived().Rows[0].ID)
	assert.Equal(t, "Cost ▼", m.columns()[3].Title)

	m, _ = press(t, m, "1")
	assert.Equal(t, derive.Ascending, m.State().SortOrder)

	m, _ = press(t, m, "7")
	assert.Equal(t, derive.ColumnDPS, m.State().SortColumn)
	assert.Equal(t, derive.Ascending, m.State().SortOrder)
	assert.Equal(t, "Cost", m.columns()[3].Title)

	m, _ = press(t, m, "0")
	assert.Equal(t, derive.ColumnNone, m.State().SortColumn)
	assert.Equal(t, "classic", m.Derived().Rows[0].ID)
}

func TestCompareKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "space", "down", "x")
	assert.Equal(t, []string{"classic", "shorty"}, m.State().CompareIDs)

	m, _ = press(t, m, "down", "space")
	assert.Equal(t, []string{"classic", "shorty"}, m.State().CompareIDs, "third pick is ignored")

	rows := m.rows()
	assert.Equal(t, "[x]", rows[0][0])
	assert.Equal(t, "[x]", rows[1][0])
	assert.Equal(t, "[-]", rows[2][0])

	m, _ = press(t, m, "c")
	assert.Empty(t, m.State().CompareIDs)
	assert.Equal(t, "[ ]", m.rows()[2][0])
}

func TestSearchKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "/", "v", "a", "n")
	assert.True(t, m.searching)
	assert.Equal(t, "van", m.State().Query)
	require.Equal(t, 1, m.Derived().Count())
	assert.Equal(t, "vandal", m.Derived().Rows[0].ID)

	m, cmd := press(t, m, "esc")
	assert.False(t, m.searching)
	assert.False(t, isQuit(cmd), "esc leaves search before quitting")
	assert.Equal(t, "van", m.State().Query)

	m, _ = press(t, m, "ctrl+u")
	assert.Equal(t, "", m.State().Query)
	assert.Equal(t, 18, m.Derived().Count())

	m, _ = press(t, m, "/", "z", "z", "z", "enter")
	assert.False(t, m.searching)
	assert.Zero(t, m.Derived().Count())
	assert.Empty(t, m.Derived().Chart)
	assert.Equal(t, "", m.cursorID())
}

func TestSearchKeys_DoNotTriggerCommands(t *testing.T) {
	m := newTestModel(t)
	m, cmd := press(t, m, "/", "q", "1", "c")
	assert.False(t, isQuit(cmd))
	assert.Equal(t, "q1c", m.State().Query)
	assert.Equal(t, derive.ColumnNone, m.State().SortColumn)
}

func TestCycleTopKey(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "n")
	assert.Equal(t, 15, m.State().ChartTopN)
	assert.Len(t, m.Derived().Chart, 15)

	m, _ = press(t, m, "n", "n")
	assert.Equal(t, 5, m.State().ChartTopN)
	assert.Len(t, m.Derived().Chart, 5)
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		_, cmd := press(t, newTestModel(t), k)
		assert.True(t, isQuit(cmd), "key %q should quit", k)
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "?")
	require.True(t, m.showHelp)
	assert.Contains(t, m.View(), "press ? or esc to close")

	m, cmd := press(t, m, "q")
	assert.False(t, m.showHelp)
	assert.False(t, isQuit(cmd), "q closes help first")
}

func TestHelpMarkdown(t *testing.T) {
	md := helpMarkdown(keys)
	for _, want := range []string{"`/`", "search", "`1-7`", "Cost", "DPS", "[5 10 15 20]"} {
		assert.Contains(t, md, want)
	}
}

func TestExportKey(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "tab", "tab", "tab", "tab")
	require.Equal(t, "Rifle", m.State().Category)

	m, cmd := press(t, m, "e")
	require.NotNil(t, cmd)
	assert.Equal(t, "exporting...", m.status)

	next, _ := m.Update(cmd())
	m = next.(Model)
	assert.False(t, m.statusErr)
	assert.Contains(t, m.status, "20260506_arsenal_rifle.xlsx")

	_, err := os.Stat(filepath.Join(m.exportDir, "20260506_arsenal_rifle.xlsx"))
	assert.NoError(t, err)
}

func TestExportKey_Failure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	m := New(Options{
		Catalog:   catalog.Default(),
		State:     state.New(),
		Styles:    ui.NewStyles(ui.LightTheme()),
		ExportDir: filepath.Join(blocker, "sub"),
	})
	m, cmd := press(t, m, "e")
	next, _ := m.Update(cmd())
	m = next.(Model)

	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "export failed")
	assert.Contains(t, m.View(), "export failed")
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 50})
	m = next.(Model)
	m, _ = press(t, m, "space")

	out := m.View()
	for _, want := range []string{
		"showing 18",
		"DPS top 10",
		"Sidearm",
		"Classic",
		"pick up to 2 to compare (1 left)",
		"(unselected)",
	} {
		assert.True(t, strings.Contains(out, want), "view missing %q", want)
	}
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

func TestView_FitsTerminal(t *testing.T) {
	sizes := []struct{ width, height int }{
		{80, 24},
		{100, 40},
		{120, 30},
		{160, 40},
	}
	for _, sz := range sizes {
		t.Run(fmt.Sprintf("%dx%d", sz.width, sz.height), func(t *testing.T) {
			m := newTestModel(t)
			next, _ := m.Update(tea.WindowSizeMsg{Width: sz.width, Height: sz.height})
			m = next.(Model)
			m, _ = press(t, m, "space")

			for _, pane := range []string{"table", "chart"} {
				out := m.View()
				assert.LessOrEqual(t, lineCount(out), sz.height, "%s pane overflows", pane)
				for _, want := range []string{"ARSENAL weapon explorer", "All", "search by name", "Compare", "showing 18"} {
					assert.Contains(t, out, want, "%s pane", pane)
				}
				m, _ = press(t, m, "v")
			}
		})
	}
}

func TestView_CompactChartPane(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	m, _ = press(t, m, "space")
	assert.Contains(t, m.View(), "Classic")
	assert.NotContains(t, m.View(), "DPS top 10")

	m, _ = press(t, m, "v")
	out := m.View()
	assert.Contains(t, out, "DPS top 10")
	assert.Contains(t, out, "more")
	assert.Equal(t, 24, lineCount(out))

	m, _ = press(t, m, "c")
	assert.NotContains(t, m.View(), "more", "the cleared panel frees room for every bar")
}

func TestView_TooSmall(t *testing.T) {
	m := newTestModel(t)
	for _, sz := range []tea.WindowSizeMsg{{Width: 60, Height: 40}, {Width: 100, Height: 8}} {
		next, _ := m.Update(sz)
		m = next.(Model)
		out := m.View()
		assert.Contains(t, out, "terminal too small")
		assert.Equal(t, 1, lineCount(out))
	}
}

func TestInitialStateFromOptions(t *testing.T) {
	s := state.New().SetCategory("Sniper").SetQuery("op").ToggleHeaderSort(derive.ColumnDPS)
	m := New(Options{Catalog: catalog.Default(), State: s, Styles: ui.NewStyles(ui.DarkTheme())})

	assert.Equal(t, "op", m.search.Value())
	require.Equal(t, 1, m.Derived().Count())
	assert.Equal(t, "operator", m.Derived().Rows[0].ID)
}

func TestProgramRun(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p := tea.NewProgram(newTestModel(t),
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)
	go func() {
		p.Send(keyMsg("tab"))
		p.Send(keyMsg("q"))
	}()

	final, err := p.Run()
	require.NoError(t, err)
	_, ok := final.(Model)
	assert.True(t, ok)
}
