package explorer

import (
	"fmt"
	"time"

	"arsenal/internal/derive"
	"arsenal/internal/export"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// exportDoneMsg reports the result of an export started with the export key.
type exportDoneMsg struct {
	path string
	err  error
}

// exportCmd writes the view off the update loop and reports back.
func exportCmd(dir string, now time.Time, v derive.View, p derive.Params) tea.Cmd {
	return func() tea.Msg {
		path, err := export.ToDir(dir, now, v, p)
		return exportDoneMsg{path: path, err: err}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.log.Error("export failed", zap.Error(msg.err))
			m.status, m.statusErr = fmt.Sprintf("export failed: %v", msg.err), true
			return m, nil
		}
		m.status, m.statusErr = "exported "+msg.path, false
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	if m.searching {
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Leave, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit), msg.Type == tea.KeyEsc:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue(m.state.Query)
		m.search.CursorEnd()
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.ClearQuery):
		m.search.SetValue("")
		m.setState(m.state.ClearQuery(), "clear query")

	case key.Matches(msg, m.keys.NextCategory):
		m.setState(m.state.NextCategory(m.options), "next category")

	case key.Matches(msg, m.keys.PrevCategory):
		m.setState(m.state.PrevCategory(m.options), "prev category")

	case key.Matches(msg, m.keys.Sort):
		col := derive.Columns()[msg.Runes[0]-'1']
		m.setState(m.state.ToggleHeaderSort(col), "sort "+string(col))

	case key.Matches(msg, m.keys.ClearSort):
		m.setState(m.state.ClearSort(), "clear sort")

	case key.Matches(msg, m.keys.Compare):
		if id := m.cursorID(); id != "" {
			m.setState(m.state.ToggleCompare(id), "compare "+id)
		}

	case key.Matches(msg, m.keys.ClearCompare):
		m.setState(m.state.ClearCompare(), "clear compare")

	case key.Matches(msg, m.keys.CycleTop):
		m.setState(m.state.CycleChartTopN(), "cycle top")

	case key.Matches(msg, m.keys.Pane):
		m.showChart = !m.showChart

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Export):
		if m.exporting {
			return m, nil
		}
		m.exporting = true
		m.status, m.statusErr = "exporting...", false
		return m, exportCmd(m.exportDir, m.now(), m.view, m.state.Params())

	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleSearchKey edits the query while the search box has focus. Every
// keystroke updates the state so the table filters live.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Leave):
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.ClearQuery):
		m.search.SetValue("")
		m.setState(m.state.ClearQuery(), "clear query")
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.state.Query {
		m.setState(m.state.SetQuery(q), "query")
	}
	return m, cmd
}
