package explorer

import (
	"fmt"
	"strings"

	"arsenal/cmd/arsenal/ui"
	"arsenal/internal/derive"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var columnWidths = map[derive.Column]int{
	derive.ColumnCost:       6,
	derive.ColumnHeadDamage: 6,
	derive.ColumnBodyDamage: 6,
	derive.ColumnLegDamage:  5,
	derive.ColumnFireRate:   5,
	derive.ColumnMagazine:   5,
	derive.ColumnDPS:        5,
}

// columns returns the table columns with the sort arrow on the active one.
func (m Model) columns() []table.Column {
	cols := []table.Column{
		{Title: "Cmp", Width: 3},
		{Title: "Weapon", Width: 9},
		{Title: "Class", Width: 7},
	}
	for _, c := range derive.Columns() {
		cols = append(cols, table.Column{
			Title: ui.ColumnLabel(c) + m.state.SortIndicator(c),
			Width: columnWidths[c],
		})
	}
	return cols
}

// rows converts the derived view into table rows.
func (m Model) rows() []table.Row {
	rows := make([]table.Row, len(m.view.Rows))
	for i, r := range m.view.Rows {
		rows[i] = table.Row{
			ui.Checkbox(m.state, r.ID),
			r.Name,
			string(r.Category),
			ui.FormatCost(r.Cost),
			ui.FormatNumber(r.Damage.Head),
			ui.FormatNumber(r.Damage.Body),
			ui.FormatNumber(r.Damage.Leg),
			ui.FormatNumber(r.FireRate),
			ui.FormatNumber(float64(r.Magazine)),
			ui.FormatNumber(float64(r.DPS)),
		}
	}
	return rows
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		page, _ := ui.ClipLines(m.helpPage.Render(m.keys, m.layout.TerminalWidth), m.layout.TerminalHeight-1)
		return page + "\n" + m.styles.Footer.Render("press ? or esc to close")
	}

	controls := m.renderControls()
	controlsH := lipgloss.Height(controls)
	if m.layout.TooSmall(controlsH) {
		return m.styles.Error.Render(fmt.Sprintf("terminal too small (%dx%d), need %d columns",
			m.layout.TerminalWidth, m.layout.TerminalHeight, ui.MinimumTerminalWidth))
	}

	_, chartW := m.layout.Panes()
	chart := m.renderChart(chartW, m.layout.ChartHeight(controlsH))

	var body string
	if m.layout.IsCompact {
		pane := m.table.View()
		if m.showChart {
			pane = chart
		}
		body = lipgloss.JoinVertical(lipgloss.Left, controls, pane, m.renderStatus())
	} else {
		left := lipgloss.JoinVertical(lipgloss.Left, controls, m.table.View(), m.renderStatus())
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", ui.SplitPaneDivider), chart)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Header.Render("ARSENAL weapon explorer"),
		body,
		m.help.View(m.keys),
	)
}

// renderControls is everything above the table: category tabs, search box,
// divider and the comparison panel.
func (m Model) renderControls() string {
	tableW, _ := m.layout.Panes()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderCategories(),
		m.renderSearch(),
		m.styles.RenderDivider(tableW),
		m.styles.ComparePanel(m.state, m.catalog, m.layout.CardWidth()),
		"",
	)
}

func (m Model) renderCategories() string {
	tabs := make([]string, len(m.options))
	for i, opt := range m.options {
		if opt == m.state.Category {
			tabs[i] = m.styles.ActiveTab.Render(opt)
		} else {
			tabs[i] = m.styles.Tab.Render(opt)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderSearch() string {
	var sb strings.Builder
	if m.searching {
		sb.WriteString(m.search.View())
	} else if m.state.Query != "" {
		sb.WriteString(m.styles.Prompt.Render("/ "))
		sb.WriteString(m.styles.Body.Render(m.state.Query))
	} else {
		sb.WriteString(m.styles.Muted.Render("/ search by name"))
	}

	sb.WriteString("   ")
	if m.state.SortColumn == derive.ColumnNone {
		sb.WriteString(m.styles.Muted.Render("unsorted"))
	} else {
		sb.WriteString(m.styles.Muted.Render("sort "))
		sb.WriteString(m.styles.Bold.Render(ui.ColumnLabel(m.state.SortColumn) + m.state.SortIndicator(m.state.SortColumn)))
	}
	return sb.String()
}

func (m Model) renderStatus() string {
	line := m.styles.Muted.Render(ui.ShowingLine(m.view.Count()))
	switch {
	case m.status == "":
	case m.statusErr:
		line += "  " + m.styles.Error.Render(m.status)
	default:
		line += "  " + m.styles.Success.Render(m.status)
	}
	return line
}

func (m Model) renderChart(width, lines int) string {
	title := m.styles.Title.Render(ui.ChartTitle(m.view.Chart))
	out := lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.chart.Render(m.view.Chart, width),
	)
	if _, dropped := ui.ClipLines(out, lines); dropped > 0 {
		out, dropped = ui.ClipLines(out, lines-1)
		out += "\n" + m.styles.Muted.Render(fmt.Sprintf("+%d more", dropped))
	}
	return out
}
