// Package explorer is the interactive weapon table: a Bubble Tea model that
// applies key presses to a state.State and re-renders the derived view.
package explorer

import (
	"time"

	"arsenal/cmd/arsenal/ui"
	"arsenal/internal/catalog"
	"arsenal/internal/derive"
	"arsenal/internal/logging"
	"arsenal/internal/state"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	defaultWidth  = 120
	defaultHeight = 40
)

// Options configures a Model.
type Options struct {
	Catalog *catalog.Catalog
	State   state.State
	Styles  ui.Styles

	// Chart defaults to a cached ui.LipglossBarChart.
	Chart ui.BarChart

	// ExportDir is where the export key writes workbooks.
	ExportDir string

	// Now stamps export file names. Defaults to time.Now.
	Now func() time.Time
}

// Model is the explorer's Bubble Tea model.
type Model struct {
	catalog  *catalog.Catalog
	weapons  []catalog.Weapon
	options  []string
	state    state.State
	view     derive.View
	styles   ui.Styles
	chart    ui.BarChart
	layout   ui.LayoutConfig
	table    table.Model
	search   textinput.Model
	help     help.Model
	keys     keyMap
	helpPage *helpPage

	searching bool
	showHelp  bool
	showChart bool // compact mode shows the chart in place of the table
	exporting bool
	status    string
	statusErr bool

	exportDir string
	now       func() time.Time
	log       *zap.Logger
}

// New builds the explorer for opts.State over opts.Catalog.
func New(opts Options) Model {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Chart == nil {
		opts.Chart = ui.NewCachedChart(ui.NewBarChart(opts.Styles), nil, opts.Styles.Theme.IsDark)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}

	search := textinput.New()
	search.Placeholder = "e.g. vandal / phantom / op"
	search.Prompt = "/ "
	search.CharLimit = 40
	search.Width = 30
	search.SetValue(opts.State.Query)

	t := table.New(
		table.WithFocused(true),
		table.WithHeight(ui.MinPaneRows),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.Bold(true)
	ts.Selected = ts.Selected.Foreground(opts.Styles.Theme.Card).Background(opts.Styles.Theme.Accent)
	t.SetStyles(ts)

	m := Model{
		catalog:   opts.Catalog,
		weapons:   opts.Catalog.Weapons(),
		options:   opts.Catalog.SelectorOptions(),
		state:     opts.State,
		styles:    opts.Styles,
		chart:     opts.Chart,
		table:     t,
		search:    search,
		help:      help.New(),
		keys:      keys,
		helpPage:  newHelpPage(opts.Styles.Theme.IsDark),
		exportDir: opts.ExportDir,
		now:       opts.Now,
		log:       logging.Get(logging.CategoryUI),
	}
	m.resize(defaultWidth, defaultHeight)
	m.rederive()
	return m
}

// State returns the current UI state.
func (m Model) State() state.State {
	return m.state
}

// Derived returns the derived rows and chart for the current state.
func (m Model) Derived() derive.View {
	return m.view
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// setState installs s and re-derives when anything changed.
func (m *Model) setState(s state.State, action string) {
	logging.Get(logging.CategoryState).Debug("state change",
		zap.String("action", action),
		zap.String("category", s.Category),
		zap.String("query", s.Query),
		zap.String("sort", string(s.SortColumn)),
		zap.Stringer("order", s.SortOrder),
		zap.Strings("compare", s.CompareIDs),
		zap.Int("top", s.ChartTopN))
	m.state = s
	m.rederive()
}

// rederive recomputes the view and refreshes the table.
func (m *Model) rederive() {
	m.view = derive.Derive(m.weapons, m.state.Params())
	m.table.SetColumns(m.columns())
	m.table.SetRows(m.rows())
	if n := len(m.view.Rows); m.table.Cursor() >= n {
		m.table.SetCursor(max(n-1, 0))
	}
	m.fit()
}

// cursorID is the id of the highlighted row, or "" when the table is empty.
func (m Model) cursorID() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.view.Rows) {
		return ""
	}
	return m.view.Rows[i].ID
}

func (m *Model) resize(width, height int) {
	m.layout = ui.NewLayoutConfig(width, height)
	tableW, _ := m.layout.Panes()
	m.table.SetWidth(tableW)
	m.help.Width = width
	m.search.Width = max(tableW/3, 12)
	m.fit()
}

// fit gives the table every line the controls block leaves free. The block
// grows by a row of cards once something is picked for comparison.
func (m *Model) fit() {
	controls := lipgloss.Height(m.renderControls())
	m.table.SetHeight(max(m.layout.PaneHeight(controls), ui.MinPaneRows))
}
