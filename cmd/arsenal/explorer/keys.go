package explorer

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Search       key.Binding
	Leave        key.Binding
	ClearQuery   key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	Sort         key.Binding
	ClearSort    key.Binding
	Compare      key.Binding
	ClearCompare key.Binding
	CycleTop     key.Binding
	Pane         key.Binding
	Export       key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextCategory, k.Sort, k.Compare, k.CycleTop, k.Pane, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.ClearQuery, k.Leave},
		{k.NextCategory, k.PrevCategory},
		{k.Sort, k.ClearSort},
		{k.Compare, k.ClearCompare},
		{k.CycleTop, k.Pane, k.Export, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Leave: key.NewBinding(
		key.WithKeys("esc", "enter"),
		key.WithHelp("esc", "leave search"),
	),
	ClearQuery: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("ctrl+u", "clear search"),
	),
	NextCategory: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "category"),
	),
	PrevCategory: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev category"),
	),
	Sort: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
		key.WithHelp("1-7", "sort"),
	),
	ClearSort: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "unsort"),
	),
	Compare: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space/x", "compare"),
	),
	ClearCompare: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear compare"),
	),
	CycleTop: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "chart size"),
	),
	Pane: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "table/chart"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export xlsx"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
