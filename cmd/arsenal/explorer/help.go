package explorer

import (
	"fmt"
	"strings"

	"arsenal/cmd/arsenal/ui"
	"arsenal/internal/derive"
	"arsenal/internal/state"

	"github.com/charmbracelet/glamour"
)

// helpMarkdown builds the help overlay text from the key map so the two
// never drift apart.
func helpMarkdown(k keyMap) string {
	var sb strings.Builder
	sb.WriteString("# Weapon explorer\n\n")
	sb.WriteString("DPS is body damage times fire rate, rounded to the nearest whole number.\n\n")
	sb.WriteString("## Keys\n\n")
	sb.WriteString("| Key | Action |\n|---|---|\n")
	for _, group := range k.FullHelp() {
		for _, b := range group {
			h := b.Help()
			fmt.Fprintf(&sb, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}
	sb.WriteString("\n## Sort columns\n\n")
	for i, c := range derive.Columns() {
		fmt.Fprintf(&sb, "%d. %s (`%s`)\n", i+1, ui.ColumnLabel(c), c)
	}
	sb.WriteString("\nPressing the same number again flips the direction. `0` restores catalog order.\n\n")
	fmt.Fprintf(&sb, "## Compare\n\nUp to %d weapons can be compared side by side. ", state.MaxCompare)
	sb.WriteString("Rows marked `[-]` stay locked until a pick is removed.\n\n")
	fmt.Fprintf(&sb, "## Chart\n\n`n` cycles the chart between the top %v weapons of the filtered list.\n", state.ChartTopNOptions)
	return sb.String()
}

// helpPage renders the help markdown with glamour, once per width.
type helpPage struct {
	dark     bool
	width    int
	rendered string
}

func newHelpPage(dark bool) *helpPage {
	return &helpPage{dark: dark}
}

func (h *helpPage) Render(k keyMap, width int) string {
	width = max(width, 40)
	if h.rendered != "" && h.width == width {
		return h.rendered
	}

	md := helpMarkdown(k)
	style := "light"
	if h.dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	h.width = width
	h.rendered = out
	return out
}
