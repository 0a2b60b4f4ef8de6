package ui

import (
	"strings"

	"arsenal/internal/catalog"
	"arsenal/internal/derive"
	"arsenal/internal/state"

	"github.com/charmbracelet/lipgloss"
)

// CardWidth is the default outer width of a comparison card.
const CardWidth = 30

const (
	placeholderTitle = "(unselected)"
	placeholderBody  = "pick a weapon from the table"
	emptyCompareHint = "check weapons in the table to compare them side by side"
)

type stat struct {
	label string
	value string
}

func cardStats(w catalog.Weapon) []stat {
	return []stat{
		{"Cost", FormatCost(w.Cost)},
		{"DPS", FormatNumber(float64(derive.DPS(w)))},
		{"Fire rate", FormatNumber(w.FireRate)},
		{"Magazine", FormatNumber(float64(w.Magazine))},
		{"Head", FormatNumber(w.Damage.Head)},
		{"Body", FormatNumber(w.Damage.Body)},
		{"Leg", FormatNumber(w.Damage.Leg)},
	}
}

// CompareCard renders one weapon's stats as a bordered card of the given
// outer width.
func (s Styles) CompareCard(w catalog.Weapon, width int) string {
	inner := max(width-4, 16)

	var sb strings.Builder
	sb.WriteString(s.Bold.Render(w.Name))
	sb.WriteString(" ")
	sb.WriteString(s.CategoryBadge(w.Category))
	sb.WriteString("\n")

	for _, st := range cardStats(w) {
		gap := max(inner-lipgloss.Width(st.label)-lipgloss.Width(st.value), 1)
		sb.WriteString("\n")
		sb.WriteString(s.Muted.Render(st.label))
		sb.WriteString(strings.Repeat(" ", gap))
		sb.WriteString(s.Bold.Render(st.value))
	}

	return s.Card.Width(inner + 2).Render(sb.String())
}

// PlaceholderCard renders an empty comparison slot.
func (s Styles) PlaceholderCard(width int) string {
	inner := max(width-4, 16)
	body := lipgloss.NewStyle().Bold(true).Render(placeholderTitle) + "\n\n" + placeholderBody
	return s.Placeholder.Width(inner + 2).Render(body)
}

// ComparePanel renders the hint line and the comparison cards for the
// current selection. With nothing selected a usage hint replaces the cards.
// Otherwise both slots are drawn and any id the catalog cannot resolve
// renders as a placeholder.
func (s Styles) ComparePanel(st state.State, cat *catalog.Catalog, cardWidth int) string {
	var sb strings.Builder
	sb.WriteString(s.Title.Render("Compare"))
	sb.WriteString("  ")
	sb.WriteString(s.Muted.Render(CompareHint(st)))
	sb.WriteString("\n")

	if len(st.CompareIDs) == 0 {
		sb.WriteString(s.Subtitle.Render(emptyCompareHint))
		return sb.String()
	}

	cards := make([]string, 0, state.MaxCompare)
	for i := range state.MaxCompare {
		if i < len(st.CompareIDs) {
			if w, ok := cat.Lookup(st.CompareIDs[i]); ok {
				cards = append(cards, s.CompareCard(w, cardWidth))
				continue
			}
		}
		cards = append(cards, s.PlaceholderCard(cardWidth))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards[0], " ", cards[1]))
	return sb.String()
}
