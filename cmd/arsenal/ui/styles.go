// Package ui renders the weapon explorer: palette, category badges,
// comparison cards and the DPS bar chart.
package ui

import (
	"os"
	"strconv"
	"strings"

	"arsenal/internal/catalog"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#f4f5f6")
	LightForeground = lipgloss.Color("#1b1f24")
	LightPrimary    = lipgloss.Color("#bd3944") // Signal red
	LightAccent     = lipgloss.Color("#0f7b8a")
	LightMuted      = lipgloss.Color("#6b7280")
	LightBorder     = lipgloss.Color("#d0d4da")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#0f1923")
	DarkForeground = lipgloss.Color("#ece8e1")
	DarkPrimary    = lipgloss.Color("#ff4655")
	DarkAccent     = lipgloss.Color("#38c6d4")
	DarkMuted      = lipgloss.Color("#8b97a3")
	DarkBorder     = lipgloss.Color("#2b3945")
	DarkCard       = lipgloss.Color("#1a2633")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#8BC34A")
	Warning     = lipgloss.Color("#FFC107")

	// Category colors
	DefaultCategoryColor = lipgloss.Color("#777777")
	categoryColors       = map[catalog.Category]lipgloss.Color{
		catalog.CategorySidearm: lipgloss.Color("#9e9e9e"),
		catalog.CategorySMG:     lipgloss.Color("#4caf50"),
		catalog.CategoryShotgun: lipgloss.Color("#ff9800"),
		catalog.CategoryRifle:   lipgloss.Color("#2196f3"),
		catalog.CategorySniper:  lipgloss.Color("#9c27b0"),
		catalog.CategoryHeavy:   lipgloss.Color("#f44336"),
	}
)

// CategoryColor returns the badge color of a category. Unknown categories
// get DefaultCategoryColor.
func CategoryColor(c catalog.Category) lipgloss.Color {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return DefaultCategoryColor
}

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// DetectTheme returns the dark theme when forceDark is set or COLORFGBG
// reports a dark background, and the light theme otherwise.
func DetectTheme(forceDark bool) Theme {
	if forceDark {
		return DarkTheme()
	}

	// COLORFGBG is "foreground;background"; background 0-6 and 8 are dark.
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bg, err := strconv.Atoi(parts[1]); err == nil && ((bg >= 0 && bg <= 6) || bg == 8) {
			return DarkTheme()
		}
	}

	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Header lipgloss.Style
	Footer lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Controls
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Prompt    lipgloss.Style

	// Components
	Card        lipgloss.Style
	Placeholder lipgloss.Style
	Divider     lipgloss.Style
	Badge       lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(theme.Accent).
			Padding(0, 1).
			Bold(true),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Card: lipgloss.NewStyle().
			Background(theme.Card).
			Foreground(theme.Foreground).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		Placeholder: lipgloss.NewStyle().
			Foreground(DefaultCategoryColor).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme(false))
}

// CategoryBadge renders c on its category color.
func (s Styles) CategoryBadge(c catalog.Category) string {
	return s.Badge.Background(CategoryColor(c)).Render(string(c))
}

// CategoryText renders c in its category color without a background.
func (s Styles) CategoryText(c catalog.Category) string {
	return lipgloss.NewStyle().Foreground(CategoryColor(c)).Render(string(c))
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	if width < 1 {
		return ""
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
