// Package themes holds the lipgloss styles for the TUI.
package themes

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/ecoscan/internal/model"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	Badge         lipgloss.Style
	UserBubble    lipgloss.Style
	BotBubble     lipgloss.Style
	Notice        lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusPending lipgloss.Style
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Italic        lipgloss.Style
	Box           lipgloss.Style
	RoundedBox    lipgloss.Style
	BorderedBox   lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Background    lipgloss.Color
	Info          lipgloss.Color
	Error         lipgloss.Color
	Warning       lipgloss.Color
	Success       lipgloss.Color
}

// Default is the default theme.
var Default = newTheme(palette{
	primary:    "#16a34a",
	secondary:  "#4ade80",
	success:    "#4CAF50",
	warning:    "#FF9800",
	danger:     "#F44336",
	info:       "#3b82f6",
	background: "#1a1a1a",
	foreground: "#fafafa",
	subtle:     "#a3a3a3",
	border:     "#404040",
	muted:      "#737373",
	panel:      "#262626",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:    "#a6e3a1",
	secondary:  "#94e2d5",
	success:    "#a6e3a1",
	warning:    "#f9e2af",
	danger:     "#f38ba8",
	info:       "#89dceb",
	background: "#1e1e2e",
	foreground: "#cdd6f4",
	subtle:     "#a6adc8",
	border:     "#45475a",
	muted:      "#6c7086",
	panel:      "#313244",
})

type palette struct {
	primary    string
	secondary  string
	success    string
	warning    string
	danger     string
	info       string
	background string
	foreground string
	subtle     string
	border     string
	muted      string
	panel      string
}

func newTheme(p palette) Theme {
	fg := lipgloss.Color(p.foreground)
	border := lipgloss.Color(p.border)

	return Theme{
		Primary:    lipgloss.Color(p.primary),
		Secondary:  lipgloss.Color(p.secondary),
		Success:    lipgloss.Color(p.success),
		Warning:    lipgloss.Color(p.warning),
		Error:      lipgloss.Color(p.danger),
		Info:       lipgloss.Color(p.info),
		Background: lipgloss.Color(p.background),
		Foreground: fg,
		Border:     border,
		Muted:      lipgloss.Color(p.muted),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.primary)),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)),
		Normal: lipgloss.NewStyle().
			Foreground(fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Italic: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(p.subtle)),

		Box: lipgloss.NewStyle().
			Padding(0, 1),
		BorderedBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border).
			Padding(0, 1),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.background)).
			Background(lipgloss.Color(p.primary)).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)).
			Padding(0, 2),
		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.background)).
			Background(lipgloss.Color(p.primary)).
			Padding(0, 1),
		UserBubble: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.background)).
			Background(lipgloss.Color(p.secondary)).
			Padding(0, 1),
		BotBubble: lipgloss.NewStyle().
			Foreground(fg).
			Background(lipgloss.Color(p.panel)).
			Padding(0, 1),
		Notice: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(p.warning)).
			Foreground(lipgloss.Color(p.warning)).
			Bold(true).
			Padding(0, 1),

		StatusSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.success)).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.warning)).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.danger)).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.info)).
			Bold(true),
		StatusPending: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)).
			Italic(true),
	}
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// CategoryIcons maps waste categories to emoji icons.
var CategoryIcons = map[model.Category]string{
	model.CategoryMetal:     "🥫",
	model.CategoryGlass:     "🍾",
	model.CategoryPlastic:   "🧴",
	model.CategoryTrash:     "🗑️",
	model.CategoryPaper:     "📄",
	model.CategoryFoodWaste: "🍂",
	model.CategoryEWaste:    "🔌",
	model.CategoryTextiles:  "👕",
	model.CategoryHazardous: "☣️",
	model.CategoryMedical:   "💊",
}

// GetCategoryIcon returns an icon for a category.
func GetCategoryIcon(category model.Category) string {
	if icon, ok := CategoryIcons[category]; ok {
		return icon
	}
	return "♻️"
}
