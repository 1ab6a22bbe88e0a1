package tui

import "github.com/charmbracelet/lipgloss"

var (
	heroAccentColor        = lipgloss.Color("#ff9f1c")
	heroSecondaryTextColor = lipgloss.Color("#c9ada7")
	mutedBorderColor       = lipgloss.Color("#56526e")
	sectionColors          = map[string]lipgloss.Color{
		"problem":                  lipgloss.Color("#4ea8de"),
		"solution":                 lipgloss.Color("#57cc99"),
		"unique_value_proposition": lipgloss.Color("#2ec4b6"),
		"target_market":            lipgloss.Color("#b388eb"),
		"business_model":           lipgloss.Color("#ffb703"),
	}
)

var (
	heroTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(heroAccentColor)
	heroBadgeStyle     = lipgloss.NewStyle().Foreground(heroAccentColor).Border(lipgloss.RoundedBorder()).BorderForeground(heroAccentColor).Padding(0, 1)
	taglineStyle       = lipgloss.NewStyle().Foreground(heroSecondaryTextColor).Italic(true)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	labelStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	errorBannerStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("9")).Padding(0, 2)
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	panelStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(mutedBorderColor).Padding(0, 2)
	buttonStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 2)
	buttonBusyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4")).Background(lipgloss.Color("#56526e")).Padding(0, 2)
	statusBarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	cardStyle          = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(mutedBorderColor).Padding(0, 1)
	cardTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cardBadgeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#1b4332")).Background(lipgloss.Color("#b7e4c7")).Padding(0, 1)
	cardTaglineStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#e0def4"))
	fallbackStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244"))
	affordanceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4")).Border(lipgloss.NormalBorder()).BorderForeground(mutedBorderColor).Padding(0, 1)
)

func sectionTitleStyle(key string) lipgloss.Style {
	color, ok := sectionColors[key]
	if !ok {
		color = lipgloss.Color("81")
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}
