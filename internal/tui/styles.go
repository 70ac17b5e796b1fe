package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tick/internal/config/colors"
	"github.com/thenoetrevino/tick/internal/models"
)

// styles holds every lipgloss style of the TUI, derived from one color scheme
type styles struct {
	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style
	row         lipgloss.Style
	selectedRow lipgloss.Style
	doneName    lipgloss.Style
	subtle      lipgloss.Style
	detailBox   lipgloss.Style
	detailTitle lipgloss.Style
	createBox   lipgloss.Style
	editBox     lipgloss.Style
	deleteBox   lipgloss.Style
	helpBox     lipgloss.Style
	infoNote    lipgloss.Style
	errorNote   lipgloss.Style
	priority    map[models.Priority]lipgloss.Style
}

func newStyles(scheme colors.ColorScheme) styles {
	dialog := func(border string) lipgloss.Style {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(border)).
			Padding(1, 2)
	}

	return styles{
		activeTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Title)).
			Background(lipgloss.Color(scheme.Accent)).
			Padding(0, 1),
		inactiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Subtle)).
			Padding(0, 1),
		row: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Normal)).
			PaddingLeft(2),
		selectedRow: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Title)).
			Background(lipgloss.Color(scheme.SelectedBg)).
			PaddingLeft(2),
		doneName: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color(scheme.Completed)),
		subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Subtle)).
			Italic(true),
		detailBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.Border)).
			Padding(0, 1),
		detailTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Accent)),
		createBox: dialog(scheme.Create),
		editBox:   dialog(scheme.Edit),
		deleteBox: dialog(scheme.Delete),
		helpBox:   dialog(scheme.Accent),
		infoNote: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.InfoFg)).
			Background(lipgloss.Color(scheme.InfoBg)).
			Padding(0, 1),
		errorNote: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.ErrorFg)).
			Background(lipgloss.Color(scheme.ErrorBg)).
			Padding(0, 1),
		priority: map[models.Priority]lipgloss.Style{
			models.PriorityHigh:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(scheme.PriorityHigh)),
			models.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.PriorityMedium)),
			models.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.PriorityLow)),
		},
	}
}
