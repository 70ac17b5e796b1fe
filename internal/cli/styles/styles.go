package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tick/internal/config/colors"
	"github.com/thenoetrevino/tick/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Priority:", "Deadline:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"
	HeaderStyle   lipgloss.Style // Table header row

	// Status styles
	DoneStyle    lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	priorityColors map[models.Priority]string

	titleCaser = cases.Title(language.English)
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent)).
		Bold(true).
		MarginTop(1)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color(scheme.Accent))

	DoneStyle = lipgloss.NewStyle().
		Strikethrough(true).
		Foreground(lipgloss.Color(scheme.Completed))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.InfoFg)).
		Background(lipgloss.Color(scheme.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.ErrorFg)).
		Background(lipgloss.Color(scheme.ErrorBg)).
		Padding(0, 1)

	priorityColors = map[models.Priority]string{
		models.PriorityHigh:   scheme.PriorityHigh,
		models.PriorityMedium: scheme.PriorityMedium,
		models.PriorityLow:    scheme.PriorityLow,
	}
}

// Title capitalizes a lowercase label such as "high" or "open"
func Title(s string) string {
	return titleCaser.String(s)
}

// Priority renders the priority name in its configured color
func Priority(p models.Priority) string {
	return lipgloss.NewStyle().
		Bold(p == models.PriorityHigh).
		Foreground(lipgloss.Color(priorityColors[p])).
		Render(Title(p.String()))
}

// Status renders a check mark for completed tasks and an empty box otherwise
func Status(s models.Status) string {
	if s.IsCompleted() {
		return SuccessStyle.Render("✓ Done")
	}
	return ValueStyle.Render("☐ Open")
}
