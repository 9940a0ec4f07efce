package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/config/colors"
	"github.com/thenoetrevino/taskflow/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Priority:", "Due:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For column headers

	// Status styles
	OverdueStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	palette colors.ColorScheme
)

func init() {
	Init(*colors.GetPreset(colors.DefaultPreset))
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	palette = scheme

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

	OverdueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.ErrorFg)).
		Background(lipgloss.Color(scheme.ErrorBg)).
		Padding(0, 1)

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

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.WarningFg)).
		Background(lipgloss.Color(scheme.WarningBg)).
		Padding(0, 1)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color or color token
func ColoredText(text, color string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Token(color))).
		Render(text)
}

// PriorityColor returns the palette color for a priority badge
func PriorityColor(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return palette.PriorityHigh
	case models.PriorityLow:
		return palette.PriorityLow
	default:
		return palette.PriorityMedium
	}
}

// RenderPriority renders a priority as a colored "[high]" badge
func RenderPriority(p models.Priority) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(PriorityColor(p))).
		Bold(true).
		Render("[" + string(p) + "]")
}

// RenderColumnHeader renders "Title (count)" in the column's color
func RenderColumnHeader(c models.Column) string {
	return SectionStyle.
		Foreground(lipgloss.Color(colors.Token(c.Color))).
		Render(fmt.Sprintf("%s (%d)", c.Title, len(c.Tasks)))
}

// RenderTaskLine renders a one-line task summary
// Format: "• Title [priority] @assignee due 2025-06-30"
func RenderTaskLine(t models.Task, overdue bool) string {
	line := fmt.Sprintf("• %s %s %s",
		ValueStyle.Render(t.Title),
		RenderPriority(t.Priority),
		SubtitleStyle.Render("@"+t.Assignee))
	if t.DueDate != nil {
		due := "due " + t.DueDate.String()
		if overdue {
			line += " " + OverdueStyle.Render(due)
		} else {
			line += " " + SubtitleStyle.Render(due)
		}
	}
	return line
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
