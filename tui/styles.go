// Package tui implements the desktop-style terminal front end. Styling uses
// the MedAI healthcare palette: deep medical teal with semantic status
// colors.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Primary       = lipgloss.Color("#0D7377") // deep medical teal
	Accent        = lipgloss.Color("#14B8A6") // bright teal
	Success       = lipgloss.Color("#10B981") // medical green
	Warning       = lipgloss.Color("#F59E0B") // attention orange
	Danger        = lipgloss.Color("#EF4444") // alert red
	TextSecondary = lipgloss.Color("#64748B")
	Border        = lipgloss.Color("#E2E8F0")
)

type Styles struct {
	Header      lipgloss.Style
	Subtitle    lipgloss.Style
	Badge       lipgloss.Style
	Muted       lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
	Danger      lipgloss.Style
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Notice      lipgloss.Style
	Selected    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Primary).
			Padding(0, 1),
		Subtitle:  lipgloss.NewStyle().Foreground(Accent),
		Badge:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(Accent).Padding(0, 1),
		Muted:     lipgloss.NewStyle().Foreground(TextSecondary),
		Success:   lipgloss.NewStyle().Foreground(Success),
		Warning:   lipgloss.NewStyle().Foreground(Warning),
		Danger:    lipgloss.NewStyle().Foreground(Danger),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(Primary),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Primary).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().Foreground(TextSecondary).Padding(0, 2),
		Notice:      lipgloss.NewStyle().Foreground(Warning).Bold(true),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(Accent),
	}
}

func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		width = 40
	}
	return s.Muted.Render(strings.Repeat("─", width))
}
