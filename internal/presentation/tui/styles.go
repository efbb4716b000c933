package tui

import "github.com/charmbracelet/lipgloss"

var (
	BotColor    = lipgloss.Color("#10B981") // Green
	UserColor   = lipgloss.Color("#60A5FA") // Blue
	AccentColor = lipgloss.Color("#A78BFA") // Purple
	MutedColor  = lipgloss.Color("#9CA3AF") // Gray
	BorderColor = lipgloss.Color("#6B7280") // Gray (gray-500)

	BotLabel  = lipgloss.NewStyle().Bold(true).Foreground(BotColor)
	UserLabel = lipgloss.NewStyle().Bold(true).Foreground(UserColor)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(AccentColor)

	Hint = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	InputFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)
)
