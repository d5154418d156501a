package organizer

import "github.com/charmbracelet/lipgloss"

// descriptionWidth is the wrap width for description text.
const descriptionWidth = 100

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	hintStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	descStyle    = lipgloss.NewStyle().Width(descriptionWidth)
)
