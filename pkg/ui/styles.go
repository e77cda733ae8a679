package ui

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all CLI output.
var (
	Primary   = lipgloss.Color("#7D56F4") // purple
	Secondary = lipgloss.Color("#00D4AA") // teal

	Success = lipgloss.Color("#00D26A")
	Warning = lipgloss.Color("#FFB800")
	Error   = lipgloss.Color("#FF3838")
	Muted   = lipgloss.Color("#6B7280")

	// HTTP status code colors
	Status2xx = lipgloss.Color("#00D26A") // green
	Status3xx = lipgloss.Color("#4D96FF") // blue
	Status4xx = lipgloss.Color("#FFD93D") // yellow
	Status5xx = lipgloss.Color("#FF3838") // red
)

// Pre-configured styles.
var (
	SectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	SuccessStyle = lipgloss.NewStyle().Foreground(Success).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error).Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
)

// StatusStyle returns the style for an HTTP status code.
func StatusStyle(code int) lipgloss.Style {
	var c lipgloss.Color
	switch {
	case code >= 200 && code < 300:
		c = Status2xx
	case code >= 300 && code < 400:
		c = Status3xx
	case code >= 400 && code < 500:
		c = Status4xx
	default:
		c = Status5xx
	}
	return lipgloss.NewStyle().Foreground(c)
}
