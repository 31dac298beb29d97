package output

import "github.com/charmbracelet/lipgloss"

// Color palette for terminal output
var (
	successColor = lipgloss.Color("#43BF6D") // Green - online, on
	errorColor   = lipgloss.Color("#FF5555") // Red - offline, faults
	mutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	titleColor   = lipgloss.Color("#7D56F4") // Purple - headings
)

var (
	// titleStyle renders the device name heading in the detail view.
	titleStyle = lipgloss.NewStyle().
			Foreground(titleColor).
			Bold(true)

	// labelStyle renders field labels like "Room:" and "Type:".
	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// onlineStyle and offlineStyle render the connectivity state.
	onlineStyle = lipgloss.NewStyle().
			Foreground(successColor)
	offlineStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	// faultStyle renders self-check failures.
	faultStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)
