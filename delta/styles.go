package delta

import "github.com/charmbracelet/lipgloss/v2"

var (
	rgbPink   = lipgloss.Color("201")
	rgbRed    = lipgloss.Color("196")
	rgbGreen  = lipgloss.Color("46")
	rgbYellow = lipgloss.Color("220")
	rgbGrey   = lipgloss.Color("246")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(rgbPink)

	subtleStyle = lipgloss.NewStyle().
			Foreground(rgbGrey)

	slowerStyle = lipgloss.NewStyle().
			Foreground(rgbRed)

	fasterStyle = lipgloss.NewStyle().
			Foreground(rgbGreen)

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(rgbYellow)
)
