package cli

import "github.com/charmbracelet/lipgloss"

// UI styles. Color palette "Blue Moon" from https://gogh-co.github.io/Gogh/
const (
	colorGray     = "#353b52"
	colorGreen    = "#acfab4"
	colorRed      = "#e61f44"
	colorPurple   = "#b9a3eb"
	colorBlue     = "#89ddff"
	colorYellowed = "#f0d5a8"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorBlue))
	headerStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorPurple))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorBlue))
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGreen))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorRed))
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorYellowed))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGray))
)
