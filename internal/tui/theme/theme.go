// Package theme centralizes the lipgloss colors and styles shared by the
// editor screens.
package theme

import "github.com/charmbracelet/lipgloss"

// Colors used across the TUIs.
var (
	Border             = lipgloss.Color("240")
	LightText          = lipgloss.Color("229")
	MutedText          = lipgloss.Color("241")
	SelectedBackground = lipgloss.Color("57")
	Green              = lipgloss.Color("42")
	Yellow             = lipgloss.Color("214")
	Red                = lipgloss.Color("196")
)

var (
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(LightText).
		Background(SelectedBackground)

	Selected = lipgloss.NewStyle().
			Foreground(LightText).
			Background(SelectedBackground)

	Dim = lipgloss.NewStyle().
		Foreground(MutedText)

	Message = lipgloss.NewStyle().
		Foreground(Green)

	Warning = lipgloss.NewStyle().
		Foreground(Yellow)

	Error = lipgloss.NewStyle().
		Foreground(Red)

	Base = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Border)
)
