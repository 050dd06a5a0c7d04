package core

import "github.com/charmbracelet/lipgloss"

var (
	ColorText     lipgloss.Color = "#cdd6f4"
	ColorMuted    lipgloss.Color = "#a6adc8"
	ColorBorder   lipgloss.Color = "#585b70"
	ColorAccent   lipgloss.Color = "#89b4fa"
	ColorBrand    lipgloss.Color = "#be0f2e"
	ColorGreen    lipgloss.Color = "#a6e3a1"
	ColorError    lipgloss.Color = "#f38ba8"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
)

var (
	appStyle = lipgloss.NewStyle().Foreground(ColorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(ColorBrand).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(ColorText)
	headerUserStyle = lipgloss.NewStyle().Foreground(ColorMuted).Background(colorMantle)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Background(colorSurface0).
				Bold(true)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
)
