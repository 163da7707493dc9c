package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// palette of the original item screen
var (
	colorWhite    = lipgloss.Color("#FFFFFF")
	colorBlack    = lipgloss.Color("#000000")
	colorCerulean = lipgloss.Color("#1E7FCB")
	colorWarning  = lipgloss.Color("#D70015")
	colorMuted    = lipgloss.Color("#8E8E93")
)

var (
	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWarning)

	itemRowStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorCerulean).
			Padding(1, 1)
	itemTextStyle = lipgloss.NewStyle().Faint(true)
	buttonStyle   = lipgloss.NewStyle().
			Background(colorBlack).
			Foreground(colorWhite).
			Bold(true).
			Transform(strings.ToUpper).
			Padding(0, 1)

	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWarning).
			Padding(1, 2)
	promptMessageStyle = lipgloss.NewStyle().Foreground(colorMuted)
	destructiveStyle   = lipgloss.NewStyle().Foreground(colorWarning).Bold(true).Padding(0, 1)
	cancelStyle        = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	defaultOptionStyle = lipgloss.NewStyle().Padding(0, 1)
)
