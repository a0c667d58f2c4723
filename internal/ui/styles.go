package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/orbfield/internal/fx"
)

// Colour pairs for the two themes. The effect's theme is toggled inside the
// app, so these are resolved by pick rather than by the terminal background.
var (
	textColor    = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#AAAAAA"}
	faintColor   = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"}
	primaryColor = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#93C5FD"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	okColor      = lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#4ADE80"}
)

func pick(c lipgloss.AdaptiveColor, t fx.Theme) lipgloss.Color {
	if t == fx.ThemeDark {
		return lipgloss.Color(c.Dark)
	}
	return lipgloss.Color(c.Light)
}

type styles struct {
	header    lipgloss.Style
	title     lipgloss.Style
	text      lipgloss.Style
	muted     lipgloss.Style
	accent    lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	label     lipgloss.Style
	err       lipgloss.Style
	ok        lipgloss.Style
	status    lipgloss.Style
	help      lipgloss.Style
}

func stylesFor(t fx.Theme) styles {
	return styles{
		header: lipgloss.NewStyle().Bold(true).Foreground(pick(mutedColor, t)),
		title:  lipgloss.NewStyle().Bold(true).Foreground(pick(textColor, t)),
		text:   lipgloss.NewStyle().Foreground(pick(textColor, t)),
		muted:  lipgloss.NewStyle().Foreground(pick(mutedColor, t)),
		accent: lipgloss.NewStyle().Bold(true).Foreground(pick(primaryColor, t)),
		tab:    lipgloss.NewStyle().Foreground(pick(mutedColor, t)),
		activeTab: lipgloss.NewStyle().Bold(true).Underline(true).
			Foreground(pick(primaryColor, t)),
		label:  lipgloss.NewStyle().Foreground(pick(mutedColor, t)),
		err:    lipgloss.NewStyle().Foreground(pick(errorColor, t)),
		ok:     lipgloss.NewStyle().Foreground(pick(okColor, t)),
		status: lipgloss.NewStyle().Foreground(pick(mutedColor, t)),
		help:   lipgloss.NewStyle().Foreground(pick(faintColor, t)),
	}
}
