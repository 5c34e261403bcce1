// Package tui implements the interactive dollcode converter: a single
// debounced input with live conversion, mirroring the behavior of the
// web front end it replaces.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette. Glyph output gets the accent; errors stay readable without
// shouting.
var (
	accent  = lipgloss.AdaptiveColor{Light: "#5a36a3", Dark: "#b794f6"}
	subtle  = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	danger  = lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"}
	success = lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#4ade80"}
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	ResultStyle = lipgloss.NewStyle().
			Foreground(accent)

	ResultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(danger)

	ModeStyle = lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true)

	CopiedStyle = lipgloss.NewStyle().
			Foreground(success)

	HelpStyle = lipgloss.NewStyle().
			Foreground(subtle)
)
