// ============================================================================
// molecule - Chemical Formula Atom Counter
// ============================================================================
//
// Package:     explorer
// Description: Styles for the formula explorer TUI
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package explorer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/molecule/internal/render"
)

// Logo/Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(render.ColorPrimary).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(render.ColorMuted).
			Italic(true)
)

// Panel styles
var (
	InputPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(render.ColorPrimary).
			Padding(0, 1)

	ResultPanelStyle = lipgloss.NewStyle().
				Padding(1, 0, 0, 1)

	SummaryStyle = lipgloss.NewStyle().
			Foreground(render.ColorSuccess).
			Bold(true)

	HistoryStyle = lipgloss.NewStyle().
			Foreground(render.ColorMuted)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(render.ColorSecondary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(render.ColorMuted)

	HelpStyle = lipgloss.NewStyle().
			MarginTop(1)
)

// Logo is shown in the header
const Logo = "⚗ molecule explorer"

// RenderKeyHint renders a key hint for the help bar
func RenderKeyHint(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}
