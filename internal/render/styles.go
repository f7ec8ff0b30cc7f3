// ============================================================================
// molecule - Chemical Formula Atom Counter
// ============================================================================
//
// Package:     render
// Description: Styles for rendered output
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette - shared with the explorer TUI
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
)

// Styles groups the styles used by a Renderer
type Styles struct {
	Heading lipgloss.Style
	Header  lipgloss.Style
	Border  lipgloss.Style
	Symbol  lipgloss.Style
	Cell    lipgloss.Style
	Total   lipgloss.Style
	Error   lipgloss.Style
	Caret   lipgloss.Style
}

// NewStyles returns colored styles, or plain ones when color is false
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{
			Heading: plain,
			Header:  plain,
			Border:  plain,
			Symbol:  plain,
			Cell:    plain,
			Total:   plain,
			Error:   plain,
			Caret:   plain,
		}
	}

	return Styles{
		Heading: lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true),
		Header:  lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true),
		Border:  lipgloss.NewStyle().Foreground(ColorMuted),
		Symbol:  lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true),
		Cell:    lipgloss.NewStyle().Foreground(ColorText),
		Total:   lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(ColorError).Bold(true),
		Caret:   lipgloss.NewStyle().Foreground(ColorError).Bold(true),
	}
}
