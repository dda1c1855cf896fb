// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package tui

import "github.com/charmbracelet/lipgloss"

// Semantic colors.
var (
	colorAccent  = lipgloss.Color("#3b82f6") // blue-500
	colorOK      = lipgloss.Color("#10b981") // green-500
	colorError   = lipgloss.Color("#ef4444") // red-500
	colorWarn    = lipgloss.Color("#eab308") // yellow-500
	colorDim     = lipgloss.Color("#6b7280") // gray-500
	colorMuted   = lipgloss.Color("#9ca3af") // gray-400
	colorText    = lipgloss.Color("#f8fafc") // slate-50
	colorPending = lipgloss.Color("#06b6d4") // cyan-500
)

// Styles holds all lipgloss styles for the session UI.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Selected lipgloss.Style
	Item     lipgloss.Style
	Dim      lipgloss.Style
	Muted    lipgloss.Style
	OK       lipgloss.Style
	Error    lipgloss.Style
	Warn     lipgloss.Style
	Score    lipgloss.Style
	Spinner  lipgloss.Style
	Prompt   lipgloss.Style

	Pointer string
}

// DefaultStyles returns the default session UI styles.
func DefaultStyles() *Styles {
	return &Styles{
		Title:    lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Header:   lipgloss.NewStyle().Foreground(colorText).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Item:     lipgloss.NewStyle().Foreground(colorText),
		Dim:      lipgloss.NewStyle().Foreground(colorDim),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
		OK:       lipgloss.NewStyle().Foreground(colorOK),
		Error:    lipgloss.NewStyle().Foreground(colorError).Bold(true),
		Warn:     lipgloss.NewStyle().Foreground(colorWarn),
		Score:    lipgloss.NewStyle().Foreground(colorOK),
		Spinner:  lipgloss.NewStyle().Foreground(colorPending),
		Prompt:   lipgloss.NewStyle().Foreground(colorAccent),

		Pointer: "❯",
	}
}
