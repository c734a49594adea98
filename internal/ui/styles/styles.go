// Package styles provides shared lipgloss styles for interactive prompts
// and command output.
package styles

import "charm.land/lipgloss/v2"

// Colors used throughout the UI
var (
	// Accent is the highlight color for selected/active items
	Accent = lipgloss.Color("212")

	// Success is used for checkmarks and positive outcomes
	Success = lipgloss.Color("82")

	// Error is used for error messages and failed checks
	Error = lipgloss.Color("196")

	// Warning is used for non-fatal findings
	Warning = lipgloss.Color("214")

	// Muted is used for secondary text
	Muted = lipgloss.Color("240")
)

// Common styles
var (
	AccentStyle  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
)

// Symbols for check results
const (
	CheckMark = "✓"
	WarnMark  = "⚠"
	CrossMark = "✗"
)
