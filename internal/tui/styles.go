// Package tui provides terminal user interface components for opsdeck.
//
// This package provides a centralized style system using Lip Gloss for
// consistent component styling. All colors use AdaptiveColor for light/dark
// terminal support.
//
// Triple redundancy is maintained for all status displays: icon + color +
// text, so the board stays readable with NO_COLOR set or on dumb terminals.
package tui

import (
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mrz1836/opsdeck/internal/constants"
)

//nolint:gochecknoglobals // Intentional package-level constants for TUI styling API
var (
	// ColorPrimary is blue, used for active states and the selected tab.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess is green, used for completed tasks.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorWarning is yellow, used for overdue and lapsed tasks.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError is red, used for rejected tasks and errors.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for archived tasks and secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}

	// StyleBold applies bold formatting to text.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim applies dim/faint formatting to text.
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// CheckNoColor disables lipgloss styling when the terminal cannot render
// color. Call this at the start of commands that output styled text.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns true if the terminal supports colors. Detection
// honors NO_COLOR, CLICOLOR_FORCE, TERM=dumb, and the attached descriptor.
func HasColorSupport() bool {
	p := colorprofile.Detect(os.Stdout, os.Environ())
	return p != colorprofile.NoTTY && p != colorprofile.Ascii
}

// StatusColors returns the semantic color definitions for task statuses.
// Uses AdaptiveColor for light/dark terminal support.
func StatusColors() map[constants.TaskStatus]lipgloss.AdaptiveColor {
	return map[constants.TaskStatus]lipgloss.AdaptiveColor{
		// Active states - Blue
		constants.TaskStatusPending:    {Light: "#0087AF", Dark: "#00D7FF"},
		constants.TaskStatusInProgress: {Light: "#0087AF", Dark: "#00D7FF"},

		// Waiting states - Yellow
		constants.TaskStatusSubmittedForReview: {Light: "#D7AF00", Dark: "#FFD700"},
		constants.TaskStatusIncomplete:         {Light: "#D7AF00", Dark: "#FFD700"},

		// Done states - Green
		constants.TaskStatusApproved: {Light: "#00875F", Dark: "#00FF87"},

		// Terminal states
		constants.TaskStatusRejected:         {Light: "#AF0000", Dark: "#FF5F5F"},
		constants.TaskStatusDoneAutoApproved: {Light: "#585858", Dark: "#6C6C6C"},
	}
}

// StatusIcon returns the icon for a task status. Unknown statuses get a
// question mark so they remain visible instead of disappearing.
func StatusIcon(status constants.TaskStatus) string {
	icons := map[constants.TaskStatus]string{
		constants.TaskStatusPending:            "○",
		constants.TaskStatusInProgress:         "●",
		constants.TaskStatusSubmittedForReview: "⟳",
		constants.TaskStatusApproved:           "✓",
		constants.TaskStatusDoneAutoApproved:   "✓",
		constants.TaskStatusRejected:           "✗",
		constants.TaskStatusIncomplete:         "⚠",
	}
	if icon, ok := icons[status]; ok {
		return icon
	}
	return "?"
}

// FormatStatus formats a status with its icon and label. Color is applied
// separately when rendering; this provides the icon + text half of the
// triple redundancy.
func FormatStatus(status constants.TaskStatus) string {
	return StatusIcon(status) + " " + status.Label()
}

// StatusStyle returns a foreground style for the status, or an unstyled
// style when color is unsupported.
func StatusStyle(status constants.TaskStatus) lipgloss.Style {
	if !HasColorSupport() {
		return lipgloss.NewStyle()
	}
	if color, ok := StatusColors()[status]; ok {
		return lipgloss.NewStyle().Foreground(color)
	}
	return lipgloss.NewStyle()
}

// PriorityStyle returns a foreground style for the priority.
func PriorityStyle(p constants.TaskPriority) lipgloss.Style {
	if !HasColorSupport() {
		return lipgloss.NewStyle()
	}
	switch p {
	case constants.TaskPriorityHigh:
		return lipgloss.NewStyle().Foreground(ColorError)
	case constants.TaskPriorityMedium:
		return lipgloss.NewStyle().Foreground(ColorWarning)
	case constants.TaskPriorityLow:
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	default:
		return lipgloss.NewStyle().Foreground(ColorMuted)
	}
}

// TableStyles holds lipgloss styles for table rendering.
type TableStyles struct {
	Header lipgloss.Style
	Group  lipgloss.Style
	Dim    lipgloss.Style
}

// NewTableStyles creates styles for table rendering.
func NewTableStyles() *TableStyles {
	return &TableStyles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}),
		Group: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Dim: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// OutputStyles holds common output styles.
type OutputStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Dim     lipgloss.Style
}

// NewOutputStyles creates common output styles using AdaptiveColor for
// light/dark terminal support.
func NewOutputStyles() *OutputStyles {
	return &OutputStyles{
		Success: lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(ColorError).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(ColorWarning),
		Info:    lipgloss.NewStyle().Foreground(ColorPrimary),
		Dim:     lipgloss.NewStyle().Foreground(ColorMuted),
	}
}
