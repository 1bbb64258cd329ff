// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette - shared hex colors for consistent theming of CLI output.
// These colors are designed for dark terminal backgrounds with good contrast.
const (
	// ColorError is red - used for fatal errors.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for per-file warnings.
	ColorWarning = lipgloss.Color("#F59E0B")
)

var (
	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages and caution indicators.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)
