// Package style provides the shared colors and icons of the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// Header renders table header cells.
var Header = lipgloss.NewStyle().Bold(true).Foreground(Iris).Padding(0, 1)

// Cell renders table body cells.
var Cell = lipgloss.NewStyle().Padding(0, 1)

// Muted renders secondary text such as external paths.
var Muted = lipgloss.NewStyle().Foreground(Slate)
