package studentform

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	primaryColor = lipgloss.Color("212")
	errorColor   = lipgloss.Color("196")
	successColor = lipgloss.Color("42")
	mutedColor   = lipgloss.Color("241")
	hoverBg      = lipgloss.Color("237")
)

// Button styles
var (
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 2)

	buttonFocusedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(primaryColor).
				Bold(true).
				Padding(0, 2)

	buttonHoverStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("245")).
				Padding(0, 2)
)

// Grid styles
var (
	cellStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cellSelectedStyle = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	cellHoverStyle    = lipgloss.NewStyle().Background(hoverBg)
	cellCursorStyle   = lipgloss.NewStyle().Reverse(true)
	headerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true)
	toggleStyle       = lipgloss.NewStyle().Foreground(mutedColor)
)

// Text styles
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	labelStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor)
	successStyle = lipgloss.NewStyle().Foreground(successColor)
)
