package styles

import (
	"github.com/charmbracelet/lipgloss"

	"vitrine/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Info      = lipgloss.Color("#60A5FA") // Blue
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")
	Backdrop  = lipgloss.Color("#111827")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Gallery cards
	Card = lipgloss.NewStyle().
		PaddingLeft(2)

	CardSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1)

	CardHost = lipgloss.NewStyle().
			Foreground(Info)

	CardTag = lipgloss.NewStyle().
		Foreground(Muted)

	// Selected tag chips
	Chip = lipgloss.NewStyle().
		Background(Secondary).
		Foreground(Black).
		Padding(0, 1).
		MarginRight(1)

	ChipFocused = lipgloss.NewStyle().
			Background(Warning).
			Foreground(Black).
			Bold(true).
			Padding(0, 1).
			MarginRight(1)

	// Lightbox
	LightboxFrame = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Primary).
			Padding(1, 3).
			Align(lipgloss.Center)

	LightboxImage = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	Caption = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Labels
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// StatusColor returns the badge color for an item status
func StatusColor(s domain.Status) lipgloss.Color {
	switch s {
	case domain.StatusCompleted:
		return Secondary
	case domain.StatusAbandoned:
		return Error
	case domain.StatusOnHold:
		return Warning
	case domain.StatusActive:
		return Info
	default:
		return Muted
	}
}

// StatusBadge renders the short status label of a card
func StatusBadge(s domain.Status) string {
	return lipgloss.NewStyle().Foreground(StatusColor(s)).Render("[" + string(s) + "]")
}
