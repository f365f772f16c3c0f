package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/persona/internal/bank"
)

// Color palette
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#A855F7") // Purple
	Highlight = lipgloss.Color("#FACC15") // Yellow
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Dimension accents, one per axis.
var (
	EnergyAccent     = lipgloss.Color("#F97316") // Orange
	PerceptionAccent = lipgloss.Color("#10B981") // Emerald
	JudgmentAccent   = lipgloss.Color("#3B82F6") // Blue
	LifestyleAccent  = lipgloss.Color("#A855F7") // Purple
)

// DimensionColor returns the accent used while a dimension is being asked
// and for its bar on the result screen.
func DimensionColor(d bank.Dimension) color.Color {
	switch d {
	case bank.EI:
		return EnergyAccent
	case bank.SN:
		return PerceptionAccent
	case bank.TF:
		return JudgmentAccent
	case bank.JP:
		return LifestyleAccent
	default:
		return Primary
	}
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Badge is the pill above the intro title.
var Badge = lipgloss.NewStyle().
	Foreground(Primary).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Primary).
	Bold(true).
	Padding(0, 2)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Components
var (
	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
