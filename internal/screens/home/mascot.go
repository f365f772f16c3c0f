package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/persona/internal/bank"
	"github.com/abhisek/persona/internal/ui/theme"
)

// RenderEmblem draws the four axes as a 2x2 grid of letter pairs, each in
// its dimension colour.
func RenderEmblem() string {
	dims := bank.AllDimensions()
	cells := make([]string, len(dims))
	for i, d := range dims {
		first, second := d.Letters()
		cells[i] = lipgloss.NewStyle().
			Foreground(theme.DimensionColor(d)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.DimensionColor(d)).
			Bold(true).
			Padding(0, 1).
			Render(string(first) + " · " + string(second))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, cells[0], " ", cells[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, cells[2], " ", cells[3])
	return strings.Join([]string{top, bottom}, "\n")
}
