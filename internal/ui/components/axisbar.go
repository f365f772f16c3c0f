package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/persona/internal/ui/theme"
)

// AxisBar shows how a dimension split between its two letters.
type AxisBar struct {
	LeftLabel  string
	RightLabel string
	LeftShare  float64
	LeftWins   bool
	Color      color.Color
}

// View renders "left 60% [■■■■■■    ] 40% right" within width w.
func (a AxisBar) View(w int) string {
	win := lipgloss.NewStyle().Foreground(a.Color).Bold(true)
	lose := lipgloss.NewStyle().Foreground(theme.TextDim)

	leftStyle, rightStyle := lose, win
	if a.LeftWins {
		leftStyle, rightStyle = win, lose
	}

	leftPct := int(a.LeftShare*100 + 0.5)
	left := leftStyle.Render(fmt.Sprintf("%s %d%%", a.LeftLabel, leftPct))
	right := rightStyle.Render(fmt.Sprintf("%d%% %s", 100-leftPct, a.RightLabel))
	labels := left + strings.Repeat(" ", max(1, w-lipgloss.Width(left)-lipgloss.Width(right))) + right

	filled := fill(w, a.LeftShare)
	bar := lipgloss.NewStyle().Background(a.Color).Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", w-filled))

	return labels + "\n" + bar
}
