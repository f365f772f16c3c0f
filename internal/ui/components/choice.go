package components

import (
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/persona/internal/ui/theme"
)

// choiceLabels prefix options in display order.
var choiceLabels = []string{"A", "B", "C", "D"}

// Choice is a vertical option picker. It only moves the cursor; the owning
// screen decides what Enter or a shortcut key does.
type Choice struct {
	Options  []string
	Selected int
	Accent   color.Color
}

// NewChoice creates a picker with the first option selected.
func NewChoice(options []string, accent color.Color) Choice {
	return Choice{Options: options, Accent: accent}
}

// Update handles cursor movement.
func (c Choice) Update(msg tea.Msg) Choice {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c
	}

	switch kmsg.String() {
	case "up", "k", "shift+tab":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j", "tab":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}
	return c
}

// View renders each option as a bordered row of width w.
func (c Choice) View(w int) string {
	accent := c.Accent
	if accent == nil {
		accent = theme.Primary
	}

	rows := make([]string, 0, len(c.Options))
	for i, opt := range c.Options {
		label := opt
		if i < len(choiceLabels) {
			label = choiceLabels[i] + "  " + opt
		}

		style := lipgloss.NewStyle().
			Width(w).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
		if i == c.Selected {
			style = style.BorderForeground(accent).Foreground(accent).Bold(true)
			label = "▸ " + label
		} else {
			style = style.BorderForeground(theme.Border).Foreground(theme.Text)
			label = "  " + label
		}
		rows = append(rows, style.Render(label))
	}
	return strings.Join(rows, "\n")
}
