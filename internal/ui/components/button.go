package components

import (
	"github.com/abhisek/persona/internal/ui/theme"
)

// Button is a one-line call to action. Key handling belongs to the
// owning screen; Button only renders.
type Button struct {
	Label  string
	Active bool
}

func NewButton(label string, active bool) Button {
	return Button{Label: label, Active: active}
}

// View renders the button, marked with a pointer when active.
func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}
