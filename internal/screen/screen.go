package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/persona/internal/i18n"
	"github.com/abhisek/persona/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscapeHandler is implemented by screens that handle Esc themselves
// instead of letting the app pop them.
type EscapeHandler interface {
	HandlesEscape() bool
}

// Prefs is display state shared by every screen. It is owned by the app
// model and only mutated from the update loop.
type Prefs struct {
	Locale i18n.Locale
}

// NewPrefs returns prefs for the given locale.
func NewPrefs(l i18n.Locale) *Prefs {
	return &Prefs{Locale: l}
}

// T is shorthand for a UI message in the current locale.
func (p *Prefs) T(key i18n.Key) string {
	return i18n.Message(p.Locale, key)
}

// ToggleLocale flips the display language.
func (p *Prefs) ToggleLocale() {
	p.Locale = p.Locale.Toggle()
}
