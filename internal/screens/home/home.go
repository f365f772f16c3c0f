package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/persona/internal/i18n"
	"github.com/abhisek/persona/internal/router"
	"github.com/abhisek/persona/internal/screen"
	sessionscreen "github.com/abhisek/persona/internal/screens/session"
	"github.com/abhisek/persona/internal/ui/components"
	"github.com/abhisek/persona/internal/ui/layout"
)

const (
	itemStart = iota
	itemLanguage
	itemExit
)

// HomeScreen is the intro screen: title, description and the start menu.
type HomeScreen struct {
	prefs   *screen.Prefs
	factory sessionscreen.Factory
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. factory builds the engine for each new run.
func New(prefs *screen.Prefs, factory sessionscreen.Factory) *HomeScreen {
	h := &HomeScreen{prefs: prefs, factory: factory}

	items := []components.MenuItem{
		itemStart: {Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: sessionscreen.New(h.prefs, h.factory)}
			}
		}},
		itemLanguage: {Action: func() tea.Cmd {
			h.prefs.ToggleLocale()
			return nil
		}},
		itemExit: {Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	h.relabel()
	return h
}

// relabel sets menu labels for the current locale.
func (h *HomeScreen) relabel() {
	h.menu.SetLabel(itemStart, h.prefs.T(i18n.IntroStart))
	h.menu.SetLabel(itemLanguage, h.prefs.T(i18n.HintLanguage)+": "+h.prefs.Locale.Label())
	h.menu.SetLabel(itemExit, h.prefs.T(i18n.HintQuit))
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	h.relabel()
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	h.relabel()

	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) ||
		layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderBadge(h.prefs.T(i18n.IntroBadge), cw))
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderEmblemBox(cw))
	}
	sections = append(sections, renderHeadline(h.prefs.T(i18n.IntroTitle), h.prefs.T(i18n.IntroDesc), cw))
	sections = append(sections, renderMenu(h.menu, cw))

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return h.prefs.T(i18n.IntroBadge)
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: h.prefs.T(i18n.HintNavigate)},
		{Key: "Enter", Description: h.prefs.T(i18n.HintSelect)},
		{Key: "L", Description: h.prefs.T(i18n.HintLanguage)},
		{Key: "Ctrl+C", Description: h.prefs.T(i18n.HintQuit)},
	}
}
