package app

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/persona/internal/i18n"
	"github.com/abhisek/persona/internal/router"
	"github.com/abhisek/persona/internal/screen"
	"github.com/abhisek/persona/internal/screens/home"
	sessionscreen "github.com/abhisek/persona/internal/screens/session"
	"github.com/abhisek/persona/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Locale     i18n.Locale
	NewSession sessionscreen.Factory
	Logger     *zap.Logger
}

type globalKeys struct {
	Quit     key.Binding
	Back     key.Binding
	Language key.Binding
}

func newGlobalKeys() globalKeys {
	return globalKeys{
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "")),
		Language: key.NewBinding(key.WithKeys("l", "L"), key.WithHelp("L", "")),
	}
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	prefs  *screen.Prefs
	keys   globalKeys
	logger *zap.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel with the intro screen.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	prefs := screen.NewPrefs(opts.Locale)
	return AppModel{
		router: router.New(home.New(prefs, opts.NewSession)),
		prefs:  prefs,
		keys:   newGlobalKeys(),
		logger: logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			if eh, ok := m.router.Active().(screen.EscapeHandler); ok && eh.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Language):
			m.prefs.ToggleLocale()
			m.logger.Debug("locale changed", zap.String("locale", string(m.prefs.Locale)))
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the whole screen as a string. Empty until the first
// window size arrives.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.prefs.Locale.Label(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// footerHints prefers the active screen's hints over the defaults.
func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	hints := []layout.KeyHint{
		{Key: m.keys.Language.Help().Key, Description: m.prefs.T(i18n.HintLanguage)},
		{Key: m.keys.Quit.Help().Key, Description: m.prefs.T(i18n.HintQuit)},
	}
	if m.router.Depth() > 1 {
		hints = append([]layout.KeyHint{{Key: m.keys.Back.Help().Key, Description: m.prefs.T(i18n.HintBack)}}, hints...)
	}
	return hints
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := newAppModel(opts)
	m.logger.Info("tui starting", zap.String("locale", string(m.prefs.Locale)))

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		m.logger.Error("tui exited with error", zap.Error(err))
		return err
	}
	m.logger.Info("tui stopped")
	return nil
}
