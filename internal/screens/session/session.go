package session

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/persona/internal/bank"
	"github.com/abhisek/persona/internal/i18n"
	"github.com/abhisek/persona/internal/router"
	"github.com/abhisek/persona/internal/screen"
	"github.com/abhisek/persona/internal/screens/result"
	sess "github.com/abhisek/persona/internal/session"
	"github.com/abhisek/persona/internal/ui/components"
	"github.com/abhisek/persona/internal/ui/layout"
	"github.com/abhisek/persona/internal/ui/theme"
)

// Factory builds the engine for a new run.
type Factory func() (*sess.Session, error)

// SessionScreen implements screen.Screen for a quiz run.
type SessionScreen struct {
	prefs       *screen.Prefs
	factory     Factory
	state       *sess.Session
	choice      components.Choice
	keys        keyMap
	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.EscapeHandler = (*SessionScreen)(nil)

// New creates a SessionScreen. The run starts when Init's command completes.
func New(prefs *screen.Prefs, factory Factory) *SessionScreen {
	return &SessionScreen{
		prefs:   prefs,
		factory: factory,
		keys:    newKeyMap(),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	factory := s.factory
	return func() tea.Msg {
		if factory == nil {
			return sessionInitMsg{Err: errors.New("no session factory configured")}
		}
		state, err := factory()
		return sessionInitMsg{State: state, Err: err}
	}
}

func (s *SessionScreen) Title() string {
	if s.state == nil {
		return s.prefs.T(i18n.IntroBadge)
	}
	return i18n.DimensionTitle(s.prefs.Locale, string(s.state.Dimension()))
}

// HandlesEscape keeps Esc for the quit confirmation instead of an
// immediate pop.
func (s *SessionScreen) HandlesEscape() bool {
	return s.state != nil && s.errMsg == ""
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: s.prefs.T(i18n.HintLeave)},
			{Key: "N", Description: s.prefs.T(i18n.HintStay)},
		}
	}
	if s.state == nil {
		return nil
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: s.prefs.T(i18n.HintNavigate)},
		{Key: s.keys.PickA.Help().Key + " " + s.keys.PickB.Help().Key, Description: s.prefs.T(i18n.HintSelect)},
		{Key: s.keys.Refresh.Help().Key, Description: s.prefs.T(i18n.PlayRefresh)},
		{Key: "L", Description: s.prefs.T(i18n.HintLanguage)},
		{Key: s.keys.Quit.Help().Key, Description: s.prefs.T(i18n.HintBack)},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		return s.handleInit(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleInit(msg sessionInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state = msg.State
	s.state.Start()
	s.resetChoice()
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.state == nil {
		return s, nil
	}

	if s.confirmQuit {
		switch {
		case key.Matches(msg, s.keys.Yes):
			s.confirmQuit = false
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(msg, s.keys.No):
			s.confirmQuit = false
		}
		return s, nil
	}

	q, ok := s.state.Active()
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(msg, s.keys.Quit):
		s.confirmQuit = true
		return s, nil
	case key.Matches(msg, s.keys.PickA):
		return s.answer(q.A.Value)
	case key.Matches(msg, s.keys.PickB):
		return s.answer(q.B.Value)
	case key.Matches(msg, s.keys.Submit):
		return s.answer(q.Options()[s.choice.Selected].Value)
	case key.Matches(msg, s.keys.Refresh):
		if err := s.state.Refresh(); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.resetChoice()
		return s, nil
	}

	s.choice = s.choice.Update(msg)
	return s, nil
}

// answer records trait and either moves to the next question or swaps
// this screen for the result.
func (s *SessionScreen) answer(trait bank.Trait) (screen.Screen, tea.Cmd) {
	if err := s.state.Answer(trait); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	if s.state.Phase() == sess.PhaseComplete {
		code, err := s.state.Result()
		if err != nil {
			s.errMsg = fmt.Sprintf("compute result: %v", err)
			return s, nil
		}
		next := result.New(s.prefs, code, s.state.Breakdown())
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}

	s.resetChoice()
	return s, nil
}

// resetChoice rebuilds the option picker for the active question.
func (s *SessionScreen) resetChoice() {
	q, ok := s.state.Active()
	if !ok {
		return
	}
	s.choice = components.NewChoice(
		[]string{q.A.Text.In(s.prefs.Locale), q.B.Text.In(s.prefs.Locale)},
		theme.DimensionColor(q.Dimension),
	)
}
