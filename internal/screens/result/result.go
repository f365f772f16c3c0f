package result

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/persona/internal/archetype"
	"github.com/abhisek/persona/internal/i18n"
	"github.com/abhisek/persona/internal/router"
	"github.com/abhisek/persona/internal/screen"
	"github.com/abhisek/persona/internal/session"
	"github.com/abhisek/persona/internal/ui/components"
	"github.com/abhisek/persona/internal/ui/layout"
	"github.com/abhisek/persona/internal/ui/theme"
)

var retakeKey = key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("Enter", "Retake"))

// ResultScreen shows the personality code, its archetype card and the
// per-axis breakdown.
type ResultScreen struct {
	prefs *screen.Prefs
	code  session.Code
	axes  []session.Axis
	card  archetype.Archetype
	found bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for a finished run.
func New(prefs *screen.Prefs, code session.Code, axes []session.Axis) *ResultScreen {
	card, err := archetype.Get(string(code))
	return &ResultScreen{
		prefs: prefs,
		code:  code,
		axes:  axes,
		card:  card,
		found: err == nil,
	}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return s.prefs.T(i18n.ResultSubtitle)
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: retakeKey.Help().Key, Description: s.prefs.T(i18n.ResultRetake)},
		{Key: "L", Description: s.prefs.T(i18n.HintLanguage)},
		{Key: "Ctrl+C", Description: s.prefs.T(i18n.HintQuit)},
	}
}

// Code returns the result being shown.
func (s *ResultScreen) Code() session.Code { return s.code }

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, retakeKey) {
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	l := s.prefs.Locale
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, theme.Subtitle.Width(cw).Render(s.prefs.T(i18n.ResultSubtitle)))
	sections = append(sections, components.Centered(s.renderCode(), cw))

	if s.found {
		name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.card.Name.In(l))
		tagline := theme.Hint.Render(s.card.Tagline.In(l))
		sections = append(sections, components.Centered(name+"\n"+tagline, cw))

		desc := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(s.card.Description.In(l))
		sections = append(sections, components.Card(desc+"\n\n"+s.renderTags(), cw, theme.Border))
	}

	sections = append(sections, s.renderBreakdown(cw))

	retake := components.NewButton(s.prefs.T(i18n.ResultRetake), true)
	sections = append(sections, components.Centered(retake.View(), cw))

	return components.Frame(strings.Join(sections, "\n\n"), width, height, theme.Primary)
}

// renderCode draws each letter in its dimension's colour.
func (s *ResultScreen) renderCode() string {
	var b strings.Builder
	for i, tr := range s.code.Traits() {
		c := theme.Primary
		if i < len(s.axes) {
			c = theme.DimensionColor(s.axes[i].Dimension)
		}
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(lipgloss.NewStyle().Foreground(c).Bold(true).Render(string(tr)))
	}
	return b.String()
}

func (s *ResultScreen) renderTags() string {
	tags := make([]string, 0, len(s.card.Traits))
	for _, t := range s.card.Traits {
		tags = append(tags, lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render("#"+t.In(s.prefs.Locale)))
	}
	return strings.Join(tags, "  ")
}

func (s *ResultScreen) renderBreakdown(cw int) string {
	l := s.prefs.Locale
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(s.prefs.T(i18n.ResultTraits)))
	for _, axis := range s.axes {
		bar := components.AxisBar{
			LeftLabel:  i18n.TraitName(l, string(axis.First)),
			RightLabel: i18n.TraitName(l, string(axis.Second)),
			LeftShare:  axis.FirstShare(),
			LeftWins:   axis.Winner() == axis.First,
			Color:      theme.DimensionColor(axis.Dimension),
		}
		b.WriteString("\n\n")
		b.WriteString(bar.View(cw))
	}
	return b.String()
}
