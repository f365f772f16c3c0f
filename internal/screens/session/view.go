package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/persona/internal/i18n"
	sess "github.com/abhisek/persona/internal/session"
	"github.com/abhisek/persona/internal/ui/components"
	"github.com/abhisek/persona/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(s.prefs.Locale, width, height, s.errMsg)
	}
	if s.state == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  …")
	}
	if s.confirmQuit {
		return renderQuitConfirm(s.prefs.Locale, width)
	}
	return s.renderQuestionView(width, height)
}

// renderQuestionView renders the active question with its options.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	q, ok := s.state.Active()
	if !ok {
		return ""
	}
	l := s.prefs.Locale
	accent := theme.DimensionColor(q.Dimension)
	cw := components.ContentWidth(width)

	var sections []string

	// Dimension title and per-dimension counter.
	title := lipgloss.NewStyle().Foreground(accent).Bold(true).
		Render(i18n.DimensionTitle(l, string(q.Dimension)))
	counter := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf(s.prefs.T(i18n.PlayProgress), s.state.QuestionNumber(), sess.QuestionsPerDimension))
	gap := cw - lipgloss.Width(title) - lipgloss.Width(counter)
	if gap < 1 {
		sections = append(sections, title+"\n"+counter)
	} else {
		sections = append(sections, title+strings.Repeat(" ", gap)+counter)
	}

	bar := components.NewProgressBar("", s.state.OverallProgress(), true, cw, accent)
	sections = append(sections, bar.View())

	text := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw - 6).
		Align(lipgloss.Center).Render(q.Text.In(l))
	sections = append(sections, components.Card(text, cw, accent))

	sections = append(sections, theme.Hint.Width(cw).Align(lipgloss.Center).Render(s.prefs.T(i18n.PlayInstruction)))

	choice := s.choice
	choice.Options = []string{q.A.Text.In(l), q.B.Text.In(l)}
	sections = append(sections, choice.View(cw-2))

	refresh := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("[%s] ↻ %s", s.keys.Refresh.Help().Key, s.prefs.T(i18n.PlayRefresh)))
	sections = append(sections, components.Centered(refresh, cw))

	return components.Frame(strings.Join(sections, "\n\n"), width, height, accent)
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(l i18n.Locale, width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(i18n.Message(l, i18n.PlayQuitConfirm)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Highlight).
		Render(i18n.Message(l, i18n.PlayQuitYes)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render(i18n.Message(l, i18n.PlayQuitNo)))

	return b.String()
}

func renderError(l i18n.Locale, width, height int, msg string) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.EnergyAccent).
		Bold(true).
		Render(i18n.Message(l, i18n.ErrorTitle)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(msg))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(i18n.Message(l, i18n.ErrorDismiss)))
	return lipgloss.NewStyle().Height(height).Render(b.String())
}
