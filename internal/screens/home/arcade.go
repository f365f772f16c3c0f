package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/persona/internal/ui/components"
	"github.com/abhisek/persona/internal/ui/theme"
)

// Block-letter title.
const titleFull = `█▀█ █▀▀ █▀█ █▀ █▀█ █▄ █ ▄▀█
█▀▀ ██▄ █▀▄ ▄█ █▄█ █ ▀█ █▀█`

const titleCompact = "P · E · R · S · O · N · A"

// menuWidth is the fixed width for menu buttons.
const menuWidth = 26

// renderBadge renders the pill above the title.
func renderBadge(label string, cw int) string {
	return components.Centered(theme.Badge.Render(label), cw)
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Highlight).
		Bold(true)

	if compact {
		return components.Centered(style.Render(titleCompact), cw)
	}
	return components.Centered(style.Render(titleFull), cw)
}

// renderHeadline renders the tagline and the wrapped description.
func renderHeadline(title, desc string, cw int) string {
	head := theme.Title.Width(cw).Render(title)
	body := theme.Subtitle.Width(cw - 4).Render(desc)
	return head + "\n\n" + components.Centered(body, cw)
}

// renderEmblemBox renders the emblem centered at content width.
func renderEmblemBox(cw int) string {
	return components.Centered(RenderEmblem(), cw)
}

// renderMenu renders the menu as fixed-width buttons.
func renderMenu(m components.Menu, cw int) string {
	return components.Centered(m.View(menuWidth), cw)
}

// renderFrame wraps content in the double-border intro frame.
func renderFrame(content string, width, height int) string {
	return components.Frame(content, width, height, theme.Primary)
}
