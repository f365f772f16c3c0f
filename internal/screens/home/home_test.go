package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/persona/internal/i18n"
	"github.com/abhisek/persona/internal/router"
	"github.com/abhisek/persona/internal/screen"
	sessionscreen "github.com/abhisek/persona/internal/screens/session"
	sess "github.com/abhisek/persona/internal/session"
)

func testHome(l i18n.Locale) *HomeScreen {
	return New(screen.NewPrefs(l), func() (*sess.Session, error) {
		return sess.New(sess.Options{Rand: sess.NewRand(1)})
	})
}

func TestHomeScreen_DefaultsToChinese(t *testing.T) {
	h := testHome(i18n.Default())
	view := h.View(100, 40)
	for _, want := range []string{"MBTI 人格测试", "探索真实的自己", "开始测试"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHomeScreen_Title(t *testing.T) {
	h := testHome(i18n.English)
	if h.Title() != "Personality Test" {
		t.Errorf("Title = %q, want %q", h.Title(), "Personality Test")
	}
}

func TestHomeScreen_StartPushesSession(t *testing.T) {
	h := testHome(i18n.English)
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := msg.Screen.(*sessionscreen.SessionScreen); !ok {
		t.Errorf("expected session screen, got %T", msg.Screen)
	}
}

func TestHomeScreen_LanguageItemToggles(t *testing.T) {
	h := testHome(i18n.English)
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if h.prefs.Locale != i18n.Chinese {
		t.Errorf("locale = %q, want zh", h.prefs.Locale)
	}
	if h.menu.Items[itemStart].Label != "开始测试" {
		t.Errorf("start label = %q, want Chinese", h.menu.Items[itemStart].Label)
	}
}

func TestHomeScreen_ViewFollowsExternalToggle(t *testing.T) {
	h := testHome(i18n.Chinese)
	h.prefs.ToggleLocale()
	if !strings.Contains(h.View(100, 40), "Start Assessment") {
		t.Error("expected English labels after toggle")
	}
}

func TestHomeScreen_CompactView(t *testing.T) {
	h := testHome(i18n.English)
	view := h.View(60, 14)
	if !strings.Contains(view, titleCompact) {
		t.Error("expected compact title in small terminal")
	}
}

func TestHomeScreen_KeyHints(t *testing.T) {
	h := testHome(i18n.English)
	if len(h.KeyHints()) != 4 {
		t.Errorf("KeyHints length = %d, want 4", len(h.KeyHints()))
	}
}
