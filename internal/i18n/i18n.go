package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is a two-letter display language. It only affects rendering.
type Locale string

const (
	Chinese Locale = "zh"
	English Locale = "en"
)

// supportedTags is ordered so the matcher falls back to Chinese.
var supportedTags = []language.Tag{
	language.Chinese,
	language.English,
}

var supportedLocales = []Locale{Chinese, English}

var tagMatcher = language.NewMatcher(supportedTags)

// Default returns the locale used when nothing else is configured.
func Default() Locale {
	return Chinese
}

// Supported returns all locales in display order.
func Supported() []Locale {
	out := make([]Locale, len(supportedLocales))
	copy(out, supportedLocales)
	return out
}

// Parse matches a user-supplied language value ("en", "zh-CN",
// "zh_TW.UTF-8", "en-GB") against the supported locales.
func Parse(value string) (Locale, bool) {
	value = strings.TrimSpace(value)
	if i := strings.IndexByte(value, '.'); i >= 0 {
		value = value[:i]
	}
	value = strings.ReplaceAll(value, "_", "-")
	if value == "" {
		return "", false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}
	_, idx, conf := tagMatcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	return supportedLocales[idx], true
}

// Resolve is Parse with a fallback to Default.
func Resolve(value string) Locale {
	if l, ok := Parse(value); ok {
		return l
	}
	return Default()
}

// Toggle flips between the two supported locales.
func (l Locale) Toggle() Locale {
	if l == English {
		return Chinese
	}
	return English
}

// Label is the locale's name written in its own language.
func (l Locale) Label() string {
	if l == English {
		return "English"
	}
	return "中文"
}

// Text is a string available in both locales.
type Text struct {
	EN string `json:"en"`
	ZH string `json:"zh"`
}

// In returns the text for l, falling back to English when the
// translation is missing.
func (t Text) In(l Locale) string {
	if l == Chinese && t.ZH != "" {
		return t.ZH
	}
	return t.EN
}

// Complete reports whether both translations are present.
func (t Text) Complete() bool {
	return strings.TrimSpace(t.EN) != "" && strings.TrimSpace(t.ZH) != ""
}
