package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is one of the two display languages of the editor.
type Locale string

const (
	LocaleZH Locale = "zh"
	LocaleJA Locale = "ja"
)

// DefaultLocale is the language selected at startup.
const DefaultLocale = LocaleZH

// Locales lists the supported locales, default first.
var Locales = []Locale{LocaleZH, LocaleJA}

var localeMatcher = language.NewMatcher([]language.Tag{
	language.Chinese,
	language.Japanese,
})

// Tag returns the BCP 47 tag of l.
func (l Locale) Tag() language.Tag {
	if l == LocaleJA {
		return language.Japanese
	}
	return language.Chinese
}

// Valid reports whether l is a supported locale.
func (l Locale) Valid() bool {
	return l == LocaleZH || l == LocaleJA
}

// ParseLocale maps a user supplied language name to a supported Locale.
// "jp" is accepted as the historical name of Japanese.
func ParseLocale(s string) (Locale, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "jp") {
		return LocaleJA, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("parse locale %q: %w", s, ErrUnsupportedLocale)
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf < language.High {
		return "", fmt.Errorf("parse locale %q: %w", s, ErrUnsupportedLocale)
	}
	if idx == 1 {
		return LocaleJA, nil
	}
	return LocaleZH, nil
}
