package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseLocale(t *testing.T) {
	valid := map[string]Locale{
		"zh":      LocaleZH,
		"ZH":      LocaleZH,
		" zh ":    LocaleZH,
		"zh-Hans": LocaleZH,
		"ja":      LocaleJA,
		"ja-JP":   LocaleJA,
		"jp":      LocaleJA,
		"JP":      LocaleJA,
	}
	for in, want := range valid {
		got, err := ParseLocale(in)
		if err != nil {
			t.Errorf("ParseLocale(%q) failed: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseLocale(%q) = %q, want %q", in, got, want)
		}
	}

	for _, in := range []string{"", "en", "fr", "zz-??"} {
		if _, err := ParseLocale(in); !errors.Is(err, ErrUnsupportedLocale) {
			t.Errorf("ParseLocale(%q) error = %v, want ErrUnsupportedLocale", in, err)
		}
	}
}

func TestLocaleValid(t *testing.T) {
	for _, l := range Locales {
		if !l.Valid() {
			t.Errorf("%q should be valid", l)
		}
	}
	if Locale("en").Valid() || Locale("").Valid() {
		t.Error("only zh and ja are valid")
	}
	if Locales[0] != DefaultLocale {
		t.Errorf("Locales[0] = %q, want the default locale first", Locales[0])
	}
}

func TestCode(t *testing.T) {
	if got := Code(nil); got != "" {
		t.Errorf("Code(nil) = %q", got)
	}
	if got := Code(errors.New("boom")); got != "" {
		t.Errorf("Code(plain error) = %q", got)
	}
	wrapped := fmt.Errorf("load club: %w", ErrStaleLoad)
	if got := Code(wrapped); got != "stale_load" {
		t.Errorf("Code(wrapped stale) = %q, want stale_load", got)
	}
	for sentinel, code := range codes {
		if got := Code(sentinel); got != code {
			t.Errorf("Code(%v) = %q, want %q", sentinel, got, code)
		}
	}
}

func TestModesAndTabs(t *testing.T) {
	if !ModeNone.Valid() || !ModeBookCoach.Valid() {
		t.Error("known modes must be valid")
	}
	if Mode("clubEditor").Valid() {
		t.Error("clubEditor is not a mode")
	}
	if ClubTabs[0] != TabGame {
		t.Errorf("first club tab = %q, want Game", ClubTabs[0])
	}
	if BookTabs[0] != TabProfile {
		t.Errorf("first book tab = %q, want Profile", BookTabs[0])
	}
	if TabsContain(BookTabs, TabGame) || !TabsContain(ClubTabs, TabAbroad) {
		t.Error("TabsContain mismatch")
	}
}
