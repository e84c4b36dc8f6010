package ui

import (
	"testing"
)

func TestLocalizationDefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	if lang := l.GetCurrentLanguage(); lang != "en" {
		t.Errorf("Expected default language en, got %s", lang)
	}
	if text := l.GetText(KeyIncognito); text != "Incognito" {
		t.Errorf("Expected Incognito, got %s", text)
	}
}

func TestLocalizationGerman(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("de")

	expected := map[string]string{
		KeyBack:           "Zurück",
		KeyForward:        "Vor",
		KeyReload:         "Neu laden",
		KeyHome:           "Home",
		KeyNewTab:         "Neuer Tab",
		KeyBookmark:       "Lesezeichen",
		KeyDownloads:      "Downloads",
		KeyIncognito:      "Inkognito",
		KeyToggleTheme:    "Light/Dark",
		KeySaved:          "Gespeichert",
		KeyError:          "Fehler",
		KeyBookmarkFailed: "Lesezeichen konnte nicht gespeichert werden",
	}
	for key, want := range expected {
		if got := l.GetText(key); got != want {
			t.Errorf("GetText(%s) = %q, want %q", key, got, want)
		}
	}
}

func TestLocalizationUnknownLanguageIgnored(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("de")
	l.SetLanguage("xx")

	if lang := l.GetCurrentLanguage(); lang != "de" {
		t.Errorf("Unknown language should keep de, got %s", lang)
	}
}

func TestLocalizationSystemLanguage(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("system")

	if _, ok := l.GetAvailableLanguages()[l.GetCurrentLanguage()]; !ok {
		t.Errorf("System language resolved to unavailable %s", l.GetCurrentLanguage())
	}
}

func TestLocalizationFallbacks(t *testing.T) {
	l := NewLocalization()

	if text := l.GetText("missing_key"); text != "missing_key" {
		t.Errorf("Missing key should return the key, got %s", text)
	}
}

func TestLocalizationCompleteTranslations(t *testing.T) {
	l := NewLocalization()
	for key := range l.texts["en"] {
		if _, ok := l.texts["de"][key]; !ok {
			t.Errorf("German translation missing for %s", key)
		}
	}
}
