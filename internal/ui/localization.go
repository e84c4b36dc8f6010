package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyBack               = "back"
	KeyForward            = "forward"
	KeyReload             = "reload"
	KeyHome               = "home"
	KeyNewTab             = "new_tab"
	KeyNewPrivateTab      = "new_private_tab"
	KeyCloseTab           = "close_tab"
	KeyMoveTabLeft        = "move_tab_left"
	KeyMoveTabRight       = "move_tab_right"
	KeyFocusAddress       = "focus_address"
	KeyBookmark           = "bookmark"
	KeyBookmarks          = "bookmarks"
	KeyShowBookmarks      = "show_bookmarks"
	KeyNoBookmarks        = "no_bookmarks"
	KeyDownloads          = "downloads"
	KeyNoDownloads        = "no_downloads"
	KeyIncognito          = "incognito"
	KeyToggleTheme        = "toggle_theme"
	KeyAddressPlaceholder = "address_placeholder"
	KeySaved              = "saved"
	KeyError              = "error"
	KeyBookmarkFailed     = "bookmark_failed"
	KeyDownloadFailed     = "download_failed"
	KeyFile               = "file"
	KeyView               = "view"
	KeyLanguage           = "language"
	KeySettings           = "settings"
	KeyHomePage           = "home_page"
	KeySearchTemplate     = "search_template"
	KeyDownloadDirectory  = "download_directory"
	KeyStartDark          = "start_dark"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeySettingsSaved      = "settings_saved"
	KeyOpen               = "open"
	KeyReveal             = "reveal"
	KeyCopyPath           = "copy_path"
	KeyPathCopied         = "path_copied"
	KeyErrorOpeningFile   = "error_opening_file"
	KeyStatusAccepted     = "status_accepted"
	KeyStatusCompleted    = "status_completed"
	KeyStatusError        = "status_error"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the operating
// system language when it is translated and English otherwise.
func (l *Localization) SetLanguage(language string) {
	if language == "system" {
		language = systemLanguage()
	}

	if _, exists := l.texts[language]; exists {
		l.currentLanguage = language
	}
}

func systemLanguage() string {
	tag := strings.ToLower(lang.SystemLocale().LanguageString())
	code, _, _ := strings.Cut(tag, "-")
	return code
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"de": "Deutsch",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Wayang Browser",
		KeyBack:               "Back",
		KeyForward:            "Forward",
		KeyReload:             "Reload",
		KeyHome:               "Home",
		KeyNewTab:             "New Tab",
		KeyNewPrivateTab:      "New Incognito Tab",
		KeyCloseTab:           "Close Tab",
		KeyMoveTabLeft:        "Move Tab Left",
		KeyMoveTabRight:       "Move Tab Right",
		KeyFocusAddress:       "Focus Address Bar",
		KeyBookmark:           "Bookmark",
		KeyBookmarks:          "Bookmarks",
		KeyShowBookmarks:      "Show Bookmarks",
		KeyNoBookmarks:        "No bookmarks yet",
		KeyDownloads:          "Downloads",
		KeyNoDownloads:        "No downloads yet",
		KeyIncognito:          "Incognito",
		KeyToggleTheme:        "Light/Dark",
		KeyAddressPlaceholder: "Search or enter address",
		KeySaved:              "Saved",
		KeyError:              "Error",
		KeyBookmarkFailed:     "Could not save bookmark",
		KeyDownloadFailed:     "Download failed",
		KeyFile:               "File",
		KeyView:               "View",
		KeyLanguage:           "Language",
		KeySettings:           "Settings",
		KeyHomePage:           "Home Page",
		KeySearchTemplate:     "Search Template",
		KeyDownloadDirectory:  "Download Directory",
		KeyStartDark:          "Start in dark mode",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyOpen:               "open",
		KeyReveal:             "show",
		KeyCopyPath:           "path",
		KeyPathCopied:         "Path copied to clipboard",
		KeyErrorOpeningFile:   "Error opening file",
		KeyStatusAccepted:     "Downloading",
		KeyStatusCompleted:    "Completed",
		KeyStatusError:        "Failed",
	}

	// German texts
	l.texts["de"] = map[string]string{
		KeyAppTitle:           "Wayang Browser",
		KeyBack:               "Zurück",
		KeyForward:            "Vor",
		KeyReload:             "Neu laden",
		KeyHome:               "Home",
		KeyNewTab:             "Neuer Tab",
		KeyNewPrivateTab:      "Neuer Inkognito-Tab",
		KeyCloseTab:           "Tab schließen",
		KeyMoveTabLeft:        "Tab nach links",
		KeyMoveTabRight:       "Tab nach rechts",
		KeyFocusAddress:       "Adressleiste",
		KeyBookmark:           "Lesezeichen",
		KeyBookmarks:          "Lesezeichen",
		KeyShowBookmarks:      "Lesezeichen anzeigen",
		KeyNoBookmarks:        "Noch keine Lesezeichen",
		KeyDownloads:          "Downloads",
		KeyNoDownloads:        "Noch keine Downloads",
		KeyIncognito:          "Inkognito",
		KeyToggleTheme:        "Light/Dark",
		KeyAddressPlaceholder: "Suchen oder Adresse eingeben",
		KeySaved:              "Gespeichert",
		KeyError:              "Fehler",
		KeyBookmarkFailed:     "Lesezeichen konnte nicht gespeichert werden",
		KeyDownloadFailed:     "Download fehlgeschlagen",
		KeyFile:               "Datei",
		KeyView:               "Ansicht",
		KeyLanguage:           "Sprache",
		KeySettings:           "Einstellungen",
		KeyHomePage:           "Startseite",
		KeySearchTemplate:     "Suchvorlage",
		KeyDownloadDirectory:  "Download-Verzeichnis",
		KeyStartDark:          "Im dunklen Modus starten",
		KeySave:               "Speichern",
		KeyCancel:             "Abbrechen",
		KeyBrowse:             "Durchsuchen",
		KeySettingsSaved:      "Einstellungen gespeichert!",
		KeyOpen:               "öffnen",
		KeyReveal:             "zeigen",
		KeyCopyPath:           "Pfad",
		KeyPathCopied:         "Pfad in die Zwischenablage kopiert",
		KeyErrorOpeningFile:   "Fehler beim Öffnen der Datei",
		KeyStatusAccepted:     "Lädt",
		KeyStatusCompleted:    "Fertig",
		KeyStatusError:        "Fehlgeschlagen",
	}
}
