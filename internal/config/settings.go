package config

import (
	"strings"

	"fyne.io/fyne/v2"
	"github.com/ytget/wayang/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyHomePage       = "home_page"
	KeySearchTemplate = "search_template"
	KeyDownloadDir    = "download_directory"
	KeyLanguage       = "app_language"
	KeyStartDark      = "start_dark_mode"
)

// Default values
const (
	DefaultHomePage       = "https://www.google.com"
	DefaultSearchTemplate = "https://www.google.com/search?q=%s"
	DefaultLanguage       = "system"
	DefaultStartDark      = true
)

// SearchPlaceholder marks where the escaped query goes in a search template
const SearchPlaceholder = "%s"

// Settings manages user preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetHomePage returns the page opened by new tabs and the home button
func (s *Settings) GetHomePage() string {
	page := s.app.Preferences().String(KeyHomePage)
	if page == "" {
		s.SetHomePage(DefaultHomePage)
		return DefaultHomePage
	}
	return page
}

// SetHomePage sets the home page
func (s *Settings) SetHomePage(page string) {
	page = strings.TrimSpace(page)
	if page == "" {
		page = DefaultHomePage
	}
	s.app.Preferences().SetString(KeyHomePage, page)
}

// GetSearchTemplate returns the search URL template
func (s *Settings) GetSearchTemplate() string {
	tpl := s.app.Preferences().String(KeySearchTemplate)
	if tpl == "" {
		s.SetSearchTemplate(DefaultSearchTemplate)
		return DefaultSearchTemplate
	}
	return tpl
}

// SetSearchTemplate sets the search URL template. Templates without a
// query placeholder are rejected in favour of the default.
func (s *Settings) SetSearchTemplate(tpl string) {
	tpl = strings.TrimSpace(tpl)
	if !strings.Contains(tpl, SearchPlaceholder) {
		tpl = DefaultSearchTemplate
	}
	s.app.Preferences().SetString(KeySearchTemplate, tpl)
}

// GetDownloadDirectory returns the directory offered by the save dialog
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetStartDark reports whether the window opens in dark mode. The theme
// toggle itself is never written back here.
func (s *Settings) GetStartDark() bool {
	return s.app.Preferences().BoolWithFallback(KeyStartDark, DefaultStartDark)
}

// SetStartDark sets the initial theme
func (s *Settings) SetStartDark(dark bool) {
	s.app.Preferences().SetBool(KeyStartDark, dark)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"de":     "Deutsch",
	}
}
