package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconError  = "❌"
	IconDone   = "✔"
	IconActive = "⏳"
)

// TabTitleMaxRunes is the longest tab label; longer page titles are cut
const TabTitleMaxRunes = 18

// Window sizing
const (
	MainWindowWidth       float32 = 1400
	MainWindowHeight      float32 = 900
	DownloadsWindowWidth  float32 = 400
	DownloadsWindowHeight float32 = 300
	BookmarksWindowWidth  float32 = 480
	BookmarksWindowHeight float32 = 360
	SettingsDialogWidth   float32 = 500
	SettingsDialogHeight  float32 = 400
)

// WindowTitleFormat joins the page title and the application name
const WindowTitleFormat = "%s - %s"
