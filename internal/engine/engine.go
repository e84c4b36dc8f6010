// Package engine defines the contract between the browser shell and a
// browser-view engine. The shell drives views through View and learns
// about page changes through Listener; it never depends on a concrete
// engine.
package engine

import (
	"fyne.io/fyne/v2"
)

// Mode selects the profile a view is created with
type Mode struct {
	// Private views share no cookies with other views and add no history
	Private bool
}

// Normal is the default browsing mode
var Normal = Mode{}

// Incognito is the private browsing mode
var Incognito = Mode{Private: true}

// View is one page-displaying surface, owned by a single tab.
type View interface {
	// Navigate starts loading url. Completion is reported through Listener.
	Navigate(url string)
	Back()
	Forward()
	Reload()

	// URL and Title return the current values, empty before the first load
	URL() string
	Title() string

	Mode() Mode
	SetListener(l Listener)
	CanvasObject() fyne.CanvasObject

	// Close cancels in-flight work. The view is unusable afterwards.
	Close()
}

// Listener receives view notifications on the UI thread.
type Listener interface {
	URLChanged(v View, url string)
	TitleChanged(v View, title string)
	DownloadRequested(v View, d Download)
}

// Download is a pending transfer waiting for a destination. Exactly one of
// Accept or Decline must be called.
type Download interface {
	URL() string
	SuggestedName() string
	MimeType() string

	// Accept writes the content to path. done is called once the transfer
	// ends, on the UI thread, with nil on success.
	Accept(path string, done func(error)) error
	Decline()
}

// Factory creates a view for the given mode
type Factory func(mode Mode) View

// NopListener ignores every notification
type NopListener struct{}

// URLChanged implements Listener
func (NopListener) URLChanged(View, string) {}

// TitleChanged implements Listener
func (NopListener) TitleChanged(View, string) {}

// DownloadRequested declines the download
func (NopListener) DownloadRequested(_ View, d Download) { d.Decline() }
