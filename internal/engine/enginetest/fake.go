// Package enginetest provides in-memory engine.View and engine.Download
// implementations for tests.
package enginetest

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/ytget/wayang/internal/engine"
)

// View is a scripted engine.View. Navigate records the URL and, when
// AutoCommit is set, immediately reports it as loaded.
type View struct {
	mu         sync.Mutex
	mode       engine.Mode
	url        string
	title      string
	listener   engine.Listener
	closed     bool
	label      *widget.Label
	AutoCommit bool

	Navigated []string
	Backs     int
	Forwards  int
	Reloads   int
}

// NewView creates a fake view in mode that commits navigations instantly
func NewView(mode engine.Mode) *View {
	return &View{mode: mode, AutoCommit: true}
}

// Factory returns an engine.Factory that records every view it creates
func Factory(created *[]*View) engine.Factory {
	return func(mode engine.Mode) engine.View {
		v := NewView(mode)
		if created != nil {
			*created = append(*created, v)
		}
		return v
	}
}

// Navigate implements engine.View
func (v *View) Navigate(url string) {
	v.mu.Lock()
	v.Navigated = append(v.Navigated, url)
	commit := v.AutoCommit
	v.mu.Unlock()

	if commit {
		v.Commit(url, url)
	}
}

// Back implements engine.View
func (v *View) Back() { v.mu.Lock(); v.Backs++; v.mu.Unlock() }

// Forward implements engine.View
func (v *View) Forward() { v.mu.Lock(); v.Forwards++; v.mu.Unlock() }

// Reload implements engine.View
func (v *View) Reload() { v.mu.Lock(); v.Reloads++; v.mu.Unlock() }

// URL implements engine.View
func (v *View) URL() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.url
}

// Title implements engine.View
func (v *View) Title() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.title
}

// Mode implements engine.View
func (v *View) Mode() engine.Mode { return v.mode }

// SetListener implements engine.View
func (v *View) SetListener(l engine.Listener) {
	v.mu.Lock()
	v.listener = l
	v.mu.Unlock()
}

// CanvasObject implements engine.View
func (v *View) CanvasObject() fyne.CanvasObject {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.label == nil {
		v.label = widget.NewLabel("")
	}
	return v.label
}

// Close implements engine.View
func (v *View) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
}

// Closed reports whether Close was called
func (v *View) Closed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}

// Commit sets the current page and notifies the listener of the URL and
// title, in that order.
func (v *View) Commit(url, title string) {
	v.mu.Lock()
	v.url = url
	v.title = title
	l := v.listener
	v.mu.Unlock()

	if l != nil {
		l.URLChanged(v, url)
		l.TitleChanged(v, title)
	}
}

// RequestDownload hands d to the listener
func (v *View) RequestDownload(d engine.Download) {
	v.mu.Lock()
	l := v.listener
	v.mu.Unlock()

	if l != nil {
		l.DownloadRequested(v, d)
	}
}

// Download is a fake engine.Download. Accept completes synchronously with
// Result.
type Download struct {
	Source   string
	Name     string
	Mime     string
	Result   error
	Accepted string
	Declined bool
}

// URL implements engine.Download
func (d *Download) URL() string { return d.Source }

// SuggestedName implements engine.Download
func (d *Download) SuggestedName() string { return d.Name }

// MimeType implements engine.Download
func (d *Download) MimeType() string { return d.Mime }

// Accept implements engine.Download
func (d *Download) Accept(path string, done func(error)) error {
	d.Accepted = path
	if done != nil {
		done(d.Result)
	}
	return nil
}

// Decline implements engine.Download
func (d *Download) Decline() { d.Declined = true }

var (
	_ engine.View     = (*View)(nil)
	_ engine.Download = (*Download)(nil)
)
