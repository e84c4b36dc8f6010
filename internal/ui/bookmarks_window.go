package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/wayang/internal/model"
)

// BookmarksWindow lists saved bookmarks. Selecting one hands it to the
// open callback; closing the window only hides it.
type BookmarksWindow struct {
	window       fyne.Window
	localization *Localization
	bookmarks    func() []model.Bookmark
	onOpen       func(model.Bookmark)

	list  *widget.List
	empty *widget.Label
	items []model.Bookmark
}

// NewBookmarksWindow creates the hidden bookmarks window. bookmarks is read
// on every refresh.
func NewBookmarksWindow(app fyne.App, localization *Localization, bookmarks func() []model.Bookmark, onOpen func(model.Bookmark)) *BookmarksWindow {
	bw := &BookmarksWindow{
		window:       app.NewWindow(localization.GetText(KeyBookmarks)),
		localization: localization,
		bookmarks: bookmarks,
		onOpen:    onOpen,
	}

	bw.list = widget.NewList(
		func() int { return len(bw.items) },
		func() fyne.CanvasObject {
			title := widget.NewLabel("")
			title.TextStyle = fyne.TextStyle{Bold: true}
			title.Truncation = fyne.TextTruncateEllipsis
			url := widget.NewLabel("")
			url.Truncation = fyne.TextTruncateEllipsis
			return container.NewVBox(title, url)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(bw.items) {
				return
			}
			labels := obj.(*fyne.Container).Objects
			labels[0].(*widget.Label).SetText(bw.items[id].Title)
			labels[1].(*widget.Label).SetText(bw.items[id].URL)
		},
	)
	bw.list.OnSelected = bw.onSelected

	bw.empty = widget.NewLabel(localization.GetText(KeyNoBookmarks))
	bw.empty.Alignment = fyne.TextAlignCenter

	bw.window.SetContent(container.NewStack(bw.list, container.NewCenter(bw.empty)))
	bw.window.Resize(fyne.NewSize(BookmarksWindowWidth, BookmarksWindowHeight))
	bw.window.SetCloseIntercept(bw.window.Hide)

	bw.Refresh()
	return bw
}

// Show brings the window up with the current bookmarks
func (bw *BookmarksWindow) Show() {
	bw.Refresh()
	bw.window.Show()
	bw.window.RequestFocus()
}

// Refresh re-reads the bookmarks
func (bw *BookmarksWindow) Refresh() {
	bw.items = append([]model.Bookmark(nil), bw.bookmarks()...)
	if len(bw.items) == 0 {
		bw.empty.Show()
	} else {
		bw.empty.Hide()
	}
	bw.list.Refresh()
}

// Len returns the number of listed bookmarks
func (bw *BookmarksWindow) Len() int {
	return len(bw.items)
}

// RefreshTexts relabels the window after a language change
func (bw *BookmarksWindow) RefreshTexts() {
	bw.window.SetTitle(bw.localization.GetText(KeyBookmarks))
	bw.empty.SetText(bw.localization.GetText(KeyNoBookmarks))
}

// Close destroys the window
func (bw *BookmarksWindow) Close() {
	bw.window.Close()
}

func (bw *BookmarksWindow) onSelected(id widget.ListItemID) {
	// Unselect so the same bookmark can be opened again
	defer bw.list.UnselectAll()

	if id < 0 || id >= len(bw.items) || bw.onOpen == nil {
		return
	}
	bw.onOpen(bw.items[id])
}
