package ui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/wayang/internal/config"
	"github.com/ytget/wayang/internal/download"
	"github.com/ytget/wayang/internal/engine/enginetest"
	"github.com/ytget/wayang/internal/logging"
	"github.com/ytget/wayang/internal/model"
	"github.com/ytget/wayang/internal/store"
)

const testHome = "https://home.example"

type harness struct {
	app      fyne.App
	ui       *RootUI
	views    []*enginetest.View
	store    *store.Store
	recorder *download.Service
	dlDir    string

	infos    []string
	warnings []string
	prompts  []string
	saveOK   bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	a := test.NewApp()
	settings := config.NewSettings(a)
	settings.SetLanguage("en")
	settings.SetHomePage(testHome)

	h := &harness{
		app:      a,
		store:    store.New(filepath.Join(t.TempDir(), "browser_data.json"), logging.NewNop()),
		recorder: download.NewService(),
		dlDir:    t.TempDir(),
	}
	settings.SetDownloadDirectory(h.dlDir)

	h.ui = NewRootUI(a.NewWindow("test"), a, Options{
		Factory:   enginetest.Factory(&h.views),
		Store:     h.store,
		Downloads: h.recorder,
		Settings:  settings,
		Logger:    logging.NewNop(),
		Dialogs: Dialogs{
			Information: func(title, message string) {
				h.infos = append(h.infos, title+": "+message)
			},
			Warning: func(title, message string) {
				h.warnings = append(h.warnings, title+": "+message)
			},
			SavePath: func(dir, name string, cb func(string, bool)) {
				path := filepath.Join(dir, name)
				h.prompts = append(h.prompts, path)
				cb(path, h.saveOK)
			},
		},
	})
	return h
}

func (h *harness) tabLabels() []string {
	var labels []string
	for _, item := range h.ui.docTabs.Items {
		labels = append(labels, item.Text)
	}
	return labels
}

func TestStartupOpensHomeTab(t *testing.T) {
	h := newHarness(t)

	require.Len(t, h.views, 1)
	assert.Equal(t, 1, h.ui.Tabs().Count())
	assert.Equal(t, []string{testHome}, h.views[0].Navigated)
	assert.Equal(t, testHome, h.ui.addressBar.Text)
	assert.Equal(t, []string{"https://home.examp"}, h.tabLabels())
	assert.Equal(t, 0, h.ui.docTabs.SelectedIndex())

	// History is written through to disk
	assert.Equal(t, []string{testHome}, h.ui.doc.History)
	assert.Equal(t, []string{testHome}, h.store.Load().History)
}

func TestAddressBarNavigation(t *testing.T) {
	h := newHarness(t)
	view := h.views[0]

	h.ui.onAddressSubmitted("example.com")
	assert.Equal(t, "https://example.com", view.Navigated[len(view.Navigated)-1])
	assert.Equal(t, "https://example.com", h.ui.addressBar.Text)

	h.ui.onAddressSubmitted("  http://plain.example/path  ")
	assert.Equal(t, "http://plain.example/path", view.Navigated[len(view.Navigated)-1])

	h.ui.onAddressSubmitted("golang tips")
	assert.Equal(t, "https://www.google.com/search?q=golang+tips", view.Navigated[len(view.Navigated)-1])

	assert.Equal(t, []string{
		testHome,
		"https://example.com",
		"http://plain.example/path",
		"https://www.google.com/search?q=golang+tips",
	}, h.store.Load().History)
}

func TestBlankAddressIgnored(t *testing.T) {
	h := newHarness(t)
	view := h.views[0]

	h.ui.onAddressSubmitted("")
	h.ui.onAddressSubmitted("   ")

	assert.Len(t, view.Navigated, 1)
	assert.Len(t, h.ui.doc.History, 1)
}

func TestAddressBarFollowsActiveTab(t *testing.T) {
	h := newHarness(t)

	h.ui.onNewTab()
	require.Len(t, h.views, 2)
	assert.Equal(t, 1, h.ui.Tabs().Active())
	assert.Equal(t, 1, h.ui.docTabs.SelectedIndex())

	h.views[1].Commit("https://b.example", "B")
	assert.Equal(t, "https://b.example", h.ui.addressBar.Text)

	// Background tabs do not touch the address bar
	h.views[0].Commit("https://a.example", "A")
	assert.Equal(t, "https://b.example", h.ui.addressBar.Text)
	assert.Equal(t, []string{"A", "B"}, h.tabLabels())

	// Selecting a tab in the strip switches the container
	h.ui.docTabs.SelectIndex(0)
	assert.Equal(t, 0, h.ui.Tabs().Active())
	assert.Equal(t, "https://a.example", h.ui.addressBar.Text)
}

func TestCloseTab(t *testing.T) {
	h := newHarness(t)

	// The last tab stays open
	h.ui.onCloseTab()
	assert.Equal(t, 1, h.ui.Tabs().Count())
	assert.False(t, h.views[0].Closed())

	h.ui.onNewTab()
	h.views[1].Commit("https://b.example", "B")
	h.ui.onCloseTab()

	assert.Equal(t, 1, h.ui.Tabs().Count())
	assert.True(t, h.views[1].Closed())
	assert.Len(t, h.ui.docTabs.Items, 1)
	assert.Equal(t, testHome, h.ui.addressBar.Text)
}

func TestCloseTabFromStrip(t *testing.T) {
	h := newHarness(t)
	h.ui.onNewTab()
	h.ui.onNewTab()
	require.Len(t, h.ui.docTabs.Items, 3)

	h.ui.docTabs.CloseIntercept(h.ui.docTabs.Items[0])

	assert.Equal(t, 2, h.ui.Tabs().Count())
	assert.Len(t, h.ui.docTabs.Items, 2)
	assert.True(t, h.views[0].Closed())
	assert.Same(t, h.views[1].CanvasObject(), h.ui.docTabs.Items[0].Content)

	// The active view is unchanged and the strip follows its new index
	assert.Equal(t, 1, h.ui.Tabs().Active())
	assert.Equal(t, 1, h.ui.docTabs.SelectedIndex())
}

func TestPrivateTabRecordsNoHistory(t *testing.T) {
	h := newHarness(t)

	h.ui.onNewPrivateTab()
	require.Len(t, h.views, 2)
	assert.True(t, h.views[1].Mode().Private)

	h.views[1].Commit("https://secret.example", "")
	assert.Equal(t, "https://secret.example", h.ui.addressBar.Text)
	assert.Equal(t, "Incognito", h.ui.docTabs.Items[1].Text)

	assert.Equal(t, []string{testHome}, h.ui.doc.History)
	assert.Equal(t, []string{testHome}, h.store.Load().History)
}

func TestTabLabelTruncated(t *testing.T) {
	h := newHarness(t)

	h.views[0].Commit("https://x.example", "A very long page title indeed")
	assert.Equal(t, "A very long page t", h.ui.docTabs.Items[0].Text)

	h.views[0].Commit("https://x.example", "Überschrift für Äpfel und Öl")
	assert.Equal(t, "Überschrift für Äp", h.ui.docTabs.Items[0].Text)
}

func TestAddBookmark(t *testing.T) {
	h := newHarness(t)
	h.views[0].Commit("https://go.dev", "The Go Programming Language")

	h.ui.onAddBookmark()

	assert.Equal(t, []string{"Bookmark: Saved"}, h.infos)
	assert.Empty(t, h.warnings)
	assert.Equal(t, []model.Bookmark{{Title: "The Go Programming Language", URL: "https://go.dev"}}, h.store.Load().Bookmarks)
	assert.Equal(t, 1, h.ui.bookmarksWindow.Len())
}

func TestAddBookmarkSaveFailure(t *testing.T) {
	h := newHarness(t)
	h.ui.store = store.New(filepath.Join(t.TempDir(), "missing", "browser_data.json"), logging.NewNop())

	h.ui.onAddBookmark()

	assert.Empty(t, h.infos)
	require.Len(t, h.warnings, 1)
	assert.Contains(t, h.warnings[0], "Could not save bookmark")

	// History save failures are logged only
	h.ui.onAddressSubmitted("example.com")
	assert.Len(t, h.warnings, 1)
}

func TestAddBookmarkSaveFailureIsNotPersistedLater(t *testing.T) {
	h := newHarness(t)
	h.views[0].Commit("https://failed.example", "Failed")
	h.ui.store = store.New(filepath.Join(t.TempDir(), "missing", "browser_data.json"), logging.NewNop())

	h.ui.onAddBookmark()
	require.Len(t, h.warnings, 1)
	assert.Empty(t, h.ui.doc.Bookmarks)

	// The next successful save is triggered by history
	h.ui.store = h.store
	h.ui.onAddressSubmitted("next.example")

	doc := h.store.Load()
	assert.Empty(t, doc.Bookmarks)
	assert.Contains(t, doc.History, "https://next.example")
	assert.Equal(t, 0, h.ui.bookmarksWindow.Len())
}

func TestOpenBookmarkFromWindow(t *testing.T) {
	h := newHarness(t)
	h.views[0].Commit("https://go.dev", "Go")
	h.ui.onAddBookmark()

	h.ui.bookmarksWindow.list.Select(0)

	require.Len(t, h.views, 2)
	assert.Equal(t, []string{"https://go.dev"}, h.views[1].Navigated)
	assert.Equal(t, 1, h.ui.Tabs().Active())
}

func TestDownloadAccepted(t *testing.T) {
	h := newHarness(t)
	h.saveOK = true

	d := &enginetest.Download{Source: "https://files.example/file.zip", Name: "file.zip", Mime: "application/zip"}
	h.views[0].RequestDownload(d)

	want := filepath.Join(h.dlDir, "file.zip")
	assert.Equal(t, []string{want}, h.prompts)
	assert.Equal(t, want, d.Accepted)
	assert.False(t, d.Declined)

	require.Equal(t, 1, h.recorder.Len())
	record := h.recorder.All()[0]
	assert.Equal(t, want, record.Path)
	assert.Equal(t, "https://files.example/file.zip", record.URL)
	assert.Equal(t, "application/zip", record.MimeType)
	assert.Equal(t, model.DownloadStatusCompleted, record.Status)
	assert.Len(t, h.ui.downloadsWindow.records, 1)

	// Downloads leave the page alone
	assert.Equal(t, testHome, h.ui.addressBar.Text)
}

func TestDownloadDeclined(t *testing.T) {
	h := newHarness(t)
	h.saveOK = false

	d := &enginetest.Download{Source: "https://files.example/file.zip", Name: "file.zip"}
	h.views[0].RequestDownload(d)

	assert.True(t, d.Declined)
	assert.Empty(t, d.Accepted)
	assert.Equal(t, 0, h.recorder.Len())
}

func TestDownloadFailed(t *testing.T) {
	h := newHarness(t)
	h.saveOK = true

	d := &enginetest.Download{Source: "https://files.example/a.bin", Name: "a.bin", Result: errors.New("disk full")}
	h.views[0].RequestDownload(d)

	require.Equal(t, 1, h.recorder.Len())
	record := h.recorder.All()[0]
	assert.Equal(t, model.DownloadStatusError, record.Status)
	assert.Equal(t, "disk full", record.LastError)
}

func TestDownloadSuggestsUniqueName(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(filepath.Join(h.dlDir, "file.zip"), []byte("old"), 0o644))

	d := &enginetest.Download{Source: "https://files.example/file.zip", Name: "file.zip"}
	h.views[0].RequestDownload(d)

	assert.Equal(t, []string{filepath.Join(h.dlDir, "file (1).zip")}, h.prompts)
}

func TestToggleThemeTwice(t *testing.T) {
	h := newHarness(t)
	initial := h.ui.Style()
	assert.True(t, initial.Dark)

	h.ui.onToggleTheme()
	assert.False(t, h.ui.Style().Dark)
	applied, ok := h.app.Settings().Theme().(*BrowserTheme)
	require.True(t, ok)
	assert.Equal(t, h.ui.Style(), applied.Style())

	h.ui.onToggleTheme()
	assert.Equal(t, initial, h.ui.Style())
}

func TestMoveTab(t *testing.T) {
	h := newHarness(t)
	h.ui.onNewTab()
	h.ui.onNewTab()
	require.Equal(t, 2, h.ui.Tabs().Active())

	h.ui.onMoveTabLeft()

	assert.Equal(t, 1, h.ui.Tabs().Active())
	assert.Equal(t, 1, h.ui.docTabs.SelectedIndex())
	assert.Same(t, h.views[2].CanvasObject(), h.ui.docTabs.Items[1].Content)
	assert.Same(t, h.views[1].CanvasObject(), h.ui.docTabs.Items[2].Content)

	// The second move is a no-op at the right edge
	h.ui.onMoveTabRight()
	h.ui.onMoveTabRight()
	assert.Equal(t, 2, h.ui.Tabs().Active())
	assert.Same(t, h.views[2].CanvasObject(), h.ui.docTabs.Items[2].Content)
}

func TestNavigationButtonsForwardToActiveView(t *testing.T) {
	h := newHarness(t)
	view := h.views[0]

	h.ui.onBack()
	h.ui.onForward()
	h.ui.onReload()
	h.ui.onHome()

	assert.Equal(t, 1, view.Backs)
	assert.Equal(t, 1, view.Forwards)
	assert.Equal(t, 1, view.Reloads)
	assert.Equal(t, []string{testHome, testHome}, view.Navigated)
}

func TestLanguageChange(t *testing.T) {
	h := newHarness(t)

	h.ui.onLanguageChange("de")

	assert.Equal(t, "de", h.ui.settings.GetLanguage())
	assert.Equal(t, "Inkognito", h.ui.privateBtn.Text)
	assert.Equal(t, "Lesezeichen", h.ui.bookmarkBtn.Text)

	h.ui.onNewPrivateTab()
	h.views[1].Commit("https://p.example", "")
	assert.Equal(t, "Inkognito", h.ui.docTabs.Items[1].Text)
}

func TestSettingsSavedUpdatesResolver(t *testing.T) {
	h := newHarness(t)

	h.ui.settings.SetSearchTemplate("https://duckduckgo.com/?q=%s")
	h.ui.onSettingsSaved()
	h.ui.onAddressSubmitted("go fyne")

	view := h.views[0]
	assert.Equal(t, "https://duckduckgo.com/?q=go+fyne", view.Navigated[len(view.Navigated)-1])

	// Saving without a template change keeps the resolver
	resolver := h.ui.resolver
	h.ui.onSettingsSaved()
	assert.Same(t, resolver, h.ui.resolver)
}
