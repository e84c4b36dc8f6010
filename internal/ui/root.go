package ui

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/wayang/internal/config"
	"github.com/ytget/wayang/internal/download"
	"github.com/ytget/wayang/internal/engine"
	"github.com/ytget/wayang/internal/logging"
	"github.com/ytget/wayang/internal/model"
	"github.com/ytget/wayang/internal/nav"
	"github.com/ytget/wayang/internal/platform"
	"github.com/ytget/wayang/internal/store"
	"github.com/ytget/wayang/internal/tabs"
)

// Dialogs are the window's modal interactions. Nil fields fall back to
// Fyne dialogs on the main window.
type Dialogs struct {
	Information func(title, message string)
	Warning     func(title, message string)

	// SavePath asks where to store a download. ok is false on cancel.
	SavePath func(dir, name string, cb func(path string, ok bool))
}

// Options carries the collaborators of the main window
type Options struct {
	Factory   engine.Factory
	Store     *store.Store
	Downloads download.Recorder
	Settings  *config.Settings
	Assets    Assets
	Logger    *logging.Logger
	Dialogs   Dialogs
}

// RootUI is the main browser window. It renders the tab container, keeps
// the address bar in step with the active view and turns view
// notifications into history, bookmarks and download records.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	tabs         *tabs.Container
	store        *store.Store
	doc          model.Document
	downloads    download.Recorder
	settings     *config.Settings
	localization *Localization
	resolver     *nav.Resolver
	assets       Assets
	logger       *logging.Logger
	dialogs      Dialogs
	style        Style

	addressBar   *widget.Entry
	docTabs      *container.DocTabs
	toolbarBg    *canvas.Rectangle
	bookmarkBtn  *widget.Button
	downloadsBtn *widget.Button
	privateBtn   *widget.Button
	themeBtn     *widget.Button

	downloadsWindow *DownloadsWindow
	bookmarksWindow *BookmarksWindow
	settingsDialog  *SettingsDialog

	// set while the tab strip is changed programmatically
	syncingTabs bool
}

var (
	_ tabs.Observer   = (*RootUI)(nil)
	_ engine.Listener = (*RootUI)(nil)
)

// NewRootUI creates and initializes the main window and opens the first
// tab at the home page
func NewRootUI(window fyne.Window, app fyne.App, opts Options) *RootUI {
	settings := opts.Settings
	if settings == nil {
		settings = config.NewSettings(app)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		store:        opts.Store,
		downloads:    opts.Downloads,
		settings:     settings,
		localization: localization,
		resolver:     nav.NewResolver(settings.GetSearchTemplate()),
		assets:       opts.Assets,
		logger:       logger.Named("ui"),
		dialogs:      opts.Dialogs,
		style:        StyleFor(settings.GetStartDark(), opts.Assets.FontFamily()),
	}
	if ui.downloads == nil {
		ui.downloads = download.NewService()
	}
	ui.doc = ui.store.Load()
	ui.logger.Info("browser data loaded",
		zap.String("path", ui.store.Path()),
		zap.Int("bookmarks", len(ui.doc.Bookmarks)),
		zap.Int("history", len(ui.doc.History)))
	ui.setupDialogs()

	if err := platform.CreateDirectoryIfNotExists(settings.GetDownloadDirectory()); err != nil {
		ui.logger.Warn("download directory not available", zap.Error(err))
	}

	ui.tabs = tabs.NewContainer(opts.Factory)
	ui.tabs.AddObserver(ui)

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	ui.applyTheme()

	ui.tabs.OpenTab(settings.GetHomePage(), engine.Normal)
	return ui
}

// Style returns the style currently applied
func (ui *RootUI) Style() Style {
	return ui.style
}

// Tabs returns the window's tab container
func (ui *RootUI) Tabs() *tabs.Container {
	return ui.tabs
}

// setupDialogs fills unset dialogs with Fyne implementations
func (ui *RootUI) setupDialogs() {
	if ui.dialogs.Information == nil {
		ui.dialogs.Information = func(title, message string) {
			dialog.ShowInformation(title, message, ui.window)
		}
	}
	if ui.dialogs.Warning == nil {
		ui.dialogs.Warning = func(title, message string) {
			content := container.NewHBox(widget.NewIcon(theme.WarningIcon()), widget.NewLabel(message))
			dialog.ShowCustom(title, "OK", content, ui.window)
		}
	}
	if ui.dialogs.SavePath == nil {
		ui.dialogs.SavePath = ui.promptSavePath
	}
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	text := ui.localization.GetText

	ui.createMenu()

	ui.addressBar = widget.NewEntry()
	ui.addressBar.SetPlaceHolder(text(KeyAddressPlaceholder))
	ui.addressBar.OnSubmitted = ui.onAddressSubmitted

	navButtons := container.NewHBox(
		iconButton(theme.NavigateBackIcon(), ui.onBack),
		iconButton(theme.NavigateNextIcon(), ui.onForward),
		iconButton(theme.ViewRefreshIcon(), ui.onReload),
		iconButton(theme.HomeIcon(), ui.onHome),
	)

	ui.bookmarkBtn = widget.NewButtonWithIcon(text(KeyBookmark), theme.ContentAddIcon(), ui.onAddBookmark)
	ui.downloadsBtn = widget.NewButtonWithIcon(text(KeyDownloads), theme.DownloadIcon(), ui.onShowDownloads)
	ui.privateBtn = widget.NewButtonWithIcon(text(KeyIncognito), theme.VisibilityOffIcon(), ui.onNewPrivateTab)
	ui.themeBtn = widget.NewButtonWithIcon(text(KeyToggleTheme), theme.ColorPaletteIcon(), ui.onToggleTheme)
	for _, b := range []*widget.Button{ui.bookmarkBtn, ui.downloadsBtn, ui.privateBtn, ui.themeBtn} {
		b.Importance = widget.LowImportance
	}

	actionButtons := container.NewHBox(
		iconButton(theme.ContentAddIcon(), ui.onNewTab),
		ui.bookmarkBtn,
		ui.downloadsBtn,
		ui.privateBtn,
		ui.themeBtn,
	)

	ui.toolbarBg = canvas.NewRectangle(mustColor(ui.style.ToolbarBackground))
	toolbar := container.NewStack(
		ui.toolbarBg,
		container.NewPadded(container.NewBorder(nil, nil, navButtons, actionButtons, ui.addressBar)),
	)

	ui.docTabs = container.NewDocTabs()
	ui.docTabs.OnSelected = ui.onTabSelected
	ui.docTabs.CloseIntercept = ui.onTabCloseRequested
	ui.docTabs.CreateTab = func() *container.TabItem {
		// The container appends the item through TabOpened
		ui.onNewTab()
		return nil
	}

	ui.downloadsWindow = NewDownloadsWindow(ui.app, ui.downloads, ui.localization)
	ui.downloadsWindow.SetCallbacks(ui.onRevealFile, ui.onOpenFile, ui.onCopyPath)
	ui.downloads.SetUpdateCallback(func(*model.DownloadRecord) {
		ui.downloadsWindow.Refresh()
	})

	ui.bookmarksWindow = NewBookmarksWindow(ui.app, ui.localization,
		func() []model.Bookmark { return ui.doc.Bookmarks },
		func(b model.Bookmark) { ui.tabs.OpenTab(b.URL, engine.Normal) },
	)

	ui.settingsDialog = NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved)

	ui.registerShortcuts()
	ui.window.SetOnClosed(ui.shutdown)
	ui.window.SetContent(container.NewBorder(toolbar, nil, nil, nil, ui.docTabs))

	ui.logger.Debug("UI setup completed")
}

func iconButton(icon fyne.Resource, tapped func()) *widget.Button {
	b := widget.NewButtonWithIcon("", icon, tapped)
	b.Importance = widget.LowImportance
	return b
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	text := ui.localization.GetText

	fileMenu := fyne.NewMenu(text(KeyFile),
		fyne.NewMenuItem(text(KeyNewTab), ui.onNewTab),
		fyne.NewMenuItem(text(KeyNewPrivateTab), ui.onNewPrivateTab),
		fyne.NewMenuItem(text(KeyCloseTab), ui.onCloseTab),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(text(KeySettings), ui.onShowSettings),
	)

	viewMenu := fyne.NewMenu(text(KeyView),
		fyne.NewMenuItem(text(KeyBack), ui.onBack),
		fyne.NewMenuItem(text(KeyForward), ui.onForward),
		fyne.NewMenuItem(text(KeyReload), ui.onReload),
		fyne.NewMenuItem(text(KeyHome), ui.onHome),
		fyne.NewMenuItem(text(KeyFocusAddress), ui.onFocusAddress),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(text(KeyMoveTabLeft), ui.onMoveTabLeft),
		fyne.NewMenuItem(text(KeyMoveTabRight), ui.onMoveTabRight),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(text(KeyToggleTheme), ui.onToggleTheme),
		fyne.NewMenuItem(text(KeyDownloads), ui.onShowDownloads),
	)

	bookmarksMenu := fyne.NewMenu(text(KeyBookmarks),
		fyne.NewMenuItem(text(KeyBookmark), ui.onAddBookmark),
		fyne.NewMenuItem(text(KeyShowBookmarks), ui.onShowBookmarks),
	)

	// Language submenu
	languageMenu := fyne.NewMenu(text(KeyLanguage))
	options := ui.settings.GetLanguageOptions()
	codes := make([]string, 0, len(options))
	for code := range options {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	current := ui.settings.GetLanguage()
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(options[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = current == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, bookmarksMenu, languageMenu))
}

// registerShortcuts binds the keyboard shortcuts of the window
func (ui *RootUI) registerShortcuts() {
	ctrl := fyne.KeyModifierShortcutDefault
	shortcuts := []struct {
		key    fyne.KeyName
		mod    fyne.KeyModifier
		action func()
	}{
		{fyne.KeyT, ctrl, ui.onNewTab},
		{fyne.KeyN, ctrl | fyne.KeyModifierShift, ui.onNewPrivateTab},
		{fyne.KeyW, ctrl, ui.onCloseTab},
		{fyne.KeyL, ctrl, ui.onFocusAddress},
		{fyne.KeyR, ctrl, ui.onReload},
		{fyne.KeyD, ctrl, ui.onAddBookmark},
		{fyne.KeyLeft, fyne.KeyModifierAlt, ui.onBack},
		{fyne.KeyRight, fyne.KeyModifierAlt, ui.onForward},
		{fyne.KeyPageUp, ctrl | fyne.KeyModifierShift, ui.onMoveTabLeft},
		{fyne.KeyPageDown, ctrl | fyne.KeyModifierShift, ui.onMoveTabRight},
	}

	for _, s := range shortcuts {
		action := s.action
		ui.window.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: s.key, Modifier: s.mod}, func(fyne.Shortcut) {
			action()
		})
	}
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.settings.SetLanguage(langCode)
	ui.applyLanguage()
}

// applyLanguage re-reads the configured language and relabels the window
func (ui *RootUI) applyLanguage() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	text := ui.localization.GetText

	ui.updateWindowTitle()
	ui.addressBar.SetPlaceHolder(text(KeyAddressPlaceholder))
	ui.bookmarkBtn.SetText(text(KeyBookmark))
	ui.downloadsBtn.SetText(text(KeyDownloads))
	ui.privateBtn.SetText(text(KeyIncognito))
	ui.themeBtn.SetText(text(KeyToggleTheme))
	ui.downloadsWindow.RefreshTexts()
	ui.bookmarksWindow.RefreshTexts()

	// Untitled tabs carry a translated placeholder label
	for i, tab := range ui.tabs.Tabs() {
		if i < len(ui.docTabs.Items) {
			ui.docTabs.Items[i].Text = ui.tabLabel(tab.View.Title(), tab.Private)
		}
	}
	ui.docTabs.Refresh()

	ui.settingsDialog = NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved)
}

// applyTheme applies the current style to the whole application
func (ui *RootUI) applyTheme() {
	ui.app.Settings().SetTheme(NewBrowserTheme(ui.style, ui.assets.Font))
	ui.toolbarBg.FillColor = mustColor(ui.style.ToolbarBackground)
	ui.toolbarBg.Refresh()
}

// syncTabs runs fn with tab strip callbacks suppressed
func (ui *RootUI) syncTabs(fn func()) {
	ui.syncingTabs = true
	defer func() { ui.syncingTabs = false }()
	fn()
}

// tabLabel returns the label for a tab with the given page title
func (ui *RootUI) tabLabel(title string, private bool) string {
	title = strings.TrimSpace(title)
	if title == "" {
		if private {
			return ui.localization.GetText(KeyIncognito)
		}
		return ui.localization.GetText(KeyNewTab)
	}
	return truncateRunes(title, TabTitleMaxRunes)
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func (ui *RootUI) tabIcon(private bool) fyne.Resource {
	if private {
		return theme.VisibilityOffIcon()
	}
	if ui.assets.Favicon != nil {
		return ui.assets.Favicon
	}
	return theme.FileIcon()
}

func (ui *RootUI) updateWindowTitle() {
	appTitle := ui.localization.GetText(KeyAppTitle)
	v, err := ui.tabs.ActiveView()
	if err != nil || strings.TrimSpace(v.Title()) == "" {
		ui.window.SetTitle(appTitle)
		return
	}
	ui.window.SetTitle(fmt.Sprintf(WindowTitleFormat, v.Title(), appTitle))
}

// syncAddressBar shows the active view's URL
func (ui *RootUI) syncAddressBar() {
	v, err := ui.tabs.ActiveView()
	if err != nil {
		ui.addressBar.SetText("")
		return
	}
	ui.addressBar.SetText(v.URL())
}

func (ui *RootUI) indexOfItem(item *container.TabItem) int {
	for i, it := range ui.docTabs.Items {
		if it == item {
			return i
		}
	}
	return -1
}

// TabOpened implements tabs.Observer
func (ui *RootUI) TabOpened(index int, tab *tabs.Tab) {
	tab.View.SetListener(ui)

	item := container.NewTabItemWithIcon(ui.tabLabel("", tab.Private), ui.tabIcon(tab.Private), tab.View.CanvasObject())
	ui.syncTabs(func() {
		items := append([]*container.TabItem(nil), ui.docTabs.Items...)
		items = append(items[:index], append([]*container.TabItem{item}, items[index:]...)...)
		ui.docTabs.SetItems(items)
	})
	ui.logger.Debug("tab opened", zap.Int("index", index), zap.Bool("private", tab.Private))
}

// TabClosed implements tabs.Observer
func (ui *RootUI) TabClosed(index int, tab *tabs.Tab) {
	if index < 0 || index >= len(ui.docTabs.Items) {
		return
	}
	ui.syncTabs(func() {
		ui.docTabs.RemoveIndex(index)
		ui.docTabs.SelectIndex(ui.tabs.Active())
	})
	ui.logger.Debug("tab closed", zap.Int("index", index), zap.String("id", tab.ID))
}

// TabMoved implements tabs.Observer
func (ui *RootUI) TabMoved(from, to int) {
	items := append([]*container.TabItem(nil), ui.docTabs.Items...)
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return
	}

	item := items[from]
	items = append(items[:from], items[from+1:]...)
	items = append(items[:to], append([]*container.TabItem{item}, items[to:]...)...)

	ui.syncTabs(func() {
		ui.docTabs.SetItems(items)
		ui.docTabs.SelectIndex(ui.tabs.Active())
	})
}

// ActiveChanged implements tabs.Observer
func (ui *RootUI) ActiveChanged(index int, _ *tabs.Tab) {
	ui.syncTabs(func() {
		ui.docTabs.SelectIndex(index)
	})
	ui.syncAddressBar()
	ui.updateWindowTitle()
}

// onTabSelected handles a click on the tab strip
func (ui *RootUI) onTabSelected(item *container.TabItem) {
	if ui.syncingTabs {
		return
	}
	if idx := ui.indexOfItem(item); idx >= 0 {
		if err := ui.tabs.Select(idx); err != nil {
			ui.logger.Debug("tab select failed", zap.Int("index", idx), zap.Error(err))
		}
	}
}

// onTabCloseRequested handles the close button of a tab. The last tab
// stays open.
func (ui *RootUI) onTabCloseRequested(item *container.TabItem) {
	if idx := ui.indexOfItem(item); idx >= 0 {
		ui.tabs.CloseTab(idx)
	}
}

// URLChanged implements engine.Listener
func (ui *RootUI) URLChanged(v engine.View, url string) {
	if ui.tabs.IndexOfView(v) < 0 {
		return
	}

	if !v.Mode().Private {
		ui.doc.AddHistory(url)
		if err := ui.store.Save(ui.doc); err != nil {
			ui.logger.Warn("history not saved", zap.String("url", url), zap.Error(err))
		}
	}

	if ui.tabs.IsActiveView(v) {
		ui.addressBar.SetText(url)
	}
}

// TitleChanged implements engine.Listener
func (ui *RootUI) TitleChanged(v engine.View, title string) {
	idx := ui.tabs.IndexOfView(v)
	if idx < 0 || idx >= len(ui.docTabs.Items) {
		return
	}

	ui.docTabs.Items[idx].Text = ui.tabLabel(title, v.Mode().Private)
	ui.docTabs.Refresh()

	if ui.tabs.IsActiveView(v) {
		ui.updateWindowTitle()
	}
}

// DownloadRequested implements engine.Listener
func (ui *RootUI) DownloadRequested(_ engine.View, d engine.Download) {
	dir := ui.settings.GetDownloadDirectory()
	name := filepath.Base(platform.UniquePath(dir, platform.SanitizeFileName(d.SuggestedName())))

	ui.dialogs.SavePath(dir, name, func(path string, ok bool) {
		if !ok || path == "" {
			d.Decline()
			ui.logger.Debug("download declined", zap.String("url", d.URL()))
			return
		}
		ui.acceptDownload(d, path)
	})
}

// acceptDownload records d and lets the engine write it to path
func (ui *RootUI) acceptDownload(d engine.Download, path string) {
	record := ui.downloads.Add(d.URL(), path, d.MimeType())
	ui.logger.Info("download accepted", zap.String("url", d.URL()), zap.String("path", path))

	err := d.Accept(path, func(err error) {
		ui.finishDownload(record.ID, err)
	})
	if err != nil {
		ui.finishDownload(record.ID, err)
		ui.dialogs.Warning(ui.localization.GetText(KeyDownloadFailed), err.Error())
	}
}

func (ui *RootUI) finishDownload(id string, cause error) {
	var err error
	if cause != nil {
		ui.logger.Warn("download failed", zap.String("id", id), zap.Error(cause))
		err = ui.downloads.MarkFailed(id, cause)
	} else {
		err = ui.downloads.MarkCompleted(id)
	}
	if err != nil {
		ui.logger.Debug("download record not updated", zap.String("id", id), zap.Error(err))
		return
	}
	if record, ok := ui.downloads.Get(id); ok {
		ui.logger.Info("download finished",
			zap.String("path", record.Path),
			zap.Stringer("status", record.Status))
	}
}

// promptSavePath shows the Fyne save dialog
func (ui *RootUI) promptSavePath(dir, name string, cb func(path string, ok bool)) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			ui.logger.Warn("save dialog failed", zap.Error(err))
			cb("", false)
			return
		}
		if writer == nil {
			cb("", false)
			return
		}

		// The engine writes the file itself
		path := writer.URI().Path()
		if closeErr := writer.Close(); closeErr != nil {
			ui.logger.Debug("closing save target failed", zap.Error(closeErr))
		}
		cb(path, true)
	}, ui.window)

	d.SetFileName(name)
	if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
		d.SetLocation(lister)
	}
	d.Show()
}

// onAddressSubmitted navigates the active tab to the resolved input
func (ui *RootUI) onAddressSubmitted(input string) {
	if nav.IsBlank(input) {
		return
	}

	target := ui.resolver.Resolve(input)
	if err := ui.tabs.Navigate(target); err != nil {
		ui.logger.Debug("navigate failed", zap.String("target", target), zap.Error(err))
	}
}

func (ui *RootUI) onBack() {
	if err := ui.tabs.Back(); err != nil {
		ui.logger.Debug("back failed", zap.Error(err))
	}
}

func (ui *RootUI) onForward() {
	if err := ui.tabs.Forward(); err != nil {
		ui.logger.Debug("forward failed", zap.Error(err))
	}
}

func (ui *RootUI) onReload() {
	if err := ui.tabs.Reload(); err != nil {
		ui.logger.Debug("reload failed", zap.Error(err))
	}
}

func (ui *RootUI) onHome() {
	if err := ui.tabs.Navigate(ui.settings.GetHomePage()); err != nil {
		ui.logger.Debug("home failed", zap.Error(err))
	}
}

func (ui *RootUI) onNewTab() {
	ui.tabs.OpenTab(ui.settings.GetHomePage(), engine.Normal)
}

func (ui *RootUI) onNewPrivateTab() {
	ui.tabs.OpenTab(ui.settings.GetHomePage(), engine.Incognito)
}

func (ui *RootUI) onCloseTab() {
	ui.tabs.CloseTab(ui.tabs.Active())
}

func (ui *RootUI) onMoveTabLeft() {
	if i := ui.tabs.Active(); i > 0 {
		_ = ui.tabs.Move(i, i-1)
	}
}

func (ui *RootUI) onMoveTabRight() {
	if i := ui.tabs.Active(); i >= 0 && i < ui.tabs.Count()-1 {
		_ = ui.tabs.Move(i, i+1)
	}
}

func (ui *RootUI) onFocusAddress() {
	ui.window.Canvas().Focus(ui.addressBar)
	ui.addressBar.TypedShortcut(&fyne.ShortcutSelectAll{})
}

// onAddBookmark saves the active page as a bookmark
func (ui *RootUI) onAddBookmark() {
	text := ui.localization.GetText

	v, err := ui.tabs.ActiveView()
	if err != nil {
		ui.dialogs.Warning(text(KeyError), text(KeyBookmarkFailed)+": "+err.Error())
		return
	}

	title := v.Title()
	if strings.TrimSpace(title) == "" {
		title = v.URL()
	}
	n := len(ui.doc.Bookmarks)
	ui.doc.AddBookmark(title, v.URL())

	if err := ui.store.Save(ui.doc); err != nil {
		// A bookmark reported as failed must not reach the next save
		ui.doc.Bookmarks = ui.doc.Bookmarks[:n]
		ui.logger.Warn("bookmark not saved", zap.String("url", v.URL()), zap.Error(err))
		ui.dialogs.Warning(text(KeyError), text(KeyBookmarkFailed)+": "+err.Error())
		return
	}

	ui.bookmarksWindow.Refresh()
	ui.dialogs.Information(text(KeyBookmark), text(KeySaved))
}

func (ui *RootUI) onShowBookmarks() {
	ui.bookmarksWindow.Show()
}

func (ui *RootUI) onShowDownloads() {
	ui.downloadsWindow.Show()
}

func (ui *RootUI) onShowSettings() {
	ui.settingsDialog.Show()
}

// onToggleTheme flips between the dark and light style
func (ui *RootUI) onToggleTheme() {
	ui.style = ui.style.Toggled()
	ui.applyTheme()
}

// onSettingsSaved picks up edited settings
func (ui *RootUI) onSettingsSaved() {
	if tpl := ui.settings.GetSearchTemplate(); tpl != ui.resolver.SearchTemplate() {
		ui.resolver = nav.NewResolver(tpl)
		ui.logger.Info("search template changed", zap.String("template", ui.resolver.SearchTemplate()))
	}
	if err := platform.CreateDirectoryIfNotExists(ui.settings.GetDownloadDirectory()); err != nil {
		ui.logger.Warn("download directory not available", zap.Error(err))
	}
	if ui.localization.GetCurrentLanguage() != ui.settings.GetLanguage() {
		ui.applyLanguage()
	}
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		ui.logger.Warn("reveal failed", zap.String("path", filePath), zap.Error(err))
		ui.dialogs.Warning(ui.localization.GetText(KeyErrorOpeningFile), err.Error())
	}
}

// onOpenFile handles opening a downloaded file with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		ui.logger.Warn("open failed", zap.String("path", filePath), zap.Error(err))
		ui.dialogs.Warning(ui.localization.GetText(KeyErrorOpeningFile), err.Error())
	}
}

// onCopyPath handles copying file path to clipboard
func (ui *RootUI) onCopyPath(filePath string) {
	if filePath == "" {
		return
	}
	ui.app.Clipboard().SetContent(filePath)
	ui.dialogs.Information(ui.localization.GetText(KeyCopyPath), ui.localization.GetText(KeyPathCopied))
}

// shutdown releases every view and secondary window
func (ui *RootUI) shutdown() {
	if paths := ui.downloads.Paths(); len(paths) > 0 {
		ui.logger.Info("session downloads", zap.Strings("paths", paths))
	}
	ui.tabs.CloseAll()
	ui.downloadsWindow.Close()
	ui.bookmarksWindow.Close()
}
