package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/wayang/internal/download"
	"github.com/ytget/wayang/internal/model"
)

// DownloadRow shows one download record with its file actions
type DownloadRow struct {
	widget.BaseWidget

	record       *model.DownloadRecord
	localization *Localization

	titleLabel  *widget.Label
	statusLabel *widget.Label
	pathLabel   *widget.Label

	revealBtn *widget.Button // reveal in file manager
	openBtn   *widget.Button // open with default app
	copyBtn   *widget.Button

	onReveal   func(filePath string)
	onOpen     func(filePath string)
	onCopyPath func(filePath string)
}

// NewDownloadRow creates a row. record may be nil for list templates.
func NewDownloadRow(record *model.DownloadRecord, localization *Localization) *DownloadRow {
	dr := &DownloadRow{
		record:       record,
		localization: localization,
	}
	dr.ExtendBaseWidget(dr)
	dr.createUI()
	dr.updateFromRecord()
	return dr
}

// SetCallbacks sets the action callbacks
func (dr *DownloadRow) SetCallbacks(onReveal, onOpen, onCopyPath func(filePath string)) {
	dr.onReveal = onReveal
	dr.onOpen = onOpen
	dr.onCopyPath = onCopyPath
}

// UpdateRecord shows record in the row
func (dr *DownloadRow) UpdateRecord(record *model.DownloadRecord) {
	dr.record = record
	dr.updateFromRecord()
	dr.Refresh()
}

func (dr *DownloadRow) createUI() {
	dr.titleLabel = widget.NewLabel("")
	dr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	dr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	dr.statusLabel = widget.NewLabel("")
	dr.statusLabel.Alignment = fyne.TextAlignTrailing

	dr.pathLabel = widget.NewLabel("")
	dr.pathLabel.TextStyle = fyne.TextStyle{Italic: true}
	dr.pathLabel.Truncation = fyne.TextTruncateEllipsis

	// Buttons read dr.record at tap time; the row is reused by the list
	dr.revealBtn = widget.NewButton(dr.localization.GetText(KeyReveal), func() {
		if dr.record != nil && dr.onReveal != nil {
			dr.onReveal(dr.record.Path)
		}
	})
	dr.openBtn = widget.NewButton(dr.localization.GetText(KeyOpen), func() {
		if dr.record != nil && dr.onOpen != nil {
			dr.onOpen(dr.record.Path)
		}
	})
	dr.copyBtn = widget.NewButton(dr.localization.GetText(KeyCopyPath), func() {
		if dr.record != nil && dr.onCopyPath != nil {
			dr.onCopyPath(dr.record.Path)
		}
	})
}

// refreshTexts relabels the action buttons in the current language
func (dr *DownloadRow) refreshTexts() {
	dr.revealBtn.SetText(dr.localization.GetText(KeyReveal))
	dr.openBtn.SetText(dr.localization.GetText(KeyOpen))
	dr.copyBtn.SetText(dr.localization.GetText(KeyCopyPath))
}

func (dr *DownloadRow) updateFromRecord() {
	dr.refreshTexts()

	if dr.record == nil {
		dr.titleLabel.SetText("")
		dr.statusLabel.SetText("")
		dr.pathLabel.SetText("")
		dr.revealBtn.Disable()
		dr.openBtn.Disable()
		dr.copyBtn.Disable()
		return
	}

	dr.titleLabel.SetText(dr.record.GetDisplayTitle())
	dr.pathLabel.SetText(dr.record.Path)

	status := dr.record.Status
	switch {
	case status.IsActive():
		dr.statusLabel.Importance = widget.MediumImportance
		dr.statusLabel.SetText(IconActive + " " + dr.localization.GetText(KeyStatusAccepted))
	case status == model.DownloadStatusCompleted:
		dr.statusLabel.Importance = widget.SuccessImportance
		dr.statusLabel.SetText(IconDone + " " + dr.localization.GetText(KeyStatusCompleted))
	default:
		dr.statusLabel.Importance = widget.DangerImportance
		dr.statusLabel.SetText(IconError + " " + dr.localization.GetText(KeyStatusError))
	}

	// The file only exists once the engine has finished writing it
	if dr.record.Status == model.DownloadStatusCompleted {
		dr.revealBtn.Enable()
		dr.openBtn.Enable()
	} else {
		dr.revealBtn.Disable()
		dr.openBtn.Disable()
	}
	dr.copyBtn.Enable()
}

// CreateRenderer creates the widget renderer
func (dr *DownloadRow) CreateRenderer() fyne.WidgetRenderer {
	actions := container.NewHBox(dr.revealBtn, dr.openBtn, dr.copyBtn)
	header := container.NewBorder(nil, nil, nil, dr.statusLabel, dr.titleLabel)
	body := container.NewBorder(nil, nil, nil, actions, dr.pathLabel)
	return widget.NewSimpleRenderer(container.NewVBox(header, body, widget.NewSeparator()))
}

// DownloadsWindow is the secondary window listing the session's downloads.
// Closing it only hides it.
type DownloadsWindow struct {
	window       fyne.Window
	recorder     download.Recorder
	localization *Localization

	list    *widget.List
	empty   *widget.Label
	records []*model.DownloadRecord
	rows    []*DownloadRow

	onReveal   func(filePath string)
	onOpen     func(filePath string)
	onCopyPath func(filePath string)
}

// NewDownloadsWindow creates the hidden downloads window
func NewDownloadsWindow(app fyne.App, recorder download.Recorder, localization *Localization) *DownloadsWindow {
	dw := &DownloadsWindow{
		window:       app.NewWindow(localization.GetText(KeyDownloads)),
		recorder:     recorder,
		localization: localization,
	}

	dw.list = widget.NewList(
		func() int { return len(dw.records) },
		func() fyne.CanvasObject {
			row := NewDownloadRow(nil, dw.localization)
			row.SetCallbacks(dw.reveal, dw.open, dw.copyPath)
			dw.rows = append(dw.rows, row)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(dw.records) {
				return
			}
			obj.(*DownloadRow).UpdateRecord(dw.records[id])
		},
	)
	dw.empty = widget.NewLabel(localization.GetText(KeyNoDownloads))
	dw.empty.Alignment = fyne.TextAlignCenter

	dw.window.SetContent(container.NewStack(dw.list, container.NewCenter(dw.empty)))
	dw.window.Resize(fyne.NewSize(DownloadsWindowWidth, DownloadsWindowHeight))
	dw.window.SetCloseIntercept(dw.window.Hide)

	dw.Refresh()
	return dw
}

// SetCallbacks sets the row actions
func (dw *DownloadsWindow) SetCallbacks(onReveal, onOpen, onCopyPath func(filePath string)) {
	dw.onReveal = onReveal
	dw.onOpen = onOpen
	dw.onCopyPath = onCopyPath
}

// Show brings the window up with the current records
func (dw *DownloadsWindow) Show() {
	dw.Refresh()
	dw.window.Show()
	dw.window.RequestFocus()
}

// Refresh reloads the records from the recorder
func (dw *DownloadsWindow) Refresh() {
	dw.records = dw.recorder.All()
	if len(dw.records) == 0 {
		dw.empty.Show()
	} else {
		dw.empty.Hide()
	}
	dw.list.Refresh()
}

// RefreshTexts relabels the window and every row after a language change
func (dw *DownloadsWindow) RefreshTexts() {
	dw.window.SetTitle(dw.localization.GetText(KeyDownloads))
	dw.empty.SetText(dw.localization.GetText(KeyNoDownloads))
	for _, row := range dw.rows {
		row.updateFromRecord()
		row.Refresh()
	}
}

// Close destroys the window
func (dw *DownloadsWindow) Close() {
	dw.window.Close()
}

func (dw *DownloadsWindow) reveal(path string) {
	if dw.onReveal != nil {
		dw.onReveal(path)
	}
}

func (dw *DownloadsWindow) open(path string) {
	if dw.onOpen != nil {
		dw.onOpen(path)
	}
}

func (dw *DownloadsWindow) copyPath(path string) {
	if dw.onCopyPath != nil {
		dw.onCopyPath(path)
	}
}
