package ui

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/wayang/internal/download"
	"github.com/ytget/wayang/internal/model"
)

func TestDownloadRowStatus(t *testing.T) {
	test.NewApp()
	loc := NewLocalization()

	record := &model.DownloadRecord{ID: "1", Path: "/tmp/dl/report.pdf", Status: model.DownloadStatusAccepted}
	row := NewDownloadRow(record, loc)

	assert.Equal(t, "report.pdf", row.titleLabel.Text)
	assert.Equal(t, "/tmp/dl/report.pdf", row.pathLabel.Text)
	assert.Equal(t, IconActive+" Downloading", row.statusLabel.Text)
	assert.True(t, row.revealBtn.Disabled())
	assert.True(t, row.openBtn.Disabled())
	assert.False(t, row.copyBtn.Disabled())

	record.Status = model.DownloadStatusCompleted
	row.UpdateRecord(record)
	assert.Equal(t, IconDone+" Completed", row.statusLabel.Text)
	assert.Equal(t, widget.SuccessImportance, row.statusLabel.Importance)
	assert.False(t, row.revealBtn.Disabled())
	assert.False(t, row.openBtn.Disabled())

	record.Status = model.DownloadStatusError
	row.UpdateRecord(record)
	assert.Equal(t, IconError+" Failed", row.statusLabel.Text)
	assert.True(t, row.openBtn.Disabled())
}

func TestDownloadRowTemplate(t *testing.T) {
	test.NewApp()
	row := NewDownloadRow(nil, NewLocalization())

	assert.Empty(t, row.titleLabel.Text)
	assert.True(t, row.copyBtn.Disabled())
}

func TestDownloadRowCallbacks(t *testing.T) {
	test.NewApp()
	record := &model.DownloadRecord{ID: "1", Path: "/tmp/dl/a.zip", Status: model.DownloadStatusCompleted}
	row := NewDownloadRow(record, NewLocalization())

	var revealed, opened, copied string
	row.SetCallbacks(
		func(p string) { revealed = p },
		func(p string) { opened = p },
		func(p string) { copied = p },
	)

	test.Tap(row.revealBtn)
	test.Tap(row.openBtn)
	test.Tap(row.copyBtn)

	assert.Equal(t, "/tmp/dl/a.zip", revealed)
	assert.Equal(t, "/tmp/dl/a.zip", opened)
	assert.Equal(t, "/tmp/dl/a.zip", copied)
}

func TestDownloadsWindowRefresh(t *testing.T) {
	a := test.NewApp()
	recorder := download.NewService()
	dw := NewDownloadsWindow(a, recorder, NewLocalization())

	assert.Empty(t, dw.records)
	assert.True(t, dw.empty.Visible())

	first := recorder.Add("https://files.example/a.zip", "/tmp/a.zip", "application/zip")
	recorder.Add("https://files.example/b.zip", "/tmp/b.zip", "application/zip")
	require.NoError(t, recorder.MarkFailed(first.ID, errors.New("boom")))

	dw.Refresh()
	require.Len(t, dw.records, 2)
	assert.Equal(t, "/tmp/a.zip", dw.records[0].Path)
	assert.Equal(t, model.DownloadStatusError, dw.records[0].Status)
	assert.False(t, dw.empty.Visible())
}

func TestDownloadsWindowRefreshTextsRelabelsRows(t *testing.T) {
	a := test.NewApp()
	recorder := download.NewService()
	loc := NewLocalization()
	loc.SetLanguage("en")
	dw := NewDownloadsWindow(a, recorder, loc)

	record := recorder.Add("https://files.example/a.zip", "/tmp/a.zip", "application/zip")
	require.NoError(t, recorder.MarkCompleted(record.ID))
	dw.Refresh()

	obj := dw.list.CreateItem()
	dw.list.UpdateItem(0, obj)
	row := obj.(*DownloadRow)
	assert.Equal(t, "show", row.revealBtn.Text)

	loc.SetLanguage("de")
	dw.RefreshTexts()

	assert.Equal(t, "zeigen", row.revealBtn.Text)
	assert.Equal(t, "öffnen", row.openBtn.Text)
	assert.Equal(t, "Pfad", row.copyBtn.Text)
	assert.Equal(t, IconDone+" Fertig", row.statusLabel.Text)
	assert.Equal(t, "Noch keine Downloads", dw.empty.Text)
}
