// Package ui contains the Fyne-based browser window. It renders the tab
// container, wires the toolbar, menu and shortcuts to it, and turns view
// notifications into history, bookmarks and download records. All UI
// strings are localized via Localization.
package ui
