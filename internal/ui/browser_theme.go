package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// BrowserTheme applies a Style to every Fyne widget
type BrowserTheme struct {
	style Style
	font  fyne.Resource
}

// NewBrowserTheme creates a theme for style. font, when not nil, replaces
// the regular text face.
func NewBrowserTheme(style Style, font fyne.Resource) fyne.Theme {
	return &BrowserTheme{style: style, font: font}
}

// Style returns the style the theme was built from
func (t *BrowserTheme) Style() Style {
	return t.style
}

func (t *BrowserTheme) variant() fyne.ThemeVariant {
	if t.style.Dark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// Color returns theme colors. The variant requested by Fyne is ignored;
// the style's own flag decides.
func (t *BrowserTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	s := t.style
	switch name {
	case theme.ColorNameBackground:
		return mustColor(s.MainBackground)
	case theme.ColorNameHeaderBackground:
		return mustColor(s.ToolbarBackground)
	case theme.ColorNameMenuBackground, theme.ColorNameButton:
		return mustColor(s.TabBackground)
	case theme.ColorNameOverlayBackground:
		return mustColor(s.SelectedTabBackground)
	case theme.ColorNameHover, theme.ColorNameSeparator:
		return mustColor(s.TabHover)
	case theme.ColorNameInputBackground:
		return mustColor(s.AddressBarBackground)
	case theme.ColorNameInputBorder:
		return mustColor(s.InputBorder)
	case theme.ColorNameForeground:
		return mustColor(s.AddressBarText)
	case theme.ColorNameForegroundOnPrimary:
		// Selected tab and primary buttons
		return mustColor(s.SelectedText)
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return mustColor(s.TabText)
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 255, G: 85, B: 85, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	}

	return theme.DefaultTheme().Color(name, t.variant())
}

// Font returns the bundled face for regular text
func (t *BrowserTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.font != nil && style == (fyne.TextStyle{}) {
		return t.font
	}
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *BrowserTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *BrowserTheme) Size(name fyne.ThemeSizeName) float32 {
	s := t.style
	switch name {
	case theme.SizeNamePadding:
		return s.Spacing / 2
	case theme.SizeNameInnerPadding:
		return s.Padding
	case theme.SizeNameInputRadius:
		return s.InputRadius
	case theme.SizeNameSelectionRadius:
		return s.TabRadius / 2
	case theme.SizeNameText:
		return s.TextSize
	case theme.SizeNameCaptionText:
		return s.TabTextSize
	case theme.SizeNameInlineIcon:
		return 16
	}

	return theme.DefaultTheme().Size(name)
}
