package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleForDark(t *testing.T) {
	s := StyleFor(true, "Roboto")

	assert.True(t, s.Dark)
	assert.Equal(t, "#1e1e1e", s.TabBackground)
	assert.Equal(t, "#2a2a2a", s.SelectedTabBackground)
	assert.Equal(t, "#333", s.TabHover)
	assert.Equal(t, "#aaa", s.TabText)
	assert.Equal(t, "#fff", s.SelectedText)
	assert.Equal(t, "#1e1e1e", s.ToolbarBackground)
	assert.Equal(t, "#2a2a2a", s.AddressBarBackground)
	assert.Equal(t, "#fff", s.AddressBarText)
	assert.Equal(t, "#121212", s.MainBackground)
	assert.Equal(t, "Roboto", s.FontFamily)
}

func TestStyleForLight(t *testing.T) {
	s := StyleFor(false, "")

	assert.False(t, s.Dark)
	assert.Equal(t, "#ddd", s.TabBackground)
	assert.Equal(t, "#fff", s.SelectedTabBackground)
	assert.Equal(t, "#eee", s.TabHover)
	assert.Equal(t, "#555", s.TabText)
	assert.Equal(t, "#000", s.SelectedText)
	assert.Equal(t, "#ccc", s.ToolbarBackground)
	assert.Equal(t, "#fff", s.AddressBarBackground)
	assert.Equal(t, "#000", s.AddressBarText)
	assert.Equal(t, "#f5f5f5", s.MainBackground)
	assert.Empty(t, s.FontFamily)
}

func TestStyleSharedMetrics(t *testing.T) {
	for _, dark := range []bool{true, false} {
		s := StyleFor(dark, "")
		assert.Equal(t, "#3a3a3a", s.InputBorder)
		assert.Equal(t, float32(8), s.Spacing)
		assert.Equal(t, float32(6), s.Padding)
		assert.Equal(t, float32(10), s.InputRadius)
		assert.Equal(t, float32(8), s.TabRadius)
	}
}

func TestStyleToggledTwice(t *testing.T) {
	for _, dark := range []bool{true, false} {
		original := StyleFor(dark, "Roboto")
		toggled := original.Toggled()

		assert.NotEqual(t, original, toggled)
		assert.Equal(t, !dark, toggled.Dark)
		assert.Equal(t, original, toggled.Toggled())
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#1e1e1e")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}, c)

	c, err = parseHexColor("#abc")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}, c)

	for _, bad := range []string{"", "#12", "#12345", "#gggggg", "white"} {
		_, err := parseHexColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestBrowserThemeColors(t *testing.T) {
	dark := NewBrowserTheme(StyleFor(true, ""), nil)
	light := NewBrowserTheme(StyleFor(false, ""), nil)

	// The style decides, not the requested variant
	assert.Equal(t, mustColor("#121212"), dark.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t, mustColor("#f5f5f5"), light.Color(theme.ColorNameBackground, theme.VariantDark))

	assert.Equal(t, mustColor("#2a2a2a"), dark.Color(theme.ColorNameInputBackground, theme.VariantDark))
	assert.Equal(t, mustColor("#3a3a3a"), dark.Color(theme.ColorNameInputBorder, theme.VariantDark))
	assert.Equal(t, mustColor("#000"), light.Color(theme.ColorNameForeground, theme.VariantLight))
	assert.Equal(t, mustColor("#ccc"), light.Color(theme.ColorNameHeaderBackground, theme.VariantLight))
	assert.Equal(t, mustColor("#fff"), dark.Color(theme.ColorNameForegroundOnPrimary, theme.VariantDark))
	assert.Equal(t, mustColor("#000"), light.Color(theme.ColorNameForegroundOnPrimary, theme.VariantLight))
	assert.Equal(t, mustColor("#aaa"), dark.Color(theme.ColorNamePlaceHolder, theme.VariantDark))
}

func TestBrowserThemeSizes(t *testing.T) {
	th := NewBrowserTheme(StyleFor(true, ""), nil)

	assert.Equal(t, float32(10), th.Size(theme.SizeNameInputRadius))
	assert.Equal(t, float32(6), th.Size(theme.SizeNameInnerPadding))
	assert.Equal(t, float32(4), th.Size(theme.SizeNamePadding))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameScrollBar), th.Size(theme.SizeNameScrollBar))
}

func TestBrowserThemeFont(t *testing.T) {
	font := fyne.NewStaticResource("Roboto-Regular.ttf", []byte("font"))
	th := NewBrowserTheme(StyleFor(true, "Roboto"), font)

	assert.Equal(t, font, th.Font(fyne.TextStyle{}))
	assert.Equal(t, theme.DefaultTheme().Font(fyne.TextStyle{Bold: true}), th.Font(fyne.TextStyle{Bold: true}))
	assert.Equal(t, theme.DefaultTheme().Font(fyne.TextStyle{Monospace: true}), th.Font(fyne.TextStyle{Monospace: true}))

	plain := NewBrowserTheme(StyleFor(true, ""), nil)
	assert.Equal(t, theme.DefaultTheme().Font(fyne.TextStyle{}), plain.Font(fyne.TextStyle{}))
}
