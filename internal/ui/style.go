package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Style describes the window chrome for one theme. Colors are CSS-style
// hex strings.
type Style struct {
	Dark bool

	TabBackground         string
	SelectedTabBackground string
	TabHover              string
	TabText               string
	SelectedText          string
	ToolbarBackground     string
	AddressBarBackground  string
	AddressBarText        string
	MainBackground        string
	InputBorder           string

	Spacing     float32 // between toolbar items
	Padding     float32 // inside toolbar items
	InputRadius float32
	TabRadius   float32
	TextSize    float32
	TabTextSize float32

	// FontFamily is empty when the bundled font is unavailable
	FontFamily string
}

// StyleFor returns the style for the given theme flag and font family
func StyleFor(dark bool, fontFamily string) Style {
	s := Style{
		Dark:        dark,
		InputBorder: "#3a3a3a",
		Spacing:     8,
		Padding:     6,
		InputRadius: 10,
		TabRadius:   8,
		TextSize:    14,
		TabTextSize: 11,
		FontFamily:  fontFamily,
	}

	if dark {
		s.TabBackground = "#1e1e1e"
		s.SelectedTabBackground = "#2a2a2a"
		s.TabHover = "#333"
		s.TabText = "#aaa"
		s.SelectedText = "#fff"
		s.ToolbarBackground = "#1e1e1e"
		s.AddressBarBackground = "#2a2a2a"
		s.AddressBarText = "#fff"
		s.MainBackground = "#121212"
	} else {
		s.TabBackground = "#ddd"
		s.SelectedTabBackground = "#fff"
		s.TabHover = "#eee"
		s.TabText = "#555"
		s.SelectedText = "#000"
		s.ToolbarBackground = "#ccc"
		s.AddressBarBackground = "#fff"
		s.AddressBarText = "#000"
		s.MainBackground = "#f5f5f5"
	}
	return s
}

// Toggled returns the style for the opposite theme
func (s Style) Toggled() Style {
	return StyleFor(!s.Dark, s.FontFamily)
}

// parseHexColor parses #rgb and #rrggbb colors
func parseHexColor(hex string) (color.NRGBA, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", hex)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// mustColor parses a palette color. Palette values are constants, so a
// parse failure falls back to magenta to stay visible.
func mustColor(hex string) color.NRGBA {
	c, err := parseHexColor(hex)
	if err != nil {
		return color.NRGBA{R: 0xff, B: 0xff, A: 0xff}
	}
	return c
}
