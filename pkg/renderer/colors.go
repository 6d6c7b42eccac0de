// Package renderer turns a pattern.Drawing into pixels: an SVG backend,
// a PNG backend, and Gio paint helpers with a viewport camera for the
// interactive viewer. All backends draw the same way the generators
// intend it: background, optional debug overlay, every segment, then
// every pad on top.
package renderer

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// Theme represents a named two-color palette
type Theme int

const (
	// ThemeNone keeps the colors carried by the drawing itself.
	ThemeNone Theme = iota
	ThemeMono
	ThemeCopper
	ThemeBlueprint
	ThemeNord
)

// ThemeNames maps theme enum to display name
var ThemeNames = map[Theme]string{
	ThemeMono:      "mono",
	ThemeCopper:    "copper",
	ThemeBlueprint: "blueprint",
	ThemeNord:      "nord",
}

// ErrUnknownTheme is returned by ParseTheme for an unrecognized palette
// name.
var ErrUnknownTheme = errors.New("renderer: unknown theme")

// ParseTheme resolves a palette name to a Theme.
func ParseTheme(s string) (Theme, error) {
	for theme, name := range ThemeNames {
		if name == s {
			return theme, nil
		}
	}
	return ThemeNone, fmt.Errorf("%w %q", ErrUnknownTheme, s)
}

// Themes lists the palette names in display order.
func Themes() []string {
	return []string{
		ThemeNames[ThemeMono],
		ThemeNames[ThemeCopper],
		ThemeNames[ThemeBlueprint],
		ThemeNames[ThemeNord],
	}
}

// Colors returns the track and background colors of the palette as hex
// strings. Unknown themes fall back to ThemeMono.
func (t Theme) Colors() (track, background string) {
	switch t {
	case ThemeCopper:
		return "#E3B72E", "#145A32" // gold on classic PCB green
	case ThemeBlueprint:
		return "#F2F2FF", "#143C5A"
	case ThemeNord:
		return "#88C0D0", "#2E3440" // Nord8 on Nord0
	default:
		return "#FFFFFF", "#000000"
	}
}

// hexNRGBA parses a #RRGGBB color, returning opaque white when the
// string is malformed.
func hexNRGBA(s string) color.NRGBA {
	var r, g, b int
	if _, err := fmt.Sscanf(strings.TrimPrefix(s, "#"), "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
