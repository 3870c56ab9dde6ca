package util

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sidepad/internal/config"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette defines a small set of colors used across widgets.
type Palette struct {
	Text      lipgloss.Color
	Back      lipgloss.Color
	Primary   lipgloss.Color
	Success   lipgloss.Color
	Danger    lipgloss.Color
	Warning   lipgloss.Color
	Muted     lipgloss.Color
	MutedDark lipgloss.Color
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
	return Palette{
		Text:      lipgloss.Color("#FFFFFF"),
		Back:      lipgloss.Color("#000000"),
		Primary:   lipgloss.Color("#3D6DFF"),
		Success:   lipgloss.Color("#2AA876"),
		Danger:    lipgloss.Color("#D9534F"),
		Warning:   lipgloss.Color("#F0AD4E"),
		Muted:     lipgloss.Color("#6C757D"),
		MutedDark: lipgloss.Color("#5A5A5A"),
	}
}

// PaletteFor takes text and background from the display settings.
func PaletteFor(s config.Settings) Palette {
	p := DefaultPalette()
	p.Text = ColorFor(s.FontColor, p.Text)
	p.Back = ColorFor(s.BgFontColor, p.Back)
	return p
}

var named = map[string]string{
	"black":   "#000000",
	"white":   "#FFFFFF",
	"red":     "#D9534F",
	"green":   "#2AA876",
	"blue":    "#3D6DFF",
	"yellow":  "#F0AD4E",
	"gray":    "#6C757D",
	"grey":    "#6C757D",
	"cyan":    "#17A2B8",
	"magenta": "#D63384",
}

// ColorFor resolves a color name, hex value or ANSI index. Empty input
// yields fallback.
func ColorFor(name string, fallback lipgloss.Color) lipgloss.Color {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fallback
	}
	if hex, ok := named[name]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(name)
}
