package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings configure how the buffer widget displays text. They are built
// once at startup and passed by value; nothing mutates them afterwards.
type Settings struct {
	FontSize    int    `json:"font_size"`
	FontColor   string `json:"font_color"`
	BgFontColor string `json:"bg_font_color"`
	FontWeight  int    `json:"font_weight"`
	TabWidth    int    `json:"tab_width"`
}

// Default returns the built-in display settings.
func Default() Settings {
	return Settings{
		FontSize:    14,
		FontColor:   "white",
		BgFontColor: "black",
		FontWeight:  500,
		TabWidth:    7,
	}
}

// Bold reports whether the weight maps to a bold terminal face.
func (s Settings) Bold() bool { return s.FontWeight >= 600 }

// Validate rejects settings the widgets cannot honour.
func (s Settings) Validate() error {
	if s.TabWidth <= 0 {
		return fmt.Errorf("tab_width must be positive, got %d", s.TabWidth)
	}
	if s.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive, got %d", s.FontSize)
	}
	if s.FontWeight < 0 || s.FontWeight > 1000 {
		return fmt.Errorf("font_weight out of range: %d", s.FontWeight)
	}
	return nil
}

// Load overlays the JSON file at path on top of Default. Fields missing
// from the file keep their default values. An empty path means defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse settings JSON: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Default(), err
	}
	return s, nil
}
