package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	s := Default()
	if s.FontSize != 14 || s.FontColor != "white" || s.BgFontColor != "black" || s.FontWeight != 500 || s.TabWidth != 7 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if s.Bold() {
		t.Fatalf("weight 500 is not bold")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(p, []byte(`{"tab_width": 4, "font_weight": 700}`), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.TabWidth != 4 || !s.Bold() || s.FontColor != "white" {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	p := filepath.Join(t.TempDir(), "settings.json")
	_ = os.WriteFile(p, []byte(`{"tab_width": 0}`), 0644)
	if _, err := Load(p); err == nil {
		t.Fatalf("expected validation error")
	}
	_ = os.WriteFile(p, []byte(`{`), 0644)
	if _, err := Load(p); err == nil {
		t.Fatalf("expected parse error")
	}
	if s, err := Load(""); err != nil || s != Default() {
		t.Fatalf("empty path should yield defaults")
	}
}
