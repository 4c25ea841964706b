package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/tideterm/tideterm"
	"github.com/tideterm/tideterm/urlmode"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FG != "#ffffff" {
		t.Errorf("FG = %q, want #ffffff", cfg.FG)
	}
	if cfg.BG != "#000000" {
		t.Errorf("BG = %q, want #000000", cfg.BG)
	}
	if cfg.Alpha != 1.0 {
		t.Errorf("Alpha = %v, want 1.0", cfg.Alpha)
	}
	if cfg.Cursor.Style != "block" {
		t.Errorf("Cursor.Style = %q, want block", cfg.Cursor.Style)
	}
	if cfg.Scrollback != 10000 {
		t.Errorf("Scrollback = %d, want 10000", cfg.Scrollback)
	}
	if len(cfg.URL.Launch) == 0 || cfg.URL.Launch[0] != "xdg-open" {
		t.Errorf("URL.Launch = %v, want to start with xdg-open", cfg.URL.Launch)
	}
}

func TestColor_Resolve(t *testing.T) {
	tests := []struct {
		in      Color
		want    tideterm.Color
		wantErr bool
	}{
		{"", tideterm.Unset, false},
		{"#ff8000", tideterm.Color{Set: true, R: 0xff, G: 0x80, B: 0x00}, false},
		{"ff8000", tideterm.Color{Set: true, R: 0xff, G: 0x80, B: 0x00}, false},
		{"#fff", tideterm.Color{}, true},
		{"not-a-color", tideterm.Color{}, true},
	}

	for _, tt := range tests {
		got, err := tt.in.Resolve()
		if tt.wantErr {
			if err == nil {
				t.Errorf("Resolve(%q): expected error, got none", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Resolve(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestConfig_Resolve_Palette(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FG = "#112233"
	cfg.Alpha = 0.5

	resolved, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.Palette.FG != (tideterm.Color{Set: true, R: 0x11, G: 0x22, B: 0x33}) {
		t.Errorf("Palette.FG = %+v", resolved.Palette.FG)
	}
	if resolved.Palette.Alpha != 0x7FFF {
		t.Errorf("Palette.Alpha = %x, want ~0x7FFF", resolved.Palette.Alpha)
	}
}

func TestConfig_Resolve_CursorStyle(t *testing.T) {
	tests := []struct {
		in   string
		want tideterm.CursorStyle
	}{
		{"", tideterm.CursorBlock},
		{"block", tideterm.CursorBlock},
		{"bar", tideterm.CursorBar},
		{"underline", tideterm.CursorUnderline},
		{"BAR", tideterm.CursorBar},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Cursor.Style = tt.in
		resolved, err := cfg.Resolve()
		if err != nil {
			t.Fatalf("Resolve(style=%q): %v", tt.in, err)
		}
		if resolved.CursorStyle != tt.want {
			t.Errorf("Resolve(style=%q).CursorStyle = %v, want %v", tt.in, resolved.CursorStyle, tt.want)
		}
	}

	cfg := DefaultConfig()
	cfg.Cursor.Style = "blink-forever"
	if _, err := cfg.Resolve(); err == nil {
		t.Error("Resolve with invalid cursor style: expected error, got none")
	}
}

func TestConfig_Resolve_URLAction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.URL.Action = "copy"
	resolved, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.URLAction != urlmode.ActionCopy {
		t.Errorf("URLAction = %v, want ActionCopy", resolved.URLAction)
	}
	if resolved.Launch.Argv[0] != "xdg-open" {
		t.Errorf("Launch.Argv = %v", resolved.Launch.Argv)
	}
}

func TestConfig_Resolve_ClampsOutOfRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Alpha = 5
	cfg.Scrollback = -10
	cfg.Workers = -3

	resolved, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.Palette.Alpha != 0xFFFF {
		t.Errorf("Alpha clamp = %x, want 0xFFFF", resolved.Palette.Alpha)
	}
	if resolved.Scrollback != 0 {
		t.Errorf("Scrollback clamp = %d, want 0", resolved.Scrollback)
	}
	if resolved.Workers != 0 {
		t.Errorf("Workers clamp = %d, want 0", resolved.Workers)
	}
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tideterm.yaml")

	original := DefaultConfig()
	original.FG = "#abcdef"
	original.Scrollback = 500
	original.Cursor.Style = "bar"

	writeDefaults(path, original)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if loaded.FG != "#abcdef" {
		t.Errorf("loaded FG = %q, want #abcdef", loaded.FG)
	}
	if loaded.Scrollback != 500 {
		t.Errorf("loaded Scrollback = %d, want 500", loaded.Scrollback)
	}
	if loaded.Cursor.Style != "bar" {
		t.Errorf("loaded Cursor.Style = %q, want bar", loaded.Cursor.Style)
	}
}
