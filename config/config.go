// Package config loads tideterm's YAML configuration file: the
// terminal-wide color palette, cursor appearance, scrollback depth,
// render worker pool size, and the URL-activation argv template. The
// blink period is deliberately absent here — it is a fixed 500ms
// constant defined alongside the cursor/blink state it drives, not a
// user-tunable setting.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tideterm/tideterm"
	"github.com/tideterm/tideterm/urlmode"
)

// Color is the on-disk form of a tideterm.Color: either empty (unset)
// or a "#rrggbb" hex string. YAML has no native color type, so this
// mirrors how the pack's own config-driven repos represent colors as
// plain strings and parse them on load.
type Color string

// Resolve converts c to a tideterm.Color. An empty string resolves to
// tideterm.Unset.
func (c Color) Resolve() (tideterm.Color, error) {
	s := strings.TrimSpace(string(c))
	if s == "" {
		return tideterm.Unset, nil
	}
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return tideterm.Color{}, fmt.Errorf("config: color %q is not #rrggbb", c)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return tideterm.Color{}, fmt.Errorf("config: color %q: %w", c, err)
	}
	return tideterm.Color{
		Set: true,
		R:   uint8(v >> 16),
		G:   uint8(v >> 8),
		B:   uint8(v),
	}, nil
}

// CursorConfig is the on-disk cursor appearance block.
type CursorConfig struct {
	// Text overrides the foreground color drawn under a block cursor.
	Text Color `yaml:"text"`
	// Background overrides the cursor's own fill color.
	Background Color `yaml:"background"`
	// Style is one of "block", "bar", "underline".
	Style string `yaml:"style"`
}

// URLConfig is the on-disk URL-activation block.
type URLConfig struct {
	// Launch is the argv template passed to urlmode.Activate's
	// LaunchConfig, with "{url}" substituted for the clicked URL.
	Launch []string `yaml:"launch"`
	// Action is one of "copy", "launch" — which urlmode.Action hotkey
	// mode assigns to collected URLs.
	Action string `yaml:"action"`
}

// Config is the on-disk YAML shape. Resolve converts it to the typed
// values the rest of tideterm consumes.
type Config struct {
	FG     Color        `yaml:"fg"`
	BG     Color        `yaml:"bg"`
	Alpha  float64      `yaml:"alpha"`
	Cursor CursorConfig `yaml:"cursor"`

	Scrollback int `yaml:"scrollback"`
	Workers    int `yaml:"workers"`

	URL URLConfig `yaml:"url"`
}

// DefaultConfig returns the built-in defaults: an opaque white-on-black
// palette, a solid block cursor with no color override, 10000 lines of
// scrollback, no render workers (Workers 0: cmd/tideterm then creates no
// frame.Pool and rows are rendered inline on the calling goroutine),
// and URLs opened via xdg-open.
func DefaultConfig() Config {
	return Config{
		FG:    "#ffffff",
		BG:    "#000000",
		Alpha: 1.0,
		Cursor: CursorConfig{
			Style: "block",
		},
		Scrollback: 10000,
		Workers:    0,
		URL: URLConfig{
			Launch: []string{"xdg-open", "{url}"},
			Action: "launch",
		},
	}
}

// Resolved is the typed, validated configuration cmd/tideterm uses to
// build term.Terminal, size frame.Pool and tag collected URLs with their
// urlmode.Action. The launch template is carried for urlmode.Activate,
// which cmd/tideterm does not call.
type Resolved struct {
	Palette     tideterm.Palette
	CursorStyle tideterm.CursorStyle
	Scrollback  int
	Workers     int
	Launch      urlmode.LaunchConfig
	URLAction   urlmode.Action
}

// Resolve validates cfg and converts it to Resolved, clamping numeric
// fields to sane bounds rather than rejecting the file outright —
// matching the teacher's Multiterminal-UI config loader, which clamps
// rather than errors so a single bad field never blocks startup.
func (cfg Config) Resolve() (Resolved, error) {
	fg, err := cfg.FG.Resolve()
	if err != nil {
		return Resolved{}, err
	}
	bg, err := cfg.BG.Resolve()
	if err != nil {
		return Resolved{}, err
	}
	cursorText, err := cfg.Cursor.Text.Resolve()
	if err != nil {
		return Resolved{}, err
	}
	cursorBG, err := cfg.Cursor.Background.Resolve()
	if err != nil {
		return Resolved{}, err
	}

	alpha := cfg.Alpha
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}

	scrollback := cfg.Scrollback
	if scrollback < 0 {
		scrollback = 0
	}

	workers := cfg.Workers
	if workers < 0 {
		workers = 0
	}

	style, err := parseCursorStyle(cfg.Cursor.Style)
	if err != nil {
		return Resolved{}, err
	}
	action, err := parseURLAction(cfg.URL.Action)
	if err != nil {
		return Resolved{}, err
	}

	return Resolved{
		Palette: tideterm.Palette{
			FG:         fg,
			BG:         bg,
			Alpha:      uint16(alpha * 0xFFFF),
			CursorText: cursorText,
			CursorBG:   cursorBG,
		},
		CursorStyle: style,
		Scrollback:  scrollback,
		Workers:     workers,
		Launch:      urlmode.LaunchConfig{Argv: cfg.URL.Launch},
		URLAction:   action,
	}, nil
}

func parseCursorStyle(s string) (tideterm.CursorStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "block":
		return tideterm.CursorBlock, nil
	case "bar":
		return tideterm.CursorBar, nil
	case "underline":
		return tideterm.CursorUnderline, nil
	default:
		return 0, fmt.Errorf("config: cursor.style %q must be block, bar or underline", s)
	}
}

func parseURLAction(s string) (urlmode.Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "launch":
		return urlmode.ActionLaunch, nil
	case "copy":
		return urlmode.ActionCopy, nil
	default:
		return 0, fmt.Errorf("config: url.action %q must be copy or launch", s)
	}
}

// path returns ~/.tideterm.yaml, or "" if the home directory can't be
// determined.
func path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tideterm.yaml")
}

// Load reads ~/.tideterm.yaml, merging it over DefaultConfig. If the
// file doesn't exist, defaults are written out for future editing and
// returned as-is — the same first-run behavior the teacher's config
// loader uses for its own dotfile.
func Load() (Config, error) {
	cfg := DefaultConfig()

	p := path()
	if p == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			writeDefaults(p, cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", p, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("config: parsing %s: %w", p, err)
	}
	return cfg, nil
}

func writeDefaults(path string, cfg Config) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return
	}
	header := []byte("# tideterm configuration\n# Edit this file to customize defaults.\n\n")
	_ = os.WriteFile(path, append(header, data...), 0o644)
}
