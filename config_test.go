package panelterm

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TabStop != 4 {
		t.Errorf("tab stop = %d", cfg.TabStop)
	}
	if cfg.Scrollback != 512 {
		t.Errorf("scrollback = %d", cfg.Scrollback)
	}
	if cfg.Palette[1] != DefaultPalette[1] {
		t.Error("palette not defaulted")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.TabStop != 4 {
		t.Errorf("tab stop = %d", cfg.TabStop)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	source := `
[general]
font = "Inconsolata 10"
tabstop = 8
scrollback = 256

[colors]
fg = [255, 255, 255]
bg = [0, 0, 0]
cursor = [187, 187, 187]
palette = [[0, 0, 0], [255, 85, 85]]

[styles.error]
fg = [255, 0, 0]
bold = true
`
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Font != "Inconsolata 10" {
		t.Errorf("font = %q", cfg.Font)
	}
	if cfg.TabStop != 8 || cfg.Scrollback != 256 {
		t.Errorf("tabstop/scrollback = %d/%d", cfg.TabStop, cfg.Scrollback)
	}
	if cfg.FgColor.R != 255 || cfg.CursorColor.R != 187 {
		t.Error("colors not loaded")
	}
	if cfg.Palette[1].R != 255 || cfg.Palette[1].G != 85 {
		t.Error("palette entry not loaded")
	}
	group, ok := cfg.StyleGroups["error"]
	if !ok || !group.Bold || group.FgColor != TrueColor(255, 0, 0) {
		t.Errorf("style group = %+v", group)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[general\nfont="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed config should error")
	}
}
