package panelterm

import (
	"fmt"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	defaultTabStop    = 4
	defaultScrollback = 512
)

// Config carries the per-user defaults the host fills in before the first
// command applies: colors, palette, scrollback capacity, tab stop, font name
// and named style groups. Grids capture the scrollback and tab stop values
// at creation, so the config should be set up before the terminal starts
// consuming output.
type Config struct {
	Font        string
	Scrollback  int
	TabStop     int
	FgColor     color.RGBA
	BgColor     color.RGBA
	CursorColor color.RGBA
	Palette     [256]color.RGBA
	StyleGroups map[string]Styles
	Buffer      BufferSettings
	Echo        EchoSettings
}

// BufferSettings configures cooked-mode line buffering: which characters end
// a line and which are delivered immediately as signals.
type BufferSettings struct {
	EOL     rune
	Signals []rune
}

// eol returns true if the character completes the buffered line.
func (b BufferSettings) eol(c rune) bool {
	return c == b.EOL
}

// signal returns true if the character bypasses the buffer.
func (b BufferSettings) signal(c rune) bool {
	for _, s := range b.Signals {
		if s == c {
			return true
		}
	}
	return false
}

// EchoSettings names the line-editing control characters the echo engines
// and the input buffer react to.
type EchoSettings struct {
	LErase rune
	LNext  rune
	WErase rune
}

// DefaultConfig returns the built-in defaults: the standard palette, 4-column
// tab stops and 512 lines of scrollback.
func DefaultConfig() *Config {
	return &Config{
		Font:        "Inconsolata 10",
		Scrollback:  defaultScrollback,
		TabStop:     defaultTabStop,
		FgColor:     DefaultForeground,
		BgColor:     DefaultBackground,
		CursorColor: DefaultCursorColor,
		Palette:     DefaultPalette,
		StyleGroups: map[string]Styles{},
		Buffer:      BufferSettings{EOL: '\n', Signals: []rune{0x03, 0x1a}},
		Echo:        EchoSettings{LErase: 0x15, LNext: 0x16, WErase: 0x17},
	}
}

// tomlConfig mirrors the config file layout.
type tomlConfig struct {
	General struct {
		Font       string `toml:"font"`
		TabStop    int    `toml:"tabstop"`
		Scrollback int    `toml:"scrollback"`
	} `toml:"general"`
	Colors struct {
		Fg      []int   `toml:"fg"`
		Bg      []int   `toml:"bg"`
		Cursor  []int   `toml:"cursor"`
		Palette [][]int `toml:"palette"`
	} `toml:"colors"`
	Styles map[string]tomlStyle `toml:"styles"`
}

type tomlStyle struct {
	Fg        []int `toml:"fg"`
	Bg        []int `toml:"bg"`
	Bold      bool  `toml:"bold"`
	Italic    bool  `toml:"italic"`
	Underline bool  `toml:"underline"`
}

// LoadConfig reads a TOML config file, filling unset fields from the
// defaults. A missing file yields the defaults without error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	var raw tomlConfig
	md, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if raw.General.Font != "" {
		cfg.Font = raw.General.Font
	}
	if raw.General.TabStop > 0 {
		cfg.TabStop = raw.General.TabStop
	}
	if md.IsDefined("general", "scrollback") && raw.General.Scrollback >= 0 {
		cfg.Scrollback = raw.General.Scrollback
	}
	if c, ok := tomlColor(raw.Colors.Fg); ok {
		cfg.FgColor = c
	}
	if c, ok := tomlColor(raw.Colors.Bg); ok {
		cfg.BgColor = c
	}
	if c, ok := tomlColor(raw.Colors.Cursor); ok {
		cfg.CursorColor = c
	}
	for i, entry := range raw.Colors.Palette {
		if i >= len(cfg.Palette) {
			break
		}
		if c, ok := tomlColor(entry); ok {
			cfg.Palette[i] = c
		}
	}
	for name, s := range raw.Styles {
		styles := NewStyles()
		if c, ok := tomlColor(s.Fg); ok {
			styles.FgColor = TrueColor(c.R, c.G, c.B)
		}
		if c, ok := tomlColor(s.Bg); ok {
			styles.BgColor = TrueColor(c.R, c.G, c.B)
		}
		styles.Bold = s.Bold
		styles.Italic = s.Italic
		styles.Underline = s.Underline
		cfg.StyleGroups[name] = styles
	}
	return cfg, nil
}

func tomlColor(v []int) (color.RGBA, bool) {
	if len(v) != 3 {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: 255}, true
}
