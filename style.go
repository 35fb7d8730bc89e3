package panelterm

// StyleKind discriminates the Style variants.
type StyleKind int

const (
	StyleUnderline StyleKind = iota
	StyleBold
	StyleItalic
	StyleBlink
	StyleInvertColors
	StyleStrikethrough
	StyleOpacity
	StyleFgColor
	StyleBgColor
	StyleFgColorCfg
	StyleBgColorCfg
	StyleConfigured
)

// Style is a single style mutation carried by a command.
type Style struct {
	Kind  StyleKind
	Flag  bool
	Level int
	Color Color
	// Index is a palette index for the Cfg color variants, or -1 for the
	// configured default.
	Index int
	Group string
}

// Underline sets the underline level: 0 none, 1 single, 2 double.
func Underline(level int) Style {
	if level < 0 || level > 2 {
		level = 1
	}
	return Style{Kind: StyleUnderline, Level: level}
}

func Bold(flag bool) Style          { return Style{Kind: StyleBold, Flag: flag} }
func Italic(flag bool) Style        { return Style{Kind: StyleItalic, Flag: flag} }
func Blink(flag bool) Style         { return Style{Kind: StyleBlink, Flag: flag} }
func InvertColors(flag bool) Style  { return Style{Kind: StyleInvertColors, Flag: flag} }
func Strikethrough(flag bool) Style { return Style{Kind: StyleStrikethrough, Flag: flag} }

// Opacity sets the opacity of the styled content; 0 hides it entirely.
func Opacity(level uint8) Style {
	return Style{Kind: StyleOpacity, Level: int(level)}
}

func FgColor(c Color) Style { return Style{Kind: StyleFgColor, Color: c} }
func BgColor(c Color) Style { return Style{Kind: StyleBgColor, Color: c} }

// FgColorCfg selects a configured palette color, or the configured default
// foreground when index is negative.
func FgColorCfg(index int) Style {
	return Style{Kind: StyleFgColorCfg, Index: index}
}

// BgColorCfg selects a configured palette color, or the configured default
// background when index is negative.
func BgColorCfg(index int) Style {
	return Style{Kind: StyleBgColorCfg, Index: index}
}

// Configured switches to a named style group from the config.
func Configured(group string) Style {
	return Style{Kind: StyleConfigured, Group: group}
}

// Styles aggregates the concrete style state of a cell or cursor.
type Styles struct {
	FgColor         Color
	BgColor         Color
	Opacity         uint8
	Underline       bool
	DoubleUnderline bool
	Bold            bool
	Italic          bool
	Strikethrough   bool
	Inverted        bool
	Blink           bool
}

// NewStyles returns the default style state: default colors, fully opaque,
// no attributes.
func NewStyles() Styles {
	return Styles{
		FgColor: DefaultColor,
		BgColor: DefaultColor,
		Opacity: 0xff,
	}
}

// Update returns a copy of the styles with one mutation applied.
func (s Styles) Update(style Style) Styles {
	switch style.Kind {
	case StyleUnderline:
		s.Underline = style.Level == 1
		s.DoubleUnderline = style.Level == 2
	case StyleBold:
		s.Bold = style.Flag
	case StyleItalic:
		s.Italic = style.Flag
	case StyleBlink:
		s.Blink = style.Flag
	case StyleInvertColors:
		s.Inverted = style.Flag
	case StyleStrikethrough:
		s.Strikethrough = style.Flag
	case StyleOpacity:
		s.Opacity = uint8(style.Level)
	case StyleFgColor:
		s.FgColor = style.Color
	case StyleBgColor:
		s.BgColor = style.Color
	case StyleFgColorCfg:
		if style.Index < 0 {
			s.FgColor = DefaultColor
		} else {
			s.FgColor = PaletteColor(uint8(style.Index))
		}
	case StyleBgColorCfg:
		if style.Index < 0 {
			s.BgColor = DefaultColor
		} else {
			s.BgColor = PaletteColor(uint8(style.Index))
		}
	}
	return s
}

// UseStyles selects between a custom style state and a named style group
// from the config. The zero value refers to the config's unnamed default
// group.
type UseStyles struct {
	Custom bool
	Styles Styles
	Group  string
}

// CustomStyles wraps concrete styles.
func CustomStyles(s Styles) UseStyles {
	return UseStyles{Custom: true, Styles: s}
}

// ConfigStyles refers to a named style group.
func ConfigStyles(group string) UseStyles {
	return UseStyles{Group: group}
}

// Update applies a style mutation. Mutating a config-group reference first
// materializes it as a fresh custom style state; switching to a group
// discards any custom state.
func (u UseStyles) Update(style Style) UseStyles {
	if style.Kind == StyleConfigured {
		return ConfigStyles(style.Group)
	}
	if u.Custom {
		return CustomStyles(u.Styles.Update(style))
	}
	return CustomStyles(NewStyles().Update(style))
}

// Resolve produces the concrete styles against the config.
func (u UseStyles) Resolve(cfg *Config) Styles {
	if u.Custom {
		return u.Styles
	}
	if cfg != nil {
		if s, ok := cfg.StyleGroups[u.Group]; ok {
			return s
		}
	}
	return NewStyles()
}
