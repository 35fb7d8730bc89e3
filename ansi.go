package panelterm

import (
	"image/color"

	"fmt"
	"strconv"
	"strings"
)

// ansiCode accumulates one CSI or OSC sequence: the optional private-mode
// byte, the decimal parameters, the optional pre-terminal and the terminal
// byte.
type ansiCode struct {
	private  byte
	preterm  byte
	terminal byte
	args     []int
}

func (a *ansiCode) clear() {
	a.private = 0
	a.preterm = 0
	a.terminal = 0
	a.args = a.args[:0]
}

// arg returns the i-th parameter, or the default when it is missing.
func (a *ansiCode) arg(i, def int) int {
	if i < len(a.args) {
		return a.args[i]
	}
	return def
}

// seq reconstructs the sequence text for NoFeature reporting.
func (a *ansiCode) seq() string {
	parts := make([]string, len(a.args))
	for i, n := range a.args {
		parts[i] = strconv.Itoa(n)
	}
	var sb strings.Builder
	sb.WriteString("^[[")
	if a.private != 0 {
		sb.WriteByte(a.private)
	}
	sb.WriteString(strings.Join(parts, ";"))
	if a.preterm != 0 {
		sb.WriteByte(a.preterm)
	}
	sb.WriteByte(a.terminal)
	return sb.String()
}

// csi dispatches a completed CSI sequence to a command. Unsupported but
// recognized codes become NoFeature; unknown codes return nil.
func (a *ansiCode) csi() Command {
	switch {
	case a.private == 0 && a.preterm == 0:
		return a.csiPlain()
	case a.private == '?' && a.preterm == 0:
		return a.csiPrivate()
	case a.preterm != 0:
		return a.csiPreterm()
	default:
		return NoFeature{Seq: a.seq()}
	}
}

func (a *ansiCode) csiPlain() Command {
	switch a.terminal {
	case '@':
		return InsertBlank{N: a.arg(0, 1)}
	case 'A':
		return Move{Movement: To(Up, a.arg(0, 1), false)}
	case 'B', 'e':
		return Move{Movement: To(Down, a.arg(0, 1), false)}
	case 'C', 'a':
		return Move{Movement: To(Right, a.arg(0, 1), false)}
	case 'D':
		return Move{Movement: To(Left, a.arg(0, 1), false)}
	case 'E':
		return Move{Movement: NextLine(a.arg(0, 1))}
	case 'F':
		return Move{Movement: PreviousLine(a.arg(0, 1))}
	case 'G', '`':
		return Move{Movement: Column(a.arg(0, 1) - 1)}
	case 'H', 'f':
		return Move{Movement: Position(Coords{X: a.arg(1, 1) - 1, Y: a.arg(0, 1) - 1})}
	case 'I':
		return Move{Movement: TabTo(Right, a.arg(0, 1), false)}
	case 'J':
		switch a.arg(0, 0) {
		case 0:
			return Erase{Area: CursorTo(ToEnd)}
		case 1:
			return Erase{Area: CursorTo(ToBeginning)}
		case 2:
			return Erase{Area: WholeScreen}
		case 3:
			return NoFeature{Seq: a.seq()}
		default:
			return nil
		}
	case 'K':
		switch a.arg(0, 0) {
		case 0:
			return Erase{Area: CursorTo(ToEdge(Right))}
		case 1:
			return Erase{Area: CursorTo(ToEdge(Left))}
		case 2:
			return Erase{Area: CursorRow}
		default:
			return nil
		}
	case 'L':
		return InsertRows{N: a.arg(0, 1), Include: true}
	case 'M':
		return RemoveRows{N: a.arg(0, 1), Include: true}
	case 'P':
		return RemoveChars{N: a.arg(0, 1)}
	case 'S':
		return ScrollScreen{Dir: Down, N: a.arg(0, 1)}
	case 'T':
		return ScrollScreen{Dir: Up, N: a.arg(0, 1)}
	case 'X':
		return Erase{Area: CursorTo(To(Right, a.arg(0, 1), false))}
	case 'Z':
		return Move{Movement: TabTo(Left, a.arg(0, 1), false)}
	case 'd':
		return Move{Movement: Row(a.arg(0, 1) - 1)}
	case 'h', 'l':
		// ANSI modes proper are not part of this command set.
		return NoFeature{Seq: a.seq()}
	case 'm':
		return a.sgr()
	case 'n':
		switch a.arg(0, 5) {
		case 5:
			return StaticResponse{Response: "\x1b[0n"}
		case 6:
			return ReportPosition{Code: WireANSI}
		default:
			return nil
		}
	case 'b', 'g', 'i', 'q', 'r':
		// Repeat, tab clear, media copy, DECLL and DECSTBM.
		return NoFeature{Seq: a.seq()}
	case 'c', 's', 't', 'u', 'x':
		return NoFeature{Seq: a.seq()}
	default:
		return nil
	}
}

// csiPrivate handles DEC private set/reset sequences.
func (a *ansiCode) csiPrivate() Command {
	set := a.terminal == 'h'
	if !set && a.terminal != 'l' {
		return NoFeature{Seq: a.seq()}
	}
	var series CommandSeries
	for _, mode := range a.args {
		switch mode {
		case 1:
			if set {
				series = append(series, SetInputMode{Mode: ModeApplication})
			} else {
				series = append(series, SetInputMode{Mode: ModeAnsi})
			}
		case 12:
			series = append(series, SetCursorStyle{Style: Blink(set)})
		case 25:
			series = append(series, SetCursorMode{Visible: set})
		case 1049:
			if set {
				series = append(series, PushPanel{Tag: nil, RetainOffscreen: false})
			} else {
				series = append(series, PopPanel{Tag: nil})
			}
		default:
			series = append(series, NoFeature{Seq: a.seq()})
		}
	}
	if len(series) == 0 {
		return nil
	}
	return series
}

// csiPreterm handles sequences with an intermediate byte; only the ECMA-48
// area style operation `$r` is implemented.
func (a *ansiCode) csiPreterm() Command {
	if a.preterm == '$' && a.terminal == 'r' && a.private == 0 {
		area := WholeScreen
		t, l, b, r := a.arg(0, 0), a.arg(1, 0), a.arg(2, 0), a.arg(3, 0)
		if t > 0 && l > 0 && b > 0 && r > 0 {
			area = Bound(NewRegion(l-1, t-1, r-1, b-1))
		}
		switch a.arg(4, 0) {
		case 0:
			return DefaultStyleInArea{Area: area}
		case 1:
			return SetStyleInArea{Area: area, Style: Bold(true)}
		case 3:
			return SetStyleInArea{Area: area, Style: Italic(true)}
		case 4:
			return SetStyleInArea{Area: area, Style: Underline(1)}
		case 5, 6:
			return SetStyleInArea{Area: area, Style: Blink(true)}
		case 7:
			return SetStyleInArea{Area: area, Style: InvertColors(true)}
		case 8:
			return SetStyleInArea{Area: area, Style: Opacity(0)}
		case 9:
			return SetStyleInArea{Area: area, Style: Strikethrough(true)}
		case 21:
			return SetStyleInArea{Area: area, Style: Underline(2)}
		case 22:
			return SetStyleInArea{Area: area, Style: Bold(false)}
		case 23:
			return SetStyleInArea{Area: area, Style: Italic(false)}
		case 24:
			return SetStyleInArea{Area: area, Style: Underline(0)}
		case 25:
			return SetStyleInArea{Area: area, Style: Blink(false)}
		case 27:
			return SetStyleInArea{Area: area, Style: InvertColors(false)}
		case 28:
			return SetStyleInArea{Area: area, Style: Opacity(0xff)}
		case 29:
			return SetStyleInArea{Area: area, Style: Strikethrough(false)}
		default:
			return nil
		}
	}
	return NoFeature{Seq: a.seq()}
}

// sgr handles select graphic rendition, including the extended 38/48 color
// forms.
func (a *ansiCode) sgr() Command {
	if len(a.args) == 0 {
		return DefaultTextStyle{}
	}
	var series CommandSeries
	for i := 0; i < len(a.args); i++ {
		n := a.args[i]
		switch {
		case n == 0:
			series = append(series, DefaultTextStyle{})
		case n == 1:
			series = append(series, SetTextStyle{Style: Bold(true)})
		case n == 3:
			series = append(series, SetTextStyle{Style: Italic(true)})
		case n == 4:
			series = append(series, SetTextStyle{Style: Underline(1)})
		case n == 5 || n == 6:
			series = append(series, SetTextStyle{Style: Blink(true)})
		case n == 7:
			series = append(series, SetTextStyle{Style: InvertColors(true)})
		case n == 8:
			series = append(series, SetTextStyle{Style: Opacity(0)})
		case n == 9:
			series = append(series, SetTextStyle{Style: Strikethrough(true)})
		case n == 21:
			series = append(series, SetTextStyle{Style: Underline(2)})
		case n == 22:
			series = append(series, SetTextStyle{Style: Bold(false)})
		case n == 23:
			series = append(series, SetTextStyle{Style: Italic(false)})
		case n == 24:
			series = append(series, SetTextStyle{Style: Underline(0)})
		case n == 25:
			series = append(series, SetTextStyle{Style: Blink(false)})
		case n == 27:
			series = append(series, SetTextStyle{Style: InvertColors(false)})
		case n == 28:
			series = append(series, SetTextStyle{Style: Opacity(0xff)})
		case n == 29:
			series = append(series, SetTextStyle{Style: Strikethrough(false)})
		case n >= 30 && n <= 37:
			series = append(series, SetTextStyle{Style: FgColorCfg(n - 30)})
		case n == 38 || n == 48:
			style, used := extendedColor(a.args[i+1:], n == 38)
			if used == 0 {
				return series.orNil()
			}
			i += used
			series = append(series, SetTextStyle{Style: style})
		case n == 39:
			series = append(series, SetTextStyle{Style: FgColorCfg(-1)})
		case n >= 40 && n <= 47:
			series = append(series, SetTextStyle{Style: BgColorCfg(n - 40)})
		case n == 49:
			series = append(series, SetTextStyle{Style: BgColorCfg(-1)})
		case n >= 90 && n <= 97:
			series = append(series, SetTextStyle{Style: FgColorCfg(n - 82)})
		case n >= 100 && n <= 107:
			series = append(series, SetTextStyle{Style: BgColorCfg(n - 92)})
		}
	}
	return series.orNil()
}

func (s CommandSeries) orNil() Command {
	if len(s) == 0 {
		return nil
	}
	return s
}

// extendedColor decodes the 38/48 parameter tail: `2;r;g;b` or `5;idx`.
// Returns the style and the number of parameters consumed.
func extendedColor(args []int, fg bool) (Style, int) {
	if len(args) == 0 {
		return Style{}, 0
	}
	switch args[0] {
	case 2:
		if len(args) < 4 {
			return Style{}, 0
		}
		r, g, b := args[1], args[2], args[3]
		if r > 255 || g > 255 || b > 255 {
			return Style{}, 0
		}
		c := TrueColor(uint8(r), uint8(g), uint8(b))
		if fg {
			return FgColor(c), 4
		}
		return BgColor(c), 4
	case 5:
		if len(args) < 2 || args[1] > 255 {
			return Style{}, 0
		}
		if fg {
			return FgColorCfg(args[1]), 2
		}
		return BgColorCfg(args[1]), 2
	default:
		return Style{}, 0
	}
}

// osc dispatches a completed OSC sequence: title, palette and default-color
// operations.
func (a *ansiCode) osc(arg string) Command {
	switch a.arg(0, 0) {
	case 0, 1, 2:
		return SetTitle{Title: arg}
	case 4:
		return oscPalette(arg)
	case 10:
		if c, ok := parseColorSpec(arg); ok {
			return SetDefaultColor{Which: ColorTargetForeground, Color: c}
		}
		return nil
	case 11:
		if c, ok := parseColorSpec(arg); ok {
			return SetDefaultColor{Which: ColorTargetBackground, Color: c}
		}
		return nil
	case 12:
		if c, ok := parseColorSpec(arg); ok {
			return SetDefaultColor{Which: ColorTargetCursor, Color: c}
		}
		return nil
	case 104:
		if arg == "" {
			return ResetPaletteColor{Index: -1}
		}
		if idx, err := strconv.Atoi(arg); err == nil && idx >= 0 && idx < 256 {
			return ResetPaletteColor{Index: idx}
		}
		return nil
	default:
		return NoFeature{Seq: fmt.Sprintf("^[]%d;%s", a.arg(0, 0), arg)}
	}
}

// parseColorSpec parses an X-style color specification: `#rrggbb` or
// `rgb:rr/gg/bb`.
func parseColorSpec(spec string) (c color.RGBA, ok bool) {
	hex2 := func(s string) (uint8, bool) {
		n, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return 0, false
		}
		return uint8(n), true
	}
	switch {
	case strings.HasPrefix(spec, "#") && len(spec) == 7:
		r, ok1 := hex2(spec[1:3])
		g, ok2 := hex2(spec[3:5])
		b, ok3 := hex2(spec[5:7])
		if ok1 && ok2 && ok3 {
			return color.RGBA{R: r, G: g, B: b, A: 255}, true
		}
	case strings.HasPrefix(spec, "rgb:"):
		parts := strings.Split(spec[4:], "/")
		if len(parts) != 3 {
			break
		}
		var vals [3]uint8
		for i, p := range parts {
			if len(p) > 2 {
				p = p[:2]
			}
			v, ok := hex2(p)
			if !ok {
				return color.RGBA{}, false
			}
			vals[i] = v
		}
		return color.RGBA{R: vals[0], G: vals[1], B: vals[2], A: 255}, true
	}
	return color.RGBA{}, false
}

// oscPalette parses an OSC 4 payload `index;spec`.
func oscPalette(arg string) Command {
	idxStr, spec, ok := strings.Cut(arg, ";")
	if !ok {
		return nil
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil || idx < 0 || idx > 255 {
		return nil
	}
	c, ok := parseColorSpec(spec)
	if !ok {
		return nil
	}
	return SetPaletteColor{Index: idx, Color: c}
}
