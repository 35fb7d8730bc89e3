package panelterm

import "testing"

func TestAreaArgumentRoundTrip(t *testing.T) {
	cases := []struct {
		area Area
		arg  string
	}{
		{CursorCell, "1"},
		{CursorRow, "2"},
		{CursorColumn, "3"},
		{CursorTo(To(Up, 2, false)), "4.2.1.2.0"},
		{CursorBound(Coords{X: 0, Y: 0}), "5.0.0"},
		{WholeScreen, "6"},
		{Bound(Region{Left: 0, Top: 0, Right: 0x100, Bottom: 0x100}), "6.0.0.100.100"},
		{Rows(0xff, 0xfff), "7.ff.fff"},
		{Columns(0, 0x10), "8.0.10"},
		{BelowCursor(true), "9.1"},
	}
	for _, tc := range cases {
		if got := encodeArea(tc.area); got != tc.arg {
			t.Errorf("encodeArea(%v) = %q, want %q", tc.area, got, tc.arg)
		}
		if got, ok := decodeArea(newNumReader(tc.arg)); !ok || got != tc.area {
			t.Errorf("decodeArea(%q) = %v,%v, want %v", tc.arg, got, ok, tc.area)
		}
	}
}

func TestBoolArgumentRoundTrip(t *testing.T) {
	for s, flag := range map[string]bool{"0": false, "1": true} {
		if got := encodeBool(flag); got != s {
			t.Errorf("encodeBool(%v) = %q", flag, got)
		}
		if got, ok := decodeBool(newNumReader(s)); !ok || got != flag {
			t.Errorf("decodeBool(%q) = %v,%v", s, got, ok)
		}
	}
}

func TestColorArgumentRoundTrip(t *testing.T) {
	cases := []struct {
		color Color
		arg   string
	}{
		{TrueColor(0, 1, 2), "0.1.2"},
		{TrueColor(3, 4, 5), "3.4.5"},
	}
	for _, tc := range cases {
		if got := encodeColor(tc.color); got != tc.arg {
			t.Errorf("encodeColor = %q, want %q", got, tc.arg)
		}
		if got, ok := decodeColor(newNumReader(tc.arg)); !ok || got != tc.color {
			t.Errorf("decodeColor(%q) = %v,%v", tc.arg, got, ok)
		}
	}
}

func TestCoordsArgumentRoundTrip(t *testing.T) {
	cases := []struct {
		coords Coords
		arg    string
	}{
		{Coords{X: 1, Y: 2}, "1.2"},
		{Coords{X: 3, Y: 4}, "3.4"},
	}
	for _, tc := range cases {
		if got := encodeCoords(tc.coords); got != tc.arg {
			t.Errorf("encodeCoords = %q, want %q", got, tc.arg)
		}
		if got, ok := decodeCoords(newNumReader(tc.arg)); !ok || got != tc.coords {
			t.Errorf("decodeCoords(%q) = %v,%v", tc.arg, got, ok)
		}
	}
}

func TestDirectionArgumentRoundTrip(t *testing.T) {
	dirs := []Direction{Up, Down, Left, Right}
	args := []string{"1", "2", "3", "4"}
	for i, dir := range dirs {
		if got := encodeDirection(dir); got != args[i] {
			t.Errorf("encodeDirection(%v) = %q", dir, got)
		}
		if got, ok := decodeDirection(newNumReader(args[i])); !ok || got != dir {
			t.Errorf("decodeDirection(%q) = %v,%v", args[i], got, ok)
		}
	}
}

func TestInputModeArgumentRoundTrip(t *testing.T) {
	for _, mode := range []InputMode{ModeAnsi, ModeApplication, ModeExtended} {
		got, ok := decodeInputMode(newNumReader(encodeInputMode(mode)))
		if !ok || got != mode {
			t.Errorf("input mode %v round-tripped to %v,%v", mode, got, ok)
		}
	}
}

func TestMovementArgumentRoundTrip(t *testing.T) {
	cases := []struct {
		movement Movement
		arg      string
	}{
		{Position(Coords{X: 0, Y: 0}), "1.0.0"},
		{To(Up, 0x100, false), "2.1.100.0"},
		{ToEdge(Up), "3.1"},
		{To(Down, 0x1b, false), "2.2.1b.0"},
		{ToEdge(Down), "3.2"},
		{To(Left, 2, false), "2.3.2.0"},
		{ToEdge(Left), "3.3"},
		{To(Right, 1, true), "2.4.1.1"},
		{ToEdge(Right), "3.4"},
		{IndexTo(Up, 1), "4.1.1"},
		{IndexTo(Down, 2), "4.2.2"},
		{IndexTo(Left, 0xfff), "4.3.fff"},
		{IndexTo(Right, 0x10), "4.4.10"},
		{TabTo(Left, 1, false), "5.3.1.0"},
		{TabTo(Right, 6, false), "5.4.6.0"},
		{PreviousLine(1), "6.1.1"},
		{NextLine(0xf), "6.f"},
		{Column(0), "7.0"},
		{Row(1), "8.1"},
		{ToBeginning, "9.1"},
		{ToEnd, "9"},
	}
	for _, tc := range cases {
		if got := encodeMovement(tc.movement); got != tc.arg {
			t.Errorf("encodeMovement(%v) = %q, want %q", tc.movement, got, tc.arg)
		}
		if got, ok := decodeMovement(newNumReader(tc.arg)); !ok || got != tc.movement {
			t.Errorf("decodeMovement(%q) = %v,%v, want %v", tc.arg, got, ok, tc.movement)
		}
	}
}

func TestRegionArgumentRoundTrip(t *testing.T) {
	region := NewRegion(0, 1, 2, 3)
	if got := encodeRegion(region); got != "0.1.2.3" {
		t.Errorf("encodeRegion = %q", got)
	}
	if got, ok := decodeRegion(newNumReader("0.1.2.3")); !ok || got != region {
		t.Errorf("decodeRegion = %v,%v", got, ok)
	}
}

func TestStyleArgumentRoundTrip(t *testing.T) {
	cases := []struct {
		style Style
		arg   string
	}{
		{Underline(1), "1.1"},
		{Bold(true), "2.1"},
		{Italic(false), "3.0"},
		{Blink(false), "4.0"},
		{InvertColors(false), "5.0"},
		{Strikethrough(true), "6.1"},
		{Opacity(0x40), "7.40"},
		{FgColor(TrueColor(0, 1, 0x19)), "8.0.1.19"},
		{BgColor(TrueColor(0xff, 0xfe, 0xf)), "9.ff.fe.f"},
		{FgColorCfg(-1), "a"},
		{FgColorCfg(7), "a.7"},
		{BgColorCfg(-1), "b"},
		{BgColorCfg(0xf), "b.f"},
	}
	for _, tc := range cases {
		if got := encodeStyle(tc.style); got != tc.arg {
			t.Errorf("encodeStyle(%v) = %q, want %q", tc.style, got, tc.arg)
		}
		if got, ok := decodeStyle(newNumReader(tc.arg)); !ok || got != tc.style {
			t.Errorf("decodeStyle(%q) = %v,%v, want %v", tc.arg, got, ok, tc.style)
		}
	}
}

func TestSplitArgumentsRoundTrip(t *testing.T) {
	for _, kind := range []SplitKind{Horizontal(4), Vertical(0x10)} {
		got, ok := decodeSplitKind(newNumReader(encodeSplitKind(kind)))
		if !ok || got != kind {
			t.Errorf("split kind %v round-tripped to %v,%v", kind, got, ok)
		}
	}
	for _, save := range []SaveGrid{SaveLeft, SaveRight} {
		got, ok := decodeSaveGrid(newNumReader(encodeSaveGrid(save)))
		if !ok || got != save {
			t.Errorf("save grid %v round-tripped to %v,%v", save, got, ok)
		}
	}
	for _, rule := range []ResizeRule{RulePercentage, RuleMaxLeftTop, RuleMaxRightBottom} {
		got, ok := decodeResizeRule(newNumReader(encodeResizeRule(rule)))
		if !ok || got != rule {
			t.Errorf("resize rule %v round-tripped to %v,%v", rule, got, ok)
		}
	}
}
