package panelterm

import "testing"

func feedAll(t *testing.T, input string) []Command {
	t.Helper()
	p := NewParser()
	return p.Feed([]byte(input))
}

func reprs(cmds []Command) []string {
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.Repr()
	}
	return out
}

func expectReprs(t *testing.T, cmds []Command, want ...string) {
	t.Helper()
	got := reprs(cmds)
	if len(got) != len(want) {
		t.Fatalf("commands = %q, want %q", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("command[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParserGraphemes(t *testing.T) {
	cmds := feedAll(t, "E\u0301\U0001F4A9\u1101\u1161\u11a8E")
	expectReprs(t, cmds, "E", "\u0301", "\U0001F4A9", "\u1101\u1161\u11a8", "E")
}

func TestParserGraphemeSuspends(t *testing.T) {
	p := NewParser()
	cmds := p.Feed([]byte("까"))
	if len(cmds) != 0 {
		t.Fatalf("incomplete cluster emitted %q", reprs(cmds))
	}
	cmds = p.Feed([]byte("\u11a8E"))
	expectReprs(t, cmds, "깍", "E")
}

func TestParserSplitUTF8(t *testing.T) {
	p := NewParser()
	raw := []byte("\u00e9") // two bytes
	cmds := p.Feed(raw[:1])
	if len(cmds) != 0 {
		t.Fatalf("split rune emitted %q", reprs(cmds))
	}
	cmds = p.Feed(raw[1:])
	expectReprs(t, cmds, "\u00e9")
}

func TestParserInvalidUTF8Skips(t *testing.T) {
	cmds := feedAll(t, "A\xffB")
	expectReprs(t, cmds, "A", "B")
}

func TestParserCtrlCodes(t *testing.T) {
	cmds := feedAll(t, "AB\x07C\n")
	expectReprs(t, cmds, "A", "B", "BELL", "C", "MOVE NEXT LINE 1")
}

func TestParserCtrlDispatch(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"\x08", "MOVE LEFT 1"},
		{"\x09", "MOVE RIGHT TAB 1"},
		{"\r", "MOVE LEFT TO EDGE"},
		{"\x7f", "ERASE CURSOR CELL"},
	}
	for _, tc := range cases {
		cmds := feedAll(t, tc.input)
		expectReprs(t, cmds, tc.want)
	}
}

func TestParserCSI(t *testing.T) {
	cmds := feedAll(t, "\x1b[7;7HB\x1b[7A\x1b[$rA\x1b[?12h")
	expectReprs(t, cmds,
		"MOVE TO 6,6",
		"B",
		"MOVE UP 7",
		"DEFAULT STYLE IN AREA",
		"A",
		"SERIES: SET CURSOR STYLE",
	)
}

func TestParserCSICursorPosition(t *testing.T) {
	cmds := feedAll(t, "\x1b[7;7H")
	if len(cmds) != 1 {
		t.Fatalf("commands = %q", reprs(cmds))
	}
	move, ok := cmds[0].(Move)
	if !ok || move.Movement != Position(Coords{X: 6, Y: 6}) {
		t.Fatalf("command = %#v", cmds[0])
	}
}

func TestParserCSISuspends(t *testing.T) {
	p := NewParser()
	if cmds := p.Feed([]byte("\x1b[7;")); len(cmds) != 0 {
		t.Fatalf("partial CSI emitted %q", reprs(cmds))
	}
	cmds := p.Feed([]byte("7H"))
	expectReprs(t, cmds, "MOVE TO 6,6")
}

func TestParserPrivateModes(t *testing.T) {
	cmds := feedAll(t, "\x1b[?12h")
	series, ok := cmds[0].(CommandSeries)
	if !ok || len(series) != 1 {
		t.Fatalf("command = %#v", cmds[0])
	}
	cursor, ok := series[0].(SetCursorStyle)
	if !ok || cursor.Style != Blink(true) {
		t.Fatalf("series[0] = %#v", series[0])
	}

	cmds = feedAll(t, "\x1b[?1049h")
	series = cmds[0].(CommandSeries)
	if _, ok := series[0].(PushPanel); !ok {
		t.Fatalf("1049h = %#v", series[0])
	}
	cmds = feedAll(t, "\x1b[?1049l")
	series = cmds[0].(CommandSeries)
	if _, ok := series[0].(PopPanel); !ok {
		t.Fatalf("1049l = %#v", series[0])
	}

	cmds = feedAll(t, "\x1b[?1000h")
	series = cmds[0].(CommandSeries)
	if _, ok := series[0].(NoFeature); !ok {
		t.Fatalf("unsupported mode = %#v", series[0])
	}
}

func TestParserSGR(t *testing.T) {
	cmds := feedAll(t, "\x1b[1;31m")
	series, ok := cmds[0].(CommandSeries)
	if !ok || len(series) != 2 {
		t.Fatalf("command = %#v", cmds[0])
	}
	if series[0].(SetTextStyle).Style != Bold(true) {
		t.Fatalf("series[0] = %#v", series[0])
	}
	if series[1].(SetTextStyle).Style != FgColorCfg(1) {
		t.Fatalf("series[1] = %#v", series[1])
	}

	cmds = feedAll(t, "\x1b[38;2;1;2;3m")
	series = cmds[0].(CommandSeries)
	if series[0].(SetTextStyle).Style != FgColor(TrueColor(1, 2, 3)) {
		t.Fatalf("truecolor = %#v", series[0])
	}

	cmds = feedAll(t, "\x1b[0m")
	if _, ok := cmds[0].(DefaultTextStyle); !ok {
		t.Fatalf("reset = %#v", cmds[0])
	}
}

func TestParserOSCTitle(t *testing.T) {
	cmds := feedAll(t, "A\x1b]0;Hello, world!\x07B")
	expectReprs(t, cmds, "A", "SET TITLE", "B")
	title := cmds[1].(SetTitle)
	if title.Title != "Hello, world!" {
		t.Fatalf("title = %q", title.Title)
	}
}

func TestParserOSCSuspends(t *testing.T) {
	p := NewParser()
	if cmds := p.Feed([]byte("\x1b]0;Hel")); len(cmds) != 0 {
		t.Fatalf("unterminated OSC emitted %q", reprs(cmds))
	}
	cmds := p.Feed([]byte("lo\x07"))
	if cmds[0].(SetTitle).Title != "Hello" {
		t.Fatalf("title = %q", cmds[0].(SetTitle).Title)
	}
}

func TestParserOSCPalette(t *testing.T) {
	cmds := feedAll(t, "\x1b]4;1;#ff0080\x07")
	set, ok := cmds[0].(SetPaletteColor)
	if !ok || set.Index != 1 || set.Color.R != 0xff || set.Color.G != 0 || set.Color.B != 0x80 {
		t.Fatalf("palette = %#v", cmds[0])
	}
}

func TestParserDCSNoFeature(t *testing.T) {
	cmds := feedAll(t, "\x1bPq#0\x1b\\A")
	if len(cmds) != 2 {
		t.Fatalf("commands = %q", reprs(cmds))
	}
	if _, ok := cmds[0].(NoFeature); !ok {
		t.Fatalf("DCS = %#v", cmds[0])
	}
	if cmds[1].Repr() != "A" {
		t.Fatalf("trailing = %q", cmds[1].Repr())
	}
}

func TestParserDSR(t *testing.T) {
	cmds := feedAll(t, "\x1b[6n")
	if _, ok := cmds[0].(ReportPosition); !ok {
		t.Fatalf("DSR = %#v", cmds[0])
	}
	cmds = feedAll(t, "\x1b[5n")
	if cmds[0].(StaticResponse).Response != "\x1b[0n" {
		t.Fatalf("status report = %#v", cmds[0])
	}
}

func TestParserExtendedMove(t *testing.T) {
	cmds := feedAll(t, "\x1b{18;6.3\x1b}")
	move, ok := cmds[0].(Move)
	if !ok || move.Movement != NextLine(3) {
		t.Fatalf("extended move = %#v", cmds[0])
	}
}

func TestParserExtendedTitleAttachment(t *testing.T) {
	cmds := feedAll(t, "\x1b{40{5;Hello\x1b}")
	title, ok := cmds[0].(SetTitle)
	if !ok || title.Title != "Hello" {
		t.Fatalf("extended title = %#v", cmds[0])
	}
}

func TestParserExtendedAttachmentAcrossFeeds(t *testing.T) {
	p := NewParser()
	if cmds := p.Feed([]byte("\x1b{40{d;HELLO, ")); len(cmds) != 0 {
		t.Fatalf("early emission: %q", reprs(cmds))
	}
	cmds := p.Feed([]byte("WORLD!\x1b}"))
	title, ok := cmds[0].(SetTitle)
	if !ok || title.Title != "HELLO, WORLD!" {
		t.Fatalf("cross-feed title = %#v", cmds[0])
	}
}

func TestParserExtendedHeaderAcrossFeeds(t *testing.T) {
	p := NewParser()
	if cmds := p.Feed([]byte("\x1b{40{")); len(cmds) != 0 {
		t.Fatal("incomplete header emitted")
	}
	if cmds := p.Feed([]byte("5;He")); len(cmds) != 0 {
		t.Fatal("incomplete payload emitted")
	}
	cmds := p.Feed([]byte("llo\x1b}"))
	if cmds[0].(SetTitle).Title != "Hello" {
		t.Fatalf("title = %q", cmds[0].(SetTitle).Title)
	}
}

func TestParserExtendedDropDown(t *testing.T) {
	cmds := feedAll(t, "\x1b{51;2.3{3;one{3;two\x1b}")
	menu, ok := cmds[0].(AddDropDown)
	if !ok {
		t.Fatalf("dropdown = %#v", cmds[0])
	}
	if menu.Coords != (Coords{X: 2, Y: 3}) || len(menu.Options) != 2 ||
		menu.Options[0] != "one" || menu.Options[1] != "two" {
		t.Fatalf("dropdown = %#v", menu)
	}
}

func TestParserExtendedSplit(t *testing.T) {
	cmds := feedAll(t, "\x1b{62;1;2;2.4;1;1\x1b}")
	split, ok := cmds[0].(SplitPanel)
	if !ok {
		t.Fatalf("split = %#v", cmds[0])
	}
	if split.LTag != 1 || split.RTag != 2 || split.Kind != Vertical(4) ||
		split.Save != SaveLeft || split.Rule != RulePercentage {
		t.Fatalf("split = %#v", split)
	}
}

func TestParserUnknownESCMakesProgress(t *testing.T) {
	cmds := feedAll(t, "\x1b7A")
	if len(cmds) != 2 {
		t.Fatalf("commands = %q", reprs(cmds))
	}
	if _, ok := cmds[0].(NoFeature); !ok {
		t.Fatalf("ESC 7 = %#v", cmds[0])
	}
	if cmds[1].Repr() != "A" {
		t.Fatalf("trailing = %q", cmds[1].Repr())
	}
}
