package panelterm

import "testing"

func TestLineEchoPrintable(t *testing.T) {
	echo := NewLineEcho(EchoSettings{LErase: 0x15})
	cmds := echo.Echo(Char('a'))
	if len(cmds) != 1 {
		t.Fatalf("commands = %d", len(cmds))
	}
	if cmds[0].Repr() != "a" {
		t.Errorf("echo = %q", cmds[0].Repr())
	}
}

func TestLineEchoBackspace(t *testing.T) {
	echo := NewLineEcho(EchoSettings{})
	if cmds := echo.Echo(Backspace); cmds != nil {
		t.Fatal("backspace at position 0 should echo nothing")
	}
	echo.Echo(Char('a'))
	cmds := echo.Echo(Backspace)
	series, ok := cmds[0].(CommandSeries)
	if !ok || len(series) != 2 {
		t.Fatalf("backspace = %#v", cmds)
	}
	if series[0].(Move).Movement != To(Left, 1, false) {
		t.Errorf("series[0] = %#v", series[0])
	}
	if series[1].(RemoveChars).N != 1 {
		t.Errorf("series[1] = %#v", series[1])
	}
}

func TestLineEchoLineErase(t *testing.T) {
	echo := NewLineEcho(EchoSettings{LErase: 0x15})
	echo.Echo(Char('a'))
	echo.Echo(Char('b'))
	cmds := echo.Echo(Char(0x15))
	series, ok := cmds[0].(CommandSeries)
	if !ok || len(series) != 2 {
		t.Fatalf("lerase = %#v", cmds)
	}
	if series[0].(Move).Movement != To(Left, 2, true) {
		t.Errorf("series[0] = %#v", series[0])
	}
}

func TestScreenEchoNavigation(t *testing.T) {
	echo := NewScreenEcho(EchoSettings{})
	cases := []struct {
		key  Key
		want Movement
	}{
		{UpArrow, To(Up, 1, false)},
		{DownArrow, To(Down, 1, false)},
		{LeftArrow, To(Left, 1, true)},
		{RightArrow, To(Right, 1, true)},
		{Enter, NextLine(1)},
		{PageUp, PreviousLine(25)},
		{PageDown, NextLine(25)},
		{Home, ToBeginning},
		{End, ToEnd},
	}
	for _, tc := range cases {
		cmds := echo.Echo(tc.key)
		move, ok := cmds[0].(Move)
		if !ok || move.Movement != tc.want {
			t.Errorf("echo(%v) = %#v, want %v", tc.key, cmds[0], tc.want)
		}
	}
}

func TestScreenEchoDelete(t *testing.T) {
	echo := NewScreenEcho(EchoSettings{})
	cmds := echo.Echo(Delete)
	if cmds[0].(RemoveChars).N != 1 {
		t.Fatalf("delete = %#v", cmds[0])
	}
}
