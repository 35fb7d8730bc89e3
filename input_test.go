package panelterm

import (
	"bytes"
	"testing"
)

func pressAll(t *testing.T, in *Input, keys ...Key) {
	t.Helper()
	for _, k := range keys {
		if _, err := in.Process(k, true); err != nil {
			t.Fatalf("process: %v", err)
		}
	}
}

func TestInputAnsiArrows(t *testing.T) {
	var buf bytes.Buffer
	in := NewInput(&buf)

	pressAll(t, in, UpArrow)
	if buf.String() != "\x1b[A" {
		t.Fatalf("ansi up = %q", buf.String())
	}

	buf.Reset()
	in.SetMode(ModeApplication)
	pressAll(t, in, UpArrow)
	if buf.String() != "\x1bOA" {
		t.Fatalf("application up = %q", buf.String())
	}

	buf.Reset()
	in.SetMode(ModeAnsi)
	in.Process(ShiftLeft, true)
	pressAll(t, in, UpArrow)
	if buf.String() != "\x1b[1;2A" {
		t.Fatalf("shifted up = %q", buf.String())
	}
}

func TestInputModifierKeysAreSilent(t *testing.T) {
	var buf bytes.Buffer
	in := NewInput(&buf)
	in.Process(ShiftLeft, true)
	in.Process(CtrlLeft, true)
	in.Process(AltLeft, true)
	if buf.Len() != 0 {
		t.Fatalf("modifiers emitted %q", buf.String())
	}
}

func TestInputReleaseIsSilentInAnsi(t *testing.T) {
	var buf bytes.Buffer
	in := NewInput(&buf)
	in.Process(Char('a'), false)
	if buf.Len() != 0 {
		t.Fatalf("release emitted %q", buf.String())
	}
}

func TestInputCtrlChord(t *testing.T) {
	var buf bytes.Buffer
	in := NewInput(&buf)
	in.Process(CtrlLeft, true)
	pressAll(t, in, Char('C'))
	if buf.String() != "\x03" {
		t.Fatalf("ctrl-c = %q", buf.String())
	}
}

func TestInputAltPrefix(t *testing.T) {
	var buf bytes.Buffer
	in := NewInput(&buf)
	in.Process(AltLeft, true)
	pressAll(t, in, Char('x'))
	if buf.String() != "\x1bx" {
		t.Fatalf("alt-x = %q", buf.String())
	}
}

func TestInputCapsLockActsAsShift(t *testing.T) {
	var buf bytes.Buffer
	in := NewInput(&buf)
	in.Process(CapsLock, true)
	in.Process(CapsLock, false) // release must not toggle back
	pressAll(t, in, UpArrow)
	if buf.String() != "\x1b[1;2A" {
		t.Fatalf("caps up = %q", buf.String())
	}
}

func TestInputTildeKeys(t *testing.T) {
	var buf bytes.Buffer
	in := NewInput(&buf)
	pressAll(t, in, PageUp, PageDown, Insert, Delete)
	if buf.String() != "\x1b[5~\x1b[6~\x1b[2~\x1b[3~" {
		t.Fatalf("tilde keys = %q", buf.String())
	}

	buf.Reset()
	in.Process(CtrlLeft, true)
	pressAll(t, in, PageUp)
	if buf.String() != "\x1b[5;5~" {
		t.Fatalf("ctrl pgup = %q", buf.String())
	}
}

func TestInputExtendedMode(t *testing.T) {
	var buf bytes.Buffer
	in := NewInput(&buf)
	in.SetMode(ModeExtended)

	in.Process(UpArrow, true)
	if buf.String() != "\x1b{1;1}" {
		t.Fatalf("extended up press = %q", buf.String())
	}
	buf.Reset()
	in.Process(UpArrow, false)
	if buf.String() != "\x1b{0;1}" {
		t.Fatalf("extended up release = %q", buf.String())
	}

	buf.Reset()
	in.Process(Char('c'), true)
	if buf.String() != "\x1b{1{c}" {
		t.Fatalf("extended char press = %q", buf.String())
	}
	buf.Reset()
	in.Process(Char('c'), false)
	if buf.String() != "c" {
		t.Fatalf("extended char release = %q", buf.String())
	}

	// Modifier keys emit their own events in extended mode.
	buf.Reset()
	in.Process(ShiftLeft, true)
	if buf.String() != "\x1b{9;a}" {
		t.Fatalf("extended shift press = %q", buf.String())
	}
}

func TestInputCmdWritesVerbatim(t *testing.T) {
	var buf bytes.Buffer
	in := NewInput(&buf)
	in.Process(Cmd("\x1b[0n"), true)
	if buf.String() != "\x1b[0n" {
		t.Fatalf("cmd = %q", buf.String())
	}
}

func TestInputBufferCooksLines(t *testing.T) {
	var buf bytes.Buffer
	in := NewInput(&buf)
	in.SetBuffer(&BufferSettings{EOL: '\n', Signals: []rune{0x03}})

	pressAll(t, in, Char('l'), Char('s'))
	if buf.Len() != 0 {
		t.Fatalf("cooked chars leaked: %q", buf.String())
	}
	pressAll(t, in, Enter)
	if buf.String() != "ls\n" {
		t.Fatalf("line = %q", buf.String())
	}

	// Signal characters bypass the buffer.
	buf.Reset()
	pressAll(t, in, Char('x'), Char(0x03))
	if buf.String() != "\x03" {
		t.Fatalf("signal = %q", buf.String())
	}
}

func TestInputBufferEditing(t *testing.T) {
	var buf bytes.Buffer
	in := NewInput(&buf)
	in.SetBuffer(&BufferSettings{EOL: '\n'})

	pressAll(t, in, Char('a'), Char('b'), Char('c'), Backspace, Enter)
	if buf.String() != "ab\n" {
		t.Fatalf("line = %q", buf.String())
	}
}
