package panelterm

import (
	"fmt"
	"io"
	"strings"
)

// Input translates logical key events into bytes on the child's stdin,
// tracking the input mode and the modifier state. With a buffer configured
// it assembles whole lines (cooked mode); with an echo engine configured it
// additionally produces local display commands for each key.
type Input struct {
	w      io.Writer
	mode   InputMode
	mods   Modifiers
	buffer *InputBuffer
	line   *LineEcho
	screen *ScreenEcho
}

// NewInput creates an input encoder in ANSI mode writing to w. A nil writer
// discards everything.
func NewInput(w io.Writer) *Input {
	if w == nil {
		w = io.Discard
	}
	return &Input{w: w}
}

// SetWriter redirects the encoded bytes.
func (in *Input) SetWriter(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	in.w = w
}

// Mode returns the current input mode.
func (in *Input) Mode() InputMode {
	return in.mode
}

// SetMode switches the encoding regime.
func (in *Input) SetMode(mode InputMode) {
	in.mode = mode
}

// SetBuffer enables cooked-mode line assembly, or disables it with nil.
func (in *Input) SetBuffer(settings *BufferSettings) {
	if settings == nil {
		in.buffer = nil
		return
	}
	in.buffer = NewInputBuffer(*settings)
}

// SetEcho selects the local echo engine.
func (in *Input) SetEcho(kind EchoKind, settings EchoSettings) {
	in.line, in.screen = nil, nil
	switch kind {
	case EchoLine:
		in.line = NewLineEcho(settings)
	case EchoScreen:
		in.screen = NewScreenEcho(settings)
	}
}

// Process encodes one key event. It returns the local echo commands the
// event produced, to be applied through the regular command path.
func (in *Input) Process(key Key, press bool) ([]Command, error) {
	if key.Kind == KeyCmd {
		_, err := io.WriteString(in.w, key.Cmd)
		return nil, err
	}

	if in.mode == ModeExtended {
		if key.IsModifier() {
			in.mods.Apply(key, press)
		}
		_, err := io.WriteString(in.w, extendedEncode(key, press, &in.mods))
		return nil, err
	}

	if key.IsModifier() {
		in.mods.Apply(key, press)
		return nil, nil
	}
	if !press {
		return nil, nil
	}

	echo := in.echo(key)

	if in.buffer != nil {
		if out, ok := in.buffer.Write(key, in.bufferEcho()); ok {
			_, err := io.WriteString(in.w, out)
			return echo, err
		}
		return echo, nil
	}

	if code, ok := in.ansiEncode(key, in.mode == ModeApplication); ok {
		_, err := io.WriteString(in.w, code)
		return echo, err
	}
	return echo, nil
}

func (in *Input) echo(key Key) []Command {
	switch {
	case in.line != nil:
		return in.line.Echo(key)
	case in.screen != nil:
		return in.screen.Echo(key)
	default:
		return nil
	}
}

func (in *Input) bufferEcho() EchoSettings {
	switch {
	case in.line != nil:
		return in.line.Settings
	case in.screen != nil:
		return in.screen.Settings
	default:
		return EchoSettings{}
	}
}

// ansiEncode produces the ANSI or Application byte sequence for a key.
func (in *Input) ansiEncode(key Key, application bool) (string, bool) {
	mods := &in.mods
	switch key.Kind {
	case KeyChar:
		return charKey(mods, key.Rune)
	case KeyEnter:
		return "\r", true
	case KeyBackspace:
		return "\x08", true
	case KeyTab:
		return "\t", true
	case KeyUpArrow:
		return termKey(mods, 'A', application), true
	case KeyDownArrow:
		return termKey(mods, 'B', application), true
	case KeyRightArrow:
		return termKey(mods, 'C', application), true
	case KeyLeftArrow:
		return termKey(mods, 'D', application), true
	case KeyHome:
		return termKey(mods, 'H', application), true
	case KeyEnd:
		return termKey(mods, 'F', application), true
	case KeyPageUp:
		return tildeKey(mods, '5'), true
	case KeyPageDown:
		return tildeKey(mods, '6'), true
	case KeyInsert:
		return tildeKey(mods, '2'), true
	case KeyDelete:
		return tildeKey(mods, '3'), true
	case KeyFunction:
		switch key.N {
		case 0:
			return termKey(mods, 'P', true), true
		case 1:
			return termKey(mods, 'Q', true), true
		case 2:
			return termKey(mods, 'R', true), true
		case 3:
			return termKey(mods, 'S', true), true
		default:
			return "", false
		}
	case KeyMenuSelection:
		return fmt.Sprintf("%d\r", key.N), true
	default:
		return "", false
	}
}

// charKey encodes a printable character with the control and alt chords.
func charKey(mods *Modifiers, c rune) (string, bool) {
	ctrl, alt := mods.Ctrl(), mods.Alt()
	switch {
	case !ctrl && !alt:
		return string(c), true
	case ctrl && !alt:
		if c >= 0x40 && c <= 0x7f {
			return string(rune(byte(c) & 0x1f)), true
		}
		return "", false
	case !ctrl && alt:
		return "\x1b" + string(c), true
	default:
		if c >= 0x40 && c <= 0x7f {
			return "\x1b" + string(rune(byte(c)&0x1f)), true
		}
		return "", false
	}
}

// termKey encodes a cursor-style key. Without modifiers it is SS3 in
// application mode and plain CSI otherwise; with modifiers it is CSI 1;N
// with the modifier digit.
func termKey(mods *Modifiers, term byte, application bool) string {
	n := modifierDigit(mods)
	if n == 1 {
		if application {
			return "\x1bO" + string(term)
		}
		return "\x1b[" + string(term)
	}
	return fmt.Sprintf("\x1b[1;%d%c", n, term)
}

// tildeKey encodes a navigation key: CSI n~ with the modifier digit.
func tildeKey(mods *Modifiers, code byte) string {
	n := modifierDigit(mods)
	if n == 1 {
		return fmt.Sprintf("\x1b[%c~", code)
	}
	return fmt.Sprintf("\x1b[%c;%d~", code, n)
}

// modifierDigit is the xterm modifier parameter: 1 + shift + 2*alt + 4*ctrl.
func modifierDigit(mods *Modifiers) int {
	n := 1
	if mods.Shift() {
		n++
	}
	if mods.Alt() {
		n += 2
	}
	if mods.Ctrl() {
		n += 4
	}
	return n
}

// extendedEncode produces the extended-mode encoding: every press and
// release emits a sequence whose leading hex digit packs
// (shift, ctrl, alt, press).
func extendedEncode(key Key, press bool, mods *Modifiers) string {
	n := extendedBits(mods, press)
	switch key.Kind {
	case KeyChar:
		return extendedChar(key.Rune, n)
	case KeyEnter:
		return extendedChar('\n', n)
	case KeyDelete:
		return extendedChar('\x7f', n)
	case KeyTab:
		return extendedChar('\t', n)
	case KeyBackspace:
		return extendedChar('\x08', n)
	case KeyUpArrow:
		return extendedKey('1', n)
	case KeyDownArrow:
		return extendedKey('2', n)
	case KeyLeftArrow:
		return extendedKey('3', n)
	case KeyRightArrow:
		return extendedKey('4', n)
	case KeyPageUp:
		return extendedKey('5', n)
	case KeyPageDown:
		return extendedKey('6', n)
	case KeyHome:
		return extendedKey('7', n)
	case KeyEnd:
		return extendedKey('8', n)
	case KeyInsert:
		return extendedKey('9', n)
	case KeyShiftLeft, KeyShiftRight:
		return extendedKey('a', n)
	case KeyCtrlLeft, KeyCtrlRight:
		return extendedKey('b', n)
	case KeyAltLeft:
		return extendedKey('c', n)
	case KeyAltRight:
		return extendedKey('d', n)
	case KeyFunction:
		return fmt.Sprintf("\x1b{%x;f.%x}", n, key.N)
	case KeyMenuSelection:
		return fmt.Sprintf("\x1b{%x;g.%x}", n, key.N)
	case KeyCmd:
		return key.Cmd
	default:
		return ""
	}
}

func extendedBits(mods *Modifiers, press bool) int {
	shift, ctrl, alt := mods.Triplet()
	n := 0
	if press {
		n |= 1
	}
	if alt {
		n |= 2
	}
	if ctrl {
		n |= 4
	}
	if shift {
		n |= 8
	}
	return n
}

func extendedKey(code byte, n int) string {
	return fmt.Sprintf("\x1b{%x;%c}", n, code)
}

func extendedChar(c rune, n int) string {
	switch n {
	case 0:
		// Unmodified release of a printable char stays bare.
		return string(c)
	case 4:
		// Ctrl release maps through the control chord when possible.
		if c >= 0x40 && c <= 0x7f {
			return string(rune(byte(c) & 0x1f))
		}
	}
	return fmt.Sprintf("\x1b{%x{%c}", n, c)
}

// InputBuffer assembles cooked-mode lines: characters accumulate and are
// delivered to the child only on end-of-line, while signal characters pass
// through immediately.
type InputBuffer struct {
	data     []rune
	cursor   int
	settings BufferSettings
}

// NewInputBuffer creates an empty line buffer.
func NewInputBuffer(settings BufferSettings) *InputBuffer {
	return &InputBuffer{settings: settings}
}

// Write offers a key to the buffer. The returned string is delivered to the
// child when ok is true.
func (b *InputBuffer) Write(key Key, echo EchoSettings) (string, bool) {
	atEnd := b.cursor == len(b.data)
	switch key.Kind {
	case KeyChar:
		c := key.Rune
		switch {
		case c == '\n' || b.settings.eol(c):
			b.data = append(b.data, c)
			return b.flush(), true
		case b.settings.signal(c):
			return string(c), true
		case c == echo.LErase:
			b.data = b.data[:0]
			b.cursor = 0
			return "", false
		case atEnd:
			b.data = append(b.data, c)
			b.cursor++
			return "", false
		default:
			b.data[b.cursor] = c
			b.cursor++
			return "", false
		}
	case KeyEnter:
		b.data = append(b.data, '\n')
		return b.flush(), true
	case KeyBackspace:
		if b.cursor > 0 {
			b.data = append(b.data[:b.cursor-1], b.data[b.cursor:]...)
			b.cursor--
		}
		return "", false
	case KeyDelete:
		if b.cursor < len(b.data) {
			b.data = append(b.data[:b.cursor], b.data[b.cursor+1:]...)
		}
		return "", false
	case KeyLeftArrow:
		if b.cursor > 0 {
			b.cursor--
		}
		return "", false
	case KeyRightArrow:
		if b.cursor < len(b.data) {
			b.cursor++
		}
		return "", false
	case KeyHome:
		b.cursor = 0
		return "", false
	case KeyEnd:
		b.cursor = len(b.data)
		return "", false
	default:
		return "", false
	}
}

func (b *InputBuffer) flush() string {
	var sb strings.Builder
	for _, r := range b.data {
		sb.WriteRune(r)
	}
	b.data = b.data[:0]
	b.cursor = 0
	return sb.String()
}
