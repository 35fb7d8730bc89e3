package panelterm

import (
	"strconv"
	"unicode/utf8"
)

// extState tracks where an in-flight extended sequence stands across feeds.
type extState int

const (
	extIdle extState = iota
	// extArgs is reading the ';'-separated hex arguments.
	extArgs
	// extArgsEsc saw ESC inside the arguments and expects '}'.
	extArgsEsc
	// extAttachment owes attachRem payload bytes to the open attachment.
	extAttachment
)

// Parser is the output state machine: it consumes the append-only byte
// stream from the child and produces commands. A partial sequence at the
// end of a buffer suspends cleanly; the unconsumed tail is carried into the
// next feed, except for extended-protocol attachments, whose payload is
// consumed incrementally with only the remaining byte count retained.
type Parser struct {
	pending   []byte
	ansi      ansiCode
	ext       extendedCode
	extState  extState
	attachRem int
	// stall stops the current feed while leaving already-consumed bytes
	// consumed, used when an attachment header splits across feeds.
	stall bool
}

// NewParser creates a parser in the ground state.
func NewParser() *Parser {
	return &Parser{}
}

// Feed consumes a buffer and returns the commands completed by it.
func (p *Parser) Feed(data []byte) []Command {
	buf := data
	if len(p.pending) > 0 {
		buf = append(p.pending, data...)
		p.pending = nil
	}

	var out []Command
	offset := 0
	p.stall = false
	for offset < len(buf) {
		start := offset
		cmd, ok := p.step(buf, &offset)
		if !ok {
			// Suspend: keep the unconsumed tail for the next feed.
			offset = start
			break
		}
		if cmd != nil {
			out = append(out, cmd)
		}
		if p.stall {
			p.stall = false
			break
		}
	}
	if offset < len(buf) {
		p.pending = append([]byte(nil), buf[offset:]...)
	}
	return out
}

// step consumes one command's worth of bytes. ok is false when the buffer
// ends mid-sequence and the caller must retry from the same offset with
// more data.
func (p *Parser) step(buf []byte, offset *int) (Command, bool) {
	if p.extState != extIdle {
		return p.extended(buf, offset)
	}

	r, size, ok := codePoint(buf, offset)
	if !ok {
		return nil, false
	}
	if size == 0 {
		// Invalid byte already skipped.
		return nil, true
	}

	cat := graphemeCategory(r)
	switch cat {
	case gcControl:
		*offset += size
		return p.ctrl(r, buf, offset)
	case gcAny:
		*offset += size
		return PutChar(r), true
	case gcExtend, gcSpacingMark:
		*offset += size
		return PutExtension(r), true
	default:
		return p.cluster(buf, offset)
	}
}

// cluster accretes a multi-code-point grapheme cluster (Hangul jamo,
// regional indicators) and emits it once a cluster break arrives. The
// breaking code point is left for the next step.
func (p *Parser) cluster(buf []byte, offset *int) (Command, bool) {
	start := *offset
	state := gsStart
	for {
		r, size, ok := codePoint(buf, offset)
		if !ok {
			return nil, false
		}
		if size == 0 {
			// Malformed byte breaks the cluster; leave it for the
			// ground state to skip.
			*offset--
			return PutGrapheme(string(buf[start:*offset])), true
		}
		next, joined := graphemeStep(state, graphemeCategory(r))
		if !joined {
			return PutGrapheme(string(buf[start:*offset])), true
		}
		state = next
		*offset += size
	}
}

// ctrl dispatches a C0 or C1 control code.
func (p *Parser) ctrl(r rune, buf []byte, offset *int) (Command, bool) {
	switch r {
	case 0x07:
		return Bell{}, true
	case 0x08:
		return Move{Movement: To(Left, 1, false)}, true
	case 0x09:
		return Move{Movement: TabTo(Right, 1, false)}, true
	case '\n':
		return Move{Movement: NextLine(1)}, true
	case '\r':
		return Move{Movement: ToEdge(Left)}, true
	case 0x1b:
		return p.esc(buf, offset)
	case 0x7f:
		return Erase{Area: CursorCell}, true
	case 0x90:
		return p.dcs(buf, offset)
	case 0x9b:
		return p.csi(buf, offset)
	case 0x9d:
		return p.osc(buf, offset)
	case 0x9e, 0x9f:
		return p.skipString(buf, offset)
	default:
		return nil, true
	}
}

// esc dispatches the byte following an ESC.
func (p *Parser) esc(buf []byte, offset *int) (Command, bool) {
	b, ok := byteAt(buf, *offset)
	if !ok {
		return nil, false
	}
	switch {
	case b == '[':
		*offset++
		return p.csi(buf, offset)
	case b == ']':
		*offset++
		return p.osc(buf, offset)
	case b == 'P':
		*offset++
		return p.dcs(buf, offset)
	case b == '{':
		*offset++
		p.extState = extArgs
		p.ext.clear()
		return p.extended(buf, offset)
	case b == 'E':
		*offset++
		return Move{Movement: NextLine(1)}, true
	case b == ' ' || b == '#' || b == '%' || (b >= '(' && b <= '/'):
		// Two-byte designator sequences; skip the final byte too.
		if _, ok := byteAt(buf, *offset+1); !ok {
			return nil, false
		}
		*offset += 2
		return nil, true
	case b == '^' || b == '_':
		*offset++
		return p.skipString(buf, offset)
	case b == '6' || b == '7' || b == '8' || b == '9' || b == 'D' || b == 'H' ||
		b == 'M' || b == 'Z' || b == 'c':
		*offset++
		return NoFeature{Seq: "^[" + string(rune(b))}, true
	default:
		*offset++
		return nil, true
	}
}

// csi collects a control sequence: optional private-mode byte, decimal
// parameters, optional pre-terminal, then the terminal byte.
func (p *Parser) csi(buf []byte, offset *int) (Command, bool) {
	p.ansi.clear()
	for {
		b, ok := byteAt(buf, *offset)
		if !ok {
			return nil, false
		}
		switch {
		case b == '?' || b == '>':
			p.ansi.private = b
			*offset++
		case b == ' ' || b == '!' || b == '"' || b == '$' || b == '\'' || b == '*':
			p.ansi.preterm = b
			*offset++
		case b >= '0' && b <= '9':
			n, ok := decimal(buf, offset)
			if !ok {
				return nil, false
			}
			p.ansi.args = append(p.ansi.args, n)
		case b == ';':
			*offset++
		case csiTerminal(b):
			p.ansi.terminal = b
			*offset++
			return p.ansi.csi(), true
		default:
			// Malformed; drop the sequence and make progress.
			*offset++
			return nil, true
		}
	}
}

func csiTerminal(b byte) bool {
	return (b >= '@' && b <= 'Z') || (b >= '`' && b <= '~')
}

// osc collects an operating system command: parameters, ';', then a string
// terminated by BEL.
func (p *Parser) osc(buf []byte, offset *int) (Command, bool) {
	p.ansi.clear()
	for {
		b, ok := byteAt(buf, *offset)
		if !ok {
			return nil, false
		}
		switch {
		case b >= '0' && b <= '9':
			n, ok := decimal(buf, offset)
			if !ok {
				return nil, false
			}
			p.ansi.args = append(p.ansi.args, n)
		case b == ';':
			*offset++
			arg, ok, fin := belString(buf, offset)
			if !fin {
				return nil, false
			}
			if !ok {
				return nil, true
			}
			return p.ansi.osc(arg), true
		default:
			*offset++
			return nil, true
		}
	}
}

// dcs parses and skips a device control string, reporting it as NoFeature.
func (p *Parser) dcs(buf []byte, offset *int) (Command, bool) {
	arg, ok, fin := stString(buf, offset)
	if !fin {
		return nil, false
	}
	if !ok {
		return nil, true
	}
	return NoFeature{Seq: "^[P" + arg}, true
}

// skipString consumes a BEL- or ST-terminated string without emitting.
func (p *Parser) skipString(buf []byte, offset *int) (Command, bool) {
	_, _, fin := stString(buf, offset)
	if !fin {
		return nil, false
	}
	return nil, true
}

// extended consumes bytes of an in-flight extended sequence
// `ESC { ARGS {LEN;BYTES}... ESC }`, emitting the command at the closing
// brace. Attachment payloads are consumed even when they span feeds.
func (p *Parser) extended(buf []byte, offset *int) (Command, bool) {
	for {
		switch p.extState {
		case extAttachment:
			p.attachRem = p.ext.attach.resume(buf, offset, p.attachRem)
			if p.attachRem > 0 {
				// The rest of the payload arrives in a later feed;
				// everything so far is consumed.
				return nil, true
			}
			p.extState = extArgs
		case extArgsEsc:
			b, ok := byteAt(buf, *offset)
			if !ok {
				// The terminator arrives in a later feed.
				return nil, true
			}
			*offset++
			p.extState = extIdle
			if b == '}' {
				cmd := p.ext.parse()
				p.ext.clear()
				return cmd, true
			}
			// Malformed terminator; drop the sequence.
			p.ext.clear()
			return nil, true
		default: // extArgs
			b, ok := byteAt(buf, *offset)
			if !ok {
				// Arguments consumed so far are already stored.
				return nil, true
			}
			switch {
			case b == 0x1b:
				*offset++
				p.extState = extArgsEsc
			case b == '{':
				rem, ok := p.ext.attach.begin(buf, offset)
				if !ok {
					// Length header split across feeds; retry it
					// whole next time without replaying the args.
					p.stall = true
					return nil, true
				}
				if rem > 0 {
					p.attachRem = rem
					p.extState = extAttachment
					return nil, true
				}
			case isExtArgByte(b):
				p.ext.args = append(p.ext.args, b)
				*offset++
			default:
				// Malformed; abandon the sequence.
				*offset++
				p.extState = extIdle
				p.ext.clear()
				return nil, true
			}
		}
	}
}

func isExtArgByte(b byte) bool {
	_, hex := hexDigit(b)
	return hex || b == '.' || b == ';'
}

// codePoint decodes the UTF-8 code point at the offset. A size of zero with
// ok true means an invalid byte was skipped; ok false means the buffer ends
// mid-sequence.
func codePoint(buf []byte, offset *int) (rune, int, bool) {
	rest := buf[*offset:]
	if len(rest) == 0 {
		return 0, 0, false
	}
	r, size := utf8.DecodeRune(rest)
	if r == utf8.RuneError && size <= 1 {
		if !utf8.FullRune(rest) && utf8.RuneStart(rest[0]) && rest[0] >= 0x80 {
			// Possibly a valid sequence split across buffers.
			return 0, 0, false
		}
		*offset++
		return 0, 0, true
	}
	return r, size, true
}

func byteAt(buf []byte, offset int) (byte, bool) {
	if offset >= len(buf) {
		return 0, false
	}
	return buf[offset], true
}

// decimal reads a run of ASCII digits. ok is false when the run reaches the
// end of the buffer, since more digits may follow in the next feed.
func decimal(buf []byte, offset *int) (int, bool) {
	start := *offset
	i := start
	for i < len(buf) && buf[i] >= '0' && buf[i] <= '9' {
		i++
	}
	if i == len(buf) {
		return 0, false
	}
	n, err := strconv.Atoi(string(buf[start:i]))
	if err != nil {
		*offset = i
		return 0, true
	}
	*offset = i
	return n, true
}

// belString reads a string terminated by BEL. fin is false on suspension;
// ok is false when the string is not valid.
func belString(buf []byte, offset *int) (string, bool, bool) {
	i := *offset
	for i < len(buf) {
		if buf[i] == 0x07 {
			s := string(buf[*offset:i])
			*offset = i + 1
			return s, true, true
		}
		i++
	}
	return "", false, false
}

// stString reads a string terminated by BEL or ST (ESC \).
func stString(buf []byte, offset *int) (string, bool, bool) {
	i := *offset
	for i < len(buf) {
		switch {
		case buf[i] == 0x07:
			s := string(buf[*offset:i])
			*offset = i + 1
			return s, true, true
		case buf[i] == 0x1b:
			if i+1 >= len(buf) {
				return "", false, false
			}
			s := string(buf[*offset:i])
			if buf[i+1] == '\\' {
				*offset = i + 2
				return s, true, true
			}
			*offset = i + 1
			return s, false, true
		default:
			i++
		}
	}
	return "", false, false
}
