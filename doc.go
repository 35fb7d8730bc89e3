// Package panelterm is a terminal emulator engine without a display.
//
// It consumes the byte stream a child process emits on a pseudoterminal,
// interprets it as rendering and control commands, and maintains an
// in-memory model of the screen a renderer can draw from. User key events
// flow the other way: encoded into bytes on the child's stdin, optionally
// echoed locally.
//
// # Quick start
//
// Create a terminal and write escape sequences to it:
//
//	term := panelterm.New(panelterm.WithSize(80, 24))
//	term.WriteString("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(term.String()) // "Hello World!"
//
// # Architecture
//
// Bytes move through three stages:
//
//	child stdout -> Parser -> Command -> Apply -> Screen -> renderer
//	key events -> Input -> bytes -> child stdin
//
// The [Parser] is a resumable state machine: it understands UTF-8 grapheme
// clusters, C0/C1 controls, ANSI/DEC escape sequences (CSI, OSC, DCS) and an
// extended binary-safe protocol that carries attachments such as inline
// images. Each completed sequence becomes a [Command], a first-class value
// applied against the [Terminal].
//
// The screen model is a tree: a [Screen] owns tagged [ScreenSection] nodes
// that split horizontally or vertically and stack panels (alternate
// buffers) in a ring. Each leaf panel holds a [CharGrid] - cells with
// styles, a cursor, scrollback and per-coordinate tooltips.
//
// # Driving a real child
//
// [Session] wires a terminal to a child process with a pseudoterminal:
//
//	term := panelterm.New(panelterm.WithSize(80, 24))
//	sess, err := panelterm.StartSession(term, "/bin/sh")
//	if err != nil { ... }
//	defer sess.Close()
//
//	// on the UI tick:
//	if sess.Drain() && term.Dirty() {
//	    redraw(term.Screen())
//	    term.ClearDirty()
//	}
//
//	// on key events:
//	term.SendKey(panelterm.Char('l'), true)
//
// The host owns the event loop; the engine never spawns work of its own
// beyond the session's reader goroutine.
package panelterm
