package panelterm

import (
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// TermName is exported to the child as TERM so applications can identify
// this terminal.
const TermName = "panelterm"

// Session attaches a Terminal to a real child process on a pseudoterminal.
// A reader goroutine pumps the child's stdout into a bounded, ordered
// queue; the UI thread drains the queue at its own pace with Drain. Encoded
// key input flows back through the terminal's response writer. When the
// child's stdout closes, the terminal enters its child-exited state.
type Session struct {
	term *Terminal
	cmd  *exec.Cmd
	file *os.File
	out  chan []byte
	done chan struct{}
	err  error
}

// sessionQueueDepth bounds the stdout queue; the reader blocks when the UI
// falls this far behind.
const sessionQueueDepth = 32

// StartSession starts a child process under a pseudoterminal of the
// terminal's current size and begins pumping its output.
func StartSession(term *Terminal, name string, args ...string) (*Session, error) {
	cols, rows := term.Size()
	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), "TERM="+TermName)
	file, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return nil, err
	}

	s := &Session{
		term: term,
		cmd:  cmd,
		file: file,
		out:  make(chan []byte, sessionQueueDepth),
		done: make(chan struct{}),
	}
	term.input.SetWriter(file)
	go s.readLoop()
	return s, nil
}

// readLoop runs off the UI thread, blocking on the child's stdout.
func (s *Session) readLoop() {
	defer close(s.out)
	buf := make([]byte, 4096)
	for {
		n, err := s.file.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case s.out <- chunk:
			case <-s.done:
				return
			}
		}
		if err != nil {
			s.err = err
			return
		}
	}
}

// Drain applies all queued output, returning true if anything was applied.
// Call it from the UI thread at regular ticks. A closed queue marks the
// terminal's child as exited.
func (s *Session) Drain() bool {
	applied := false
	for {
		select {
		case chunk, ok := <-s.out:
			if !ok {
				s.term.ChildExited()
				return applied
			}
			s.term.Write(chunk)
			applied = true
		default:
			return applied
		}
	}
}

// Resize propagates a new window size to both the terminal model and the
// child's pseudoterminal.
func (s *Session) Resize(cols, rows int) error {
	s.term.Resize(cols, rows)
	return pty.Setsize(s.file, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
}

// Wait blocks until the child exits and returns its error, if any.
func (s *Session) Wait() error {
	return s.cmd.Wait()
}

// Close tears the session down: the pty is closed and the reader released.
// The child receives EOF/SIGHUP through the pty as usual.
func (s *Session) Close() error {
	close(s.done)
	return s.file.Close()
}

// Err returns the reader's terminal error, if the pump has stopped.
func (s *Session) Err() error {
	return s.err
}
