package panelterm

// Modifiers tracks the held modifier keys and the caps lock toggle.
type Modifiers struct {
	lshift bool
	rshift bool
	caps   bool
	lctrl  bool
	rctrl  bool
	lalt   bool
	ralt   bool
}

// Shift reports the effective shift state; caps lock inverts it.
func (m *Modifiers) Shift() bool {
	return (m.lshift || m.rshift) != m.caps
}

// Ctrl reports whether either control key is held.
func (m *Modifiers) Ctrl() bool {
	return m.lctrl || m.rctrl
}

// Alt reports whether either alt key is held.
func (m *Modifiers) Alt() bool {
	return m.lalt || m.ralt
}

// Triplet returns (shift, ctrl, alt).
func (m *Modifiers) Triplet() (bool, bool, bool) {
	return m.Shift(), m.Ctrl(), m.Alt()
}

// Apply updates the state for a modifier key event. Caps lock toggles on
// press only.
func (m *Modifiers) Apply(k Key, press bool) {
	switch k.Kind {
	case KeyShiftLeft:
		m.lshift = press
	case KeyShiftRight:
		m.rshift = press
	case KeyCtrlLeft:
		m.lctrl = press
	case KeyCtrlRight:
		m.rctrl = press
	case KeyAltLeft:
		m.lalt = press
	case KeyAltRight:
		m.ralt = press
	case KeyCapsLock:
		if press {
			m.caps = !m.caps
		}
	}
}
