package panelterm

// BellProvider handles bell events triggered by BEL (0x07) characters.
type BellProvider interface {
	// Ring is called when a bell character is received.
	Ring()
}

// NoopBell ignores all bell events.
type NoopBell struct{}

func (NoopBell) Ring() {}

// TitleProvider handles terminal title changes.
type TitleProvider interface {
	// SetTitle is called when the title changes.
	SetTitle(title string)
}

// NoopTitle ignores all title changes.
type NoopTitle struct{}

func (NoopTitle) SetTitle(title string) {}

// DebugProvider receives diagnostics for recognized but unsupported escape
// sequences.
type DebugProvider interface {
	// NoFeature is called with the textual form of the sequence.
	NoFeature(seq string)
}

// NoopDebug discards all diagnostics.
type NoopDebug struct{}

func (NoopDebug) NoFeature(seq string) {}
