package panelterm

import (
	"fmt"
	"image/color"
	"io"
	"sync"
)

const (
	// DefaultCols is the default terminal width in columns.
	DefaultCols = 80
	// DefaultRows is the default terminal height in rows.
	DefaultRows = 24
)

// Terminal glues the output parser, the screen tree and the input encoder
// together. Bytes written to it are parsed into commands and applied in
// source order; key events sent to it are encoded onto the child's stdin,
// with menu tooltips intercepting navigation keys first.
//
// All exported methods are safe for concurrent use.
type Terminal struct {
	mu sync.RWMutex

	cfg    *Config
	screen *Screen
	input  *Input
	parser *Parser

	title string
	dirty bool
	dead  bool

	bellProvider  BellProvider
	titleProvider TitleProvider
	debugProvider DebugProvider
}

// Option configures a Terminal during construction.
type Option func(*Terminal)

// WithSize sets the terminal dimensions. Values <= 0 are replaced with the
// defaults (80x24).
func WithSize(cols, rows int) Option {
	if cols <= 0 {
		cols = DefaultCols
	}
	if rows <= 0 {
		rows = DefaultRows
	}
	return func(t *Terminal) {
		t.screen = NewScreen(cols, rows, t.cfg)
	}
}

// WithConfig supplies the config record. The config must be populated
// before the terminal consumes output; grids capture scrollback and tab
// stop at creation.
func WithConfig(cfg *Config) Option {
	return func(t *Terminal) {
		t.cfg = cfg
		t.screen = NewScreen(t.screen.Area().Width(), t.screen.Area().Height(), cfg)
	}
}

// WithResponse sets the writer for encoded input and terminal responses,
// typically the child's stdin. If nil, everything is discarded.
func WithResponse(w io.Writer) Option {
	return func(t *Terminal) {
		t.input.SetWriter(w)
	}
}

// WithBell sets the handler for bell events. Defaults to a no-op.
func WithBell(p BellProvider) Option {
	return func(t *Terminal) {
		t.bellProvider = p
	}
}

// WithTitle sets the handler for title changes. Defaults to a no-op.
func WithTitle(p TitleProvider) Option {
	return func(t *Terminal) {
		t.titleProvider = p
	}
}

// WithDebug sets the handler for unsupported-sequence diagnostics.
// Defaults to a no-op.
func WithDebug(p DebugProvider) Option {
	return func(t *Terminal) {
		t.debugProvider = p
	}
}

// New creates a terminal with the given options. Defaults to 80x24 with the
// built-in config and no-op providers.
func New(opts ...Option) *Terminal {
	cfg := DefaultConfig()
	t := &Terminal{
		cfg:           cfg,
		screen:        NewScreen(DefaultCols, DefaultRows, cfg),
		input:         NewInput(nil),
		parser:        NewParser(),
		bellProvider:  NoopBell{},
		titleProvider: NoopTitle{},
		debugProvider: NoopDebug{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Write parses raw child output and applies the resulting commands in
// source order. Implements io.Writer; it never fails.
func (t *Terminal) Write(data []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.dead {
		return len(data), nil
	}
	for _, cmd := range t.parser.Feed(data) {
		cmd.Apply(t)
		t.dirty = true
	}
	return len(data), nil
}

// WriteString is a convenience wrapper around Write.
func (t *Terminal) WriteString(s string) (int, error) {
	return t.Write([]byte(s))
}

// Apply applies a single command, e.g. one produced by local echo.
func (t *Terminal) Apply(cmd Command) {
	t.mu.Lock()
	defer t.mu.Unlock()
	cmd.Apply(t)
	t.dirty = true
}

// SendKey delivers a key event from the UI. If a menu tooltip exists at the
// cursor, it intercepts Up, Down and Enter; a selection is re-dispatched
// into the input encoder as a MenuSelection. Local echo commands produced
// by the event are applied before the call returns. After the child has
// exited, input is dropped.
func (t *Terminal) SendKey(key Key, press bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sendInput(key, press)
}

func (t *Terminal) sendInput(key Key, press bool) error {
	if t.dead {
		return nil
	}
	if press {
		if grid := t.screen.ActiveGrid(); grid != nil {
			if tip := grid.TooltipAt(grid.Cursor().Coords); tip != nil {
				n, action := tip.Interact(key)
				switch action {
				case TooltipSelect:
					key = MenuSelection(n)
				case TooltipConsumed:
					t.dirty = true
					return nil
				}
			}
		}
	}
	echo, err := t.input.Process(key, press)
	for _, cmd := range echo {
		cmd.Apply(t)
		t.dirty = true
	}
	return err
}

// Resize changes the terminal dimensions. Splits redistribute their space
// and grids keep their contents.
func (t *Terminal) Resize(cols, rows int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Resize(cols, rows)
	t.dirty = true
}

// Screen returns the screen tree for rendering.
func (t *Terminal) Screen() *Screen {
	return t.screen
}

// Config returns the terminal's config record.
func (t *Terminal) Config() *Config {
	return t.cfg
}

// Size returns the screen dimensions as (cols, rows).
func (t *Terminal) Size() (int, int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	area := t.screen.Area()
	return area.Width(), area.Height()
}

// Title returns the current terminal title.
func (t *Terminal) Title() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.title
}

// CursorPos returns the active cursor position in view-local coordinates.
func (t *Terminal) CursorPos() Coords {
	t.mu.RLock()
	defer t.mu.RUnlock()
	grid := t.screen.ActiveGrid()
	if grid == nil {
		return Coords{}
	}
	bounds := grid.Bounds()
	c := grid.Cursor().Coords
	return Coords{X: c.X - bounds.Left, Y: c.Y - bounds.Top}
}

// CellAt returns the visible cell at screen coordinates.
func (t *Terminal) CellAt(c Coords) CharCell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.screen.CellAt(c)
}

// InputMode returns the current input encoding regime.
func (t *Terminal) InputMode() InputMode {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.input.Mode()
}

// Dirty reports whether rendered state changed since the last ClearDirty.
func (t *Terminal) Dirty() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dirty
}

// ClearDirty resets the dirty flag, typically after a render pass.
func (t *Terminal) ClearDirty() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dirty = false
}

// ChildExited moves the terminal to its terminal state: further output and
// input are dropped.
func (t *Terminal) ChildExited() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dead = true
}

// IsChildExited reports whether the child has exited.
func (t *Terminal) IsChildExited() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dead
}

// --- command application internals ---
// These run with the terminal lock held by Write/Apply/SendKey.

func (t *Terminal) activeGrid() *CharGrid {
	return t.screen.ActiveGrid()
}

func (t *Terminal) write(data CharData) {
	if grid := t.activeGrid(); grid != nil {
		grid.Write(data)
	}
}

func (t *Terminal) writeAt(data CharData, coords Coords) {
	if grid := t.activeGrid(); grid != nil {
		grid.WriteAt(data, coords)
	}
}

func (t *Terminal) moveCursor(m Movement) {
	if grid := t.activeGrid(); grid != nil {
		grid.MoveCursor(m)
	}
}

func (t *Terminal) scrollScreen(dir Direction, n int) {
	if grid := t.activeGrid(); grid != nil {
		grid.ScrollView(dir, n)
	}
}

func (t *Terminal) erase(area Area) {
	if grid := t.activeGrid(); grid != nil {
		grid.Erase(area)
	}
}

func (t *Terminal) insertBlank(n int) {
	if grid := t.activeGrid(); grid != nil {
		grid.InsertBlankAt(n)
	}
}

func (t *Terminal) removeChars(n int) {
	if grid := t.activeGrid(); grid != nil {
		grid.RemoveAt(n)
	}
}

func (t *Terminal) insertRows(n int, include bool) {
	if grid := t.activeGrid(); grid != nil {
		grid.InsertRowsAt(n, include)
	}
}

func (t *Terminal) removeRows(n int, include bool) {
	if grid := t.activeGrid(); grid != nil {
		grid.RemoveRowsAt(n, include)
	}
}

func (t *Terminal) setTextStyle(s Style) {
	if grid := t.activeGrid(); grid != nil {
		grid.SetStyle(s)
	}
}

func (t *Terminal) resetTextStyles() {
	if grid := t.activeGrid(); grid != nil {
		grid.ResetStyles()
	}
}

func (t *Terminal) setCursorStyle(s Style) {
	if grid := t.activeGrid(); grid != nil {
		grid.Cursor().SetStyle(s)
	}
}

func (t *Terminal) resetCursorStyles() {
	if grid := t.activeGrid(); grid != nil {
		grid.Cursor().ResetStyles()
	}
}

func (t *Terminal) setCursorMode(visible bool) {
	opacity := uint8(0)
	if visible {
		opacity = 0xff
	}
	t.setCursorStyle(Opacity(opacity))
}

func (t *Terminal) setStyleInArea(area Area, s Style) {
	if grid := t.activeGrid(); grid != nil {
		grid.SetStyleInArea(area, s)
	}
}

func (t *Terminal) resetStylesInArea(area Area) {
	if grid := t.activeGrid(); grid != nil {
		grid.ResetStylesInArea(area)
	}
}

func (t *Terminal) setTitle(title string) {
	t.title = title
	t.titleProvider.SetTitle(title)
}

func (t *Terminal) setInputMode(mode InputMode) {
	t.input.SetMode(mode)
}

func (t *Terminal) setBufferMode(settings *BufferSettings) {
	t.input.SetBuffer(settings)
}

func (t *Terminal) setEchoMode(kind EchoKind, settings EchoSettings) {
	t.input.SetEcho(kind, settings)
}

func (t *Terminal) bell() {
	t.bellProvider.Ring()
}

func (t *Terminal) noFeature(seq string) {
	t.debugProvider.NoFeature(seq)
}

func (t *Terminal) setPaletteColor(index int, c color.RGBA) {
	if index >= 0 && index < len(t.cfg.Palette) {
		t.cfg.Palette[index] = c
	}
}

func (t *Terminal) resetPaletteColor(index int) {
	if index < 0 {
		t.cfg.Palette = DefaultPalette
		return
	}
	if index < len(t.cfg.Palette) {
		t.cfg.Palette[index] = DefaultPalette[index]
	}
}

func (t *Terminal) setDefaultColor(which int, c color.RGBA) {
	switch which {
	case ColorTargetForeground:
		t.cfg.FgColor = c
	case ColorTargetBackground:
		t.cfg.BgColor = c
	case ColorTargetCursor:
		t.cfg.CursorColor = c
	}
}

func (t *Terminal) reportPosition(code WireCode) {
	grid := t.activeGrid()
	if grid == nil {
		return
	}
	bounds := grid.Bounds()
	c := grid.Cursor().Coords
	x, y := c.X-bounds.Left, c.Y-bounds.Top
	var response string
	switch code {
	case WireANSI:
		response = fmt.Sprintf("\x1b[%d;%dR", y+1, x+1)
	default:
		response = fmt.Sprintf("\x1b{%x.%x}", x, y)
	}
	_ = t.sendInput(Cmd(response), true)
}

func (t *Terminal) pushPanel(tag *uint64, retain bool) {
	t.screen.Push(tag, retain)
}

func (t *Terminal) popPanel(tag *uint64) {
	t.screen.Pop(tag)
}

func (t *Terminal) splitPanel(save SaveGrid, kind SplitKind, rule ResizeRule, tag *uint64, lTag, rTag uint64, retain bool) {
	t.screen.Split(save, kind, rule, tag, lTag, rTag, retain)
}

func (t *Terminal) unsplitPanel(save SaveGrid, tag uint64) {
	t.screen.Unsplit(save, tag)
}

func (t *Terminal) adjustPanelSplit(tag uint64, kind SplitKind, rule ResizeRule) {
	t.screen.AdjustSplit(tag, kind, rule)
}

func (t *Terminal) rotateSectionUp(tag *uint64) {
	t.screen.RotateUp(tag)
}

func (t *Terminal) rotateSectionDown(tag *uint64) {
	t.screen.RotateDown(tag)
}

func (t *Terminal) switchActiveSection(tag uint64) {
	t.screen.Switch(tag)
}

func (t *Terminal) addTooltip(c Coords, text string) {
	if grid := t.activeGrid(); grid != nil {
		grid.AddTooltip(c, text)
	}
}

func (t *Terminal) addDropDown(c Coords, options []string) {
	if grid := t.activeGrid(); grid != nil {
		grid.AddDropDown(c, options)
	}
}

func (t *Terminal) removeTooltip(c Coords) {
	if grid := t.activeGrid(); grid != nil {
		grid.RemoveTooltip(c)
	}
}
