package panelterm

import (
	"fmt"
	"image/color"
)

// SetTitle changes the terminal title.
type SetTitle struct {
	Title string
}

func (c SetTitle) Apply(t *Terminal) {
	t.setTitle(c.Title)
}

func (c SetTitle) Repr() string {
	return "SET TITLE"
}

// SetInputMode switches the input encoding regime.
type SetInputMode struct {
	Mode InputMode
}

func (c SetInputMode) Apply(t *Terminal) {
	t.setInputMode(c.Mode)
}

func (c SetInputMode) Repr() string {
	return "SET INPUTMODE " + c.Mode.String()
}

// Bell rings the bell provider.
type Bell struct{}

func (Bell) Apply(t *Terminal) {
	t.bell()
}

func (Bell) Repr() string {
	return "BELL"
}

// SetBufferMode switches the input between raw and cooked line buffering.
// A nil Settings returns to raw mode.
type SetBufferMode struct {
	Settings *BufferSettings
}

func (c SetBufferMode) Apply(t *Terminal) {
	t.setBufferMode(c.Settings)
}

func (c SetBufferMode) Repr() string {
	return "SET BUFFER MODE"
}

// EchoKind selects a local echo engine.
type EchoKind int

const (
	EchoNone EchoKind = iota
	EchoLine
	EchoScreen
)

// SetEchoMode selects the local echo engine.
type SetEchoMode struct {
	Kind     EchoKind
	Settings EchoSettings
}

func (c SetEchoMode) Apply(t *Terminal) {
	t.setEchoMode(c.Kind, c.Settings)
}

func (c SetEchoMode) Repr() string {
	return "SET ECHO MODE"
}

// SetCursorMode toggles cursor visibility.
type SetCursorMode struct {
	Visible bool
}

func (c SetCursorMode) Apply(t *Terminal) {
	t.setCursorMode(c.Visible)
}

func (c SetCursorMode) Repr() string {
	return "SET CURSOR MODE"
}

// SetPaletteColor overrides one entry of the configured palette.
type SetPaletteColor struct {
	Index int
	Color color.RGBA
}

func (c SetPaletteColor) Apply(t *Terminal) {
	t.setPaletteColor(c.Index, c.Color)
}

func (c SetPaletteColor) Repr() string {
	return fmt.Sprintf("SET PALETTE COLOR %d", c.Index)
}

// ResetPaletteColor restores one palette entry (or the whole palette when
// Index is negative) to the built-in defaults.
type ResetPaletteColor struct {
	Index int
}

func (c ResetPaletteColor) Apply(t *Terminal) {
	t.resetPaletteColor(c.Index)
}

func (c ResetPaletteColor) Repr() string {
	return "RESET PALETTE COLOR"
}

// SetDefaultColor overrides a configured default color. Which selects the
// foreground, background or cursor color.
type SetDefaultColor struct {
	Which int
	Color color.RGBA
}

// Targets for SetDefaultColor.
const (
	ColorTargetForeground = iota
	ColorTargetBackground
	ColorTargetCursor
)

func (c SetDefaultColor) Apply(t *Terminal) {
	t.setDefaultColor(c.Which, c.Color)
}

func (c SetDefaultColor) Repr() string {
	return "SET DEFAULT COLOR"
}

// PushPanel stacks a fresh grid on the addressed section.
type PushPanel struct {
	Tag             *uint64
	RetainOffscreen bool
}

func (c PushPanel) Apply(t *Terminal) {
	t.pushPanel(c.Tag, c.RetainOffscreen)
}

func (c PushPanel) Repr() string {
	return "PUSH PANEL"
}

// PopPanel restores the addressed section's previous panel.
type PopPanel struct {
	Tag *uint64
}

func (c PopPanel) Apply(t *Terminal) {
	t.popPanel(c.Tag)
}

func (c PopPanel) Repr() string {
	return "POP PANEL"
}

// SplitPanel divides the addressed section in two.
type SplitPanel struct {
	Save            SaveGrid
	Kind            SplitKind
	Rule            ResizeRule
	Tag             *uint64
	LTag            uint64
	RTag            uint64
	RetainOffscreen bool
}

func (c SplitPanel) Apply(t *Terminal) {
	t.splitPanel(c.Save, c.Kind, c.Rule, c.Tag, c.LTag, c.RTag, c.RetainOffscreen)
}

func (c SplitPanel) Repr() string {
	return "SPLIT PANEL"
}

// UnsplitPanel collapses the split at the tag, keeping the save side.
type UnsplitPanel struct {
	Save SaveGrid
	Tag  uint64
}

func (c UnsplitPanel) Apply(t *Terminal) {
	t.unsplitPanel(c.Save, c.Tag)
}

func (c UnsplitPanel) Repr() string {
	return "UNSPLIT PANEL"
}

// AdjustPanelSplit moves the split boundary of the addressed section.
type AdjustPanelSplit struct {
	Tag  uint64
	Kind SplitKind
	Rule ResizeRule
}

func (c AdjustPanelSplit) Apply(t *Terminal) {
	t.adjustPanelSplit(c.Tag, c.Kind, c.Rule)
}

func (c AdjustPanelSplit) Repr() string {
	return "ADJUST PANEL SPLIT"
}

// RotateSectionUp cycles the addressed section's ring upward.
type RotateSectionUp struct {
	Tag *uint64
}

func (c RotateSectionUp) Apply(t *Terminal) {
	t.rotateSectionUp(c.Tag)
}

func (c RotateSectionUp) Repr() string {
	return "ROTATE UP"
}

// RotateSectionDown cycles the addressed section's ring downward.
type RotateSectionDown struct {
	Tag *uint64
}

func (c RotateSectionDown) Apply(t *Terminal) {
	t.rotateSectionDown(c.Tag)
}

func (c RotateSectionDown) Repr() string {
	return "ROTATE DOWN"
}

// SwitchActiveSection makes the tag active if it addresses a grid leaf.
type SwitchActiveSection struct {
	Tag uint64
}

func (c SwitchActiveSection) Apply(t *Terminal) {
	t.switchActiveSection(c.Tag)
}

func (c SwitchActiveSection) Repr() string {
	return fmt.Sprintf("SWITCH TO PANEL %d", c.Tag)
}

// AddToolTip annotates a coordinate of the active grid with text.
type AddToolTip struct {
	Coords Coords
	Text   string
}

func (c AddToolTip) Apply(t *Terminal) {
	t.addTooltip(c.Coords, c.Text)
}

func (c AddToolTip) Repr() string {
	return "ADD TOOL TIP"
}

// AddDropDown annotates a coordinate with an interactive menu.
type AddDropDown struct {
	Coords  Coords
	Options []string
}

func (c AddDropDown) Apply(t *Terminal) {
	t.addDropDown(c.Coords, c.Options)
}

func (c AddDropDown) Repr() string {
	return "ADD TOOL TIP - DROP DOWN MENU"
}

// RemoveToolTip deletes the annotation at a coordinate.
type RemoveToolTip struct {
	Coords Coords
}

func (c RemoveToolTip) Apply(t *Terminal) {
	t.removeTooltip(c.Coords)
}

func (c RemoveToolTip) Repr() string {
	return "REMOVE TOOL TIP"
}

// WireCode selects the wire dialect of a response.
type WireCode int

const (
	WireANSI WireCode = iota
	WireExtended
)

// StaticResponse writes fixed bytes back to the child through the input
// encoder.
type StaticResponse struct {
	Response string
}

func (c StaticResponse) Apply(t *Terminal) {
	t.sendInput(Cmd(c.Response), true)
}

func (c StaticResponse) Repr() string {
	return "RESPOND " + c.Response
}

// ReportPosition writes a cursor position report back to the child.
type ReportPosition struct {
	Code WireCode
}

func (c ReportPosition) Apply(t *Terminal) {
	t.reportPosition(c.Code)
}

func (c ReportPosition) Repr() string {
	return "REPORT POSITION"
}

// KeyPress delivers a key press manufactured by the UI.
type KeyPress struct {
	Key Key
}

func (c KeyPress) Apply(t *Terminal) {
	t.sendInput(c.Key, true)
}

func (c KeyPress) Repr() string {
	return "KEY PRESS"
}

// KeyRelease delivers a key release manufactured by the UI.
type KeyRelease struct {
	Key Key
}

func (c KeyRelease) Apply(t *Terminal) {
	t.sendInput(c.Key, false)
}

func (c KeyRelease) Repr() string {
	return "KEY RELEASE"
}
