package panelterm

import "fmt"

// Put writes character data at the cursor.
type Put struct {
	Data CharData
}

// PutChar creates a Put for a single character, widening it to a wide-char
// write when the character occupies more than one column.
func PutChar(r rune) Put {
	if w := runeWidth(r); w > 1 {
		return Put{Data: wideChar{r: r, width: w}}
	}
	return Put{Data: charDatum(r)}
}

// PutExtension creates a Put for a standalone combining character.
func PutExtension(r rune) Put {
	return Put{Data: charExtender(r)}
}

// PutGrapheme creates a Put for a complete grapheme cluster.
func PutGrapheme(s string) Put {
	return Put{Data: graphemeData{text: s, width: clusterWidth(s)}}
}

// PutImage creates a Put placing an inline image over a w x h cell region.
func PutImage(data []byte, mime string, pos MediaPosition, w, h int) Put {
	return Put{Data: imageData{image: ImageCell{Data: data, MIME: mime, Pos: pos, Width: w, Height: h}}}
}

func (c Put) Apply(t *Terminal) {
	t.write(c.Data)
}

func (c Put) Repr() string {
	return c.Data.repr()
}

// PutAt writes character data at absolute coordinates, leaving the cursor
// in place.
type PutAt struct {
	Data   CharData
	Coords Coords
}

// PutImageAt creates a PutAt placing an inline image at fixed coordinates.
func PutImageAt(data []byte, mime string, pos MediaPosition, w, h int, coords Coords) PutAt {
	return PutAt{
		Data:   imageData{image: ImageCell{Data: data, MIME: mime, Pos: pos, Width: w, Height: h}},
		Coords: coords,
	}
}

func (c PutAt) Apply(t *Terminal) {
	t.writeAt(c.Data, c.Coords)
}

func (c PutAt) Repr() string {
	return fmt.Sprintf("%s AT %d,%d", c.Data.repr(), c.Coords.X, c.Coords.Y)
}

// Move applies a cursor movement.
type Move struct {
	Movement Movement
}

func (c Move) Apply(t *Terminal) {
	t.moveCursor(c.Movement)
}

func (c Move) Repr() string {
	return c.Movement.String()
}

// ScrollScreen scrolls the active grid under a fixed cursor.
type ScrollScreen struct {
	Dir Direction
	N   int
}

func (c ScrollScreen) Apply(t *Terminal) {
	t.scrollScreen(c.Dir, c.N)
}

func (c ScrollScreen) Repr() string {
	return fmt.Sprintf("SCROLL SCREEN %s %d", c.Dir, c.N)
}

// Erase clears the content of an area, preserving cell styles.
type Erase struct {
	Area Area
}

func (c Erase) Apply(t *Terminal) {
	t.erase(c.Area)
}

func (c Erase) Repr() string {
	return "ERASE " + c.Area.String()
}

// InsertBlank shifts the cursor row's remainder right by N cells.
type InsertBlank struct {
	N int
}

func (c InsertBlank) Apply(t *Terminal) {
	t.insertBlank(c.N)
}

func (c InsertBlank) Repr() string {
	return fmt.Sprintf("INSERT %d BLANK SPACES", c.N)
}

// RemoveChars shifts the cursor row's remainder left by N cells.
type RemoveChars struct {
	N int
}

func (c RemoveChars) Apply(t *Terminal) {
	t.removeChars(c.N)
}

func (c RemoveChars) Repr() string {
	return fmt.Sprintf("REMOVE %d CHARS", c.N)
}

// InsertRows shifts the rows at or below the cursor down by N.
type InsertRows struct {
	N       int
	Include bool
}

func (c InsertRows) Apply(t *Terminal) {
	t.insertRows(c.N, c.Include)
}

func (c InsertRows) Repr() string {
	if c.Include {
		return fmt.Sprintf("INSERT %d ROWS ABOVE CURSOR", c.N)
	}
	return fmt.Sprintf("INSERT %d ROWS BELOW CURSOR", c.N)
}

// RemoveRows deletes N rows at or below the cursor, shifting the rest up.
type RemoveRows struct {
	N       int
	Include bool
}

func (c RemoveRows) Apply(t *Terminal) {
	t.removeRows(c.N, c.Include)
}

func (c RemoveRows) Repr() string {
	if c.Include {
		return fmt.Sprintf("REMOVE %d ROWS INCL CURSOR", c.N)
	}
	return fmt.Sprintf("REMOVE %d ROWS BELOW CURSOR", c.N)
}

// SetTextStyle mutates the styles applied to subsequent writes.
type SetTextStyle struct {
	Style Style
}

func (c SetTextStyle) Apply(t *Terminal) {
	t.setTextStyle(c.Style)
}

func (c SetTextStyle) Repr() string {
	return "SET TEXT STYLE"
}

// DefaultTextStyle restores the configured default text styles.
type DefaultTextStyle struct{}

func (DefaultTextStyle) Apply(t *Terminal) {
	t.resetTextStyles()
}

func (DefaultTextStyle) Repr() string {
	return "DEFAULT TEXT STYLE"
}

// SetCursorStyle mutates the cursor's own appearance.
type SetCursorStyle struct {
	Style Style
}

func (c SetCursorStyle) Apply(t *Terminal) {
	t.setCursorStyle(c.Style)
}

func (c SetCursorStyle) Repr() string {
	return "SET CURSOR STYLE"
}

// DefaultCursorStyle restores the configured cursor appearance.
type DefaultCursorStyle struct{}

func (DefaultCursorStyle) Apply(t *Terminal) {
	t.resetCursorStyles()
}

func (DefaultCursorStyle) Repr() string {
	return "DEFAULT CURSOR STYLE"
}

// SetStyleInArea applies a style mutation to every cell in an area.
type SetStyleInArea struct {
	Area  Area
	Style Style
}

func (c SetStyleInArea) Apply(t *Terminal) {
	t.setStyleInArea(c.Area, c.Style)
}

func (c SetStyleInArea) Repr() string {
	return "SET STYLE IN AREA"
}

// DefaultStyleInArea restores default styles on every cell in an area.
type DefaultStyleInArea struct {
	Area Area
}

func (c DefaultStyleInArea) Apply(t *Terminal) {
	t.resetStylesInArea(c.Area)
}

func (c DefaultStyleInArea) Repr() string {
	return "DEFAULT STYLE IN AREA"
}
