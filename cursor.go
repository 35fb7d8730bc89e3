package panelterm

// Cursor tracks the write position within a CharGrid, together with the
// styles the cursor itself is rendered with. It owns no cell storage; the
// coordinates refer into the grid.
type Cursor struct {
	Coords Coords
	Styles UseStyles
}

// newCursor returns a cursor at the origin with config-default styles.
func newCursor() Cursor {
	return Cursor{}
}

// SetStyle applies a style mutation to the cursor's own appearance.
func (c *Cursor) SetStyle(s Style) {
	c.Styles = c.Styles.Update(s)
}

// ResetStyles restores the cursor's configured default appearance.
func (c *Cursor) ResetStyles() {
	c.Styles = UseStyles{}
}
