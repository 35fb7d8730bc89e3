package panelterm

// rightOne is the cursor advance applied after every write.
var rightOne = To(Right, 1, true)

// toRightEdge is the row remainder the character insert/remove operations
// work over.
var toRightEdge = CursorTo(ToEdge(Right))

// CharGrid couples a grid with a cursor, a view, per-coordinate tooltips and
// the current text styles. All writes and area operations are cursor-driven.
type CharGrid struct {
	grid       *Grid
	cursor     Cursor
	view       View
	tooltips   map[Coords]*Tooltip
	textStyles UseStyles
	tabStop    int
}

// newCharGrid creates a grid sized for a view of width x height. The
// scrollback capacity and tab stop are captured from the config at creation
// so later config changes don't affect live grids.
func newCharGrid(width, height int, retainOffscreen bool, cfg *Config) *CharGrid {
	scrollback := 0
	tabStop := defaultTabStop
	if cfg != nil {
		scrollback = cfg.Scrollback
		tabStop = cfg.TabStop
	}
	return &CharGrid{
		grid: newGrid(gridSettings{
			width:           width,
			height:          height,
			retainOffscreen: retainOffscreen,
			scrollback:      scrollback,
		}),
		cursor:   newCursor(),
		view:     newView(width, height),
		tooltips: make(map[Coords]*Tooltip),
		tabStop:  tabStop,
	}
}

// Cursor returns the grid's cursor.
func (cg *CharGrid) Cursor() *Cursor {
	return &cg.cursor
}

// Bounds returns the view region movement is evaluated in.
func (cg *CharGrid) Bounds() Region {
	return cg.view.Bounds()
}

// Styles returns the current text styles.
func (cg *CharGrid) Styles() UseStyles {
	return cg.textStyles
}

// SetStyle applies a style mutation to the text styles used by subsequent
// writes.
func (cg *CharGrid) SetStyle(s Style) {
	cg.textStyles = cg.textStyles.Update(s)
}

// ResetStyles restores the configured default text styles.
func (cg *CharGrid) ResetStyles() {
	cg.textStyles = UseStyles{}
}

// Write puts character data at the cursor and advances it one cell to the
// right, wrapping at the view edge and scrolling on the last row.
func (cg *CharGrid) Write(data CharData) {
	coords := data.write(cg)
	cg.cursor.Coords = cg.calculateMovement(coords, rightOne)
	cg.view.KeepWithin(cg.cursor.Coords)
}

// WriteAt puts character data at absolute coordinates without moving the
// cursor.
func (cg *CharGrid) WriteAt(data CharData, coords Coords) {
	saved := cg.cursor.Coords
	cg.cursor.Coords = cg.view.Bounds().XYWithin(coords)
	data.write(cg)
	cg.cursor.Coords = saved
}

// MoveCursor applies a movement to the cursor, scrolling if the movement
// demands it.
func (cg *CharGrid) MoveCursor(m Movement) {
	cg.cursor.Coords = cg.calculateMovement(cg.cursor.Coords, m)
	cg.view.KeepWithin(cg.cursor.Coords)
}

// ScrollView scrolls the grid under a fixed cursor.
func (cg *CharGrid) ScrollView(dir Direction, n int) {
	ext := cg.grid.Scroll(dir, n)
	if ext > 0 {
		switch dir {
		case Down:
			cg.view.Shift(Down, ext)
			cg.cursor.Coords.Y += ext
		case Right:
			cg.view.Shift(Right, ext)
			cg.cursor.Coords.X += ext
		}
	}
	cg.cursor.Coords = cg.view.Bounds().XYWithin(cg.cursor.Coords)
}

// calculateMovement resolves a movement from the given coordinates: clamp or
// scroll per the view region, then step off any extension cell in the
// direction of travel.
func (cg *CharGrid) calculateMovement(from Coords, m Movement) Coords {
	to, n, dir := cg.view.Bounds().MoveAndScroll(from, m, cg.tabStop)
	if n > 0 {
		ext := cg.grid.Scroll(dir, n)
		if ext > 0 {
			switch dir {
			case Down:
				cg.view.Shift(Down, ext)
				to.Y += ext
			case Right:
				cg.view.Shift(Right, ext)
				to.X += ext
			}
			// Upward and leftward extension inserts ahead of the
			// content, so the landing cell is already correct.
		}
	}
	return cg.grid.MoveOutOfExtension(to, m.Direction(from))
}

// Erase clears the content of every cell in the area, preserving the styles
// already present at each cell.
func (cg *CharGrid) Erase(area Area) {
	for _, c := range cg.areaCoords(area) {
		if cell := cg.grid.Cell(c); cell != nil {
			cell.Erase()
		}
	}
}

// SetStyleInArea applies a style mutation to every cell in the area.
func (cg *CharGrid) SetStyleInArea(area Area, s Style) {
	for _, c := range cg.areaCoords(area) {
		if cell := cg.grid.Writeable(c); cell != nil {
			cell.Styles = cell.Styles.Update(s)
		}
	}
}

// ResetStylesInArea restores the configured default styles on every cell in
// the area.
func (cg *CharGrid) ResetStylesInArea(area Area) {
	for _, c := range cg.areaCoords(area) {
		if cell := cg.grid.Cell(c); cell != nil {
			cell.Styles = UseStyles{}
		}
	}
}

// InsertBlankAt shifts the cell at the cursor and the cells right of it
// rightward by n on the cursor's row, dropping cells pushed past the edge.
func (cg *CharGrid) InsertBlankAt(n int) {
	if n <= 0 {
		return
	}
	cs := cg.areaCoords(toRightEdge)
	for i := len(cs) - 1 - n; i >= 0; i-- {
		c := cs[i]
		cg.grid.Moveover(c, Coords{X: c.X + n, Y: c.Y})
	}
}

// RemoveAt shifts the cells right of the cursor leftward by n, filling the
// tail of the row with empty cells.
func (cg *CharGrid) RemoveAt(n int) {
	if n <= 0 {
		return
	}
	right := cg.view.Bounds().Right
	for _, c := range cg.areaCoords(toRightEdge) {
		if c.X+n >= right {
			break
		}
		cg.grid.Moveover(Coords{X: c.X + n, Y: c.Y}, c)
	}
}

// InsertRowsAt shifts the rows below the cursor down by n, and the cursor's
// own row too when include is set.
func (cg *CharGrid) InsertRowsAt(n int, include bool) {
	if n <= 0 {
		return
	}
	cs := cg.areaCoords(BelowCursor(include))
	skip := n * cg.view.Width()
	for i := len(cs) - 1 - skip; i >= 0; i-- {
		c := cs[i]
		cg.grid.Moveover(c, Coords{X: c.X, Y: c.Y + n})
	}
}

// RemoveRowsAt shifts the rows below the removed ones up by n, filling the
// bottom with empty rows.
func (cg *CharGrid) RemoveRowsAt(n int, include bool) {
	if n <= 0 {
		return
	}
	bottom := cg.view.Bounds().Bottom
	for _, c := range cg.areaCoords(BelowCursor(include)) {
		if c.Y+n >= bottom {
			break
		}
		cg.grid.Moveover(Coords{X: c.X, Y: c.Y + n}, c)
	}
}

// wrapForWidth moves the cursor to the next line when a multi-cell write
// would not fit before the view's right edge, scrolling on the last row.
// It returns the (possibly moved) cursor position.
func (cg *CharGrid) wrapForWidth(width int) Coords {
	bounds := cg.view.Bounds()
	if width > 1 && cg.cursor.Coords.X+width > bounds.Right && width <= bounds.Width() {
		cg.cursor.Coords = cg.calculateMovement(cg.cursor.Coords, NextLine(1))
	}
	return cg.cursor.Coords
}

func (cg *CharGrid) areaCoords(area Area) []Coords {
	return coordsInArea(area, cg.cursor.Coords, cg.view.Bounds(), cg.tabStop)
}

// CellAt returns the cell at view-local coordinates, defaulting to empty for
// unwritten positions.
func (cg *CharGrid) CellAt(local Coords) CharCell {
	return cg.grid.CellAt(cg.view.Translate(local))
}

// TooltipAt returns the tooltip stored at the coordinates, if any.
func (cg *CharGrid) TooltipAt(c Coords) *Tooltip {
	return cg.tooltips[c]
}

// AddTooltip stores a text tooltip at the coordinates.
func (cg *CharGrid) AddTooltip(c Coords, text string) {
	cg.tooltips[c] = NewBasicTooltip(text)
}

// AddDropDown stores a menu tooltip at the coordinates.
func (cg *CharGrid) AddDropDown(c Coords, options []string) {
	cg.tooltips[c] = NewMenuTooltip(options)
}

// RemoveTooltip deletes the tooltip at the coordinates.
func (cg *CharGrid) RemoveTooltip(c Coords) {
	delete(cg.tooltips, c)
}

// resizeWidth and resizeHeight change the visible size. Existing cells are
// preserved; the new area defaults to empty cells.
func (cg *CharGrid) resizeWidth(width int) {
	cg.view.resizeWidth(width)
	cg.grid.resizeWidth(cg.view.Bounds().Right)
	cg.cursor.Coords = cg.view.Bounds().XYWithin(cg.cursor.Coords)
}

func (cg *CharGrid) resizeHeight(height int) {
	cg.view.resizeHeight(height)
	cg.grid.resizeHeight(cg.view.Bounds().Bottom)
	cg.cursor.Coords = cg.view.Bounds().XYWithin(cg.cursor.Coords)
}

func (cg *CharGrid) resize(width, height int) {
	cg.resizeWidth(width)
	cg.resizeHeight(height)
}
