package panelterm

// gridSettings carries the creation parameters of a grid.
type gridSettings struct {
	width           int
	height          int
	retainOffscreen bool
	scrollback      int
}

// Grid is dense row-major cell storage. It starts empty and grows on demand
// as cells are written. The remX/remY fields hold the remaining growth
// capacity on each axis: scrolling extends the grid while capacity remains
// and shifts content once it is exhausted. A negative remainder means the
// grid may grow without bound.
type Grid struct {
	width  int
	height int
	cells  []CharCell
	remX   int
	remY   int
}

// newGrid creates a grid. A grid that retains offscreen state keeps up to
// the configured scrollback of rows beyond its visible height (or grows
// without bound when scrollback is zero); otherwise it is capped at its
// visible size.
func newGrid(s gridSettings) *Grid {
	g := &Grid{}
	switch {
	case !s.retainOffscreen:
		g.remX, g.remY = s.width, s.height
	case s.scrollback > 0:
		g.remX, g.remY = s.width, s.height+s.scrollback
	default:
		g.remX, g.remY = -1, -1
	}
	return g
}

// Width returns the current storage width.
func (g *Grid) Width() int { return g.width }

// Height returns the current storage height.
func (g *Grid) Height() int { return g.height }

func (g *Grid) index(c Coords) int {
	return c.Y*g.width + c.X
}

func (g *Grid) inBounds(c Coords) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Cell returns the cell at the coordinates, or nil if the position has not
// been filled yet.
func (g *Grid) Cell(c Coords) *CharCell {
	if !g.inBounds(c) {
		return nil
	}
	return &g.cells[g.index(c)]
}

// CellAt returns the cell value at the coordinates, defaulting to an empty
// cell for unfilled positions.
func (g *Grid) CellAt(c Coords) CharCell {
	if cell := g.Cell(c); cell != nil {
		return *cell
	}
	return emptyCell
}

// Writeable grows the grid to cover the coordinates and returns the cell.
// Returns nil if the coordinates lie beyond the grid's growth bounds.
func (g *Grid) Writeable(c Coords) *CharCell {
	g.fillTo(c)
	return g.Cell(c)
}

// fillTo grows the grid so that the coordinates are in bounds, as far as
// capacity allows.
func (g *Grid) fillTo(c Coords) {
	if need := c.X + 1 - g.width; need > 0 {
		if g.remX >= 0 {
			need = minInt(need, g.remX)
		}
		if need > 0 {
			g.extendRight(need)
		}
	}
	if need := c.Y + 1 - g.height; need > 0 {
		if g.remY >= 0 {
			need = minInt(need, g.remY)
		}
		if need > 0 {
			g.extendDown(need)
		}
	}
}

// Moveover moves a cell's contents to another position, leaving a default
// cell behind.
func (g *Grid) Moveover(from, to Coords) {
	src := g.Cell(from)
	if src == nil {
		return
	}
	moved := *src
	*src = emptyCell
	g.fillTo(to)
	if dst := g.Cell(to); dst != nil {
		*dst = moved
	}
}

// MoveOutOfExtension walks from the coordinates in the given direction until
// the position no longer holds an extension cell. Walking leftward or upward
// into a multi-cell primary lands on its source; walking rightward or
// downward continues past it.
func (g *Grid) MoveOutOfExtension(c Coords, dir Direction) Coords {
	for {
		cell := g.Cell(c)
		if cell == nil || !cell.IsExtension() {
			return c
		}
		next := c
		switch dir {
		case Up:
			next.Y--
		case Down:
			next.Y++
		case Left:
			next.X--
		case Right:
			next.X++
		}
		if !g.inBounds(next) {
			return c
		}
		c = next
	}
}

// maxWidth returns the largest width this grid may grow to, or -1 for
// unbounded.
func (g *Grid) maxWidth() int {
	if g.remX < 0 {
		return -1
	}
	return g.width + g.remX
}

func (g *Grid) maxHeight() int {
	if g.remY < 0 {
		return -1
	}
	return g.height + g.remY
}

// BestFit shifts a desired placement region left and up as needed so that it
// fits within the grid's growth bounds, returning its top-left corner.
func (g *Grid) BestFit(region Region) Coords {
	x, y := region.Left, region.Top
	if mw := g.maxWidth(); mw >= 0 && region.Right > mw {
		x -= region.Right - mw
	}
	if mh := g.maxHeight(); mh >= 0 && region.Bottom > mh {
		y -= region.Bottom - mh
	}
	return Coords{X: maxInt(x, 0), Y: maxInt(y, 0)}
}

// CellToExtend locates the cell a standalone combining character should
// attach to: the cell before the coordinates, resolved through any
// extension cells back to their primary.
func (g *Grid) CellToExtend(c Coords) (Coords, bool) {
	return g.cellToExtend(coordsBefore(c, g.width))
}

func (g *Grid) cellToExtend(c Coords) (Coords, bool) {
	cell := g.Cell(c)
	if cell == nil {
		return Coords{}, false
	}
	if cell.Extendable() {
		return c, true
	}
	if src, ok := cell.Source(); ok {
		return g.cellToExtend(src)
	}
	return Coords{}, false
}

// coordsBefore returns the position immediately before the coordinates in
// reading order.
func coordsBefore(c Coords, width int) Coords {
	switch {
	case c.X <= 0 && c.Y <= 0:
		return Coords{}
	case c.X <= 0:
		return Coords{X: maxInt(width-1, 0), Y: c.Y - 1}
	default:
		return Coords{X: c.X - 1, Y: c.Y}
	}
}

// Scroll shifts the grid contents in a direction. While capacity remains on
// the axis the grid extends instead; a scroll of the full extent on a
// capacity-exhausted grid clears it. The returned value is the number of
// rows or columns the grid extended by, which the caller uses to move its
// view.
func (g *Grid) Scroll(dir Direction, n int) int {
	if n <= 0 {
		return 0
	}
	vertical := dir == Up || dir == Down
	rem := g.remX
	size := g.width
	if vertical {
		rem = g.remY
		size = g.height
	}
	if rem != 0 {
		switch dir {
		case Up:
			return g.extendUp(n)
		case Down:
			return g.extendDown(n)
		case Left:
			return g.extendLeft(n)
		default:
			return g.extendRight(n)
		}
	}
	if n >= size {
		g.clearAll()
		return 0
	}
	g.shift(dir, n)
	return 0
}

func (g *Grid) clearAll() {
	for i := range g.cells {
		g.cells[i] = emptyCell
	}
}

func (g *Grid) shift(dir Direction, n int) {
	if n <= 0 || len(g.cells) == 0 {
		return
	}
	switch dir {
	case Up:
		// Content moves down; blank rows appear at the top.
		n = minInt(n, g.height)
		kept := g.cells[:len(g.cells)-n*g.width]
		g.cells = append(make([]CharCell, n*g.width), kept...)
	case Down:
		// Content moves up; blank rows appear at the bottom.
		n = minInt(n, g.height)
		kept := g.cells[n*g.width:]
		g.cells = append(append([]CharCell{}, kept...), make([]CharCell, n*g.width)...)
	case Left:
		// Content moves right within each row.
		n = minInt(n, g.width)
		for y := 0; y < g.height; y++ {
			row := g.cells[y*g.width : (y+1)*g.width]
			copy(row[n:], row[:g.width-n])
			for x := 0; x < n; x++ {
				row[x] = emptyCell
			}
		}
	case Right:
		// Content moves left within each row.
		n = minInt(n, g.width)
		for y := 0; y < g.height; y++ {
			row := g.cells[y*g.width : (y+1)*g.width]
			copy(row[:g.width-n], row[n:])
			for x := g.width - n; x < g.width; x++ {
				row[x] = emptyCell
			}
		}
	}
}

// The extend functions grow the grid by up to the remaining capacity and
// shift the balance, returning the amount actually added.

func (g *Grid) extendUp(n int) int {
	ext := n
	if g.remY >= 0 {
		ext = minInt(g.remY, n)
	}
	if ext > 0 {
		g.bootstrapWidth()
		g.cells = append(make([]CharCell, ext*g.width), g.cells...)
		g.height += ext
		if g.remY > 0 {
			g.remY -= ext
		}
	}
	if over := n - ext; over > 0 {
		g.shift(Up, over)
	}
	return ext
}

func (g *Grid) extendDown(n int) int {
	ext := n
	if g.remY >= 0 {
		ext = minInt(g.remY, n)
	}
	if ext > 0 {
		g.bootstrapWidth()
		g.cells = append(g.cells, make([]CharCell, ext*g.width)...)
		g.height += ext
		if g.remY > 0 {
			g.remY -= ext
		}
	}
	if over := n - ext; over > 0 {
		g.shift(Down, over)
	}
	return ext
}

func (g *Grid) extendLeft(n int) int {
	ext := n
	if g.remX >= 0 {
		ext = minInt(g.remX, n)
	}
	if ext > 0 {
		g.bootstrapHeight()
		g.rebuildRows(ext, 0)
		if g.remX > 0 {
			g.remX -= ext
		}
	}
	if over := n - ext; over > 0 {
		g.shift(Left, over)
	}
	return ext
}

func (g *Grid) extendRight(n int) int {
	ext := n
	if g.remX >= 0 {
		ext = minInt(g.remX, n)
	}
	if ext > 0 {
		g.bootstrapHeight()
		g.rebuildRows(0, ext)
		if g.remX > 0 {
			g.remX -= ext
		}
	}
	if over := n - ext; over > 0 {
		g.shift(Right, over)
	}
	return ext
}

// bootstrapWidth gives a zero-width grid one column so vertical growth has
// cells to allocate.
func (g *Grid) bootstrapWidth() {
	if g.width == 0 && g.height == 0 {
		g.width = 1
		if g.remX > 0 {
			g.remX--
		}
	}
}

func (g *Grid) bootstrapHeight() {
	if g.height == 0 {
		g.height = 1
		if g.remY > 0 {
			g.remY--
		}
	}
}

// rebuildRows widens every row by the given number of cells on each side.
func (g *Grid) rebuildRows(before, after int) {
	newWidth := g.width + before + after
	cells := make([]CharCell, newWidth*g.height)
	for y := 0; y < g.height; y++ {
		copy(cells[y*newWidth+before:], g.cells[y*g.width:(y+1)*g.width])
	}
	g.cells = cells
	g.width = newWidth
}

// resizeWidth and resizeHeight raise the grid's growth bounds to cover a new
// visible size. Existing cells are preserved; the new area defaults to
// empty.
func (g *Grid) resizeWidth(width int) {
	if g.remX < 0 {
		return
	}
	g.remX = maxInt(g.remX, width-g.width)
}

func (g *Grid) resizeHeight(height int) {
	if g.remY < 0 {
		return
	}
	g.remY = maxInt(g.remY, height-g.height)
}
