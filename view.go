package panelterm

// View is the window onto a grid that movement and area operations are
// evaluated in. It is a fixed-size region in grid coordinates that slides to
// keep the cursor visible; on a scrollback grid, the rows above the view are
// the history.
type View struct {
	region Region
}

func newView(width, height int) View {
	return View{region: Region{Left: 0, Top: 0, Right: maxInt(width, 1), Bottom: maxInt(height, 1)}}
}

// Bounds returns the view's region in grid coordinates.
func (v *View) Bounds() Region {
	return v.region
}

// Width returns the view width.
func (v *View) Width() int { return v.region.Width() }

// Height returns the view height.
func (v *View) Height() int { return v.region.Height() }

// KeepWithin slides the view the minimal distance needed to contain the
// coordinates.
func (v *View) KeepWithin(c Coords) {
	v.region = v.region.MoveToContain(c)
}

// Shift moves the view by n cells in a direction.
func (v *View) Shift(dir Direction, n int) {
	switch dir {
	case Up:
		v.region.Top -= n
		v.region.Bottom -= n
	case Down:
		v.region.Top += n
		v.region.Bottom += n
	case Left:
		v.region.Left -= n
		v.region.Right -= n
	case Right:
		v.region.Left += n
		v.region.Right += n
	}
}

// resizeWidth and resizeHeight change the view extent, anchored at its
// top-left corner.
func (v *View) resizeWidth(width int) {
	v.region.Right = v.region.Left + maxInt(width, 1)
}

func (v *View) resizeHeight(height int) {
	v.region.Bottom = v.region.Top + maxInt(height, 1)
}

// Translate converts view-local coordinates to grid coordinates.
func (v *View) Translate(c Coords) Coords {
	return Coords{X: v.region.Left + c.X, Y: v.region.Top + c.Y}
}
