package panelterm

import "testing"

// fillGrid populates an 8x8 area with 'A' cells.
func fillGrid(g *Grid) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			cell := g.Writeable(Coords{X: x, Y: y})
			cell.Content = CellContent{Kind: ContentChar, Rune: 'A'}
		}
	}
}

func cappedGrid(maxX, maxY int) *Grid {
	g := newGrid(gridSettings{width: maxX, height: maxY, retainOffscreen: false})
	fillGrid(g)
	return g
}

func isA(t *testing.T, g *Grid, c Coords) {
	t.Helper()
	cell := g.CellAt(c)
	if cell.Content.Kind != ContentChar || cell.Content.Rune != 'A' {
		t.Errorf("cell %v = %q, want 'A'", c, cell.Repr())
	}
}

func isEmptyCell(t *testing.T, g *Grid, c Coords) {
	t.Helper()
	if !g.CellAt(c).IsEmpty() {
		t.Errorf("cell %v = %q, want empty", c, g.CellAt(c).Repr())
	}
}

func TestGridScrollLeft(t *testing.T) {
	run := func(g *Grid, width, height int) {
		g.Scroll(Left, 3)
		for y := 0; y < g.Height(); y++ {
			isEmptyCell(t, g, Coords{X: 0, Y: y})
			isEmptyCell(t, g, Coords{X: 1, Y: y})
			isEmptyCell(t, g, Coords{X: 2, Y: y})
			isA(t, g, Coords{X: 3, Y: y})
		}
		if g.Width() != width || g.Height() != height {
			t.Errorf("dims = %dx%d, want %dx%d", g.Width(), g.Height(), width, height)
		}
	}
	run(cappedGrid(8, 8), 8, 8)
	run(cappedGrid(10, 8), 10, 8)
}

func TestGridScrollRight(t *testing.T) {
	run := func(g *Grid, width, height int) {
		g.Scroll(Right, 3)
		w := g.Width()
		for y := 0; y < g.Height(); y++ {
			isEmptyCell(t, g, Coords{X: w - 1, Y: y})
			isEmptyCell(t, g, Coords{X: w - 2, Y: y})
			isEmptyCell(t, g, Coords{X: w - 3, Y: y})
			isA(t, g, Coords{X: w - 4, Y: y})
		}
		if g.Width() != width || g.Height() != height {
			t.Errorf("dims = %dx%d, want %dx%d", g.Width(), g.Height(), width, height)
		}
	}
	run(cappedGrid(8, 8), 8, 8)
	run(cappedGrid(10, 8), 10, 8)
}

func TestGridScrollUp(t *testing.T) {
	run := func(g *Grid, width, height int) {
		g.Scroll(Up, 3)
		for x := 0; x < g.Width(); x++ {
			isEmptyCell(t, g, Coords{X: x, Y: 0})
			isEmptyCell(t, g, Coords{X: x, Y: 1})
			isEmptyCell(t, g, Coords{X: x, Y: 2})
			isA(t, g, Coords{X: x, Y: 3})
		}
		if g.Width() != width || g.Height() != height {
			t.Errorf("dims = %dx%d, want %dx%d", g.Width(), g.Height(), width, height)
		}
	}
	run(cappedGrid(8, 8), 8, 8)
	run(cappedGrid(8, 10), 8, 10)
}

func TestGridScrollDown(t *testing.T) {
	run := func(g *Grid, width, height int) {
		g.Scroll(Down, 3)
		h := g.Height()
		for x := 0; x < g.Width(); x++ {
			isEmptyCell(t, g, Coords{X: x, Y: h - 1})
			isEmptyCell(t, g, Coords{X: x, Y: h - 2})
			isEmptyCell(t, g, Coords{X: x, Y: h - 3})
			isA(t, g, Coords{X: x, Y: h - 4})
		}
		if g.Width() != width || g.Height() != height {
			t.Errorf("dims = %dx%d, want %dx%d", g.Width(), g.Height(), width, height)
		}
	}
	run(cappedGrid(8, 8), 8, 8)
	run(cappedGrid(8, 10), 8, 10)
}

func TestGridScrollClears(t *testing.T) {
	g := cappedGrid(8, 8)
	g.Scroll(Up, 8)
	for _, c := range (Region{Left: 0, Top: 0, Right: 8, Bottom: 8}).Coords() {
		isEmptyCell(t, g, c)
	}
}

func TestGridScrollbackExtends(t *testing.T) {
	g := newGrid(gridSettings{width: 8, height: 8, retainOffscreen: true, scrollback: 4})
	fillGrid(g)
	ext := g.Scroll(Down, 2)
	if ext != 2 {
		t.Fatalf("extension = %d, want 2", ext)
	}
	if g.Height() != 10 {
		t.Fatalf("height = %d, want 10", g.Height())
	}
	// Content stays put; new rows are appended below.
	isA(t, g, Coords{X: 0, Y: 7})
	isEmptyCell(t, g, Coords{X: 0, Y: 8})

	// Capacity is now exhausted; further scrolling shifts.
	ext = g.Scroll(Down, 6)
	if ext != 2 {
		t.Fatalf("second extension = %d, want 2", ext)
	}
	if g.Height() != 12 {
		t.Fatalf("height = %d, want 12", g.Height())
	}
}

func TestGridMoveover(t *testing.T) {
	g := cappedGrid(8, 8)
	g.Cell(Coords{X: 1, Y: 1}).Content = CellContent{Kind: ContentChar, Rune: 'B'}
	g.Moveover(Coords{X: 1, Y: 1}, Coords{X: 3, Y: 3})
	isEmptyCell(t, g, Coords{X: 1, Y: 1})
	if g.CellAt(Coords{X: 3, Y: 3}).Content.Rune != 'B' {
		t.Error("moveover did not carry the cell")
	}
}

func TestGridMoveOutOfExtension(t *testing.T) {
	g := cappedGrid(8, 8)
	src := Coords{X: 2, Y: 2}
	g.Cell(Coords{X: 3, Y: 2}).Content = CellContent{Kind: ContentExtension, Source: src}
	g.Cell(Coords{X: 4, Y: 2}).Content = CellContent{Kind: ContentExtension, Source: src}

	if got := g.MoveOutOfExtension(Coords{X: 4, Y: 2}, Left); got != src {
		t.Errorf("leftward resolution = %v, want %v", got, src)
	}
	if got := g.MoveOutOfExtension(Coords{X: 3, Y: 2}, Right); got != (Coords{X: 5, Y: 2}) {
		t.Errorf("rightward resolution = %v, want (5,2)", got)
	}
	if got := g.MoveOutOfExtension(Coords{X: 5, Y: 2}, Left); got != (Coords{X: 5, Y: 2}) {
		t.Errorf("non-extension cell moved: %v", got)
	}
}

func TestGridCellToExtend(t *testing.T) {
	g := cappedGrid(8, 8)
	src := Coords{X: 2, Y: 0}
	g.Cell(Coords{X: 3, Y: 0}).Content = CellContent{Kind: ContentExtension, Source: src}

	if c, ok := g.CellToExtend(Coords{X: 4, Y: 0}); !ok || c != src {
		t.Errorf("CellToExtend through extension = %v,%v, want %v", c, ok, src)
	}
	if c, ok := g.CellToExtend(Coords{X: 2, Y: 0}); !ok || c != (Coords{X: 1, Y: 0}) {
		t.Errorf("CellToExtend plain = %v,%v, want (1,0)", c, ok)
	}
}

func TestGridBestFit(t *testing.T) {
	g := cappedGrid(8, 8)
	if got := g.BestFit(NewRegion(6, 0, 10, 1)); got != (Coords{X: 4, Y: 0}) {
		t.Errorf("BestFit = %v, want (4,0)", got)
	}
	if got := g.BestFit(NewRegion(2, 2, 4, 3)); got != (Coords{X: 2, Y: 2}) {
		t.Errorf("BestFit within bounds = %v, want (2,2)", got)
	}
}
