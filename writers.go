package panelterm

// CharData is content that knows how to write itself into a grid at the
// cursor. write returns the coordinates of the rightmost cell written on the
// cursor's row, from which the cursor advances.
type CharData interface {
	write(cg *CharGrid) Coords
	repr() string
}

// charDatum is a single narrow character.
type charDatum rune

func (d charDatum) write(cg *CharGrid) Coords {
	coords := cg.cursor.Coords
	if cell := cg.grid.Writeable(coords); cell != nil {
		cell.Content = CellContent{Kind: ContentChar, Rune: rune(d)}
		cell.Styles = cg.textStyles
	}
	return coords
}

func (d charDatum) repr() string {
	return string(rune(d))
}

// wideChar is a character occupying more than one column. The primary cell
// holds the character; the cells it covers to the right hold extensions.
type wideChar struct {
	r     rune
	width int
}

func (d wideChar) write(cg *CharGrid) Coords {
	cur := cg.wrapForWidth(d.width)
	coords := cg.grid.BestFit(NewRegion(cur.X, cur.Y, cur.X+d.width, cur.Y+1))
	if cell := cg.grid.Writeable(coords); cell != nil {
		cell.Content = CellContent{Kind: ContentChar, Rune: d.r}
		cell.Styles = cg.textStyles
	}
	for i := 1; i < d.width; i++ {
		ext := Coords{X: coords.X + i, Y: coords.Y}
		if cell := cg.grid.Writeable(ext); cell != nil {
			cell.Content = CellContent{Kind: ContentExtension, Source: coords}
			cell.Styles = cg.textStyles
		}
	}
	return Coords{X: coords.X + d.width - 1, Y: coords.Y}
}

func (d wideChar) repr() string {
	return string(d.r)
}

// charExtender is a standalone combining character. It attaches to the cell
// before the cursor, walking extension cells back to their primary; if no
// cell can be extended it is written as a regular character.
type charExtender rune

func (d charExtender) write(cg *CharGrid) Coords {
	cur := cg.cursor.Coords
	if coords, ok := cg.grid.CellToExtend(cur); ok {
		if cell := cg.grid.Writeable(coords); cell != nil {
			cell.ExtendBy(rune(d))
			cell.Styles = cg.textStyles
		}
		return coords
	}
	if cell := cg.grid.Writeable(cur); cell != nil {
		cell.Content = CellContent{Kind: ContentChar, Rune: rune(d)}
		cell.Styles = cg.textStyles
	}
	return cur
}

func (d charExtender) repr() string {
	return string(rune(d))
}

// graphemeData is a complete multi-code-point cluster.
type graphemeData struct {
	text  string
	width int
}

func (d graphemeData) write(cg *CharGrid) Coords {
	cur := cg.wrapForWidth(d.width)
	coords := cg.grid.BestFit(NewRegion(cur.X, cur.Y, cur.X+d.width, cur.Y+1))
	if cell := cg.grid.Writeable(coords); cell != nil {
		cell.Content = CellContent{Kind: ContentGrapheme, Text: d.text}
		cell.Styles = cg.textStyles
	}
	for i := 1; i < d.width; i++ {
		ext := Coords{X: coords.X + i, Y: coords.Y}
		if cell := cg.grid.Writeable(ext); cell != nil {
			cell.Content = CellContent{Kind: ContentExtension, Source: coords}
			cell.Styles = cg.textStyles
		}
	}
	return Coords{X: coords.X + d.width - 1, Y: coords.Y}
}

func (d graphemeData) repr() string {
	return d.text
}

// imageData places an inline image over a w x h cell rectangle starting at
// the cursor, clipped to the grid. The primary cell stores the image; every
// other covered cell holds an extension.
type imageData struct {
	image ImageCell
}

func (d imageData) write(cg *CharGrid) Coords {
	w := maxInt(d.image.Width, 1)
	h := maxInt(d.image.Height, 1)
	if mw := cg.grid.maxWidth(); mw >= 0 {
		w = minInt(w, mw)
	}
	if mh := cg.grid.maxHeight(); mh >= 0 {
		h = minInt(h, mh)
	}
	cur := cg.cursor.Coords
	coords := cg.grid.BestFit(NewRegion(cur.X, cur.Y, cur.X+w, cur.Y+1))
	img := d.image
	img.Width, img.Height = w, h
	if cell := cg.grid.Writeable(coords); cell != nil {
		cell.Content = CellContent{Kind: ContentImage, Image: &img}
		cell.Styles = cg.textStyles
	}
	area := Region{Left: coords.X, Top: coords.Y, Right: coords.X + w, Bottom: coords.Y + h}
	for _, c := range area.Coords() {
		if c == coords {
			continue
		}
		if cell := cg.grid.Writeable(c); cell != nil {
			cell.Content = CellContent{Kind: ContentExtension, Source: coords}
			cell.Styles = cg.textStyles
		}
	}
	return Coords{X: coords.X + w - 1, Y: coords.Y}
}

func (d imageData) repr() string {
	return "IMAGE"
}
