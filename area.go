package panelterm

// AreaKind discriminates the Area variants.
type AreaKind int

const (
	AreaCursorCell AreaKind = iota
	AreaCursorRow
	AreaCursorColumn
	AreaCursorTo
	AreaCursorBound
	AreaWholeScreen
	AreaBound
	AreaRows
	AreaColumns
	AreaBelowCursor
)

// Area describes a set of cells relative to the cursor and the screen, the
// addressing vocabulary of erase and style-in-area operations.
type Area struct {
	Kind     AreaKind
	Movement Movement
	Coords   Coords
	Region   Region
	A        int
	B        int
	Include  bool
}

var (
	CursorCell   = Area{Kind: AreaCursorCell}
	CursorRow    = Area{Kind: AreaCursorRow}
	CursorColumn = Area{Kind: AreaCursorColumn}
	WholeScreen  = Area{Kind: AreaWholeScreen}
)

// CursorTo covers the cells between the cursor and the result of a movement.
func CursorTo(m Movement) Area {
	return Area{Kind: AreaCursorTo, Movement: m}
}

// CursorBound covers the rectangle between the cursor and the coordinates.
func CursorBound(c Coords) Area {
	return Area{Kind: AreaCursorBound, Coords: c}
}

// Bound covers an explicit region.
func Bound(r Region) Area {
	return Area{Kind: AreaBound, Region: r}
}

// Rows covers full rows in [top, bottom).
func Rows(top, bottom int) Area {
	return Area{Kind: AreaRows, A: top, B: bottom}
}

// Columns covers full columns in [left, right).
func Columns(left, right int) Area {
	return Area{Kind: AreaColumns, A: left, B: right}
}

// BelowCursor covers all rows below the cursor, optionally including the
// cursor's own row.
func BelowCursor(include bool) Area {
	return Area{Kind: AreaBelowCursor, Include: include}
}

// coordsInArea resolves an area to the coordinates it covers, in the order
// area operations must visit them. Row-shaped areas walk in reading order,
// column-shaped areas walk column-major.
func coordsInArea(area Area, cursor Coords, screen Region, tabStop int) []Coords {
	switch area.Kind {
	case AreaCursorCell:
		return []Coords{cursor}
	case AreaCursorRow:
		return walkCoords(Coords{X: screen.Left, Y: cursor.Y}, Coords{X: screen.Right - 1, Y: cursor.Y}, screen, Right, tabStop)
	case AreaCursorColumn:
		return walkCoords(Coords{X: cursor.X, Y: screen.Top}, Coords{X: cursor.X, Y: screen.Bottom - 1}, screen, Down, tabStop)
	case AreaCursorTo:
		back := screen.MoveWithin(cursor, area.Movement, tabStop)
		return walkCoords(cursor, back, screen, area.Movement.Direction(cursor), tabStop)
	case AreaCursorBound:
		if area.Coords == cursor {
			return []Coords{cursor}
		}
		return NewRegion(cursor.X, cursor.Y, area.Coords.X, area.Coords.Y).Coords()
	case AreaWholeScreen:
		return screen.Coords()
	case AreaBound:
		return area.Region.Coords()
	case AreaRows:
		if area.A >= area.B {
			return nil
		}
		top := screen.YWithin(area.A)
		bottom := screen.YWithin(area.B - 1)
		return Region{Left: screen.Left, Top: top, Right: screen.Right, Bottom: bottom + 1}.Coords()
	case AreaColumns:
		if area.A >= area.B {
			return nil
		}
		left := screen.XWithin(area.A)
		right := screen.XWithin(area.B - 1)
		return walkCoords(Coords{X: left, Y: screen.Top}, Coords{X: right, Y: screen.Bottom - 1}, screen, Down, tabStop)
	case AreaBelowCursor:
		if area.Include {
			return Region{Left: screen.Left, Top: cursor.Y, Right: screen.Right, Bottom: screen.Bottom}.Coords()
		}
		if cursor.Y == screen.Bottom-1 {
			return nil
		}
		return Region{Left: screen.Left, Top: cursor.Y + 1, Right: screen.Right, Bottom: screen.Bottom}.Coords()
	}
	return nil
}

// walkCoords steps from one coordinate to another within a region, wrapping
// in the given direction, yielding both endpoints.
func walkCoords(from, to Coords, region Region, dir Direction, tabStop int) []Coords {
	limit := region.Width() * region.Height()
	out := make([]Coords, 0, limit)
	point := from
	for i := 0; i <= limit; i++ {
		out = append(out, point)
		if point == to {
			return out
		}
		next := region.MoveWithin(point, To(dir, 1, true), tabStop)
		if next == point {
			return out
		}
		point = next
	}
	return out
}

func (a Area) String() string {
	switch a.Kind {
	case AreaCursorCell:
		return "CURSOR CELL"
	case AreaCursorRow:
		return "CURSOR ROW"
	case AreaCursorColumn:
		return "CURSOR COLUMN"
	case AreaCursorTo:
		return "CURSOR TO " + a.Movement.String()
	case AreaCursorBound:
		return "CURSOR BOUND"
	case AreaWholeScreen:
		return "WHOLE SCREEN"
	case AreaBound:
		return "BOUND"
	case AreaRows:
		return "ROWS"
	case AreaColumns:
		return "COLUMNS"
	default:
		return "BELOW CURSOR"
	}
}
