package panelterm

import "strings"

// LineContent returns the text on one row of the active grid, trimming
// trailing whitespace. Extension cells are skipped so wide characters
// appear once.
func (t *Terminal) LineContent(row int) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	grid := t.screen.ActiveGrid()
	if grid == nil {
		return ""
	}
	return gridLine(grid, row)
}

func gridLine(grid *CharGrid, row int) string {
	bounds := grid.Bounds()
	if row < 0 || row >= bounds.Height() {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < bounds.Width(); x++ {
		cell := grid.CellAt(Coords{X: x, Y: row})
		switch cell.Content.Kind {
		case ContentChar:
			sb.WriteRune(cell.Content.Rune)
		case ContentGrapheme:
			sb.WriteString(cell.Content.Text)
		case ContentExtension, ContentImage:
			// Rendered by the primary cell.
		default:
			sb.WriteByte(' ')
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// String returns the active grid's content as a newline-separated string
// with trailing empty lines omitted. Implements fmt.Stringer.
func (t *Terminal) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	grid := t.screen.ActiveGrid()
	if grid == nil {
		return ""
	}
	lines := make([]string, grid.Bounds().Height())
	last := -1
	for i := range lines {
		lines[i] = gridLine(grid, i)
		if lines[i] != "" {
			last = i
		}
	}
	if last < 0 {
		return ""
	}
	return strings.Join(lines[:last+1], "\n")
}

// Snapshot returns the whole screen's visible content, every panel
// composed, as one line per screen row.
func (t *Terminal) Snapshot() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	area := t.screen.Area()
	lines := make([]string, area.Height())
	for y := range lines {
		var sb strings.Builder
		for x := 0; x < area.Width(); x++ {
			cell := t.screen.CellAt(Coords{X: x, Y: y})
			switch cell.Content.Kind {
			case ContentChar:
				sb.WriteRune(cell.Content.Rune)
			case ContentGrapheme:
				sb.WriteString(cell.Content.Text)
			case ContentExtension, ContentImage:
			default:
				sb.WriteByte(' ')
			}
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return lines
}
