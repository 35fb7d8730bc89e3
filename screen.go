package panelterm

// Screen is the recursive screen-section tree plus the tag of the active
// section. Commands addressed by optional tag default to the active one.
type Screen struct {
	active uint64
	root   *ScreenSection
	cfg    *Config
}

// NewScreen creates a screen with a single root grid section tagged 0.
func NewScreen(width, height int, cfg *Config) *Screen {
	return &Screen{
		root: newSection(0, Region{Left: 0, Top: 0, Right: maxInt(width, 1), Bottom: maxInt(height, 1)}, true, cfg),
		cfg:  cfg,
	}
}

// Area returns the full screen region.
func (s *Screen) Area() Region {
	return s.root.area
}

// ActiveTag returns the tag of the active section.
func (s *Screen) ActiveTag() uint64 {
	return s.active
}

func (s *Screen) find(tag *uint64) *ScreenSection {
	t := s.active
	if tag != nil {
		t = *tag
	}
	return s.root.find(t)
}

// Find locates a section by tag.
func (s *Screen) Find(tag uint64) *ScreenSection {
	return s.root.find(tag)
}

// ActiveGrid returns the grid commands are applied to: the Fill reached
// from the active section, descending the left child of any split.
func (s *Screen) ActiveGrid() *CharGrid {
	section := s.root.find(s.active)
	if section == nil {
		return nil
	}
	for section != nil && !section.IsFill() {
		left, _ := section.children()
		section = left
	}
	if section == nil {
		return nil
	}
	return section.Grid()
}

// Split divides the addressed section in two. The save side inherits the
// existing panel and, if the target was active, the active tag.
func (s *Screen) Split(save SaveGrid, kind SplitKind, rule ResizeRule, tag *uint64, lTag, rTag uint64, retainOffscreen bool) {
	section := s.find(tag)
	if section == nil {
		return
	}
	if s.root.find(lTag) != nil || s.root.find(rTag) != nil {
		// Tags must stay unique within the tree.
		return
	}
	section.split(save, kind, rule, lTag, rTag, retainOffscreen)
	if tag == nil || *tag == s.active || section.find(s.active) != nil {
		if save == SaveLeft {
			s.active = lTag
		} else {
			s.active = rTag
		}
	}
}

// Unsplit collapses the split at the tag, keeping the save side. If the
// active section was on either child, the target becomes active.
func (s *Screen) Unsplit(save SaveGrid, tag uint64) {
	section := s.root.find(tag)
	if section == nil {
		return
	}
	if left, right := section.children(); left != nil {
		if left.find(s.active) != nil || right.find(s.active) != nil {
			s.active = tag
		}
	}
	section.unsplit(save)
}

// AdjustSplit moves the split boundary of the addressed section.
func (s *Screen) AdjustSplit(tag uint64, kind SplitKind, rule ResizeRule) {
	section := s.root.find(tag)
	if section == nil || section.ring.top.Kind != PanelSplit {
		return
	}
	section.ring.top.Split.adjustSplit(kind, rule)
}

// Push places a fresh grid panel on the addressed section's ring.
func (s *Screen) Push(tag *uint64, retainOffscreen bool) {
	if section := s.find(tag); section != nil {
		section.push(retainOffscreen)
	}
}

// Pop restores the addressed section's previous panel.
func (s *Screen) Pop(tag *uint64) {
	if section := s.find(tag); section != nil {
		section.pop()
	}
}

// RotateUp and RotateDown cycle the addressed section's ring.
func (s *Screen) RotateUp(tag *uint64) {
	if section := s.find(tag); section != nil {
		section.rotateUp()
	}
}

func (s *Screen) RotateDown(tag *uint64) {
	if section := s.find(tag); section != nil {
		section.rotateDown()
	}
}

// Switch makes the tag active, ignored unless it addresses a grid leaf.
func (s *Screen) Switch(tag uint64) {
	if section := s.root.find(tag); section != nil && section.IsFill() && section.Grid() != nil {
		s.active = tag
	}
}

// Resize changes the screen dimensions; splits redistribute space per their
// resize rules and every grid preserves its existing cells.
func (s *Screen) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.root.shiftInto(Region{Left: 0, Top: 0, Right: width, Bottom: height})
}

// Panels returns the visible Fill leaves in reading order.
func (s *Screen) Panels() []*ScreenSection {
	return s.root.visibleLeaves(nil)
}

// CellAt resolves screen coordinates to the cell shown there.
func (s *Screen) CellAt(c Coords) CharCell {
	return s.root.cellAt(c)
}

// Cells returns every visible cell in reading order; the slice has exactly
// width x height entries.
func (s *Screen) Cells() []CharCell {
	area := s.root.area
	out := make([]CharCell, 0, area.Width()*area.Height())
	for _, c := range area.Coords() {
		out = append(out, s.root.cellAt(c))
	}
	return out
}
