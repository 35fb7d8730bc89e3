package panelterm

// ScreenSection is a tagged rectangular region of the screen owning a ring
// of panels. The top panel is either a Fill leaf or a Split with two child
// sections.
type ScreenSection struct {
	tag  uint64
	area Region
	ring *ring
	cfg  *Config
}

// newSection creates a section filled with a fresh blank grid.
func newSection(tag uint64, area Region, retainOffscreen bool, cfg *Config) *ScreenSection {
	grid := newCharGrid(area.Width(), area.Height(), retainOffscreen, cfg)
	return &ScreenSection{tag: tag, area: area, ring: newRing(fillPanel(grid)), cfg: cfg}
}

func sectionWithPanel(tag uint64, area Region, panel *Panel, cfg *Config) *ScreenSection {
	return &ScreenSection{tag: tag, area: area, ring: newRing(panel), cfg: cfg}
}

// Tag returns the section's unique tag.
func (s *ScreenSection) Tag() uint64 {
	return s.tag
}

// Area returns the section's region of the screen.
func (s *ScreenSection) Area() Region {
	return s.area
}

// Top returns the section's visible panel.
func (s *ScreenSection) Top() *Panel {
	return s.ring.top
}

// IsFill returns true if the visible panel is a leaf rather than a split.
func (s *ScreenSection) IsFill() bool {
	return s.ring.top.Kind == PanelFill
}

// Grid returns the visible panel's grid, or nil if the section is split or
// holds an image fill.
func (s *ScreenSection) Grid() *CharGrid {
	if s.ring.top.Kind != PanelFill {
		return nil
	}
	return s.ring.top.Grid
}

// children returns the visible split's child sections, or nil.
func (s *ScreenSection) children() (*ScreenSection, *ScreenSection) {
	if s.ring.top.Kind != PanelSplit {
		return nil, nil
	}
	return s.ring.top.Split.Children()
}

func (s *ScreenSection) countLeaves() int {
	switch s.ring.top.Kind {
	case PanelSplit:
		return s.ring.top.Split.countLeaves()
	default:
		return 1
	}
}

// find locates the section with the tag in this subtree, searching every
// panel of the ring.
func (s *ScreenSection) find(tag uint64) *ScreenSection {
	if s.tag == tag {
		return s
	}
	for _, panel := range s.ring.panels() {
		if found := panel.find(tag); found != nil {
			return found
		}
	}
	return nil
}

// split replaces the visible panel with a split whose save side inherits it;
// the other side receives a fresh blank grid. When retainOffscreen is false
// the ring is reset, discarding any buried panels.
func (s *ScreenSection) split(save SaveGrid, kind SplitKind, rule ResizeRule, lTag, rTag uint64, retainOffscreen bool) {
	kind, lArea, rArea := s.area.Split(kind, rule)
	saved := s.ring.top
	var left, right *ScreenSection
	if save == SaveLeft {
		saved.resize(lArea)
		left = sectionWithPanel(lTag, lArea, saved, s.cfg)
		right = newSection(rTag, rArea, retainOffscreen, s.cfg)
	} else {
		saved.resize(rArea)
		left = newSection(lTag, lArea, retainOffscreen, s.cfg)
		right = sectionWithPanel(rTag, rArea, saved, s.cfg)
	}
	top := splitPanel(newSplitSection(left, right, s.area, kind, rule))
	if retainOffscreen {
		s.ring.top = top
	} else {
		s.ring = newRing(top)
	}
}

// unsplit removes the visible split, keeping the save side's ring resized to
// this section's area. A non-split section is left unchanged.
func (s *ScreenSection) unsplit(save SaveGrid) {
	if s.ring.top.Kind != PanelSplit {
		return
	}
	split := s.ring.top.Split
	var saved *ScreenSection
	if save == SaveLeft {
		saved = split.left
	} else {
		saved = split.right
	}
	savedRing := saved.ring
	saved.ring = newRing(&Panel{Kind: PanelDead})
	for _, panel := range savedRing.panels() {
		panel.resize(s.area)
	}
	s.ring.replaceWith(savedRing)
}

// push places a fresh blank grid panel on top of the ring.
func (s *ScreenSection) push(retainOffscreen bool) {
	grid := newCharGrid(s.area.Width(), s.area.Height(), retainOffscreen, s.cfg)
	s.ring.push(fillPanel(grid))
}

// pop restores the previously visible panel.
func (s *ScreenSection) pop() {
	s.ring.pop()
}

func (s *ScreenSection) rotateUp() {
	s.ring.rotateUp()
}

func (s *ScreenSection) rotateDown() {
	s.ring.rotateDown()
}

// shiftInto moves and resizes the section, adjusting every panel in its
// ring.
func (s *ScreenSection) shiftInto(area Region) {
	s.area = area
	for _, panel := range s.ring.panels() {
		panel.resize(area)
	}
}

// cellAt resolves section-local coordinates to the cell shown there.
func (s *ScreenSection) cellAt(c Coords) CharCell {
	switch s.ring.top.Kind {
	case PanelFill:
		if s.ring.top.Grid != nil {
			return s.ring.top.Grid.CellAt(c)
		}
		return emptyCell
	case PanelSplit:
		return s.ring.top.Split.cellAt(c)
	default:
		return emptyCell
	}
}

// visibleLeaves appends the Fill leaves of this section's subtree in reading
// order.
func (s *ScreenSection) visibleLeaves(out []*ScreenSection) []*ScreenSection {
	switch s.ring.top.Kind {
	case PanelFill:
		return append(out, s)
	case PanelSplit:
		left, right := s.ring.top.Split.Children()
		out = left.visibleLeaves(out)
		return right.visibleLeaves(out)
	default:
		return out
	}
}
