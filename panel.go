package panelterm

// SaveGrid selects which side of a split inherits the existing panel, or
// which side survives an unsplit.
type SaveGrid int

const (
	SaveLeft SaveGrid = iota
	SaveRight
)

// splitAxis is the orientation of a split.
type splitAxis int

const (
	axisHorizontal splitAxis = iota
	axisVertical
)

// SplitKind describes a split: Horizontal(n) stacks two sections with the
// boundary n rows from the top, Vertical(n) places them side by side with
// the boundary n columns from the left. n is in the parent area's local
// units.
type SplitKind struct {
	Axis splitAxis
	N    int
}

// Horizontal splits top/bottom at row n.
func Horizontal(n int) SplitKind {
	return SplitKind{Axis: axisHorizontal, N: n}
}

// Vertical splits left/right at column n.
func Vertical(n int) SplitKind {
	return SplitKind{Axis: axisVertical, N: n}
}

// ResizeRule controls how a split redistributes space when its area changes.
type ResizeRule int

const (
	// RulePercentage scales the split point proportionally.
	RulePercentage ResizeRule = iota
	// RuleMaxLeftTop gives the left or top side all new space.
	RuleMaxLeftTop
	// RuleMaxRightBottom gives the right or bottom side all new space.
	RuleMaxRightBottom
)

// Split divides a region per the kind, clamping the split point so both
// sides keep positive extent. The rule biases which side survives a split
// point outside the region.
func (r Region) Split(kind SplitKind, rule ResizeRule) (SplitKind, Region, Region) {
	var dim int
	if kind.Axis == axisHorizontal {
		dim = r.Height()
	} else {
		dim = r.Width()
	}
	n := kind.N
	if n < 1 {
		n = 1
	}
	if n >= dim {
		if rule == RuleMaxRightBottom {
			n = 1
		} else {
			n = dim - 1
		}
	}
	if n < 1 {
		n = 1
	}
	kind.N = n
	if kind.Axis == axisHorizontal {
		left := Region{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Top + n}
		right := Region{Left: r.Left, Top: r.Top + n, Right: r.Right, Bottom: r.Bottom}
		return kind, left, right
	}
	left := Region{Left: r.Left, Top: r.Top, Right: r.Left + n, Bottom: r.Bottom}
	right := Region{Left: r.Left + n, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
	return kind, left, right
}

// resizeSplit recomputes a split for a new area. Percentage splits scale
// the boundary. MaxLeftTop gives the left/top side all new space and holds
// its size otherwise; MaxRightBottom mirrors that for the right/bottom
// side, so shrinking moves the boundary instead of the favored side.
func resizeSplit(oldArea, newArea Region, kind SplitKind, rule ResizeRule) (SplitKind, Region, Region) {
	oldDim, newDim := oldArea.Height(), newArea.Height()
	if kind.Axis == axisVertical {
		oldDim, newDim = oldArea.Width(), newArea.Width()
	}
	switch {
	case rule == RulePercentage && oldDim != newDim:
		kind.N = int(float32(kind.N) / float32(oldDim) * float32(newDim))
	case rule == RuleMaxLeftTop && newDim > oldDim:
		kind.N += newDim - oldDim
	case rule == RuleMaxRightBottom && newDim < oldDim:
		kind.N += newDim - oldDim
	}
	return newArea.Split(kind, rule)
}

// PanelKind discriminates the panel variants.
type PanelKind int

const (
	// PanelFill is a leaf holding a grid or an image.
	PanelFill PanelKind = iota
	// PanelSplit holds two child sections.
	PanelSplit
	// PanelDead is a placeholder left behind while panels are moved.
	PanelDead
)

// Panel is one layer of a screen section's ring.
type Panel struct {
	Kind  PanelKind
	Grid  *CharGrid
	Image *ImageCell
	Split *SplitSection
}

func fillPanel(grid *CharGrid) *Panel {
	return &Panel{Kind: PanelFill, Grid: grid}
}

func splitPanel(split *SplitSection) *Panel {
	return &Panel{Kind: PanelSplit, Split: split}
}

// resize adjusts the panel to a new area.
func (p *Panel) resize(area Region) {
	switch p.Kind {
	case PanelFill:
		if p.Grid != nil {
			p.Grid.resize(area.Width(), area.Height())
		}
	case PanelSplit:
		p.Split.shiftInto(area)
	}
}

func (p *Panel) find(tag uint64) *ScreenSection {
	if p.Kind != PanelSplit {
		return nil
	}
	return p.Split.find(tag)
}

// SplitSection is the interior node of the screen tree: two child sections
// whose areas are disjoint and partition the parent's.
type SplitSection struct {
	left  *ScreenSection
	right *ScreenSection
	area  Region
	kind  SplitKind
	rule  ResizeRule
}

func newSplitSection(left, right *ScreenSection, area Region, kind SplitKind, rule ResizeRule) *SplitSection {
	return &SplitSection{left: left, right: right, area: area, kind: kind, rule: rule}
}

// Children returns the left/top and right/bottom child sections.
func (s *SplitSection) Children() (*ScreenSection, *ScreenSection) {
	return s.left, s.right
}

// Kind returns the current split boundary.
func (s *SplitSection) Kind() SplitKind {
	return s.kind
}

func (s *SplitSection) countLeaves() int {
	return s.left.countLeaves() + s.right.countLeaves()
}

func (s *SplitSection) find(tag uint64) *ScreenSection {
	if found := s.left.find(tag); found != nil {
		return found
	}
	return s.right.find(tag)
}

// shiftInto moves and resizes the split to occupy a new area.
func (s *SplitSection) shiftInto(area Region) {
	kind, lArea, rArea := resizeSplit(s.area, area, s.kind, s.rule)
	s.area = area
	s.kind = kind
	s.left.shiftInto(lArea)
	s.right.shiftInto(rArea)
}

// adjustSplit moves the boundary of an existing split.
func (s *SplitSection) adjustSplit(kind SplitKind, rule ResizeRule) {
	newKind, lArea, rArea := s.area.Split(kind, rule)
	s.kind = newKind
	s.rule = rule
	s.left.shiftInto(lArea)
	s.right.shiftInto(rArea)
}

// cellAt resolves section-local coordinates through the split.
func (s *SplitSection) cellAt(c Coords) CharCell {
	if s.kind.Axis == axisHorizontal {
		if c.Y < s.kind.N {
			return s.left.cellAt(c)
		}
		return s.right.cellAt(Coords{X: c.X, Y: c.Y - s.kind.N})
	}
	if c.X < s.kind.N {
		return s.left.cellAt(c)
	}
	return s.right.cellAt(Coords{X: c.X - s.kind.N, Y: c.Y})
}
