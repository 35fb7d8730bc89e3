package panelterm

import "testing"

func testResizeSplit(t *testing.T, into Region, rule ResizeRule, wantKind SplitKind, wantLeft, wantRight Region) {
	t.Helper()
	oldArea := Region{Left: 0, Top: 0, Right: 8, Bottom: 8}
	kind, left, right := resizeSplit(oldArea, into, Horizontal(4), rule)
	if kind != wantKind {
		t.Errorf("kind = %+v, want %+v", kind, wantKind)
	}
	if left != wantLeft {
		t.Errorf("left = %+v, want %+v", left, wantLeft)
	}
	if right != wantRight {
		t.Errorf("right = %+v, want %+v", right, wantRight)
	}
}

func TestResizeSplitInto4x4(t *testing.T) {
	into := Region{Left: 0, Top: 0, Right: 4, Bottom: 4}
	testResizeSplit(t, into, RuleMaxLeftTop, Horizontal(3),
		Region{Left: 0, Top: 0, Right: 4, Bottom: 3}, Region{Left: 0, Top: 3, Right: 4, Bottom: 4})
	testResizeSplit(t, into, RuleMaxRightBottom, Horizontal(1),
		Region{Left: 0, Top: 0, Right: 4, Bottom: 1}, Region{Left: 0, Top: 1, Right: 4, Bottom: 4})
	testResizeSplit(t, into, RulePercentage, Horizontal(2),
		Region{Left: 0, Top: 0, Right: 4, Bottom: 2}, Region{Left: 0, Top: 2, Right: 4, Bottom: 4})
}

func TestResizeSplitInto6x6(t *testing.T) {
	into := Region{Left: 0, Top: 0, Right: 6, Bottom: 6}
	testResizeSplit(t, into, RuleMaxLeftTop, Horizontal(4),
		Region{Left: 0, Top: 0, Right: 6, Bottom: 4}, Region{Left: 0, Top: 4, Right: 6, Bottom: 6})
	testResizeSplit(t, into, RuleMaxRightBottom, Horizontal(2),
		Region{Left: 0, Top: 0, Right: 6, Bottom: 2}, Region{Left: 0, Top: 2, Right: 6, Bottom: 6})
	testResizeSplit(t, into, RulePercentage, Horizontal(3),
		Region{Left: 0, Top: 0, Right: 6, Bottom: 3}, Region{Left: 0, Top: 3, Right: 6, Bottom: 6})
}

func TestResizeSplitInto16x16(t *testing.T) {
	into := Region{Left: 0, Top: 0, Right: 16, Bottom: 16}
	testResizeSplit(t, into, RuleMaxLeftTop, Horizontal(12),
		Region{Left: 0, Top: 0, Right: 16, Bottom: 12}, Region{Left: 0, Top: 12, Right: 16, Bottom: 16})
	testResizeSplit(t, into, RuleMaxRightBottom, Horizontal(4),
		Region{Left: 0, Top: 0, Right: 16, Bottom: 4}, Region{Left: 0, Top: 4, Right: 16, Bottom: 16})
	testResizeSplit(t, into, RulePercentage, Horizontal(8),
		Region{Left: 0, Top: 0, Right: 16, Bottom: 8}, Region{Left: 0, Top: 8, Right: 16, Bottom: 16})
}

func TestRegionSplitVertical(t *testing.T) {
	r := Region{Left: 0, Top: 0, Right: 8, Bottom: 8}
	kind, left, right := r.Split(Vertical(4), RulePercentage)
	if kind != Vertical(4) {
		t.Errorf("kind = %+v", kind)
	}
	if left != (Region{Left: 0, Top: 0, Right: 4, Bottom: 8}) {
		t.Errorf("left = %+v", left)
	}
	if right != (Region{Left: 4, Top: 0, Right: 8, Bottom: 8}) {
		t.Errorf("right = %+v", right)
	}
}

func TestRegionSplitClamps(t *testing.T) {
	r := Region{Left: 0, Top: 0, Right: 8, Bottom: 4}
	kind, _, _ := r.Split(Horizontal(9), RuleMaxLeftTop)
	if kind != Horizontal(3) {
		t.Errorf("overflow clamp = %+v, want Horizontal(3)", kind)
	}
	kind, _, _ = r.Split(Horizontal(0), RulePercentage)
	if kind != Horizontal(1) {
		t.Errorf("underflow clamp = %+v, want Horizontal(1)", kind)
	}
}
