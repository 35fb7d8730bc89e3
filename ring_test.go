package panelterm

import "testing"

func namedPanel(n int) *Panel {
	return &Panel{Kind: PanelFill, Grid: nil, Image: &ImageCell{Width: n}}
}

func panelName(p *Panel) int {
	return p.Image.Width
}

func oneRing() *ring {
	return newRing(namedPanel(0))
}

func threeRing() *ring {
	r := newRing(namedPanel(0))
	r.push(namedPanel(1))
	r.push(namedPanel(2))
	return r
}

func ringOrder(r *ring) []int {
	var out []int
	for _, p := range r.panels() {
		out = append(out, panelName(p))
	}
	return out
}

func checkOrder(t *testing.T, r *ring, want []int) {
	t.Helper()
	got := ringOrder(r)
	if len(got) != len(want) {
		t.Fatalf("ring order = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("ring order = %v, want %v", got, want)
		}
	}
}

func TestRingPush(t *testing.T) {
	r := oneRing()
	r.push(namedPanel(5))
	checkOrder(t, r, []int{5, 0})

	r = threeRing()
	r.push(namedPanel(5))
	checkOrder(t, r, []int{5, 2, 1, 0})
}

func TestRingPop(t *testing.T) {
	r := oneRing()
	r.pop()
	checkOrder(t, r, []int{0})

	r = threeRing()
	r.pop()
	checkOrder(t, r, []int{1, 0})
}

func TestRingRotateDown(t *testing.T) {
	r := oneRing()
	r.rotateDown()
	checkOrder(t, r, []int{0})

	r = threeRing()
	r.rotateDown()
	checkOrder(t, r, []int{1, 0, 2})
}

func TestRingRotateUp(t *testing.T) {
	r := oneRing()
	r.rotateUp()
	checkOrder(t, r, []int{0})

	r = threeRing()
	r.rotateUp()
	checkOrder(t, r, []int{0, 2, 1})
}

func TestRingPushPopRoundTrip(t *testing.T) {
	r := threeRing()
	before := ringOrder(r)
	r.push(namedPanel(9))
	r.pop()
	checkOrder(t, r, before)
}
