package panelterm

import "testing"

func TestTooltipBasicPassesThrough(t *testing.T) {
	tip := NewBasicTooltip("hint")
	if _, action := tip.Interact(DownArrow); action != TooltipPass {
		t.Error("basic tooltips must not intercept keys")
	}
}

func TestTooltipMenuNavigation(t *testing.T) {
	tip := NewMenuTooltip([]string{"one", "two", "three"})

	// Up before entering the menu passes through.
	if _, action := tip.Interact(UpArrow); action != TooltipPass {
		t.Error("up with no position should pass through")
	}
	// Down enters at the first option.
	if _, action := tip.Interact(DownArrow); action != TooltipConsumed || tip.Position != 0 {
		t.Errorf("down: position = %d", tip.Position)
	}
	tip.Interact(DownArrow)
	tip.Interact(DownArrow)
	if tip.Position != 2 {
		t.Errorf("position = %d, want 2", tip.Position)
	}
	// Up saturates at zero.
	tip.Interact(UpArrow)
	tip.Interact(UpArrow)
	tip.Interact(UpArrow)
	if tip.Position != 0 {
		t.Errorf("position = %d, want 0", tip.Position)
	}
}

func TestTooltipMenuSelection(t *testing.T) {
	tip := NewMenuTooltip([]string{"one", "two"})
	tip.Interact(DownArrow)
	tip.Interact(DownArrow)
	n, action := tip.Interact(Enter)
	if action != TooltipSelect || n != 1 {
		t.Fatalf("selection = %d,%v", n, action)
	}
	if tip.Position != -1 {
		t.Error("selection should clear the menu position")
	}
	// Enter with no position passes through.
	if _, action := tip.Interact(Enter); action != TooltipPass {
		t.Error("enter with no position should pass through")
	}
}

func TestTooltipOtherKeysPass(t *testing.T) {
	tip := NewMenuTooltip([]string{"one"})
	if _, action := tip.Interact(Char('x')); action != TooltipPass {
		t.Error("printable keys must pass through a menu")
	}
}
