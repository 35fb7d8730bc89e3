package panelterm

import "strings"

// TooltipAction is the outcome of offering a key to a tooltip.
type TooltipAction int

const (
	// TooltipPass means the tooltip did not handle the key.
	TooltipPass TooltipAction = iota
	// TooltipConsumed means the tooltip handled the key internally.
	TooltipConsumed
	// TooltipSelect means a menu option was chosen.
	TooltipSelect
)

// Tooltip is a per-coordinate annotation in a grid: either plain text or an
// interactive drop-down menu.
type Tooltip struct {
	Menu bool
	Text string
	// Options and Position carry the menu state. Position is -1 until the
	// user moves into the menu.
	Options  []string
	Position int
}

// NewBasicTooltip creates a text tooltip.
func NewBasicTooltip(text string) *Tooltip {
	return &Tooltip{Text: text}
}

// NewMenuTooltip creates a drop-down menu with no active position.
func NewMenuTooltip(options []string) *Tooltip {
	return &Tooltip{Menu: true, Options: options, Position: -1}
}

// Interact offers a key to the tooltip. Menus react to Up, Down and Enter:
// Down enters the menu and moves the highlight down without an upper cap, Up
// saturates at the first option, and Enter with a highlight selects it,
// clearing the menu position. Everything else passes through.
func (t *Tooltip) Interact(k Key) (int, TooltipAction) {
	if !t.Menu {
		return 0, TooltipPass
	}
	switch k.Kind {
	case KeyDownArrow:
		if t.Position < 0 {
			t.Position = 0
		} else {
			t.Position++
		}
		return 0, TooltipConsumed
	case KeyUpArrow:
		if t.Position < 0 {
			return 0, TooltipPass
		}
		if t.Position > 0 {
			t.Position--
		}
		return 0, TooltipConsumed
	case KeyEnter:
		if t.Position < 0 {
			return 0, TooltipPass
		}
		n := t.Position
		t.Position = -1
		return n, TooltipSelect
	default:
		return 0, TooltipPass
	}
}

func (t *Tooltip) String() string {
	if t.Menu {
		return strings.Join(t.Options, "\n")
	}
	return t.Text
}
