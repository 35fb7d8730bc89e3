package panelterm

import (
	"fmt"
	"strconv"
	"strings"
)

// The extended protocol encodes every argument as '.'-separated lowercase
// hexadecimal fields. Each decoder consumes fields from a numReader and each
// encoder is its exact inverse.

// numReader yields the numeric fields of one argument.
type numReader struct {
	nums []uint64
	i    int
}

func newNumReader(s string) *numReader {
	if s == "" {
		return &numReader{}
	}
	fields := strings.Split(s, ".")
	nums := make([]uint64, 0, len(fields))
	for _, f := range fields {
		if n, err := strconv.ParseUint(f, 16, 64); err == nil {
			nums = append(nums, n)
		}
	}
	return &numReader{nums: nums}
}

func (r *numReader) next() (uint64, bool) {
	if r == nil || r.i >= len(r.nums) {
		return 0, false
	}
	n := r.nums[r.i]
	r.i++
	return n, true
}

// --- bool ---

func decodeBool(r *numReader) (bool, bool) {
	switch n, ok := r.next(); {
	case !ok:
		return false, false
	case n == 0:
		return false, true
	case n == 1:
		return true, true
	default:
		return false, false
	}
}

func decodeBoolOr(r *numReader, def bool) bool {
	if b, ok := decodeBool(r); ok {
		return b
	}
	return def
}

func encodeBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// --- unsigned ---

func decodeUint(r *numReader) (int, bool) {
	n, ok := r.next()
	return int(n), ok
}

func decodeUintOr(r *numReader, def int) int {
	if n, ok := decodeUint(r); ok {
		return n
	}
	return def
}

func encodeUint(n int) string {
	return fmt.Sprintf("%x", n)
}

func decodeTag(r *numReader) (uint64, bool) {
	return r.next()
}

func encodeTag(t uint64) string {
	return fmt.Sprintf("%x", t)
}

// --- Direction ---

func decodeDirection(r *numReader) (Direction, bool) {
	switch n, ok := r.next(); {
	case !ok:
		return Right, false
	case n == 1:
		return Up, true
	case n == 2:
		return Down, true
	case n == 3:
		return Left, true
	case n == 4:
		return Right, true
	default:
		return Right, false
	}
}

func decodeDirectionOr(r *numReader, def Direction) Direction {
	if d, ok := decodeDirection(r); ok {
		return d
	}
	return def
}

func encodeDirection(d Direction) string {
	switch d {
	case Up:
		return "1"
	case Down:
		return "2"
	case Left:
		return "3"
	default:
		return "4"
	}
}

// --- Coords / Region / Color ---

func decodeCoords(r *numReader) (Coords, bool) {
	x, ok := r.next()
	if !ok {
		return Coords{}, false
	}
	y, ok := r.next()
	if !ok {
		return Coords{}, false
	}
	return Coords{X: int(x), Y: int(y)}, true
}

func encodeCoords(c Coords) string {
	return fmt.Sprintf("%x.%x", c.X, c.Y)
}

func decodeRegion(r *numReader) (Region, bool) {
	l, ok1 := r.next()
	t, ok2 := r.next()
	rt, ok3 := r.next()
	b, ok4 := r.next()
	if !(ok1 && ok2 && ok3 && ok4) {
		return Region{}, false
	}
	return NewRegion(int(l), int(t), int(rt), int(b)), true
}

func encodeRegion(reg Region) string {
	return fmt.Sprintf("%x.%x.%x.%x", reg.Left, reg.Top, reg.Right, reg.Bottom)
}

func decodeColor(r *numReader) (Color, bool) {
	cr, ok1 := r.next()
	cg, ok2 := r.next()
	cb, ok3 := r.next()
	if !(ok1 && ok2 && ok3) {
		return Color{}, false
	}
	return TrueColor(uint8(cr), uint8(cg), uint8(cb)), true
}

func encodeColor(c Color) string {
	return fmt.Sprintf("%x.%x.%x", c.R, c.G, c.B)
}

// --- InputMode ---

func decodeInputMode(r *numReader) (InputMode, bool) {
	switch n, ok := r.next(); {
	case !ok:
		return ModeAnsi, false
	case n == 1:
		return ModeAnsi, true
	case n == 2:
		return ModeExtended, true
	case n == 3:
		return ModeApplication, true
	default:
		return ModeAnsi, false
	}
}

func encodeInputMode(m InputMode) string {
	switch m {
	case ModeAnsi:
		return "1"
	case ModeExtended:
		return "2"
	default:
		return "3"
	}
}

// --- MediaPosition ---

func decodeMediaPosition(r *numReader) (MediaPosition, bool) {
	switch n, ok := r.next(); {
	case !ok:
		return PositionStretch, false
	case n >= 1 && n <= 4:
		return MediaPosition(n - 1), true
	default:
		return PositionStretch, false
	}
}

func encodeMediaPosition(p MediaPosition) string {
	return fmt.Sprintf("%x", int(p)+1)
}

// --- Movement ---

func decodeMovement(r *numReader) (Movement, bool) {
	kind, ok := r.next()
	if !ok {
		return Movement{}, false
	}
	switch kind {
	case 0x1:
		c, ok := decodeCoords(r)
		if !ok {
			c = Coords{}
		}
		return Position(c), true
	case 0x2:
		dir := decodeDirectionOr(r, Right)
		n := decodeUintOr(r, 1)
		wrap := decodeBoolOr(r, false)
		return To(dir, n, wrap), true
	case 0x3:
		return ToEdge(decodeDirectionOr(r, Right)), true
	case 0x4:
		dir := decodeDirectionOr(r, Right)
		n := decodeUintOr(r, 1)
		return IndexTo(dir, n), true
	case 0x5:
		dir := decodeDirectionOr(r, Right)
		n := decodeUintOr(r, 1)
		wrap := decodeBoolOr(r, false)
		return TabTo(dir, n, wrap), true
	case 0x6:
		n := decodeUintOr(r, 1)
		if decodeBoolOr(r, false) {
			return PreviousLine(n), true
		}
		return NextLine(n), true
	case 0x7:
		return Column(decodeUintOr(r, 0)), true
	case 0x8:
		return Row(decodeUintOr(r, 0)), true
	case 0x9:
		if decodeBoolOr(r, false) {
			return ToBeginning, true
		}
		return ToEnd, true
	default:
		return Movement{}, false
	}
}

func encodeMovement(m Movement) string {
	switch m.Kind {
	case MovePosition:
		return "1." + encodeCoords(m.Coords)
	case MoveTo:
		return fmt.Sprintf("2.%s.%x.%s", encodeDirection(m.Dir), m.N, encodeBool(m.Wrap))
	case MoveToEdge:
		return "3." + encodeDirection(m.Dir)
	case MoveIndexTo:
		return fmt.Sprintf("4.%s.%x", encodeDirection(m.Dir), m.N)
	case MoveTab:
		return fmt.Sprintf("5.%s.%x.%s", encodeDirection(m.Dir), m.N, encodeBool(m.Wrap))
	case MovePreviousLine:
		return fmt.Sprintf("6.%x.1", m.N)
	case MoveNextLine:
		return fmt.Sprintf("6.%x", m.N)
	case MoveColumn:
		return fmt.Sprintf("7.%x", m.N)
	case MoveRow:
		return fmt.Sprintf("8.%x", m.N)
	case MoveToBeginning:
		return "9.1"
	default:
		return "9"
	}
}

// --- Area ---

func decodeArea(r *numReader) (Area, bool) {
	kind, ok := r.next()
	if !ok {
		return Area{}, false
	}
	switch kind {
	case 1:
		return CursorCell, true
	case 2:
		return CursorRow, true
	case 3:
		return CursorColumn, true
	case 4:
		if m, ok := decodeMovement(r); ok {
			return CursorTo(m), true
		}
		return Area{}, false
	case 5:
		if c, ok := decodeCoords(r); ok {
			return CursorBound(c), true
		}
		return Area{}, false
	case 6:
		if reg, ok := decodeRegion(r); ok {
			return Bound(reg), true
		}
		return WholeScreen, true
	case 7:
		top, ok1 := r.next()
		bottom, ok2 := r.next()
		if ok1 && ok2 {
			return Rows(int(top), int(bottom)), true
		}
		return WholeScreen, true
	case 8:
		left, ok1 := r.next()
		right, ok2 := r.next()
		if ok1 && ok2 {
			return Columns(int(left), int(right)), true
		}
		return WholeScreen, true
	case 9:
		return BelowCursor(decodeBoolOr(r, true)), true
	default:
		return Area{}, false
	}
}

func encodeArea(a Area) string {
	switch a.Kind {
	case AreaCursorCell:
		return "1"
	case AreaCursorRow:
		return "2"
	case AreaCursorColumn:
		return "3"
	case AreaCursorTo:
		return "4." + encodeMovement(a.Movement)
	case AreaCursorBound:
		return "5." + encodeCoords(a.Coords)
	case AreaWholeScreen:
		return "6"
	case AreaBound:
		return "6." + encodeRegion(a.Region)
	case AreaRows:
		return fmt.Sprintf("7.%x.%x", a.A, a.B)
	case AreaColumns:
		return fmt.Sprintf("8.%x.%x", a.A, a.B)
	default:
		return "9." + encodeBool(a.Include)
	}
}

// --- Style ---

func decodeStyle(r *numReader) (Style, bool) {
	kind, ok := r.next()
	if !ok {
		return Style{}, false
	}
	switch kind {
	case 0x1:
		switch n, ok := r.next(); {
		case !ok, n == 1:
			return Underline(1), true
		case n == 0:
			return Underline(0), true
		case n == 2:
			return Underline(2), true
		default:
			return Style{}, false
		}
	case 0x2:
		return Bold(decodeBoolOr(r, true)), true
	case 0x3:
		return Italic(decodeBoolOr(r, true)), true
	case 0x4:
		return Blink(decodeBoolOr(r, true)), true
	case 0x5:
		return InvertColors(decodeBoolOr(r, true)), true
	case 0x6:
		return Strikethrough(decodeBoolOr(r, true)), true
	case 0x7:
		return Opacity(uint8(decodeUintOr(r, 0xff))), true
	case 0x8:
		if c, ok := decodeColor(r); ok {
			return FgColor(c), true
		}
		return Style{}, false
	case 0x9:
		if c, ok := decodeColor(r); ok {
			return BgColor(c), true
		}
		return Style{}, false
	case 0xa:
		if n, ok := r.next(); ok {
			return FgColorCfg(int(n)), true
		}
		return FgColorCfg(-1), true
	case 0xb:
		if n, ok := r.next(); ok {
			return BgColorCfg(int(n)), true
		}
		return BgColorCfg(-1), true
	default:
		return Style{}, false
	}
}

func encodeStyle(s Style) string {
	switch s.Kind {
	case StyleUnderline:
		return fmt.Sprintf("1.%x", s.Level)
	case StyleBold:
		return "2." + encodeBool(s.Flag)
	case StyleItalic:
		return "3." + encodeBool(s.Flag)
	case StyleBlink:
		return "4." + encodeBool(s.Flag)
	case StyleInvertColors:
		return "5." + encodeBool(s.Flag)
	case StyleStrikethrough:
		return "6." + encodeBool(s.Flag)
	case StyleOpacity:
		return fmt.Sprintf("7.%x", s.Level)
	case StyleFgColor:
		return "8." + encodeColor(s.Color)
	case StyleBgColor:
		return "9." + encodeColor(s.Color)
	case StyleFgColorCfg:
		if s.Index < 0 {
			return "a"
		}
		return fmt.Sprintf("a.%x", s.Index)
	default:
		if s.Index < 0 {
			return "b"
		}
		return fmt.Sprintf("b.%x", s.Index)
	}
}

// --- SaveGrid / SplitKind / ResizeRule ---

func decodeSaveGrid(r *numReader) (SaveGrid, bool) {
	switch n, ok := r.next(); {
	case !ok:
		return SaveLeft, false
	case n == 1:
		return SaveLeft, true
	case n == 2:
		return SaveRight, true
	default:
		return SaveLeft, false
	}
}

func encodeSaveGrid(s SaveGrid) string {
	if s == SaveRight {
		return "2"
	}
	return "1"
}

func decodeSplitKind(r *numReader) (SplitKind, bool) {
	kind, ok := r.next()
	if !ok {
		return SplitKind{}, false
	}
	n, ok := r.next()
	if !ok {
		return SplitKind{}, false
	}
	switch kind {
	case 1:
		return Horizontal(int(n)), true
	case 2:
		return Vertical(int(n)), true
	default:
		return SplitKind{}, false
	}
}

func encodeSplitKind(k SplitKind) string {
	if k.Axis == axisVertical {
		return fmt.Sprintf("2.%x", k.N)
	}
	return fmt.Sprintf("1.%x", k.N)
}

func decodeResizeRule(r *numReader) (ResizeRule, bool) {
	switch n, ok := r.next(); {
	case !ok:
		return RulePercentage, false
	case n == 1:
		return RulePercentage, true
	case n == 2:
		return RuleMaxLeftTop, true
	case n == 3:
		return RuleMaxRightBottom, true
	default:
		return RulePercentage, false
	}
}

func encodeResizeRule(rule ResizeRule) string {
	switch rule {
	case RuleMaxLeftTop:
		return "2"
	case RuleMaxRightBottom:
		return "3"
	default:
		return "1"
	}
}
