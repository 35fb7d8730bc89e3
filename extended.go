package panelterm

import (
	"fmt"
	"strings"
)

// Extended protocol opcodes. The first hex field of an extended sequence
// names the operation; the attachments carry any binary payloads.
const (
	extPutImage    = 0x14
	extPutImageAt  = 0x15
	extMove        = 0x18
	extScroll      = 0x19
	extErase       = 0x20
	extRemoveChars = 0x21
	extRemoveRows  = 0x22
	extInsertBlank = 0x26
	extInsertRows  = 0x27
	extTextStyle   = 0x30
	extCursorStyle = 0x31
	extAreaStyle   = 0x32
	extSetTitle    = 0x40
	extAddToolTip  = 0x50
	extAddDropDown = 0x51
	extRemoveTip   = 0x54
	extPushPanel   = 0x60
	extPopPanel    = 0x61
	extSplitPanel  = 0x62
	extUnsplit     = 0x63
	extAdjustSplit = 0x64
	extRotateUp    = 0x65
	extRotateDown  = 0x66
	extSwitch      = 0x67
	extInputMode   = 0x80
)

// extendedCode accumulates one extended command: the argument string between
// `ESC {` and the first attachment or terminator, plus any attachments.
type extendedCode struct {
	args   []byte
	attach attachments
}

func (e *extendedCode) clear() {
	e.args = e.args[:0]
	e.attach.clear()
}

// parse interprets the accumulated arguments and attachments as a command.
// Unknown opcodes yield nil.
func (e *extendedCode) parse() Command {
	fields := strings.Split(string(e.args), ";")
	op := newNumReader(fields[0])
	arg := func(i int) *numReader {
		if i < len(fields)-1 {
			return newNumReader(fields[i+1])
		}
		return &numReader{}
	}
	opcode, ok := op.next()
	if !ok {
		return nil
	}
	switch opcode {
	case extPutImage:
		w, ok1 := decodeUint(arg(0))
		h, ok2 := decodeUint(arg(1))
		if !ok1 || !ok2 {
			return nil
		}
		pos, _ := decodeMediaPosition(arg(2))
		mime, data, ok := e.imageAttachments()
		if !ok {
			return nil
		}
		return PutImage(data, mime, pos, w, h)
	case extPutImageAt:
		coords, ok := decodeCoords(arg(0))
		if !ok {
			coords = Coords{}
		}
		w, ok1 := decodeUint(arg(1))
		h, ok2 := decodeUint(arg(2))
		if !ok1 || !ok2 {
			return nil
		}
		pos, _ := decodeMediaPosition(arg(3))
		mime, data, ok := e.imageAttachments()
		if !ok {
			return nil
		}
		return PutImageAt(data, mime, pos, w, h, coords)
	case extMove:
		m, ok := decodeMovement(arg(0))
		if !ok {
			m = To(Right, 1, true)
		}
		return Move{Movement: m}
	case extScroll:
		dir := decodeDirectionOr(arg(0), Down)
		n := decodeUintOr(arg(1), 1)
		return ScrollScreen{Dir: dir, N: n}
	case extErase:
		area, ok := decodeArea(arg(0))
		if !ok {
			area = CursorCell
		}
		return Erase{Area: area}
	case extRemoveChars:
		return RemoveChars{N: decodeUintOr(arg(0), 1)}
	case extRemoveRows:
		return RemoveRows{N: decodeUintOr(arg(0), 1), Include: decodeBoolOr(arg(1), true)}
	case extInsertBlank:
		return InsertBlank{N: decodeUintOr(arg(0), 1)}
	case extInsertRows:
		return InsertRows{N: decodeUintOr(arg(0), 1), Include: decodeBoolOr(arg(1), true)}
	case extTextStyle:
		if style, ok := decodeStyle(arg(0)); ok {
			return SetTextStyle{Style: style}
		}
		return DefaultTextStyle{}
	case extCursorStyle:
		if style, ok := decodeStyle(arg(0)); ok {
			return SetCursorStyle{Style: style}
		}
		return DefaultCursorStyle{}
	case extAreaStyle:
		area, ok := decodeArea(arg(0))
		if !ok {
			area = WholeScreen
		}
		if style, ok := decodeStyle(arg(1)); ok {
			return SetStyleInArea{Area: area, Style: style}
		}
		return DefaultStyleInArea{Area: area}
	case extSetTitle:
		if e.attach.count() < 1 {
			return nil
		}
		return SetTitle{Title: string(e.attach.get(0))}
	case extAddToolTip:
		coords, ok := decodeCoords(arg(0))
		if !ok || e.attach.count() < 1 {
			return nil
		}
		return AddToolTip{Coords: coords, Text: string(e.attach.get(0))}
	case extAddDropDown:
		coords, ok := decodeCoords(arg(0))
		if !ok || e.attach.count() < 1 {
			return nil
		}
		options := make([]string, e.attach.count())
		for i := range options {
			options[i] = string(e.attach.get(i))
		}
		return AddDropDown{Coords: coords, Options: options}
	case extRemoveTip:
		coords, ok := decodeCoords(arg(0))
		if !ok {
			return nil
		}
		return RemoveToolTip{Coords: coords}
	case extPushPanel:
		return PushPanel{Tag: optionalTag(arg(0)), RetainOffscreen: decodeBoolOr(arg(1), true)}
	case extPopPanel:
		return PopPanel{Tag: optionalTag(arg(0))}
	case extSplitPanel:
		lTag, ok1 := decodeTag(arg(0))
		rTag, ok2 := decodeTag(arg(1))
		kind, ok3 := decodeSplitKind(arg(2))
		if !(ok1 && ok2 && ok3) {
			return nil
		}
		save, _ := decodeSaveGrid(arg(3))
		rule, _ := decodeResizeRule(arg(4))
		return SplitPanel{
			Save: save, Kind: kind, Rule: rule,
			Tag: optionalTag(arg(5)), LTag: lTag, RTag: rTag,
			RetainOffscreen: decodeBoolOr(arg(6), true),
		}
	case extUnsplit:
		save, _ := decodeSaveGrid(arg(0))
		tag, ok := decodeTag(arg(1))
		if !ok {
			return nil
		}
		return UnsplitPanel{Save: save, Tag: tag}
	case extAdjustSplit:
		tag, ok1 := decodeTag(arg(0))
		kind, ok2 := decodeSplitKind(arg(1))
		if !(ok1 && ok2) {
			return nil
		}
		rule, _ := decodeResizeRule(arg(2))
		return AdjustPanelSplit{Tag: tag, Kind: kind, Rule: rule}
	case extRotateUp:
		return RotateSectionUp{Tag: optionalTag(arg(0))}
	case extRotateDown:
		return RotateSectionDown{Tag: optionalTag(arg(0))}
	case extSwitch:
		tag, ok := decodeTag(arg(0))
		if !ok {
			return nil
		}
		return SwitchActiveSection{Tag: tag}
	case extInputMode:
		mode, ok := decodeInputMode(arg(0))
		if !ok {
			mode = ModeAnsi
		}
		return SetInputMode{Mode: mode}
	default:
		return nil
	}
}

// imageAttachments splits the attachments into the MIME string and the
// image bytes.
func (e *extendedCode) imageAttachments() (string, []byte, bool) {
	if e.attach.count() < 2 {
		return "", nil, false
	}
	mime := string(e.attach.get(0))
	switch mime {
	case "image/png", "image/jpeg", "image/gif":
		return mime, append([]byte(nil), e.attach.get(1)...), true
	default:
		return "", nil, false
	}
}

func optionalTag(r *numReader) *uint64 {
	if tag, ok := decodeTag(r); ok {
		return &tag
	}
	return nil
}

// EncodeExtended renders a command in the extended wire format
// `ESC { ARGS {LEN;BYTES}... ESC }`. It covers the commands the extended
// protocol can express; anything else returns ok false.
func EncodeExtended(cmd Command) ([]byte, bool) {
	var args []string
	var attach [][]byte
	switch c := cmd.(type) {
	case Put:
		img, ok := c.Data.(imageData)
		if !ok {
			return nil, false
		}
		args = []string{
			encodeUint(extPutImage),
			encodeUint(img.image.Width), encodeUint(img.image.Height),
			encodeMediaPosition(img.image.Pos),
		}
		attach = [][]byte{[]byte(img.image.MIME), img.image.Data}
	case PutAt:
		img, ok := c.Data.(imageData)
		if !ok {
			return nil, false
		}
		args = []string{
			encodeUint(extPutImageAt), encodeCoords(c.Coords),
			encodeUint(img.image.Width), encodeUint(img.image.Height),
			encodeMediaPosition(img.image.Pos),
		}
		attach = [][]byte{[]byte(img.image.MIME), img.image.Data}
	case Move:
		args = []string{encodeUint(extMove), encodeMovement(c.Movement)}
	case ScrollScreen:
		args = []string{encodeUint(extScroll), encodeDirection(c.Dir), encodeUint(c.N)}
	case Erase:
		args = []string{encodeUint(extErase), encodeArea(c.Area)}
	case RemoveChars:
		args = []string{encodeUint(extRemoveChars), encodeUint(c.N)}
	case RemoveRows:
		args = []string{encodeUint(extRemoveRows), encodeUint(c.N), encodeBool(c.Include)}
	case InsertBlank:
		args = []string{encodeUint(extInsertBlank), encodeUint(c.N)}
	case InsertRows:
		args = []string{encodeUint(extInsertRows), encodeUint(c.N), encodeBool(c.Include)}
	case SetTextStyle:
		args = []string{encodeUint(extTextStyle), encodeStyle(c.Style)}
	case DefaultTextStyle:
		args = []string{encodeUint(extTextStyle)}
	case SetCursorStyle:
		args = []string{encodeUint(extCursorStyle), encodeStyle(c.Style)}
	case DefaultCursorStyle:
		args = []string{encodeUint(extCursorStyle)}
	case SetStyleInArea:
		args = []string{encodeUint(extAreaStyle), encodeArea(c.Area), encodeStyle(c.Style)}
	case DefaultStyleInArea:
		args = []string{encodeUint(extAreaStyle), encodeArea(c.Area)}
	case SetTitle:
		args = []string{encodeUint(extSetTitle)}
		attach = [][]byte{[]byte(c.Title)}
	case AddToolTip:
		args = []string{encodeUint(extAddToolTip), encodeCoords(c.Coords)}
		attach = [][]byte{[]byte(c.Text)}
	case AddDropDown:
		args = []string{encodeUint(extAddDropDown), encodeCoords(c.Coords)}
		for _, opt := range c.Options {
			attach = append(attach, []byte(opt))
		}
	case RemoveToolTip:
		args = []string{encodeUint(extRemoveTip), encodeCoords(c.Coords)}
	case PushPanel:
		args = []string{encodeUint(extPushPanel)}
		if c.Tag != nil {
			args = append(args, encodeTag(*c.Tag), encodeBool(c.RetainOffscreen))
		}
	case PopPanel:
		args = []string{encodeUint(extPopPanel)}
		if c.Tag != nil {
			args = append(args, encodeTag(*c.Tag))
		}
	case SplitPanel:
		args = []string{
			encodeUint(extSplitPanel), encodeTag(c.LTag), encodeTag(c.RTag),
			encodeSplitKind(c.Kind), encodeSaveGrid(c.Save), encodeResizeRule(c.Rule),
		}
		if c.Tag != nil {
			args = append(args, encodeTag(*c.Tag), encodeBool(c.RetainOffscreen))
		}
	case UnsplitPanel:
		args = []string{encodeUint(extUnsplit), encodeSaveGrid(c.Save), encodeTag(c.Tag)}
	case AdjustPanelSplit:
		args = []string{encodeUint(extAdjustSplit), encodeTag(c.Tag), encodeSplitKind(c.Kind), encodeResizeRule(c.Rule)}
	case RotateSectionUp:
		args = []string{encodeUint(extRotateUp)}
		if c.Tag != nil {
			args = append(args, encodeTag(*c.Tag))
		}
	case RotateSectionDown:
		args = []string{encodeUint(extRotateDown)}
		if c.Tag != nil {
			args = append(args, encodeTag(*c.Tag))
		}
	case SwitchActiveSection:
		args = []string{encodeUint(extSwitch), encodeTag(c.Tag)}
	case SetInputMode:
		args = []string{encodeUint(extInputMode), encodeInputMode(c.Mode)}
	default:
		return nil, false
	}

	var out []byte
	out = append(out, 0x1b, '{')
	out = append(out, strings.Join(args, ";")...)
	for _, a := range attach {
		out = append(out, fmt.Sprintf("{%x;", len(a))...)
		out = append(out, a...)
	}
	out = append(out, 0x1b, '}')
	return out, true
}
