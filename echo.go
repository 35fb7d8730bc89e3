package panelterm

// LineEcho approximates local character echo for line-oriented input,
// tracking the position and length of the line being edited.
type LineEcho struct {
	Settings EchoSettings
	position int
	length   int
}

// NewLineEcho creates a line echo engine.
func NewLineEcho(settings EchoSettings) *LineEcho {
	return &LineEcho{Settings: settings}
}

// Echo maps a received key into display commands.
func (e *LineEcho) Echo(key Key) []Command {
	switch key.Kind {
	case KeyChar:
		switch key.Rune {
		case e.Settings.LErase:
			pos, length := e.position, e.length
			e.position, e.length = 0, 0
			return []Command{CommandSeries{
				Move{Movement: To(Left, pos, true)},
				Erase{Area: CursorTo(To(Right, length, true))},
			}}
		case e.Settings.LNext, e.Settings.WErase:
			return nil
		}
		if runeWidth(key.Rune) == 0 {
			return nil
		}
		e.length++
		e.position++
		return []Command{PutChar(key.Rune)}
	case KeyLeftArrow:
		if e.position == 0 {
			return nil
		}
		e.position--
		return []Command{Move{Movement: To(Left, 1, false)}}
	case KeyRightArrow:
		if e.position == e.length {
			return nil
		}
		e.position++
		return []Command{Move{Movement: To(Right, 1, false)}}
	case KeyEnter:
		e.position, e.length = 0, 0
		return []Command{Move{Movement: NextLine(1)}}
	case KeyBackspace:
		if e.position == 0 {
			return nil
		}
		e.position--
		e.length--
		return []Command{CommandSeries{
			Move{Movement: To(Left, 1, false)},
			RemoveChars{N: 1},
		}}
	case KeyDelete:
		if e.position == e.length {
			return nil
		}
		e.length--
		return []Command{RemoveChars{N: 1}}
	case KeyHome:
		pos := e.position
		e.position = 0
		return []Command{Move{Movement: To(Left, pos, true)}}
	default:
		return nil
	}
}

// ScreenEcho approximates local echo for screen-oriented input, mapping
// navigation keys onto cursor movement.
type ScreenEcho struct {
	Settings EchoSettings
}

// NewScreenEcho creates a screen echo engine.
func NewScreenEcho(settings EchoSettings) *ScreenEcho {
	return &ScreenEcho{Settings: settings}
}

// Echo maps a received key into display commands.
func (e *ScreenEcho) Echo(key Key) []Command {
	switch key.Kind {
	case KeyChar:
		switch key.Rune {
		case e.Settings.LErase:
			return []Command{CommandSeries{
				Move{Movement: ToEdge(Left)},
				Erase{Area: CursorRow},
			}}
		case e.Settings.LNext, e.Settings.WErase:
			return nil
		}
		if runeWidth(key.Rune) == 0 {
			return nil
		}
		return []Command{PutChar(key.Rune)}
	case KeyUpArrow:
		return []Command{Move{Movement: To(Up, 1, false)}}
	case KeyDownArrow:
		return []Command{Move{Movement: To(Down, 1, false)}}
	case KeyLeftArrow:
		return []Command{Move{Movement: To(Left, 1, true)}}
	case KeyRightArrow:
		return []Command{Move{Movement: To(Right, 1, true)}}
	case KeyEnter:
		return []Command{Move{Movement: NextLine(1)}}
	case KeyBackspace:
		return []Command{CommandSeries{
			Move{Movement: To(Left, 1, false)},
			RemoveChars{N: 1},
		}}
	case KeyPageUp:
		return []Command{Move{Movement: PreviousLine(25)}}
	case KeyPageDown:
		return []Command{Move{Movement: NextLine(25)}}
	case KeyHome:
		return []Command{Move{Movement: ToBeginning}}
	case KeyEnd:
		return []Command{Move{Movement: ToEnd}}
	case KeyDelete:
		return []Command{RemoveChars{N: 1}}
	default:
		return nil
	}
}
