package panelterm

// CellContentKind discriminates the cell content variants.
type CellContentKind int

const (
	// ContentEmpty marks a cell with no content. Its styles still apply.
	ContentEmpty CellContentKind = iota
	// ContentChar is a single code point.
	ContentChar
	// ContentGrapheme is a multi-code-point cluster rendered as one glyph.
	ContentGrapheme
	// ContentExtension reserves a cell for a multi-cell primary at Source.
	ContentExtension
	// ContentImage is the primary cell of an inline image.
	ContentImage
)

// MediaPosition describes how an image is laid into its cell rectangle.
type MediaPosition int

const (
	PositionStretch MediaPosition = iota
	PositionFill
	PositionFit
	PositionCenter
)

// ImageCell carries the opaque bytes of an inline image; decoding is the
// renderer's concern.
type ImageCell struct {
	Data   []byte
	MIME   string
	Pos    MediaPosition
	Width  int
	Height int
}

// CellContent is the content sum of a character cell. Wide characters and
// images own their primary cell; every other cell they cover carries an
// extension pointing back at it.
type CellContent struct {
	Kind   CellContentKind
	Rune   rune
	Text   string
	Source Coords
	Image  *ImageCell
}

// CharCell is one grid position: content plus the styles it was written
// with.
type CharCell struct {
	Content CellContent
	Styles  UseStyles
}

// emptyCell is the default cell value for unwritten grid positions.
var emptyCell = CharCell{}

// IsEmpty returns true if the cell has no content.
func (c *CharCell) IsEmpty() bool {
	return c.Content.Kind == ContentEmpty
}

// IsExtension returns true if this cell reserves space for a primary cell
// elsewhere.
func (c *CharCell) IsExtension() bool {
	return c.Content.Kind == ContentExtension
}

// Source returns the coordinates of the primary this extension belongs to.
func (c *CharCell) Source() (Coords, bool) {
	if c.Content.Kind != ContentExtension {
		return Coords{}, false
	}
	return c.Content.Source, true
}

// Extendable returns true if a combining character can be appended to this
// cell's content.
func (c *CharCell) Extendable() bool {
	return c.Content.Kind == ContentChar || c.Content.Kind == ContentGrapheme
}

// ExtendBy appends a combining code point, turning a char into a grapheme.
// Returns false if the content cannot be extended.
func (c *CharCell) ExtendBy(r rune) bool {
	switch c.Content.Kind {
	case ContentChar:
		c.Content = CellContent{Kind: ContentGrapheme, Text: string(c.Content.Rune) + string(r)}
		return true
	case ContentGrapheme:
		c.Content.Text += string(r)
		return true
	default:
		return false
	}
}

// Erase clears the content, preserving the styles already at the cell.
func (c *CharCell) Erase() {
	c.Content = CellContent{}
}

// Repr returns a short debugging representation of the cell content.
func (c *CharCell) Repr() string {
	switch c.Content.Kind {
	case ContentChar:
		return string(c.Content.Rune)
	case ContentGrapheme:
		return c.Content.Text
	case ContentExtension:
		return "EXT"
	case ContentImage:
		return "IMG"
	default:
		return ""
	}
}

// Text returns the displayable text of the cell, or empty for non-textual
// content.
func (c *CharCell) Text() string {
	switch c.Content.Kind {
	case ContentChar:
		return string(c.Content.Rune)
	case ContentGrapheme:
		return c.Content.Text
	default:
		return ""
	}
}
