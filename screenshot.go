package panelterm

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ScreenshotConfig controls how the screen is rendered to an image.
type ScreenshotConfig struct {
	// Font face to use for rendering. If nil, uses basicfont.Face7x13.
	Font font.Face

	// CellWidth and CellHeight override the cell dimensions. If zero,
	// derived from font metrics.
	CellWidth  int
	CellHeight int

	// ShowCursor controls whether the cursor cell is inverted. Default
	// true.
	ShowCursor *bool
}

// LoadFont loads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadFontFromReader(f, size)
}

// LoadFontFromReader loads a TrueType or OpenType font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Screenshot renders the visible screen tree to an RGBA image using default
// settings.
func (t *Terminal) Screenshot() *image.RGBA {
	return t.ScreenshotWithConfig(&ScreenshotConfig{})
}

// ScreenshotWithConfig renders the screen tree to an RGBA image: every
// visible panel is drawn into its section's area, styles resolved against
// the config.
func (t *Terminal) ScreenshotWithConfig(cfg *ScreenshotConfig) *image.RGBA {
	t.mu.RLock()
	defer t.mu.RUnlock()

	face := cfg.Font
	if face == nil {
		face = basicfont.Face7x13
	}

	cellW := cfg.CellWidth
	cellH := cfg.CellHeight
	metrics := face.Metrics()
	if cellW == 0 {
		if adv, ok := face.GlyphAdvance('M'); ok {
			cellW = adv.Ceil()
		} else {
			cellW = 7
		}
	}
	if cellH == 0 {
		cellH = metrics.Height.Ceil()
		if cellH == 0 {
			cellH = 13
		}
	}
	ascent := metrics.Ascent.Ceil()

	area := t.screen.Area()
	img := image.NewRGBA(image.Rect(0, 0, area.Width()*cellW, area.Height()*cellH))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: t.cfg.BgColor}, image.Point{}, draw.Src)

	showCursor := cfg.ShowCursor == nil || *cfg.ShowCursor
	activeGrid := t.screen.ActiveGrid()

	for _, section := range t.screen.Panels() {
		grid := section.Grid()
		if grid == nil {
			continue
		}
		origin := section.Area()
		bounds := grid.Bounds()
		for y := 0; y < bounds.Height(); y++ {
			for x := 0; x < bounds.Width(); x++ {
				cell := grid.CellAt(Coords{X: x, Y: y})
				styles := cell.Styles.Resolve(t.cfg)
				fg := styles.FgColor.Resolve(t.cfg, t.cfg.FgColor)
				bg := styles.BgColor.Resolve(t.cfg, t.cfg.BgColor)
				if styles.Inverted {
					fg, bg = bg, fg
				}
				cursorHere := showCursor && grid == activeGrid &&
					grid.Cursor().Coords == grid.view.Translate(Coords{X: x, Y: y})
				if cursorHere {
					fg, bg = bg, fg
				}
				px := (origin.Left + x) * cellW
				py := (origin.Top + y) * cellH
				rect := image.Rect(px, py, px+cellW, py+cellH)
				if bg != t.cfg.BgColor || cursorHere {
					draw.Draw(img, rect, &image.Uniform{C: bg}, image.Point{}, draw.Src)
				}
				text := cell.Text()
				if text == "" || styles.Opacity == 0 {
					continue
				}
				drawer := font.Drawer{
					Dst:  img,
					Src:  &image.Uniform{C: applyOpacity(fg, styles.Opacity)},
					Face: face,
					Dot:  fixed.P(px, py+ascent),
				}
				drawer.DrawString(text)
			}
		}
	}
	return img
}

func applyOpacity(c color.RGBA, opacity uint8) color.RGBA {
	if opacity == 0xff {
		return c
	}
	scale := uint16(opacity)
	return color.RGBA{
		R: uint8(uint16(c.R) * scale / 255),
		G: uint8(uint16(c.G) * scale / 255),
		B: uint8(uint16(c.B) * scale / 255),
		A: c.A,
	}
}
