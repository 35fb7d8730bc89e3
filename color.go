package panelterm

import (
	"fmt"
	"image/color"
)

// ColorKind discriminates the Color variants.
type ColorKind int

const (
	// ColorDefault defers to the configured default foreground or
	// background, depending on where the color is used.
	ColorDefault ColorKind = iota
	// ColorPalette is an index into the configured 256-color palette.
	ColorPalette
	// ColorTrue is a 24-bit color.
	ColorTrue
)

// Color is either a 24-bit triple, an 8-bit palette index, or the configured
// default, resolved against the Config at render time.
type Color struct {
	Kind  ColorKind
	R     uint8
	G     uint8
	B     uint8
	Index uint8
}

// DefaultColor defers to the configured default.
var DefaultColor = Color{Kind: ColorDefault}

// TrueColor creates a 24-bit color.
func TrueColor(r, g, b uint8) Color {
	return Color{Kind: ColorTrue, R: r, G: g, B: b}
}

// PaletteColor creates a palette-indexed color.
func PaletteColor(index uint8) Color {
	return Color{Kind: ColorPalette, Index: index}
}

// Resolve converts the color to a concrete RGBA value against the config,
// using the given fallback when the color is the default.
func (c Color) Resolve(cfg *Config, fallback color.RGBA) color.RGBA {
	switch c.Kind {
	case ColorTrue:
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	case ColorPalette:
		if cfg != nil {
			return cfg.Palette[c.Index]
		}
		return DefaultPalette[c.Index]
	default:
		return fallback
	}
}

func (c Color) String() string {
	switch c.Kind {
	case ColorTrue:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	case ColorPalette:
		return fmt.Sprintf("palette(%d)", c.Index)
	default:
		return "default"
	}
}

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15),
// 216 color cube (16-231), 24 grayscale (232-255).
var DefaultPalette = [256]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White

	// The color cube and grayscale ramp are generated in init below.
}

func init() {
	// Generate 216 color cube (16-231)
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
					A: 255,
				}
				i++
			}
		}
	}

	// Generate grayscale (232-255)
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// DefaultForeground is the default text color (light gray).
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the default background color (black).
var DefaultBackground = color.RGBA{0, 0, 0, 255}

// DefaultCursorColor is the default cursor rendering color (light gray).
var DefaultCursorColor = color.RGBA{229, 229, 229, 255}
