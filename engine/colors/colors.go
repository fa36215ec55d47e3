package colors

import "github.com/hubastard/microgrove/engine/ui"

// Color is linear RGBA in [0,1], the form vertex buffers and clear calls
// take.
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// FromRGBA8 converts 8-bit channels.
func FromRGBA8(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// FromUI converts an engine colour.
func FromUI(c ui.Color) Color { return FromRGBA8(c.R, c.G, c.B, c.A) }

// ToUI converts back, rounding each channel to the nearest step.
func (c Color) ToUI() ui.Color {
	return ui.Color{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
}

func to8(v float32) uint8 {
	v = min(1, max(0, v))
	return uint8(v*255 + 0.5)
}
