package renderer2d

import (
	"github.com/hubastard/microgrove/engine/colors"
	"github.com/hubastard/microgrove/engine/text"
)

// DrawText draws s with its top-left corner at (x,y). Positive Y goes
// downward (matching the screen projection). Runes missing from the atlas
// advance like a space.
func (rd *Renderer2D) DrawText(a *text.Atlas, x, y float32, s string, color colors.Color) {
	penX := x
	baseY := y + float32(a.Ascent)
	prev := rune(-1)

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += float32(a.LineHeight)
			prev = -1
			continue
		}

		g, ok := a.Glyph(r)
		if !ok {
			penX += float32(a.SpaceAdvance())
			prev = -1
			continue
		}
		if prev >= 0 {
			penX += float32(a.Kern(prev, r))
		}

		if g.W > 0 && g.H > 0 {
			// top = baseline - BearingY
			left := penX + float32(g.BearingX)
			top := baseY - float32(g.BearingY)
			rd.DrawSubTexRect(left, top, float32(g.W), float32(g.H), FromGlyph(a, g), color)
		}

		penX += float32(g.Advance)
		prev = r
	}
}
