package renderer2d

import (
	"github.com/hubastard/microgrove/engine/colors"
	"github.com/hubastard/microgrove/engine/core"
	"github.com/hubastard/microgrove/engine/text"
	"github.com/hubastard/microgrove/engine/ui"
)

// UIView describes how UI units map to the framebuffer.
type UIView struct {
	VP             [16]float32 // UI units to clip space
	ScaleX, ScaleY float32     // framebuffer pixels per UI unit
}

// DrawUI replays a finished frame of ctx. Text commands whose font is not
// an *text.Atlas use atlas. Clip commands become scissor rectangles.
func (rd *Renderer2D) DrawUI(ctx *ui.Context, atlas *text.Atlas, view UIView) {
	rd.BeginScene(view.VP)
	solid := solidFrom(atlas)
	unclipped := ui.UnclippedRect()
	var cmd ui.Command
	for ctx.NextCommand(&cmd) {
		switch cmd.Kind {
		case ui.CommandClip:
			if cmd.Rect == unclipped {
				rd.SetScissor(nil)
				continue
			}
			s := scissorFor(cmd.Rect, view)
			rd.SetScissor(&s)
		case ui.CommandRect:
			r := cmd.Rect
			rd.DrawSubTexRect(float32(r.X), float32(r.Y), float32(r.W), float32(r.H), solid, colors.FromUI(cmd.Color))
		case ui.CommandText:
			a := atlas
			if f, ok := cmd.Font.(*text.Atlas); ok && f != nil {
				a = f
			}
			rd.DrawText(a, float32(cmd.Pos.X), float32(cmd.Pos.Y), cmd.Text, colors.FromUI(cmd.Color))
		case ui.CommandIcon:
			g, ok := atlas.Icon(cmd.Icon)
			if !ok {
				continue
			}
			r := cmd.Rect
			x := r.X + (r.W-g.W)/2
			y := r.Y + (r.H-g.H)/2
			rd.DrawSubTexRect(float32(x), float32(y), float32(g.W), float32(g.H), FromGlyph(atlas, g), colors.FromUI(cmd.Color))
		}
	}
	rd.EndScene()
}

// solidFrom samples the centre of the atlas white texel, so fills and
// glyphs share one texture slot.
func solidFrom(a *text.Atlas) SubTexture2D {
	b := a.Image.Bounds()
	p := a.White()
	u := (float32(p.X) + 0.5) / float32(b.Dx())
	v := (float32(p.Y) + 0.5) / float32(b.Dy())
	return SubTexture2D{Texture: a.Texture, U0: u, V0: v, U1: u, V1: v}
}

func scissorFor(r ui.Rect, v UIView) core.Scissor {
	x0 := int(float32(r.X) * v.ScaleX)
	y0 := int(float32(r.Y) * v.ScaleY)
	x1 := int(float32(r.X+r.W)*v.ScaleX + 0.5)
	y1 := int(float32(r.Y+r.H)*v.ScaleY + 0.5)
	return core.Scissor{X: x0, Y: y0, W: max(x1-x0, 0), H: max(y1-y0, 0)}
}
