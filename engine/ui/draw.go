package ui

var unclippedRect = Rect{0, 0, 0x1000000, 0x1000000}

// UnclippedRect is the clip rectangle that disables clipping.
func UnclippedRect() Rect { return unclippedRect }

// PushClipRect narrows clipping to the intersection of r and the current
// clip rectangle.
func (ctx *Context) PushClipRect(r Rect) {
	ctx.clipStack.Push(r.Intersect(ctx.ClipRect()))
}

func (ctx *Context) PopClipRect() { ctx.clipStack.Pop() }

// ClipRect returns the current clip rectangle.
func (ctx *Context) ClipRect() Rect {
	expect(!ctx.clipStack.Empty(), ErrStackUnderflow, "clip rect", "no clip rectangle")
	return ctx.clipStack.Top()
}

func (ctx *Context) CheckClip(r Rect) ClipResult {
	cr := ctx.ClipRect()
	if r.X > cr.X+cr.W || r.X+r.W < cr.X || r.Y > cr.Y+cr.H || r.Y+r.H < cr.Y {
		return ClipAll
	}
	if r.X >= cr.X && r.X+r.W <= cr.X+cr.W && r.Y >= cr.Y && r.Y+r.H <= cr.Y+cr.H {
		return ClipNone
	}
	return ClipPart
}

// DrawRect fills r clipped to the current clip rectangle. Nothing is
// emitted when the visible part is empty.
func (ctx *Context) DrawRect(r Rect, c Color) {
	r = r.Intersect(ctx.ClipRect())
	if r.W > 0 && r.H > 0 {
		ctx.pushRect(r, c)
	}
}

// DrawBox outlines r with one pixel lines.
func (ctx *Context) DrawBox(r Rect, c Color) {
	ctx.DrawRect(Rect{r.X + 1, r.Y, r.W - 2, 1}, c)
	ctx.DrawRect(Rect{r.X + 1, r.Y + r.H - 1, r.W - 2, 1}, c)
	ctx.DrawRect(Rect{r.X, r.Y, 1, r.H}, c)
	ctx.DrawRect(Rect{r.X + r.W - 1, r.Y, 1, r.H}, c)
}

// DrawText emits s at pos. Partially visible text is bracketed by clip
// commands so the renderer can scissor it.
func (ctx *Context) DrawText(font Font, s string, pos Vec2, c Color) {
	r := Rect{pos.X, pos.Y, ctx.host.TextWidth(font, s), ctx.host.TextHeight(font)}
	clipped := ctx.CheckClip(r)
	if clipped == ClipAll {
		return
	}
	if clipped == ClipPart {
		ctx.SetClip(ctx.ClipRect())
	}
	ctx.pushText(font, s, pos, c)
	if clipped != ClipNone {
		ctx.SetClip(unclippedRect)
	}
}

// DrawIcon emits icon for r, with the same clipping as DrawText. Renderers
// centre the sprite in r.
func (ctx *Context) DrawIcon(icon Icon, r Rect, c Color) {
	clipped := ctx.CheckClip(r)
	if clipped == ClipAll {
		return
	}
	if clipped == ClipPart {
		ctx.SetClip(ctx.ClipRect())
	}
	ctx.pushIcon(icon, r, c)
	if clipped != ClipNone {
		ctx.SetClip(unclippedRect)
	}
}
