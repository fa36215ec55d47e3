package ui

// MouseOver reports whether the mouse is over r, inside the current clip
// rectangle, and over the root container being declared.
func (ctx *Context) MouseOver(r Rect) bool {
	return r.Contains(ctx.mousePos) && ctx.ClipRect().Contains(ctx.mousePos) && ctx.inHoverRoot()
}

// UpdateControl runs the hover/focus state machine for the widget id
// occupying r. Every interactive widget calls it once per frame.
//
// A widget becomes hovered when the mouse is over it with no button held,
// and focused on a press while hovered. Focus is dropped on a press
// outside the widget, or on release unless opt has OptHoldFocus.
func (ctx *Context) UpdateControl(id ID, r Rect, opt Opt) {
	mouseover := ctx.MouseOver(r)

	if ctx.focus == id {
		ctx.updatedFocus = true
	}
	if opt&OptNoInteract != 0 {
		return
	}
	if mouseover && ctx.mouseDown == 0 {
		ctx.hover = id
	}

	if ctx.focus == id {
		if ctx.mousePressed != 0 && !mouseover {
			ctx.SetFocus(0)
		}
		if ctx.mouseDown == 0 && opt&OptHoldFocus == 0 {
			ctx.SetFocus(0)
		}
	}

	if ctx.hover == id {
		if ctx.mousePressed != 0 {
			ctx.SetFocus(id)
		} else if !mouseover {
			ctx.hover = 0
		}
	}
}

// DrawControlFrame draws the frame for a widget, shifting color to its
// hover or focus variant.
func (ctx *Context) DrawControlFrame(id ID, r Rect, color ColorID, opt Opt) {
	if opt&OptNoFrame != 0 {
		return
	}
	switch id {
	case ctx.focus:
		color += 2
	case ctx.hover:
		color++
	}
	ctx.host.DrawFrame(ctx, r, color)
}

// DrawControlText draws s vertically centred in r, aligned per opt and
// clipped to r.
func (ctx *Context) DrawControlText(s string, r Rect, color ColorID, opt Opt) {
	style := ctx.style
	font := style.Font
	tw := ctx.host.TextWidth(font, s)
	ctx.PushClipRect(r)
	pos := Vec2{Y: r.Y + (r.H-ctx.host.TextHeight(font))/2}
	switch {
	case opt&OptAlignCenter != 0:
		pos.X = r.X + (r.W-tw)/2
	case opt&OptAlignRight != 0:
		pos.X = r.X + r.W - tw - style.Padding
	default:
		pos.X = r.X + style.Padding
	}
	ctx.DrawText(font, s, pos, style.Colors[color])
	ctx.PopClipRect()
}
