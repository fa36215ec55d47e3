package ui

// Container is the retained state of a window, popup or panel. It lives in
// the context's container pool and is recycled when the pool runs out.
type Container struct {
	Rect        Rect // outer rectangle, title bar included
	Body        Rect // content area after title bar and scrollbars
	ContentSize Vec2 // extent of the content laid out last frame
	Scroll      Vec2
	ZIndex      int
	Open        bool

	root bool
	head int // offset of the leading jump; root containers only
	tail int // offset of the trailing jump
}

// Container returns the container for name in the current id scope,
// creating it if needed.
func (ctx *Context) Container(name string) *Container {
	return ctx.getContainer(ctx.IDString(name), 0)
}

// CurrentContainer returns the innermost open container.
func (ctx *Context) CurrentContainer() *Container {
	expect(!ctx.containerStack.Empty(), ErrStackUnderflow, "current container", "no open container")
	return ctx.containerStack.Top()
}

func (ctx *Context) getContainer(id ID, opt Opt) *Container {
	if idx := ctx.containerPool.Get(id); idx >= 0 {
		if ctx.containers[idx].Open || opt&OptClosed == 0 {
			ctx.containerPool.Update(ctx.frame, idx)
		}
		return &ctx.containers[idx]
	}
	if opt&OptClosed != 0 {
		return nil
	}
	idx := ctx.containerPool.Init(ctx.frame, id)
	cnt := &ctx.containers[idx]
	*cnt = Container{Open: true}
	ctx.BringToFront(cnt)
	Logger().Debug("container created", "id", uint32(id), "slot", idx)
	return cnt
}

func (ctx *Context) popContainer() {
	cnt := ctx.CurrentContainer()
	l := ctx.layout()
	cnt.ContentSize = Vec2{l.max.X - l.body.X, l.max.Y - l.body.Y}
	ctx.containerStack.Pop()
	ctx.layoutStack.Pop()
	ctx.PopID()
}

// inHoverRoot reports whether the current container belongs to the root
// under the mouse. The walk stops at the first root so nested roots are
// judged on their own.
func (ctx *Context) inHoverRoot() bool {
	stack := ctx.containerStack.Items()
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == ctx.hoverRoot {
			return true
		}
		if stack[i].root {
			break
		}
	}
	return false
}

func (ctx *Context) beginRootContainer(cnt *Container) {
	ctx.containerStack.Push(cnt)
	ctx.rootList.Push(cnt)
	cnt.root = true
	cnt.head = ctx.pushJump(-1)
	if cnt.Rect.Contains(ctx.mousePos) &&
		(ctx.nextHoverRoot == nil || cnt.ZIndex > ctx.nextHoverRoot.ZIndex) {
		ctx.nextHoverRoot = cnt
	}
	// A root declared inside another root must not inherit its clipping.
	ctx.clipStack.Push(unclippedRect)
}

func (ctx *Context) endRootContainer() {
	cnt := ctx.CurrentContainer()
	cnt.tail = ctx.pushJump(-1)
	// Skip over this run when the enclosing run is walked; End relinks it.
	ctx.commands.setJump(cnt.head, ctx.commands.Len())
	ctx.PopClipRect()
	ctx.popContainer()
}

// scrollbar handles the vertical scrollbar of cnt. The horizontal one
// reuses it with every rectangle and vector transposed.
func (ctx *Context) scrollbar(cnt *Container, body Rect, cs Vec2, id ID, horizontal bool) {
	b := body
	scroll := cnt.Scroll
	if horizontal {
		b, cs, scroll = b.transpose(), cs.transpose(), scroll.transpose()
	}
	style := ctx.style

	maxScroll := cs.Y - b.H
	if maxScroll > 0 && b.H > 0 {
		base := b
		base.X = b.X + b.W
		base.W = style.ScrollbarSize
		delta := ctx.mouseDelta
		if horizontal {
			delta = delta.transpose()
		}

		ctx.UpdateControl(id, orient(base, horizontal), 0)
		if ctx.focus == id && ctx.mouseDown == MouseLeft {
			scroll.Y += delta.Y * cs.Y / base.H
		}
		scroll.Y = clamp(scroll.Y, 0, maxScroll)

		ctx.host.DrawFrame(ctx, orient(base, horizontal), ColorScrollBase)
		thumb := base
		thumb.H = max(style.ThumbSize, base.H*b.H/cs.Y)
		thumb.Y += scroll.Y * (base.H - thumb.H) / maxScroll
		ctx.host.DrawFrame(ctx, orient(thumb, horizontal), ColorScrollThumb)

		if ctx.MouseOver(body) {
			ctx.scrollTarget = cnt
		}
	} else {
		scroll.Y = 0
	}

	if horizontal {
		scroll = scroll.transpose()
	}
	cnt.Scroll = scroll
}

// orient maps a rectangle computed in vertical terms back to screen space.
func orient(r Rect, horizontal bool) Rect {
	if horizontal {
		return r.transpose()
	}
	return r
}

var (
	scrollbarYID = []byte("!scrollbary")
	scrollbarXID = []byte("!scrollbarx")
)

func (ctx *Context) scrollbars(cnt *Container, body *Rect) {
	sz := ctx.style.ScrollbarSize
	cs := cnt.ContentSize
	cs.X += ctx.style.Padding * 2
	cs.Y += ctx.style.Padding * 2
	ctx.PushClipRect(*body)
	if cs.Y > cnt.Body.H {
		body.W -= sz
	}
	if cs.X > cnt.Body.W {
		body.H -= sz
	}
	ctx.scrollbar(cnt, *body, cs, ctx.ID(scrollbarYID), false)
	ctx.scrollbar(cnt, *body, cs, ctx.ID(scrollbarXID), true)
	ctx.PopClipRect()
}

func (ctx *Context) pushContainerBody(cnt *Container, body Rect, opt Opt) {
	if opt&OptNoScroll == 0 {
		ctx.scrollbars(cnt, &body)
	}
	ctx.pushLayout(body.Expand(-ctx.style.Padding), cnt.Scroll)
	cnt.Body = body
}

var (
	titleID  = []byte("!title")
	closeID  = []byte("!close")
	resizeID = []byte("!resize")
)

// BeginWindow opens a window titled title, initially placed at r. It
// returns ResActive when the window is open and its content should be
// declared, followed by EndWindow.
func (ctx *Context) BeginWindow(title string, r Rect) Res {
	return ctx.BeginWindowEx(title, r, 0)
}

func (ctx *Context) BeginWindowEx(title string, r Rect, opt Opt) Res {
	id := ctx.IDString(title)
	cnt := ctx.getContainer(id, opt)
	if cnt == nil || !cnt.Open {
		return 0
	}
	ctx.idStack.Push(id)

	if cnt.Rect.W == 0 {
		cnt.Rect = r
	}
	ctx.beginRootContainer(cnt)
	rect := cnt.Rect
	body := rect
	style := ctx.style

	if opt&OptNoFrame == 0 {
		ctx.host.DrawFrame(ctx, rect, ColorWindowBG)
	}

	if opt&OptNoTitle == 0 {
		tr := rect
		tr.H = style.TitleHeight
		ctx.host.DrawFrame(ctx, tr, ColorTitleBG)

		tid := ctx.ID(titleID)
		ctx.UpdateControl(tid, tr, opt)
		ctx.DrawControlText(title, tr, ColorTitleText, opt)
		if tid == ctx.focus && ctx.mouseDown == MouseLeft {
			cnt.Rect = cnt.Rect.Translate(ctx.mouseDelta)
		}
		body.Y += tr.H
		body.H -= tr.H

		if opt&OptNoClose == 0 {
			cid := ctx.ID(closeID)
			cr := Rect{tr.X + tr.W - tr.H, tr.Y, tr.H, tr.H}
			ctx.DrawIcon(IconClose, cr, style.Colors[ColorTitleText])
			ctx.UpdateControl(cid, cr, opt)
			if ctx.mousePressed == MouseLeft && cid == ctx.focus {
				cnt.Open = false
			}
		}
	}

	ctx.pushContainerBody(cnt, body, opt)

	if opt&OptNoResize == 0 {
		sz := style.TitleHeight
		rid := ctx.ID(resizeID)
		rr := Rect{rect.X + rect.W - sz, rect.Y + rect.H - sz, sz, sz}
		ctx.UpdateControl(rid, rr, opt)
		if rid == ctx.focus && ctx.mouseDown == MouseLeft {
			cnt.Rect.W = max(ctx.style.MinWindowSize.X, cnt.Rect.W+ctx.mouseDelta.X)
			cnt.Rect.H = max(ctx.style.MinWindowSize.Y, cnt.Rect.H+ctx.mouseDelta.Y)
		}
	}

	if opt&OptAutoSize != 0 {
		lb := ctx.layout().body
		cnt.Rect.W = cnt.ContentSize.X + (cnt.Rect.W - lb.W)
		cnt.Rect.H = cnt.ContentSize.Y + (cnt.Rect.H - lb.H)
	}

	// Popups close on any click outside them.
	if opt&OptPopup != 0 && ctx.mousePressed != 0 && ctx.hoverRoot != cnt {
		cnt.Open = false
	}

	ctx.PushClipRect(cnt.Body)
	return ResActive
}

func (ctx *Context) EndWindow() {
	ctx.PopClipRect()
	ctx.endRootContainer()
}

// OpenPopup opens the popup name at the mouse position and raises it.
func (ctx *Context) OpenPopup(name string) {
	cnt := ctx.Container(name)
	// Hover it now so the opening click does not close it again.
	ctx.hoverRoot = cnt
	ctx.nextHoverRoot = cnt
	cnt.Rect = Rect{ctx.mousePos.X, ctx.mousePos.Y, 1, 1}
	cnt.Open = true
	ctx.BringToFront(cnt)
}

const popupOpts = OptPopup | OptAutoSize | OptNoResize | OptNoScroll | OptNoTitle | OptClosed

// BeginPopup declares the popup name. It is only active after OpenPopup
// and until a click lands outside it.
func (ctx *Context) BeginPopup(name string) Res {
	return ctx.BeginWindowEx(name, Rect{}, popupOpts)
}

func (ctx *Context) EndPopup() { ctx.EndWindow() }

// BeginPanel opens a scrollable sub-region occupying the next layout cell.
func (ctx *Context) BeginPanel(name string) { ctx.BeginPanelEx(name, 0) }

func (ctx *Context) BeginPanelEx(name string, opt Opt) {
	ctx.PushIDString(name)
	cnt := ctx.getContainer(ctx.lastID, opt)
	cnt.Rect = ctx.LayoutNext()
	if opt&OptNoFrame == 0 {
		ctx.host.DrawFrame(ctx, cnt.Rect, ColorPanelBG)
	}
	ctx.containerStack.Push(cnt)
	ctx.pushContainerBody(cnt, cnt.Rect, opt)
	ctx.PushClipRect(cnt.Body)
}

func (ctx *Context) EndPanel() {
	ctx.PopClipRect()
	ctx.popContainer()
}
