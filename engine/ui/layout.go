package ui

// MaxWidths is the largest column count a single layout row may declare.
const MaxWidths = 16

const (
	nextRelative = 1
	nextAbsolute = 2
)

// layout is one frame of the layout stack. Positions are relative to body;
// max tracks the furthest absolute extent reached so containers can report
// their content size.
type layout struct {
	body      Rect
	next      Rect
	position  Vec2
	size      Vec2
	max       Vec2
	widths    [MaxWidths]int
	items     int
	itemIndex int
	nextRow   int
	nextType  int
	indent    int
}

func (ctx *Context) pushLayout(body Rect, scroll Vec2) {
	ctx.layoutStack.Push(layout{
		body: Rect{body.X - scroll.X, body.Y - scroll.Y, body.W, body.H},
		max:  Vec2{-0x1000000, -0x1000000},
	})
	ctx.LayoutRow(fillWidth[:], 0)
}

var fillWidth = [1]int{0}

func (ctx *Context) layout() *layout { return ctx.layoutStack.Peek() }

// LayoutBeginColumn starts a nested layout occupying the next cell of the
// current row. Widgets inside flow independently of their siblings.
func (ctx *Context) LayoutBeginColumn() {
	ctx.pushLayout(ctx.LayoutNext(), Vec2{})
}

// LayoutEndColumn closes the column and folds its extent into the parent so
// the parent's cursor and content size account for it.
func (ctx *Context) LayoutEndColumn() {
	b := ctx.layoutStack.Pop()
	a := ctx.layout()
	a.position.X = max(a.position.X, b.position.X+b.body.X-a.body.X)
	a.nextRow = max(a.nextRow, b.nextRow+b.body.Y-a.body.Y)
	a.max.X = max(a.max.X, b.max.X)
	a.max.Y = max(a.max.Y, b.max.Y)
}

// LayoutRow declares the next row: one column per entry of widths and the
// row height. A width or height of 0 means the style default; a negative
// value fills up to that many pixels before the far edge of the body.
func (ctx *Context) LayoutRow(widths []int, height int) {
	expect(len(widths) <= MaxWidths, ErrCapacity, "layout row", "too many columns")
	l := ctx.layout()
	copy(l.widths[:], widths)
	ctx.layoutRow(l, len(widths), height)
}

// LayoutRowN starts a row of items columns reusing the widths declared by
// the previous LayoutRow. With items == 0 every cell uses LayoutWidth.
func (ctx *Context) LayoutRowN(items, height int) {
	expect(items <= MaxWidths, ErrCapacity, "layout row", "too many columns")
	ctx.layoutRow(ctx.layout(), items, height)
}

func (ctx *Context) layoutRow(l *layout, items, height int) {
	l.items = items
	l.position = Vec2{l.indent, l.nextRow}
	l.size.Y = height
	l.itemIndex = 0
}

// LayoutWidth sets the cell width used when the row declares no columns.
func (ctx *Context) LayoutWidth(width int) { ctx.layout().size.X = width }

// LayoutHeight changes the height of the current row.
func (ctx *Context) LayoutHeight(height int) { ctx.layout().size.Y = height }

// LayoutSetNext overrides the next LayoutNext result. A relative rectangle
// is offset by the body origin and still advances the cursor; an absolute
// one is returned as is.
func (ctx *Context) LayoutSetNext(r Rect, relative bool) {
	l := ctx.layout()
	l.next = r
	if relative {
		l.nextType = nextRelative
	} else {
		l.nextType = nextAbsolute
	}
}

// LayoutNext allocates the rectangle for the next widget.
func (ctx *Context) LayoutNext() Rect {
	l := ctx.layout()
	style := ctx.style
	var res Rect

	if l.nextType != 0 {
		typ := l.nextType
		l.nextType = 0
		res = l.next
		if typ == nextAbsolute {
			ctx.lastRect = res
			return res
		}
	} else {
		if l.itemIndex == l.items {
			ctx.layoutRow(l, l.items, l.size.Y)
		}

		res.X = l.position.X
		res.Y = l.position.Y
		if l.items > 0 {
			res.W = l.widths[l.itemIndex]
		} else {
			res.W = l.size.X
		}
		res.H = l.size.Y
		if res.W == 0 {
			res.W = style.Size.X + style.Padding*2
		}
		if res.H == 0 {
			res.H = style.Size.Y + style.Padding*2
		}
		if res.W < 0 {
			res.W += l.body.W - res.X + 1
		}
		if res.H < 0 {
			res.H += l.body.H - res.Y + 1
		}
		l.itemIndex++
	}

	l.position.X += res.W + style.Spacing
	l.nextRow = max(l.nextRow, res.Y+res.H+style.Spacing)

	res.X += l.body.X
	res.Y += l.body.Y

	l.max.X = max(l.max.X, res.X+res.W)
	l.max.Y = max(l.max.Y, res.Y+res.H)

	ctx.lastRect = res
	return res
}

// LastRect returns the rectangle most recently handed out by LayoutNext.
func (ctx *Context) LastRect() Rect { return ctx.lastRect }
