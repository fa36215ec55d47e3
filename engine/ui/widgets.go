package ui

import (
	"encoding/binary"
	"errors"
	"strconv"
	"strings"
)

// Default formats for slider and number values.
const (
	SliderFormat = "%.2f"
	RealFormat   = "%.3g" // used when a value is edited as text
)

var fillRow = [1]int{-1}

// Label draws non-interactive text in the next layout cell.
func (ctx *Context) Label(text string) {
	ctx.DrawControlText(text, ctx.LayoutNext(), ColorText, 0)
}

// Text draws a paragraph word-wrapped to the width of the current layout
// column. Newlines force a break.
func (ctx *Context) Text(text string) {
	font := ctx.style.Font
	color := ctx.style.Colors[ColorText]
	ctx.LayoutBeginColumn()
	ctx.LayoutRow(fillRow[:], ctx.host.TextHeight(font))
	p, end := 0, 0
	for {
		r := ctx.LayoutNext()
		w := 0
		start := p
		end = p
		for {
			word := p
			for p < len(text) && text[p] != ' ' && text[p] != '\n' {
				p++
			}
			w += ctx.host.TextWidth(font, text[word:p])
			if w > r.W && end != start {
				break
			}
			if p < len(text) {
				w += ctx.host.TextWidth(font, text[p:p+1])
			}
			end = p
			p++
			if end >= len(text) || text[end] == '\n' {
				break
			}
		}
		ctx.DrawText(font, text[start:end], r.Pos(), color)
		p = end + 1
		if end >= len(text) {
			break
		}
	}
	ctx.LayoutEndColumn()
}

// Button is ButtonEx with centred text and no icon.
func (ctx *Context) Button(label string) Res {
	return ctx.ButtonEx(label, 0, OptAlignCenter)
}

// ButtonEx returns ResSubmit on the frame the button is clicked. A button
// with an empty label is identified by its icon.
func (ctx *Context) ButtonEx(label string, icon Icon, opt Opt) Res {
	var res Res
	var id ID
	if label != "" {
		id = ctx.IDString(label)
	} else {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(icon))
		id = ctx.ID(b[:])
	}
	r := ctx.LayoutNext()
	ctx.UpdateControl(id, r, opt)
	if ctx.mousePressed == MouseLeft && ctx.focus == id {
		res |= ResSubmit
	}
	ctx.DrawControlFrame(id, r, ColorButton, opt)
	if label != "" {
		ctx.DrawControlText(label, r, ColorText, opt)
	}
	if icon != 0 {
		ctx.DrawIcon(icon, r, ctx.style.Colors[ColorText])
	}
	return res
}

// Checkbox toggles *state when clicked and returns ResChange on that
// frame. The checkbox is identified by the address of state.
func (ctx *Context) Checkbox(label string, state *bool) Res {
	var res Res
	id := ctx.IDPtr(state)
	r := ctx.LayoutNext()
	box := Rect{r.X, r.Y, r.H, r.H}
	ctx.UpdateControl(id, r, 0)
	if ctx.mousePressed == MouseLeft && ctx.focus == id {
		res |= ResChange
		*state = !*state
	}
	ctx.DrawControlFrame(id, box, ColorBase, 0)
	if *state {
		ctx.DrawIcon(IconCheck, box, ctx.style.Colors[ColorText])
	}
	r = Rect{r.X + box.W, r.Y, r.W - box.W, r.H}
	ctx.DrawControlText(label, r, ColorText, 0)
	return res
}

// TextboxRaw edits buf as the widget id occupying r. It returns ResChange
// when the text changed and ResSubmit when Return was pressed, which also
// releases focus.
func (ctx *Context) TextboxRaw(buf *TextBuffer, id ID, r Rect, opt Opt) Res {
	var res Res
	ctx.UpdateControl(id, r, opt|OptHoldFocus)

	if ctx.focus == id {
		if ctx.inputLen > 0 && buf.appendBytes(ctx.inputText[:ctx.inputLen]) > 0 {
			res |= ResChange
		}
		if ctx.keyPressed&KeyBackspace != 0 && buf.Backspace() {
			res |= ResChange
		}
		if ctx.keyPressed&KeyReturn != 0 {
			ctx.SetFocus(0)
			res |= ResSubmit
		}
	}

	ctx.DrawControlFrame(id, r, ColorBase, opt)
	if ctx.focus == id {
		style := ctx.style
		color := style.Colors[ColorText]
		font := style.Font
		text := buf.view()
		textw := ctx.host.TextWidth(font, text)
		texth := ctx.host.TextHeight(font)
		ofx := r.W - style.Padding - textw - 1
		textx := r.X + min(ofx, style.Padding)
		texty := r.Y + (r.H-texth)/2
		ctx.PushClipRect(r)
		ctx.DrawText(font, text, Vec2{textx, texty}, color)
		ctx.DrawRect(Rect{textx + textw, texty, 1, texth}, color)
		ctx.PopClipRect()
	} else {
		ctx.DrawControlText(buf.view(), r, ColorText, opt)
	}
	return res
}

// Textbox edits buf in the next layout cell.
func (ctx *Context) Textbox(buf *TextBuffer) Res { return ctx.TextboxEx(buf, 0) }

func (ctx *Context) TextboxEx(buf *TextBuffer, opt Opt) Res {
	id := ctx.IDPtr(buf)
	r := ctx.LayoutNext()
	return ctx.TextboxRaw(buf, id, r, opt)
}

// numberTextbox swaps a slider or number widget for a textbox while the
// user types an exact value. Shift-click starts editing; Return or losing
// focus commits. It reports whether the edit is still in progress, in
// which case the caller skips its normal handling.
func (ctx *Context) numberTextbox(value *float32, r Rect, id ID) bool {
	if ctx.mousePressed == MouseLeft && ctx.keyDown&KeyShift != 0 && ctx.hover == id {
		ctx.numberEdit = id
		ctx.numberEditBuf.Set(ctx.format.Float(RealFormat, float64(*value)))
	}
	if ctx.numberEdit == id {
		res := ctx.TextboxRaw(ctx.numberEditBuf, id, r, 0)
		if res&ResSubmit != 0 || ctx.focus != id {
			*value = parseReal(ctx.numberEditBuf.view())
			ctx.numberEdit = 0
		} else {
			return true
		}
	}
	return false
}

// parseReal reads the longest numeric prefix of s. Text with no numeric
// prefix yields 0.
func parseReal(s string) float32 {
	s = strings.TrimLeft(s, " \t\n")
	for n := len(s); n > 0; n-- {
		v, err := strconv.ParseFloat(s[:n], 32)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return float32(v)
		}
	}
	return 0
}

// Slider is SliderEx with no step, two decimals and centred text.
func (ctx *Context) Slider(value *float32, lo, hi float32) Res {
	return ctx.SliderEx(value, lo, hi, 0, SliderFormat, OptAlignCenter)
}

// SliderEx edits *value in [lo, hi] by dragging. A non-zero step snaps the
// value to multiples of step. format is a single-verb format such as
// "%.2f". Returns ResChange when the value changed.
func (ctx *Context) SliderEx(value *float32, lo, hi, step float32, format string, opt Opt) Res {
	var res Res
	last := *value
	v := last
	id := ctx.IDPtr(value)
	base := ctx.LayoutNext()

	if ctx.numberTextbox(&v, base, id) {
		return res
	}

	ctx.UpdateControl(id, base, opt)
	if ctx.focus == id && (ctx.mouseDown|ctx.mousePressed) == MouseLeft {
		v = lo + float32(ctx.mousePos.X-base.X)*(hi-lo)/float32(base.W)
		if step != 0 {
			v = float32(int64((v+step/2)/step)) * step
		}
	}
	v = clampReal(v, lo, hi)
	*value = v
	if last != v {
		res |= ResChange
	}

	ctx.DrawControlFrame(id, base, ColorBase, opt)
	w := ctx.style.ThumbSize
	x := 0
	if hi > lo {
		x = int((v - lo) * float32(base.W-w) / (hi - lo))
	}
	thumb := Rect{base.X + x, base.Y, w, base.H}
	ctx.DrawControlFrame(id, thumb, ColorButton, opt)

	ctx.DrawControlText(ctx.format.Float(format, float64(v)), base, ColorText, opt)
	return res
}

// Number is NumberEx with two decimals and centred text.
func (ctx *Context) Number(value *float32, step float32) Res {
	return ctx.NumberEx(value, step, SliderFormat, OptAlignCenter)
}

// NumberEx edits *value by dragging horizontally, step per pixel.
func (ctx *Context) NumberEx(value *float32, step float32, format string, opt Opt) Res {
	var res Res
	id := ctx.IDPtr(value)
	base := ctx.LayoutNext()
	last := *value

	if ctx.numberTextbox(value, base, id) {
		return res
	}

	ctx.UpdateControl(id, base, opt)
	if ctx.focus == id && ctx.mouseDown == MouseLeft {
		*value += float32(ctx.mouseDelta.X) * step
	}
	if *value != last {
		res |= ResChange
	}

	ctx.DrawControlFrame(id, base, ColorBase, opt)
	ctx.DrawControlText(ctx.format.Float(format, float64(*value)), base, ColorText, opt)
	return res
}

func (ctx *Context) header(label string, treeNode bool, opt Opt) Res {
	id := ctx.IDString(label)
	idx := ctx.treeNodePool.Get(id)
	ctx.LayoutRow(fillRow[:], 0)

	active := idx >= 0
	expanded := active
	if opt&OptExpanded != 0 {
		expanded = !active
	}
	r := ctx.LayoutNext()
	ctx.UpdateControl(id, r, 0)

	if ctx.mousePressed == MouseLeft && ctx.focus == id {
		active = !active
	}

	switch {
	case idx >= 0 && active:
		ctx.treeNodePool.Update(ctx.frame, idx)
	case idx >= 0:
		ctx.treeNodePool.Clear(idx)
	case active:
		ctx.treeNodePool.Init(ctx.frame, id)
	}

	if treeNode {
		if ctx.hover == id {
			ctx.host.DrawFrame(ctx, r, ColorButtonHover)
		}
	} else {
		ctx.DrawControlFrame(id, r, ColorButton, 0)
	}
	icon := IconCollapsed
	if expanded {
		icon = IconExpanded
	}
	ctx.DrawIcon(icon, Rect{r.X, r.Y, r.H, r.H}, ctx.style.Colors[ColorText])
	r.X += r.H - ctx.style.Padding
	r.W -= r.H - ctx.style.Padding
	ctx.DrawControlText(label, r, ColorText, 0)

	if expanded {
		return ResActive
	}
	return 0
}

// Header draws a collapsible section header and returns ResActive while it
// is expanded. The expanded state is retained by label.
func (ctx *Context) Header(label string) Res { return ctx.HeaderEx(label, 0) }

// HeaderEx with OptExpanded starts the header expanded.
func (ctx *Context) HeaderEx(label string, opt Opt) Res {
	return ctx.header(label, false, opt)
}

// BeginTreeNode is like Header but indents its content. When it returns
// ResActive the caller must close it with EndTreeNode.
func (ctx *Context) BeginTreeNode(label string) Res { return ctx.BeginTreeNodeEx(label, 0) }

func (ctx *Context) BeginTreeNodeEx(label string, opt Opt) Res {
	res := ctx.header(label, true, opt)
	if res&ResActive != 0 {
		ctx.layout().indent += ctx.style.Indent
		ctx.idStack.Push(ctx.lastID)
	}
	return res
}

func (ctx *Context) EndTreeNode() {
	ctx.layout().indent -= ctx.style.Indent
	ctx.PopID()
}
