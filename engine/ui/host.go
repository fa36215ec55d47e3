package ui

// Host is what the engine needs from the application: text metrics and
// the themed frame painter. Embed DefaultFrame to keep the stock frame.
type Host interface {
	TextWidth(font Font, s string) int
	TextHeight(font Font) int
	DrawFrame(ctx *Context, r Rect, color ColorID)
}

// DefaultFrame provides the stock DrawFrame: a fill plus a one pixel border
// outside the rectangle. Scrollbars and the title bar get no border, and
// no border is drawn while the border colour is fully transparent.
type DefaultFrame struct{}

func (DefaultFrame) DrawFrame(ctx *Context, r Rect, color ColorID) {
	style := ctx.Style()
	ctx.DrawRect(r, style.Colors[color])
	if color == ColorScrollBase || color == ColorScrollThumb || color == ColorTitleBG {
		return
	}
	if border := style.Colors[ColorBorder]; border.A != 0 {
		ctx.DrawBox(r.Expand(1), border)
	}
}

// MeasureFuncs adapts two plain functions into a Host with the default
// frame.
type MeasureFuncs struct {
	DefaultFrame
	Width  func(font Font, s string) int
	Height func(font Font) int
}

func (m MeasureFuncs) TextWidth(font Font, s string) int { return m.Width(font, s) }
func (m MeasureFuncs) TextHeight(font Font) int          { return m.Height(font) }

func hostReady(h Host) bool {
	if h == nil {
		return false
	}
	if m, ok := h.(MeasureFuncs); ok {
		return m.Width != nil && m.Height != nil
	}
	if m, ok := h.(*MeasureFuncs); ok {
		return m != nil && m.Width != nil && m.Height != nil
	}
	return true
}
