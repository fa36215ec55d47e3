package ui

// MouseButton is a bit set of mouse buttons.
type MouseButton uint8

const (
	MouseLeft MouseButton = 1 << iota
	MouseRight
	MouseMiddle
)

// Key is a bit set of the keys the engine reacts to.
type Key uint8

const (
	KeyShift Key = 1 << iota
	KeyCtrl
	KeyAlt
	KeyBackspace
	KeyReturn
)

// InputTextSize is the number of text bytes that can be queued per frame.
const InputTextSize = 32

// The Input* methods only record raw state. Widgets react to it during the
// next frame's declarations. Call them once per host event, between End
// and the following Begin or during the frame.

func (ctx *Context) InputMouseMove(x, y int) {
	ctx.mousePos = Vec2{x, y}
}

func (ctx *Context) InputMouseDown(x, y int, btn MouseButton) {
	ctx.InputMouseMove(x, y)
	ctx.mouseDown |= btn
	ctx.mousePressed |= btn
}

func (ctx *Context) InputMouseUp(x, y int, btn MouseButton) {
	ctx.InputMouseMove(x, y)
	ctx.mouseDown &^= btn
}

// InputScroll accumulates wheel movement, in pixels, until End.
func (ctx *Context) InputScroll(x, y int) {
	ctx.scrollDelta.X += x
	ctx.scrollDelta.Y += y
}

func (ctx *Context) InputKeyDown(key Key) {
	ctx.keyPressed |= key
	ctx.keyDown |= key
}

func (ctx *Context) InputKeyUp(key Key) {
	ctx.keyDown &^= key
}

// InputText queues typed UTF-8 text for the focused textbox. Queuing more
// than InputTextSize bytes in one frame is fatal.
func (ctx *Context) InputText(s string) {
	expect(ctx.inputLen+len(s) <= InputTextSize, ErrCapacity, "input text", "text input buffer full")
	ctx.inputLen += copy(ctx.inputText[ctx.inputLen:], s)
}

// TextRoom reports how many more bytes InputText accepts this frame.
func (ctx *Context) TextRoom() int { return InputTextSize - ctx.inputLen }

func (ctx *Context) MousePos() Vec2   { return ctx.mousePos }
func (ctx *Context) MouseDelta() Vec2 { return ctx.mouseDelta }

// MouseDown reports the buttons currently held.
func (ctx *Context) MouseDown() MouseButton { return ctx.mouseDown }

// MousePressed reports the buttons that went down since the last End.
func (ctx *Context) MousePressed() MouseButton { return ctx.mousePressed }

func (ctx *Context) KeyDown() Key    { return ctx.keyDown }
func (ctx *Context) KeyPressed() Key { return ctx.keyPressed }

// TypedText returns a copy of the text queued this frame.
func (ctx *Context) TypedText() string {
	if ctx.inputLen == 0 {
		return ""
	}
	return string(ctx.inputText[:ctx.inputLen])
}

func (ctx *Context) resetInput() {
	ctx.keyPressed = 0
	ctx.inputLen = 0
	ctx.mousePressed = 0
	ctx.scrollDelta = Vec2{}
	ctx.lastMousePos = ctx.mousePos
}
