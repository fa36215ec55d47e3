package core

import (
	"unicode/utf8"

	"github.com/hubastard/microgrove/engine/ui"
)

// ScrollStep converts one wheel notch into UI pixels.
const ScrollStep = 30

// Input forwards window events into a ui.Context. Button events carry no
// position, so it keeps the last cursor position for them.
type Input struct {
	ctx            *ui.Context
	mouseX, mouseY int
	scale          float64
	keys           map[Key]bool
}

func NewInput(ctx *ui.Context) *Input { return &Input{ctx: ctx, scale: 1, keys: map[Key]bool{}} }

// SetScale sets the number of screen coordinates per UI unit.
func (in *Input) SetScale(s float64) {
	if s > 0 {
		in.scale = s
	}
}

// Handle forwards ev and reports whether it was an input event.
func (in *Input) Handle(ev Event) bool {
	switch e := ev.(type) {
	case EventMouseMove:
		in.mouseX, in.mouseY = int(e.X/in.scale), int(e.Y/in.scale)
		in.ctx.InputMouseMove(in.mouseX, in.mouseY)
	case EventMouseButton:
		btn := uiButton(e.Button)
		if btn == 0 {
			return false
		}
		if e.Down {
			in.ctx.InputMouseDown(in.mouseX, in.mouseY, btn)
		} else {
			in.ctx.InputMouseUp(in.mouseX, in.mouseY, btn)
		}
	case EventScroll:
		in.ctx.InputScroll(int(e.Xoff*-ScrollStep), int(e.Yoff*-ScrollStep))
	case EventKey:
		in.keys[e.Key] = e.Down
		k := uiKey(e.Key)
		if k == 0 {
			return false
		}
		if e.Down {
			in.ctx.InputKeyDown(k)
		} else {
			in.ctx.InputKeyUp(k)
		}
	case EventChar:
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], e.Rune)
		if n > in.ctx.TextRoom() {
			Logger().Debug("dropped typed text", "rune", e.Rune)
			return true
		}
		in.ctx.InputText(string(buf[:n]))
	default:
		return false
	}
	return true
}

func (in *Input) IsKeyDown(k Key) bool { return in.keys[k] }
func (in *Input) Mouse() (int, int)    { return in.mouseX, in.mouseY }

func uiButton(b MouseButton) ui.MouseButton {
	switch b {
	case MouseLeft:
		return ui.MouseLeft
	case MouseRight:
		return ui.MouseRight
	case MouseMiddle:
		return ui.MouseMiddle
	}
	return 0
}

func uiKey(k Key) ui.Key {
	switch k {
	case KeyLeftShift, KeyRightShift:
		return ui.KeyShift
	case KeyLeftControl, KeyRightControl:
		return ui.KeyCtrl
	case KeyLeftAlt, KeyRightAlt:
		return ui.KeyAlt
	case KeyBackspace:
		return ui.KeyBackspace
	case KeyEnter:
		return ui.KeyReturn
	}
	return 0
}
