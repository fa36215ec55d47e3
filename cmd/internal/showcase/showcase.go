// Package showcase is the demo UI both hosts run: a widget tour, a log
// window and a live style editor.
package showcase

import (
	"strings"

	"github.com/hubastard/microgrove/engine/scratch"
	"github.com/hubastard/microgrove/engine/ui"
)

// MaxLog bounds the log text; the oldest lines are dropped past it.
const MaxLog = 64000

// Metrics converts the demo's pixel layout into host units.
type Metrics struct {
	X, Y float32 // pixels per unit
}

var (
	Pixels = Metrics{1, 1}
	Cells  = Metrics{8, 16}
)

// W scales a layout width. Negative widths stay negative so they keep
// their "relative to the right edge" meaning.
func (m Metrics) W(px int) int { return scale(px, m.X) }
func (m Metrics) H(px int) int { return scale(px, m.Y) }

func (m Metrics) Rect(x, y, w, h int) ui.Rect {
	return ui.NewRect(m.W(x), m.H(y), m.W(w), m.H(h))
}

func scale(px int, per float32) int {
	v := int(float32(px) / per)
	switch {
	case v == 0 && px > 0:
		return 1
	case v == 0 && px < 0:
		return -1
	}
	return v
}

// Showcase holds the demo's state between frames.
type Showcase struct {
	m          Metrics
	fmt        *scratch.Buffer
	log        strings.Builder
	logUpdated bool
	input      *ui.TextBuffer
	bg         [3]float32
	checks     [3]bool
	tmp        float32
}

func New(m Metrics) *Showcase {
	return &Showcase{
		m:      m,
		fmt:    scratch.New(256),
		input:  ui.NewTextBuffer(128),
		bg:     [3]float32{90, 95, 100},
		checks: [3]bool{true, false, true},
	}
}

// Background is the clear colour picked with the sliders.
func (s *Showcase) Background() ui.Color {
	return ui.RGBA(uint8(s.bg[0]), uint8(s.bg[1]), uint8(s.bg[2]), 255)
}

// LogText returns everything logged so far.
func (s *Showcase) LogText() string { return s.log.String() }

// Log appends a line to the log window and scrolls it to the end.
func (s *Showcase) Log(line string) {
	cur := s.log.String()
	if s.log.Len()+len(line)+1 > MaxLog {
		cur = trimLog(cur, len(line)+1)
		s.log.Reset()
		s.log.WriteString(cur)
	}
	if s.log.Len() > 0 {
		s.log.WriteByte('\n')
	}
	s.log.WriteString(line)
	s.logUpdated = true
}

// trimLog drops whole leading lines until need more bytes fit.
func trimLog(cur string, need int) string {
	for len(cur)+need > MaxLog {
		i := strings.IndexByte(cur, '\n')
		if i < 0 {
			return ""
		}
		cur = cur[i+1:]
	}
	return cur
}

// Frame declares every window of the demo. Call it between Begin and End.
func (s *Showcase) Frame(ctx *ui.Context) {
	s.fmt.Reset()
	s.styleWindow(ctx)
	s.logWindow(ctx)
	s.testWindow(ctx)
}

func (s *Showcase) testWindow(ctx *ui.Context) {
	m := s.m
	if ctx.BeginWindow("Demo Window", m.Rect(40, 40, 300, 450)) == 0 {
		return
	}
	win := ctx.CurrentContainer()
	win.Rect.W = max(win.Rect.W, m.W(240))
	win.Rect.H = max(win.Rect.H, m.H(300))

	if ctx.Header("Window Info") != 0 {
		ctx.LayoutRow([]int{m.W(54), -1}, 0)
		ctx.Label("Position:")
		ctx.Label(s.fmt.Sprintf("%d, %d", win.Rect.X, win.Rect.Y))
		ctx.Label("Size:")
		ctx.Label(s.fmt.Sprintf("%d, %d", win.Rect.W, win.Rect.H))
	}

	if ctx.HeaderEx("Test Buttons", ui.OptExpanded) != 0 {
		ctx.LayoutRow([]int{m.W(86), m.W(-110), -1}, 0)
		ctx.Label("Test buttons 1:")
		if ctx.Button("Button 1") != 0 {
			s.Log("Pressed button 1")
		}
		if ctx.Button("Button 2") != 0 {
			s.Log("Pressed button 2")
		}
		ctx.Label("Test buttons 2:")
		if ctx.Button("Button 3") != 0 {
			s.Log("Pressed button 3")
		}
		if ctx.Button("Popup") != 0 {
			ctx.OpenPopup("Test Popup")
		}
		if ctx.BeginPopup("Test Popup") != 0 {
			ctx.Button("Hello")
			ctx.Button("World")
			ctx.EndPopup()
		}
	}

	if ctx.HeaderEx("Tree and Text", ui.OptExpanded) != 0 {
		ctx.LayoutRow([]int{m.W(140), -1}, 0)
		ctx.LayoutBeginColumn()
		s.tree(ctx)
		ctx.LayoutEndColumn()

		ctx.LayoutBeginColumn()
		ctx.LayoutRow([]int{-1}, 0)
		ctx.Text("Lorem ipsum dolor sit amet, consectetur adipiscing " +
			"elit. Maecenas lacinia, sem eu lacinia molestie, mi risus faucibus " +
			"ipsum, eu varius magna felis a nulla.")
		ctx.LayoutEndColumn()
	}

	if ctx.HeaderEx("Background Color", ui.OptExpanded) != 0 {
		ctx.LayoutRow([]int{m.W(-78), -1}, m.H(74))
		ctx.LayoutBeginColumn()
		ctx.LayoutRow([]int{m.W(46), -1}, 0)
		ctx.Label("Red:")
		ctx.Slider(&s.bg[0], 0, 255)
		ctx.Label("Green:")
		ctx.Slider(&s.bg[1], 0, 255)
		ctx.Label("Blue:")
		ctx.Slider(&s.bg[2], 0, 255)
		ctx.LayoutEndColumn()

		r := ctx.LayoutNext()
		c := s.Background()
		ctx.DrawRect(r, c)
		mark := s.fmt.Mark()
		s.fmt.C('#').Hex(uint64(c.R), 2).Hex(uint64(c.G), 2).Hex(uint64(c.B), 2)
		ctx.DrawControlText(s.fmt.StringViewFrom(mark), r, ui.ColorText, ui.OptAlignCenter)
	}

	ctx.EndWindow()
}

func (s *Showcase) tree(ctx *ui.Context) {
	if ctx.BeginTreeNode("Test 1") != 0 {
		if ctx.BeginTreeNode("Test 1a") != 0 {
			ctx.Label("Hello")
			ctx.Label("world")
			ctx.EndTreeNode()
		}
		if ctx.BeginTreeNode("Test 1b") != 0 {
			if ctx.Button("Button 1") != 0 {
				s.Log("Pressed button 1")
			}
			if ctx.Button("Button 2") != 0 {
				s.Log("Pressed button 2")
			}
			ctx.EndTreeNode()
		}
		ctx.EndTreeNode()
	}
	if ctx.BeginTreeNode("Test 2") != 0 {
		ctx.LayoutRow([]int{s.m.W(54), s.m.W(54)}, 0)
		for i, label := range [...]string{"Button 3", "Button 4", "Button 5", "Button 6"} {
			if ctx.Button(label) != 0 {
				s.Log(s.fmt.Sprintf("Pressed button %d", i+3))
			}
		}
		ctx.EndTreeNode()
	}
	if ctx.BeginTreeNode("Test 3") != 0 {
		ctx.Checkbox("Checkbox 1", &s.checks[0])
		ctx.Checkbox("Checkbox 2", &s.checks[1])
		ctx.Checkbox("Checkbox 3", &s.checks[2])
		ctx.EndTreeNode()
	}
}

func (s *Showcase) logWindow(ctx *ui.Context) {
	m := s.m
	if ctx.BeginWindow("Log Window", m.Rect(350, 40, 300, 200)) == 0 {
		return
	}
	ctx.LayoutRow([]int{-1}, m.H(-25))
	ctx.BeginPanel("Log Output")
	panel := ctx.CurrentContainer()
	ctx.LayoutRow([]int{-1}, -1)
	ctx.Text(s.log.String())
	ctx.EndPanel()
	if s.logUpdated {
		panel.Scroll.Y = panel.ContentSize.Y
		s.logUpdated = false
	}

	submitted := false
	ctx.LayoutRow([]int{m.W(-70), -1}, 0)
	if ctx.Textbox(s.input)&ui.ResSubmit != 0 {
		ctx.SetFocus(ctx.LastID())
		submitted = true
	}
	if ctx.Button("Submit") != 0 {
		submitted = true
	}
	if submitted {
		s.Log(s.input.String())
		s.input.Reset()
	}
	ctx.EndWindow()
}

func (s *Showcase) uint8Slider(ctx *ui.Context, v *uint8) {
	ctx.PushIDPtr(v)
	s.tmp = float32(*v)
	ctx.SliderEx(&s.tmp, 0, 255, 0, "%.0f", ui.OptAlignCenter)
	*v = uint8(s.tmp)
	ctx.PopID()
}

func (s *Showcase) styleWindow(ctx *ui.Context) {
	if ctx.BeginWindow("Style Editor", s.m.Rect(350, 250, 300, 240)) == 0 {
		return
	}
	style := ctx.Style()
	sw := int(float32(ctx.CurrentContainer().Body.W) * 0.14)
	ctx.LayoutRow([]int{s.m.W(80), sw, sw, sw, sw, -1}, 0)
	for id := ui.ColorID(0); id < ui.ColorMax; id++ {
		ctx.Label(s.fmt.Sprintf("%s:", id.String()))
		c := &style.Colors[id]
		s.uint8Slider(ctx, &c.R)
		s.uint8Slider(ctx, &c.G)
		s.uint8Slider(ctx, &c.B)
		s.uint8Slider(ctx, &c.A)
		ctx.DrawRect(ctx.LayoutNext(), *c)
	}
	ctx.EndWindow()
}
