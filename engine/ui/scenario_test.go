package ui

import (
	"slices"
	"testing"
)

var testWindow = Rect{0, 0, 200, 200}

// First cell of the test window: body (0,24,200,176) shrunk by padding.
var firstCell = Rect{5, 29, 78, 20}

func inWindow(ctx *Context, body func()) {
	frame(ctx, func() {
		if ctx.BeginWindow("W", testWindow) != 0 {
			if body != nil {
				body()
			}
			ctx.EndWindow()
		}
	})
}

// press moves the mouse to (x, y), runs two frames so the widget there
// becomes hovered, then presses the left button and runs the frame that
// sees the press.
func press(ctx *Context, x, y int, step func()) {
	ctx.InputMouseMove(x, y)
	step()
	step()
	ctx.InputMouseDown(x, y, MouseLeft)
	step()
}

func release(ctx *Context, step func()) {
	p := ctx.MousePos()
	ctx.InputMouseUp(p.X, p.Y, MouseLeft)
	step()
}

func TestWindowDrag(t *testing.T) {
	ctx := newTestContext()
	step := func() {
		frame(ctx, func() {
			if ctx.BeginWindow("W", Rect{0, 0, 100, 100}) != 0 {
				ctx.EndWindow()
			}
		})
	}
	press(ctx, 5, 5, step)
	ctx.InputMouseMove(20, 20)
	step()
	release(ctx, step)

	if got, want := ctx.Container("W").Rect, (Rect{15, 15, 100, 100}); got != want {
		t.Errorf("window rect = %v, want %v", got, want)
	}
}

func TestCheckboxToggle(t *testing.T) {
	ctx := newTestContext()
	var state bool
	var res Res
	step := func() { inWindow(ctx, func() { res = ctx.Checkbox("check", &state) }) }

	press(ctx, 10, 35, step)
	if !state || res&ResChange == 0 {
		t.Fatalf("after press: state=%v res=%b", state, res)
	}
	release(ctx, step)
	if !state || res != 0 {
		t.Errorf("after release: state=%v res=%b", state, res)
	}
}

func TestButtonSubmit(t *testing.T) {
	ctx := newTestContext()
	var res Res
	var id ID
	step := func() {
		inWindow(ctx, func() {
			res = ctx.Button("Go")
			id = ctx.LastID()
		})
	}
	ctx.InputMouseMove(10, 35)
	step()
	step()
	if ctx.Hover() != id {
		t.Fatalf("hover = %#x, want button %#x", ctx.Hover(), id)
	}
	ctx.InputMouseDown(10, 35, MouseLeft)
	step()
	if res&ResSubmit == 0 || ctx.Focus() != id {
		t.Fatalf("press: res=%b focus=%#x", res, ctx.Focus())
	}
	release(ctx, step)
	if res != 0 || ctx.Focus() != 0 {
		t.Errorf("release: res=%b focus=%#x", res, ctx.Focus())
	}
}

func TestHoverLimitedToTopRoot(t *testing.T) {
	ctx := newTestContext()
	var id ID
	step := func() {
		frame(ctx, func() {
			if ctx.BeginWindow("Below", testWindow) != 0 {
				ctx.Button("Go")
				id = ctx.LastID()
				ctx.EndWindow()
			}
			if ctx.BeginWindow("Above", Rect{0, 0, 100, 100}) != 0 {
				ctx.EndWindow()
			}
		})
	}
	ctx.InputMouseMove(10, 35)
	step()
	step()
	if ctx.Hover() == id {
		t.Error("button under another window got hover")
	}
}

func TestTextboxEditing(t *testing.T) {
	ctx := newTestContext()
	buf := NewTextBuffer(8)
	var res Res
	var id ID
	step := func() {
		inWindow(ctx, func() {
			res = ctx.Textbox(buf)
			id = ctx.LastID()
		})
	}

	press(ctx, 10, 35, step)
	release(ctx, step)
	if ctx.Focus() != id {
		t.Fatalf("textbox lost focus after release")
	}

	ctx.InputText("hi")
	step()
	if buf.String() != "hi" || res&ResChange == 0 {
		t.Fatalf("typed: %q res=%b", buf.String(), res)
	}

	ctx.InputText("abcdefgh")
	step()
	if buf.String() != "hiabcdef" {
		t.Errorf("truncated append: %q", buf.String())
	}

	ctx.InputKeyDown(KeyBackspace)
	step()
	ctx.InputKeyUp(KeyBackspace)
	if buf.String() != "hiabcde" || res&ResChange == 0 {
		t.Errorf("backspace: %q res=%b", buf.String(), res)
	}

	ctx.InputKeyDown(KeyReturn)
	step()
	ctx.InputKeyUp(KeyReturn)
	if res&ResSubmit == 0 || ctx.Focus() != 0 {
		t.Errorf("return: res=%b focus=%#x", res, ctx.Focus())
	}
}

func TestTextBufferBackspaceUTF8(t *testing.T) {
	tests := map[string]struct {
		in, want string
	}{
		"ascii":     {in: "ab", want: "a"},
		"two byte":  {in: "aé", want: "a"},
		"four byte": {in: "x🙂", want: "x"},
		"only rune": {in: "é", want: ""},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewTextBuffer(16)
			b.Set(tt.in)
			if !b.Backspace() {
				t.Fatal("nothing removed")
			}
			if b.String() != tt.want {
				t.Errorf("got %q, want %q", b.String(), tt.want)
			}
		})
	}
	if NewTextBuffer(4).Backspace() {
		t.Error("backspace on empty buffer reported a change")
	}
}

func TestSliderDrag(t *testing.T) {
	ctx := newTestContext()
	var v float32
	var res Res
	step := func() { inWindow(ctx, func() { res = ctx.Slider(&v, 0, 100) }) }

	press(ctx, firstCell.X+39, 35, step)
	if v != 50 || res&ResChange == 0 {
		t.Fatalf("press: v=%v res=%b", v, res)
	}
	ctx.InputMouseMove(400, 35)
	step()
	if v != 100 {
		t.Errorf("drag past end: v=%v, want 100", v)
	}
	release(ctx, step)
	if res != 0 {
		t.Errorf("release: res=%b", res)
	}
}

func TestSliderStep(t *testing.T) {
	ctx := newTestContext()
	var v float32
	step := func() { inWindow(ctx, func() { ctx.SliderEx(&v, 0, 100, 10, SliderFormat, 0) }) }
	// 35px into a 78px track is 44.87, which snaps to 40.
	press(ctx, firstCell.X+35, 35, step)
	if v != 40 {
		t.Errorf("v = %v, want 40", v)
	}
}

func TestSliderDegenerateRange(t *testing.T) {
	for _, tt := range []struct {
		name   string
		lo, hi float32
		want   float32
	}{
		{"empty range", 5, 5, 5},
		{"inverted range", 10, 0, 0},
	} {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext()
			v := float32(3)
			step := func() { inWindow(ctx, func() { ctx.SliderEx(&v, tt.lo, tt.hi, 0, SliderFormat, 0) }) }
			press(ctx, firstCell.X+60, 35, step)
			if v != tt.want {
				t.Errorf("v = %v, want %v", v, tt.want)
			}
			thumb := Rect{firstCell.X, firstCell.Y, ctx.Style().ThumbSize, firstCell.H}
			if !slices.ContainsFunc(commands(ctx), func(c Command) bool {
				return c.Kind == CommandRect && c.Rect == thumb
			}) {
				t.Errorf("no thumb drawn at %v", thumb)
			}
		})
	}
}

func TestNumberDrag(t *testing.T) {
	ctx := newTestContext()
	v := float32(1)
	var res Res
	step := func() { inWindow(ctx, func() { res = ctx.Number(&v, 0.5) }) }

	press(ctx, 10, 35, step)
	ctx.InputMouseMove(30, 35)
	step()
	if v != 11 || res&ResChange == 0 {
		t.Errorf("drag: v=%v res=%b", v, res)
	}
}

func TestNumberShiftClickEdit(t *testing.T) {
	ctx := newTestContext()
	v := float32(1.5)
	var res Res
	step := func() { inWindow(ctx, func() { res = ctx.Number(&v, 1) }) }

	ctx.InputKeyDown(KeyShift)
	press(ctx, 10, 35, step)
	ctx.InputKeyUp(KeyShift)
	if got := ctx.numberEditBuf.String(); got != "1.5" {
		t.Fatalf("edit buffer = %q, want 1.5", got)
	}
	release(ctx, step)
	if res != 0 || v != 1.5 {
		t.Fatalf("editing changed value: v=%v res=%b", v, res)
	}

	for range 3 {
		ctx.InputKeyDown(KeyBackspace)
		step()
		ctx.InputKeyUp(KeyBackspace)
	}
	ctx.InputText("42")
	ctx.InputKeyDown(KeyReturn)
	step()
	ctx.InputKeyUp(KeyReturn)
	if v != 42 || res&ResChange == 0 {
		t.Errorf("commit: v=%v res=%b", v, res)
	}
	if ctx.numberEdit != 0 {
		t.Error("still editing after commit")
	}
}

func TestParseReal(t *testing.T) {
	tests := map[string]struct {
		in   string
		want float32
	}{
		"plain":    {in: "42", want: 42},
		"fraction": {in: "-1.25", want: -1.25},
		"exponent": {in: "1e3", want: 1000},
		"prefix":   {in: "12abc", want: 12},
		"spaces":   {in: "  7", want: 7},
		"empty":    {in: "", want: 0},
		"garbage":  {in: "abc", want: 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := parseReal(tt.in); got != tt.want {
				t.Errorf("parseReal(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHeaderToggle(t *testing.T) {
	ctx := newTestContext()
	var res, open Res
	step := func() {
		inWindow(ctx, func() {
			res = ctx.Header("Section")
			open = ctx.HeaderEx("Open", OptExpanded)
		})
	}
	step()
	if res != 0 || open != ResActive {
		t.Fatalf("initial: res=%b open=%b", res, open)
	}
	press(ctx, 10, 35, step)
	release(ctx, step)
	if res != ResActive {
		t.Errorf("after click: res=%b, want active", res)
	}
	press(ctx, 10, 35, step)
	release(ctx, step)
	if res != 0 {
		t.Errorf("after second click: res=%b, want collapsed", res)
	}
}

func TestTreeNodeIndent(t *testing.T) {
	ctx := newTestContext()
	var inner, after Rect
	step := func() {
		inWindow(ctx, func() {
			if ctx.BeginTreeNodeEx("Node", OptExpanded) != 0 {
				inner = ctx.LayoutNext()
				ctx.EndTreeNode()
			}
			after = ctx.LayoutNext()
		})
	}
	// The first frame has no content size yet and reserves both scrollbars.
	step()
	if inner.W != 200-12-10-24 {
		t.Errorf("first frame inner width = %d, want %d", inner.W, 200-12-10-24)
	}
	step()
	if inner.X != firstCell.X+24 || inner.W != 190-24 {
		t.Errorf("inner cell = %v", inner)
	}
	if after.X != firstCell.X {
		t.Errorf("cell after node = %v", after)
	}
}

func TestPopupLifecycle(t *testing.T) {
	ctx := newTestContext()
	var popup Res
	var cnt *Container
	step := func() {
		inWindow(ctx, func() {
			if ctx.Button("Open")&ResSubmit != 0 {
				ctx.OpenPopup("menu")
			}
			popup = ctx.BeginPopup("menu")
			if popup != 0 {
				cnt = ctx.CurrentContainer()
				ctx.Label("item")
				ctx.EndPopup()
			}
		})
	}
	step()
	if popup != 0 {
		t.Fatal("popup active before opening")
	}
	press(ctx, 10, 35, step)
	if popup == 0 {
		t.Fatal("popup not active after opening")
	}
	release(ctx, step)
	if popup == 0 {
		t.Fatal("popup closed on release")
	}
	if got, want := cnt.Rect, (Rect{10, 35, 88, 30}); got != want {
		t.Errorf("popup rect = %v, want %v", got, want)
	}

	ctx.InputMouseMove(150, 150)
	step()
	ctx.InputMouseDown(150, 150, MouseLeft)
	step()
	release(ctx, step)
	if popup != 0 {
		t.Error("popup still active after clicking outside")
	}
}

func TestWindowClose(t *testing.T) {
	ctx := newTestContext()
	var res Res
	step := func() {
		frame(ctx, func() {
			res = ctx.BeginWindow("W", testWindow)
			if res != 0 {
				ctx.EndWindow()
			}
		})
	}
	press(ctx, 190, 10, step)
	release(ctx, step)
	if res != 0 {
		t.Error("window still open after close click")
	}
	if cnt := ctx.Container("W"); cnt.Open {
		t.Error("container still marked open")
	}
}

func TestWindowResize(t *testing.T) {
	ctx := newTestContext()
	step := func() { inWindow(ctx, func() { ctx.Label("x") }) }
	press(ctx, 190, 190, step)
	ctx.InputMouseMove(170, 150)
	step()
	if got, want := ctx.Container("W").Rect, (Rect{0, 0, 180, 160}); got != want {
		t.Errorf("resized = %v, want %v", got, want)
	}
	ctx.InputMouseMove(0, 0)
	step()
	if got, want := ctx.Container("W").Rect, (Rect{0, 0, 96, 64}); got != want {
		t.Errorf("floor clamp = %v, want %v", got, want)
	}
}

func TestWheelScroll(t *testing.T) {
	ctx := newTestContext()
	step := func() {
		inWindow(ctx, func() {
			for range 20 {
				ctx.Label("line")
			}
		})
	}
	ctx.InputMouseMove(50, 100)
	step()
	ctx.InputScroll(0, 30)
	step()
	cnt := ctx.Container("W")
	if cnt.Scroll != (Vec2{0, 30}) {
		t.Fatalf("scroll = %v, want (0,30)", cnt.Scroll)
	}
	// 20 cells of 24px less the trailing spacing, plus padding, minus the
	// 176px body.
	ctx.InputScroll(0, 1000)
	step()
	step()
	if cnt.Scroll.Y != 476+10-176 {
		t.Errorf("clamped scroll = %d, want %d", cnt.Scroll.Y, 476+10-176)
	}
	if cnt.Body.W != 200-12 {
		t.Errorf("body width = %d, want room for the scrollbar", cnt.Body.W)
	}
}

func TestScrollbarThumbDrag(t *testing.T) {
	ctx := newTestContext()
	step := func() {
		inWindow(ctx, func() {
			for range 20 {
				ctx.Label("line")
			}
		})
	}
	// Track is the 176px body height; content is 476 plus padding.
	press(ctx, 194, 50, step)
	cnt := ctx.Container("W")
	if cnt.Body != (Rect{0, 24, 188, 176}) || cnt.Scroll.Y != 0 {
		t.Fatalf("after press: body=%v scroll=%v", cnt.Body, cnt.Scroll)
	}
	for _, tt := range []struct {
		name string
		y    int
		want int
	}{
		{"down", 60, 10 * 486 / 176},
		{"past the end", 1000, 486 - 176},
		{"past the start", -200, 0},
	} {
		ctx.InputMouseMove(194, tt.y)
		step()
		if cnt.Scroll.Y != tt.want {
			t.Errorf("%s: scroll = %d, want %d", tt.name, cnt.Scroll.Y, tt.want)
		}
	}
	release(ctx, step)
	ctx.InputMouseMove(194, 120)
	step()
	if cnt.Scroll.Y != 0 {
		t.Errorf("moved without focus: scroll = %d", cnt.Scroll.Y)
	}
}

func TestPanelScrollsOnItsOwn(t *testing.T) {
	ctx := newTestContext()
	var first, clip Rect
	var panel *Container
	step := func() {
		inWindow(ctx, func() {
			ctx.LayoutRow([]int{100}, 60)
			ctx.BeginPanel("P")
			panel = ctx.CurrentContainer()
			clip = ctx.ClipRect()
			first = ctx.LayoutNext()
			for range 4 {
				ctx.Label("line")
			}
			ctx.EndPanel()
		})
	}
	ctx.InputMouseMove(30, 50)
	step()
	step()

	// Five 20px cells with 4px spacing, inside 5px padding.
	if got, want := panel.ContentSize, (Vec2{78, 116}); got != want {
		t.Errorf("panel content = %v, want %v", got, want)
	}
	if got, want := panel.Body, (Rect{5, 29, 100 - 12, 60}); got != want {
		t.Errorf("panel body = %v, want %v", got, want)
	}
	if clip != panel.Body {
		t.Errorf("clip inside panel = %v, want %v", clip, panel.Body)
	}
	if got, want := ctx.Container("W").ContentSize, (Vec2{100, 60}); got != want {
		t.Errorf("window content = %v, want only the panel cell %v", got, want)
	}

	ctx.InputScroll(0, 30)
	step()
	if panel.Scroll != (Vec2{0, 30}) {
		t.Fatalf("panel scroll = %v, want (0,30)", panel.Scroll)
	}
	if w := ctx.Container("W"); w.Scroll != (Vec2{}) {
		t.Errorf("window scrolled to %v", w.Scroll)
	}
	step()
	if first != (Rect{10, 34 - 30, 78, 20}) {
		t.Errorf("first cell = %v, want shifted by the scroll", first)
	}

	ctx.InputScroll(0, 1000)
	step()
	step()
	if panel.Scroll.Y != 116+10-60 {
		t.Errorf("clamped panel scroll = %d, want %d", panel.Scroll.Y, 116+10-60)
	}
}

func TestPopupAutoSize(t *testing.T) {
	ctx := newTestContext()
	rows := 2
	var cnt *Container
	step := func() {
		inWindow(ctx, func() {
			if ctx.Button("Open")&ResSubmit != 0 {
				ctx.OpenPopup("menu")
			}
			if ctx.BeginPopup("menu") != 0 {
				cnt = ctx.CurrentContainer()
				ctx.LayoutRow([]int{150}, 0)
				for range rows {
					ctx.Label("item")
				}
				ctx.EndPopup()
			}
		})
	}
	press(ctx, 10, 35, step)
	release(ctx, step)
	if cnt == nil {
		t.Fatal("popup never opened")
	}
	for _, tt := range []struct {
		rows int
		want Rect
	}{
		{2, Rect{10, 35, 150 + 10, 2*20 + 4 + 10}},
		{3, Rect{10, 35, 150 + 10, 3*20 + 2*4 + 10}},
		{1, Rect{10, 35, 150 + 10, 20 + 10}},
	} {
		rows = tt.rows
		step()
		step()
		if cnt.Rect != tt.want {
			t.Errorf("%d rows: popup rect = %v, want %v", tt.rows, cnt.Rect, tt.want)
		}
	}
}

func TestBringToFrontOnPress(t *testing.T) {
	ctx := newTestContext()
	step := func() {
		frame(ctx, func() {
			for _, w := range []struct {
				name string
				r    Rect
			}{{"A", Rect{0, 0, 100, 100}}, {"B", Rect{50, 50, 100, 100}}} {
				if ctx.BeginWindowEx(w.name, w.r, OptNoClose) != 0 {
					ctx.EndWindow()
				}
			}
		})
	}
	step()
	if got := texts(ctx); !slices.Equal(got, []string{"A", "B"}) {
		t.Fatalf("initial order = %v", got)
	}
	press(ctx, 10, 60, step)
	release(ctx, step)
	if a, b := ctx.Container("A"), ctx.Container("B"); a.ZIndex <= b.ZIndex {
		t.Errorf("A z=%d not above B z=%d", a.ZIndex, b.ZIndex)
	}
	if got := texts(ctx); !slices.Equal(got, []string{"B", "A"}) {
		t.Errorf("order after press = %v", got)
	}
}

func TestControlFrameColors(t *testing.T) {
	ctx := newTestContext()
	step := func() { inWindow(ctx, func() { ctx.Button("Go") }) }
	want := ctx.Style().Colors[ColorButtonHover]
	ctx.InputMouseMove(10, 35)
	step()
	step()
	found := false
	for cmd := range ctx.Commands() {
		if cmd.Kind == CommandRect && cmd.Rect == firstCell && cmd.Color == want {
			found = true
		}
	}
	if !found {
		t.Error("hovered button not drawn with the hover colour")
	}
}

func TestWrappedText(t *testing.T) {
	tests := map[string]struct {
		text string
		want []string
	}{
		"wraps":   {text: "hello world foo", want: []string{"hello", "world foo"}},
		"newline": {text: "a\nb", want: []string{"a", "b"}},
		"long":    {text: "abcdefghijklmno", want: []string{"abcdefghijklmno"}},
		"empty":   {text: "", want: []string{""}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := newTestContext()
			frame(ctx, func() {
				withLayout(ctx, Rect{0, 0, 80, 200}, func() { ctx.Text(tt.text) })
			})
			var got []string
			for cmd := range ctx.Commands() {
				if cmd.Kind == CommandText {
					got = append(got, cmd.Text)
				}
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
		})
	}
}
