package renderer2d

import (
	"testing"

	"github.com/hubastard/microgrove/engine/core"
	"github.com/hubastard/microgrove/engine/text"
	"github.com/hubastard/microgrove/engine/ui"
	"golang.org/x/image/font/gofont/goregular"
)

func newUIFixture(t *testing.T) (*Renderer2D, *fakeGPU, *text.Atlas, *ui.Context) {
	t.Helper()
	rd, gpu := newTestRenderer(t, 1000)
	atlas, err := text.NewAtlas(goregular.TTF, 14)
	if err != nil {
		t.Fatal(err)
	}
	if err := atlas.Upload(gpu); err != nil {
		t.Fatal(err)
	}
	return rd, gpu, atlas, ui.New(text.NewHost(atlas))
}

// visibleQuads counts the quads a frame should produce.
func visibleQuads(ctx *ui.Context, a *text.Atlas) int {
	n := 0
	for cmd := range ctx.Commands() {
		switch cmd.Kind {
		case ui.CommandRect, ui.CommandIcon:
			n++
		case ui.CommandText:
			for _, r := range cmd.Text {
				if g, ok := a.Glyph(r); ok && g.W > 0 && g.H > 0 {
					n++
				}
			}
		}
	}
	return n
}

func TestDrawUIQuads(t *testing.T) {
	rd, gpu, atlas, ctx := newUIFixture(t)
	checked := true
	ctx.Begin()
	if ctx.BeginWindow("Demo", ui.NewRect(10, 10, 220, 160)) != 0 {
		ctx.Label("hello")
		ctx.Checkbox("on", &checked)
		ctx.EndWindow()
	}
	ctx.End()

	rd.DrawUI(ctx, atlas, UIView{ScaleX: 1, ScaleY: 1})
	want := visibleQuads(ctx, atlas)
	if got := rd.Stats().QuadCount; got != want || want == 0 {
		t.Errorf("QuadCount = %d, want %d", got, want)
	}
	if len(gpu.draws) == 0 {
		t.Fatal("nothing drawn")
	}
	if last := gpu.scissors; len(last) > 0 && last[len(last)-1] != nil {
		t.Errorf("scissor left enabled: %v", last[len(last)-1])
	}
}

func TestDrawUIClipsPartialText(t *testing.T) {
	rd, gpu, atlas, ctx := newUIFixture(t)
	ctx.Begin()
	if ctx.BeginWindowEx("Narrow", ui.NewRect(0, 0, 100, 80), ui.OptNoTitle|ui.OptNoScroll) != 0 {
		ctx.LayoutRow([]int{400}, 0)
		ctx.Label("a label that is far wider than its window")
		ctx.EndWindow()
	}
	ctx.End()

	var clip ui.Rect
	for cmd := range ctx.Commands() {
		if cmd.Kind == ui.CommandClip && cmd.Rect != ui.UnclippedRect() {
			clip = cmd.Rect
			break
		}
	}
	if clip.Empty() {
		t.Fatal("no clip command emitted")
	}

	rd.DrawUI(ctx, atlas, UIView{ScaleX: 2, ScaleY: 2})
	want := core.Scissor{X: clip.X * 2, Y: clip.Y * 2, W: clip.W * 2, H: clip.H * 2}
	found := false
	for _, s := range gpu.scissors {
		if s != nil && *s == want {
			found = true
		}
	}
	if !found {
		t.Errorf("scissors %v lack %v", gpu.scissors, want)
	}
}

func TestScissorFor(t *testing.T) {
	tests := map[string]struct {
		r    ui.Rect
		view UIView
		want core.Scissor
	}{
		"identity":   {ui.NewRect(1, 2, 3, 4), UIView{ScaleX: 1, ScaleY: 1}, core.Scissor{X: 1, Y: 2, W: 3, H: 4}},
		"hidpi":      {ui.NewRect(1, 2, 3, 4), UIView{ScaleX: 2, ScaleY: 2}, core.Scissor{X: 2, Y: 4, W: 6, H: 8}},
		"fractional": {ui.NewRect(1, 1, 1, 1), UIView{ScaleX: 1.5, ScaleY: 1.5}, core.Scissor{X: 1, Y: 1, W: 2, H: 2}},
		"empty":      {ui.NewRect(5, 5, 0, 0), UIView{ScaleX: 1, ScaleY: 1}, core.Scissor{X: 5, Y: 5}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := scissorFor(tt.r, tt.view); got != tt.want {
				t.Errorf("scissorFor = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSolidSamplesWhiteTexel(t *testing.T) {
	_, _, atlas, _ := newUIFixture(t)
	sub := solidFrom(atlas)
	if sub.Texture != atlas.Texture || sub.U0 != sub.U1 || sub.V0 != sub.V1 {
		t.Fatalf("solid sub = %+v, want a single point on the atlas texture", sub)
	}
	b := atlas.Image.Bounds()
	x := int(sub.U0 * float32(b.Dx()))
	y := int(sub.V0 * float32(b.Dy()))
	if c := atlas.Image.RGBAAt(x, y); c.R != 255 || c.G != 255 || c.B != 255 || c.A != 255 {
		t.Errorf("texel at (%d,%d) = %v, want opaque white", x, y, c)
	}
}
