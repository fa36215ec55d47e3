package text

import (
	"testing"

	"github.com/hubastard/microgrove/engine/core"
	"github.com/hubastard/microgrove/engine/ui"
	"golang.org/x/image/font/gofont/goregular"
)

func newTestAtlas(t *testing.T) *Atlas {
	t.Helper()
	a, err := NewAtlas(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}
	t.Cleanup(a.Close)
	return a
}

func TestNewAtlasMetrics(t *testing.T) {
	a := newTestAtlas(t)
	if a.Ascent <= 0 || a.Descent >= 0 {
		t.Errorf("ascent %d descent %d", a.Ascent, a.Descent)
	}
	if a.LineHeight < a.Ascent-a.Descent {
		t.Errorf("LineHeight %d shorter than glyph extent", a.LineHeight)
	}
	b := a.Image.Bounds()
	if b.Dx() != b.Dy() || b.Dx()&(b.Dx()-1) != 0 {
		t.Errorf("atlas %v not a power-of-two square", b)
	}
	if _, ok := a.Glyph('A'); !ok {
		t.Error("missing 'A'")
	}
	if _, ok := a.Glyph('é'); !ok {
		t.Error("missing Latin-1 'é'")
	}
	if _, ok := a.Glyph('世'); ok {
		t.Error("rune outside the atlas range reported present")
	}
}

func TestWidth(t *testing.T) {
	a := newTestAtlas(t)
	ga, _ := a.Glyph('a')
	gb, _ := a.Glyph('b')
	tests := map[string]struct {
		in   string
		want int
	}{
		"empty":   {"", 0},
		"single":  {"a", ga.Advance},
		"pair":    {"ab", ga.Advance + gb.Advance + a.Kern('a', 'b')},
		"missing": {"a世", ga.Advance + a.SpaceAdvance()},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := a.Width(tt.in); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestIconsAndWhiteTexel(t *testing.T) {
	a := newTestAtlas(t)
	w := a.White()
	if px := a.Image.RGBAAt(w.X, w.Y); px.A != 255 || px.R != 255 {
		t.Errorf("white texel = %v", px)
	}
	for id := ui.IconClose; id < ui.IconMax; id++ {
		t.Run(id.String(), func(t *testing.T) {
			g, ok := a.Icon(id)
			if !ok || g.W == 0 {
				t.Fatalf("Icon(%v) = %+v, %v", id, g, ok)
			}
			covered := 0
			for y := g.Y; y < g.Y+g.H; y++ {
				for x := g.X; x < g.X+g.W; x++ {
					if a.Image.RGBAAt(x, y).A > 0 {
						covered++
					}
				}
			}
			if covered == 0 || covered == g.W*g.H {
				t.Errorf("icon coverage %d of %d", covered, g.W*g.H)
			}
		})
	}
	if _, ok := a.Icon(ui.IconMax); ok {
		t.Error("IconMax reported present")
	}
}

type textureRecorder struct {
	core.Renderer
	desc core.TextureDesc
}

type fakeTexture struct{ w, h int }

func (t fakeTexture) Size() (int, int) { return t.w, t.h }
func (fakeTexture) Release()           {}

func (r *textureRecorder) CreateTexture(d core.TextureDesc) (core.Texture, error) {
	r.desc = d
	return fakeTexture{d.Width, d.Height}, nil
}

func TestUpload(t *testing.T) {
	a := newTestAtlas(t)
	r := &textureRecorder{}
	if err := a.Upload(r); err != nil {
		t.Fatal(err)
	}
	b := a.Image.Bounds()
	if r.desc.Width != b.Dx() || len(r.desc.Pixels) != b.Dx()*b.Dy()*4 {
		t.Errorf("uploaded %dx%d with %d bytes", r.desc.Width, r.desc.Height, len(r.desc.Pixels))
	}
	if a.Texture == nil {
		t.Error("Texture not set")
	}
}

func TestHostFallsBackToDefault(t *testing.T) {
	a := newTestAtlas(t)
	h := NewHost(a)
	if got, want := h.TextWidth(nil, "hello"), a.Width("hello"); got != want {
		t.Errorf("TextWidth(nil) = %d, want %d", got, want)
	}
	if got := h.TextHeight(a); got != a.LineHeight {
		t.Errorf("TextHeight = %d", got)
	}
	ctx := ui.New(h)
	ctx.Begin()
	ctx.End()
}
