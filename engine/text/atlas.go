package text

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hubastard/microgrove/engine/core"
	"github.com/hubastard/microgrove/engine/ui"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph is one sprite in the atlas, in pixels.
type Glyph struct {
	Advance  int
	BearingX int // left bearing
	BearingY int // distance from baseline to glyph top
	X, Y     int // top-left in the atlas
	W, H     int
}

// Atlas is a CPU-side sheet holding white glyphs (alpha coverage), the
// engine icons and a white texel for solid fills. Upload copies it to the
// GPU; measurement never needs the GPU copy.
type Atlas struct {
	SizePx          float32
	Ascent, Descent int // Descent is negative, below the baseline
	LineHeight      int
	Image           *image.RGBA
	Texture         core.Texture
	glyphs          map[rune]Glyph
	icons           [ui.IconMax]Glyph
	white           image.Point
	face            font.Face
	kern            map[[2]rune]int
	space           int
}

const (
	firstRune    = 32
	lastRune     = 255
	atlasPadding = 2
	maxAtlasSize = 4096
)

// NewAtlas parses a TrueType/OpenType font and rasterises the Latin-1 range
// at sizePx.
func NewAtlas(ttf []byte, sizePx float32) (*Atlas, error) {
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	m := face.Metrics()
	a := &Atlas{
		SizePx:  sizePx,
		Ascent:  m.Ascent.Round(),
		Descent: -m.Descent.Round(),
		glyphs:  make(map[rune]Glyph, lastRune-firstRune+1),
		kern:    map[[2]rune]int{},
		face:    face,
	}
	a.LineHeight = max(m.Height.Round(), a.Ascent-a.Descent)

	type meas struct {
		r rune
		g Glyph
	}
	measure := make([]meas, 0, lastRune-firstRune+1)
	for r := rune(firstRune); r <= lastRune; r++ {
		br, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		measure = append(measure, meas{r: r, g: Glyph{
			Advance:  adv.Round(),
			BearingX: br.Min.X.Round(),
			BearingY: -br.Min.Y.Round(),
			W:        (br.Max.X - br.Min.X).Round(),
			H:        (br.Max.Y - br.Min.Y).Round(),
		}})
	}

	iconSize := max(a.LineHeight-2, 8)
	sizes := make([]image.Point, 0, len(measure)+len(a.icons)+1)
	sizes = append(sizes, image.Pt(1, 1)) // white texel
	for i := 1; i < len(a.icons); i++ {
		sizes = append(sizes, image.Pt(iconSize, iconSize))
	}
	for _, m := range measure {
		sizes = append(sizes, image.Pt(m.g.W, m.g.H))
	}
	side, pos, err := pack(sizes)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	a.Image = dst
	a.white = pos[0]
	dst.SetRGBA(a.white.X, a.white.Y, color.RGBA{255, 255, 255, 255})

	for i := 1; i < len(a.icons); i++ {
		p := pos[i]
		a.icons[i] = Glyph{X: p.X, Y: p.Y, W: iconSize, H: iconSize, Advance: iconSize}
		rasterIcon(dst, ui.Icon(i), image.Rect(p.X, p.Y, p.X+iconSize, p.Y+iconSize))
	}

	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}
	base := len(a.icons)
	for i, m := range measure {
		g := m.g
		p := pos[base+i]
		g.X, g.Y = p.X, p.Y
		if g.W > 0 && g.H > 0 {
			// Drawer expects a dot at the baseline.
			drawer.Dot = fixed.P(p.X-g.BearingX, p.Y+g.BearingY)
			drawer.DrawString(string(m.r))
		}
		a.glyphs[m.r] = g
	}
	if sp, ok := a.glyphs[' ']; ok {
		a.space = sp.Advance
	}

	for _, x := range measure {
		for _, y := range measure {
			if dx := face.Kern(x.r, y.r).Round(); dx != 0 {
				a.kern[[2]rune{x.r, y.r}] = dx
			}
		}
	}
	return a, nil
}

// pack places sizes on shelves in the smallest power-of-two square that
// holds them all.
func pack(sizes []image.Point) (int, []image.Point, error) {
	pos := make([]image.Point, len(sizes))
	for side := 128; side <= maxAtlasSize; side *= 2 {
		x, y, rowH := atlasPadding, atlasPadding, 0
		fits := true
		for i, s := range sizes {
			if s.X+atlasPadding*2 > side {
				fits = false
				break
			}
			if x+s.X+atlasPadding > side {
				x = atlasPadding
				y += rowH + atlasPadding
				rowH = 0
			}
			if y+s.Y+atlasPadding > side {
				fits = false
				break
			}
			pos[i] = image.Pt(x, y)
			x += s.X + atlasPadding
			rowH = max(rowH, s.Y)
		}
		if fits {
			return side, pos, nil
		}
	}
	return 0, nil, fmt.Errorf("font atlas too large (>%d)", maxAtlasSize)
}

// Upload creates the GPU texture from the atlas image.
func (a *Atlas) Upload(r core.Renderer) error {
	b := a.Image.Bounds()
	tex, err := r.CreateTexture(core.TextureDesc{
		Width: b.Dx(), Height: b.Dy(),
		Format:    core.TextureRGBA8,
		Pixels:    a.Image.Pix,
		MinFilter: "nearest",
		MagFilter: "nearest",
		WrapU:     "clamp",
		WrapV:     "clamp",
	})
	if err != nil {
		return fmt.Errorf("upload atlas: %w", err)
	}
	a.Texture = tex
	return nil
}

func (a *Atlas) Close() {
	if a == nil {
		return
	}
	if a.Texture != nil {
		a.Texture.Release()
		a.Texture = nil
	}
	if a.face != nil {
		_ = a.face.Close()
		a.face = nil
	}
}

// Glyph looks up r. Runes outside the atlas report false.
func (a *Atlas) Glyph(r rune) (Glyph, bool) {
	g, ok := a.glyphs[r]
	return g, ok
}

// Icon returns the sprite of an engine icon.
func (a *Atlas) Icon(id ui.Icon) (Glyph, bool) {
	if id <= 0 || id >= ui.IconMax {
		return Glyph{}, false
	}
	return a.icons[id], true
}

// White returns the atlas position of the solid white texel.
func (a *Atlas) White() image.Point { return a.white }

// Kern returns the pixel adjustment between prev and r.
func (a *Atlas) Kern(prev, r rune) int { return a.kern[[2]rune{prev, r}] }

// SpaceAdvance is the pen advance used for runes the atlas lacks.
func (a *Atlas) SpaceAdvance() int { return a.space }
