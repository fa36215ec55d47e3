package ui

// Vec2 is an integer point or extent in pixels.
type Vec2 struct {
	X, Y int
}

// Rect is an integer rectangle: origin plus size.
type Rect struct {
	X, Y, W, H int
}

// Color is 8-bit RGBA.
type Color struct {
	R, G, B, A uint8
}

func NewVec2(x, y int) Vec2          { return Vec2{X: x, Y: y} }
func NewRect(x, y, w, h int) Rect    { return Rect{X: x, Y: y, W: w, H: h} }
func RGBA(r, g, b, a uint8) Color    { return Color{R: r, G: g, B: b, A: a} }
func (v Vec2) Add(o Vec2) Vec2       { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2       { return Vec2{v.X - o.X, v.Y - o.Y} }
func (r Rect) Pos() Vec2             { return Vec2{r.X, r.Y} }
func (r Rect) Size() Vec2            { return Vec2{r.W, r.H} }
func (r Rect) Translate(d Vec2) Rect { return Rect{r.X + d.X, r.Y + d.Y, r.W, r.H} }

// Expand grows r by n on every side; a negative n shrinks it.
func (r Rect) Expand(n int) Rect {
	return Rect{r.X - n, r.Y - n, r.W + n*2, r.H + n*2}
}

// Intersect returns the overlap of r and o. Disjoint rectangles give a
// zero-size rectangle, never a negative one.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.X+r.W, o.X+o.W)
	y2 := min(r.Y+r.H, o.Y+o.H)
	if x2 < x1 {
		x2 = x1
	}
	if y2 < y1 {
		y2 = y1
	}
	return Rect{x1, y1, x2 - x1, y2 - y1}
}

// Contains reports whether p lies inside r. The far edges are exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

func (v Vec2) transpose() Vec2 { return Vec2{v.Y, v.X} }
func (r Rect) transpose() Rect { return Rect{r.Y, r.X, r.H, r.W} }

func clamp(x, lo, hi int) int { return min(hi, max(lo, x)) }

func clampReal(x, lo, hi float32) float32 { return min(hi, max(lo, x)) }
