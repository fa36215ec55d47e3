package scene

// ScreenCamera is the orthographic camera the UI is drawn with: origin at
// the top-left of the window, y down, one unit per screen coordinate
// scaled by Zoom.
type ScreenCamera struct {
	Width, Height     int // window size in screen coordinates
	FBWidth, FBHeight int // framebuffer size in pixels
	Zoom              float32
	vp                [16]float32
	dirty             bool
}

const (
	MinZoom = 0.5
	MaxZoom = 4
)

func NewScreenCamera(w, h, fbw, fbh int) *ScreenCamera {
	c := &ScreenCamera{Zoom: 1}
	c.SetViewport(w, h, fbw, fbh)
	c.Recalculate()
	return c
}

func (c *ScreenCamera) SetViewport(w, h, fbw, fbh int) {
	c.Width, c.Height = max(w, 1), max(h, 1)
	c.FBWidth, c.FBHeight = max(fbw, 1), max(fbh, 1)
	c.dirty = true
}

func (c *ScreenCamera) SetZoom(z float32) {
	c.Zoom = min(MaxZoom, max(MinZoom, z))
	c.dirty = true
}

func (c *ScreenCamera) VP() [16]float32 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

func (c *ScreenCamera) Recalculate() {
	w, h := c.ViewSize()
	c.vp = ortho(0, float32(w), float32(h), 0, -1, 1)
	c.dirty = false
}

// ViewSize is the window size in UI units.
func (c *ScreenCamera) ViewSize() (int, int) {
	return int(float32(c.Width) / c.Zoom), int(float32(c.Height) / c.Zoom)
}

// ToUI converts a cursor position to UI units.
func (c *ScreenCamera) ToUI(x, y float64) (float64, float64) {
	return x / float64(c.Zoom), y / float64(c.Zoom)
}

// PixelScale is the number of framebuffer pixels per UI unit along x and
// y; scissor rectangles are multiplied by it.
func (c *ScreenCamera) PixelScale() (float32, float32) {
	sx := float32(c.FBWidth) / float32(c.Width) * c.Zoom
	sy := float32(c.FBHeight) / float32(c.Height) * c.Zoom
	return sx, sy
}

// ---- tiny mat helpers (column-major, GLSL-style) ----

func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}

// Project applies the camera to a point in UI units and returns clip-space
// x and y.
func (c *ScreenCamera) Project(x, y float32) (float32, float32) {
	m := c.VP()
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}
