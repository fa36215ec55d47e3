package text

import (
	"image"
	"image/color"
	"math"

	"github.com/hubastard/microgrove/engine/ui"
)

// rasterIcon paints a white coverage mask of icon into r. Shapes are
// sampled at pixel centres in the unit square.
func rasterIcon(dst *image.RGBA, icon ui.Icon, r image.Rectangle) {
	inside := iconShape(icon)
	if inside == nil {
		return
	}
	w, h := float64(r.Dx()), float64(r.Dy())
	const ss = 4 // samples per axis
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			hits := 0
			for sy := 0; sy < ss; sy++ {
				for sx := 0; sx < ss; sx++ {
					u := (float64(x) + (float64(sx)+0.5)/ss) / w
					v := (float64(y) + (float64(sy)+0.5)/ss) / h
					if inside(u, v) {
						hits++
					}
				}
			}
			if hits == 0 {
				continue
			}
			a := uint8(hits * 255 / (ss * ss))
			dst.SetRGBA(r.Min.X+x, r.Min.Y+y, color.RGBA{a, a, a, a})
		}
	}
}

func iconShape(icon ui.Icon) func(u, v float64) bool {
	switch icon {
	case ui.IconClose:
		// Two strokes corner to corner.
		const half = 0.09
		return func(u, v float64) bool {
			if u < 0.2 || u > 0.8 || v < 0.2 || v > 0.8 {
				return false
			}
			return math.Abs(u-v) < half || math.Abs(u+v-1) < half
		}
	case ui.IconCheck:
		return func(u, v float64) bool {
			return u >= 0.2 && u <= 0.8 && v >= 0.2 && v <= 0.8
		}
	case ui.IconCollapsed:
		// Triangle pointing right.
		return func(u, v float64) bool {
			if u < 0.3 || u > 0.75 {
				return false
			}
			d := (u - 0.3) / 0.45 * 0.3
			return v >= 0.2+d && v <= 0.8-d
		}
	case ui.IconExpanded:
		// Triangle pointing down.
		return func(u, v float64) bool {
			if v < 0.3 || v > 0.75 {
				return false
			}
			d := (v - 0.3) / 0.45 * 0.3
			return u >= 0.2+d && u <= 0.8-d
		}
	}
	return nil
}
