package text

import (
	"github.com/hubastard/microgrove/engine/ui"
)

// Width returns the pen advance of s on one line, kerning included. Runes
// missing from the atlas advance like a space.
func (a *Atlas) Width(s string) int {
	w := 0
	prev := rune(-1)
	for _, r := range s {
		g, ok := a.glyphs[r]
		if !ok {
			w += a.space
			prev = -1
			continue
		}
		if prev >= 0 {
			w += a.Kern(prev, r)
		}
		w += g.Advance
		prev = r
	}
	return w
}

// Baseline-to-top distance (useful to position text by top-left).
func (a *Atlas) BaselineToTop() int    { return a.Ascent }
func (a *Atlas) BaselineToBottom() int { return -a.Descent }

// Host measures text with atlases and draws the stock frame. Fonts passed
// by the engine are *Atlas handles; a nil font means Default.
type Host struct {
	ui.DefaultFrame
	Default *Atlas
}

func NewHost(def *Atlas) *Host { return &Host{Default: def} }

func (h *Host) atlas(f ui.Font) *Atlas {
	if a, ok := f.(*Atlas); ok && a != nil {
		return a
	}
	return h.Default
}

func (h *Host) TextWidth(f ui.Font, s string) int { return h.atlas(f).Width(s) }
func (h *Host) TextHeight(f ui.Font) int          { return h.atlas(f).LineHeight }
