package colors

import (
	"testing"

	"github.com/hubastard/microgrove/engine/ui"
)

func TestFromUI(t *testing.T) {
	tests := map[string]struct {
		in   ui.Color
		want Color
	}{
		"opaque white": {ui.RGBA(255, 255, 255, 255), White},
		"transparent":  {ui.RGBA(0, 0, 0, 0), Color{}},
		"opaque black": {ui.RGBA(0, 0, 0, 255), Black},
		"red no alpha": {ui.RGBA(255, 0, 0, 0), Color{1, 0, 0, 0}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := FromUI(tt.in); got != tt.want {
				t.Errorf("FromUI(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, v := range []uint8{0, 1, 17, 128, 200, 254, 255} {
		in := ui.RGBA(v, 255-v, v/2, 255)
		if got := FromUI(in).ToUI(); got != in {
			t.Errorf("round trip %v = %v", in, got)
		}
	}
}

func TestToUIClamps(t *testing.T) {
	got := Color{-1, 2, 0.5, 1}.ToUI()
	want := ui.RGBA(0, 255, 128, 255)
	if got != want {
		t.Errorf("ToUI = %v, want %v", got, want)
	}
}
