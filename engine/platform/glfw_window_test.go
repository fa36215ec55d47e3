package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/microgrove/engine/core"
)

func TestTranslateKey(t *testing.T) {
	tests := map[string]struct {
		in   glfw.Key
		want core.Key
	}{
		"backspace":  {glfw.KeyBackspace, core.KeyBackspace},
		"keypad":     {glfw.KeyKPEnter, core.KeyEnter},
		"right ctrl": {glfw.KeyRightControl, core.KeyRightControl},
		"letter":     {glfw.KeyQ, core.KeyUnknown},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := translateKey(tt.in); got != tt.want {
				t.Errorf("translateKey(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTranslateButton(t *testing.T) {
	if b, ok := translateButton(glfw.MouseButtonRight); !ok || b != core.MouseRight {
		t.Errorf("right = %v, %v", b, ok)
	}
	if _, ok := translateButton(glfw.MouseButton4); ok {
		t.Error("button 4 mapped")
	}
}

func TestTranslateMods(t *testing.T) {
	got := translateMods(glfw.ModShift | glfw.ModAlt)
	if got != core.ModShift|core.ModAlt {
		t.Errorf("translateMods = %b", got)
	}
	if translateMods(0) != core.ModNone {
		t.Error("no mods not ModNone")
	}
}
