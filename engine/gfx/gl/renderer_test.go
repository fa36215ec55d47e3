package glbackend

import (
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/microgrove/engine/core"
)

func TestSamplerParams(t *testing.T) {
	tests := []struct {
		name string
		got  int32
		want int32
	}{
		{"linear", filter("linear"), gl.LINEAR},
		{"nearest", filter("nearest"), gl.NEAREST},
		{"filter default", filter(""), gl.NEAREST},
		{"repeat", wrap("repeat"), gl.REPEAT},
		{"wrap default", wrap(""), gl.CLAMP_TO_EDGE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %#x, want %#x", tt.got, tt.want)
			}
		})
	}
}

// The checks below fail before any GL call, so they run without a context.
func TestCreateTextureRejectsBadDesc(t *testing.T) {
	r := &RendererGL{}
	tests := map[string]core.TextureDesc{
		"format":     {Width: 1, Height: 1, Format: core.TextureFormat(99), Pixels: make([]byte, 4)},
		"short data": {Width: 2, Height: 2, Format: core.TextureRGBA8, Pixels: make([]byte, 4)},
	}
	for name, d := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := r.CreateTexture(d); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestMeshValidation(t *testing.T) {
	r := &RendererGL{}
	if _, err := r.CreateMesh(core.MeshDesc{}); err == nil {
		t.Fatal("CreateMesh with no data: expected error")
	}
	if err := r.UpdateMesh(&mesh{}, []float32{1}, []uint32{0}); err == nil {
		t.Fatal("UpdateMesh on released mesh: expected error")
	}
	if err := r.UpdateMesh(nil, nil, nil); err == nil {
		t.Fatal("UpdateMesh on nil mesh: expected error")
	}
}
