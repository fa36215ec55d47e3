package core

// Texture is a backend texture handle.
type Texture interface {
	Size() (w, h int)
	Release()
}

// Pipeline is a compiled shader program plus fixed state.
type Pipeline interface{ Release() }

// Mesh is a vertex + index buffer pair.
type Mesh interface{ Release() }

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

type TextureDesc struct {
	Width, Height        int
	Format               TextureFormat
	Pixels               []byte // tightly packed rows, top-left origin
	MinFilter, MagFilter string // "nearest" or "linear"
	WrapU, WrapV         string // "clamp" or "repeat"
}

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location int
	Size     int // components
	Type     AttribType
	Offset   int // bytes
}

type VertexLayout struct {
	Stride     int // bytes
	Attributes []VertexAttrib
}

type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

// Scissor is a clip rectangle in framebuffer pixels, top-left origin.
type Scissor struct {
	X, Y, W, H int
}

// DrawCmd draws the first IndexCount indices of Mesh (all of them when
// zero) with the given uniforms and samplers bound.
type DrawCmd struct {
	Pipe       Pipeline
	Mesh       Mesh
	IndexCount int
	Uniforms   map[string]any
	Samplers   map[string]Texture
}
