package renderer2d

import (
	"strconv"

	"github.com/hubastard/microgrove/engine/colors"
	"github.com/hubastard/microgrove/engine/core"
)

// Max textures per batch (common GL limit is 16)
const maxTexSlots = 16

// Vertex: pos2 + color4 + uv2 + texIndex1 => 9 floats
const (
	vStride      = 9
	vertsPerQuad = 4
	indsPerQuad  = 6
)

var quadVertexLayout = core.VertexLayout{
	Stride: vStride * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 2, Type: core.AttribFloat32, Offset: 0},     // pos
		{Location: 1, Size: 4, Type: core.AttribFloat32, Offset: 2 * 4}, // color
		{Location: 2, Size: 2, Type: core.AttribFloat32, Offset: 6 * 4}, // uv
		{Location: 3, Size: 1, Type: core.AttribFloat32, Offset: 8 * 4}, // texIndex
	},
}

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	TextureCount int
	ClipChanges  int
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * indsPerQuad }

// Renderer2D batches axis-aligned quads into one streamed mesh. A batch is
// drawn when it is full, when it runs out of texture slots or when the
// scissor changes. Coordinates are top-left based, y down.
type Renderer2D struct {
	gpu   core.Renderer
	pipe  core.Pipeline
	mesh  core.Mesh
	white core.Texture // 1x1 white, always slot 0

	verts    []float32
	inds     []uint32
	quads    int
	maxQuads int

	slots    [maxTexSlots]core.Texture
	nslots   int
	names    [maxTexSlots]string
	samplers map[string]core.Texture
	uniforms map[string]any

	vp        [16]float32
	scissor   core.Scissor
	scissorOn bool
	stats     Statistics
}

// New compiles the quad pipeline and allocates a mesh for maxQuads quads.
func New(gpu core.Renderer, vertSrc, fragSrc string, maxQuads int) (*Renderer2D, error) {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	pipe, err := gpu.CreatePipeline(core.PipelineDesc{
		VertexSource:   vertSrc,
		FragmentSource: fragSrc,
		Blend:          true,
	})
	if err != nil {
		return nil, err
	}
	white, err := gpu.CreateTexture(core.TextureDesc{
		Width: 1, Height: 1,
		Format:    core.TextureRGBA8,
		Pixels:    []byte{255, 255, 255, 255},
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		pipe.Release()
		return nil, err
	}
	mesh, err := gpu.CreateMesh(core.MeshDesc{
		Vertices: make([]float32, maxQuads*vertsPerQuad*vStride),
		Indices:  make([]uint32, maxQuads*indsPerQuad),
		Layout:   quadVertexLayout,
	})
	if err != nil {
		white.Release()
		pipe.Release()
		return nil, err
	}

	rd := &Renderer2D{
		gpu: gpu, pipe: pipe, mesh: mesh, white: white, maxQuads: maxQuads,
		verts:    make([]float32, 0, maxQuads*vertsPerQuad*vStride),
		inds:     make([]uint32, 0, maxQuads*indsPerQuad),
		samplers: make(map[string]core.Texture, maxTexSlots),
		uniforms: make(map[string]any, 1),
	}
	for i := range rd.names {
		rd.names[i] = "uTex[" + strconv.Itoa(i) + "]"
	}
	rd.resetBatch()
	return rd, nil
}

// BeginScene starts a frame drawn with the view-projection vp.
func (rd *Renderer2D) BeginScene(vp [16]float32) {
	rd.vp = vp
	rd.stats = Statistics{}
	rd.resetBatch()
	rd.SetScissor(nil)
}

func (rd *Renderer2D) EndScene() {
	rd.flush()
	rd.SetScissor(nil)
}

// Stats returns the counters of the current or last frame.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// SetScissor flushes the pending batch and restricts later quads to s,
// in framebuffer pixels. Nil disables clipping. Setting the current
// scissor again is free.
func (rd *Renderer2D) SetScissor(s *core.Scissor) {
	if s == nil && !rd.scissorOn {
		return
	}
	if s != nil && rd.scissorOn && *s == rd.scissor {
		return
	}
	rd.flush()
	if s == nil {
		rd.scissorOn = false
	} else {
		rd.scissor, rd.scissorOn = *s, true
	}
	rd.gpu.SetScissor(s)
	rd.stats.ClipChanges++
}

// DrawRect draws a solid rectangle.
func (rd *Renderer2D) DrawRect(x, y, w, h float32, color colors.Color) {
	rd.quad(x, y, w, h, color, rd.slot(rd.white), 0, 0, 1, 1)
}

// DrawTexturedRect draws all of tex tinted by tint.
func (rd *Renderer2D) DrawTexturedRect(x, y, w, h float32, tex core.Texture, tint colors.Color) {
	rd.quad(x, y, w, h, tint, rd.slot(tex), 0, 0, 1, 1)
}

// DrawSubTexRect draws the region sub of its texture tinted by tint.
func (rd *Renderer2D) DrawSubTexRect(x, y, w, h float32, sub SubTexture2D, tint colors.Color) {
	rd.quad(x, y, w, h, tint, rd.slot(sub.Texture), sub.U0, sub.V0, sub.U1, sub.V1)
}

// slot returns the batch texture index of t, flushing when every slot is
// taken.
func (rd *Renderer2D) slot(t core.Texture) float32 {
	for i := 0; i < rd.nslots; i++ {
		if rd.slots[i] == t {
			return float32(i)
		}
	}
	if rd.nslots >= maxTexSlots {
		rd.flush()
	}
	rd.slots[rd.nslots] = t
	rd.nslots++
	rd.stats.TextureCount = max(rd.stats.TextureCount, rd.nslots)
	return float32(rd.nslots - 1)
}

func (rd *Renderer2D) quad(x, y, w, h float32, c colors.Color, tex float32, u0, v0, u1, v1 float32) {
	if rd.quads >= rd.maxQuads {
		// The slot picked by the caller survives the flush.
		t := rd.slots[int(tex)]
		rd.flush()
		tex = rd.slot(t)
	}
	base := uint32(len(rd.verts) / vStride)
	x1, y1 := x+w, y+h
	// TL, TR, BL, BR
	rd.verts = append(rd.verts,
		x, y, c[0], c[1], c[2], c[3], u0, v0, tex,
		x1, y, c[0], c[1], c[2], c[3], u1, v0, tex,
		x, y1, c[0], c[1], c[2], c[3], u0, v1, tex,
		x1, y1, c[0], c[1], c[2], c[3], u1, v1, tex,
	)
	rd.inds = append(rd.inds,
		base+0, base+2, base+1,
		base+1, base+2, base+3,
	)
	rd.quads++
	rd.stats.QuadCount++
}

func (rd *Renderer2D) flush() {
	if rd.quads == 0 {
		rd.resetBatch()
		return
	}
	if err := rd.gpu.UpdateMesh(rd.mesh, rd.verts, rd.inds); err != nil {
		panic(err)
	}

	clear(rd.samplers)
	for i := 0; i < rd.nslots; i++ {
		rd.samplers[rd.names[i]] = rd.slots[i]
	}
	rd.uniforms["uVP"] = rd.vp

	rd.gpu.Draw(core.DrawCmd{
		Pipe:       rd.pipe,
		Mesh:       rd.mesh,
		IndexCount: len(rd.inds),
		Uniforms:   rd.uniforms,
		Samplers:   rd.samplers,
	})
	rd.stats.DrawCalls++
	rd.resetBatch()
}

func (rd *Renderer2D) resetBatch() {
	rd.verts = rd.verts[:0]
	rd.inds = rd.inds[:0]
	rd.quads = 0
	clear(rd.slots[:])
	rd.slots[0] = rd.white
	rd.nslots = 1
}

// Shutdown releases the GPU resources created by New.
func (rd *Renderer2D) Shutdown() {
	rd.mesh.Release()
	rd.white.Release()
	rd.pipe.Release()
}
