package component

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// VertexAttribute is one vertex-fetch stream of a geometry: a GPU buffer with
// its stride, step mode, and per-attribute layout descriptors. Buffer may be
// nil while the stream is still uploading; such attributes are filtered out
// when binding vertex inputs.
type VertexAttribute struct {
	// Buffer is the GPU vertex buffer, or nil when not yet uploaded.
	Buffer *wgpu.Buffer
	// Stride is the byte distance between consecutive elements.
	Stride uint64
	// StepMode selects per-vertex or per-instance advancement.
	StepMode wgpu.VertexStepMode
	// Layout lists the shader-visible attributes packed into this stream.
	Layout []wgpu.VertexAttribute
}

// Geometry describes the vertex data for a mesh. An empty Attributes list is
// legal (attribute-less draw). Dirty means the buffers are not yet uploaded;
// meshes referencing a dirty geometry are skipped for the frame.
type Geometry struct {
	// Dirty marks the geometry's GPU buffers as not yet ready.
	Dirty bool
	// Attributes lists the vertex streams in input-slot order.
	Attributes []VertexAttribute
	// IndexBuffer is the index buffer, or nil for non-indexed geometry.
	IndexBuffer *wgpu.Buffer
	// IndexCount is the number of indices in IndexBuffer; 0 means non-indexed.
	IndexCount int
	// MaxInstancedCount is the instance count for instanced draws; 0 or unset
	// draws a single instance.
	MaxInstancedCount int
}

// InstanceCount resolves the instance count for a draw: MaxInstancedCount
// when positive, otherwise 1.
//
// Returns:
//   - int: the instance count to issue
func (g *Geometry) InstanceCount() int {
	if g.MaxInstancedCount > 0 {
		return g.MaxInstancedCount
	}
	return 1
}

// Indexed reports whether the geometry carries a non-empty index list.
//
// Returns:
//   - bool: true when the geometry should be drawn indexed
func (g *Geometry) Indexed() bool {
	return g.IndexCount > 0
}

// PopulatedBuffers returns the vertex buffers of attributes whose Buffer is
// set, in attribute order. Attributes still uploading are skipped.
//
// Returns:
//   - []*wgpu.Buffer: the bindable vertex buffers, nil when none are ready
func (g *Geometry) PopulatedBuffers() []*wgpu.Buffer {
	var buffers []*wgpu.Buffer
	for i := range g.Attributes {
		if g.Attributes[i].Buffer != nil {
			buffers = append(buffers, g.Attributes[i].Buffer)
		}
	}
	return buffers
}

// VertexBufferLayouts derives the pipeline vertex-fetch layouts from the
// attributes with populated buffers, parallel to PopulatedBuffers.
//
// Returns:
//   - []wgpu.VertexBufferLayout: the vertex buffer layouts for pipeline creation
func (g *Geometry) VertexBufferLayouts() []wgpu.VertexBufferLayout {
	var layouts []wgpu.VertexBufferLayout
	for i := range g.Attributes {
		attr := &g.Attributes[i]
		if attr.Buffer == nil {
			continue
		}
		layouts = append(layouts, wgpu.VertexBufferLayout{
			ArrayStride: attr.Stride,
			StepMode:    attr.StepMode,
			Attributes:  attr.Layout,
		})
	}
	return layouts
}
