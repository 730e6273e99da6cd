package render

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/lattice3d/lattice/ecs"
	"github.com/lattice3d/lattice/engine"
	"github.com/lattice3d/lattice/engine/component"
)

// nonIndexedVertexCount is the vertex count issued for geometries without an
// index list. The forward pass only ever emits single-triangle non-indexed
// draws; geometries with more vertices must carry indices.
const nonIndexedVertexCount = 3

// drawCommandBuilder is the implementation of the DrawCommandBuilder interface.
type drawCommandBuilder struct{}

// DrawCommandBuilder turns a resolved mesh into vertex-input bindings and a
// draw call against the engine.
type DrawCommandBuilder interface {
	// Draw binds the geometry's populated vertex buffers starting at slot 0
	// (skipping the bind entirely when none are populated), attaches the index
	// buffer at offset 0 when present, and issues either an
	// indexed draw over the full index count or a single-triangle non-indexed
	// draw. The instance count comes from the geometry.
	//
	// Parameters:
	//   - eng: the engine to issue commands against
	//   - meshEntity: the mesh entity, used to label the draw
	//   - mat: the mesh's resolved material
	//   - geo: the mesh's resolved geometry
	Draw(eng engine.Engine, meshEntity ecs.Entity, mat *component.Material, geo *component.Geometry)
}

var _ DrawCommandBuilder = &drawCommandBuilder{}

// NewDrawCommandBuilder creates a DrawCommandBuilder.
//
// Returns:
//   - DrawCommandBuilder: the new builder
func NewDrawCommandBuilder() DrawCommandBuilder {
	return &drawCommandBuilder{}
}

func (b *drawCommandBuilder) Draw(eng engine.Engine, meshEntity ecs.Entity, mat *component.Material, geo *component.Geometry) {
	buffers := geo.PopulatedBuffers()
	if len(buffers) > 0 {
		eng.BindVertexInputs(engine.VertexInputs{
			IndexBuffer:     geo.IndexBuffer,
			IndexOffset:     0,
			VertexStartSlot: 0,
			VertexBuffers:   buffers,
			VertexOffsets:   make([]uint64, len(buffers)),
		})
	}

	desc := &engine.RenderPipelineDescriptor{
		Layout:             mat.PipelineLayout,
		Stages:             mat.Stages,
		Topology:           mat.Topology,
		VertexBuffers:      geo.VertexBufferLayouts(),
		CullMode:           wgpu.CullModeBack,
		FrontFace:          wgpu.FrontFaceCCW,
		DepthCompare:       wgpu.CompareFunctionLess,
		DepthWriteEnabled:  true,
		DepthStencilFormat: wgpu.TextureFormatDepth24PlusStencil8,
	}
	label := fmt.Sprintf("mesh_%d", meshEntity)

	if geo.Indexed() {
		eng.DrawElementsType(label, desc, 0, geo.IndexCount, geo.InstanceCount())
		return
	}
	eng.DrawArraysType(label, desc, 0, nonIndexedVertexCount, geo.InstanceCount())
}
