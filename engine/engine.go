// package engine defines the GPU command surface the render path drives each
// frame, plus the two provided implementations: a wgpu-backed encoder and a
// headless command recorder. The render path is the only writer; callers own
// frame pacing and presentation.
package engine

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderStages describes the programmable stages of a render pipeline.
// FragmentModule may be nil for depth-only rendering.
type ShaderStages struct {
	VertexModule       *wgpu.ShaderModule
	VertexEntryPoint   string
	FragmentModule     *wgpu.ShaderModule
	FragmentEntryPoint string
}

// RenderPipelineDescriptor is the complete description of the GPU pipeline
// state for one draw: resource layout, shader stages, primitive assembly,
// vertex fetch, and fixed rasterization/depth-stencil state.
type RenderPipelineDescriptor struct {
	// Layout is the pipeline layout describing the bind groups the shaders expect.
	Layout *wgpu.PipelineLayout
	// Stages holds the vertex and fragment shader modules and entry points.
	Stages ShaderStages
	// Topology is the primitive topology (e.g. wgpu.PrimitiveTopologyTriangleList).
	Topology wgpu.PrimitiveTopology
	// VertexBuffers describes the vertex fetch layout, one entry per bound buffer slot.
	VertexBuffers []wgpu.VertexBufferLayout
	// CullMode selects which triangle faces are discarded.
	CullMode wgpu.CullMode
	// FrontFace selects the winding order considered front-facing.
	FrontFace wgpu.FrontFace
	// DepthCompare is the depth test comparison function.
	DepthCompare wgpu.CompareFunction
	// DepthWriteEnabled controls whether passing fragments write depth.
	DepthWriteEnabled bool
	// DepthStencilFormat is the format of the depth-stencil attachment.
	DepthStencilFormat wgpu.TextureFormat
}

// VertexInputs describes the buffer bindings for one draw: an optional index
// buffer and the vertex buffers bound to consecutive input slots starting at
// VertexStartSlot.
type VertexInputs struct {
	// IndexBuffer is the index buffer, or nil for non-indexed geometry.
	IndexBuffer *wgpu.Buffer
	// IndexOffset is the byte offset into the index buffer.
	IndexOffset uint64
	// VertexStartSlot is the first vertex input slot to bind into.
	VertexStartSlot int
	// VertexBuffers are the vertex buffers bound to consecutive slots.
	VertexBuffers []*wgpu.Buffer
	// VertexOffsets are per-buffer byte offsets, parallel to VertexBuffers.
	VertexOffsets []uint64
}

// Engine is the per-frame GPU command surface. Implementations record state
// binding and draw commands in call order; the render path assumes exclusive,
// non-reentrant access for the duration of one frame.
type Engine interface {
	// Clear issues a full-target clear before any draw of the frame.
	//
	// Parameters:
	//   - clearColor: the color the color attachment is cleared to
	//   - color: whether to clear the color attachment
	//   - depth: whether to clear the depth attachment
	//   - stencil: whether to clear the stencil attachment
	Clear(clearColor wgpu.Color, color, depth, stencil bool)

	// SetRenderBindGroups binds the given bind groups to consecutive group
	// indices starting at 0 for subsequent draws.
	//
	// Parameters:
	//   - groups: the bind group handles to bind
	SetRenderBindGroups(groups []*wgpu.BindGroup)

	// BindVertexInputs binds the vertex and index buffers for subsequent draws.
	//
	// Parameters:
	//   - inputs: the buffer bindings to apply
	BindVertexInputs(inputs VertexInputs)

	// WriteBuffer writes raw bytes into a GPU buffer at the given offset.
	// Used by the uniform synchronizer to push shader-uniform values.
	//
	// Parameters:
	//   - buf: the destination buffer
	//   - offset: byte offset into the buffer
	//   - data: the bytes to write
	WriteBuffer(buf *wgpu.Buffer, offset uint64, data []byte)

	// DrawElementsType encodes one indexed draw with the given pipeline state.
	//
	// Parameters:
	//   - label: a stable debug label identifying the draw
	//   - desc: the pipeline description for the draw
	//   - firstIndex: index of the first index to read
	//   - indexCount: number of indices to draw
	//   - instanceCount: number of instances to draw
	DrawElementsType(label string, desc *RenderPipelineDescriptor, firstIndex, indexCount, instanceCount int)

	// DrawArraysType encodes one non-indexed draw with the given pipeline state.
	//
	// Parameters:
	//   - label: a stable debug label identifying the draw
	//   - desc: the pipeline description for the draw
	//   - firstVertex: index of the first vertex to read
	//   - vertexCount: number of vertices to draw
	//   - instanceCount: number of instances to draw
	DrawArraysType(label string, desc *RenderPipelineDescriptor, firstVertex, vertexCount, instanceCount int)
}
