package component

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometryInstanceCount(t *testing.T) {
	g := &Geometry{}
	assert.Equal(t, 1, g.InstanceCount())

	g.MaxInstancedCount = -3
	assert.Equal(t, 1, g.InstanceCount())

	g.MaxInstancedCount = 8
	assert.Equal(t, 8, g.InstanceCount())
}

func TestGeometryIndexed(t *testing.T) {
	g := &Geometry{}
	assert.False(t, g.Indexed())

	g.IndexCount = 36
	assert.True(t, g.Indexed())
}

func TestGeometryPopulatedBuffersFiltersNil(t *testing.T) {
	positions := &wgpu.Buffer{}
	normals := &wgpu.Buffer{}

	g := &Geometry{
		Attributes: []VertexAttribute{
			{Buffer: positions, Stride: 12},
			{Buffer: nil, Stride: 8},
			{Buffer: normals, Stride: 12},
		},
	}

	buffers := g.PopulatedBuffers()
	require.Len(t, buffers, 2)
	assert.Same(t, positions, buffers[0])
	assert.Same(t, normals, buffers[1])
}

func TestGeometryVertexBufferLayoutsParallelToBuffers(t *testing.T) {
	g := &Geometry{
		Attributes: []VertexAttribute{
			{
				Buffer:   &wgpu.Buffer{},
				Stride:   12,
				StepMode: wgpu.VertexStepModeVertex,
				Layout: []wgpu.VertexAttribute{
					{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
				},
			},
			{Buffer: nil, Stride: 8},
			{
				Buffer:   &wgpu.Buffer{},
				Stride:   16,
				StepMode: wgpu.VertexStepModeInstance,
				Layout: []wgpu.VertexAttribute{
					{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 1},
				},
			},
		},
	}

	layouts := g.VertexBufferLayouts()
	require.Len(t, layouts, 2)
	assert.Equal(t, uint64(12), layouts[0].ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, layouts[0].StepMode)
	assert.Equal(t, uint64(16), layouts[1].ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeInstance, layouts[1].StepMode)
}

func TestMaterialFindUniform(t *testing.T) {
	m := &Material{
		Bindings: []UniformBinding{
			{Uniforms: []UniformValue{{Name: "projectionMatrix", Offset: 0}}},
			{Uniforms: []UniformValue{
				{Name: "modelViewMatrix", Offset: 0},
				{Name: "tint", Offset: 64},
			}},
		},
	}

	binding, value := m.FindUniform("tint")
	require.NotNil(t, value)
	assert.Equal(t, uint64(64), value.Offset)
	assert.Same(t, &m.Bindings[1], binding)

	// The returned pointer aliases the material, so mutations stick.
	value.Dirty = true
	assert.True(t, m.Bindings[1].Uniforms[1].Dirty)

	binding, value = m.FindUniform("missing")
	assert.Nil(t, binding)
	assert.Nil(t, value)
}
