package engine

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderRecordsCommandOrder(t *testing.T) {
	r := NewRecorder()
	buf := &wgpu.Buffer{}

	r.Clear(wgpu.Color{R: 1}, true, true, false)
	r.WriteBuffer(buf, 16, []byte{1, 2, 3})
	r.SetRenderBindGroups([]*wgpu.BindGroup{{}})
	r.BindVertexInputs(VertexInputs{VertexStartSlot: 0})
	r.DrawArraysType("tri", &RenderPipelineDescriptor{}, 0, 3, 1)
	r.DrawElementsType("box", &RenderPipelineDescriptor{}, 0, 36, 2)

	require.Len(t, r.Commands, 6)

	clears := r.Clears()
	require.Len(t, clears, 1)
	assert.True(t, clears[0].Color)
	assert.True(t, clears[0].Depth)
	assert.False(t, clears[0].Stencil)
	assert.Equal(t, 1.0, clears[0].ClearColor.R)

	writes := r.Writes()
	require.Len(t, writes, 1)
	assert.Same(t, buf, writes[0].Buffer)
	assert.Equal(t, uint64(16), writes[0].Offset)
	assert.Equal(t, []byte{1, 2, 3}, writes[0].Data)

	draws := r.Draws()
	require.Len(t, draws, 2)
	assert.Equal(t, "tri", draws[0].Label)
	assert.False(t, draws[0].Indexed)
	assert.Equal(t, 3, draws[0].Count)
	assert.Equal(t, "box", draws[1].Label)
	assert.True(t, draws[1].Indexed)
	assert.Equal(t, 36, draws[1].Count)
	assert.Equal(t, 2, draws[1].InstanceCount)
}

func TestRecorderCopiesWriteData(t *testing.T) {
	r := NewRecorder()
	data := []byte{9, 9}
	r.WriteBuffer(&wgpu.Buffer{}, 0, data)

	data[0] = 0
	assert.Equal(t, []byte{9, 9}, r.Writes()[0].Data)
}

func TestRecorderReset(t *testing.T) {
	r := NewRecorder()
	r.Clear(wgpu.Color{}, true, true, true)
	r.Reset()
	assert.Empty(t, r.Commands)
	assert.Empty(t, r.Clears())
}
