package engine

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// ClearCommand records one Clear call.
type ClearCommand struct {
	ClearColor wgpu.Color
	Color      bool
	Depth      bool
	Stencil    bool
}

// BindGroupsCommand records one SetRenderBindGroups call.
type BindGroupsCommand struct {
	Groups []*wgpu.BindGroup
}

// VertexInputsCommand records one BindVertexInputs call.
type VertexInputsCommand struct {
	Inputs VertexInputs
}

// WriteBufferCommand records one WriteBuffer call. Data is copied so later
// mutation of the source slice does not alter the recording.
type WriteBufferCommand struct {
	Buffer *wgpu.Buffer
	Offset uint64
	Data   []byte
}

// DrawCommand records one DrawElementsType or DrawArraysType call.
type DrawCommand struct {
	Label         string
	Indexed       bool
	Descriptor    RenderPipelineDescriptor
	First         int
	Count         int
	InstanceCount int
}

// Recorder is a headless Engine implementation that records the command
// stream as plain values instead of talking to a GPU. It backs the package
// tests and lets callers inspect exactly what a frame would submit.
type Recorder struct {
	Commands []any
}

var _ Engine = &Recorder{}

// NewRecorder creates an empty command recorder.
//
// Returns:
//   - *Recorder: the new recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Clear(clearColor wgpu.Color, color, depth, stencil bool) {
	r.Commands = append(r.Commands, ClearCommand{
		ClearColor: clearColor,
		Color:      color,
		Depth:      depth,
		Stencil:    stencil,
	})
}

func (r *Recorder) SetRenderBindGroups(groups []*wgpu.BindGroup) {
	bound := make([]*wgpu.BindGroup, len(groups))
	copy(bound, groups)
	r.Commands = append(r.Commands, BindGroupsCommand{Groups: bound})
}

func (r *Recorder) BindVertexInputs(inputs VertexInputs) {
	r.Commands = append(r.Commands, VertexInputsCommand{Inputs: inputs})
}

func (r *Recorder) WriteBuffer(buf *wgpu.Buffer, offset uint64, data []byte) {
	copied := make([]byte, len(data))
	copy(copied, data)
	r.Commands = append(r.Commands, WriteBufferCommand{
		Buffer: buf,
		Offset: offset,
		Data:   copied,
	})
}

func (r *Recorder) DrawElementsType(label string, desc *RenderPipelineDescriptor, firstIndex, indexCount, instanceCount int) {
	r.Commands = append(r.Commands, DrawCommand{
		Label:         label,
		Indexed:       true,
		Descriptor:    *desc,
		First:         firstIndex,
		Count:         indexCount,
		InstanceCount: instanceCount,
	})
}

func (r *Recorder) DrawArraysType(label string, desc *RenderPipelineDescriptor, firstVertex, vertexCount, instanceCount int) {
	r.Commands = append(r.Commands, DrawCommand{
		Label:         label,
		Indexed:       false,
		Descriptor:    *desc,
		First:         firstVertex,
		Count:         vertexCount,
		InstanceCount: instanceCount,
	})
}

// Reset discards all recorded commands, keeping allocated capacity.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Draws returns the recorded draw commands in submission order.
//
// Returns:
//   - []DrawCommand: all recorded draws
func (r *Recorder) Draws() []DrawCommand {
	var draws []DrawCommand
	for _, c := range r.Commands {
		if d, ok := c.(DrawCommand); ok {
			draws = append(draws, d)
		}
	}
	return draws
}

// Writes returns the recorded buffer writes in submission order.
//
// Returns:
//   - []WriteBufferCommand: all recorded buffer writes
func (r *Recorder) Writes() []WriteBufferCommand {
	var writes []WriteBufferCommand
	for _, c := range r.Commands {
		if w, ok := c.(WriteBufferCommand); ok {
			writes = append(writes, w)
		}
	}
	return writes
}

// Clears returns the recorded clear commands in submission order.
//
// Returns:
//   - []ClearCommand: all recorded clears
func (r *Recorder) Clears() []ClearCommand {
	var clears []ClearCommand
	for _, c := range r.Commands {
		if cl, ok := c.(ClearCommand); ok {
			clears = append(clears, cl)
		}
	}
	return clears
}
