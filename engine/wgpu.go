package engine

import (
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
)

// WGPU is the wgpu-backed Engine implementation. It encodes one render pass
// per frame into caller-supplied color and depth-stencil target views, and
// caches created render pipelines by draw label so repeated frames reuse GPU
// pipeline objects.
//
// The caller owns surface acquisition and presentation: set the frame's
// target views with SetTargets, drive the Engine surface for the frame, then
// call Flush to submit the encoded commands to the queue.
type WGPU struct {
	mu *sync.Mutex

	device *wgpu.Device
	queue  *wgpu.Queue

	colorFormat wgpu.TextureFormat
	colorView   *wgpu.TextureView
	depthView   *wgpu.TextureView

	pipelineCache map[string]*wgpu.RenderPipeline

	// Frame state between Clear and Flush.
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder

	// Latched binding state applied to each draw.
	bindGroups []*wgpu.BindGroup
	inputs     VertexInputs
}

var _ Engine = &WGPU{}

// WGPUOption configures a WGPU engine during construction.
type WGPUOption func(*WGPU)

// WithColorFormat overrides the color target format used when creating
// render pipelines. Defaults to wgpu.TextureFormatBGRA8Unorm.
//
// Parameters:
//   - format: the color attachment texture format
//
// Returns:
//   - WGPUOption: a function that sets the color format
func WithColorFormat(format wgpu.TextureFormat) WGPUOption {
	return func(e *WGPU) {
		e.colorFormat = format
	}
}

// NewWGPU creates a wgpu-backed Engine over an existing device and queue.
// Target views must be supplied via SetTargets before the first frame.
//
// Parameters:
//   - device: the WebGPU device
//   - queue: the device's queue
//   - options: variadic list of WGPUOption functions to configure the engine
//
// Returns:
//   - *WGPU: the new engine
func NewWGPU(device *wgpu.Device, queue *wgpu.Queue, options ...WGPUOption) *WGPU {
	e := &WGPU{
		mu:            &sync.Mutex{},
		device:        device,
		queue:         queue,
		colorFormat:   wgpu.TextureFormatBGRA8Unorm,
		pipelineCache: make(map[string]*wgpu.RenderPipeline),
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

// SetTargets sets the color and depth-stencil views the next frame renders
// into. Must be called whenever the swapchain texture or surface size changes.
//
// Parameters:
//   - colorView: the color attachment view
//   - depthView: the depth-stencil attachment view
func (e *WGPU) SetTargets(colorView, depthView *wgpu.TextureView) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.colorView = colorView
	e.depthView = depthView
}

func (e *WGPU) Clear(clearColor wgpu.Color, color, depth, stencil bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	encoder, err := e.device.CreateCommandEncoder(nil)
	if err != nil {
		panic(err)
	}
	e.frameEncoder = encoder

	colorLoad := wgpu.LoadOpLoad
	if color {
		colorLoad = wgpu.LoadOpClear
	}
	depthLoad := wgpu.LoadOpLoad
	if depth {
		depthLoad = wgpu.LoadOpClear
	}
	stencilLoad := wgpu.LoadOpLoad
	if stencil {
		stencilLoad = wgpu.LoadOpClear
	}

	e.framePass = encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       e.colorView,
				LoadOp:     colorLoad,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: clearColor,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:              e.depthView,
			DepthLoadOp:       depthLoad,
			DepthStoreOp:      wgpu.StoreOpStore,
			DepthClearValue:   1.0,
			StencilLoadOp:     stencilLoad,
			StencilStoreOp:    wgpu.StoreOpStore,
			StencilClearValue: 0,
		},
	})
}

func (e *WGPU) SetRenderBindGroups(groups []*wgpu.BindGroup) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bindGroups = groups
}

func (e *WGPU) BindVertexInputs(inputs VertexInputs) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.inputs = inputs
}

func (e *WGPU) WriteBuffer(buf *wgpu.Buffer, offset uint64, data []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.queue.WriteBuffer(buf, offset, data)
}

func (e *WGPU) DrawElementsType(label string, desc *RenderPipelineDescriptor, firstIndex, indexCount, instanceCount int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.framePass == nil {
		return
	}
	e.applyState(label, desc)
	e.framePass.DrawIndexed(uint32(indexCount), uint32(instanceCount), uint32(firstIndex), 0, 0)
}

func (e *WGPU) DrawArraysType(label string, desc *RenderPipelineDescriptor, firstVertex, vertexCount, instanceCount int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.framePass == nil {
		return
	}
	e.applyState(label, desc)
	e.framePass.Draw(uint32(vertexCount), uint32(instanceCount), uint32(firstVertex), 0)
}

// Flush ends the frame's render pass and submits the encoded command buffer
// to the queue. Must be called once per frame after all draws.
//
// Returns:
//   - error: an error if the command buffer could not be finished
func (e *WGPU) Flush() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.framePass == nil || e.frameEncoder == nil {
		return nil
	}

	e.framePass.End()
	e.framePass.Release()
	e.framePass = nil

	commandBuffer, err := e.frameEncoder.Finish(nil)
	if err != nil {
		e.frameEncoder.Release()
		e.frameEncoder = nil
		return err
	}

	e.queue.Submit(commandBuffer)
	commandBuffer.Release()
	e.frameEncoder.Release()
	e.frameEncoder = nil
	return nil
}

// applyState sets the pipeline, bind groups, and buffer bindings for the next
// draw. Caller must hold the mutex and have an active frame pass.
func (e *WGPU) applyState(label string, desc *RenderPipelineDescriptor) {
	e.framePass.SetPipeline(e.pipeline(label, desc))

	for i, bg := range e.bindGroups {
		e.framePass.SetBindGroup(uint32(i), bg, nil)
	}

	for i, vb := range e.inputs.VertexBuffers {
		var offset uint64
		if i < len(e.inputs.VertexOffsets) {
			offset = e.inputs.VertexOffsets[i]
		}
		e.framePass.SetVertexBuffer(uint32(e.inputs.VertexStartSlot+i), vb, offset, wgpu.WholeSize)
	}

	if e.inputs.IndexBuffer != nil {
		e.framePass.SetIndexBuffer(e.inputs.IndexBuffer, wgpu.IndexFormatUint32, e.inputs.IndexOffset, wgpu.WholeSize)
	}
}

// pipeline returns the cached render pipeline for a draw label, creating it
// from the descriptor on first use. Labels are stable per mesh, so the cache
// converges after the first frame.
func (e *WGPU) pipeline(label string, desc *RenderPipelineDescriptor) *wgpu.RenderPipeline {
	if p, exists := e.pipelineCache[label]; exists {
		return p
	}

	var fragment *wgpu.FragmentState
	if desc.Stages.FragmentModule != nil {
		fragment = &wgpu.FragmentState{
			Module:     desc.Stages.FragmentModule,
			EntryPoint: desc.Stages.FragmentEntryPoint,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    e.colorFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		}
	}

	created, err := e.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  label,
		Layout: desc.Layout,
		Vertex: wgpu.VertexState{
			Module:     desc.Stages.VertexModule,
			EntryPoint: desc.Stages.VertexEntryPoint,
			Buffers:    desc.VertexBuffers,
		},
		Fragment: fragment,
		Primitive: wgpu.PrimitiveState{
			Topology:  desc.Topology,
			FrontFace: desc.FrontFace,
			CullMode:  desc.CullMode,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            desc.DepthStencilFormat,
			DepthWriteEnabled: desc.DepthWriteEnabled,
			DepthCompare:      desc.DepthCompare,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		panic(err)
	}

	e.pipelineCache[label] = created
	return created
}
