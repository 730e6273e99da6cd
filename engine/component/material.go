package component

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/lattice3d/lattice/engine"
)

// UniformValue is one named shader-uniform slot within a binding. Data holds
// the CPU-side bytes pending upload; Dirty marks the value as not yet pushed
// to the GPU. Framework-maintained uniforms (camera matrices) keep Dirty set
// permanently and are pushed every frame regardless.
type UniformValue struct {
	// Name is the uniform's declared name in the shader layout.
	Name string
	// Dirty marks the value as stale on the GPU side.
	Dirty bool
	// Offset is the byte offset of this uniform within its binding's buffer.
	Offset uint64
	// Data is the raw uniform payload.
	Data []byte
}

// UniformBinding is one bind-group buffer slot holding an ordered list of
// named uniform values.
type UniformBinding struct {
	// Buffer is the GPU buffer backing this binding's uniforms.
	Buffer *wgpu.Buffer
	// Uniforms lists the named values packed into Buffer, in declaration order.
	Uniforms []UniformValue
}

// Material describes the GPU-facing shading state for a mesh: the uniform
// bindings, the bind group handle, and the pipeline-relevant descriptors.
// Dirty means the material's GPU resources are not yet ready; meshes
// referencing a dirty material are skipped, not drawn with stale state.
type Material struct {
	// Dirty marks the material's GPU resources as not yet ready.
	Dirty bool
	// Bindings lists the material's uniform bindings in bind-group order.
	Bindings []UniformBinding
	// BindGroup is the GPU bind group grouping this material's resources.
	BindGroup *wgpu.BindGroup
	// PipelineLayout describes the bind group layouts the shaders expect.
	PipelineLayout *wgpu.PipelineLayout
	// Stages holds the material's shader modules and entry points.
	Stages engine.ShaderStages
	// Topology is the primitive topology meshes with this material draw with.
	Topology wgpu.PrimitiveTopology
}

// FindUniform locates a named uniform across the material's bindings in
// declaration order.
//
// Parameters:
//   - name: the uniform name to look up
//
// Returns:
//   - *UniformBinding: the binding containing the uniform, or nil if not found
//   - *UniformValue: the uniform value, or nil if not found
func (m *Material) FindUniform(name string) (*UniformBinding, *UniformValue) {
	for bi := range m.Bindings {
		binding := &m.Bindings[bi]
		for ui := range binding.Uniforms {
			if binding.Uniforms[ui].Name == name {
				return binding, &binding.Uniforms[ui]
			}
		}
	}
	return nil, nil
}
