package render

import (
	"errors"
	"fmt"

	"github.com/lattice3d/lattice/ecs"
	"github.com/lattice3d/lattice/engine"
	"github.com/lattice3d/lattice/engine/component"
)

// Names of the framework-maintained camera uniforms. These are pushed every
// frame for meshes with a Transform and are excluded from the dirty-driven
// custom uniform sweep.
const (
	UniformProjectionMatrix = "projectionMatrix"
	UniformModelViewMatrix  = "modelViewMatrix"
)

// ErrUnknownUniform is returned when a uniform push cannot be routed: either
// the target entity has no Material component, or the material's bindings
// declare no uniform under the requested name.
var ErrUnknownUniform = errors.New("render: unknown uniform")

// uniformSynchronizer is the implementation of the UniformSynchronizer interface.
type uniformSynchronizer struct {
	materials *ecs.Store[component.Material]
}

// UniformSynchronizer pushes named uniform values into a material's GPU-visible
// uniform storage.
type UniformSynchronizer interface {
	// SetUniform writes data under name into the material owned by the given
	// entity. The custom flag distinguishes user uniforms from the
	// framework-maintained camera matrices: a custom push clears the
	// uniform's dirty flag, a framework push leaves it untouched so camera
	// matrices keep flowing every frame.
	//
	// Parameters:
	//   - eng: the engine to write the GPU buffer through
	//   - materialEntity: the entity owning the target Material component
	//   - name: the uniform's declared name
	//   - data: the raw uniform payload
	//   - custom: true for user uniforms, false for camera matrices
	//
	// Returns:
	//   - error: ErrUnknownUniform when the name cannot be resolved, nil otherwise
	SetUniform(eng engine.Engine, materialEntity ecs.Entity, name string, data []byte, custom bool) error
}

var _ UniformSynchronizer = &uniformSynchronizer{}

// NewUniformSynchronizer creates a UniformSynchronizer over the given material
// store.
//
// Parameters:
//   - materials: the Material component store
//
// Returns:
//   - UniformSynchronizer: the new synchronizer
func NewUniformSynchronizer(materials *ecs.Store[component.Material]) UniformSynchronizer {
	return &uniformSynchronizer{materials: materials}
}

func (s *uniformSynchronizer) SetUniform(eng engine.Engine, materialEntity ecs.Entity, name string, data []byte, custom bool) error {
	mat, ok := s.materials.GetPtr(materialEntity)
	if !ok {
		return fmt.Errorf("%w: entity %d has no Material component (uniform %q)", ErrUnknownUniform, materialEntity, name)
	}
	binding, value := mat.FindUniform(name)
	if value == nil {
		return fmt.Errorf("%w: material %d declares no uniform %q", ErrUnknownUniform, materialEntity, name)
	}
	value.Data = data
	if binding.Buffer != nil {
		eng.WriteBuffer(binding.Buffer, value.Offset, data)
	}
	if custom {
		value.Dirty = false
	}
	return nil
}
