// package render implements the forward render path: a single-threaded,
// per-frame walk over every scene that culls, synchronizes uniforms, and
// issues one draw per visible mesh through the engine abstraction.
package render

import (
	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"

	"github.com/lattice3d/lattice/common"
	"github.com/lattice3d/lattice/ecs"
	"github.com/lattice3d/lattice/engine"
	"github.com/lattice3d/lattice/engine/component"
)

// renderPath is the implementation of the RenderPath interface.
type renderPath struct {
	world      *component.World
	cameras    CameraResolver
	visibility VisibilityFilter
	uniforms   UniformSynchronizer
	draw       DrawCommandBuilder
	clearColor wgpu.Color
	log        *zap.Logger
}

// RenderPath draws one frame of every registered scene.
type RenderPath interface {
	// Render executes the forward pass: clear all targets once, then for each
	// scene in registration order resolve the camera, refresh its frustum, and
	// draw the scene's meshes in list order. Meshes without a visible Cullable
	// are skipped, as are meshes whose material or geometry is missing or not
	// yet uploaded. Render mutates no component state beyond clearing uniform
	// dirty flags and refreshing camera frusta, so a frame with no custom
	// uniform changes produces an identical command stream when repeated.
	//
	// Parameters:
	//   - eng: the engine to issue rendering commands against
	Render(eng engine.Engine)
}

var _ RenderPath = &renderPath{}

// NewRenderPath creates a RenderPath over the given world. Collaborators
// default to implementations backed by the world's stores and can be replaced
// through the With* options.
//
// Parameters:
//   - world: the component world to render; must not be nil
//   - options: variadic list of RenderPathBuilderOption functions to apply
//
// Returns:
//   - RenderPath: the new render path
func NewRenderPath(world *component.World, options ...RenderPathBuilderOption) RenderPath {
	if world == nil {
		panic("render: world must not be nil")
	}
	r := &renderPath{
		world:      world,
		cameras:    NewCameraResolver(world.Cameras),
		visibility: NewVisibilityFilter(world.Cullables),
		uniforms:   NewUniformSynchronizer(world.Materials),
		draw:       NewDrawCommandBuilder(),
		clearColor: wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
		log:        zap.NewNop(),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *renderPath) Render(eng engine.Engine) {
	eng.Clear(r.clearColor, true, true, true)

	for _, scene := range r.world.Scenes.All() {
		cam := r.cameras.Resolve(scene.Camera)
		r.cameras.UpdateFrustum(cam)

		for _, meshEntity := range scene.Meshes {
			r.renderMesh(eng, meshEntity, cam)
		}
	}
}

// renderMesh draws a single mesh, or returns without drawing when the mesh is
// culled or its GPU resources are not ready.
func (r *renderPath) renderMesh(eng engine.Engine, meshEntity ecs.Entity, cam *component.Camera) {
	if !r.visibility.IsVisible(meshEntity) {
		return
	}

	mesh, ok := r.world.Meshes.Get(meshEntity)
	if !ok {
		return
	}
	mat, ok := r.world.Materials.GetPtr(mesh.Material)
	if !ok || mat.Dirty {
		return
	}
	geo, ok := r.world.Geometries.GetPtr(mesh.Geometry)
	if !ok || geo.Dirty {
		return
	}

	if transform, ok := r.world.Transforms.Get(meshEntity); ok {
		projection := cam.Projection
		var modelView [16]float32
		common.Mul4(modelView[:], cam.View[:], transform.World[:])

		r.pushUniform(eng, mesh.Material, meshEntity, UniformProjectionMatrix, common.SliceToBytes(projection[:]), false)
		r.pushUniform(eng, mesh.Material, meshEntity, UniformModelViewMatrix, common.SliceToBytes(modelView[:]), false)
	}

	for bi := range mat.Bindings {
		binding := &mat.Bindings[bi]
		for ui := range binding.Uniforms {
			value := &binding.Uniforms[ui]
			if value.Name == UniformProjectionMatrix || value.Name == UniformModelViewMatrix {
				continue
			}
			if !value.Dirty {
				continue
			}
			r.pushUniform(eng, mesh.Material, meshEntity, value.Name, value.Data, true)
		}
	}

	if mat.BindGroup != nil {
		eng.SetRenderBindGroups([]*wgpu.BindGroup{mat.BindGroup})
	}

	r.draw.Draw(eng, meshEntity, mat, geo)
}

// pushUniform routes one uniform through the synchronizer, downgrading routing
// failures to a warning so a bad uniform never takes down the frame.
func (r *renderPath) pushUniform(eng engine.Engine, materialEntity, meshEntity ecs.Entity, name string, data []byte, custom bool) {
	if err := r.uniforms.SetUniform(eng, materialEntity, name, data, custom); err != nil {
		r.log.Warn("uniform push rejected",
			zap.Uint64("mesh", uint64(meshEntity)),
			zap.String("uniform", name),
			zap.Error(err),
		)
	}
}
