package render

import (
	"go.uber.org/zap"

	"github.com/lattice3d/lattice/engine/component"
)

// cullingSystem is the implementation of the CullingSystem interface.
type cullingSystem struct {
	world   *component.World
	cameras CameraResolver
	log     *zap.Logger
}

// CullingSystem refreshes the visible flag of every Cullable against its
// scene's camera frustum. Run it before the render path so the frame draws
// only meshes whose bounding spheres intersect the view volume.
type CullingSystem interface {
	// Refresh walks every scene, rebuilds the camera frustum, and tests each
	// mesh's bounding sphere against it, writing the result into the mesh's
	// Cullable. Meshes without a Cullable are left alone and stay invisible
	// to the render path. Scenes whose camera entity has no Camera component
	// are skipped with a warning; unlike the render path, culling is advisory
	// and must not take the frame down.
	Refresh()
}

var _ CullingSystem = &cullingSystem{}

// NewCullingSystem creates a CullingSystem over the given world.
//
// Parameters:
//   - world: the component world to cull; must not be nil
//   - log: the logger for diagnostics, nil for no logging
//
// Returns:
//   - CullingSystem: the new system
func NewCullingSystem(world *component.World, log *zap.Logger) CullingSystem {
	if world == nil {
		panic("render: world must not be nil")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &cullingSystem{
		world:   world,
		cameras: NewCameraResolver(world.Cameras),
		log:     log,
	}
}

func (c *cullingSystem) Refresh() {
	for sceneEntity, scene := range c.world.Scenes.All() {
		cam, ok := c.world.Cameras.GetPtr(scene.Camera)
		if !ok {
			c.log.Warn("culling skipped scene without camera",
				zap.Uint64("scene", uint64(sceneEntity)),
				zap.Uint64("camera", uint64(scene.Camera)),
			)
			continue
		}
		c.cameras.UpdateFrustum(cam)

		for _, meshEntity := range scene.Meshes {
			cullable, ok := c.world.Cullables.GetPtr(meshEntity)
			if !ok {
				continue
			}
			cullable.Visible = cam.Frustum.ContainsSphere(cullable.Center, cullable.Radius)
		}
	}
}
