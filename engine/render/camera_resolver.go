package render

import (
	"fmt"

	"github.com/lattice3d/lattice/common"
	"github.com/lattice3d/lattice/ecs"
	"github.com/lattice3d/lattice/engine/component"
)

// cameraResolver is the implementation of the CameraResolver interface.
type cameraResolver struct {
	cameras *ecs.Store[component.Camera]
}

// CameraResolver resolves a scene's camera entity to its Camera component and
// refreshes the camera's frustum from the current view-projection product.
type CameraResolver interface {
	// Resolve returns the Camera component for an entity.
	// A missing Camera is a fatal configuration error: a Scene must always
	// reference a valid camera, so Resolve panics rather than skipping.
	//
	// Parameters:
	//   - e: the camera entity referenced by a Scene
	//
	// Returns:
	//   - *component.Camera: the resolved camera
	Resolve(e ecs.Entity) *component.Camera

	// UpdateFrustum computes viewProjection = Projection * View and re-derives
	// the camera's frustum planes from it. Recomputation is unconditional per
	// invocation, with no change detection even for a camera that has not moved.
	//
	// Parameters:
	//   - cam: the camera to refresh
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix
	UpdateFrustum(cam *component.Camera) [16]float32
}

var _ CameraResolver = &cameraResolver{}

// NewCameraResolver creates a CameraResolver over the given camera store.
//
// Parameters:
//   - cameras: the Camera component store
//
// Returns:
//   - CameraResolver: the new resolver
func NewCameraResolver(cameras *ecs.Store[component.Camera]) CameraResolver {
	return &cameraResolver{cameras: cameras}
}

func (r *cameraResolver) Resolve(e ecs.Entity) *component.Camera {
	cam, ok := r.cameras.GetPtr(e)
	if !ok {
		panic(fmt.Sprintf("render: entity %d has no Camera component", e))
	}
	return cam
}

func (r *cameraResolver) UpdateFrustum(cam *component.Camera) [16]float32 {
	var viewProjection [16]float32
	common.Mul4(viewProjection[:], cam.Projection[:], cam.View[:])
	cam.UpdateFrustum(viewProjection[:])
	return viewProjection
}
