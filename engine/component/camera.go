package component

import (
	"github.com/lattice3d/lattice/common"
)

// Camera holds the view and projection matrices (column-major) and the view
// frustum derived from their product. The frustum is stale until
// UpdateFrustum has run for the current frame; the render path recomputes it
// unconditionally before any visibility test.
type Camera struct {
	// View transforms world coordinates to view/camera space.
	View [16]float32
	// Projection transforms view coordinates to clip space.
	Projection [16]float32
	// Frustum is the view frustum extracted from Projection * View.
	Frustum common.Frustum
}

// UpdateFrustum re-derives the camera's frustum planes from the supplied
// view-projection matrix. Recomputation is unconditional; no change
// detection is performed even when the camera has not moved.
//
// Parameters:
//   - viewProjection: the combined Projection * View matrix (16 elements, column-major)
func (c *Camera) UpdateFrustum(viewProjection []float32) {
	c.Frustum = common.ExtractFrustumFromMatrix(viewProjection)
}
