package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice3d/lattice/common"
	"github.com/lattice3d/lattice/ecs"
	"github.com/lattice3d/lattice/engine/component"
	"github.com/lattice3d/lattice/engine/render"
)

func TestCameraResolverPanicsOnMissingCamera(t *testing.T) {
	cameras := ecs.NewStore[component.Camera]()
	resolver := render.NewCameraResolver(cameras)

	assert.Panics(t, func() {
		resolver.Resolve(ecs.NextEntity())
	})
}

func TestCameraResolverResolvesStoredCamera(t *testing.T) {
	cameras := ecs.NewStore[component.Camera]()
	resolver := render.NewCameraResolver(cameras)

	e := ecs.NextEntity()
	var cam component.Camera
	common.Identity(cam.View[:])
	common.Identity(cam.Projection[:])
	cameras.Set(e, cam)

	got := resolver.Resolve(e)
	require.NotNil(t, got)

	stored, ok := cameras.GetPtr(e)
	require.True(t, ok)
	assert.Same(t, stored, got)
}

func TestCameraResolverUpdateFrustum(t *testing.T) {
	cameras := ecs.NewStore[component.Camera]()
	resolver := render.NewCameraResolver(cameras)

	e := ecs.NextEntity()
	var cam component.Camera
	common.LookAt(cam.View[:], 0, 0, 5, 0, 0, 0, 0, 1, 0)
	common.Perspective(cam.Projection[:], 1.5708, 1.0, 0.1, 100.0)
	cameras.Set(e, cam)

	got := resolver.Resolve(e)
	viewProjection := resolver.UpdateFrustum(got)

	var want [16]float32
	common.Mul4(want[:], got.Projection[:], got.View[:])
	assert.Equal(t, want, viewProjection)

	// The frustum now reflects the camera: origin in view, behind camera out.
	assert.True(t, got.Frustum.ContainsSphere([3]float32{0, 0, 0}, 0.5))
	assert.False(t, got.Frustum.ContainsSphere([3]float32{0, 0, 50}, 0.5))
}
