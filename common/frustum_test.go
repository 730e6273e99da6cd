package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// testViewProjection builds a 90-degree perspective camera at (0, 0, 5)
// looking at the origin.
func testViewProjection() []float32 {
	view := make([]float32, 16)
	proj := make([]float32, 16)
	viewProj := make([]float32, 16)

	LookAt(view, 0, 0, 5, 0, 0, 0, 0, 1, 0)
	Perspective(proj, 1.5708, 1.0, 0.1, 100.0)
	Mul4(viewProj, proj, view)
	return viewProj
}

func TestExtractFrustumPlanesAreNormalized(t *testing.T) {
	f := ExtractFrustumFromMatrix(testViewProjection())

	for i := range f.Planes {
		n := f.Planes[i].Normal
		length := n[0]*n[0] + n[1]*n[1] + n[2]*n[2]
		assert.InDelta(t, 1.0, length, 1e-4, "plane %d", i)
	}
}

func TestContainsSphereInside(t *testing.T) {
	f := ExtractFrustumFromMatrix(testViewProjection())

	assert.True(t, f.ContainsSphere([3]float32{0, 0, 0}, 0.5))
	assert.True(t, f.ContainsSphere([3]float32{2, 0, 0}, 0.5))
	assert.True(t, f.ContainsSphere([3]float32{0, 0, -50}, 1.0))
}

func TestContainsSphereOutside(t *testing.T) {
	f := ExtractFrustumFromMatrix(testViewProjection())

	// Far to the left of the view volume.
	assert.False(t, f.ContainsSphere([3]float32{-100, 0, 0}, 1.0))
	// Behind the camera.
	assert.False(t, f.ContainsSphere([3]float32{0, 0, 50}, 1.0))
	// Beyond the far plane.
	assert.False(t, f.ContainsSphere([3]float32{0, 0, -300}, 1.0))
}

func TestContainsSphereStraddlingPlane(t *testing.T) {
	f := ExtractFrustumFromMatrix(testViewProjection())

	// Center sits outside the left plane but the radius reaches back in.
	center := [3]float32{-6, 0, 0}
	assert.False(t, f.ContainsSphere(center, 0.1))
	assert.True(t, f.ContainsSphere(center, 5.0))
}
