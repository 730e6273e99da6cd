package common

import (
	"math"
)

// Plane represents a plane in 3D space using the equation: ax + by + cz + d = 0
// where (a, b, c) is the normal and d is the distance from origin.
type Plane struct {
	Normal   [3]float32
	Distance float32
}

// Frustum represents the six planes of a view frustum for culling.
// Planes are oriented so that positive half-space is inside the frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FrustumPlane indices for clarity
const (
	FrustumLeft   = 0
	FrustumRight  = 1
	FrustumBottom = 2
	FrustumTop    = 3
	FrustumNear   = 4
	FrustumFar    = 5
)

// ExtractFrustumFromMatrix extracts frustum planes from a view-projection matrix.
// The matrix should be the combined Projection * View matrix.
// Uses the Gribb/Hartmann method for plane extraction.
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
//
// Parameters:
//   - viewProj: 16 float32 values representing the view-projection matrix (column-major)
//
// Returns:
//   - Frustum: the extracted frustum with normalized planes
func ExtractFrustumFromMatrix(viewProj []float32) Frustum {
	var f Frustum

	// For column-major matrix M, row r is at viewProj[c*4+r]. Each plane is
	// row3 +/- one of rows 0..2 of the combined matrix.
	row := func(r int) (x, y, z, w float32) {
		return viewProj[r], viewProj[4+r], viewProj[8+r], viewProj[12+r]
	}
	r0x, r0y, r0z, r0w := row(0)
	r1x, r1y, r1z, r1w := row(1)
	r2x, r2y, r2z, r2w := row(2)
	r3x, r3y, r3z, r3w := row(3)

	set := func(i int, x, y, z, w float32) {
		f.Planes[i].Normal = [3]float32{x, y, z}
		f.Planes[i].Distance = w
	}
	set(FrustumLeft, r3x+r0x, r3y+r0y, r3z+r0z, r3w+r0w)
	set(FrustumRight, r3x-r0x, r3y-r0y, r3z-r0z, r3w-r0w)
	set(FrustumBottom, r3x+r1x, r3y+r1y, r3z+r1z, r3w+r1w)
	set(FrustumTop, r3x-r1x, r3y-r1y, r3z-r1z, r3w-r1w)
	set(FrustumNear, r3x+r2x, r3y+r2y, r3z+r2z, r3w+r2w)
	set(FrustumFar, r3x-r2x, r3y-r2y, r3z-r2z, r3w-r2w)

	for i := range f.Planes {
		f.normalizePlane(i)
	}

	return f
}

// ContainsSphere reports whether a bounding sphere intersects or lies inside
// the frustum. A sphere strictly behind any plane by more than its radius is
// outside.
//
// Parameters:
//   - center: sphere center in world space
//   - radius: sphere radius
//
// Returns:
//   - bool: true if any part of the sphere is inside the frustum
func (f *Frustum) ContainsSphere(center [3]float32, radius float32) bool {
	for i := range f.Planes {
		p := &f.Planes[i]
		dist := p.Normal[0]*center[0] + p.Normal[1]*center[1] + p.Normal[2]*center[2] + p.Distance
		if dist < -radius {
			return false
		}
	}
	return true
}

// normalizePlane normalizes a frustum plane so that the normal has unit length.
func (f *Frustum) normalizePlane(index int) {
	p := &f.Planes[index]
	length := float32(math.Sqrt(float64(
		p.Normal[0]*p.Normal[0] +
			p.Normal[1]*p.Normal[1] +
			p.Normal[2]*p.Normal[2],
	)))

	if length > 0 {
		invLen := 1.0 / length
		p.Normal[0] *= invLen
		p.Normal[1] *= invLen
		p.Normal[2] *= invLen
		p.Distance *= invLen
	}
}
