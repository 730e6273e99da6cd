// package component contains the component value types the render path reads
// each frame, plus the World registry bundling one store per type. They are
// plain structs, not interface-wrapped: components are data, mutated by
// loaders and systems outside the render core.
package component

import (
	"github.com/lattice3d/lattice/ecs"
)

// Scene groups a camera with an ordered list of mesh entities. The camera ref
// must resolve to an existing Camera component whenever the scene is rendered;
// a dangling camera ref is a configuration bug, not a recoverable state.
type Scene struct {
	// Camera is the entity carrying the scene's Camera component.
	Camera ecs.Entity
	// Meshes lists the scene's mesh entities in draw order.
	Meshes []ecs.Entity
}

// Mesh ties a drawable entity to its material and geometry. A mesh whose refs
// do not resolve is skipped during rendering, not treated as an error; the
// components may simply still be loading.
type Mesh struct {
	// Material is the entity carrying the mesh's Material component.
	Material ecs.Entity
	// Geometry is the entity carrying the mesh's Geometry component.
	Geometry ecs.Entity
}

// Transform holds an entity's world transform matrix (column-major). A mesh
// without a Transform still draws, but camera-derived uniforms are not pushed
// for it.
type Transform struct {
	World [16]float32
}

// Cullable carries the per-frame visibility verdict for a mesh. The render
// path only reads Visible; a culling system owns writing it. Center and
// Radius describe the world-space bounding sphere that system tests against
// the camera frustum.
type Cullable struct {
	Visible bool
	Center  [3]float32
	Radius  float32
}
