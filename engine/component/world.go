package component

import (
	"github.com/lattice3d/lattice/ecs"
)

// World bundles one typed component store per component type. Lookups are
// explicit (value, ok) pairs; absence is always handled by the caller, never
// signalled through a null sentinel.
//
// The render path only reads through World (and clears uniform dirty flags);
// creation and destruction of components belong to the surrounding framework.
type World struct {
	Scenes     *ecs.Store[Scene]
	Cameras    *ecs.Store[Camera]
	Meshes     *ecs.Store[Mesh]
	Materials  *ecs.Store[Material]
	Geometries *ecs.Store[Geometry]
	Cullables  *ecs.Store[Cullable]
	Transforms *ecs.Store[Transform]
}

// NewWorld creates a World with empty stores for every component type.
//
// Returns:
//   - *World: the new world
func NewWorld() *World {
	return &World{
		Scenes:     ecs.NewStore[Scene](),
		Cameras:    ecs.NewStore[Camera](),
		Meshes:     ecs.NewStore[Mesh](),
		Materials:  ecs.NewStore[Material](),
		Geometries: ecs.NewStore[Geometry](),
		Cullables:  ecs.NewStore[Cullable](),
		Transforms: ecs.NewStore[Transform](),
	}
}
