package render

import (
	"github.com/lattice3d/lattice/ecs"
	"github.com/lattice3d/lattice/engine/component"
)

// visibilityFilter is the implementation of the VisibilityFilter interface.
type visibilityFilter struct {
	cullables *ecs.Store[component.Cullable]
}

// VisibilityFilter answers whether a mesh entity should be drawn this frame.
type VisibilityFilter interface {
	// IsVisible reports whether the entity has a Cullable component with its
	// visible flag set. Absence of a Cullable is treated as not visible
	// (fail-closed), so meshes never registered with the culling system do
	// not silently render.
	//
	// Parameters:
	//   - e: the mesh entity to test
	//
	// Returns:
	//   - bool: true if the mesh should be drawn
	IsVisible(e ecs.Entity) bool
}

var _ VisibilityFilter = &visibilityFilter{}

// NewVisibilityFilter creates a VisibilityFilter over the given cullable store.
//
// Parameters:
//   - cullables: the Cullable component store
//
// Returns:
//   - VisibilityFilter: the new filter
func NewVisibilityFilter(cullables *ecs.Store[component.Cullable]) VisibilityFilter {
	return &visibilityFilter{cullables: cullables}
}

func (f *visibilityFilter) IsVisible(e ecs.Entity) bool {
	cullable, ok := f.cullables.Get(e)
	return ok && cullable.Visible
}
