package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lattice3d/lattice/ecs"
	"github.com/lattice3d/lattice/engine/component"
	"github.com/lattice3d/lattice/engine/render"
)

func TestVisibilityFilterFailsClosed(t *testing.T) {
	cullables := ecs.NewStore[component.Cullable]()
	filter := render.NewVisibilityFilter(cullables)

	// No Cullable at all means not visible.
	assert.False(t, filter.IsVisible(ecs.NextEntity()))
}

func TestVisibilityFilterReadsVisibleFlag(t *testing.T) {
	cullables := ecs.NewStore[component.Cullable]()
	filter := render.NewVisibilityFilter(cullables)

	hidden := ecs.NextEntity()
	shown := ecs.NextEntity()
	cullables.Set(hidden, component.Cullable{Visible: false})
	cullables.Set(shown, component.Cullable{Visible: true})

	assert.False(t, filter.IsVisible(hidden))
	assert.True(t, filter.IsVisible(shown))
}
