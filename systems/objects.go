package systems

import (
	"github.com/automoto/bushido-blazer/components"
	"github.com/automoto/bushido-blazer/sim"
)

// UpdateObjects moves each body's broadphase box onto its position.
func UpdateObjects(ctx *sim.Context) {
	space := getSpace(ctx)
	if space == nil {
		return
	}
	for e := range components.Body.Iter(ctx.World) {
		if !e.HasComponent(components.Object) {
			continue
		}
		obj := components.Object.Get(e)
		if obj.Object == nil {
			continue
		}
		space.Place(obj.Object, components.Body.Get(e).Position)
	}
}
