package systems

import (
	"github.com/automoto/bushido-blazer/components"
	"github.com/automoto/bushido-blazer/sim"
	"github.com/yohamta/donburi"
)

// UpdateEffects ages slash trails and hit flashes and drops the spent ones.
func UpdateEffects(ctx *sim.Context) {
	var expired []*donburi.Entry
	components.AutoDestroy.Each(ctx.World, func(e *donburi.Entry) {
		d := components.AutoDestroy.Get(e)
		d.Timer.Tick(ctx.DT)
		if d.Timer.Finished() {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		destroyEntity(ctx, e)
	}

	var faded []*donburi.Entry
	components.Flash.Each(ctx.World, func(e *donburi.Entry) {
		f := components.Flash.Get(e)
		f.Timer.Tick(ctx.DT)
		if f.Timer.Finished() {
			faded = append(faded, e)
		}
	})
	for _, e := range faded {
		e.RemoveComponent(components.Flash)
	}
}
