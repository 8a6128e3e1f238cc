package factory

import (
	"github.com/automoto/bushido-blazer/archetypes"
	"github.com/automoto/bushido-blazer/components"
	cfg "github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/yohamta/donburi"
)

// CreateTrail leaves a fading afterimage along a slash sweep.
func CreateTrail(w donburi.World, start, end gamemath.Vec2) *donburi.Entry {
	trail := archetypes.Trail.Spawn(w)
	components.Trail.SetValue(trail, components.TrailData{Start: start, End: end})
	components.AutoDestroy.SetValue(trail, components.AutoDestroyData{
		Timer: gamemath.NewRunningTimer(cfg.Display.TrailDuration),
	})
	return trail
}

// FlashEnemy starts or restarts the hit tint on e.
func FlashEnemy(e *donburi.Entry) {
	if e.HasComponent(components.Flash) {
		components.Flash.Get(e).Timer.Reset()
		return
	}
	e.AddComponent(components.Flash)
	components.Flash.SetValue(e, components.FlashData{
		Timer: gamemath.NewRunningTimer(cfg.Display.FlashDuration),
	})
}
