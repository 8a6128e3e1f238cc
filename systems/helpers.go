package systems

import (
	"github.com/automoto/bushido-blazer/components"
	cfg "github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/sim"
	"github.com/automoto/bushido-blazer/tags"
	"github.com/yohamta/donburi"
)

// getGame returns the session singleton, or nil before it exists.
func getGame(ctx *sim.Context) *components.GameData {
	e, ok := components.Game.First(ctx.World)
	if !ok {
		ctx.Log.Debug("no game singleton", "tick", ctx.Tick)
		return nil
	}
	return components.Game.Get(e)
}

// getPlayer returns the player entry, or nil outside a run.
func getPlayer(ctx *sim.Context) *donburi.Entry {
	e, ok := tags.Player.First(ctx.World)
	if !ok {
		return nil
	}
	return e
}

func getSpace(ctx *sim.Context) *components.SpaceData {
	e, ok := components.Space.First(ctx.World)
	if !ok {
		return nil
	}
	return components.Space.Get(e)
}

// queueSound adds a cue to the audio singleton.
func queueSound(ctx *sim.Context, id cfg.SoundID, pos gamemath.Vec2) {
	e, ok := components.Audio.First(ctx.World)
	if !ok {
		ctx.Log.Debug("dropped sound cue", "sound", cfg.Sound.Name(id))
		return
	}
	components.Audio.Get(e).Queue(id, pos)
}

// destroyEntity removes e and its broadphase object.
func destroyEntity(ctx *sim.Context, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil {
			if space := getSpace(ctx); space != nil {
				space.Remove(obj.Object)
			}
		}
	}
	ctx.World.Remove(e.Entity())
}

// collectEnemies snapshots the enemy entries so passes can remove or pair
// them without mutating the query they are iterating.
func collectEnemies(ctx *sim.Context) []*donburi.Entry {
	var enemies []*donburi.Entry
	tags.Enemy.Each(ctx.World, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})
	return enemies
}

func destroyEnemies(ctx *sim.Context) {
	for _, e := range collectEnemies(ctx) {
		destroyEntity(ctx, e)
	}
}

func destroyPlayer(ctx *sim.Context) {
	if player := getPlayer(ctx); player != nil {
		destroyEntity(ctx, player)
	}
}

// WhilePlaying wraps a system to run only in the Play phase.
func WhilePlaying(system sim.System) sim.System {
	return func(ctx *sim.Context) {
		game := getGame(ctx)
		if game == nil || game.Phase != cfg.PhasePlay {
			return
		}
		system(ctx)
	}
}
