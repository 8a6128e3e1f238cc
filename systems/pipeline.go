package systems

import "github.com/automoto/bushido-blazer/sim"

// Register subscribes the event handlers and adds every pass to ctx in tick
// order. Steering runs before separation, slash hits before player contact,
// and animation after containment has settled positions.
func Register(ctx *sim.Context) {
	Subscribe(ctx)

	ctx.AddSystem(UpdatePhase)
	ctx.AddSystem(WhilePlaying(UpdatePlayer))
	ctx.AddSystem(WhilePlaying(UpdateEnemies))
	ctx.AddSystem(UpdateObjects)
	ctx.AddSystem(UpdateSlashHits)
	ctx.AddSystem(UpdateFinishers)
	ctx.AddSystem(WhilePlaying(UpdateEnemyCollisions))
	ctx.AddSystem(WhilePlaying(UpdatePlayerCollisions))
	ctx.AddSystem(UpdateCombo)
	ctx.AddSystem(UpdateContainment)
	ctx.AddSystem(WhilePlaying(UpdateDarkPresence))
	ctx.AddSystem(WhilePlaying(UpdateWaves))
	ctx.AddSystem(SpawnEnemies)
	ctx.AddSystem(UpdateAnimation)
	ctx.AddSystem(UpdateEffects)
	ctx.AddSystem(UpdateCamera)
	ctx.AddSystem(UpdateObjects)
	ctx.AddSystem(UpdateAudio)
}
