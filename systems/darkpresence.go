package systems

import (
	"github.com/automoto/bushido-blazer/components"
	cfg "github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/sim"
)

// UpdateDarkPresence fills the pressure timer while the player lingers outside
// the inner arena and strikes when it runs out. Stepping back inside clears it.
func UpdateDarkPresence(ctx *sim.Context) {
	game := getGame(ctx)
	if game == nil || game.Presence == nil {
		return
	}
	playerEntry := getPlayer(ctx)
	if playerEntry == nil {
		return
	}

	if ctx.InArena(components.Body.Get(playerEntry).Position) {
		game.Presence.Reset()
		return
	}

	game.Presence.Tick(ctx.DT)
	if game.Presence.JustFinished() {
		changePhase(ctx, game, cfg.PhaseDarkPresenceAttack)
	}
}
