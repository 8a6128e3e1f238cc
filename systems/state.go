package systems

import (
	"github.com/automoto/bushido-blazer/components"
	cfg "github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/sim"
	"github.com/automoto/bushido-blazer/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// UpdatePhase advances the top level state machine. Transitions out of Play
// happen in the combat and dark presence passes; the timed edges live here.
func UpdatePhase(ctx *sim.Context) {
	game := getGame(ctx)
	if game == nil {
		return
	}
	game.PreviousPhase = game.Phase

	switch game.Phase {
	case cfg.PhaseMenu:
		if ctx.Input.Attack {
			changePhase(ctx, game, cfg.PhaseFadeout)
		}
	case cfg.PhaseFadeout:
		if tickFade(ctx, game) {
			changePhase(ctx, game, cfg.PhasePlay)
		}
	case cfg.PhaseGameOver:
		if tickFade(ctx, game) {
			changePhase(ctx, game, cfg.PhaseMenu)
		}
	case cfg.PhaseDarkPresenceAttack:
		game.Attack.Tick(ctx.DT)
		if game.Attack.Finished() {
			changePhase(ctx, game, cfg.PhaseMenu)
		}
	}
}

// tickFade advances the screen ramp and reports whether it completed.
func tickFade(ctx *sim.Context, game *components.GameData) bool {
	if game.Fade == nil {
		return true
	}
	alpha, finished := game.Fade.Update(float32(ctx.DT))
	game.FadeAlpha = float64(alpha)
	return finished
}

func startFade(game *components.GameData, duration float64) {
	game.Fade = gween.New(0, 1, float32(duration), ease.Linear)
	game.FadeAlpha = 0
}

// changePhase runs the exit actions of the current phase, then the entry
// actions of next.
func changePhase(ctx *sim.Context, game *components.GameData, next cfg.Phase) {
	prev := game.Phase
	if prev == next {
		return
	}

	switch prev {
	case cfg.PhasePlay:
		endRun(ctx, game)
	case cfg.PhaseGameOver, cfg.PhaseDarkPresenceAttack:
		endRun(ctx, game)
		destroyPlayer(ctx)
	}

	game.Phase = next

	switch next {
	case cfg.PhaseFadeout:
		startFade(game, cfg.Phases.FadeDuration)
	case cfg.PhasePlay:
		game.Fade = nil
		game.FadeAlpha = 0
		destroyPlayer(ctx)
		factory.CreatePlayer(ctx.World, gamemath.V(0, 0))
		game.Combo = cfg.ComboZero
		game.Kills = 0
		game.Presence.Reset()
	case cfg.PhaseGameOver:
		startFade(game, cfg.Phases.GameOverDuration)
	case cfg.PhaseDarkPresenceAttack:
		game.Attack.Reset()
		pos := gamemath.V(0, 0)
		if player := getPlayer(ctx); player != nil {
			pos = components.Body.Get(player).Position
		}
		queueSound(ctx, cfg.SoundAttack, pos)
	case cfg.PhaseMenu:
		game.Fade = nil
		game.FadeAlpha = 0
	}

	ctx.Log.Info("phase changed",
		"from", prev.String(),
		"to", next.String(),
		"tick", ctx.Tick,
		"combo", game.Combo.String(),
		"kills", game.Kills,
	)
}

// endRun clears the wave state shared by every exit from a run.
func endRun(ctx *sim.Context, game *components.GameData) {
	destroyEnemies(ctx)
	if e, ok := components.Spawner.First(ctx.World); ok {
		components.Spawner.Get(e).Reset()
	}
	game.Expanded = false
}
