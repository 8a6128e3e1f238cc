package systems

import (
	"math"

	"github.com/automoto/bushido-blazer/components"
	cfg "github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/sim"
	"github.com/automoto/bushido-blazer/tags"
	"github.com/yohamta/donburi"
)

// UpdateEnemies steers every enemy toward the player and moves it. Enemies
// only give chase while they are on the same side of the arena edge as the
// player.
func UpdateEnemies(ctx *sim.Context) {
	playerEntry := getPlayer(ctx)
	if playerEntry == nil {
		return
	}
	target := components.Body.Get(playerEntry).Position
	playerInside := ctx.InArena(target)

	tags.Enemy.Each(ctx.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		body := components.Body.Get(e)

		body.HitCooldown.Tick(ctx.DT)

		if ctx.InArena(body.Position) == playerInside {
			steerEnemy(ctx, enemy.Kind, body, target)
		}

		body.Relax(ctx.DT)
		body.Integrate(ctx.DT)
	})
}

// steerEnemy feeds one tick of kind's behaviour into body.
func steerEnemy(ctx *sim.Context, kind cfg.EnemyKind, body *components.BodyData, target gamemath.Vec2) {
	toPlayer := gamemath.Sub(target, body.Position)
	direction := gamemath.Normalize(toPlayer)
	dt := ctx.DT

	switch kind {
	case cfg.Dummy:
	case cfg.GrayMask:
		body.Accelerate(gamemath.Scale(direction, dt))
	case cfg.BlueMask:
		orbit := gamemath.Rotate(direction, cfg.Enemy.OrbitAngle)
		body.Accelerate(gamemath.Scale(orbit, dt))
	case cfg.RedMask:
		reach := cfg.Player.SlashDistance
		distance := gamemath.Length(toPlayer)
		if distance < reach && distance > reach*cfg.Enemy.DashBandMin {
			dash := gamemath.Rotate(direction, cfg.Enemy.DashAngle)
			body.Impulse(gamemath.Scale(dash, cfg.Enemy.DashImpulse*dt))
		}
		body.Accelerate(gamemath.Scale(direction, dt))
	case cfg.BlackMask:
		if gamemath.Length(body.Velocity) > 0 &&
			math.Abs(gamemath.AngleBetween(body.Velocity, toPlayer)) < cfg.Enemy.ChargeAlignment {
			body.Impulse(gamemath.Scale(direction, cfg.Enemy.ChargeImpulse*dt))
		}
		body.Accelerate(gamemath.Scale(direction, dt))
	default:
		ctx.Log.Debug("no behaviour for enemy kind", "kind", kind.String())
	}
}
