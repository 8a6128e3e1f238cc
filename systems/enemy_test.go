package systems

import (
	"math"
	"testing"

	"github.com/automoto/bushido-blazer/components"
	cfg "github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestEnemiesPursuePlayer(t *testing.T) {
	ctx := newTestContext(t)
	startPlay(t, ctx)

	gray := factory.CreateEnemy(ctx.World, cfg.GrayMask, gamemath.V(200, 0))
	dummy := factory.CreateEnemy(ctx.World, cfg.Dummy, gamemath.V(-200, 0))

	for i := 0; i < 10; i++ {
		UpdateEnemies(ctx)
	}

	assert.Less(t, components.Body.Get(gray).Position.X, 200.0)
	assert.Equal(t, gamemath.V(-200, 0), components.Body.Get(dummy).Position, "dummies never move")
}

func TestBlueMaskOrbits(t *testing.T) {
	ctx := newTestContext(t)
	startPlay(t, ctx)
	blue := factory.CreateEnemy(ctx.World, cfg.BlueMask, gamemath.V(200, 0))

	UpdateEnemies(ctx)

	v := components.Body.Get(blue).Velocity
	assert.Less(t, v.X, 0.0)
	assert.NotZero(t, v.Y, "approach is rotated off the direct line")
}

func TestEnemiesOutsideArenaIgnoreInsidePlayer(t *testing.T) {
	ctx := newTestContext(t)
	startPlay(t, ctx)
	outside := factory.CreateEnemy(ctx.World, cfg.GrayMask, gamemath.V(cfg.Arena.InnerWidth/2+100, 0))

	UpdateEnemies(ctx)

	assert.Equal(t, gamemath.V(0, 0), components.Body.Get(outside).Velocity)
}

func TestRedMaskDashesInsideBand(t *testing.T) {
	ctx := newTestContext(t)
	startPlay(t, ctx)

	inBand := factory.CreateEnemy(ctx.World, cfg.RedMask, gamemath.V(cfg.Player.SlashDistance*0.9, 0))
	far := factory.CreateEnemy(ctx.World, cfg.RedMask, gamemath.V(0, 300))

	UpdateEnemies(ctx)

	assert.Greater(t, math.Abs(components.Body.Get(inBand).Velocity.Y), 0.0, "sideways dash")
	assert.InDelta(t, 0.0, components.Body.Get(far).Velocity.X, 1e-9, "plain pursuit stays on the line")
}

func TestBlackMaskChargesWhenLinedUp(t *testing.T) {
	ctx := newTestContext(t)
	startPlay(t, ctx)

	lined := factory.CreateEnemy(ctx.World, cfg.BlackMask, gamemath.V(300, 0))
	components.Body.Get(lined).Velocity = gamemath.V(-0.5, 0)

	crossing := factory.CreateEnemy(ctx.World, cfg.BlackMask, gamemath.V(-300, 0))
	components.Body.Get(crossing).Velocity = gamemath.V(0, 0.5)

	UpdateEnemies(ctx)

	assert.Less(t, components.Body.Get(lined).Velocity.X, -0.5, "charge impulse outweighs the decay")
	assert.Less(t, components.Body.Get(crossing).Velocity.X, cfg.Enemy.ChargeImpulse*frame, "no charge off the line")
}

func TestEnemyCooldownTicksInEnemyPass(t *testing.T) {
	ctx := newTestContext(t)
	startPlay(t, ctx)
	enemy := factory.CreateEnemy(ctx.World, cfg.GrayMask, gamemath.V(200, 0))
	cooldown := components.Body.Get(enemy).HitCooldown
	cooldown.Reset()

	ticks := int(cooldown.Duration()/frame) + 5
	for i := 0; i < ticks; i++ {
		UpdateEnemies(ctx)
	}
	assert.True(t, cooldown.Finished())
}

func TestEnemySeparation(t *testing.T) {
	ctx := newTestContext(t)
	a := factory.CreateEnemy(ctx.World, cfg.Dummy, gamemath.V(0, 0))
	b := factory.CreateEnemy(ctx.World, cfg.Dummy, gamemath.V(10, 0))
	c := factory.CreateEnemy(ctx.World, cfg.Dummy, gamemath.V(500, 0))
	d := factory.CreateEnemy(ctx.World, cfg.Dummy, gamemath.V(560, 0))

	UpdateEnemyCollisions(ctx)

	push := cfg.Combat.EnemyPush * frame
	near := cfg.Combat.EnemyNearPush * frame
	assert.InDelta(t, -push, components.Body.Get(a).Velocity.X, 1e-9)
	assert.InDelta(t, push, components.Body.Get(b).Velocity.X, 1e-9)
	assert.InDelta(t, -near, components.Body.Get(c).Velocity.X, 1e-9)
	assert.InDelta(t, near, components.Body.Get(d).Velocity.X, 1e-9)
}
