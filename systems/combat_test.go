package systems

import (
	"testing"

	"github.com/automoto/bushido-blazer/components"
	cfg "github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/events"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func eastSlash() events.Slash {
	return events.Slash{
		Start:     gamemath.V(0, 0),
		Direction: gamemath.V(1, 0),
		Length:    cfg.Player.SlashDistance,
	}
}

func TestSlashConnectsAtEndCap(t *testing.T) {
	slash := eastSlash()
	radius := 15.0

	assert.True(t, SlashConnects(slash, slash.End(), radius), "collider centered on the end cap")

	beyond := gamemath.V(slash.Length+radius+1, 0)
	assert.False(t, SlashConnects(slash, beyond, radius), "one unit past length plus radius")

	assert.True(t, SlashConnects(slash, gamemath.V(60, 18), radius), "crossed by the upper blade ray")
	assert.False(t, SlashConnects(slash, gamemath.V(60, 40), radius), "clear of both rays")
	assert.False(t, SlashConnects(slash, gamemath.V(-40, 0), radius), "behind the start")
}

func TestSlashSparksOnEitherRay(t *testing.T) {
	slash := eastSlash()
	post := gamemath.Rect{Min: gamemath.V(100, 3), Max: gamemath.V(110, 20)}
	assert.True(t, SlashSparks(slash, post), "only the upper ray reaches the post")

	mirrored := gamemath.Rect{Min: gamemath.V(100, -20), Max: gamemath.V(110, -3)}
	assert.True(t, SlashSparks(slash, mirrored), "only the lower ray reaches the post")

	assert.False(t, SlashSparks(slash, gamemath.Rect{Min: gamemath.V(200, -5), Max: gamemath.V(210, 5)}))
}

func TestSlashHitMarksEnemy(t *testing.T) {
	ctx := newTestContext(t)
	player := startPlay(t, ctx)
	slash := eastSlash()

	hit := factory.CreateEnemy(ctx.World, cfg.Dummy, slash.End())
	miss := factory.CreateEnemy(ctx.World, cfg.Dummy, gamemath.V(slash.Length+16, 0))

	events.SlashEvent.Publish(ctx.World, slash)
	UpdateSlashHits(ctx)

	assert.True(t, components.Enemy.Get(hit).Marked)
	assert.False(t, components.Enemy.Get(miss).Marked)
	assert.False(t, components.Body.Get(hit).HitCooldown.Finished(), "enemy cooldown restarted")

	p := components.Player.Get(player)
	assert.True(t, p.Locked(), "hit extends the slash pose")
	assert.True(t, p.Slash.Finished(), "hit refunds the slash cooldown")
	assert.Equal(t, []string{"hit"}, pendingSounds(ctx))
}

func TestSlashIgnoresEnemyOnCooldown(t *testing.T) {
	ctx := newTestContext(t)
	startPlay(t, ctx)
	slash := eastSlash()

	enemy := factory.CreateEnemy(ctx.World, cfg.GrayMask, slash.End())
	components.Body.Get(enemy).HitCooldown.Reset()

	events.SlashEvent.Publish(ctx.World, slash)
	UpdateSlashHits(ctx)

	assert.False(t, components.Enemy.Get(enemy).Marked)
	assert.Empty(t, pendingSounds(ctx))
}

func TestSlashSparksOffWallsOnlyWhenExpanded(t *testing.T) {
	ctx := newTestContext(t)
	player := startPlay(t, ctx)
	slash := events.Slash{
		Start:     gamemath.V(cfg.Arena.InnerWidth/2-60, 0),
		Direction: gamemath.V(1, 0),
		Length:    cfg.Player.SlashDistance,
	}

	events.SlashEvent.Publish(ctx.World, slash)
	UpdateSlashHits(ctx)
	assert.Empty(t, pendingSounds(ctx))

	getGame(ctx).Expanded = true
	events.SlashEvent.Publish(ctx.World, slash)
	UpdateSlashHits(ctx)
	assert.Equal(t, []string{"vrrp"}, pendingSounds(ctx))
	assert.True(t, components.Player.Get(player).Locked())
}

func TestFinisherRemovesMarkedEnemies(t *testing.T) {
	ctx := newTestContext(t)
	startPlay(t, ctx)

	marked := factory.CreateEnemy(ctx.World, cfg.GrayMask, gamemath.V(200, 0))
	factory.CreateEnemy(ctx.World, cfg.GrayMask, gamemath.V(-200, 0))
	markEnemy(marked)

	events.FinishEvent.Publish(ctx.World, events.Finish{})
	UpdateFinishers(ctx)

	assert.False(t, marked.Valid())
	assert.Equal(t, 1, enemyCount(ctx))
	assert.Equal(t, 1, getGame(ctx).Kills)
	assert.Equal(t, []string{"kill"}, pendingSounds(ctx))
}

func TestPlayerContactFiresOneHitPerTick(t *testing.T) {
	ctx := newTestContext(t)
	startPlay(t, ctx)
	factory.CreateEnemy(ctx.World, cfg.GrayMask, gamemath.V(10, 0))
	factory.CreateEnemy(ctx.World, cfg.GrayMask, gamemath.V(-10, 0))

	hits := 0
	events.PlayerHitEvent.Subscribe(ctx.World, func(w donburi.World, _ events.PlayerHit) {
		hits++
	})

	UpdateObjects(ctx)
	UpdatePlayerCollisions(ctx)
	UpdateCombo(ctx)
	assert.Equal(t, 1, hits)
	assert.Equal(t, cfg.ComboFirst, getGame(ctx).Combo)

	UpdatePlayerCollisions(ctx)
	UpdateCombo(ctx)
	assert.Equal(t, 1, hits, "both cooldowns were reset by the first hit")
}

func TestDummyContactDoesNotHurt(t *testing.T) {
	ctx := newTestContext(t)
	player := startPlay(t, ctx)
	dummy := factory.CreateEnemy(ctx.World, cfg.Dummy, gamemath.V(5, 0))

	UpdateObjects(ctx)
	UpdatePlayerCollisions(ctx)
	UpdateCombo(ctx)

	assert.Equal(t, cfg.ComboZero, getGame(ctx).Combo)
	assert.False(t, components.Body.Get(dummy).HitCooldown.Finished())
	assert.False(t, components.Body.Get(player).HitCooldown.Finished())
}

func TestContactDuringCooldownKnocksBack(t *testing.T) {
	ctx := newTestContext(t)
	player := startPlay(t, ctx)
	enemy := factory.CreateEnemy(ctx.World, cfg.GrayMask, gamemath.V(10, 0))
	components.Body.Get(enemy).HitCooldown.Reset()

	UpdateObjects(ctx)
	UpdatePlayerCollisions(ctx)

	assert.Less(t, components.Body.Get(player).Velocity.X, 0.0)
	assert.Greater(t, components.Body.Get(enemy).Velocity.X, 0.0)
	assert.Equal(t, cfg.ComboZero, getGame(ctx).Combo)
}

func TestComboLadderSaturatesAtFatal(t *testing.T) {
	ctx := newTestContext(t)
	player := startPlay(t, ctx)

	var ladder []cfg.Combo
	for i := 0; i < 7; i++ {
		events.PlayerHitEvent.Publish(ctx.World, events.PlayerHit{Kind: cfg.GrayMask})
		UpdateCombo(ctx)
		ladder = append(ladder, getGame(ctx).Combo)
	}

	require.Equal(t, []cfg.Combo{
		cfg.ComboFirst, cfg.ComboSecond, cfg.ComboThird, cfg.ComboFatal,
		cfg.ComboFatal, cfg.ComboFatal, cfg.ComboFatal,
	}, ladder)
	assert.Equal(t, cfg.PhaseGameOver, getGame(ctx).Phase)
	assert.Equal(t, cfg.TopDead, components.State.Get(player).Top)
}

func TestComboResetsWithNewPlayer(t *testing.T) {
	ctx := newTestContext(t)
	startPlay(t, ctx)
	game := getGame(ctx)

	events.PlayerHitEvent.Publish(ctx.World, events.PlayerHit{Kind: cfg.RedMask})
	UpdateCombo(ctx)
	require.Equal(t, cfg.ComboFirst, game.Combo)
	assert.InDelta(t, 1.0, game.BannerAlpha(), 1e-9)

	changePhase(ctx, game, cfg.PhaseGameOver)
	changePhase(ctx, game, cfg.PhaseMenu)
	changePhase(ctx, game, cfg.PhaseFadeout)
	changePhase(ctx, game, cfg.PhasePlay)
	assert.Equal(t, cfg.ComboZero, game.Combo)
}
