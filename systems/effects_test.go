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
)

func TestSlashLeavesTrailAndFlash(t *testing.T) {
	ctx := newTestContext(t)
	startPlay(t, ctx)
	enemy := factory.CreateEnemy(ctx.World, cfg.GrayMask, gamemath.V(60, 0))

	events.SlashEvent.Publish(ctx.World, events.Slash{Start: gamemath.V(0, 0), Direction: gamemath.V(1, 0), Length: cfg.Player.SlashDistance})
	UpdateSlashHits(ctx)

	trail, ok := components.Trail.First(ctx.World)
	require.True(t, ok)
	assert.True(t, components.Trail.Get(trail).Connected)
	assert.Equal(t, gamemath.V(cfg.Player.SlashDistance, 0), components.Trail.Get(trail).End)
	require.True(t, enemy.HasComponent(components.Flash))
	assert.Equal(t, 1.0, components.Flash.Get(enemy).Alpha())

	ticks := int(cfg.Display.TrailDuration/frame) + 2
	for i := 0; i < ticks; i++ {
		UpdateEffects(ctx)
	}

	_, ok = components.Trail.First(ctx.World)
	assert.False(t, ok, "trail expires")
	assert.False(t, enemy.HasComponent(components.Flash), "flash expires")
	assert.True(t, enemy.Valid())
}

func TestWhiffedSlashLeavesUnconnectedTrail(t *testing.T) {
	ctx := newTestContext(t)
	startPlay(t, ctx)

	events.SlashEvent.Publish(ctx.World, events.Slash{Start: gamemath.V(0, 0), Direction: gamemath.V(0, 1), Length: cfg.Player.SlashDistance})
	UpdateSlashHits(ctx)

	trail, ok := components.Trail.First(ctx.World)
	require.True(t, ok)
	assert.False(t, components.Trail.Get(trail).Connected)
}
