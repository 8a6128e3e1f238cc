package systems

import (
	"testing"

	"github.com/automoto/bushido-blazer/components"
	cfg "github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestPlayerLayersFollowStates(t *testing.T) {
	ctx := newTestContext(t)
	player := startPlay(t, ctx)
	state := components.State.Get(player)
	anim := components.Animation.Get(player)

	state.Top = cfg.TopSlash
	UpdateAnimation(ctx)
	assert.Equal(t, cfg.Animation.Top[cfg.TopSlash].First, anim.Top.Frame())
	assert.False(t, state.TopChanged(), "states are committed after the pass")

	components.Body.Get(player).Velocity = gamemath.V(3, 0)
	state.Bottom = cfg.BottomRun
	UpdateAnimation(ctx)
	run := cfg.Animation.Bottom[cfg.BottomRun]
	assert.Equal(t, run.First+run.Offset, anim.Bottom.Frame())
	assert.Equal(t, cfg.Animation.BottomKickoff, anim.Bottom.Speed)

	UpdateAnimation(ctx)
	assert.InDelta(t, run.Speed+cfg.Animation.BottomRunGain*3, anim.Bottom.Speed, 1e-9)
}

func TestIdleTopSpeedsUpWhileRunning(t *testing.T) {
	ctx := newTestContext(t)
	player := startPlay(t, ctx)
	state := components.State.Get(player)
	anim := components.Animation.Get(player)

	UpdateAnimation(ctx)
	assert.Equal(t, cfg.Animation.TopIdleSteady, anim.Top.Speed)

	components.Body.Get(player).Velocity = gamemath.V(0, 2)
	state.Bottom = cfg.BottomRun
	UpdateAnimation(ctx)
	assert.InDelta(t, cfg.Animation.TopRunBase+cfg.Animation.TopRunGain*2, anim.Top.Speed, 1e-9)
}
