package systems

import (
	"testing"

	"github.com/automoto/bushido-blazer/components"
	cfg "github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestContainmentClampsToOuterBound(t *testing.T) {
	ctx := newTestContext(t)
	getGame(ctx).Expanded = true

	enemy := factory.CreateEnemy(ctx.World, cfg.GrayMask, gamemath.V(ctx.Outer.Max.X+50, 0))
	body := components.Body.Get(enemy)
	body.Velocity = gamemath.V(3, 1)

	UpdateContainment(ctx)

	assert.Equal(t, ctx.Outer.Max.X-(body.Radius+body.WallPadding), body.Position.X)
	assert.Equal(t, 0.0, body.Velocity.X)
	assert.Equal(t, 1.0, body.Velocity.Y, "the other axis is untouched")
}

func TestContainmentUsesInnerBoundBeforeExpansion(t *testing.T) {
	ctx := newTestContext(t)

	enemy := factory.CreateEnemy(ctx.World, cfg.BlackMask, gamemath.V(0, ctx.Inner.Min.Y-200))
	body := components.Body.Get(enemy)
	body.Velocity = gamemath.V(1, -2)

	UpdateContainment(ctx)

	assert.Equal(t, ctx.Inner.Min.Y+body.Reach(), body.Position.Y)
	assert.Equal(t, 0.0, body.Velocity.Y)
	assert.Equal(t, 1.0, body.Velocity.X)
}

func TestContainmentPushesOffInnerEdges(t *testing.T) {
	ctx := newTestContext(t)
	getGame(ctx).Expanded = true
	edge := ctx.Inner.Max.X

	inside := factory.CreateEnemy(ctx.World, cfg.GrayMask, gamemath.V(edge-5, 0))
	outside := factory.CreateEnemy(ctx.World, cfg.GrayMask, gamemath.V(edge+5, 100))
	past := factory.CreateEnemy(ctx.World, cfg.GrayMask, gamemath.V(edge+5, ctx.Inner.Max.Y+100))
	components.Body.Get(inside).Velocity = gamemath.V(2, 0)

	UpdateContainment(ctx)

	in := components.Body.Get(inside)
	assert.Equal(t, edge-in.Reach(), in.Position.X, "stays on the arena side")
	assert.Equal(t, 0.0, in.Velocity.X)

	out := components.Body.Get(outside)
	assert.Equal(t, edge+out.Reach(), out.Position.X, "stays on the outer side")

	assert.Equal(t, edge+5, components.Body.Get(past).Position.X, "beyond the edge's extent")
}

func TestClampToBoundLeavesInteriorAlone(t *testing.T) {
	body := components.NewBody(gamemath.V(10, -10), cfg.Player.Body, 1)
	body.Velocity = gamemath.V(1, 1)

	ClampToBound(&body, gamemath.RectFromCenter(gamemath.V(0, 0), 100, 100))

	assert.Equal(t, gamemath.V(10, -10), body.Position)
	assert.Equal(t, gamemath.V(1, 1), body.Velocity)
}

func TestContainmentOnlyResolvesNearbyLines(t *testing.T) {
	ctx := newTestContext(t)
	space := getSpace(ctx)

	var lines []*donburi.Entry
	components.Wall.Each(ctx.World, func(e *donburi.Entry) {
		if components.Wall.Get(e).Kind == cfg.WallLine {
			lines = append(lines, e)
		}
	})
	require.Len(t, lines, 4)

	center := components.NewBody(gamemath.V(0, 0), cfg.Player.Body, 1)
	assert.Empty(t, nearbyLines(space, &center, lines))

	edge := ctx.Inner.Max.X
	near := components.NewBody(gamemath.V(edge-5, 0), cfg.Player.Body, 1)
	found := nearbyLines(space, &near, lines)
	require.Len(t, found, 1)
	wall := components.Wall.Get(found[0])
	assert.True(t, wall.Vertical())
	assert.Equal(t, edge, wall.Rect.Min.X)

	assert.Len(t, nearbyLines(nil, &center, lines), 4, "no space, no filtering")
}
