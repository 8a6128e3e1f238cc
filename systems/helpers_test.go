package systems

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/automoto/bushido-blazer/components"
	cfg "github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/leveldata"
	"github.com/automoto/bushido-blazer/sim"
	"github.com/automoto/bushido-blazer/systems/factory"
	"github.com/automoto/bushido-blazer/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const frame = 1.0 / 60.0

// newTestContext builds a session with the default arena and every
// singleton, with the event handlers subscribed but no passes registered.
func newTestContext(t *testing.T) *sim.Context {
	t.Helper()
	w := donburi.NewWorld()
	ctx := sim.NewContext(w, rand.New(rand.NewSource(12345)), slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx.DT = frame

	factory.CreateSpace(w, ctx.Outer, 32)
	arena := leveldata.Fallback(cfg.Arena.InnerWidth, cfg.Arena.InnerHeight, cfg.Arena.OuterWidth, cfg.Arena.OuterHeight)
	factory.CreateArenaWalls(w, arena)
	factory.CreateGame(w)
	factory.CreateSpawner(w)
	factory.CreateAudio(w)

	Subscribe(ctx)
	return ctx
}

// startPlay puts the session straight into Play with a fresh player.
func startPlay(t *testing.T, ctx *sim.Context) *donburi.Entry {
	t.Helper()
	game := getGame(ctx)
	require.NotNil(t, game)
	changePhase(ctx, game, cfg.PhasePlay)
	player := getPlayer(ctx)
	require.NotNil(t, player)
	return player
}

func enemyCount(ctx *sim.Context) int {
	return len(collectEnemies(ctx))
}

func enemyKinds(ctx *sim.Context) []cfg.EnemyKind {
	var kinds []cfg.EnemyKind
	tags.Enemy.Each(ctx.World, func(e *donburi.Entry) {
		kinds = append(kinds, components.Enemy.Get(e).Kind)
	})
	return kinds
}

func pendingSounds(ctx *sim.Context) []string {
	e, ok := components.Audio.First(ctx.World)
	if !ok {
		return nil
	}
	var names []string
	for _, cue := range components.Audio.Get(e).PendingSFX {
		names = append(names, cue.Name)
	}
	return names
}

func place(e *donburi.Entry, pos gamemath.Vec2) {
	components.Body.Get(e).Position = pos
}
