package scenes

import (
	"io"
	"log/slog"
	"testing"

	"github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/leveldata"
	"github.com/automoto/bushido-blazer/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60.0

func newScene(t *testing.T) *ArenaScene {
	t.Helper()
	scene, err := NewArenaScene(ArenaOptions{
		Seed:   12345,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return scene
}

func runUntil(scene *ArenaScene, in sim.Input, phase config.Phase, limit int) int {
	ticks := 0
	for scene.Phase() != phase && ticks < limit {
		scene.Update(in, frame)
		ticks++
	}
	return ticks
}

func TestMenuToFirstWave(t *testing.T) {
	scene := newScene(t)
	assert.Equal(t, config.PhaseMenu, scene.Phase())
	assert.Zero(t, scene.PlayerCount())

	scene.Update(sim.Input{}, frame)
	assert.Equal(t, config.PhaseMenu, scene.Phase())

	scene.Update(sim.Input{Attack: true}, frame)
	require.Equal(t, config.PhaseFadeout, scene.Phase())
	assert.Zero(t, scene.EnemyCount(), "no waves during the fade")

	runUntil(scene, sim.Input{}, config.PhasePlay, 1000)
	require.Equal(t, config.PhasePlay, scene.Phase())

	assert.Equal(t, 1, scene.PlayerCount())
	assert.Equal(t, 1, scene.EnemyCount())
	assert.Equal(t, 0, scene.Wave())

	snap := scene.Snapshot()
	require.NotNil(t, snap.Player)
	require.Len(t, snap.Enemies, 1)
	assert.Equal(t, config.Dummy, snap.Enemies[0].Kind)
	assert.NotEmpty(t, snap.Walls)
	assert.Zero(t, snap.FadeAlpha)
}

func TestSlashingTheDummyAdvancesWaves(t *testing.T) {
	scene := newScene(t)
	scene.Update(sim.Input{Attack: true}, frame)
	runUntil(scene, sim.Input{}, config.PhasePlay, 1000)
	require.Equal(t, config.PhasePlay, scene.Phase())

	target := scene.Snapshot().Enemies[0].Position
	scene.DrainSounds()

	// Slash straight at the dummy and let the finisher land.
	scene.Update(sim.Input{Attack: true, Cursor: target}, frame)
	for i := 0; i < 300 && scene.Kills() == 0; i++ {
		scene.Update(sim.Input{Cursor: target}, frame)
	}

	assert.Equal(t, 1, scene.Kills())
	assert.Equal(t, 1, scene.Wave(), "the next wave follows an empty arena")

	var names []string
	for _, cue := range scene.DrainSounds() {
		names = append(names, cue.Name)
	}
	assert.Contains(t, names, "slash")
	assert.Contains(t, names, "hit")
	assert.Contains(t, names, "kill")
	assert.Empty(t, scene.DrainSounds(), "drained cues are not repeated")
}

func TestCustomArena(t *testing.T) {
	arena := leveldata.Fallback(400, 300, 800, 600)
	scene, err := NewArenaScene(ArenaOptions{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Arena:  arena,
	})
	require.NoError(t, err)

	ctx := scene.Context()
	assert.Equal(t, arena.Inner, ctx.Inner)
	assert.Equal(t, arena.Outer, ctx.Outer)
	assert.True(t, ctx.InArena(gamemath.V(0, 0)))
	assert.False(t, ctx.InArena(gamemath.V(250, 0)))
}
