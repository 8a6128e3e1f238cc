package bot

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/automoto/bushido-blazer/components"
	"github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/scenes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var arena = gamemath.RectFromCenter(gamemath.V(0, 0), 640, 360)

func playing(player scenes.PlayerView, enemies ...scenes.EnemyView) scenes.Snapshot {
	return scenes.Snapshot{Phase: config.PhasePlay, Player: &player, Enemies: enemies}
}

func at(x, y float64) scenes.BodyView {
	return scenes.BodyView{Position: gamemath.V(x, y)}
}

func TestMenuAlternatesAttack(t *testing.T) {
	a := New(config.BotDifficultyNormal, nil)
	menu := scenes.Snapshot{Phase: config.PhaseMenu}

	assert.True(t, a.Input(menu, arena).Attack)
	assert.False(t, a.Input(menu, arena).Attack)
	assert.True(t, a.Input(menu, arena).Attack)
	assert.False(t, a.Input(scenes.Snapshot{Phase: config.PhaseFadeout}, arena).Attack)
}

func TestAttacksWhenInReach(t *testing.T) {
	a := New(config.BotDifficultyHard, rand.New(rand.NewSource(1)))
	snap := playing(
		scenes.PlayerView{BodyView: at(0, 0), Ready: true},
		scenes.EnemyView{BodyView: at(300, 0)},
		scenes.EnemyView{BodyView: at(0, 60)},
	)

	in := a.Input(snap, arena)
	assert.Equal(t, StateAttack, a.State)
	assert.Equal(t, 1, a.Target, "nearest enemy")
	assert.True(t, in.Attack)
	assert.Greater(t, in.Cursor.Y, 0.0)
	assert.InDelta(t, 0, in.Cursor.X, 60*0.05)
}

func TestChasesOutOfReach(t *testing.T) {
	a := New(config.BotDifficultyNormal, nil)
	in := a.Input(playing(
		scenes.PlayerView{BodyView: at(0, 0), Ready: true},
		scenes.EnemyView{BodyView: at(-400, 0)},
	), arena)

	assert.Equal(t, StateChase, a.State)
	assert.False(t, in.Attack)
	assert.InDelta(t, -1, in.Move.X, 1e-9)
}

func TestRetreatsWhileRecovering(t *testing.T) {
	a := New(config.BotDifficultyNormal, nil)
	in := a.Input(playing(
		scenes.PlayerView{BodyView: at(0, 0), Ready: false},
		scenes.EnemyView{BodyView: at(20, 0)},
	), arena)

	assert.Equal(t, StateRetreat, a.State)
	assert.Less(t, in.Move.X, 0.0)
}

func TestIgnoresMarkedEnemies(t *testing.T) {
	a := New(config.BotDifficultyNormal, nil)
	in := a.Input(playing(
		scenes.PlayerView{BodyView: at(0, 0), Ready: true},
		scenes.EnemyView{BodyView: at(30, 0), Marked: true},
	), arena)

	assert.Equal(t, StateIdle, a.State)
	assert.Equal(t, -1, a.Target)
	assert.False(t, in.Attack)
}

func TestStaysHome(t *testing.T) {
	a := New(config.BotDifficultyNormal, nil)
	in := a.Input(playing(
		scenes.PlayerView{BodyView: at(630, 0), Ready: true},
		scenes.EnemyView{BodyView: at(1000, 0)},
	), arena)

	assert.Equal(t, StateChase, a.State)
	assert.Less(t, in.Move.X, 0.0, "the edge wins over the chase")
	assert.LessOrEqual(t, gamemath.Length(in.Move), 1.0+1e-9)
}

func TestRunClearsTheOpeningWave(t *testing.T) {
	scene, err := scenes.NewArenaScene(scenes.ArenaOptions{
		Seed:   12345,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	var kills, slashes int
	observe := func(tick int, snap scenes.Snapshot, cues []components.SoundCue) {
		kills = snap.Kills
		for _, cue := range cues {
			if cue.ID == config.SoundSlash {
				slashes++
			}
		}
	}

	ticks, _ := Run(scene, New(config.BotDifficultyHard, rand.New(rand.NewSource(7))), 60*30, 1.0/60, observe)

	assert.Positive(t, ticks)
	assert.Positive(t, slashes)
	assert.GreaterOrEqual(t, kills, 1)
}
