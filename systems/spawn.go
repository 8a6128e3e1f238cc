package systems

import (
	"math"

	"github.com/automoto/bushido-blazer/components"
	cfg "github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/events"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/sim"
	"github.com/automoto/bushido-blazer/tags"
)

// UpdateWaves requests the next wave once the arena is clear.
func UpdateWaves(ctx *sim.Context) {
	spawnerEntry, ok := components.Spawner.First(ctx.World)
	if !ok {
		ctx.Log.Debug("no spawner", "tick", ctx.Tick)
		return
	}
	if _, alive := tags.Enemy.First(ctx.World); alive {
		return
	}

	spawner := components.Spawner.Get(spawnerEntry)
	spawner.Current++
	wave := WaveComposition(ctx, spawner)

	pivot := gamemath.V(0, 0)
	if spawner.Current >= cfg.Spawn.FollowAfter {
		if player := getPlayer(ctx); player != nil {
			pivot = components.Body.Get(player).Position
			if game := getGame(ctx); game != nil && !game.Expanded {
				game.Expanded = true
				ctx.Log.Info("arena expanded", "wave", spawner.Current)
			}
		}
	}

	for i, pos := range WaveRing(ctx, spawner.Current, len(wave), pivot) {
		events.SpawnRequestEvent.Publish(ctx.World, events.SpawnRequest{
			Kind:     wave[i],
			Position: pos,
			Wave:     spawner.Current,
		})
	}

	ctx.Log.Info("wave started", "wave", spawner.Current, "enemies", len(wave))
}

// SpawnEnemies creates the enemies requested this tick.
func SpawnEnemies(ctx *sim.Context) {
	events.SpawnRequestEvent.ProcessEvents(ctx.World)
}

// WaveComposition returns the curated wave at the cursor, or past the end of
// the list a random draw of Current enemies weighted toward weaker kinds.
func WaveComposition(ctx *sim.Context, spawner *components.SpawnerData) []cfg.EnemyKind {
	if spawner.Curated(spawner.Current) {
		curated := spawner.Waves[spawner.Current]
		wave := make([]cfg.EnemyKind, len(curated))
		copy(wave, curated)
		return wave
	}

	wave := make([]cfg.EnemyKind, 0, spawner.Current)
	for i := 0; i < spawner.Current; i++ {
		wave = append(wave, drawEnemyKind(ctx.Rand.Float64()))
	}
	return wave
}

func drawEnemyKind(roll float64) cfg.EnemyKind {
	switch {
	case roll < cfg.Spawn.BlackBand:
		return cfg.BlackMask
	case roll < cfg.Spawn.RedBand:
		return cfg.RedMask
	case roll < cfg.Spawn.BlueBand:
		return cfg.BlueMask
	default:
		return cfg.GrayMask
	}
}

// WaveRing spaces count spawn points evenly on a ring around pivot. The ring
// grows with the wave index up to a cap, is stretched horizontally to fit the
// screen and, for later waves, starts at a random rotation.
func WaveRing(ctx *sim.Context, index, count int, pivot gamemath.Vec2) []gamemath.Vec2 {
	if count == 0 {
		return nil
	}
	s := cfg.Spawn

	angle := 0.0
	if index > s.RotateAfter {
		angle = ctx.Rand.Float64() * 2 * math.Pi
	}

	distance := math.Min(float64(index)*s.WaveDistance+s.BaseDistance, s.MaxDistance)
	distance *= s.JitterMin + ctx.Rand.Float64()*s.JitterSpread

	step := 2 * math.Pi / float64(count)
	points := make([]gamemath.Vec2, count)
	for i := range points {
		offset := gamemath.Rotate(gamemath.V(distance, 0), angle+step*float64(i))
		offset.X *= s.HorizontalFit
		points[i] = gamemath.Add(pivot, offset)
	}
	return points
}
