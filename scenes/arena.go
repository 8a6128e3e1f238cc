// Package scenes assembles a complete combat session: the world, its
// singletons and the ordered passes. It has no rendering or device code so
// it runs the same under the window, the headless report and tests.
package scenes

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/automoto/bushido-blazer/assets"
	"github.com/automoto/bushido-blazer/components"
	"github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/leveldata"
	"github.com/automoto/bushido-blazer/sim"
	"github.com/automoto/bushido-blazer/systems"
	"github.com/automoto/bushido-blazer/systems/factory"
	"github.com/automoto/bushido-blazer/tags"
	"github.com/yohamta/donburi"
)

// ArenaOptions configures a session. Zero values pick the defaults.
type ArenaOptions struct {
	Seed   int64
	Logger *slog.Logger

	// Arena overrides the configured layout.
	Arena *leveldata.Arena

	// CellSize is the broadphase grid cell in world units.
	CellSize int
}

// ArenaScene is one running session.
type ArenaScene struct {
	ctx   *sim.Context
	arena *leveldata.Arena
}

// NewArenaScene builds the world in the Menu phase.
func NewArenaScene(opts ArenaOptions) (*ArenaScene, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	arena := opts.Arena
	if arena == nil {
		loaded, err := assets.LoadArena(config.Arena.LayoutPath)
		if err != nil {
			return nil, fmt.Errorf("arena scene: %w", err)
		}
		arena = loaded
	}

	cellSize := opts.CellSize
	if cellSize <= 0 {
		cellSize = 32
	}

	w := donburi.NewWorld()
	ctx := sim.NewContext(w, rand.New(rand.NewSource(opts.Seed)), logger)
	ctx.Inner = arena.Inner
	ctx.Outer = arena.Outer

	factory.CreateSpace(w, arena.Outer, cellSize)
	factory.CreateArenaWalls(w, arena)
	factory.CreateGame(w)
	factory.CreateSpawner(w)
	factory.CreateAudio(w)
	factory.CreateCamera(w, arena.Inner.Size())

	systems.Register(ctx)

	logger.Info("arena ready",
		"arena", arena.Name,
		"inner", fmt.Sprintf("%.0fx%.0f", arena.Inner.Max.X-arena.Inner.Min.X, arena.Inner.Max.Y-arena.Inner.Min.Y),
		"sparks", len(arena.SparkBoxes),
		"seed", opts.Seed,
	)

	return &ArenaScene{ctx: ctx, arena: arena}, nil
}

// Update advances the session by one tick of dt seconds.
func (s *ArenaScene) Update(in sim.Input, dt float64) {
	s.ctx.Update(in, dt)
}

func (s *ArenaScene) Context() *sim.Context {
	return s.ctx
}

func (s *ArenaScene) Arena() *leveldata.Arena {
	return s.arena
}

func (s *ArenaScene) game() *components.GameData {
	e, ok := components.Game.First(s.ctx.World)
	if !ok {
		return nil
	}
	return components.Game.Get(e)
}

func (s *ArenaScene) Phase() config.Phase {
	if g := s.game(); g != nil {
		return g.Phase
	}
	return config.PhaseMenu
}

func (s *ArenaScene) Combo() config.Combo {
	if g := s.game(); g != nil {
		return g.Combo
	}
	return config.ComboZero
}

func (s *ArenaScene) Kills() int {
	if g := s.game(); g != nil {
		return g.Kills
	}
	return 0
}

// Wave is the spawner cursor, -1 before the first wave.
func (s *ArenaScene) Wave() int {
	e, ok := components.Spawner.First(s.ctx.World)
	if !ok {
		return -1
	}
	return components.Spawner.Get(e).Current
}

// Camera is the session camera; its View is the logical screen size.
func (s *ArenaScene) Camera() *components.CameraData {
	e, ok := components.Camera.First(s.ctx.World)
	if !ok {
		return nil
	}
	return components.Camera.Get(e)
}

// DrainSounds returns the cues released since the last call.
func (s *ArenaScene) DrainSounds() []components.SoundCue {
	return systems.DrainSounds(s.ctx)
}

// PlayerCount and EnemyCount report live entities.
func (s *ArenaScene) PlayerCount() int {
	n := 0
	tags.Player.Each(s.ctx.World, func(*donburi.Entry) { n++ })
	return n
}

func (s *ArenaScene) EnemyCount() int {
	n := 0
	tags.Enemy.Each(s.ctx.World, func(*donburi.Entry) { n++ })
	return n
}

// BodyView is a read-only copy of a body for renderers and reports.
type BodyView struct {
	Position gamemath.Vec2
	Velocity gamemath.Vec2
	Radius   float64
	Frame    int
}

type PlayerView struct {
	BodyView
	Facing config.Direction
	Moving config.Direction
	Top    config.TopState
	Bottom config.BottomState
	Ready  bool
	Locked bool
}

type EnemyView struct {
	BodyView
	Kind   config.EnemyKind
	Marked bool
	// Flash is the hit tint, 0 when idle.
	Flash float64
}

type TrailView struct {
	Start, End gamemath.Vec2
	Alpha      float64
	Connected  bool
}

type WallView struct {
	Kind config.WallKind
	Rect gamemath.Rect
}

// Snapshot is the drawable state of one tick.
type Snapshot struct {
	Phase    config.Phase
	Combo    config.Combo
	Kills    int
	Wave     int
	Expanded bool

	FadeAlpha     float64
	PresenceAlpha float64
	BannerAlpha   float64

	Player  *PlayerView
	Enemies []EnemyView
	Walls   []WallView
	Trails  []TrailView
}

func bodyView(e *donburi.Entry) BodyView {
	body := components.Body.Get(e)
	v := BodyView{Position: body.Position, Velocity: body.Velocity, Radius: body.Radius}
	if e.HasComponent(components.Animation) {
		if top := components.Animation.Get(e).Top; top != nil {
			v.Frame = top.Frame()
		}
	}
	return v
}

// Snapshot copies the world into plain values.
func (s *ArenaScene) Snapshot() Snapshot {
	snap := Snapshot{
		Phase: s.Phase(),
		Combo: s.Combo(),
		Kills: s.Kills(),
		Wave:  s.Wave(),
	}
	if g := s.game(); g != nil {
		snap.Expanded = g.Expanded
		snap.FadeAlpha = g.FadeAlpha
		snap.PresenceAlpha = g.PresenceAlpha()
		snap.BannerAlpha = g.BannerAlpha()
	}

	if e, ok := tags.Player.First(s.ctx.World); ok {
		player := components.Player.Get(e)
		state := components.State.Get(e)
		snap.Player = &PlayerView{
			BodyView: bodyView(e),
			Facing:   player.Facing,
			Moving:   player.Moving,
			Top:      state.Top,
			Bottom:   state.Bottom,
			Ready:    player.Ready(),
			Locked:   player.Locked(),
		}
	}

	tags.Enemy.Each(s.ctx.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		view := EnemyView{
			BodyView: bodyView(e),
			Kind:     enemy.Kind,
			Marked:   enemy.Marked,
		}
		if e.HasComponent(components.Flash) {
			view.Flash = components.Flash.Get(e).Alpha()
		}
		snap.Enemies = append(snap.Enemies, view)
	})

	components.Trail.Each(s.ctx.World, func(e *donburi.Entry) {
		trail := components.Trail.Get(e)
		snap.Trails = append(snap.Trails, TrailView{
			Start:     trail.Start,
			End:       trail.End,
			Alpha:     components.AutoDestroy.Get(e).Alpha(),
			Connected: trail.Connected,
		})
	})

	components.Wall.Each(s.ctx.World, func(e *donburi.Entry) {
		wall := components.Wall.Get(e)
		snap.Walls = append(snap.Walls, WallView{Kind: wall.Kind, Rect: wall.Rect})
	})

	return snap
}
