// Package sim holds the session context threaded through every system.
package sim

import (
	"log/slog"
	"math/rand"

	"github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/yohamta/donburi"
)

// Input is the already-resolved action state for one tick.
type Input struct {
	// Move has magnitude at most 1.
	Move gamemath.Vec2
	// Aim is zero when the aim stick is idle.
	Aim gamemath.Vec2
	// Attack is true only on the tick the button went down.
	Attack bool
	// Cursor is the pointer in world space.
	Cursor gamemath.Vec2
	// Gamepad selects velocity heading as the slash fallback instead of the cursor.
	Gamepad bool
}

// Aiming reports whether the aim stick is in use.
func (in Input) Aiming() bool {
	return gamemath.Length(in.Aim) > 0
}

// Moving reports whether movement input is active.
func (in Input) Moving() bool {
	return gamemath.Length(in.Move) > 0
}

// System is one ordered pass over the world.
type System func(ctx *Context)

// Context is the explicitly passed session state: the world, the random
// source, the arena geometry and this tick's input and delta.
type Context struct {
	World donburi.World
	Rand  *rand.Rand
	Log   *slog.Logger

	// Inner is the safe arena, Outer the expanded bound.
	Inner gamemath.Rect
	Outer gamemath.Rect

	Input Input
	DT    float64
	Tick  uint64

	systems []System
}

// NewContext builds a context with arena bounds from the active config.
func NewContext(w donburi.World, rng *rand.Rand, logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.Default()
	}
	return &Context{
		World: w,
		Rand:  rng,
		Log:   logger,
		Inner: gamemath.RectFromCenter(gamemath.V(0, 0), config.Arena.InnerWidth/2, config.Arena.InnerHeight/2),
		Outer: gamemath.RectFromCenter(gamemath.V(0, 0), config.Arena.OuterWidth/2, config.Arena.OuterHeight/2),
	}
}

// AddSystem appends a pass; passes run in insertion order.
func (c *Context) AddSystem(s System) {
	c.systems = append(c.systems, s)
}

// Update runs one tick.
func (c *Context) Update(in Input, dt float64) {
	c.Input = in
	c.DT = dt
	for _, s := range c.systems {
		s(c)
	}
	c.Tick++
}

// InArena reports whether p lies strictly inside the inner arena.
func (c *Context) InArena(p gamemath.Vec2) bool {
	return p.X > c.Inner.Min.X && p.X < c.Inner.Max.X && p.Y > c.Inner.Min.Y && p.Y < c.Inner.Max.Y
}
