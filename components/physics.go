package components

import (
	"github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/yohamta/donburi"
)

// BodyData is the physical state shared by the player and every enemy.
// Velocity is a displacement per reference frame.
type BodyData struct {
	Position     gamemath.Vec2
	Velocity     gamemath.Vec2
	Acceleration float64
	Deceleration float64
	TopSpeed     float64
	Quantize     float64
	Radius       float64
	WallPadding  float64
	HitCooldown  *gamemath.Timer
}

// NewBody builds a body at pos from a tuning.
func NewBody(pos gamemath.Vec2, t config.BodyTuning, hitCooldown float64) BodyData {
	return BodyData{
		Position:     pos,
		Acceleration: t.Acceleration,
		Deceleration: t.Deceleration,
		TopSpeed:     t.TopSpeed,
		Quantize:     t.Quantize,
		Radius:       t.Radius,
		WallPadding:  t.WallPadding,
		HitCooldown:  gamemath.NewTimer(hitCooldown),
	}
}

// Accelerate adds delta scaled by the body's acceleration rate.
func (b *BodyData) Accelerate(delta gamemath.Vec2) {
	b.Velocity = gamemath.Add(b.Velocity, gamemath.Scale(delta, b.Acceleration))
}

// Impulse adds v directly to the velocity.
func (b *BodyData) Impulse(v gamemath.Vec2) {
	b.Velocity = gamemath.Add(b.Velocity, v)
}

// Relax runs the soft speed governor for one tick.
func (b *BodyData) Relax(dt float64) {
	b.Velocity = gamemath.Relax(b.Velocity, gamemath.RelaxParams{
		TopSpeed:      b.TopSpeed,
		Quantize:      b.Quantize,
		Deceleration:  b.Deceleration,
		RunawayFactor: config.Physics.RunawayFactor,
		OvershootBase: config.Physics.OvershootBase,
		CruiseBase:    config.Physics.CruiseBase,
		IdleBase:      config.Physics.IdleBase,
	}, dt)
}

// Integrate moves the body along its velocity.
func (b *BodyData) Integrate(dt float64) {
	b.Position = gamemath.Add(b.Position, gamemath.Scale(b.Velocity, dt*config.Physics.ReferenceFPS))
}

func (b *BodyData) Speed() float64 {
	return gamemath.Length(b.Velocity)
}

// Reach is the distance the body keeps from walls.
func (b *BodyData) Reach() float64 {
	return b.Radius + b.WallPadding
}

var Body = donburi.NewComponentType[BodyData]()
