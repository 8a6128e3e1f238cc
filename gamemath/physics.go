package gamemath

import "math"

// RelaxParams tunes the soft speed governor.
type RelaxParams struct {
	TopSpeed     float64
	Quantize     float64
	Deceleration float64

	RunawayFactor float64
	OvershootBase float64
	CruiseBase    float64
	IdleBase      float64
}

// Relax applies one tick of the velocity governor. Bodies settle toward
// TopSpeed: runaway speeds are clamped, overshoot bleeds off, speeds near the
// cap are pulled up to it and speeds in the dead zone decay. A final
// deceleration factor is always applied.
func Relax(v Vec2, p RelaxParams, dt float64) Vec2 {
	speed := Length(v)
	top := p.TopSpeed

	switch {
	case speed > p.RunawayFactor*top:
		v = WithLength(v, top)
	case speed > top:
		v = WithLength(v, easeToward(speed, top, 1-math.Pow(p.OvershootBase, dt)))
	case speed > top*(1-p.Quantize):
		v = WithLength(v, easeToward(speed, top, 1-math.Pow(p.CruiseBase, dt)))
	case speed < top*p.Quantize:
		v = Scale(v, math.Pow(p.IdleBase, dt))
	}

	return Scale(v, math.Pow(1/(1+p.Deceleration), dt))
}

func easeToward(from, to, t float64) float64 {
	return from + (to-from)*t
}
