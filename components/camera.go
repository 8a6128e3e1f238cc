package components

import (
	"math"

	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/yohamta/donburi"
)

// CameraData maps world space onto a View-sized logical screen.
type CameraData struct {
	Center gamemath.Vec2
	Zoom   float64

	// View is the logical screen size in pixels.
	View gamemath.Vec2

	Shake     *gamemath.Timer
	Magnitude float64
	Offset    gamemath.Vec2
}

// StartShake kicks the camera for duration seconds.
func (c *CameraData) StartShake(duration, magnitude float64) {
	c.Shake.ResetTo(duration)
	c.Magnitude = magnitude
}

func (c *CameraData) UpdateShake(dt float64) {
	c.Shake.Tick(dt)
	if c.Shake.Finished() {
		c.Offset = gamemath.Vec2{}
		return
	}
	t := c.Shake.Elapsed()
	decay := c.Magnitude * (1 - c.Shake.Fraction())
	c.Offset = gamemath.V(math.Sin(t*71)*decay, math.Cos(t*53)*decay)
}

func (c *CameraData) WorldToScreen(p gamemath.Vec2) gamemath.Vec2 {
	rel := gamemath.Sub(p, gamemath.Add(c.Center, c.Offset))
	return gamemath.Add(gamemath.Scale(rel, c.Zoom), gamemath.Scale(c.View, 0.5))
}

func (c *CameraData) ScreenToWorld(p gamemath.Vec2) gamemath.Vec2 {
	if c.Zoom == 0 {
		return c.Center
	}
	rel := gamemath.Scale(gamemath.Sub(p, gamemath.Scale(c.View, 0.5)), 1/c.Zoom)
	return gamemath.Add(rel, gamemath.Add(c.Center, c.Offset))
}

var Camera = donburi.NewComponentType[CameraData]()
