package systems

import (
	"math"

	"github.com/automoto/bushido-blazer/components"
	cfg "github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/events"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/sim"
)

func getCamera(ctx *sim.Context) *components.CameraData {
	e, ok := components.Camera.First(ctx.World)
	if !ok {
		return nil
	}
	return components.Camera.Get(e)
}

// UpdateCamera eases the view between the inner arena and the outer bound
// and runs the shake.
func UpdateCamera(ctx *sim.Context) {
	camera := getCamera(ctx)
	if camera == nil {
		return
	}
	game := getGame(ctx)
	if game == nil {
		return
	}

	if game.PhaseChanged() && game.Phase == cfg.PhaseDarkPresenceAttack {
		camera.StartShake(cfg.Phases.AttackDuration, cfg.Display.ShakeMagnitude*cfg.Display.FatalShake)
	}

	frame := ctx.Inner
	if game.Expanded {
		frame = ctx.Outer
	}
	target := FitZoom(camera.View, frame)
	t := math.Min(1, cfg.Display.ZoomSpeed*ctx.DT)
	camera.Zoom += (target - camera.Zoom) * t
	camera.Center = gamemath.Lerp(camera.Center, frame.Center(), t)

	camera.UpdateShake(ctx.DT)
}

// FitZoom is the largest zoom that shows all of r in view.
func FitZoom(view gamemath.Vec2, r gamemath.Rect) float64 {
	size := r.Size()
	if size.X <= 0 || size.Y <= 0 {
		return 1
	}
	return math.Min(view.X/size.X, view.Y/size.Y)
}

func shakeOnHit(ctx *sim.Context, _ events.PlayerHit) {
	camera := getCamera(ctx)
	if camera == nil {
		return
	}
	magnitude := cfg.Display.ShakeMagnitude
	if game := getGame(ctx); game != nil && game.Combo == cfg.ComboFatal {
		magnitude *= cfg.Display.FatalShake
	}
	camera.StartShake(cfg.Display.ShakeDuration, magnitude)
}
