package systems

import (
	"github.com/automoto/bushido-blazer/components"
	cfg "github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/sim"
	"github.com/automoto/bushido-blazer/tags"
	"github.com/yohamta/donburi"
)

// UpdateAnimation derives the play heads from this tick's states. It runs
// after movement so strip speeds track the resolved velocity.
func UpdateAnimation(ctx *sim.Context) {
	if e := getPlayer(ctx); e != nil {
		updatePlayerAnimation(ctx, e)
	}

	tags.Enemy.Each(ctx.World, func(e *donburi.Entry) {
		if anim := components.Animation.Get(e); anim.Top != nil {
			anim.Top.Update(ctx.DT)
		}
	})
}

func updatePlayerAnimation(ctx *sim.Context, e *donburi.Entry) {
	state := components.State.Get(e)
	anim := components.Animation.Get(e)
	body := components.Body.Get(e)
	speed := body.Speed()
	a := cfg.Animation

	// A zero x velocity keeps the last heading.
	if body.Velocity.X != 0 {
		components.Player.Get(e).Moving = directionOf(body.Velocity.X)
	}

	if anim.Top != nil {
		switch {
		case state.TopChanged():
			anim.Top.Play(a.Top[state.Top])
			if state.Top == cfg.TopIdle && state.Bottom == cfg.BottomRun {
				anim.Top.Speed = a.TopRunBase + a.TopRunGain*speed
			}
		case state.Top == cfg.TopIdle && state.Bottom == cfg.BottomRun:
			anim.Top.Speed = a.TopRunBase + a.TopRunGain*speed
		case state.Top == cfg.TopIdle:
			anim.Top.Speed = a.TopIdleSteady
		}
		anim.Top.Update(ctx.DT)
	}

	if anim.Bottom != nil {
		switch {
		case state.BottomChanged():
			anim.Bottom.Play(a.Bottom[state.Bottom])
			if state.Bottom == cfg.BottomRun {
				anim.Bottom.Speed = a.BottomKickoff
			}
		case state.Bottom == cfg.BottomRun:
			anim.Bottom.Speed = a.Bottom[cfg.BottomRun].Speed + a.BottomRunGain*speed
		}
		anim.Bottom.Update(ctx.DT)
	}

	state.Commit()
}
