package systems

import (
	"github.com/automoto/bushido-blazer/components"
	cfg "github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/events"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/sim"
	"github.com/yohamta/donburi"
)

// UpdatePlayer ticks the player's cooldowns, resolves slash input and moves
// the player for this tick.
func UpdatePlayer(ctx *sim.Context) {
	e := getPlayer(ctx)
	if e == nil {
		ctx.Log.Debug("no player to update", "tick", ctx.Tick)
		return
	}

	player := components.Player.Get(e)
	body := components.Body.Get(e)
	state := components.State.Get(e)

	player.Slash.Tick(ctx.DT)
	player.Pause.Tick(ctx.DT)
	player.Finish.Tick(ctx.DT)
	body.HitCooldown.Tick(ctx.DT)

	updateCooldownStates(ctx, player, state)

	if ctx.Input.Attack {
		handleSlashInput(ctx, player, body)
	}

	body.Relax(ctx.DT)
	if !player.Locked() {
		move := gamemath.ClampLength(ctx.Input.Move, 1)
		body.Accelerate(gamemath.Scale(move, ctx.DT))
		body.Integrate(ctx.DT)
	}

	updateOrientation(ctx, player, body, state)
}

// updateCooldownStates applies the cooldown edges to the top state, in order.
func updateCooldownStates(ctx *sim.Context, player *components.PlayerData, state *components.StateData) {
	if player.Slash.JustFinished() {
		if !player.Finish.Finished() {
			state.Top = cfg.TopFinish
		} else {
			state.Top = cfg.TopIdle
		}
	}

	if player.Locked() {
		state.Top = cfg.TopSlash
		state.Bottom = cfg.BottomIdle
	}

	if player.Pause.JustFinished() {
		player.Finish.Reset()
		state.Top = cfg.TopFinish
	}

	if player.Finish.JustFinished() {
		state.Top = cfg.TopIdle
		events.FinishEvent.Publish(ctx.World, events.Finish{})
	}
}

func handleSlashInput(ctx *sim.Context, player *components.PlayerData, body *components.BodyData) {
	if !player.Ready() {
		queueSound(ctx, cfg.SoundUnready, body.Position)
		return
	}

	direction := slashDirection(ctx, body)
	player.Slash.Reset()
	player.Pause.Reset()

	events.SlashEvent.Publish(ctx.World, events.Slash{
		Start:     body.Position,
		Direction: direction,
		Length:    cfg.Player.SlashDistance,
	})

	body.Position = gamemath.Add(body.Position, gamemath.Scale(direction, cfg.Player.SlashDistance))
	body.Impulse(gamemath.Scale(direction, body.TopSpeed*cfg.Player.SlashBoost))

	queueSound(ctx, cfg.SoundSlash, body.Position)
}

// slashDirection picks the aim stick, then the current heading on a gamepad,
// then the cursor.
func slashDirection(ctx *sim.Context, body *components.BodyData) gamemath.Vec2 {
	switch {
	case ctx.Input.Aiming():
		return gamemath.Normalize(ctx.Input.Aim)
	case ctx.Input.Gamepad:
		return gamemath.Normalize(body.Velocity)
	default:
		return gamemath.Normalize(gamemath.Sub(ctx.Input.Cursor, body.Position))
	}
}

func updateOrientation(ctx *sim.Context, player *components.PlayerData, body *components.BodyData, state *components.StateData) {
	switch {
	case ctx.Input.Aiming():
		player.Facing = directionOf(ctx.Input.Aim.X)
	case !ctx.Input.Gamepad:
		player.Facing = directionOf(ctx.Input.Cursor.X - body.Position.X)
	}

	if player.Locked() {
		return
	}
	if ctx.Input.Moving() || body.Speed() > body.TopSpeed*cfg.Player.RunThreshold {
		state.Bottom = cfg.BottomRun
	} else {
		state.Bottom = cfg.BottomIdle
	}
}

func directionOf(x float64) cfg.Direction {
	if x > 0 {
		return cfg.Right
	}
	return cfg.Left
}

// resetPlayerPause extends the slash lock after a connecting hit or spark.
func resetPlayerPause(player *donburi.Entry) {
	p := components.Player.Get(player)
	p.Pause.Reset()
	p.Slash.Finish()
}
