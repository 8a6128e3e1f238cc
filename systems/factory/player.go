package factory

import (
	"github.com/automoto/bushido-blazer/archetypes"
	"github.com/automoto/bushido-blazer/assets/animations"
	"github.com/automoto/bushido-blazer/components"
	cfg "github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/tags"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, pos gamemath.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	body := components.NewBody(pos, cfg.Player.Body, cfg.Player.HitCooldown)
	components.Body.SetValue(player, body)

	obj := newBodyObject(w, pos, body.Radius, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Facing: cfg.Right,
		Moving: cfg.Right,
		Slash:  gamemath.NewTimer(cfg.Player.SlashCooldown),
		Pause:  gamemath.NewTimer(cfg.Player.PauseTime),
		Finish: gamemath.NewTimer(cfg.Player.FinishTime),
	})
	components.State.SetValue(player, components.StateData{
		Top:            cfg.TopIdle,
		PreviousTop:    cfg.TopIdle,
		Bottom:         cfg.BottomIdle,
		PreviousBottom: cfg.BottomIdle,
	})
	components.Animation.SetValue(player, components.AnimationData{
		Top:    animations.NewAnimation(cfg.Animation.Top[cfg.TopIdle]),
		Bottom: animations.NewAnimation(cfg.Animation.Bottom[cfg.BottomIdle]),
	})

	return player
}
