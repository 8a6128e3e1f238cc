package factory

import (
	"github.com/automoto/bushido-blazer/archetypes"
	"github.com/automoto/bushido-blazer/components"
	cfg "github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/yohamta/donburi"
)

// CreateGame adds the session singleton in the Menu phase.
func CreateGame(w donburi.World) *donburi.Entry {
	game := archetypes.Game.Spawn(w)
	components.Game.SetValue(game, components.GameData{
		Phase:         cfg.PhaseMenu,
		PreviousPhase: cfg.PhaseMenu,
		Presence:      gamemath.NewRunningTimer(cfg.Phases.DarkPresenceDuration),
		Attack:        gamemath.NewRunningTimer(cfg.Phases.AttackDuration),
		Banner:        gamemath.NewTimer(cfg.Phases.BannerDuration),
	})
	return game
}

// CreateSpawner adds the wave cursor singleton.
func CreateSpawner(w donburi.World) *donburi.Entry {
	spawner := archetypes.Spawner.Spawn(w)
	components.Spawner.SetValue(spawner, components.NewSpawner(cfg.Spawn.Waves))
	return spawner
}

// CreateAudio adds the sound cue queue singleton.
func CreateAudio(w donburi.World) *donburi.Entry {
	audio := archetypes.Audio.Spawn(w)
	components.Audio.SetValue(audio, components.AudioData{})
	return audio
}

// CreateCamera adds a camera framing the inner arena at unit zoom.
func CreateCamera(w donburi.World, view gamemath.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{
		Zoom:  1,
		View:  view,
		Shake: gamemath.NewTimer(cfg.Display.ShakeDuration),
	})
	return camera
}
