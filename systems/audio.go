package systems

import (
	"github.com/automoto/bushido-blazer/components"
	"github.com/automoto/bushido-blazer/sim"
)

// UpdateAudio releases this tick's cues to the outbox for the host to play.
func UpdateAudio(ctx *sim.Context) {
	e, ok := components.Audio.First(ctx.World)
	if !ok {
		return
	}
	audio := components.Audio.Get(e)
	if len(audio.PendingSFX) == 0 {
		return
	}
	audio.Outbox = append(audio.Outbox, audio.PendingSFX...)
	audio.PendingSFX = audio.PendingSFX[:0]
}

// DrainSounds hands the outbox to the caller and empties it.
func DrainSounds(ctx *sim.Context) []components.SoundCue {
	e, ok := components.Audio.First(ctx.World)
	if !ok {
		return nil
	}
	audio := components.Audio.Get(e)
	cues := audio.Outbox
	audio.Outbox = nil
	return cues
}
