package components

import (
	cfg "github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/yohamta/donburi"
)

// SoundCue is a named sound request for the audio collaborator.
type SoundCue struct {
	ID       cfg.SoundID
	Name     string
	Position gamemath.Vec2
	Speed    float64
}

// AudioData stores global audio state (singleton component)
type AudioData struct {
	PendingSFX []SoundCue

	// Cues released by the audio pass, waiting for the host to drain them.
	Outbox []SoundCue
}

// Queue appends a cue for id at pos.
func (a *AudioData) Queue(id cfg.SoundID, pos gamemath.Vec2) {
	a.PendingSFX = append(a.PendingSFX, SoundCue{
		ID:       id,
		Name:     cfg.Sound.Name(id),
		Position: pos,
		Speed:    cfg.Sound.Speed(id),
	})
}

var Audio = donburi.NewComponentType[AudioData]()
