package components

import (
	"github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing config.Direction
	Moving config.Direction

	// Slash gates a new slash, Pause locks the slash pose and Finish is the
	// follow-through window after the lock.
	Slash  *gamemath.Timer
	Pause  *gamemath.Timer
	Finish *gamemath.Timer
}

// Ready reports whether a new slash may begin.
func (p *PlayerData) Ready() bool {
	return p.Slash.Finished() && p.Finish.Finished()
}

// Locked reports whether the slash pose is holding the player in place.
func (p *PlayerData) Locked() bool {
	return !p.Pause.Finished()
}

var Player = donburi.NewComponentType[PlayerData]()
