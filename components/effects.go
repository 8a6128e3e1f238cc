package components

import (
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/yohamta/donburi"
)

// FlashData tints an enemy after a slash connects.
type FlashData struct {
	Timer *gamemath.Timer
}

// Alpha fades from 1 to 0 over the flash.
func (f *FlashData) Alpha() float64 {
	if f.Timer.Finished() {
		return 0
	}
	return 1 - f.Timer.Fraction()
}

var Flash = donburi.NewComponentType[FlashData]()

// TrailData is the afterimage of one slash sweep.
type TrailData struct {
	Start gamemath.Vec2
	End   gamemath.Vec2
	// Connected is set when the sweep marked an enemy.
	Connected bool
}

var Trail = donburi.NewComponentType[TrailData]()

// AutoDestroyData marks entities that should be destroyed when the timer runs out
type AutoDestroyData struct {
	Timer *gamemath.Timer
}

// Alpha fades from 1 to 0 over the entity's life.
func (a *AutoDestroyData) Alpha() float64 {
	return 1 - a.Timer.Fraction()
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
