package components

import (
	"github.com/automoto/bushido-blazer/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData is the play head state handed to the renderer. The player
// drives both layers, enemies only Top.
type AnimationData struct {
	Top    *animations.Animation
	Bottom *animations.Animation
}

var Animation = donburi.NewComponentType[AnimationData]()
