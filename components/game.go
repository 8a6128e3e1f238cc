package components

import (
	"github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameData is the session singleton: current phase, ladder, score and the
// timers that drive phase changes.
type GameData struct {
	Phase         config.Phase
	PreviousPhase config.Phase

	Combo config.Combo
	Kills int

	// Expanded widens the outer bound once waves start following the player.
	Expanded bool

	// Fade is the active screen ramp (Fadeout or GameOver), nil otherwise.
	Fade      *gween.Tween
	FadeAlpha float64

	// Presence fills while the player is outside the inner arena.
	Presence *gamemath.Timer
	Attack   *gamemath.Timer

	// Banner holds the combo callout on screen after each hit.
	Banner *gamemath.Timer
}

// PhaseChanged reports whether the phase moved since the previous tick.
func (g *GameData) PhaseChanged() bool {
	return g.Phase != g.PreviousPhase
}

// PresenceAlpha is how close the Dark Presence is to striking, 0 to 1.
func (g *GameData) PresenceAlpha() float64 {
	if g.Presence == nil {
		return 0
	}
	if g.Phase == config.PhaseDarkPresenceAttack {
		return 1
	}
	return g.Presence.Fraction()
}

// BannerAlpha fades the combo callout out over its timer.
func (g *GameData) BannerAlpha() float64 {
	if g.Banner == nil || g.Banner.Finished() {
		return 0
	}
	return 1 - g.Banner.Fraction()
}

var Game = donburi.NewComponentType[GameData]()
