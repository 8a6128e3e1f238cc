// Package events defines the transient per-tick messages passed between
// systems. Each type is published by one pass and drained by a later pass in
// the same tick.
package events

import (
	"github.com/automoto/bushido-blazer/config"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Slash is a dash-slash sweep from Start along the unit Direction.
type Slash struct {
	Start     gamemath.Vec2
	Direction gamemath.Vec2
	Length    float64
}

// End is the far point of the sweep.
func (s Slash) End() gamemath.Vec2 {
	return gamemath.Add(s.Start, gamemath.Scale(s.Direction, s.Length))
}

// Finish fires when the player's follow-through ends.
type Finish struct{}

// PlayerHit is a qualifying enemy contact against the player.
type PlayerHit struct {
	Enemy donburi.Entity
	Kind  config.EnemyKind
}

// SpawnRequest asks for one enemy at Position.
type SpawnRequest struct {
	Kind     config.EnemyKind
	Position gamemath.Vec2
	Wave     int
}

var (
	SlashEvent        = events.NewEventType[Slash]()
	FinishEvent       = events.NewEventType[Finish]()
	PlayerHitEvent    = events.NewEventType[PlayerHit]()
	SpawnRequestEvent = events.NewEventType[SpawnRequest]()
)
