package components

import (
	"github.com/automoto/bushido-blazer/config"
	"github.com/yohamta/donburi"
)

// StateData holds the player's layered animation states. Previous values are
// the states committed at the end of the last tick.
type StateData struct {
	Top            config.TopState
	PreviousTop    config.TopState
	Bottom         config.BottomState
	PreviousBottom config.BottomState
}

func (s *StateData) TopChanged() bool {
	return s.Top != s.PreviousTop
}

func (s *StateData) BottomChanged() bool {
	return s.Bottom != s.PreviousBottom
}

// Commit records the current states as the previous ones.
func (s *StateData) Commit() {
	s.PreviousTop = s.Top
	s.PreviousBottom = s.Bottom
}

var State = donburi.NewComponentType[StateData]()
