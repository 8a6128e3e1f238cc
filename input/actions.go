// Package input turns raw device state into the per-tick sim.Input. Device
// polling lives with the window; this package only sees plain values.
package input

import (
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/sim"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionAttack
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// ActionState is the edge-aware state of one action.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// Raw is one poll of every device, already in world space.
type Raw struct {
	Actions [ActionCount]bool

	// Sticks are in [-1, 1] per axis before the deadzone.
	LeftStick  gamemath.Vec2
	RightStick gamemath.Vec2

	Cursor gamemath.Vec2

	// Gamepad is set when a pad produced any input this poll.
	Gamepad bool
}

// State keeps the current and previous action sets and the last device used.
type State struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool

	Deadzone float64
	gamepad  bool
}

func NewState(deadzone float64) *State {
	return &State{Deadzone: deadzone}
}

// Action returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous poll.
func (s *State) Action(id ActionID) ActionState {
	curr := s.Current[id]
	prev := s.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Gamepad reports whether the last device with input was a pad.
func (s *State) Gamepad() bool {
	return s.gamepad
}

// Update swaps buffers and resolves raw into the tick's input.
func (s *State) Update(raw Raw) sim.Input {
	s.Previous = s.Current
	s.Current = raw.Actions

	keyboard := false
	for _, pressed := range raw.Actions {
		if pressed {
			keyboard = true
			break
		}
	}
	if raw.Gamepad {
		s.gamepad = true
	} else if keyboard {
		s.gamepad = false
	}

	digital := gamemath.V(0, 0)
	if s.Current[ActionMoveLeft] {
		digital.X--
	}
	if s.Current[ActionMoveRight] {
		digital.X++
	}
	if s.Current[ActionMoveUp] {
		digital.Y--
	}
	if s.Current[ActionMoveDown] {
		digital.Y++
	}

	move := gamemath.Add(digital, s.deadzone(raw.LeftStick))

	return sim.Input{
		Move:    gamemath.ClampLength(move, 1),
		Aim:     gamemath.Normalize(s.deadzone(raw.RightStick)),
		Attack:  s.Action(ActionAttack).JustPressed,
		Cursor:  raw.Cursor,
		Gamepad: s.gamepad,
	}
}

// deadzone zeroes sticks inside the radial deadzone and rescales the rest so
// output starts at zero on the deadzone edge.
func (s *State) deadzone(v gamemath.Vec2) gamemath.Vec2 {
	l := gamemath.Length(v)
	if l <= s.Deadzone || l == 0 {
		return gamemath.Vec2{}
	}
	scaled := (min(l, 1) - s.Deadzone) / (1 - s.Deadzone)
	return gamemath.Scale(v, scaled/l)
}
