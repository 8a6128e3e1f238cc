package input

import (
	"math"
	"testing"

	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/stretchr/testify/assert"
)

func pressed(ids ...ActionID) Raw {
	var raw Raw
	for _, id := range ids {
		raw.Actions[id] = true
	}
	return raw
}

func TestAttackEdges(t *testing.T) {
	s := NewState(0.25)

	assert.True(t, s.Update(pressed(ActionAttack)).Attack)
	assert.True(t, s.Action(ActionAttack).Pressed)

	assert.False(t, s.Update(pressed(ActionAttack)).Attack, "held attack fires once")
	assert.False(t, s.Action(ActionAttack).JustPressed)

	s.Update(Raw{})
	assert.True(t, s.Action(ActionAttack).JustReleased)
	assert.True(t, s.Update(pressed(ActionAttack)).Attack)
}

func TestDiagonalMoveIsClamped(t *testing.T) {
	s := NewState(0.25)
	in := s.Update(pressed(ActionMoveRight, ActionMoveUp))

	assert.InDelta(t, 1, gamemath.Length(in.Move), 1e-9)
	assert.Greater(t, in.Move.X, 0.0)
	assert.Less(t, in.Move.Y, 0.0)

	in = s.Update(pressed(ActionMoveLeft, ActionMoveRight))
	assert.Zero(t, in.Move.X, "opposing keys cancel")
}

func TestStickDeadzone(t *testing.T) {
	s := NewState(0.25)

	in := s.Update(Raw{LeftStick: gamemath.V(0.2, 0), Gamepad: true})
	assert.Zero(t, gamemath.Length(in.Move))

	in = s.Update(Raw{LeftStick: gamemath.V(0.625, 0), Gamepad: true})
	assert.InDelta(t, 0.5, in.Move.X, 1e-9)

	in = s.Update(Raw{LeftStick: gamemath.V(1, 1), Gamepad: true})
	assert.InDelta(t, 1, gamemath.Length(in.Move), 1e-9)
	assert.InDelta(t, in.Move.X, in.Move.Y, 1e-9)
}

func TestAimIsNormalized(t *testing.T) {
	s := NewState(0.25)

	in := s.Update(Raw{RightStick: gamemath.V(0, -0.6), Gamepad: true})
	assert.InDelta(t, 0, in.Aim.X, 1e-9)
	assert.InDelta(t, -1, in.Aim.Y, 1e-9)

	in = s.Update(Raw{RightStick: gamemath.V(0.1, 0.1), Gamepad: true})
	assert.Zero(t, in.Aim.X)
	assert.Zero(t, in.Aim.Y)
	assert.False(t, math.IsNaN(in.Aim.X))
}

func TestLastDeviceWins(t *testing.T) {
	s := NewState(0.25)
	assert.False(t, s.Gamepad())

	in := s.Update(Raw{Gamepad: true})
	assert.True(t, in.Gamepad)

	s.Update(Raw{})
	assert.True(t, s.Gamepad(), "idle polls keep the last device")

	in = s.Update(pressed(ActionMoveDown))
	assert.False(t, in.Gamepad)
	assert.False(t, s.Gamepad())
}

func TestCursorPassesThrough(t *testing.T) {
	s := NewState(0.25)
	in := s.Update(Raw{Cursor: gamemath.V(12, -40)})
	assert.Equal(t, gamemath.V(12, -40), in.Cursor)
}
