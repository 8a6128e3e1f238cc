package main

import (
	"github.com/automoto/bushido-blazer/components"
	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/automoto/bushido-blazer/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// binding represents the keys and buttons for one action
type binding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

const analogDeadzone = 0.25

var bindings = map[input.ActionID]binding{
	input.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	input.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	input.ActionMoveUp: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	input.ActionMoveDown: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	input.ActionAttack: {
		Keys:         []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ},
		MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
		// A / Cross and the right trigger
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
			ebiten.StandardGamepadButtonFrontBottomRight,
		},
	},
	input.ActionQuit: {
		Keys: []ebiten.Key{ebiten.KeyEscape},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// pollDevices reads every device into a Raw with the cursor in world space.
func pollDevices(camera *components.CameraData) input.Raw {
	var raw input.Raw

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, b := range bindings {
		for _, key := range b.Keys {
			if ebiten.IsKeyPressed(key) {
				raw.Actions[actionID] = true
			}
		}
		for _, btn := range b.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				raw.Actions[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range b.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					raw.Actions[actionID] = true
					raw.Gamepad = true
				}
			}
		}
	}

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		left := gamemath.V(
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical),
		)
		right := gamemath.V(
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal),
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical),
		)
		if gamemath.Length(left) > analogDeadzone || gamemath.Length(right) > analogDeadzone {
			raw.LeftStick = left
			raw.RightStick = right
			raw.Gamepad = true
			break
		}
	}

	cx, cy := ebiten.CursorPosition()
	raw.Cursor = gamemath.V(float64(cx), float64(cy))
	if camera != nil {
		raw.Cursor = camera.ScreenToWorld(raw.Cursor)
	}
	return raw
}
