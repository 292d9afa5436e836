package controls

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical input action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionBack
	ActionToggleHUD
	ActionFullscreen
	ActionMute
	ActionCount // Must be last - used for array sizing
)

// Binding is the set of keys and gamepad buttons that trigger an action.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every action to its inputs. Arrow keys and WASD both move.
var Bindings = map[ActionID]Binding{
	ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	ActionMoveUp: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	ActionMoveDown: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	ActionBack: {
		Keys:                   []ebiten.Key{ebiten.KeyEscape},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	ActionToggleHUD: {
		Keys: []ebiten.Key{ebiten.KeyH},
	},
	ActionFullscreen: {
		Keys: []ebiten.Key{ebiten.KeyF11},
	},
	ActionMute: {
		Keys: []ebiten.Key{ebiten.KeyM},
	},
}

// Analog sticks below this deflection count as centred.
const AnalogDeadzone = 0.25

// JoystickRadius is the on-screen joystick knob travel in screen pixels.
const JoystickRadius = 60.0
