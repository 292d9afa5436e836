// Package controls polls ebiten keyboard, gamepad and touch state and turns
// it into actions and a movement intent for the simulation.
package controls

import (
	"math"

	"github.com/automoto/dronefall/shared/intent"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Joystick is the on-screen stick. It appears where a touch or mouse drag
// starts and follows the pointer within JoystickRadius.
type Joystick struct {
	Active       bool
	BaseX, BaseY float64
	KnobX, KnobY float64

	touch   ebiten.TouchID
	byMouse bool
}

// Controls holds the polled state for one frame.
type Controls struct {
	current  [ActionCount]bool
	previous [ActionCount]bool

	Stick Joystick

	keyboard intent.Vector
	analog   intent.Vector

	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
}

func New() *Controls {
	return &Controls{}
}

// Update polls every input device. Call once per frame before the
// simulation samples Intent.
func (c *Controls) Update() {
	c.previous = c.current
	c.current = [ActionCount]bool{}

	c.gamepadIDs = ebiten.AppendGamepadIDs(c.gamepadIDs[:0])
	for action, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				c.current[action] = true
			}
		}
		for _, gpID := range c.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					c.current[action] = true
				}
			}
		}
	}

	c.keyboard = intent.KeyboardAxis(
		c.current[ActionMoveLeft],
		c.current[ActionMoveRight],
		c.current[ActionMoveUp],
		c.current[ActionMoveDown],
	)
	c.analog = c.readAnalog()
	c.updateStick()
}

// readAnalog returns the first gamepad left stick outside the deadzone.
func (c *Controls) readAnalog() intent.Vector {
	for _, gpID := range c.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(h, v) > AnalogDeadzone {
			return intent.Joystick(h, v, 1)
		}
	}
	return intent.Vector{}
}

func (c *Controls) updateStick() {
	s := &c.Stick
	if !s.Active {
		c.touchIDs = inpututil.AppendJustPressedTouchIDs(c.touchIDs[:0])
		switch {
		case len(c.touchIDs) > 0:
			x, y := ebiten.TouchPosition(c.touchIDs[0])
			*s = Joystick{Active: true, touch: c.touchIDs[0]}
			s.BaseX, s.BaseY = float64(x), float64(y)
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
			x, y := ebiten.CursorPosition()
			*s = Joystick{Active: true, byMouse: true}
			s.BaseX, s.BaseY = float64(x), float64(y)
		default:
			return
		}
	}

	var x, y int
	if s.byMouse {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			*s = Joystick{}
			return
		}
		x, y = ebiten.CursorPosition()
	} else {
		if inpututil.IsTouchJustReleased(s.touch) {
			*s = Joystick{}
			return
		}
		x, y = ebiten.TouchPosition(s.touch)
	}

	dx, dy := float64(x)-s.BaseX, float64(y)-s.BaseY
	if l := math.Hypot(dx, dy); l > JoystickRadius {
		dx, dy = dx/l*JoystickRadius, dy/l*JoystickRadius
	}
	s.KnobX, s.KnobY = s.BaseX+dx, s.BaseY+dy
}

// Intent implements sim.IntentSource. Keys win over the sticks; the
// on-screen stick wins over a gamepad stick.
func (c *Controls) Intent() (float64, float64) {
	stick := c.analog
	if c.Stick.Active {
		stick = intent.Joystick(c.Stick.KnobX-c.Stick.BaseX, c.Stick.KnobY-c.Stick.BaseY, JoystickRadius)
	}
	v := intent.Merge(c.keyboard, stick)
	return v.X, v.Y
}

func (c *Controls) Pressed(id ActionID) bool {
	return c.current[id]
}

func (c *Controls) JustPressed(id ActionID) bool {
	return c.current[id] && !c.previous[id]
}
