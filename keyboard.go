package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/topdown/input"
)

const stickDeadzone = 0.2

// Keyboard is the desktop input.Source: the ebiten keyboard plus the first
// standard gamepad.
type Keyboard struct {
	bindings map[input.Key][]ebiten.Key
}

func NewKeyboard() *Keyboard {
	return &Keyboard{bindings: map[input.Key][]ebiten.Key{
		input.KeyUp:         {ebiten.KeyW, ebiten.KeyArrowUp},
		input.KeyDown:       {ebiten.KeyS, ebiten.KeyArrowDown},
		input.KeyLeft:       {ebiten.KeyA, ebiten.KeyArrowLeft},
		input.KeyRight:      {ebiten.KeyD, ebiten.KeyArrowRight},
		input.KeyMenu:       {ebiten.KeyM},
		input.KeyInspector:  {ebiten.KeyAltLeft},
		input.KeyFullscreen: {ebiten.KeyF11},
	}}
}

func (k *Keyboard) Held(key input.Key) bool {
	for _, ek := range k.bindings[key] {
		if ebiten.IsKeyPressed(ek) {
			return true
		}
	}
	return gamepadHeld(key)
}

func (k *Keyboard) Released(key input.Key) bool {
	for _, ek := range k.bindings[key] {
		if inpututil.IsKeyJustReleased(ek) {
			return true
		}
	}
	if key == input.KeyMenu {
		if id, ok := firstGamepad(); ok {
			return inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonCenterRight)
		}
	}
	return false
}

func firstGamepad() (ebiten.GamepadID, bool) {
	gamepads := ebiten.AppendGamepadIDs(nil)
	if len(gamepads) == 0 {
		return 0, false
	}
	return gamepads[0], true
}

func gamepadHeld(key input.Key) bool {
	id, ok := firstGamepad()
	if !ok {
		return false
	}

	lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	if math.Abs(lx) <= stickDeadzone {
		lx = 0
	}
	if math.Abs(ly) <= stickDeadzone {
		ly = 0
	}

	switch key {
	case input.KeyUp:
		return ly < 0 || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop)
	case input.KeyDown:
		return ly > 0 || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom)
	case input.KeyLeft:
		return lx < 0 || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
	case input.KeyRight:
		return lx > 0 || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
	}
	return false
}
