package driver

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/1siamBot/stardust/engine/input"
)

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyA: input.KeyA, ebiten.KeyB: input.KeyB, ebiten.KeyC: input.KeyC, ebiten.KeyD: input.KeyD,
	ebiten.KeyE: input.KeyE, ebiten.KeyF: input.KeyF, ebiten.KeyG: input.KeyG, ebiten.KeyH: input.KeyH,
	ebiten.KeyI: input.KeyI, ebiten.KeyJ: input.KeyJ, ebiten.KeyK: input.KeyK, ebiten.KeyL: input.KeyL,
	ebiten.KeyM: input.KeyM, ebiten.KeyN: input.KeyN, ebiten.KeyO: input.KeyO, ebiten.KeyP: input.KeyP,
	ebiten.KeyQ: input.KeyQ, ebiten.KeyR: input.KeyR, ebiten.KeyS: input.KeyS, ebiten.KeyT: input.KeyT,
	ebiten.KeyU: input.KeyU, ebiten.KeyV: input.KeyV, ebiten.KeyW: input.KeyW, ebiten.KeyX: input.KeyX,
	ebiten.KeyY: input.KeyY, ebiten.KeyZ: input.KeyZ,

	ebiten.Key0: input.Key0, ebiten.Key1: input.Key1, ebiten.Key2: input.Key2, ebiten.Key3: input.Key3,
	ebiten.Key4: input.Key4, ebiten.Key5: input.Key5, ebiten.Key6: input.Key6, ebiten.Key7: input.Key7,
	ebiten.Key8: input.Key8, ebiten.Key9: input.Key9,

	ebiten.KeySpace:      input.KeySpace,
	ebiten.KeyEscape:     input.KeyEscape,
	ebiten.KeyEnter:      input.KeyEnter,
	ebiten.KeyTab:        input.KeyTab,
	ebiten.KeyBackspace:  input.KeyBackspace,
	ebiten.KeyDelete:     input.KeyDelete,
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyShift:      input.KeyShift,
	ebiten.KeyControl:    input.KeyControl,
	ebiten.KeyAlt:        input.KeyAlt,

	ebiten.KeyShiftLeft: input.KeyShift, ebiten.KeyShiftRight: input.KeyShift,
	ebiten.KeyControlLeft: input.KeyControl, ebiten.KeyControlRight: input.KeyControl,
	ebiten.KeyAltLeft: input.KeyAlt, ebiten.KeyAltRight: input.KeyAlt,

	ebiten.KeyF1: input.KeyF1, ebiten.KeyF2: input.KeyF2, ebiten.KeyF3: input.KeyF3, ebiten.KeyF4: input.KeyF4,
	ebiten.KeyF5: input.KeyF5, ebiten.KeyF6: input.KeyF6, ebiten.KeyF7: input.KeyF7, ebiten.KeyF8: input.KeyF8,
	ebiten.KeyF9: input.KeyF9, ebiten.KeyF10: input.KeyF10, ebiten.KeyF11: input.KeyF11, ebiten.KeyF12: input.KeyF12,
}

var mouseMap = [input.MouseButtonCount]ebiten.MouseButton{
	input.MouseLeft:   ebiten.MouseButtonLeft,
	input.MouseMiddle: ebiten.MouseButtonMiddle,
	input.MouseRight:  ebiten.MouseButtonRight,
	input.MouseThumb1: ebiten.MouseButton3,
	input.MouseThumb2: ebiten.MouseButton4,
}

var buttonMap = [input.ControllerButtonCount]ebiten.StandardGamepadButton{
	input.ButtonDPadUp:        ebiten.StandardGamepadButtonLeftTop,
	input.ButtonDPadDown:      ebiten.StandardGamepadButtonLeftBottom,
	input.ButtonDPadLeft:      ebiten.StandardGamepadButtonLeftLeft,
	input.ButtonDPadRight:     ebiten.StandardGamepadButtonLeftRight,
	input.ButtonA:             ebiten.StandardGamepadButtonRightBottom,
	input.ButtonB:             ebiten.StandardGamepadButtonRightRight,
	input.ButtonX:             ebiten.StandardGamepadButtonRightLeft,
	input.ButtonY:             ebiten.StandardGamepadButtonRightTop,
	input.ButtonBack:          ebiten.StandardGamepadButtonCenterLeft,
	input.ButtonGuide:         ebiten.StandardGamepadButtonCenterCenter,
	input.ButtonStart:         ebiten.StandardGamepadButtonCenterRight,
	input.ButtonLeftStick:     ebiten.StandardGamepadButtonLeftStick,
	input.ButtonRightStick:    ebiten.StandardGamepadButtonRightStick,
	input.ButtonLeftShoulder:  ebiten.StandardGamepadButtonFrontTopLeft,
	input.ButtonRightShoulder: ebiten.StandardGamepadButtonFrontTopRight,
}

var stickMap = [...]struct {
	axis input.ControllerAxis
	std  ebiten.StandardGamepadAxis
}{
	{input.AxisLeftX, ebiten.StandardGamepadAxisLeftStickHorizontal},
	{input.AxisLeftY, ebiten.StandardGamepadAxisLeftStickVertical},
	{input.AxisRightX, ebiten.StandardGamepadAxisRightStickHorizontal},
	{input.AxisRightY, ebiten.StandardGamepadAxisRightStickVertical},
}

var triggerMap = [...]struct {
	axis input.ControllerAxis
	std  ebiten.StandardGamepadButton
}{
	{input.AxisLeftTrigger, ebiten.StandardGamepadButtonFrontBottomLeft},
	{input.AxisRightTrigger, ebiten.StandardGamepadButtonFrontBottomRight},
}
