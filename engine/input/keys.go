package input

import "strconv"

// Key identifies a keyboard key independently of the windowing backend
type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyShift
	KeyControl
	KeyAlt
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyUnknown: "Unknown",
	KeySpace:   "Space", KeyEscape: "Escape", KeyEnter: "Enter", KeyTab: "Tab",
	KeyBackspace: "Backspace", KeyDelete: "Delete",
	KeyUp: "Up", KeyDown: "Down", KeyLeft: "Left", KeyRight: "Right",
	KeyShift: "Shift", KeyControl: "Control", KeyAlt: "Alt",
}

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('A' + int(k-KeyA)))
	}
	for k := Key0; k <= Key9; k++ {
		keyNames[k] = string(rune('0' + int(k-Key0)))
	}
	for k := KeyF1; k <= KeyF12; k++ {
		keyNames[k] = "F" + strconv.Itoa(int(k-KeyF1)+1)
	}
}

func (k Key) String() string {
	if k >= 0 && k < KeyCount {
		return keyNames[k]
	}
	return "Unknown"
}

// MouseButton identifies a mouse button
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseThumb1
	MouseThumb2
	MouseButtonCount
)

// ControllerButton identifies a gamepad button in the standard layout
type ControllerButton int

const (
	ButtonDPadUp ControllerButton = iota
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
	ButtonA
	ButtonB
	ButtonX
	ButtonY
	ButtonBack
	ButtonGuide
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonLeftShoulder
	ButtonRightShoulder
	ControllerButtonCount
)

// ControllerAxis identifies a gamepad axis. Stick axes range over [-1, 1]
// and triggers over [0, 1].
type ControllerAxis int

const (
	AxisLeftX ControllerAxis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisLeftTrigger
	AxisRightTrigger
	ControllerAxisCount
)
