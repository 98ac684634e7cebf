// Package driver runs the application inside ebiten. It translates ebiten's
// window, keyboard, mouse and gamepad state into core events and input
// snapshots, and implements the renderer on top of ebiten images.
package driver

import (
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/1siamBot/stardust/engine/core"
	"github.com/1siamBot/stardust/engine/input"
	"github.com/1siamBot/stardust/engine/render"
)

// Platform implements app.Platform and its optional screenshot, message
// and relative mouse interfaces on ebiten
type Platform struct {
	logger *log.Logger
	screen *screenRenderer

	events   []core.Event
	keys     []ebiten.Key
	gamepads []ebiten.GamepadID
	chars    []rune

	focused   bool
	minimised bool
	maximised bool
	winX      int
	winY      int
	winW      int
	winH      int
}

// NewPlatform creates a platform whose scenes draw at w by h logical pixels
func NewPlatform(w, h int, logger *log.Logger) *Platform {
	return &Platform{
		logger:  logger,
		screen:  newScreenRenderer(w, h),
		focused: true,
	}
}

func (p *Platform) Renderer() render.Renderer { return p.screen }

// ShowMessage reports a diagnostic through the log; ebiten has no native
// message box
func (p *Platform) ShowMessage(title, body string) {
	p.logger.Error(title, "message", body)
}

// SetRelativeMouse hides and captures the cursor so only its movement is
// reported
func (p *Platform) SetRelativeMouse(on bool) {
	if on {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

// PollEvents turns this tick's ebiten state changes into events
func (p *Platform) PollEvents() []core.Event {
	p.events = p.events[:0]

	if ebiten.IsWindowBeingClosed() {
		p.emit(core.Event{Type: core.EvtQuit})
	}
	p.pollWindow()
	p.pollKeys()
	p.pollGamepads()
	return p.events
}

func (p *Platform) emit(e core.Event) { p.events = append(p.events, e) }

func (p *Platform) pollWindow() {
	if f := ebiten.IsFocused(); f != p.focused {
		p.focused = f
		if f {
			p.emit(core.Event{Type: core.EvtFocusGained})
		} else {
			p.emit(core.Event{Type: core.EvtFocusLost})
		}
	}
	if m := ebiten.IsWindowMinimized(); m != p.minimised {
		p.minimised = m
		if m {
			p.emit(core.Event{Type: core.EvtWindowMinimised})
		}
	}
	if m := ebiten.IsWindowMaximized(); m != p.maximised {
		p.maximised = m
		if m {
			p.emit(core.Event{Type: core.EvtWindowMaximised})
		}
	}
	if x, y := ebiten.WindowPosition(); x != p.winX || y != p.winY {
		p.winX, p.winY = x, y
		p.emit(core.Event{Type: core.EvtWindowMoved, X: x, Y: y})
	}
	if w, h := ebiten.WindowSize(); w != p.winW || h != p.winH {
		p.winW, p.winH = w, h
		p.emit(core.Event{Type: core.EvtWindowResized, X: w, Y: h})
	}
}

func (p *Platform) pollKeys() {
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if key, ok := keyMap[k]; ok {
			p.emit(core.Event{Type: core.EvtKeyDown, Key: key})
		}
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		if key, ok := keyMap[k]; ok {
			p.emit(core.Event{Type: core.EvtKeyUp, Key: key})
		}
	}
	p.chars = ebiten.AppendInputChars(p.chars[:0])
	if len(p.chars) > 0 {
		p.emit(core.Event{Type: core.EvtTextInput, Text: string(p.chars)})
	}
}

func (p *Platform) pollGamepads() {
	var added []ebiten.GamepadID
	added = inpututil.AppendJustConnectedGamepadIDs(added)
	for _, id := range added {
		p.gamepads = append(p.gamepads, id)
		p.emit(core.Event{Type: core.EvtControllerAdded, Controller: int(id), Text: ebiten.GamepadName(id)})
	}
	p.gamepads = slices.DeleteFunc(p.gamepads, func(id ebiten.GamepadID) bool {
		if !inpututil.IsGamepadJustDisconnected(id) {
			return false
		}
		p.emit(core.Event{Type: core.EvtControllerRemoved, Controller: int(id)})
		return true
	})
}

// ReadInput fills snap with the current keyboard, mouse and gamepad state
func (p *Platform) ReadInput(snap *input.Snapshot) {
	snap.Keys = [input.KeyCount]bool{}
	for ek, k := range keyMap {
		if ebiten.IsKeyPressed(ek) {
			snap.Keys[k] = true
		}
	}

	x, y := ebiten.CursorPosition()
	snap.MouseX, snap.MouseY = float64(x), float64(y)
	for b, eb := range mouseMap {
		snap.Buttons[b] = ebiten.IsMouseButtonPressed(eb)
	}
	_, snap.ScrollY = ebiten.Wheel()

	snap.Controllers = snap.Controllers[:0]
	for _, id := range p.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		cs := input.ControllerSnapshot{ID: int(id), Name: ebiten.GamepadName(id)}
		for b, eb := range buttonMap {
			cs.Buttons[b] = ebiten.IsStandardGamepadButtonPressed(id, eb)
		}
		for _, m := range stickMap {
			cs.Axes[m.axis] = ebiten.StandardGamepadAxisValue(id, m.std)
		}
		for _, m := range triggerMap {
			cs.Axes[m.axis] = ebiten.StandardGamepadButtonValue(id, m.std)
		}
		snap.Controllers = append(snap.Controllers, cs)
	}
}
