// Package input holds the per-frame keyboard, mouse and controller state the
// application hands to scenes. A platform fills a Snapshot with raw device
// state each frame; State.Refresh turns consecutive snapshots into
// held/pressed/released queries.
package input

import "github.com/1siamBot/stardust/engine/geom"

// Snapshot is the raw device state read by a platform in one frame
type Snapshot struct {
	Keys        [KeyCount]bool
	MouseX      float64
	MouseY      float64
	Buttons     [MouseButtonCount]bool
	ScrollY     float64
	Controllers []ControllerSnapshot
}

// ControllerSnapshot is the raw state of one connected controller
type ControllerSnapshot struct {
	ID      int
	Name    string
	Buttons [ControllerButtonCount]bool
	Axes    [ControllerAxisCount]float64
}

// State tracks keyboard, mouse and controllers across frames
type State struct {
	Keyboard    Keyboard
	Mouse       Mouse
	Controllers Controllers
}

func NewState() *State {
	return &State{
		Mouse:       Mouse{DragThreshold: 5},
		Controllers: newControllers(),
	}
}

// Refresh advances every device by one frame
func (s *State) Refresh(snap *Snapshot) {
	s.Keyboard.refresh(&snap.Keys)
	s.Mouse.refresh(snap)
	s.Controllers.refresh(snap.Controllers)
}

// Freeze advances a frame without reading devices: held keys stay held and
// nothing reports as just pressed or released
func (s *State) Freeze() {
	s.Keyboard.previous = s.Keyboard.current
	s.Mouse.previous = s.Mouse.current
	s.Mouse.DX, s.Mouse.DY, s.Mouse.Scroll = 0, 0, 0
	for _, c := range s.Controllers.byID {
		c.previous = c.current
	}
}

// ---- Keyboard ----

// Keyboard answers held (Down), just pressed (Pressed) and just released
// (Up) queries for the current frame
type Keyboard struct {
	current  [KeyCount]bool
	previous [KeyCount]bool
}

func (k *Keyboard) refresh(keys *[KeyCount]bool) {
	k.previous = k.current
	k.current = *keys
}

func (k *Keyboard) IsKeyDown(key Key) bool    { return valid(key) && k.current[key] }
func (k *Keyboard) IsKeyPressed(key Key) bool { return valid(key) && k.current[key] && !k.previous[key] }
func (k *Keyboard) IsKeyUp(key Key) bool      { return valid(key) && !k.current[key] && k.previous[key] }

func (k *Keyboard) IsAnyKeyDown(keys ...Key) bool    { return anyOf(keys, k.IsKeyDown) }
func (k *Keyboard) IsAnyKeyPressed(keys ...Key) bool { return anyOf(keys, k.IsKeyPressed) }
func (k *Keyboard) IsAnyKeyUp(keys ...Key) bool      { return anyOf(keys, k.IsKeyUp) }

func (k *Keyboard) AreAllKeysDown(keys ...Key) bool    { return allOf(keys, k.IsKeyDown) }
func (k *Keyboard) AreAllKeysPressed(keys ...Key) bool { return allOf(keys, k.IsKeyPressed) }
func (k *Keyboard) AreAllKeysUp(keys ...Key) bool      { return allOf(keys, k.IsKeyUp) }

func valid(key Key) bool { return key > KeyUnknown && key < KeyCount }

// ---- Mouse ----

// Mouse tracks cursor position, buttons, scroll and left-button drags
type Mouse struct {
	X, Y   float64
	DX, DY float64 // delta since last frame
	Scroll float64

	// Relative is set while the platform captures the cursor; only DX and
	// DY are meaningful then
	Relative bool

	current  [MouseButtonCount]bool
	previous [MouseButtonCount]bool

	// Drag
	DragStartX, DragStartY float64
	Dragging               bool
	DragThreshold          float64
}

func (m *Mouse) refresh(snap *Snapshot) {
	m.DX = snap.MouseX - m.X
	m.DY = snap.MouseY - m.Y
	m.X, m.Y = snap.MouseX, snap.MouseY
	m.Scroll = snap.ScrollY

	m.previous = m.current
	m.current = snap.Buttons

	leftDown := m.current[MouseLeft]
	if m.IsButtonPressed(MouseLeft) {
		m.DragStartX = m.X
		m.DragStartY = m.Y
		m.Dragging = false
	}
	if leftDown && !m.Dragging {
		dx := m.X - m.DragStartX
		dy := m.Y - m.DragStartY
		if dx*dx+dy*dy > m.DragThreshold*m.DragThreshold {
			m.Dragging = true
		}
	}
	if !leftDown {
		m.Dragging = false
	}
}

// Position returns the cursor in logical pixels
func (m *Mouse) Position() geom.Vec2 { return geom.Vec2{X: m.X, Y: m.Y} }

// Delta returns the cursor movement since the last frame
func (m *Mouse) Delta() geom.Vec2 { return geom.Vec2{X: m.DX, Y: m.DY} }

func (m *Mouse) IsButtonDown(b MouseButton) bool {
	return validButton(b) && m.current[b]
}

func (m *Mouse) IsButtonPressed(b MouseButton) bool {
	return validButton(b) && m.current[b] && !m.previous[b]
}

func (m *Mouse) IsButtonUp(b MouseButton) bool {
	return validButton(b) && !m.current[b] && m.previous[b]
}

func (m *Mouse) IsAnyButtonDown(bs ...MouseButton) bool { return anyOf(bs, m.IsButtonDown) }
func (m *Mouse) AreAllButtonsDown(bs ...MouseButton) bool {
	return allOf(bs, m.IsButtonDown)
}

// DragRect returns the selection rectangle if dragging
func (m *Mouse) DragRect() (geom.Rect, bool) {
	if !m.Dragging {
		return geom.Rect{}, false
	}
	x0, x1 := min(m.DragStartX, m.X), max(m.DragStartX, m.X)
	y0, y1 := min(m.DragStartY, m.Y), max(m.DragStartY, m.Y)
	return geom.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}

func validButton(b MouseButton) bool { return b >= 0 && b < MouseButtonCount }

func anyOf[T any](items []T, pred func(T) bool) bool {
	for _, it := range items {
		if pred(it) {
			return true
		}
	}
	return false
}

func allOf[T any](items []T, pred func(T) bool) bool {
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		if !pred(it) {
			return false
		}
	}
	return true
}
