// Package scene defines the gameplay unit the application drives each frame
// and the queue that decides which scene is current.
package scene

import (
	"github.com/1siamBot/stardust/engine/input"
	"github.com/1siamBot/stardust/engine/render"
)

// Scene is one screen of gameplay. The application calls the hooks on the
// current scene in a fixed order every frame:
//
//	FixedUpdate (zero or more times), ProcessInput, Update, LateUpdate, Render
//
// OnLoad runs once before the first frame and must leave the scene usable on
// success or safe to discard on error. OnUnload runs once when the scene is
// popped. Render must only issue draw calls.
type Scene interface {
	Name() string

	OnLoad() error
	OnUnload()

	FixedUpdate(fixedDT float64)
	ProcessInput()
	Update(dt float64)
	LateUpdate(dt float64)
	Render(r render.Renderer)
}

// WindowHandler is implemented by scenes that react to window changes
type WindowHandler interface {
	OnWindowMinimised()
	OnWindowMaximised()
	OnWindowMoved(x, y int)
	OnWindowResized(w, h int)
}

// KeyHandler is implemented by scenes that want raw key and text events
type KeyHandler interface {
	OnKeyDown(key input.Key)
	OnKeyUp(key input.Key)
	OnTextInput(text string)
}

// ControllerHandler is implemented by scenes that track gamepad hotplug
type ControllerHandler interface {
	OnControllerAdded(c *input.Controller)
	OnControllerRemoved(c *input.Controller)
}

// Base supplies the name and no-op FixedUpdate and LateUpdate. Embed it and
// implement the rest.
type Base struct {
	name string
}

func NewBase(name string) Base { return Base{name: name} }

func (b Base) Name() string      { return b.name }
func (Base) FixedUpdate(float64) {}
func (Base) LateUpdate(float64)  {}
