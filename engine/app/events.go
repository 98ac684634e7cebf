package app

import (
	"github.com/1siamBot/stardust/engine/core"
	"github.com/1siamBot/stardust/engine/input"
	"github.com/1siamBot/stardust/engine/scene"
)

// pollEvents drains the platform's events through the bus. Handlers run in
// arrival order.
func (a *Application) pollEvents() {
	for _, e := range a.platform.PollEvents() {
		e.Tick = a.frames
		a.events.Emit(e)
	}
	a.events.Dispatch()
}

func (a *Application) registerHandlers() {
	a.events.On(core.EvtQuit, func(core.Event) {
		a.logger.Debug("quit requested")
		a.running = false
	})

	a.events.On(core.EvtWindowResized, func(e core.Event) {
		if h, ok := a.scenes.Current().(scene.WindowHandler); ok {
			h.OnWindowResized(e.X, e.Y)
		}
	})
	a.events.On(core.EvtWindowMaximised, func(core.Event) {
		if h, ok := a.scenes.Current().(scene.WindowHandler); ok {
			h.OnWindowMaximised()
		}
	})
	a.events.On(core.EvtWindowMinimised, func(core.Event) {
		if h, ok := a.scenes.Current().(scene.WindowHandler); ok {
			h.OnWindowMinimised()
		}
		a.focused = false
	})
	a.events.On(core.EvtWindowMoved, func(e core.Event) {
		if h, ok := a.scenes.Current().(scene.WindowHandler); ok {
			h.OnWindowMoved(e.X, e.Y)
		}
	})
	a.events.On(core.EvtFocusLost, func(core.Event) { a.focused = false })
	a.events.On(core.EvtFocusGained, func(core.Event) { a.focused = true })

	a.events.On(core.EvtKeyDown, func(e core.Event) {
		if e.Key == input.KeyF2 {
			a.TakeScreenshot()
		}
		if h, ok := a.scenes.Current().(scene.KeyHandler); ok {
			h.OnKeyDown(e.Key)
		}
	})
	a.events.On(core.EvtKeyUp, func(e core.Event) {
		if h, ok := a.scenes.Current().(scene.KeyHandler); ok {
			h.OnKeyUp(e.Key)
		}
	})
	a.events.On(core.EvtTextInput, func(e core.Event) {
		if h, ok := a.scenes.Current().(scene.KeyHandler); ok {
			h.OnTextInput(e.Text)
		}
	})

	a.events.On(core.EvtControllerAdded, func(e core.Event) {
		c := a.input.Controllers.Add(e.Controller, e.Text)
		if c == nil {
			return
		}
		a.logger.Info("controller connected", "id", c.ID, "name", c.Name)
		if h, ok := a.scenes.Current().(scene.ControllerHandler); ok {
			h.OnControllerAdded(c)
		}
	})
	a.events.On(core.EvtControllerRemoved, func(e core.Event) {
		c := a.input.Controllers.Get(e.Controller)
		if c == nil {
			return
		}
		if h, ok := a.scenes.Current().(scene.ControllerHandler); ok {
			h.OnControllerRemoved(c)
		}
		a.input.Controllers.Remove(e.Controller)
		a.logger.Info("controller disconnected", "id", c.ID)
	})
}
