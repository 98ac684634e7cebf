package input

import (
	"math"
	"slices"
)

// Controller is one connected gamepad
type Controller struct {
	ID          int
	Name        string
	PlayerIndex int

	current  [ControllerButtonCount]bool
	previous [ControllerButtonCount]bool
	axes     [ControllerAxisCount]float64

	deadzone *float64
}

func (c *Controller) IsButtonDown(b ControllerButton) bool {
	return validControllerButton(b) && c.current[b]
}

func (c *Controller) IsButtonPressed(b ControllerButton) bool {
	return validControllerButton(b) && c.current[b] && !c.previous[b]
}

func (c *Controller) IsButtonUp(b ControllerButton) bool {
	return validControllerButton(b) && !c.current[b] && c.previous[b]
}

func (c *Controller) IsAnyButtonDown(bs ...ControllerButton) bool {
	return anyOf(bs, c.IsButtonDown)
}

func (c *Controller) AreAllButtonsDown(bs ...ControllerButton) bool {
	return allOf(bs, c.IsButtonDown)
}

// Axis returns the axis value with the shared deadzone applied: readings
// whose magnitude is inside the deadzone are reported as zero
func (c *Controller) Axis(a ControllerAxis) float64 {
	if a < 0 || a >= ControllerAxisCount {
		return 0
	}
	v := c.axes[a]
	if c.deadzone != nil && math.Abs(v) < *c.deadzone {
		return 0
	}
	return v
}

func validControllerButton(b ControllerButton) bool {
	return b >= 0 && b < ControllerButtonCount
}

// Controllers tracks connected gamepads by ID
type Controllers struct {
	byID     map[int]*Controller
	deadzone float64

	// MaxControllers limits how many gamepads are tracked; zero means no limit
	MaxControllers int
}

func newControllers() Controllers {
	return Controllers{byID: make(map[int]*Controller)}
}

// SetDeadzone sets the axis deadzone shared by every controller
func (cs *Controllers) SetDeadzone(dz float64) { cs.deadzone = dz }
func (cs *Controllers) Deadzone() float64      { return cs.deadzone }

// Add starts tracking a controller. It returns nil if the ID is already
// known or the limit is reached.
func (cs *Controllers) Add(id int, name string) *Controller {
	if cs.byID == nil {
		cs.byID = make(map[int]*Controller)
	}
	if _, ok := cs.byID[id]; ok {
		return nil
	}
	if cs.MaxControllers > 0 && len(cs.byID) >= cs.MaxControllers {
		return nil
	}
	c := &Controller{ID: id, Name: name, PlayerIndex: len(cs.byID), deadzone: &cs.deadzone}
	cs.byID[id] = c
	return c
}

// Remove stops tracking a controller and returns it, or nil if unknown
func (cs *Controllers) Remove(id int) *Controller {
	c, ok := cs.byID[id]
	if !ok {
		return nil
	}
	delete(cs.byID, id)
	return c
}

// Get returns the controller with the given ID, or nil
func (cs *Controllers) Get(id int) *Controller { return cs.byID[id] }

// Len returns the number of tracked controllers
func (cs *Controllers) Len() int { return len(cs.byID) }

// All returns tracked controllers ordered by ID
func (cs *Controllers) All() []*Controller {
	out := make([]*Controller, 0, len(cs.byID))
	for _, c := range cs.byID {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *Controller) int { return a.ID - b.ID })
	return out
}

// refresh copies button and axis state into already tracked controllers.
// Connection changes arrive as events and go through Add and Remove.
func (cs *Controllers) refresh(snaps []ControllerSnapshot) {
	for _, c := range cs.byID {
		c.previous = c.current
		c.current = [ControllerButtonCount]bool{}
		c.axes = [ControllerAxisCount]float64{}
	}
	for i := range snaps {
		c, ok := cs.byID[snaps[i].ID]
		if !ok {
			continue
		}
		c.current = snaps[i].Buttons
		c.axes = snaps[i].Axes
	}
}
