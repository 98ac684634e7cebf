package systems

import (
	"math"

	"github.com/1siamBot/stardust/engine/core"
	"github.com/1siamBot/stardust/engine/geom"
	"github.com/1siamBot/stardust/engine/input"
)

// MovementSystem integrates velocities and rotators, and drives
// keyboard-controlled entities from the arrow keys or WASD
type MovementSystem struct {
	Input *input.State
	// Bounds clamps positions when set
	Bounds *geom.Rect
}

func (s *MovementSystem) Priority() int { return 10 }

func (s *MovementSystem) Update(w *core.World, dt float64) {
	if s.Input != nil {
		dir := s.direction()
		for _, id := range w.Query(core.CompKeyboardControlled, core.CompVelocity) {
			kc := w.Get(id, core.CompKeyboardControlled).(*core.KeyboardControlled)
			vel := w.Get(id, core.CompVelocity).(*core.Velocity)
			vel.Vec2 = dir.Scale(kc.Speed)
		}
	}

	for _, id := range w.Query(core.CompTransform, core.CompVelocity) {
		tr := w.Get(id, core.CompTransform).(*core.Transform)
		vel := w.Get(id, core.CompVelocity).(*core.Velocity)
		tr.Position = tr.Position.Add(vel.Scale(dt))
		if s.Bounds != nil {
			b := s.Bounds
			tr.Position.X = geom.Clamp(tr.Position.X, b.X, b.X+b.W)
			tr.Position.Y = geom.Clamp(tr.Position.Y, b.Y, b.Y+b.H)
		}
	}

	for _, id := range w.Query(core.CompTransform, core.CompRotator) {
		tr := w.Get(id, core.CompTransform).(*core.Transform)
		rot := w.Get(id, core.CompRotator).(*core.Rotator)
		tr.Rotation = math.Mod(tr.Rotation+rot.Torque*dt, 360)
	}
}

// direction returns the unit vector the movement keys point in, Y up
func (s *MovementSystem) direction() geom.Vec2 {
	kb := &s.Input.Keyboard
	var d geom.Vec2
	if kb.IsAnyKeyDown(input.KeyLeft, input.KeyA) {
		d.X--
	}
	if kb.IsAnyKeyDown(input.KeyRight, input.KeyD) {
		d.X++
	}
	if kb.IsAnyKeyDown(input.KeyUp, input.KeyW) {
		d.Y++
	}
	if kb.IsAnyKeyDown(input.KeyDown, input.KeyS) {
		d.Y--
	}
	return d.Normalize()
}
