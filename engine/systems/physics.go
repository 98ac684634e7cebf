package systems

import (
	"github.com/1siamBot/stardust/engine/core"
	"github.com/1siamBot/stardust/engine/physics"
)

// PhysicsSystem steps the physics world and copies every body's pose into
// its entity's Transform
type PhysicsSystem struct {
	World *physics.World
}

func (s *PhysicsSystem) Priority() int { return 20 }

func (s *PhysicsSystem) Update(w *core.World, dt float64) {
	if s.World == nil {
		return
	}
	s.World.Step(dt)
	for _, id := range w.Query(core.CompTransform, core.CompBody) {
		body := w.Get(id, core.CompBody).(*core.Body)
		if body.Body == nil {
			continue
		}
		tr := w.Get(id, core.CompTransform).(*core.Transform)
		tr.Position = body.Position()
		tr.Rotation = body.Angle()
	}
}
