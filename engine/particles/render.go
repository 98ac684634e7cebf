package particles

import (
	"github.com/1siamBot/stardust/engine/geom"
	"github.com/1siamBot/stardust/engine/render"
)

// Render draws every live particle with its position and size taken as
// renderer pixels. Untextured particles are filled rectangles; textured ones
// are drawn with CurrentColour as the modulation.
func (s *System) Render(r render.Renderer) {
	for _, slot := range s.active.dense {
		p := &s.pool[slot]
		if !p.Active {
			continue
		}
		s.draw(r, p, p.Position, p.Size)
	}
}

// RenderWorld draws every live particle treating position and size as world
// units mapped through cam
func (s *System) RenderWorld(r render.Renderer, cam *render.Camera) {
	for _, slot := range s.active.dense {
		p := &s.pool[slot]
		if !p.Active {
			continue
		}
		s.draw(r, p, cam.WorldToScreen(p.Position), cam.WorldToPixels(p.Size))
	}
}

func (s *System) draw(r render.Renderer, p *Particle, centre, size geom.Vec2) {
	dst := geom.CenteredRect(centre, size)
	if p.Texture == nil {
		r.DrawRect(dst, p.CurrentColour)
		return
	}
	scale := render.TextureScale(p.Texture, p.TextureArea, size)
	r.DrawTexture(p.Texture, p.TextureArea, dst.Min(), scale, p.Rotation, p.CurrentColour)
}
