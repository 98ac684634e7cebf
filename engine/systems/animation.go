package systems

import (
	"github.com/1siamBot/stardust/engine/core"
)

// AnimationSystem steps sprite animations and points each sprite at its
// current atlas frame
type AnimationSystem struct{}

func (s *AnimationSystem) Priority() int { return 60 }

func (s *AnimationSystem) Update(w *core.World, dt float64) {
	for _, id := range w.Query(core.CompAnimation, core.CompSprite) {
		anim := w.Get(id, core.CompAnimation).(*core.Animation)
		sprite := w.Get(id, core.CompSprite).(*core.Sprite)

		n := len(anim.Frames)
		if n == 0 {
			continue
		}
		if !anim.Finished && anim.FPS > 0 {
			anim.Timer += dt
			frameDur := 1.0 / anim.FPS
			for anim.Timer >= frameDur && !anim.Finished {
				anim.Timer -= frameDur
				anim.Frame++
				if anim.Frame >= n {
					if anim.Loop {
						anim.Frame = 0
					} else {
						anim.Finished = true
						anim.Frame = n - 1
					}
				}
			}
		}
		area := anim.Frames[anim.Frame]
		sprite.Area = &area
	}
}

// LifetimeSystem destroys entities whose Lifetime has run out
type LifetimeSystem struct{}

func (s *LifetimeSystem) Priority() int { return 90 }

func (s *LifetimeSystem) Update(w *core.World, dt float64) {
	for _, id := range w.Query(core.CompLifetime) {
		lt := w.Get(id, core.CompLifetime).(*core.Lifetime)
		lt.Remaining -= dt
		if lt.Remaining <= 0 {
			w.Destroy(id)
		}
	}
}
