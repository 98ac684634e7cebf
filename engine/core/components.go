package core

import (
	"image"
	"image/color"

	"github.com/1siamBot/stardust/engine/geom"
	"github.com/1siamBot/stardust/engine/physics"
	"github.com/1siamBot/stardust/engine/render"
)

// ---- Transform ----

// Transform places an entity in world space
type Transform struct {
	Position geom.Vec2
	Rotation float64 // degrees, counter-clockwise
	Scale    geom.Vec2
}

func (t *Transform) Type() ComponentType { return CompTransform }

// DistanceTo returns euclidean distance to another transform
func (t *Transform) DistanceTo(other *Transform) float64 {
	return t.Position.Sub(other.Position).Len()
}

// ---- Motion ----

// Velocity moves an entity every fixed tick
type Velocity struct {
	geom.Vec2
}

func (v *Velocity) Type() ComponentType { return CompVelocity }

// Rotator spins an entity at a constant rate
type Rotator struct {
	Torque float64 // degrees per second
}

func (r *Rotator) Type() ComponentType { return CompRotator }

// KeyboardControlled lets the arrow keys drive an entity's velocity
type KeyboardControlled struct {
	Speed float64 // world units per second
}

func (k *KeyboardControlled) Type() ComponentType { return CompKeyboardControlled }

// ---- Sprite ----

// Sprite represents rendering info. Size is in world units; Area selects an
// atlas region and may be nil.
type Sprite struct {
	Texture render.Texture
	Area    *image.Rectangle
	Size    geom.Vec2
	Tint    color.RGBA
	ZOrder  int // rendering layer order
	Visible bool
}

func (s *Sprite) Type() ComponentType { return CompSprite }

// Animation steps a Sprite through atlas frames
type Animation struct {
	Frames []image.Rectangle
	FPS    float64
	Loop   bool

	Frame    int
	Timer    float64
	Finished bool
}

func (a *Animation) Type() ComponentType { return CompAnimation }

// Lifetime destroys its entity once Remaining runs out
type Lifetime struct {
	Remaining float64 // seconds
}

func (l *Lifetime) Type() ComponentType { return CompLifetime }

// ---- Physics ----

// Body ties an entity to a rigid body in a physics world. The body is
// destroyed together with the entity.
type Body struct {
	*physics.Body
}

func (b *Body) Type() ComponentType { return CompBody }

// Release removes the rigid body from its physics world
func (b *Body) Release() {
	if b.Body != nil {
		b.Body.Destroy()
		b.Body = nil
	}
}

// ---- Tag ----

// Tag names an entity for lookup by gameplay code
type Tag struct {
	Name string
}

func (t *Tag) Type() ComponentType { return CompTag }

// FindTagged returns the first entity tagged name, in spawn order
func FindTagged(w *World, name string) (EntityID, bool) {
	for _, id := range w.Query(CompTag) {
		if w.Get(id, CompTag).(*Tag).Name == name {
			return id, true
		}
	}
	return 0, false
}
