// Package particles implements a fixed-capacity particle pool.
//
// Particles live in a slice allocated once by NewSystem. Emit writes into the
// slot under a cursor that walks backwards through the pool and wraps, so
// once the pool is full every emission silently replaces the oldest
// particle, even a live one. There is no growth and no emission failure.
//
// Live slots are tracked in an active-set (a sparse set of slot indices) so
// Update and Render cost O(live) rather than O(capacity), at the price of a
// little bookkeeping on every emit and expiry.
package particles

import (
	"image"
	"image/color"

	"github.com/1siamBot/stardust/engine/geom"
	"github.com/1siamBot/stardust/engine/render"
)

// DefaultCapacity is the pool size used when no capacity option is given
const DefaultCapacity = 1000

// Particle is one pool slot. Rotation is in degrees and AngularVelocity in
// degrees per second.
//
// The decay rates are compounded every update as q *= 1 + rate*dt: negative
// rates shrink a quantity toward zero, positive rates grow it.
type Particle struct {
	Position geom.Vec2
	Rotation float64

	Velocity          geom.Vec2
	VelocityDecayRate float64

	AngularVelocity          float64
	AngularVelocityDecayRate float64

	AffectedByGravity bool

	Size          geom.Vec2
	SizeDecayRate float64

	CurrentColour color.RGBA
	StartColour   color.RGBA
	EndColour     color.RGBA
	Texture       render.Texture
	TextureArea   *image.Rectangle

	Lifetime          float64
	LifetimeRemaining float64

	Active bool
}

// LifeFraction is LifetimeRemaining/Lifetime clamped to [0, 1]
func (p *Particle) LifeFraction() float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	return geom.Clamp(p.LifetimeRemaining/p.Lifetime, 0, 1)
}

// EmitSpec describes one emission. Every Min/Max pair is sampled uniformly;
// Min > Max is a caller bug and is not checked.
type EmitSpec struct {
	Position geom.Vec2
	Rotation float64

	MinVelocity       geom.Vec2
	MaxVelocity       geom.Vec2
	VelocityDecayRate float64

	MinAngularVelocity       float64
	MaxAngularVelocity       float64
	AngularVelocityDecayRate float64

	AffectedByGravity bool

	MinSize       geom.Vec2
	MaxSize       geom.Vec2
	SizeDecayRate float64
	KeepAsSquare  bool // reuse the sampled width as height

	StartColour color.RGBA
	EndColour   color.RGBA
	Texture     render.Texture
	TextureArea *image.Rectangle

	MinLifetime float64
	MaxLifetime float64
}
