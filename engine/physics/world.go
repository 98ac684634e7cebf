// Package physics wraps a box2d world for scenes. Stepping belongs in a
// scene's FixedUpdate; angles cross this package boundary in degrees.
package physics

import (
	"github.com/ByteArena/box2d"

	"github.com/1siamBot/stardust/engine/geom"
)

// Default solver iteration counts
const (
	DefaultVelocityIterations = 8
	DefaultPositionIterations = 3
)

// World owns a box2d world and the iteration counts used to step it
type World struct {
	b2 box2d.B2World

	VelocityIterations int
	PositionIterations int
}

// NewWorld creates a world with the given gravity in world units per second
// squared
func NewWorld(gravity geom.Vec2) *World {
	return &World{
		b2:                 box2d.MakeB2World(vec(gravity)),
		VelocityIterations: DefaultVelocityIterations,
		PositionIterations: DefaultPositionIterations,
	}
}

// Step advances the simulation by dt seconds
func (w *World) Step(dt float64) {
	w.b2.Step(dt, w.VelocityIterations, w.PositionIterations)
}

func (w *World) Gravity() geom.Vec2 { return fromVec(w.b2.GetGravity()) }

func (w *World) SetGravity(g geom.Vec2) { w.b2.SetGravity(vec(g)) }

// BodyCount returns the number of bodies in the world
func (w *World) BodyCount() int { return w.b2.GetBodyCount() }

// BodyType selects how a body is simulated
type BodyType uint8

const (
	Static BodyType = iota
	Kinematic
	Dynamic
)

// BodyDef describes a body with a single box or circle fixture. A zero
// Radius means a box of HalfSize.
type BodyDef struct {
	Type     BodyType
	Position geom.Vec2
	Angle    float64 // degrees

	HalfSize geom.Vec2
	Radius   float64

	Density     float64
	Friction    float64
	Restitution float64
}

// Body is a rigid body living in a World
type Body struct {
	world *World
	b2    *box2d.B2Body
}

// CreateBody adds a body built from def to the world
func (w *World) CreateBody(def BodyDef) *Body {
	bd := box2d.MakeB2BodyDef()
	switch def.Type {
	case Static:
		bd.Type = box2d.B2BodyType.B2_staticBody
	case Kinematic:
		bd.Type = box2d.B2BodyType.B2_kinematicBody
	default:
		bd.Type = box2d.B2BodyType.B2_dynamicBody
	}
	bd.Position.Set(def.Position.X, def.Position.Y)
	bd.Angle = geom.DegToRad(def.Angle)

	body := w.b2.CreateBody(&bd)

	fd := box2d.MakeB2FixtureDef()
	if def.Radius > 0 {
		circle := box2d.MakeB2CircleShape()
		circle.M_radius = def.Radius
		fd.Shape = &circle
	} else {
		box := box2d.MakeB2PolygonShape()
		box.SetAsBox(def.HalfSize.X, def.HalfSize.Y)
		fd.Shape = &box
	}
	fd.Density = def.Density
	fd.Friction = def.Friction
	fd.Restitution = def.Restitution
	body.CreateFixtureFromDef(&fd)

	return &Body{world: w, b2: body}
}

// Position returns the body origin in world units
func (b *Body) Position() geom.Vec2 { return fromVec(b.b2.GetPosition()) }

// Angle returns the body rotation in degrees
func (b *Body) Angle() float64 { return geom.RadToDeg(b.b2.GetAngle()) }

func (b *Body) Velocity() geom.Vec2 { return fromVec(b.b2.GetLinearVelocity()) }

func (b *Body) SetVelocity(v geom.Vec2) { b.b2.SetLinearVelocity(vec(v)) }

// SetTransform teleports the body
func (b *Body) SetTransform(pos geom.Vec2, angle float64) {
	b.b2.SetTransform(vec(pos), geom.DegToRad(angle))
}

// ApplyImpulse applies an impulse at the body's centre of mass
func (b *Body) ApplyImpulse(impulse geom.Vec2) {
	b.b2.ApplyLinearImpulse(vec(impulse), b.b2.GetWorldCenter(), true)
}

// Destroy removes the body from its world. It is safe to call twice.
func (b *Body) Destroy() {
	if b.b2 == nil {
		return
	}
	b.world.b2.DestroyBody(b.b2)
	b.b2 = nil
}

func vec(v geom.Vec2) box2d.B2Vec2 { return box2d.MakeB2Vec2(v.X, v.Y) }

func fromVec(v box2d.B2Vec2) geom.Vec2 { return geom.Vec2{X: v.X, Y: v.Y} }
