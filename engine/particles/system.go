package particles

import (
	"math/rand/v2"
	"time"

	"github.com/1siamBot/stardust/engine/geom"
	"github.com/1siamBot/stardust/engine/render"
)

// System owns a particle pool and simulates it. It is not safe for
// concurrent use; Update and Render are expected to run on the loop thread.
type System struct {
	pool   []Particle
	cursor int
	active activeSet

	// slots found dead during Update, removed after the pass
	expired []int

	gravity geom.Vec2
	rng     *rand.Rand
}

// Option configures a System
type Option func(*System)

// WithCapacity sets the pool size (DefaultCapacity otherwise)
func WithCapacity(n int) Option {
	return func(s *System) {
		if n > 0 {
			s.pool = make([]Particle, n)
		}
	}
}

// WithRand sets the random source used to sample emission ranges
func WithRand(r *rand.Rand) Option {
	return func(s *System) { s.rng = r }
}

// WithGravity sets the acceleration applied to gravity-affected particles
func WithGravity(g geom.Vec2) Option {
	return func(s *System) { s.gravity = g }
}

// NewSystem allocates the pool. The first emission goes into the last slot.
func NewSystem(opts ...Option) *System {
	s := &System{}
	for _, opt := range opts {
		opt(s)
	}
	if s.pool == nil {
		s.pool = make([]Particle, DefaultCapacity)
	}
	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	s.cursor = len(s.pool) - 1
	s.active = newActiveSet(len(s.pool))
	return s
}

func (s *System) Capacity() int          { return len(s.pool) }
func (s *System) ActiveCount() int       { return s.active.len() }
func (s *System) Gravity() geom.Vec2     { return s.gravity }
func (s *System) SetGravity(g geom.Vec2) { s.gravity = g }

// Particle returns the pool slot at index i for inspection
func (s *System) Particle(i int) *Particle { return &s.pool[i] }

// Emit writes a new particle into the slot under the cursor, replacing
// whatever was there, and moves the cursor to the next-oldest slot
func (s *System) Emit(spec EmitSpec) {
	slot := s.cursor
	p := &s.pool[slot]

	p.Position = spec.Position
	p.Rotation = spec.Rotation

	p.Velocity.X = s.uniform(spec.MinVelocity.X, spec.MaxVelocity.X)
	p.Velocity.Y = s.uniform(spec.MinVelocity.Y, spec.MaxVelocity.Y)
	p.VelocityDecayRate = spec.VelocityDecayRate

	p.AngularVelocity = s.uniform(spec.MinAngularVelocity, spec.MaxAngularVelocity)
	p.AngularVelocityDecayRate = spec.AngularVelocityDecayRate

	p.AffectedByGravity = spec.AffectedByGravity

	p.Size.X = s.uniform(spec.MinSize.X, spec.MaxSize.X)
	if spec.KeepAsSquare {
		p.Size.Y = p.Size.X
	} else {
		p.Size.Y = s.uniform(spec.MinSize.Y, spec.MaxSize.Y)
	}
	p.SizeDecayRate = spec.SizeDecayRate

	p.CurrentColour = spec.StartColour
	p.StartColour = spec.StartColour
	p.EndColour = spec.EndColour
	p.Texture = spec.Texture
	p.TextureArea = spec.TextureArea

	p.Lifetime = s.uniform(spec.MinLifetime, spec.MaxLifetime)
	p.LifetimeRemaining = p.Lifetime

	p.Active = true
	s.active.insert(slot)

	s.cursor = (s.cursor + len(s.pool) - 1) % len(s.pool)
}

// Update ages and integrates every live particle by dt seconds. A particle
// whose lifetime ran out on an earlier update is retired here instead.
func (s *System) Update(dt float64) {
	s.expired = s.expired[:0]

	for _, slot := range s.active.dense {
		p := &s.pool[slot]
		if p.LifetimeRemaining <= 0 {
			p.Active = false
		}
		if !p.Active {
			s.expired = append(s.expired, slot)
			continue
		}

		p.LifetimeRemaining -= dt
		p.Velocity = p.Velocity.Scale(1 + p.VelocityDecayRate*dt)
		p.AngularVelocity *= 1 + p.AngularVelocityDecayRate*dt

		if p.AffectedByGravity {
			p.Velocity = p.Velocity.Add(s.gravity.Scale(dt))
		}

		p.Position = p.Position.Add(p.Velocity.Scale(dt))
		p.Rotation += p.AngularVelocity * dt
		p.Size = p.Size.Scale(1 + p.SizeDecayRate*dt)

		p.CurrentColour = render.LerpColour(p.EndColour, p.StartColour, p.LifeFraction())
	}

	for _, slot := range s.expired {
		s.active.remove(slot)
	}
}

// KillAllParticles retires every live particle. Calling it again is a no-op.
func (s *System) KillAllParticles() {
	for _, slot := range s.active.dense {
		s.pool[slot].Active = false
	}
	s.active.clear()
}

// RepositionAll moves every live particle by offset
func (s *System) RepositionAll(offset geom.Vec2) {
	for _, slot := range s.active.dense {
		p := &s.pool[slot]
		p.Position = p.Position.Add(offset)
	}
}

// ResizeAll scales every live particle's size by factor
func (s *System) ResizeAll(factor float64) {
	for _, slot := range s.active.dense {
		p := &s.pool[slot]
		p.Size = p.Size.Scale(factor)
	}
}

// Each calls fn for every live particle
func (s *System) Each(fn func(p *Particle)) {
	for _, slot := range s.active.dense {
		if p := &s.pool[slot]; p.Active {
			fn(p)
		}
	}
}

func (s *System) uniform(lo, hi float64) float64 {
	if lo == hi {
		return lo
	}
	return lo + (hi-lo)*s.rng.Float64()
}
