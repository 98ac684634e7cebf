package core

import (
	"slices"
	"sync/atomic"
)

// EntityID is a unique identifier for game entities
type EntityID uint64

var entityCounter uint64

// NewEntityID generates a unique entity ID
func NewEntityID() EntityID {
	return EntityID(atomic.AddUint64(&entityCounter, 1))
}

// Component is a marker interface for all components
type Component interface {
	Type() ComponentType
}

// ComponentType identifies the type of component
type ComponentType uint32

const (
	CompTransform ComponentType = iota
	CompVelocity
	CompRotator
	CompSprite
	CompKeyboardControlled
	CompBody
	CompTag
	CompAnimation
	CompLifetime
	CompMax
)

// World holds all entities and their components. Entities belong to the
// scene that spawned them; the application clears the world whenever the
// current scene is unloaded.
type World struct {
	entities  map[EntityID]map[ComponentType]Component
	systems   []System
	toRemove  []EntityID
	TickCount uint64
}

// System processes entities each fixed tick
type System interface {
	Update(w *World, dt float64)
	Priority() int
}

// NewWorld creates an empty ECS world
func NewWorld() *World {
	return &World{
		entities: make(map[EntityID]map[ComponentType]Component),
	}
}

// Spawn creates a new entity with the given components and returns its ID
func (w *World) Spawn(comps ...Component) EntityID {
	id := NewEntityID()
	w.entities[id] = make(map[ComponentType]Component, len(comps))
	for _, c := range comps {
		w.entities[id][c.Type()] = c
	}
	return id
}

// Attach adds a component to an entity
func (w *World) Attach(id EntityID, c Component) {
	if comps, ok := w.entities[id]; ok {
		comps[c.Type()] = c
	}
}

// Detach removes a component from an entity
func (w *World) Detach(id EntityID, ct ComponentType) {
	if comps, ok := w.entities[id]; ok {
		delete(comps, ct)
	}
}

// Get returns a component for an entity, or nil
func (w *World) Get(id EntityID, ct ComponentType) Component {
	if comps, ok := w.entities[id]; ok {
		return comps[ct]
	}
	return nil
}

// Has checks if an entity has a component
func (w *World) Has(id EntityID, ct ComponentType) bool {
	if comps, ok := w.entities[id]; ok {
		_, exists := comps[ct]
		return exists
	}
	return false
}

// Alive reports whether id names an entity that has not been removed
func (w *World) Alive(id EntityID) bool {
	_, ok := w.entities[id]
	return ok
}

// Destroy marks an entity for removal at the end of the next Tick
func (w *World) Destroy(id EntityID) {
	w.toRemove = append(w.toRemove, id)
}

// Query returns all entity IDs that have ALL specified component types,
// in spawn order
func (w *World) Query(types ...ComponentType) []EntityID {
	var result []EntityID
	for id, comps := range w.entities {
		match := true
		for _, t := range types {
			if _, ok := comps[t]; !ok {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

// AddSystem registers a system
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	// Sort by priority (simple insertion)
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i].Priority() < w.systems[i-1].Priority() {
			w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
		}
	}
}

// Tick runs all systems once
func (w *World) Tick(dt float64) {
	for _, s := range w.systems {
		s.Update(w, dt)
	}
	w.flush()
	w.TickCount++
}

func (w *World) flush() {
	for _, id := range w.toRemove {
		if comps, ok := w.entities[id]; ok {
			releaseComponents(comps)
			delete(w.entities, id)
		}
	}
	w.toRemove = w.toRemove[:0]
}

// Clear destroys every entity immediately and drops the registered systems,
// which belong to the scene that added them
func (w *World) Clear() {
	for id, comps := range w.entities {
		releaseComponents(comps)
		delete(w.entities, id)
	}
	w.toRemove = w.toRemove[:0]
	w.systems = w.systems[:0]
	w.TickCount = 0
}

// Releaser is implemented by components that hold resources outside the
// world, such as physics bodies
type Releaser interface {
	Release()
}

func releaseComponents(comps map[ComponentType]Component) {
	for _, c := range comps {
		if r, ok := c.(Releaser); ok {
			r.Release()
		}
	}
}

// EntityCount returns the number of alive entities
func (w *World) EntityCount() int {
	return len(w.entities)
}
