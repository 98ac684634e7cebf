// Package assets caches loaded resources by name and decodes the image
// formats the engine ships with.
package assets

import (
	"maps"
	"slices"
)

// Manager is a name-keyed cache of one asset kind. The optional release
// func runs whenever an asset leaves the cache.
type Manager[T any] struct {
	items   map[string]T
	release func(T)
}

func NewManager[T any](release func(T)) *Manager[T] {
	return &Manager[T]{items: make(map[string]T), release: release}
}

// Add stores v under name, releasing any asset it replaces
func (m *Manager[T]) Add(name string, v T) {
	if old, ok := m.items[name]; ok {
		m.drop(old)
	}
	m.items[name] = v
}

func (m *Manager[T]) Get(name string) (T, bool) {
	v, ok := m.items[name]
	return v, ok
}

func (m *Manager[T]) Has(name string) bool {
	_, ok := m.items[name]
	return ok
}

// Load returns the cached asset or builds, caches and returns it
func (m *Manager[T]) Load(name string, build func() (T, error)) (T, error) {
	if v, ok := m.items[name]; ok {
		return v, nil
	}
	v, err := build()
	if err != nil {
		var zero T
		return zero, err
	}
	m.items[name] = v
	return v, nil
}

func (m *Manager[T]) Remove(name string) {
	if v, ok := m.items[name]; ok {
		delete(m.items, name)
		m.drop(v)
	}
}

// Clear releases and forgets every asset
func (m *Manager[T]) Clear() {
	for _, v := range m.items {
		m.drop(v)
	}
	clear(m.items)
}

func (m *Manager[T]) Len() int { return len(m.items) }

// Names returns the cached names in sorted order
func (m *Manager[T]) Names() []string {
	return slices.Sorted(maps.Keys(m.items))
}

func (m *Manager[T]) drop(v T) {
	if m.release != nil {
		m.release(v)
	}
}
