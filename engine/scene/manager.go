package scene

import "fmt"

// State is a scene's place in its lifecycle
type State uint8

const (
	Pending State = iota
	Active
	Unloading
	Destroyed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Active:
		return "active"
	case Unloading:
		return "unloading"
	case Destroyed:
		return "destroyed"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

type entry struct {
	scene Scene
	state State
}

// Manager is the ordered queue of scenes not yet unloaded. The front is the
// current scene; at most one scene is ever Active.
type Manager struct {
	queue []entry
}

func NewManager() *Manager { return &Manager{} }

// Push appends a Pending scene to the back of the queue
func (m *Manager) Push(s Scene) {
	m.queue = append(m.queue, entry{scene: s, state: Pending})
}

// Current returns the front scene, or nil when the queue is empty
func (m *Manager) Current() Scene {
	if len(m.queue) == 0 {
		return nil
	}
	return m.queue[0].scene
}

// State returns the lifecycle state of the front scene
func (m *Manager) State() State {
	if len(m.queue) == 0 {
		return Destroyed
	}
	return m.queue[0].state
}

func (m *Manager) Len() int      { return len(m.queue) }
func (m *Manager) IsEmpty() bool { return len(m.queue) == 0 }

// Load calls OnLoad on the front scene if it is Pending. The scene becomes
// Active only when OnLoad succeeds; on error it stays Pending.
func (m *Manager) Load() error {
	if len(m.queue) == 0 {
		return nil
	}
	front := &m.queue[0]
	if front.state != Pending {
		return nil
	}
	if err := front.scene.OnLoad(); err != nil {
		return fmt.Errorf("load scene %q: %w", front.scene.Name(), err)
	}
	front.state = Active
	return nil
}

// Unload calls OnUnload on the front scene if it is Active and pops it.
// A front scene that never loaded is popped without OnUnload.
func (m *Manager) Unload() Scene {
	if len(m.queue) == 0 {
		return nil
	}
	front := &m.queue[0]
	if front.state == Active {
		front.state = Unloading
		front.scene.OnUnload()
	}
	front.state = Destroyed
	return m.Pop()
}

// Pop removes the front scene without calling any hook
func (m *Manager) Pop() Scene {
	if len(m.queue) == 0 {
		return nil
	}
	s := m.queue[0].scene
	m.queue[0] = entry{}
	m.queue = m.queue[1:]
	return s
}
