package core

import "github.com/1siamBot/stardust/engine/input"

// Event is a platform event polled once per frame
type Event struct {
	Type EventType
	Tick uint64

	// X, Y carry the window position for EvtWindowMoved and the new size
	// for EvtWindowResized
	X, Y int

	Key        input.Key // EvtKeyDown, EvtKeyUp
	Text       string    // EvtTextInput, or the name for EvtControllerAdded
	Controller int       // EvtControllerAdded, EvtControllerRemoved
}

type EventType uint16

const (
	EvtQuit EventType = iota
	EvtWindowResized
	EvtWindowMinimised
	EvtWindowMaximised
	EvtWindowMoved
	EvtFocusLost
	EvtFocusGained
	EvtKeyDown
	EvtKeyUp
	EvtTextInput
	EvtControllerAdded
	EvtControllerRemoved
)

var eventNames = [...]string{
	EvtQuit:              "quit",
	EvtWindowResized:     "window-resized",
	EvtWindowMinimised:   "window-minimised",
	EvtWindowMaximised:   "window-maximised",
	EvtWindowMoved:       "window-moved",
	EvtFocusLost:         "focus-lost",
	EvtFocusGained:       "focus-gained",
	EvtKeyDown:           "key-down",
	EvtKeyUp:             "key-up",
	EvtTextInput:         "text-input",
	EvtControllerAdded:   "controller-added",
	EvtControllerRemoved: "controller-removed",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int {
	return len(eb.queue)
}

// Dispatch processes all queued events in emission order. Events emitted by
// a handler are delivered in the same call.
func (eb *EventBus) Dispatch() {
	for i := 0; i < len(eb.queue); i++ {
		e := eb.queue[i]
		for _, h := range eb.listeners[e.Type] {
			h(e)
		}
	}
	eb.queue = eb.queue[:0]
}
