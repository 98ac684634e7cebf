package core

import (
	"math"
	"slices"
	"testing"

	"github.com/1siamBot/stardust/engine/geom"
	"github.com/1siamBot/stardust/engine/input"
)

func TestGameLoopCarriesLeftover(t *testing.T) {
	gl := &GameLoop{FixedStep: 0.01}

	var steps []float64
	step := func(dt float64) { steps = append(steps, dt) }

	gl.Accumulate(0.020)
	first := gl.Steps(step)
	gl.Accumulate(0.015)
	second := gl.Steps(step)

	if first != 2 || second != 1 || len(steps) != 3 {
		t.Fatalf("fixed steps = %d+%d, want 2+1", first, second)
	}
	for _, dt := range steps {
		if dt != 0.01 {
			t.Errorf("step dt = %v, want 0.01", dt)
		}
	}
	if got := gl.Accumulator(); math.Abs(got-0.005) > 1e-9 {
		t.Errorf("leftover = %v, want 0.005", got)
	}
}

func TestGameLoopZeroOrManySteps(t *testing.T) {
	gl := &GameLoop{FixedStep: 0.01}
	count := 0
	step := func(float64) { count++ }

	gl.Accumulate(0.004)
	if n := gl.Steps(step); n != 0 {
		t.Errorf("short frame ran %d steps", n)
	}
	gl.Accumulate(0.05)
	if n := gl.Steps(step); n != 5 {
		t.Errorf("long frame ran %d steps, want 5", n)
	}
	if got := gl.Accumulator(); math.Abs(got-0.004) > 1e-9 {
		t.Errorf("leftover = %v, want 0.004", got)
	}
	if count != 5 {
		t.Errorf("step called %d times", count)
	}
}

func TestGameLoopKeepsLongFrames(t *testing.T) {
	gl := &GameLoop{FixedStep: 0.01}
	gl.Accumulate(1)
	if n := gl.Steps(func(float64) {}); n < 99 || n > 100 {
		t.Errorf("one second frame ran %d steps, want 100", n)
	}
}

func TestWorldQueryAndDestroy(t *testing.T) {
	w := NewWorld()
	a := w.Spawn(&Transform{}, &Velocity{geom.V2(1, 0)})
	b := w.Spawn(&Transform{})
	c := w.Spawn(&Transform{}, &Velocity{})

	if got := w.Query(CompTransform, CompVelocity); !slices.Equal(got, []EntityID{a, c}) {
		t.Errorf("Query = %v, want [%d %d]", got, a, c)
	}
	if !w.Has(b, CompTransform) || w.Has(b, CompVelocity) {
		t.Error("Has reported wrong components for b")
	}

	w.Detach(a, CompVelocity)
	if w.Get(a, CompVelocity) != nil {
		t.Error("Detach left the component")
	}

	w.Destroy(b)
	if !w.Alive(b) {
		t.Error("Destroy should defer removal to Tick")
	}
	w.Tick(0.01)
	if w.Alive(b) || w.EntityCount() != 2 {
		t.Errorf("after Tick: alive(b)=%v count=%d", w.Alive(b), w.EntityCount())
	}
}

type releaseCounter struct{ n *int }

func (r releaseCounter) Type() ComponentType { return CompTag }
func (r releaseCounter) Release()            { *r.n++ }

type orderSystem struct {
	prio int
	log  *[]int
}

func (s orderSystem) Update(*World, float64) { *s.log = append(*s.log, s.prio) }
func (s orderSystem) Priority() int          { return s.prio }

func TestWorldClear(t *testing.T) {
	w := NewWorld()
	released := 0
	w.Spawn(releaseCounter{&released})
	w.Spawn(releaseCounter{&released})
	w.Spawn(&Transform{})
	var order []int
	w.AddSystem(orderSystem{1, &order})

	w.Clear()

	if w.EntityCount() != 0 {
		t.Errorf("EntityCount = %d after Clear", w.EntityCount())
	}
	if released != 2 {
		t.Errorf("released %d components, want 2", released)
	}
	w.Tick(0.01)
	if len(order) != 0 {
		t.Error("systems should be dropped by Clear")
	}
}

func TestWorldSystemPriority(t *testing.T) {
	w := NewWorld()
	var order []int
	w.AddSystem(orderSystem{20, &order})
	w.AddSystem(orderSystem{5, &order})
	w.AddSystem(orderSystem{10, &order})

	w.Tick(0.01)
	if !slices.Equal(order, []int{5, 10, 20}) {
		t.Errorf("system order = %v", order)
	}
}

func TestFindTagged(t *testing.T) {
	w := NewWorld()
	w.Spawn(&Tag{Name: "crate"})
	gear := w.Spawn(&Tag{Name: "gear"})

	id, ok := FindTagged(w, "gear")
	if !ok || id != gear {
		t.Errorf("FindTagged = %d, %v", id, ok)
	}
	if _, ok := FindTagged(w, "missing"); ok {
		t.Error("found an entity that does not exist")
	}
}

func TestEventBus(t *testing.T) {
	eb := NewEventBus()
	var got []string
	eb.On(EvtKeyDown, func(e Event) {
		got = append(got, "down:"+e.Key.String())
		if e.Key == input.KeyEscape {
			eb.Emit(Event{Type: EvtQuit})
		}
	})
	eb.On(EvtQuit, func(Event) { got = append(got, "quit") })

	eb.Emit(Event{Type: EvtKeyDown, Key: input.KeySpace})
	eb.Emit(Event{Type: EvtTextInput, Text: "x"})
	eb.Emit(Event{Type: EvtKeyDown, Key: input.KeyEscape})
	eb.Dispatch()

	want := []string{"down:Space", "down:Escape", "quit"}
	if !slices.Equal(got, want) {
		t.Errorf("dispatched %v, want %v", got, want)
	}
	if eb.Pending() != 0 {
		t.Errorf("Pending = %d after Dispatch", eb.Pending())
	}
}

func TestEventTypeString(t *testing.T) {
	if EvtWindowMoved.String() != "window-moved" {
		t.Errorf("String = %q", EvtWindowMoved.String())
	}
	if EventType(999).String() != "unknown" {
		t.Error("out of range type should be unknown")
	}
}
