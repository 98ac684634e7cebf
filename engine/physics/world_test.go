package physics

import (
	"testing"

	"github.com/1siamBot/stardust/engine/geom"
)

func TestDynamicBodyFalls(t *testing.T) {
	w := NewWorld(geom.V2(0, -9.81))
	crate := w.CreateBody(BodyDef{
		Type:     Dynamic,
		Position: geom.V2(0, 10),
		HalfSize: geom.V2(0.5, 0.5),
		Density:  1,
	})

	for i := 0; i < 60; i++ {
		w.Step(1.0 / 60)
	}

	if y := crate.Position().Y; y >= 10 {
		t.Errorf("crate did not fall: y = %v", y)
	}
	if v := crate.Velocity().Y; v >= 0 {
		t.Errorf("crate velocity = %v, want downwards", v)
	}
}

func TestStaticBodyStays(t *testing.T) {
	w := NewWorld(geom.V2(0, -9.81))
	ground := w.CreateBody(BodyDef{
		Type:     Static,
		Position: geom.V2(0, -5),
		HalfSize: geom.V2(10, 0.5),
		Angle:    90,
	})

	for i := 0; i < 30; i++ {
		w.Step(1.0 / 60)
	}

	if p := ground.Position(); !p.ApproxEqual(geom.V2(0, -5), 1e-9) {
		t.Errorf("static body moved to %v", p)
	}
	if a := ground.Angle(); a < 89.999 || a > 90.001 {
		t.Errorf("Angle = %v, want 90", a)
	}
}

func TestDestroyBody(t *testing.T) {
	w := NewWorld(geom.Vec2{})
	b := w.CreateBody(BodyDef{Type: Dynamic, Radius: 1, Density: 1})
	if w.BodyCount() != 1 {
		t.Fatalf("BodyCount = %d", w.BodyCount())
	}
	b.Destroy()
	b.Destroy()
	if w.BodyCount() != 0 {
		t.Errorf("BodyCount after destroy = %d", w.BodyCount())
	}
}
