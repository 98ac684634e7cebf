package systems

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/1siamBot/stardust/engine/core"
	"github.com/1siamBot/stardust/engine/geom"
	"github.com/1siamBot/stardust/engine/input"
	"github.com/1siamBot/stardust/engine/physics"
	"github.com/1siamBot/stardust/engine/render"
)

func near(a, b geom.Vec2) bool { return a.ApproxEqual(b, 1e-9) }

func TestMovementIntegrates(t *testing.T) {
	w := core.NewWorld()
	tr := &core.Transform{Position: geom.V2(1, 1)}
	gear := &core.Transform{Rotation: 350}
	w.Spawn(tr, &core.Velocity{Vec2: geom.V2(2, -4)})
	w.Spawn(gear, &core.Rotator{Torque: 90})
	w.AddSystem(&MovementSystem{})

	w.Tick(0.5)

	if !near(tr.Position, geom.V2(2, -1)) {
		t.Errorf("position = %v", tr.Position)
	}
	if math.Abs(gear.Rotation-35) > 1e-9 {
		t.Errorf("rotation = %v, want wrapped 35", gear.Rotation)
	}
}

func TestMovementBounds(t *testing.T) {
	w := core.NewWorld()
	tr := &core.Transform{}
	w.Spawn(tr, &core.Velocity{Vec2: geom.V2(100, -100)})
	w.AddSystem(&MovementSystem{Bounds: &geom.Rect{X: -5, Y: -2, W: 10, H: 4}})

	w.Tick(1)
	if !near(tr.Position, geom.V2(5, -2)) {
		t.Errorf("position = %v, want clamped (5,-2)", tr.Position)
	}
}

func TestKeyboardControlled(t *testing.T) {
	in := input.NewState()
	var snap input.Snapshot
	snap.Keys[input.KeyRight] = true
	snap.Keys[input.KeyW] = true
	in.Refresh(&snap)

	w := core.NewWorld()
	tr := &core.Transform{}
	vel := &core.Velocity{}
	w.Spawn(tr, vel, &core.KeyboardControlled{Speed: 2})
	w.AddSystem(&MovementSystem{Input: in})

	w.Tick(1)
	d := math.Sqrt2
	if !near(vel.Vec2, geom.V2(d, d)) {
		t.Errorf("velocity = %v, want diagonal of length 2", vel.Vec2)
	}
	if !near(tr.Position, geom.V2(d, d)) {
		t.Errorf("position = %v", tr.Position)
	}

	in.Refresh(&input.Snapshot{})
	w.Tick(1)
	if vel.Vec2 != (geom.Vec2{}) {
		t.Errorf("velocity = %v after keys released", vel.Vec2)
	}
}

func TestAnimation(t *testing.T) {
	frames := []image.Rectangle{
		image.Rect(0, 0, 16, 16),
		image.Rect(16, 0, 32, 16),
		image.Rect(32, 0, 48, 16),
	}
	tests := []struct {
		name      string
		loop      bool
		elapsed   float64
		wantFrame int
		finished  bool
	}{
		{"first", false, 0.05, 0, false},
		{"second", false, 0.15, 1, false},
		{"held on last", false, 1, 2, true},
		{"loops", true, 0.35, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := core.NewWorld()
			anim := &core.Animation{Frames: frames, FPS: 10, Loop: tt.loop}
			sprite := &core.Sprite{}
			w.Spawn(anim, sprite)
			w.AddSystem(&AnimationSystem{})

			w.Tick(tt.elapsed)

			if anim.Frame != tt.wantFrame || anim.Finished != tt.finished {
				t.Errorf("frame %d finished %v, want %d %v", anim.Frame, anim.Finished, tt.wantFrame, tt.finished)
			}
			if sprite.Area == nil || *sprite.Area != frames[tt.wantFrame] {
				t.Errorf("sprite area = %v", sprite.Area)
			}
		})
	}
}

func TestLifetime(t *testing.T) {
	w := core.NewWorld()
	short := w.Spawn(&core.Lifetime{Remaining: 0.5})
	long := w.Spawn(&core.Lifetime{Remaining: 2})
	w.AddSystem(&LifetimeSystem{})

	w.Tick(0.25)
	if !w.Alive(short) {
		t.Fatal("short-lived entity died early")
	}
	w.Tick(0.25)
	if w.Alive(short) || !w.Alive(long) {
		t.Errorf("alive: short %v long %v", w.Alive(short), w.Alive(long))
	}
}

func TestPhysicsSyncsTransforms(t *testing.T) {
	pw := physics.NewWorld(geom.V2(0, -10))
	body := pw.CreateBody(physics.BodyDef{
		Type:     physics.Dynamic,
		Position: geom.V2(0, 10),
		HalfSize: geom.V2(0.5, 0.5),
		Density:  1,
	})

	w := core.NewWorld()
	tr := &core.Transform{Position: geom.V2(0, 10)}
	w.Spawn(tr, &core.Body{Body: body})
	w.AddSystem(&PhysicsSystem{World: pw})

	for range 30 {
		w.Tick(1.0 / 60)
	}
	if tr.Position.Y >= 10 {
		t.Errorf("transform did not follow the falling body: %v", tr.Position)
	}
	if !near(tr.Position, body.Position()) {
		t.Errorf("transform %v, body %v", tr.Position, body.Position())
	}

	w.Clear()
	if pw.BodyCount() != 0 {
		t.Errorf("bodies left after clearing the world: %d", pw.BodyCount())
	}
}

type drawCall struct {
	rect     geom.Rect
	tint     color.RGBA
	rotation float64
	textured bool
}

type recorder struct {
	render.Discard
	calls []drawCall
}

func (r *recorder) DrawRect(rect geom.Rect, c color.RGBA) {
	r.calls = append(r.calls, drawCall{rect: rect, tint: c})
}

func (r *recorder) DrawTexture(tex render.Texture, src *image.Rectangle, pos, scale geom.Vec2, rotation float64, mod color.RGBA) {
	w, h := tex.Size()
	if src != nil {
		w, h = src.Dx(), src.Dy()
	}
	r.calls = append(r.calls, drawCall{
		rect:     geom.Rect{X: pos.X, Y: pos.Y, W: float64(w) * scale.X, H: float64(h) * scale.Y},
		tint:     mod,
		rotation: rotation,
		textured: true,
	})
}

type texture struct{ w, h int }

func (t texture) Size() (int, int) { return t.w, t.h }

func TestDrawSprites(t *testing.T) {
	cam := render.NewCamera(1920, 1080, 8)
	w := core.NewWorld()

	w.Spawn(&core.Transform{Rotation: 30}, &core.Sprite{
		Texture: texture{64, 64}, Size: geom.V2(1, 1), Tint: render.White, ZOrder: 2, Visible: true,
	})
	w.Spawn(&core.Transform{Position: geom.V2(1, 0), Scale: geom.V2(2, 2)}, &core.Sprite{
		Size: geom.V2(1, 1), Tint: render.Red, ZOrder: 1, Visible: true,
	})
	w.Spawn(&core.Transform{}, &core.Sprite{Size: geom.V2(1, 1), Visible: false})

	r := &recorder{}
	DrawSprites(w, r, cam)

	if len(r.calls) != 2 {
		t.Fatalf("drew %d sprites, want 2", len(r.calls))
	}
	// lower ZOrder first: the untextured red square, scaled by 2
	if got := r.calls[0]; got.textured || got.tint != render.Red || got.rect != (geom.Rect{X: 960, Y: 420, W: 240, H: 240}) {
		t.Errorf("first call = %+v", got)
	}
	if got := r.calls[1]; !got.textured || got.rotation != -30 || got.rect != (geom.Rect{X: 900, Y: 480, W: 120, H: 120}) {
		t.Errorf("second call = %+v", got)
	}
}
