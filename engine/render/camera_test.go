package render

import (
	"image/color"
	"testing"

	"github.com/1siamBot/stardust/engine/geom"
)

func TestCameraRoundTrip(t *testing.T) {
	cam := NewCamera(1920, 1080, 8)

	points := []geom.Vec2{
		{X: 0, Y: 0},
		{X: 8, Y: 4.5},
		{X: -8, Y: -4.5},
		{X: 3.25, Y: -1.75},
		{X: -123.5, Y: 77.125},
	}
	for _, p := range points {
		got := cam.ScreenToWorld(cam.WorldToScreen(p))
		if !got.ApproxEqual(p, 1e-9) {
			t.Errorf("round trip of %+v = %+v", p, got)
		}
	}
}

func TestCameraMapping(t *testing.T) {
	cam := NewCamera(1920, 1080, 8)

	if cam.PixelsPerUnit() != 120 {
		t.Fatalf("PixelsPerUnit = %v, want 120", cam.PixelsPerUnit())
	}

	tests := []struct {
		name  string
		world geom.Vec2
		want  geom.Vec2
	}{
		{"top-left", geom.V2(-8, 4.5), geom.V2(0, 0)},
		{"centre", geom.V2(0, 0), geom.V2(960, 540)},
		{"bottom-right", geom.V2(8, -4.5), geom.V2(1920, 1080)},
		{"world up is screen up", geom.V2(0, 1), geom.V2(960, 420)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cam.WorldToScreen(tt.world)
			if !got.ApproxEqual(tt.want, 1e-9) {
				t.Errorf("WorldToScreen(%+v) = %+v, want %+v", tt.world, got, tt.want)
			}
		})
	}
}

func TestCameraSetHalfSizeRecomputesScale(t *testing.T) {
	cam := NewCamera(1920, 1080, 8)
	cam.SetHalfSize(4)

	if cam.PixelsPerUnit() != 240 {
		t.Fatalf("PixelsPerUnit after zoom = %v, want 240", cam.PixelsPerUnit())
	}
	p := geom.V2(1.5, -2)
	if got := cam.ScreenToWorld(cam.WorldToScreen(p)); !got.ApproxEqual(p, 1e-9) {
		t.Errorf("round trip after zoom = %+v, want %+v", got, p)
	}
	// halving the half size doubles every offset from the centre
	if got, want := cam.WorldToScreen(geom.V2(1, 0)), geom.V2(1200, 540); !got.ApproxEqual(want, 1e-9) {
		t.Errorf("WorldToScreen after zoom = %+v, want %+v", got, want)
	}
}

func TestCameraPositionOffset(t *testing.T) {
	cam := NewCamera(1920, 1080, 8)
	cam.Position = geom.V2(2, 1)

	if got := cam.WorldToScreen(geom.V2(2, 1)); !got.ApproxEqual(geom.V2(960, 540), 1e-9) {
		t.Errorf("camera position should map to the screen centre, got %+v", got)
	}
	p := geom.V2(-3, 7)
	if got := cam.ScreenToWorld(cam.WorldToScreen(p)); !got.ApproxEqual(p, 1e-9) {
		t.Errorf("round trip with offset = %+v", got)
	}
}

func TestCameraSetLogicalSize(t *testing.T) {
	cam := NewCamera(1920, 1080, 8)
	cam.SetLogicalSize(1280, 720)

	if cam.PixelsPerUnit() != 80 {
		t.Errorf("PixelsPerUnit = %v, want 80", cam.PixelsPerUnit())
	}
	b := cam.VisibleBounds()
	if !b.Min().ApproxEqual(geom.V2(-8, -4.5), 1e-9) || !b.Size().ApproxEqual(geom.V2(16, 9), 1e-9) {
		t.Errorf("VisibleBounds = %+v", b)
	}
}

func TestLerpColour(t *testing.T) {
	a := color.RGBA{0, 0, 0, 255}
	b := color.RGBA{200, 100, 50, 0}

	if got := LerpColour(a, b, 0); got != a {
		t.Errorf("t=0: %v", got)
	}
	if got := LerpColour(a, b, 1); got != b {
		t.Errorf("t=1: %v", got)
	}
	if got := LerpColour(a, b, -0.5); got != a {
		t.Errorf("t<0 should clamp, got %v", got)
	}
	if got := LerpColour(a, b, 0.5); got != (color.RGBA{100, 50, 25, 128}) {
		t.Errorf("t=0.5: %v", got)
	}
}
