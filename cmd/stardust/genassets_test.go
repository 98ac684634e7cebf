package main

import (
	"image"
	"testing"

	"github.com/1siamBot/stardust/engine/assets"
	"github.com/1siamBot/stardust/engine/logging"
	"github.com/1siamBot/stardust/engine/vfs"
)

func TestGeneratedAssetsLoad(t *testing.T) {
	dir := t.TempDir()
	written, err := generateAssets(dir, 42)
	if err != nil {
		t.Fatal(err)
	}
	if len(written) != 4 {
		t.Fatalf("wrote %d files, want 4", len(written))
	}

	fsys := vfs.New()
	if err := fsys.MountDir(dir); err != nil {
		t.Fatal(err)
	}

	textures := []struct {
		name string
		size int
	}{
		{"textures/smoke.png", 64},
		{"textures/gear.dxt", 64},
	}
	for _, tt := range textures {
		data, err := fsys.ReadFile(tt.name)
		if err != nil {
			t.Fatal(err)
		}
		img, err := assets.DecodeImage(tt.name, data)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if img.Bounds() != image.Rect(0, 0, tt.size, tt.size) {
			t.Errorf("%s: bounds %v", tt.name, img.Bounds())
		}
	}

	res := &resources{logger: logging.Discard(), fs: fsys}
	for _, name := range []string{"sounds/boom.wav", "sounds/pop.wav"} {
		snd := res.sound(name)
		if snd == nil || snd.Len() == 0 {
			t.Errorf("%s did not load", name)
		}
	}
}

func TestSmokeFadesAtTheEdge(t *testing.T) {
	img := smokeImage(32, 0)
	if a := img.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	if a := img.RGBAAt(16, 16).A; a == 0 {
		t.Error("centre is transparent")
	}
}

func TestGearShape(t *testing.T) {
	img := gearImage(64, 12)
	plate := img.RGBAAt(0, 0)
	tests := []struct {
		x, y  int
		metal bool
	}{
		{32, 32, false}, // axle hole
		{58, 32, true},  // tooth at angle 0
		{57, 38, false}, // gap between teeth
		{32, 50, true},  // rim
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y) != plate; got != tt.metal {
			t.Errorf("pixel (%d,%d) metal = %v, want %v", tt.x, tt.y, got, tt.metal)
		}
	}
}
