package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"slices"
	"testing"
)

func TestManager(t *testing.T) {
	var released []string
	m := NewManager(func(s string) { released = append(released, s) })

	m.Add("smoke", "smoke-v1")
	m.Add("spark", "spark-v1")
	m.Add("smoke", "smoke-v2")

	if v, ok := m.Get("smoke"); !ok || v != "smoke-v2" {
		t.Errorf("Get = %q, %v", v, ok)
	}
	if !slices.Equal(released, []string{"smoke-v1"}) {
		t.Errorf("released after replace = %v", released)
	}
	if got := m.Names(); !slices.Equal(got, []string{"smoke", "spark"}) {
		t.Errorf("Names = %v", got)
	}

	m.Remove("spark")
	m.Remove("spark")
	if m.Has("spark") || m.Len() != 1 {
		t.Error("spark still cached")
	}

	m.Clear()
	if m.Len() != 0 {
		t.Error("Clear left assets behind")
	}
	if !slices.Equal(released, []string{"smoke-v1", "spark-v1", "smoke-v2"}) {
		t.Errorf("released = %v", released)
	}
}

func TestManagerLoad(t *testing.T) {
	m := NewManager[int](nil)
	builds := 0
	build := func() (int, error) { builds++; return 7, nil }

	for range 3 {
		v, err := m.Load("seven", build)
		if err != nil || v != 7 {
			t.Fatalf("Load = %d, %v", v, err)
		}
	}
	if builds != 1 {
		t.Errorf("built %d times", builds)
	}

	boom := errors.New("boom")
	if _, err := m.Load("bad", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Errorf("err = %v", err)
	}
	if m.Has("bad") {
		t.Error("failed load was cached")
	}
}

func TestDecodePNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.Set(2, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"tile.png", "TILE.PNG", "unnamed"} {
		img, err := DecodeImage(name, buf.Bytes())
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
			t.Errorf("%s: bounds %v", name, img.Bounds())
		}
		r, g, b, _ := img.At(2, 1).RGBA()
		if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
			t.Errorf("%s: pixel = %d %d %d", name, r>>8, g>>8, b>>8)
		}
	}
}

func TestDecodeDXT1(t *testing.T) {
	// one 4x4 block: color0 pure red in RGB565, color1 black, every index 0
	block := []byte{0x00, 0xF8, 0x00, 0x00, 0, 0, 0, 0}
	data := append(EncodeDXTHeader("DXT1", 4, 4), block...)

	img, err := DecodeImage("red.dxt", data)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	for y := range 4 {
		for x := range 4 {
			c := img.(*image.RGBA).RGBAAt(x, y)
			if c.R < 248 || c.G != 0 || c.B != 0 {
				t.Fatalf("pixel (%d,%d) = %v, want red", x, y, c)
			}
		}
	}
}

func TestEncodeDXT1RoundTrip(t *testing.T) {
	// 6x5 so the right and bottom blocks are partial
	src := image.NewRGBA(image.Rect(0, 0, 6, 5))
	for y := range 5 {
		for x := range 6 {
			if (x+y)%2 == 0 {
				src.SetRGBA(x, y, color.RGBA{255, 255, 255, 255})
			} else {
				src.SetRGBA(x, y, color.RGBA{0, 0, 0, 255})
			}
		}
	}
	data := EncodeDXT1(src)
	if want := dxtHeaderSize + 2*2*8; len(data) != want {
		t.Fatalf("encoded %d bytes, want %d", len(data), want)
	}

	img, err := DecodeImage("checker.dxt", data)
	if err != nil {
		t.Fatal(err)
	}
	got := img.(*image.RGBA)
	for y := range 5 {
		for x := range 6 {
			want := src.RGBAAt(x, y)
			if c := got.RGBAAt(x, y); c.R != want.R || c.G != want.G || c.B != want.B {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, c, want)
			}
		}
	}
}

func TestPack565(t *testing.T) {
	tests := []color.RGBA{
		{255, 255, 255, 255},
		{0, 0, 0, 255},
		{255, 0, 0, 255},
		{0, 255, 0, 255},
	}
	for _, c := range tests {
		if got := unpack565(pack565(c)); got != c {
			t.Errorf("unpack565(pack565(%v)) = %v", c, got)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		unknown bool
	}{
		{"notes.txt", []byte("hello"), true},
		{"short.dxt", []byte("DXT1"), true},
		{"bad.dxt", EncodeDXTHeader("DXT9", 4, 4), true},
		{"empty.dxt", EncodeDXTHeader("DXT1", 0, 4), false},
		{"truncated.dxt", append(EncodeDXTHeader("DXT5", 8, 8), make([]byte, 16)...), false},
		{"huge.dxt", append(EncodeDXTHeader("DXT5", 0xFFFFFFFF, 0xFFFFFFFF), make([]byte, 16)...), false},
		{"wide.dxt", append(EncodeDXTHeader("DXT1", MaxDXTSize+1, 4), make([]byte, 8)...), false},
		{"broken.png", []byte("\x89PNG\r\n\x1a\nnot really"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeImage(tt.name, tt.data)
			if err == nil {
				t.Fatal("expected an error")
			}
			if errors.Is(err, ErrUnknownFormat) != tt.unknown {
				t.Errorf("err = %v, unknown format = %v", err, tt.unknown)
			}
		})
	}
}
