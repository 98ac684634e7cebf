package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/1siamBot/stardust/engine/assets"
	"github.com/1siamBot/stardust/engine/audio"
	"github.com/1siamBot/stardust/engine/logging"
)

var genAssetsCmd = &cobra.Command{
	Use:   "genassets [dir]",
	Short: "Generate the sandbox textures and sounds",
	Long: `Procedurally generate every asset the sandbox scenes load:

  textures/smoke.png  soft noisy puff for the fountain
  textures/gear.dxt   DXT1 compressed gear
  sounds/boom.wav     burst sound
  sounds/pop.wav      firework pop

The directory defaults to ./assets.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "assets"
		if len(args) == 1 {
			dir = args[0]
		}
		logger := logging.Stderr(logLevel("info")).Client
		written, err := generateAssets(dir, flagSeed)
		if err != nil {
			return err
		}
		for _, p := range written {
			logger.Info("generated", "path", p)
		}
		return nil
	},
}

// generateAssets writes the sandbox assets under dir and returns the paths
// written
func generateAssets(dir string, seed uint64) ([]string, error) {
	var written []string
	save := func(name string, write func(f *os.File) error) error {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
		f, err := os.Create(p)
		if err != nil {
			return err
		}
		if err := write(f); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		written = append(written, p)
		return nil
	}

	steps := []struct {
		name  string
		write func(f *os.File) error
	}{
		{"textures/smoke.png", func(f *os.File) error {
			return png.Encode(f, smokeImage(64, float64(seed%1000)))
		}},
		{"textures/gear.dxt", func(f *os.File) error {
			_, err := bytes.NewReader(assets.EncodeDXT1(gearImage(64, 12))).WriteTo(f)
			return err
		}},
		{"sounds/boom.wav", func(f *os.File) error {
			return audio.Synthesize(audio.NewBoomGenerator(audio.SampleRate, seed), 600*time.Millisecond).EncodeWAV(f)
		}},
		{"sounds/pop.wav", func(f *os.File) error {
			pop := audio.NewPopGenerator(audio.SampleRate, 1200, 180, 180*time.Millisecond)
			return audio.Synthesize(pop, 200*time.Millisecond).EncodeWAV(f)
		}},
	}
	for _, s := range steps {
		if err := save(s.name, s.write); err != nil {
			return written, err
		}
	}
	return written, nil
}

// smokeImage is a white puff whose alpha is a radial falloff broken up by
// fractal noise
func smokeImage(size int, seed float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	for y := range size {
		for x := range size {
			dx, dy := (float64(x)+0.5-c)/c, (float64(y)+0.5-c)/c
			falloff := clamp01(1 - math.Sqrt(dx*dx+dy*dy))
			n := fbm(float64(x)/12, float64(y)/12, 4, 0.5, seed)
			a := clamp01(falloff * falloff * (0.6 + 0.8*n))
			v := uint8(200 + 55*n)
			img.SetRGBA(x, y, color.RGBA{v, v, v, uint8(a * 255)})
		}
	}
	return img
}

// gearImage is a light gear with teeth on a dark plate
func gearImage(size, teeth int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	plate := color.RGBA{24, 24, 32, 255}
	metal := color.RGBA{220, 220, 210, 255}
	for y := range size {
		for x := range size {
			dx, dy := float64(x)+0.5-c, float64(y)+0.5-c
			r := math.Hypot(dx, dy) / c
			angle := math.Atan2(dy, dx)
			outer := 0.78
			if math.Cos(angle*float64(teeth)) > 0.3 {
				outer = 0.95
			}
			px := plate
			if r < outer && r > 0.22 {
				px = metal
			}
			img.SetRGBA(x, y, px)
		}
	}
	return img
}

// ---- noise ----

func fbm(x, y float64, octaves int, persistence, seed float64) float64 {
	total, amp, freq, maxV := 0.0, 1.0, 1.0, 0.0
	for range octaves {
		total += valueNoise(x*freq+seed*17.3, y*freq+seed*31.7) * amp
		maxV += amp
		amp *= persistence
		freq *= 2
	}
	return total / maxV
}

func valueNoise(x, y float64) float64 {
	ix, iy := int(math.Floor(x)), int(math.Floor(y))
	fx, fy := x-math.Floor(x), y-math.Floor(y)
	fx = fx * fx * (3 - 2*fx)
	fy = fy * fy * (3 - 2*fy)
	top := lerp(hash2(ix, iy), hash2(ix+1, iy), fx)
	bottom := lerp(hash2(ix, iy+1), hash2(ix+1, iy+1), fx)
	return lerp(top, bottom, fy)
}

func hash2(x, y int) float64 {
	h := x*374761393 + y*668265263
	h = (h ^ (h >> 13)) * 1274126177
	h = h ^ (h >> 16)
	return float64(h&0x7FFFFFFF) / float64(0x7FFFFFFF)
}

func lerp(a, b, t float64) float64 { return a*(1-t) + b*t }

func clamp01(v float64) float64 { return math.Max(0, math.Min(1, v)) }
