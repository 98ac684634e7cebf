package driver

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// Screenshot saves the last presented frame as a PNG in dir, scaled to the
// window size
func (p *Platform) Screenshot(dir string) (string, error) {
	last := p.screen.lastFrame
	if last == nil {
		return "", errors.New("no frame presented yet")
	}
	frame := image.NewRGBA(image.Rect(0, 0, p.screen.w, p.screen.h))
	last.ReadPixels(frame.Pix)

	ww, wh := ebiten.WindowSize()
	return saveScreenshot(dir, frame, image.Pt(ww, wh), time.Now())
}

// saveScreenshot writes img to a timestamped PNG in dir. A non-zero size
// different from the image's rescales it with nearest-neighbour sampling.
func saveScreenshot(dir string, img image.Image, size image.Point, now time.Time) (string, error) {
	if size.X > 0 && size.Y > 0 && size != img.Bounds().Size() {
		dst := image.NewRGBA(image.Rectangle{Max: size})
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = dst
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot dir: %w", err)
	}

	path := filepath.Join(dir, "screenshot-"+now.Format("20060102-150405.000")+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	return path, f.Close()
}
