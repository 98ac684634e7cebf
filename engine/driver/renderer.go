package driver

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/stardust/engine/geom"
	"github.com/1siamBot/stardust/engine/render"
)

// screenRenderer draws onto the ebiten screen of the current Draw call and
// keeps a copy of the last presented frame for screenshots
type screenRenderer struct {
	screen    *ebiten.Image
	lastFrame *ebiten.Image
	w, h      int
}

func newScreenRenderer(w, h int) *screenRenderer {
	return &screenRenderer{w: w, h: h}
}

func (r *screenRenderer) Clear(c color.RGBA) {
	if r.screen != nil {
		r.screen.Fill(c)
	}
}

func (r *screenRenderer) DrawRect(rect geom.Rect, c color.RGBA) {
	if r.screen == nil {
		return
	}
	vector.DrawFilledRect(r.screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), c, false)
}

func (r *screenRenderer) DrawTexture(tex render.Texture, src *image.Rectangle, pos, scale geom.Vec2, rotation float64, mod color.RGBA) {
	t, ok := tex.(*Texture)
	if !ok || r.screen == nil {
		return
	}
	img := t.img
	if src != nil {
		img = img.SubImage(*src).(*ebiten.Image)
	}
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale.X, scale.Y)
	if rotation != 0 {
		op.GeoM.Rotate(geom.DegToRad(rotation))
	}
	op.GeoM.Translate(pos.X+w*scale.X/2, pos.Y+h*scale.Y/2)
	op.ColorScale.ScaleWithColor(mod)
	op.Filter = ebiten.FilterLinear
	r.screen.DrawImage(img, op)
}

func (r *screenRenderer) LogicalSize() (int, int) { return r.w, r.h }

// Present keeps the finished frame; ebiten shows the screen itself once
// Draw returns
func (r *screenRenderer) Present() {
	if r.screen == nil {
		return
	}
	if r.lastFrame == nil {
		r.lastFrame = ebiten.NewImage(r.w, r.h)
	}
	r.lastFrame.Clear()
	r.lastFrame.DrawImage(r.screen, nil)
}
