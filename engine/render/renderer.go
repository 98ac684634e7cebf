// Package render defines the drawing contract the engine core needs from a
// backend, plus the camera transform and colour helpers shared by scenes.
package render

import (
	"image"
	"image/color"

	"github.com/1siamBot/stardust/engine/geom"
)

// Texture is a drawable image owned by the backend
type Texture interface {
	Size() (w, h int)
}

// Renderer is the draw surface handed to scenes once per frame.
//
// DrawTexture draws src (the whole texture when nil) with its top-left
// corner at pos, scaled by scale and rotated by rotation degrees around the
// centre of the destination. mod multiplies the texture colour for this
// draw only; textures carry no modulation state of their own.
type Renderer interface {
	Clear(c color.RGBA)
	DrawRect(r geom.Rect, c color.RGBA)
	DrawTexture(tex Texture, src *image.Rectangle, pos, scale geom.Vec2, rotation float64, mod color.RGBA)
	LogicalSize() (w, h int)
	Present()
}

// Discard is a Renderer that draws nothing
type Discard struct {
	W, H int
}

func (Discard) Clear(color.RGBA)                                                                 {}
func (Discard) DrawRect(geom.Rect, color.RGBA)                                                   {}
func (Discard) DrawTexture(Texture, *image.Rectangle, geom.Vec2, geom.Vec2, float64, color.RGBA) {}
func (d Discard) LogicalSize() (int, int)                                                        { return d.W, d.H }
func (Discard) Present()                                                                         {}

// TextureScale returns the scale that stretches tex (or its src region) to size
func TextureScale(tex Texture, src *image.Rectangle, size geom.Vec2) geom.Vec2 {
	if src != nil {
		return geom.Vec2{X: size.X / float64(src.Dx()), Y: size.Y / float64(src.Dy())}
	}
	w, h := tex.Size()
	return geom.Vec2{X: size.X / float64(w), Y: size.Y / float64(h)}
}
