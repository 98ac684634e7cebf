package render

import (
	"math"

	"github.com/1siamBot/stardust/engine/geom"
)

// Camera maps world positions (Y up, world units) to screen positions
// (Y down, logical pixels) and back
type Camera struct {
	Position geom.Vec2 // world position of the view origin

	halfSize      float64 // half of the visible world width
	aspectRatio   float64
	pixelsPerUnit float64

	logicalW, logicalH int
}

// NewCamera creates a camera showing halfSize*2 world units across a
// logical output of w x h pixels
func NewCamera(w, h int, halfSize float64) *Camera {
	c := &Camera{}
	c.Initialise(w, h, halfSize)
	return c
}

// Initialise (re)binds the camera to a logical output size
func (c *Camera) Initialise(w, h int, halfSize float64) {
	c.logicalW = w
	c.logicalH = h
	c.halfSize = halfSize
	c.Refresh()
}

// Refresh recomputes the derived aspect ratio and scale. Call it after the
// logical output size changes.
func (c *Camera) Refresh() {
	if c.logicalH > 0 {
		c.aspectRatio = float64(c.logicalW) / float64(c.logicalH)
	}
	c.pixelsPerUnit = float64(c.logicalW) / (c.halfSize * 2)
}

// SetLogicalSize updates the output size and refreshes the cached factors
func (c *Camera) SetLogicalSize(w, h int) {
	c.logicalW = w
	c.logicalH = h
	c.Refresh()
}

func (c *Camera) HalfSize() float64      { return c.halfSize }
func (c *Camera) AspectRatio() float64   { return c.aspectRatio }
func (c *Camera) PixelsPerUnit() float64 { return c.pixelsPerUnit }

// SetHalfSize zooms the camera; the pixels-per-unit factor must follow
func (c *Camera) SetHalfSize(halfSize float64) {
	c.halfSize = halfSize
	c.pixelsPerUnit = float64(c.logicalW) / (c.halfSize * 2)
}

// WorldToScreen converts a world position to a logical pixel position
func (c *Camera) WorldToScreen(p geom.Vec2) geom.Vec2 {
	p = p.Sub(c.Position)
	p.X += c.halfSize
	p.Y -= c.halfSize / c.aspectRatio
	p = p.Scale(c.pixelsPerUnit)
	return geom.Vec2{X: p.X, Y: -p.Y}
}

// WorldToScreenPixel is WorldToScreen truncated to whole pixels
func (c *Camera) WorldToScreenPixel(p geom.Vec2) (int, int) {
	s := c.WorldToScreen(p)
	return int(s.X), int(s.Y)
}

// ScreenToWorld is the exact inverse of WorldToScreen
func (c *Camera) ScreenToWorld(s geom.Vec2) geom.Vec2 {
	w := geom.Vec2{X: s.X, Y: -s.Y}
	w = w.Scale(1 / c.pixelsPerUnit)
	w.X -= c.halfSize
	w.Y += c.halfSize / c.aspectRatio
	return w.Add(c.Position)
}

// WorldToPixels converts a world length to pixels
func (c *Camera) WorldToPixels(v geom.Vec2) geom.Vec2 {
	return v.Scale(c.pixelsPerUnit)
}

// VisibleBounds returns the world rectangle covered by the output, with
// Y of the rect being the bottom edge
func (c *Camera) VisibleBounds() geom.Rect {
	a := c.ScreenToWorld(geom.Vec2{})
	b := c.ScreenToWorld(geom.Vec2{X: float64(c.logicalW), Y: float64(c.logicalH)})
	return geom.Rect{
		X: math.Min(a.X, b.X),
		Y: math.Min(a.Y, b.Y),
		W: math.Abs(b.X - a.X),
		H: math.Abs(b.Y - a.Y),
	}
}
