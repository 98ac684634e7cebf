package systems

import (
	"cmp"
	"slices"

	"github.com/1siamBot/stardust/engine/core"
	"github.com/1siamBot/stardust/engine/geom"
	"github.com/1siamBot/stardust/engine/render"
)

// DrawSprites draws every visible sprite through cam, lowest ZOrder first.
// Sprites on the same layer keep spawn order. A sprite without a texture is
// drawn as a filled rectangle in its tint.
func DrawSprites(w *core.World, r render.Renderer, cam *render.Camera) {
	type item struct {
		tr *core.Transform
		sp *core.Sprite
	}
	var items []item
	for _, id := range w.Query(core.CompTransform, core.CompSprite) {
		sp := w.Get(id, core.CompSprite).(*core.Sprite)
		if !sp.Visible {
			continue
		}
		items = append(items, item{w.Get(id, core.CompTransform).(*core.Transform), sp})
	}
	slices.SortStableFunc(items, func(a, b item) int { return cmp.Compare(a.sp.ZOrder, b.sp.ZOrder) })

	for _, it := range items {
		size := it.sp.Size
		if it.tr.Scale != (geom.Vec2{}) {
			size = geom.Vec2{X: size.X * it.tr.Scale.X, Y: size.Y * it.tr.Scale.Y}
		}
		px := cam.WorldToPixels(size)
		dst := geom.CenteredRect(cam.WorldToScreen(it.tr.Position), px)

		if it.sp.Texture == nil {
			r.DrawRect(dst, it.sp.Tint)
			continue
		}
		scale := render.TextureScale(it.sp.Texture, it.sp.Area, px)
		// world rotation is counter-clockwise, screen rotation clockwise
		r.DrawTexture(it.sp.Texture, it.sp.Area, dst.Min(), scale, -it.tr.Rotation, it.sp.Tint)
	}
}
