package assets

import (
	"encoding/binary"
	"image"
	"image/color"
	"slices"
)

// EncodeDXT1 compresses img into a .dxt file. Every 4x4 block takes the
// per-channel minimum and maximum as endpoints; alpha is dropped.
func EncodeDXT1(img image.Image) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	bw, bh := (w+3)/4, (h+3)/4

	out := EncodeDXTHeader("DXT1", w, h)
	out = slices.Grow(out, bw*bh*8)

	var block [16]color.RGBA
	for by := range bh {
		for bx := range bw {
			for i := range block {
				// edge blocks repeat the last row or column
				x := min(bx*4+i%4, w-1)
				y := min(by*4+i/4, h-1)
				block[i] = color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			}
			out = appendDXT1Block(out, &block)
		}
	}
	return out
}

func appendDXT1Block(out []byte, block *[16]color.RGBA) []byte {
	lo, hi := block[0], block[0]
	for _, c := range block[1:] {
		lo = color.RGBA{min(lo.R, c.R), min(lo.G, c.G), min(lo.B, c.B), 255}
		hi = color.RGBA{max(hi.R, c.R), max(hi.G, c.G), max(hi.B, c.B), 255}
	}
	c0, c1 := pack565(hi), pack565(lo)
	if c0 < c1 {
		c0, c1 = c1, c0
	}
	out = binary.LittleEndian.AppendUint16(out, c0)
	out = binary.LittleEndian.AppendUint16(out, c1)

	// c0 == c1 selects the three-colour mode, where index 0 is still c0
	var indices uint32
	if c0 != c1 {
		p0, p1 := unpack565(c0), unpack565(c1)
		palette := [4]color.RGBA{p0, p1, mix(p0, p1, 2, 1), mix(p0, p1, 1, 2)}
		for i, c := range block {
			indices |= uint32(nearest(&palette, c)) << (2 * i)
		}
	}
	return binary.LittleEndian.AppendUint32(out, indices)
}

func pack565(c color.RGBA) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

func unpack565(v uint16) color.RGBA {
	r := uint8(v >> 11 & 0x1f)
	g := uint8(v >> 5 & 0x3f)
	b := uint8(v & 0x1f)
	return color.RGBA{r<<3 | r>>2, g<<2 | g>>4, b<<3 | b>>2, 255}
}

// mix returns (a*wa + b*wb) / (wa + wb) per channel
func mix(a, b color.RGBA, wa, wb int) color.RGBA {
	f := func(x, y uint8) uint8 { return uint8((int(x)*wa + int(y)*wb) / (wa + wb)) }
	return color.RGBA{f(a.R, b.R), f(a.G, b.G), f(a.B, b.B), 255}
}

func nearest(palette *[4]color.RGBA, c color.RGBA) int {
	best, bestDist := 0, -1
	for i, p := range palette {
		dr, dg, db := int(p.R)-int(c.R), int(p.G)-int(c.G), int(p.B)-int(c.B)
		if d := dr*dr + dg*dg + db*db; bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
