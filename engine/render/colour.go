package render

import (
	"image/color"
	"math"
)

// Named colours used by the engine and sandbox scenes
var (
	Black   = color.RGBA{0, 0, 0, 255}
	White   = color.RGBA{255, 255, 255, 255}
	Red     = color.RGBA{255, 0, 0, 255}
	Lime    = color.RGBA{0, 255, 0, 255}
	Blue    = color.RGBA{0, 0, 255, 255}
	Yellow  = color.RGBA{255, 255, 0, 255}
	Magenta = color.RGBA{255, 0, 255, 255}
	Cyan    = color.RGBA{0, 255, 255, 255}
	Silver  = color.RGBA{192, 192, 192, 255}
	Grey    = color.RGBA{128, 128, 128, 255}
	Maroon  = color.RGBA{128, 0, 0, 255}
	Olive   = color.RGBA{128, 128, 0, 255}
	Green   = color.RGBA{0, 128, 0, 255}
	Teal    = color.RGBA{0, 128, 128, 255}
	Navy    = color.RGBA{0, 0, 128, 255}
	Purple  = color.RGBA{128, 0, 128, 255}
	Orange  = color.RGBA{255, 128, 0, 255}
	Brown   = color.RGBA{150, 75, 0, 255}
	Pink    = color.RGBA{255, 192, 203, 255}
	Tan     = color.RGBA{210, 180, 140, 255}
)

// LerpColour blends from a (t = 0) to b (t = 1). t is clamped to [0, 1].
func LerpColour(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return color.RGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	return uint8(math.Round(v))
}
