package audio

import "github.com/1siamBot/stardust/engine/geom"

// DefaultHearingRange is the world distance at which positional sounds fall silent
const DefaultHearingRange = 30.0

// Listener is the point positional sounds are heard from
type Listener struct {
	Position geom.Vec2
	Range    float64
}

// Reset recentres the listener
func (l *Listener) Reset() { l.Position = geom.Vec2{} }

// Spatial returns the gain and stereo pan for a sound at src. Gain falls
// linearly to zero at the hearing range; pan follows the horizontal offset.
func (l *Listener) Spatial(src geom.Vec2) (gain, pan float64) {
	r := l.Range
	if r <= 0 {
		r = DefaultHearingRange
	}
	d := src.Sub(l.Position)
	dist := d.Len()
	if dist >= r {
		return 0, 0
	}
	return 1 - dist/r, min(max(d.X/r, -1), 1)
}
