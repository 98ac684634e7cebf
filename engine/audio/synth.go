package audio

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Synthesize renders d of a generator into a Sound
func Synthesize(s beep.Streamer, d time.Duration) *Sound {
	buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buf.Append(beep.Take(SampleRate.N(d), s))
	return &Sound{buffer: buf}
}

// EncodeWAV writes the clip as 16-bit stereo WAV
func (s *Sound) EncodeWAV(w io.WriteSeeker) error {
	if err := wav.Encode(w, s.streamer(), s.buffer.Format()); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	return nil
}

// BoomGenerator is low-passed noise under an exponential decay
type BoomGenerator struct {
	sr    beep.SampleRate
	rng   *rand.Rand
	pos   int
	last  float64
	decay float64 // seconds for the envelope to fall by 1/e
}

func NewBoomGenerator(sr beep.SampleRate, seed uint64) *BoomGenerator {
	return &BoomGenerator{
		sr:    sr,
		rng:   rand.New(rand.NewPCG(seed, seed)),
		decay: 0.12,
	}
}

func (g *BoomGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		noise := g.rng.Float64()*2 - 1
		// one-pole low pass keeps the rumble
		g.last += 0.08 * (noise - g.last)
		sample := 0.9 * math.Exp(-t/g.decay) * g.last * 4

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BoomGenerator) Err() error {
	return nil
}

// PopGenerator is a short downward sine sweep
type PopGenerator struct {
	sr   beep.SampleRate
	pos  int
	from float64
	to   float64
	dur  float64
}

func NewPopGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *PopGenerator {
	return &PopGenerator{sr: sr, from: from, to: to, dur: d.Seconds()}
}

func (g *PopGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		k := math.Min(t/g.dur, 1)
		// phase of an exponential sweep from g.from to g.to
		ratio := g.to / g.from
		phase := 2 * math.Pi * g.from * g.dur * (math.Pow(ratio, k) - 1) / math.Log(ratio)
		sample := 0.5 * (1 - k) * math.Sin(phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PopGenerator) Err() error {
	return nil
}
