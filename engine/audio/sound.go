package audio

import (
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Sound is a decoded clip held in memory at the output sample rate
type Sound struct {
	buffer *beep.Buffer
}

// LoadWAV decodes a WAV stream and resamples it to the engine's rate
func LoadWAV(r io.Reader) (*Sound, error) {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != SampleRate {
		s = beep.Resample(4, format.SampleRate, SampleRate, streamer)
	}
	format.SampleRate = SampleRate

	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	return &Sound{buffer: buf}, nil
}

// Len returns the clip length in samples
func (s *Sound) Len() int { return s.buffer.Len() }

func (s *Sound) Duration() time.Duration {
	return s.buffer.Format().SampleRate.D(s.buffer.Len())
}

func (s *Sound) streamer() beep.StreamSeeker {
	return s.buffer.Streamer(0, s.buffer.Len())
}
