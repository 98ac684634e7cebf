// Package audio plays sounds through a beep mixer. The game thread queues
// voices and calls Update once per frame; mixing runs on the speaker's own
// goroutine.
package audio

import (
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/1siamBot/stardust/engine/geom"
)

// SampleRate is the output rate every sound is resampled to
const SampleRate = beep.SampleRate(44100)

// Voice is one playing instance of a Sound
type Voice struct {
	Group string
	ctrl  *beep.Ctrl
	done  atomic.Bool
}

// Done reports whether the voice finished or was stopped
func (v *Voice) Done() bool { return v == nil || v.done.Load() }

// Stop silences the voice; the mixer drops it on its next pass
func (v *Voice) Stop() {
	if v == nil || v.done.Load() {
		return
	}
	speaker.Lock()
	v.ctrl.Streamer = nil
	speaker.Unlock()
	v.done.Store(true)
}

// System owns the mixer, the named volumes and the listener
type System struct {
	logger   *log.Logger
	mixer    *beep.Mixer
	volumes  *VolumeManager
	listener Listener
	voices   []*Voice
	enabled  bool
}

func NewSystem(volumes map[string]float64, logger *log.Logger) *System {
	return &System{
		logger:   logger,
		mixer:    &beep.Mixer{},
		volumes:  NewVolumeManager(volumes),
		listener: Listener{Range: DefaultHearingRange},
	}
}

// Init opens the audio device. Without a device the system stays muted and
// Play becomes a no-op.
func (s *System) Init() {
	if s.enabled {
		return
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		s.logger.Warn("audio device unavailable, sound muted", "err", err)
		return
	}
	speaker.Play(s.mixer)
	s.enabled = true
	s.logger.Debug("audio initialised", "sample_rate", int(SampleRate))
}

// Enabled reports whether sound reaches a device
func (s *System) Enabled() bool { return s.enabled }

// Play starts snd at the volume of group
func (s *System) Play(snd *Sound, group string) *Voice {
	return s.play(snd, group, s.volumes.Effective(group), 0)
}

// PlayAt starts snd at a world position relative to the listener
func (s *System) PlayAt(snd *Sound, group string, pos geom.Vec2) *Voice {
	gain, pan := s.listener.Spatial(pos)
	if gain <= 0 {
		return nil
	}
	return s.play(snd, group, s.volumes.Effective(group)*gain, pan)
}

func (s *System) play(snd *Sound, group string, gain, pan float64) *Voice {
	if !s.enabled || snd == nil {
		return nil
	}
	v := &Voice{Group: group}
	panned := &effects.Pan{Streamer: withGain(snd.streamer(), gain), Pan: pan}
	v.ctrl = &beep.Ctrl{Streamer: beep.Seq(panned, beep.Callback(func() { v.done.Store(true) }))}

	speaker.Lock()
	s.mixer.Add(v.ctrl)
	speaker.Unlock()
	s.voices = append(s.voices, v)
	return v
}

// Update forgets voices that have finished playing
func (s *System) Update() {
	live := s.voices[:0]
	for _, v := range s.voices {
		if !v.Done() {
			live = append(live, v)
		}
	}
	clear(s.voices[len(live):])
	s.voices = live
}

// ResetListener recentres the listener
func (s *System) ResetListener() { s.listener.Reset() }

func (s *System) Listener() *Listener     { return &s.listener }
func (s *System) Volumes() *VolumeManager { return s.volumes }
func (s *System) ActiveVoices() int       { return len(s.voices) }

// StopAll silences every voice
func (s *System) StopAll() {
	for _, v := range s.voices {
		v.Stop()
	}
	s.voices = s.voices[:0]
}

// Close stops all sound. The speaker itself stays open for the process.
func (s *System) Close() {
	if !s.enabled {
		return
	}
	s.StopAll()
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.enabled = false
}
