package audio

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/effects"

	"github.com/1siamBot/stardust/engine/geom"
)

// pcm16 builds a mono 16-bit PCM WAV file
func pcm16(rate int, samples []int16) []byte {
	le := binary.LittleEndian
	data := make([]byte, 0, len(samples)*2)
	for _, s := range samples {
		data = le.AppendUint16(data, uint16(s))
	}

	var b []byte
	b = append(b, "RIFF"...)
	b = le.AppendUint32(b, uint32(36+len(data)))
	b = append(b, "WAVE"...)
	b = append(b, "fmt "...)
	b = le.AppendUint32(b, 16)
	b = le.AppendUint16(b, 1) // PCM
	b = le.AppendUint16(b, 1) // mono
	b = le.AppendUint32(b, uint32(rate))
	b = le.AppendUint32(b, uint32(rate*2))
	b = le.AppendUint16(b, 2)
	b = le.AppendUint16(b, 16)
	b = append(b, "data"...)
	b = le.AppendUint32(b, uint32(len(data)))
	return append(b, data...)
}

func ramp(n int) []int16 {
	s := make([]int16, n)
	for i := range s {
		s[i] = int16(i * 100)
	}
	return s
}

func mutedSystem() *System {
	return NewSystem(map[string]float64{"effects": 0.5}, log.New(io.Discard))
}

func TestVolumeManager(t *testing.T) {
	vm := NewVolumeManager(map[string]float64{
		MasterVolume: 0.5,
		"effects":    0.8,
		"music":      1.7,
		"voice":      -1,
	})

	tests := []struct {
		name     string
		get, eff float64
	}{
		{MasterVolume, 0.5, 0.5},
		{"effects", 0.8, 0.4},
		{"music", 1, 0.5},
		{"voice", 0, 0},
		{"unknown", 1, 0.5},
		{"", 1, 0.5},
	}
	for _, tt := range tests {
		if got := vm.Get(tt.name); tt.name != "" && got != tt.get {
			t.Errorf("Get(%q) = %v, want %v", tt.name, got, tt.get)
		}
		if got := vm.Effective(tt.name); math.Abs(got-tt.eff) > 1e-12 {
			t.Errorf("Effective(%q) = %v, want %v", tt.name, got, tt.eff)
		}
	}

	want := []string{"effects", MasterVolume, "music", "voice"}
	if got := vm.Names(); !slices.Equal(got, want) {
		t.Errorf("Names = %v", got)
	}
}

func TestWithGain(t *testing.T) {
	if v := withGain(nil, 0).(*effects.Volume); !v.Silent {
		t.Error("zero gain should be silent")
	}
	if v := withGain(nil, 0.25).(*effects.Volume); v.Silent || v.Volume != -2 {
		t.Errorf("gain 0.25 = %+v, want Volume -2", v)
	}
}

func TestListenerSpatial(t *testing.T) {
	l := Listener{Position: geom.V2(10, 0), Range: 20}

	tests := []struct {
		src       geom.Vec2
		gain, pan float64
	}{
		{geom.V2(10, 0), 1, 0},
		{geom.V2(20, 0), 0.5, 0.5},
		{geom.V2(0, 0), 0.5, -0.5},
		{geom.V2(10, 15), 0.25, 0},
		{geom.V2(30, 0), 0, 0},
		{geom.V2(-40, 0), 0, 0},
	}
	for _, tt := range tests {
		gain, pan := l.Spatial(tt.src)
		if math.Abs(gain-tt.gain) > 1e-12 || math.Abs(pan-tt.pan) > 1e-12 {
			t.Errorf("Spatial(%v) = %v, %v; want %v, %v", tt.src, gain, pan, tt.gain, tt.pan)
		}
	}

	l.Reset()
	if l.Position != (geom.Vec2{}) {
		t.Error("Reset did not recentre")
	}

	var unset Listener
	if gain, _ := unset.Spatial(geom.V2(DefaultHearingRange/2, 0)); gain != 0.5 {
		t.Errorf("default range gain = %v", gain)
	}
}

func TestLoadWAV(t *testing.T) {
	snd, err := LoadWAV(bytes.NewReader(pcm16(int(SampleRate), ramp(100))))
	if err != nil {
		t.Fatal(err)
	}
	if snd.Len() != 100 {
		t.Errorf("Len = %d, want 100", snd.Len())
	}
	if d := snd.Duration(); d != SampleRate.D(100) {
		t.Errorf("Duration = %v", d)
	}

	half, err := LoadWAV(bytes.NewReader(pcm16(int(SampleRate)/2, ramp(100))))
	if err != nil {
		t.Fatal(err)
	}
	if n := half.Len(); n < 190 || n > 210 {
		t.Errorf("resampled Len = %d, want about 200", n)
	}

	if _, err := LoadWAV(bytes.NewReader([]byte("not a wav file"))); err == nil {
		t.Error("garbage decoded")
	}
}

func TestMutedSystemIgnoresPlay(t *testing.T) {
	s := mutedSystem()
	snd, _ := LoadWAV(bytes.NewReader(pcm16(int(SampleRate), ramp(10))))

	if v := s.Play(snd, "effects"); v != nil {
		t.Error("muted system returned a voice")
	}
	if s.ActiveVoices() != 0 {
		t.Error("muted system tracked a voice")
	}
	var v *Voice
	if !v.Done() {
		t.Error("nil voice should report done")
	}
	v.Stop()
}

func TestVoicesFinishAndDrop(t *testing.T) {
	s := mutedSystem()
	s.enabled = true
	snd, err := LoadWAV(bytes.NewReader(pcm16(int(SampleRate), ramp(100))))
	if err != nil {
		t.Fatal(err)
	}

	short := s.Play(snd, "effects")
	stopped := s.Play(snd, "music")
	if s.PlayAt(snd, "effects", geom.V2(1000, 0)) != nil {
		t.Error("out of range sound should not play")
	}
	if s.ActiveVoices() != 2 {
		t.Fatalf("ActiveVoices = %d", s.ActiveVoices())
	}

	stopped.Stop()
	s.Update()
	if s.ActiveVoices() != 1 || short.Done() {
		t.Fatalf("after stop: voices %d, short done %v", s.ActiveVoices(), short.Done())
	}

	buf := make([][2]float64, 256)
	s.mixer.Stream(buf)
	if !short.Done() {
		t.Fatal("voice should finish once its samples are mixed")
	}
	s.Update()
	if s.ActiveVoices() != 0 {
		t.Errorf("ActiveVoices = %d after Update", s.ActiveVoices())
	}

	s.listener.Position = geom.V2(5, 5)
	s.ResetListener()
	if s.Listener().Position != (geom.Vec2{}) {
		t.Error("ResetListener did not recentre")
	}
}

func TestSynthesizeAndEncode(t *testing.T) {
	boom := Synthesize(NewBoomGenerator(SampleRate, 3), 300*time.Millisecond)
	if want := SampleRate.N(300 * time.Millisecond); boom.Len() != want {
		t.Fatalf("Len = %d, want %d", boom.Len(), want)
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "boom.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := boom.EncodeWAV(f); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	back, err := LoadWAV(f)
	if err != nil {
		t.Fatal(err)
	}
	if back.Len() != boom.Len() {
		t.Errorf("decoded Len = %d, want %d", back.Len(), boom.Len())
	}
}

func TestPopGeneratorFadesOut(t *testing.T) {
	g := NewPopGenerator(SampleRate, 900, 200, 100*time.Millisecond)
	buf := make([][2]float64, SampleRate.N(150*time.Millisecond))
	g.Stream(buf)

	var peak float64
	for _, s := range buf[:len(buf)/4] {
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak == 0 {
		t.Fatal("pop is silent")
	}
	for i, s := range buf[SampleRate.N(100*time.Millisecond):] {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d after the sweep = %v, want silence", i, s)
		}
	}
}
