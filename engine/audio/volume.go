package audio

import (
	"maps"
	"math"
	"slices"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// MasterVolume is the volume every other named volume is scaled by
const MasterVolume = "master"

// VolumeManager holds named volumes in [0, 1]. Unknown names play at full
// volume.
type VolumeManager struct {
	volumes map[string]float64
}

func NewVolumeManager(initial map[string]float64) *VolumeManager {
	vm := &VolumeManager{volumes: map[string]float64{MasterVolume: 1}}
	for name, v := range initial {
		vm.Set(name, v)
	}
	return vm
}

// Set stores v for name, clamped to [0, 1]
func (vm *VolumeManager) Set(name string, v float64) {
	vm.volumes[name] = min(max(v, 0), 1)
}

func (vm *VolumeManager) Get(name string) float64 {
	if v, ok := vm.volumes[name]; ok {
		return v
	}
	return 1
}

// Effective returns the volume of name scaled by the master volume
func (vm *VolumeManager) Effective(name string) float64 {
	if name == MasterVolume || name == "" {
		return vm.Get(MasterVolume)
	}
	return vm.Get(MasterVolume) * vm.Get(name)
}

// Names returns the configured volume names in sorted order
func (vm *VolumeManager) Names() []string {
	return slices.Sorted(maps.Keys(vm.volumes))
}

// withGain wraps s so it plays at a linear gain
func withGain(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
