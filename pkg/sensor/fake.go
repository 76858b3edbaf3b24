package sensor

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ericogr/greenhouse-controller/pkg/config"
)

// FakeSensor produces plausible greenhouse raws without hardware. Light and
// temperature wander around mid-scale, soil drifts slowly so the irrigation
// indicator changes state now and then. A fixed fake_seed makes a run
// reproducible; seed 0 picks a time-based one.
type FakeSensor struct {
	inputs []channelInput
	adcMax int
	soil   int
	rng    *rand.Rand
	mu     sync.Mutex
}

func NewFakeSensor(cfg config.Config) (Sensor, error) {
	seed := cfg.FakeSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &FakeSensor{
		inputs: channelInputs(cfg.Acquisition),
		adcMax: cfg.Signal.ADCMax,
		soil:   cfg.Signal.ADCMax / 2,
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

func (f *FakeSensor) Read() ([]Reading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	out := make([]Reading, 0, len(f.inputs))
	for _, ci := range f.inputs {
		var raw int
		switch ci.channel {
		case ChannelSoilMoisture:
			f.soil += f.rng.Intn(21) - 11 // slight dry-out bias
			f.soil = clamp(f.soil, 0, f.adcMax)
			raw = f.soil
		default:
			raw = f.adcMax/4 + f.rng.Intn(f.adcMax/2+1)
		}
		out = append(out, Reading{Channel: ci.channel, Raw: raw, Timestamp: now})
	}
	return out, nil
}

func (f *FakeSensor) Close() error { return nil }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
