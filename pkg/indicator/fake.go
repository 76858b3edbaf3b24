package indicator

import (
	"sync"

	"github.com/ericogr/greenhouse-controller/pkg/classify"
)

// Fake records the last state set per channel, for tests.
type Fake struct {
	mu         sync.Mutex
	TimeOfDay  classify.TimeOfDay
	Heater     classify.HeaterState
	Irrigation classify.IrrigationState
	Sets       int
}

func NewFake() *Fake { return &Fake{} }

func (f *Fake) SetTimeOfDay(d classify.TimeOfDay) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.TimeOfDay = d
	f.Sets++
	return nil
}

func (f *Fake) SetHeater(h classify.HeaterState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Heater = h
	f.Sets++
	return nil
}

func (f *Fake) SetIrrigation(i classify.IrrigationState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Irrigation = i
	f.Sets++
	return nil
}

func (f *Fake) Close() error { return nil }

// States returns a consistent view of the three recorded states.
func (f *Fake) States() (classify.TimeOfDay, classify.HeaterState, classify.IrrigationState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.TimeOfDay, f.Heater, f.Irrigation
}
