package output

import (
	"time"

	"github.com/ericogr/greenhouse-controller/pkg/classify"
)

// Snapshot is the diagnostic record of one sampling cycle: raw samples,
// computed quantities where defined, and the classification states that were
// dispatched. Lux is nil while the light channel is saturated and
// TemperatureC is nil while the thermistor reading is out of range.
type Snapshot struct {
	Timestamp        time.Time                `json:"timestamp"`
	LightRaw         int                      `json:"light_raw"`
	TemperatureRaw   int                      `json:"temperature_raw"`
	SoilRaw          int                      `json:"soil_raw"`
	Lux              *float64                 `json:"lux,omitempty"`
	LuxSaturation    string                   `json:"lux_saturation,omitempty"`
	TemperatureC     *float64                 `json:"temperature_c,omitempty"`
	TemperatureFault string                   `json:"temperature_fault,omitempty"`
	TimeOfDay        classify.TimeOfDay       `json:"time_of_day"`
	Heater           classify.HeaterState     `json:"heater"`
	Irrigation       classify.IrrigationState `json:"irrigation"`
}

type Output interface {
	Publish(Snapshot) error
	Close() error
}

// helper constructors are in subpackages
