package signal

import (
	"fmt"
	"math"

	"github.com/ericogr/greenhouse-controller/pkg/config"
)

const (
	nominalTempK = 298.15 // 25 C, the R0 calibration point
	kelvinOffset = 273.15
)

// Thermistor models an NTC thermistor wired between supply and the sense
// node, with FixedResistor from the sense node to ground.
type Thermistor struct {
	Beta          float64
	R0            float64
	FixedResistor float64
	SupplyVolts   float64
}

func NewThermistor(cfg config.ThermistorConfig, supplyVolts float64) Thermistor {
	return Thermistor{
		Beta:          cfg.Beta,
		R0:            cfg.R0,
		FixedResistor: cfg.FixedResistor,
		SupplyVolts:   supplyVolts,
	}
}

// TemperatureC inverts the divider to recover the thermistor resistance and
// applies the Beta equation. A sense voltage pinned at either rail has no
// defined resistance (division by zero or a negative result), so it reports
// ErrVoltageOutOfRange instead of a nonsense temperature.
func (t Thermistor) TemperatureC(voltage float64) (float64, error) {
	if voltage <= 0 || voltage >= t.SupplyVolts {
		return 0, fmt.Errorf("thermistor sense %.3fV: %w", voltage, ErrVoltageOutOfRange)
	}
	rth := t.FixedResistor * (t.SupplyVolts/voltage - 1)
	invT := 1/nominalTempK + math.Log(rth/t.R0)/t.Beta
	if invT <= 0 {
		// within float ulps of the rail the recovered resistance is so
		// small the Beta equation has no physical solution (temperature
		// below absolute zero)
		return 0, fmt.Errorf("thermistor sense %.3fV: %w", voltage, ErrVoltageOutOfRange)
	}
	return 1/invT - kelvinOffset, nil
}
