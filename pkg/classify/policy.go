package classify

import (
	"github.com/ericogr/greenhouse-controller/pkg/config"
	"github.com/ericogr/greenhouse-controller/pkg/signal"
)

// Policy holds the calibrated thresholds. All methods are pure: the same
// inputs classify the same way on every cycle.
type Policy struct {
	HeaterOnBelowC float64
	LuxNightMax    float64
	LuxBrightMin   float64
	SoilDryBelow   int
}

func NewPolicy(cfg config.ThresholdConfig) Policy {
	return Policy{
		HeaterOnBelowC: cfg.HeaterOnBelowC,
		LuxNightMax:    cfg.LuxNightMax,
		LuxBrightMin:   cfg.LuxBrightMin,
		SoilDryBelow:   cfg.SoilDry,
	}
}

func (p Policy) Heater(tempC float64) HeaterState {
	if tempC < p.HeaterOnBelowC {
		return HeaterOn
	}
	return HeaterOff
}

// TimeOfDay partitions the lux axis into three contiguous intervals:
// [0, LuxNightMax) night, [LuxNightMax, LuxBrightMin) normal,
// [LuxBrightMin, inf) bright.
func (p Policy) TimeOfDay(lux float64) TimeOfDay {
	switch {
	case lux < p.LuxNightMax:
		return Night
	case lux >= p.LuxBrightMin:
		return BrightDay
	default:
		return NormalDay
	}
}

// TimeOfDayFromEstimate maps a saturated reading straight to the matching
// end of the range, bypassing the threshold comparison; only in-range
// estimates are classified by value.
func (p Policy) TimeOfDayFromEstimate(e signal.LuxEstimate) TimeOfDay {
	switch e.Saturation {
	case signal.SaturationDark:
		return Night
	case signal.SaturationBright:
		return BrightDay
	default:
		return p.TimeOfDay(e.Lux)
	}
}

func (p Policy) Irrigation(raw int) IrrigationState {
	if raw < p.SoilDryBelow {
		return SoilDry
	}
	return SoilSufficient
}
