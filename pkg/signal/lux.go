package signal

import (
	"math"

	"github.com/ericogr/greenhouse-controller/pkg/config"
)

// Saturation distinguishes a pinned LDR reading from an in-range estimate.
// A pinned reading is a valid extreme, not a fault: it maps straight to the
// dark or bright end of the classification range.
type Saturation int

const (
	SaturationNone Saturation = iota
	SaturationDark
	SaturationBright
)

func (s Saturation) String() string {
	switch s {
	case SaturationDark:
		return "dark"
	case SaturationBright:
		return "bright"
	default:
		return "none"
	}
}

// LuxEstimate is the result of one illuminance estimation. Lux is only
// meaningful when Saturation is SaturationNone.
type LuxEstimate struct {
	Lux        float64
	Saturation Saturation
}

// LuxMeter models an LDR read through a resistive divider against
// ReferenceResistor. RL10 is the LDR resistance at 10 lux in kilo-ohms.
type LuxMeter struct {
	Gamma             float64
	RL10              float64
	ReferenceResistor float64
	SupplyVolts       float64
}

func NewLuxMeter(cfg config.LuxConfig, supplyVolts float64) LuxMeter {
	return LuxMeter{
		Gamma:             cfg.Gamma,
		RL10:              cfg.RL10,
		ReferenceResistor: cfg.ReferenceResistor,
		SupplyVolts:       supplyVolts,
	}
}

// Estimate inverts the divider and applies the photoresistor power law.
// Voltages at the rails never reach the inversion (it would divide by zero);
// they are reported as saturation and bypass threshold comparison entirely.
func (m LuxMeter) Estimate(voltage float64) LuxEstimate {
	if voltage <= 0 {
		return LuxEstimate{Saturation: SaturationDark}
	}
	if voltage >= m.SupplyVolts {
		return LuxEstimate{Saturation: SaturationBright}
	}
	r := m.ReferenceResistor * voltage / (1 - voltage/m.SupplyVolts)
	lux := math.Pow(m.RL10*1000*math.Pow(10, m.Gamma)/r, 1/m.Gamma)
	return LuxEstimate{Lux: lux}
}
