// Package signal converts raw ADC samples into physical quantities: voltage
// scaling, thermistor temperature and photoresistor illuminance.
package signal

import (
	"errors"

	"github.com/ericogr/greenhouse-controller/pkg/config"
)

// ErrVoltageOutOfRange marks a sense voltage at or beyond the divider's
// representable domain. The next cycle re-samples, so it is never fatal.
var ErrVoltageOutOfRange = errors.New("voltage outside transfer function domain")

// Converter scales raw ADC samples into volts.
type Converter struct {
	SupplyVolts float64
	ADCMax      int
}

func NewConverter(cfg config.SignalConfig) Converter {
	return Converter{SupplyVolts: cfg.SupplyVolts, ADCMax: cfg.ADCMax}
}

// Voltage maps raw in [0, ADCMax] linearly onto [0, SupplyVolts].
func (c Converter) Voltage(raw int) float64 {
	return float64(raw) * c.SupplyVolts / float64(c.ADCMax)
}
