// Package indicator drives the discrete status outputs (LED lines). The
// controller hands it classification states; how a state is rendered (which
// line, steady or blinking) is this layer's business.
package indicator

import "github.com/ericogr/greenhouse-controller/pkg/classify"

type Indicator interface {
	SetTimeOfDay(classify.TimeOfDay) error
	SetHeater(classify.HeaterState) error
	SetIrrigation(classify.IrrigationState) error
	Close() error
}

// Noop discards every state. Used for headless and simulation runs.
type Noop struct{}

func NewNoop() Indicator { return Noop{} }

func (Noop) SetTimeOfDay(classify.TimeOfDay) error { return nil }

func (Noop) SetHeater(classify.HeaterState) error { return nil }

func (Noop) SetIrrigation(classify.IrrigationState) error { return nil }

func (Noop) Close() error { return nil }
