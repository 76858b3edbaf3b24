// Package controller runs the sampling loop: acquire raw samples, convert
// them to physical quantities, classify against thresholds and dispatch the
// states to the indicator and diagnostic outputs.
package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/ericogr/greenhouse-controller/pkg/classify"
	"github.com/ericogr/greenhouse-controller/pkg/config"
	"github.com/ericogr/greenhouse-controller/pkg/indicator"
	"github.com/ericogr/greenhouse-controller/pkg/output"
	"github.com/ericogr/greenhouse-controller/pkg/sensor"
	"github.com/ericogr/greenhouse-controller/pkg/signal"
)

// OutputEntry pairs a diagnostic output with its publish interval.
type OutputEntry struct {
	Output     output.Output
	IntervalMs int
	last       time.Time
}

type Controller struct {
	sensor    sensor.Sensor
	indicator indicator.Indicator
	conv      signal.Converter
	therm     signal.Thermistor
	luxMeter  signal.LuxMeter
	policy    classify.Policy
	outputs   []*OutputEntry
}

func New(cfg config.Config, s sensor.Sensor, ind indicator.Indicator, outputs []*OutputEntry) *Controller {
	return &Controller{
		sensor:    s,
		indicator: ind,
		conv:      signal.NewConverter(cfg.Signal),
		therm:     signal.NewThermistor(cfg.Thermistor, cfg.Signal.SupplyVolts),
		luxMeter:  signal.NewLuxMeter(cfg.Lux, cfg.Signal.SupplyVolts),
		policy:    classify.NewPolicy(cfg.Thresholds),
		outputs:   outputs,
	}
}

// Cycle runs one acquire/convert/classify/dispatch pass. Channels are
// independent: a fault on one never affects the others, and a temperature
// reading outside the thermistor domain forces the heater to its safe
// default (off) instead of holding a stale state.
func (c *Controller) Cycle(now time.Time) (output.Snapshot, error) {
	readings, err := c.sensor.Read()
	if err != nil {
		return output.Snapshot{}, fmt.Errorf("read sensors: %w", err)
	}

	snap := output.Snapshot{Timestamp: now}
	var lightSeen, tempSeen, soilSeen bool

	for _, r := range readings {
		switch r.Channel {
		case sensor.ChannelLight:
			lightSeen = true
			snap.LightRaw = r.Raw
			est := c.luxMeter.Estimate(c.conv.Voltage(r.Raw))
			if est.Saturation == signal.SaturationNone {
				lux := est.Lux
				snap.Lux = &lux
			} else {
				snap.LuxSaturation = est.Saturation.String()
			}
			snap.TimeOfDay = c.policy.TimeOfDayFromEstimate(est)

		case sensor.ChannelTemperature:
			tempSeen = true
			snap.TemperatureRaw = r.Raw
			tc, err := c.therm.TemperatureC(c.conv.Voltage(r.Raw))
			if err != nil {
				snap.TemperatureFault = err.Error()
				snap.Heater = classify.HeaterOff
				log.Printf("temperature channel: %v", err)
			} else {
				t := tc
				snap.TemperatureC = &t
				snap.Heater = c.policy.Heater(tc)
			}

		case sensor.ChannelSoilMoisture:
			soilSeen = true
			snap.SoilRaw = r.Raw
			snap.Irrigation = c.policy.Irrigation(r.Raw)
		}
	}

	if lightSeen {
		if err := c.indicator.SetTimeOfDay(snap.TimeOfDay); err != nil {
			log.Printf("indicator time_of_day: %v", err)
		}
	}
	if tempSeen {
		if err := c.indicator.SetHeater(snap.Heater); err != nil {
			log.Printf("indicator heater: %v", err)
		}
	}
	if soilSeen {
		if err := c.indicator.SetIrrigation(snap.Irrigation); err != nil {
			log.Printf("indicator irrigation: %v", err)
		}
	}

	c.publishDue(now, snap)
	return snap, nil
}

// publishDue sends the snapshot to every output whose interval has elapsed.
// Publish errors are advisory: logged, never fed back into classification.
func (c *Controller) publishDue(now time.Time, snap output.Snapshot) {
	for _, e := range c.outputs {
		if !e.last.IsZero() && now.Sub(e.last) < time.Duration(e.IntervalMs)*time.Millisecond {
			continue
		}
		if err := e.Output.Publish(snap); err != nil {
			log.Printf("output publish error: %v", err)
			continue
		}
		e.last = now
	}
}

// Run samples at the given interval until stop closes. Read failures are
// logged and the loop carries on: every condition is per-cycle and the next
// sample may recover.
func (c *Controller) Run(stop <-chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if _, err := c.Cycle(time.Now()); err != nil {
		log.Printf("cycle error: %v", err)
	}
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			if _, err := c.Cycle(now); err != nil {
				log.Printf("cycle error: %v", err)
			}
		}
	}
}
