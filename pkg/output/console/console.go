package console

import (
	"fmt"
	"time"

	"github.com/ericogr/greenhouse-controller/pkg/output"
)

type ConsoleOutput struct{}

func NewConsole() output.Output { return &ConsoleOutput{} }

func (c *ConsoleOutput) Publish(s output.Snapshot) error {
	ts := s.Timestamp.Format(time.RFC3339)
	if s.Lux != nil {
		fmt.Printf("%s light raw=%d lux=%.1f time_of_day=%s\n", ts, s.LightRaw, *s.Lux, s.TimeOfDay)
	} else {
		fmt.Printf("%s light raw=%d lux=saturated_%s time_of_day=%s\n", ts, s.LightRaw, s.LuxSaturation, s.TimeOfDay)
	}
	if s.TemperatureC != nil {
		fmt.Printf("%s temperature raw=%d temp_c=%.1f heater=%s\n", ts, s.TemperatureRaw, *s.TemperatureC, s.Heater)
	} else {
		fmt.Printf("%s temperature raw=%d temp_c=out_of_range heater=%s\n", ts, s.TemperatureRaw, s.Heater)
	}
	fmt.Printf("%s soil raw=%d irrigation=%s\n", ts, s.SoilRaw, s.Irrigation)
	return nil
}

func (c *ConsoleOutput) Close() error { return nil }
