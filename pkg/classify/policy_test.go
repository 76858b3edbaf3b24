package classify

import (
	"math"
	"testing"

	"github.com/ericogr/greenhouse-controller/pkg/config"
	"github.com/ericogr/greenhouse-controller/pkg/signal"
	"github.com/stretchr/testify/assert"
)

func testPolicy() Policy {
	return NewPolicy(config.DefaultConfig().Thresholds)
}

func TestHeaterThreshold(t *testing.T) {
	p := testPolicy()
	tests := []struct {
		tempC float64
		want  HeaterState
	}{
		{-20, HeaterOn},
		{4.99, HeaterOn},
		{5.0, HeaterOff},
		{5.01, HeaterOff},
		{25, HeaterOff},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.Heater(tt.tempC), "Heater(%.2f)", tt.tempC)
	}
}

func TestHeaterMonotonic(t *testing.T) {
	// colder never turns the heater off when warmer keeps it on
	p := testPolicy()
	prev := p.Heater(-40)
	for tc := -39.5; tc <= 40; tc += 0.5 {
		cur := p.Heater(tc)
		assert.GreaterOrEqual(t, int(prev), int(cur), "Heater must not switch back on at %.1f", tc)
		prev = cur
	}
}

func TestTimeOfDayPartition(t *testing.T) {
	p := testPolicy()
	tests := []struct {
		lux  float64
		want TimeOfDay
	}{
		{0, Night},
		{49.999, Night},
		{50, NormalDay}, // boundary belongs to the upper bucket: Night is strict <
		{499.999, NormalDay},
		{500, BrightDay}, // bright is >=
		{100000, BrightDay},
		{math.Inf(1), BrightDay},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.TimeOfDay(tt.lux), "TimeOfDay(%v)", tt.lux)
	}
}

func TestTimeOfDayCoversEveryValue(t *testing.T) {
	// no gap, no overlap: exactly one state per lux value
	p := testPolicy()
	for lux := -10.0; lux < 1000; lux += 0.25 {
		got := p.TimeOfDay(lux)
		assert.Contains(t, []TimeOfDay{Night, NormalDay, BrightDay}, got, "TimeOfDay(%v)", lux)
	}
}

func TestTimeOfDayFromEstimate(t *testing.T) {
	p := testPolicy()
	tests := []struct {
		name string
		est  signal.LuxEstimate
		want TimeOfDay
	}{
		{"saturated dark bypasses thresholds", signal.LuxEstimate{Saturation: signal.SaturationDark}, Night},
		{"saturated bright bypasses thresholds", signal.LuxEstimate{Saturation: signal.SaturationBright}, BrightDay},
		{"in-range night", signal.LuxEstimate{Lux: 12}, Night},
		{"in-range normal", signal.LuxEstimate{Lux: 250}, NormalDay},
		{"in-range bright", signal.LuxEstimate{Lux: 800}, BrightDay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.TimeOfDayFromEstimate(tt.est))
		})
	}
}

func TestIrrigationStep(t *testing.T) {
	p := testPolicy()
	tests := []struct {
		raw  int
		want IrrigationState
	}{
		{0, SoilDry},
		{150, SoilDry},
		{299, SoilDry},
		{300, SoilSufficient},
		{450, SoilSufficient},
		{1023, SoilSufficient},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.Irrigation(tt.raw), "Irrigation(%d)", tt.raw)
	}
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "night", Night.String())
	assert.Equal(t, "normal_day", NormalDay.String())
	assert.Equal(t, "bright_day", BrightDay.String())
	assert.Equal(t, "on", HeaterOn.String())
	assert.Equal(t, "off", HeaterOff.String())
	assert.Equal(t, "dry", SoilDry.String())
	assert.Equal(t, "sufficient", SoilSufficient.String())
}
