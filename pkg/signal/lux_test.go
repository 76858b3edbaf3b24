package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testLuxMeter() LuxMeter {
	return LuxMeter{Gamma: 0.7, RL10: 50, ReferenceResistor: 2000, SupplyVolts: 5.0}
}

func TestLuxKnownPoints(t *testing.T) {
	m := testLuxMeter()
	tests := []struct {
		name    string
		voltage float64
		want    float64
	}{
		// R = 2000*2.5/(1-0.5) = 10k -> (50e3 * 10^0.7 / 10e3)^(1/0.7)
		{"balanced divider", 2.5, 99.66},
		// R = 2000*1/(1-0.2) = 2.5k
		{"low sense voltage", 1.0, 722.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Estimate(tt.voltage)
			assert.Equal(t, SaturationNone, got.Saturation)
			assert.InDelta(t, tt.want, got.Lux, 0.5)
		})
	}
}

func TestLuxSaturation(t *testing.T) {
	m := testLuxMeter()
	tests := []struct {
		name    string
		voltage float64
		want    Saturation
	}{
		{"pinned at ground", 0, SaturationDark},
		{"below ground", -0.2, SaturationDark},
		{"pinned at supply", 5.0, SaturationBright},
		{"above supply", 5.4, SaturationBright},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Estimate(tt.voltage)
			assert.Equal(t, tt.want, got.Saturation)
			assert.Equal(t, 0.0, got.Lux)
		})
	}
}

func TestLuxInRangeAlwaysPositive(t *testing.T) {
	m := testLuxMeter()
	for v := 0.05; v < 5.0; v += 0.05 {
		got := m.Estimate(v)
		assert.Equal(t, SaturationNone, got.Saturation, "voltage %.2f", v)
		assert.Greater(t, got.Lux, 0.0, "voltage %.2f", v)
	}
}
