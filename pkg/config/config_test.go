package config

import (
	"reflect"
	"testing"
)

func TestParseIntOrHex(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"72", 72, true},
		{"0x48", 0x48, true},
		{"0X4A", 0x4A, true},
		{"bad", 0, false},
	}
	for _, tt := range tests {
		got, err := parseIntOrHex(tt.in)
		if (err == nil) != tt.ok {
			t.Fatalf("parseIntOrHex(%q) ok=%v err=%v", tt.in, tt.ok, err)
		}
		if tt.ok && got != tt.want {
			t.Fatalf("parseIntOrHex(%q) = %d; want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseCSV(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"console,mqtt", []string{"console", "mqtt"}},
		{" console , , mqtt ", []string{"console", "mqtt"}},
	}
	for _, tt := range tests {
		got := parseCSV(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("parseCSV(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	mutations := []struct {
		name string
		mut  func(*Config)
	}{
		{"zero sample rate", func(c *Config) { c.Acquisition.SampleRate = 0 }},
		{"zero supply", func(c *Config) { c.Signal.SupplyVolts = 0 }},
		{"zero adc max", func(c *Config) { c.Signal.ADCMax = 0 }},
		{"negative beta", func(c *Config) { c.Thermistor.Beta = -1 }},
		{"zero gamma", func(c *Config) { c.Lux.Gamma = 0 }},
		{"inverted lux thresholds", func(c *Config) { c.Thresholds.LuxNightMax = 600 }},
		{"soil threshold above range", func(c *Config) { c.Thresholds.SoilDry = 2048 }},
		{"zero interval", func(c *Config) { c.IntervalMs = 0 }},
	}
	for _, m := range mutations {
		cfg := DefaultConfig()
		m.mut(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", m.name)
		}
	}
}
