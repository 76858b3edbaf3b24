package sensor

import (
	"testing"
)

func TestConfigForInputBytes(t *testing.T) {
	s := &ADS1115Sensor{}

	// input 0, sample rate 128 -> expect msb 0xC3 lsb 0x83 (see implementation)
	msb, lsb, err := s.configForInput(0, 128)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msb != 0xC3 || lsb != 0x83 {
		t.Fatalf("input0@128 => got %02X %02X; want C3 83", msb, lsb)
	}

	// input 1, sample rate 128 -> D3 83
	msb, lsb, err = s.configForInput(1, 128)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msb != 0xD3 || lsb != 0x83 {
		t.Fatalf("input1@128 => got %02X %02X; want D3 83", msb, lsb)
	}

	// sample rate 8 for input 0 -> msb C3 lsb 03 (dr=0)
	msb, lsb, err = s.configForInput(0, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msb != 0xC3 || lsb != 0x03 {
		t.Fatalf("input0@8 => got %02X %02X; want C3 03", msb, lsb)
	}

	// invalid input
	_, _, err = s.configForInput(9, 128)
	if err == nil {
		t.Fatalf("expected error for invalid input")
	}
}

func TestScaleRaw(t *testing.T) {
	tests := []struct {
		conv   int16
		adcMax int
		want   int
	}{
		{0, 1023, 0},
		{-42, 1023, 0},
		{32767, 1023, 1023},
		{16384, 1023, 511},
		{32767, 32767, 32767},
	}
	for _, tt := range tests {
		if got := scaleRaw(tt.conv, tt.adcMax); got != tt.want {
			t.Fatalf("scaleRaw(%d, %d) = %d; want %d", tt.conv, tt.adcMax, got, tt.want)
		}
	}
}
