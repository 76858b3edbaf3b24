package sensor

import (
	"fmt"
	"time"

	"github.com/ericogr/greenhouse-controller/pkg/config"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

const (
	pointerConv   = 0x00
	pointerConfig = 0x01

	// positive full scale of a single-ended ADS1115 conversion
	adsFullScale = 32767
)

type ADS1115Sensor struct {
	dev        *i2c.Dev
	bus        i2c.BusCloser
	inputs     []channelInput
	sampleRate int
	adcMax     int
}

func NewADS1115Sensor(cfg config.Config) (Sensor, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	bus, err := i2creg.Open(cfg.Acquisition.I2CBus)
	if err != nil {
		return nil, fmt.Errorf("open i2c: %w", err)
	}
	dev := &i2c.Dev{Addr: uint16(cfg.Acquisition.I2CAddress), Bus: bus}
	return &ADS1115Sensor{
		dev:        dev,
		bus:        bus,
		inputs:     channelInputs(cfg.Acquisition),
		sampleRate: cfg.Acquisition.SampleRate,
		adcMax:     cfg.Signal.ADCMax,
	}, nil
}

func (s *ADS1115Sensor) Close() error {
	if s.bus != nil {
		return s.bus.Close()
	}
	return nil
}

func (s *ADS1115Sensor) Read() ([]Reading, error) {
	out := make([]Reading, 0, len(s.inputs))
	now := time.Now()
	for _, ci := range s.inputs {
		msb, lsb, err := s.configForInput(ci.input, s.sampleRate)
		if err != nil {
			return nil, err
		}
		// write config
		if err := s.dev.Tx([]byte{pointerConfig, msb, lsb}, nil); err != nil {
			return nil, fmt.Errorf("write config: %w", err)
		}
		// wait for conversion (simple sleep)
		delayMs := int(1000.0/float64(s.sampleRate)) + 2
		time.Sleep(time.Duration(delayMs) * time.Millisecond)
		// read conversion
		readBuf := make([]byte, 2)
		if err := s.dev.Tx([]byte{pointerConv}, readBuf); err != nil {
			return nil, fmt.Errorf("read conv: %w", err)
		}
		conv := int16(readBuf[0])<<8 | int16(readBuf[1])
		out = append(out, Reading{Channel: ci.channel, Raw: scaleRaw(conv, s.adcMax), Timestamp: now})
	}
	return out, nil
}

// scaleRaw maps a single-ended conversion into [0, adcMax] so the signal
// chain sees one raw domain regardless of converter resolution. Negative
// values (floating input) clamp to zero.
func scaleRaw(conv int16, adcMax int) int {
	if conv <= 0 {
		return 0
	}
	return int(int64(conv) * int64(adcMax) / adsFullScale)
}

func (s *ADS1115Sensor) configForInput(input, sampleRate int) (byte, byte, error) {
	var mux byte
	switch input {
	case 0:
		mux = 0x4
	case 1:
		mux = 0x5
	case 2:
		mux = 0x6
	case 3:
		mux = 0x7
	default:
		return 0, 0, fmt.Errorf("invalid input %d", input)
	}
	// PGA: use ±4.096V -> bits 001
	pga := byte(0x1)
	// data rate bits
	var dr byte
	switch sampleRate {
	case 8:
		dr = 0x0
	case 16:
		dr = 0x1
	case 32:
		dr = 0x2
	case 64:
		dr = 0x3
	case 128:
		dr = 0x4
	case 250:
		dr = 0x5
	case 475:
		dr = 0x6
	case 860:
		dr = 0x7
	default:
		dr = 0x4
	}
	var config uint16 = 0x8000 // OS = 1 (start single conversion)
	config |= uint16(mux) << 12
	config |= uint16(pga) << 9
	config |= 1 << 8 // single-shot mode
	config |= uint16(dr) << 5
	// comparator default: disabled (bits 1:0 = 11)
	config |= 0x3
	return byte(config >> 8), byte(config & 0xFF), nil
}
