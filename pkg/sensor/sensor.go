package sensor

import "time"

// Channel identifies one of the three greenhouse sensor channels.
type Channel int

const (
	ChannelLight Channel = iota
	ChannelTemperature
	ChannelSoilMoisture
)

func (c Channel) String() string {
	switch c {
	case ChannelLight:
		return "light"
	case ChannelTemperature:
		return "temperature"
	case ChannelSoilMoisture:
		return "soil_moisture"
	default:
		return "unknown"
	}
}

// Reading is one raw ADC sample. Raw is in [0, adc_max]; unit conversion is
// the signal package's job.
type Reading struct {
	Channel   Channel   `json:"channel"`
	Raw       int       `json:"raw"`
	Timestamp time.Time `json:"timestamp"`
}

type Sensor interface {
	Read() ([]Reading, error)
	Close() error
}
