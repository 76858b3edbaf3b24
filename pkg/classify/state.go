// Package classify turns physical quantities into the discrete states the
// indicator layer displays.
package classify

// TimeOfDay is the light-channel classification.
type TimeOfDay int

const (
	Night TimeOfDay = iota
	NormalDay
	BrightDay
)

func (d TimeOfDay) String() string {
	switch d {
	case Night:
		return "night"
	case NormalDay:
		return "normal_day"
	case BrightDay:
		return "bright_day"
	default:
		return "unknown"
	}
}

func (d TimeOfDay) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// HeaterState is the temperature-channel classification.
type HeaterState int

const (
	HeaterOff HeaterState = iota
	HeaterOn
)

func (h HeaterState) String() string {
	if h == HeaterOn {
		return "on"
	}
	return "off"
}

func (h HeaterState) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// IrrigationState is the soil-channel classification.
type IrrigationState int

const (
	SoilSufficient IrrigationState = iota
	SoilDry
)

func (i IrrigationState) String() string {
	if i == SoilDry {
		return "dry"
	}
	return "sufficient"
}

func (i IrrigationState) MarshalText() ([]byte, error) { return []byte(i.String()), nil }
