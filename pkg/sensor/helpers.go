package sensor

import "github.com/ericogr/greenhouse-controller/pkg/config"

type channelInput struct {
	channel Channel
	input   int
}

// channelInputs maps the greenhouse channels onto their configured ADS1115
// inputs, in acquisition order.
func channelInputs(cfg config.AcquisitionConfig) []channelInput {
	return []channelInput{
		{ChannelLight, cfg.LightInput},
		{ChannelTemperature, cfg.TemperatureInput},
		{ChannelSoilMoisture, cfg.SoilMoistureInput},
	}
}
