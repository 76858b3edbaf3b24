package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

type MQTTConfig struct {
	Server            string `json:"server"`
	Username          string `json:"username"`
	Password          string `json:"password"`
	ClientID          string `json:"client_id"`
	StateTopic        string `json:"state_topic"`
	DiscoveryTopic    string `json:"discovery_topic,omitempty"`
	DiscoveryName     string `json:"discovery_name,omitempty"`
	DiscoveryUniqueID string `json:"discovery_unique_id,omitempty"`
}

type OutputConfig struct {
	Type       string      `json:"type"`
	IntervalMs int         `json:"interval_ms,omitempty"`
	MQTT       *MQTTConfig `json:"mqtt,omitempty"`
}

// AcquisitionConfig maps the three greenhouse channels onto ADS1115 inputs.
type AcquisitionConfig struct {
	I2CBus            string `json:"i2c_bus"`
	I2CAddress        int    `json:"i2c_address"`
	SampleRate        int    `json:"sample_rate"`
	LightInput        int    `json:"light_input"`
	TemperatureInput  int    `json:"temperature_input"`
	SoilMoistureInput int    `json:"soil_moisture_input"`
}

// SignalConfig describes the shared analog front end.
type SignalConfig struct {
	SupplyVolts float64 `json:"supply_volts"`
	ADCMax      int     `json:"adc_max"`
}

// ThermistorConfig holds the Beta-model parameters. The nominal point is
// R0 ohms at 25 degrees C.
type ThermistorConfig struct {
	Beta          float64 `json:"beta"`
	R0            float64 `json:"r0"`
	FixedResistor float64 `json:"fixed_resistor"`
}

// LuxConfig holds the photoresistor power-law parameters. RL10 is the LDR
// resistance at 10 lux, in kilo-ohms.
type LuxConfig struct {
	Gamma             float64 `json:"gamma"`
	RL10              float64 `json:"rl10"`
	ReferenceResistor float64 `json:"reference_resistor"`
}

type ThresholdConfig struct {
	SoilDry        int     `json:"soil_dry"`
	HeaterOnBelowC float64 `json:"heater_on_below_c"`
	LuxNightMax    float64 `json:"lux_night_max"`
	LuxBrightMin   float64 `json:"lux_bright_min"`
}

// IndicatorConfig names the GPIO lines driving the indicator LEDs.
type IndicatorConfig struct {
	Type          string `json:"type"` // gpio|none
	NightPin      string `json:"night_pin"`
	DayPin        string `json:"day_pin"`
	BrightPin     string `json:"bright_pin"`
	HeaterPin     string `json:"heater_pin"`
	IrrigationPin string `json:"irrigation_pin"`
	BlinkMs       int    `json:"blink_ms"`
}

type Config struct {
	Acquisition AcquisitionConfig `json:"acquisition"`
	Signal      SignalConfig      `json:"signal"`
	Thermistor  ThermistorConfig  `json:"thermistor"`
	Lux         LuxConfig         `json:"lux"`
	Thresholds  ThresholdConfig   `json:"thresholds"`
	Indicator   IndicatorConfig   `json:"indicator"`
	Outputs     []OutputConfig    `json:"outputs"`
	SensorType  string            `json:"sensor_type"`
	FakeSeed    int64             `json:"fake_seed,omitempty"`
	IntervalMs  int               `json:"interval_ms"`
}

func DefaultConfig() Config {
	return Config{
		Acquisition: AcquisitionConfig{
			I2CBus:            "2",
			I2CAddress:        0x48,
			SampleRate:        128,
			LightInput:        0,
			TemperatureInput:  1,
			SoilMoistureInput: 2,
		},
		Signal: SignalConfig{
			SupplyVolts: 5.0,
			ADCMax:      1023,
		},
		Thermistor: ThermistorConfig{
			Beta:          3950,
			R0:            10000,
			FixedResistor: 10000,
		},
		Lux: LuxConfig{
			Gamma:             0.7,
			RL10:              50,
			ReferenceResistor: 2000,
		},
		Thresholds: ThresholdConfig{
			SoilDry:        300,
			HeaterOnBelowC: 5.0,
			LuxNightMax:    50,
			LuxBrightMin:   500,
		},
		Indicator: IndicatorConfig{
			Type:          "none",
			NightPin:      "GPIO17",
			DayPin:        "GPIO27",
			BrightPin:     "GPIO22",
			HeaterPin:     "GPIO23",
			IrrigationPin: "GPIO24",
			BlinkMs:       500,
		},
		Outputs:    []OutputConfig{{Type: "console", IntervalMs: 1000}},
		SensorType: "real",
		IntervalMs: 1000,
	}
}

// LoadFromFlags loads configuration from a JSON file (optional) and flags.
// Flags override values present in the JSON file.
func LoadFromFlags() (Config, error) {
	cfgPath := flag.String("config", "", "Path to JSON config file")
	flagI2CBus := flag.String("i2c-bus", "", "I2C bus (e.g., '2' -> /dev/i2c-2)")
	flagI2CAddStr := flag.String("i2c-address", "", "I2C address (decimal or 0x hex)")
	flagSampleRate := flag.Int("sample-rate", -1, "ADS1115 sample rate (SPS)")
	flagSupplyVolts := flag.Float64("supply-volts", math.NaN(), "Sensor supply voltage")
	flagADCMax := flag.Int("adc-max", -1, "Raw sample full-scale value")
	flagSoilDry := flag.Int("soil-dry", -1, "Raw soil reading below which the bed is dry")
	flagHeaterOn := flag.Float64("heater-on-below", math.NaN(), "Temperature (C) below which the heater indicator turns on")
	flagOutputs := flag.String("outputs", "", "Comma-separated outputs (console,mqtt)")
	flagOutputIntervals := flag.String("output-intervals", "", "Comma-separated output intervals e.g. console=1000,mqtt=5000")
	flagMQTTServer := flag.String("mqtt-server", "", "MQTT server (tcp://host:port)")
	flagMQTTUser := flag.String("mqtt-user", "", "MQTT username")
	flagMQTTPass := flag.String("mqtt-pass", "", "MQTT password")
	flagClientID := flag.String("mqtt-client-id", "", "MQTT client id")
	flagTopic := flag.String("mqtt-topic", "", "MQTT state topic")
	flagSensorType := flag.String("sensor-type", "", "sensor type: real|fake")
	flagIndicatorType := flag.String("indicator-type", "", "indicator type: gpio|none")
	flagInterval := flag.Int("interval-ms", -1, "Sampling interval in ms")

	flag.Parse()

	cfg := DefaultConfig()

	if *cfgPath != "" {
		b, err := os.ReadFile(*cfgPath)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if *flagI2CBus != "" {
		cfg.Acquisition.I2CBus = *flagI2CBus
	}
	if *flagI2CAddStr != "" {
		v, err := parseIntOrHex(*flagI2CAddStr)
		if err != nil {
			return cfg, fmt.Errorf("i2c-address: %w", err)
		}
		cfg.Acquisition.I2CAddress = v
	}
	if *flagSampleRate != -1 {
		cfg.Acquisition.SampleRate = *flagSampleRate
	}
	if !math.IsNaN(*flagSupplyVolts) {
		cfg.Signal.SupplyVolts = *flagSupplyVolts
	}
	if *flagADCMax != -1 {
		cfg.Signal.ADCMax = *flagADCMax
	}
	if *flagSoilDry != -1 {
		cfg.Thresholds.SoilDry = *flagSoilDry
	}
	if !math.IsNaN(*flagHeaterOn) {
		cfg.Thresholds.HeaterOnBelowC = *flagHeaterOn
	}
	if *flagOutputs != "" {
		// convert simple CSV of types into structured OutputConfig entries
		parts := parseCSV(*flagOutputs)
		outs := make([]OutputConfig, 0, len(parts))
		for _, p := range parts {
			outs = append(outs, OutputConfig{Type: p, IntervalMs: cfg.IntervalMs})
		}
		cfg.Outputs = outs
	}
	// parse output intervals mapping
	if *flagOutputIntervals != "" {
		outIntervals := map[string]int{}
		parts := parseCSV(*flagOutputIntervals)
		for _, p := range parts {
			kv := strings.SplitN(p, "=", 2)
			if len(kv) != 2 {
				continue
			}
			if v, err := strconv.Atoi(kv[1]); err == nil {
				outIntervals[strings.TrimSpace(kv[0])] = v
			}
		}
		for i := range cfg.Outputs {
			if v, ok := outIntervals[cfg.Outputs[i].Type]; ok {
				cfg.Outputs[i].IntervalMs = v
			}
		}
	}
	// map mqtt flags into mqtt outputs (create one if missing)
	if *flagMQTTServer != "" || *flagMQTTUser != "" || *flagMQTTPass != "" || *flagClientID != "" || *flagTopic != "" {
		applied := false
		for i := range cfg.Outputs {
			if strings.ToLower(cfg.Outputs[i].Type) == "mqtt" {
				if cfg.Outputs[i].MQTT == nil {
					cfg.Outputs[i].MQTT = &MQTTConfig{}
				}
				applyMQTTFlags(cfg.Outputs[i].MQTT, *flagMQTTServer, *flagMQTTUser, *flagMQTTPass, *flagClientID, *flagTopic)
				applied = true
			}
		}
		if !applied {
			mqttOut := OutputConfig{Type: "mqtt", IntervalMs: cfg.IntervalMs, MQTT: &MQTTConfig{}}
			applyMQTTFlags(mqttOut.MQTT, *flagMQTTServer, *flagMQTTUser, *flagMQTTPass, *flagClientID, *flagTopic)
			cfg.Outputs = append(cfg.Outputs, mqttOut)
		}
	}
	if *flagSensorType != "" {
		cfg.SensorType = *flagSensorType
	}
	if *flagIndicatorType != "" {
		cfg.Indicator.Type = *flagIndicatorType
	}
	if *flagInterval != -1 {
		cfg.IntervalMs = *flagInterval
	}
	// ensure outputs have interval default
	for i := range cfg.Outputs {
		if cfg.Outputs[i].IntervalMs == 0 {
			cfg.Outputs[i].IntervalMs = cfg.IntervalMs
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate rejects configurations the signal chain cannot work with.
func (c Config) Validate() error {
	if c.Acquisition.SampleRate <= 0 {
		return errors.New("sample-rate must be > 0")
	}
	if c.Signal.SupplyVolts <= 0 {
		return errors.New("supply_volts must be > 0")
	}
	if c.Signal.ADCMax <= 0 {
		return errors.New("adc_max must be > 0")
	}
	if c.Thermistor.Beta <= 0 || c.Thermistor.R0 <= 0 || c.Thermistor.FixedResistor <= 0 {
		return errors.New("thermistor parameters must be > 0")
	}
	if c.Lux.Gamma <= 0 || c.Lux.RL10 <= 0 || c.Lux.ReferenceResistor <= 0 {
		return errors.New("lux parameters must be > 0")
	}
	if c.Thresholds.LuxNightMax > c.Thresholds.LuxBrightMin {
		return fmt.Errorf("lux thresholds out of order: night max %.1f > bright min %.1f",
			c.Thresholds.LuxNightMax, c.Thresholds.LuxBrightMin)
	}
	if c.Thresholds.SoilDry < 0 || c.Thresholds.SoilDry > c.Signal.ADCMax {
		return fmt.Errorf("soil_dry %d outside raw range [0,%d]", c.Thresholds.SoilDry, c.Signal.ADCMax)
	}
	if c.IntervalMs <= 0 {
		return errors.New("interval_ms must be > 0")
	}
	return nil
}

func applyMQTTFlags(m *MQTTConfig, server, user, pass, clientID, topic string) {
	if server != "" {
		m.Server = server
	}
	if user != "" {
		m.Username = user
	}
	if pass != "" {
		m.Password = pass
	}
	if clientID != "" {
		m.ClientID = clientID
	}
	if topic != "" {
		m.StateTopic = topic
	}
}

func parseIntOrHex(s string) (int, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseInt(s[2:], 16, 0)
		return int(v), err
	}
	v, err := strconv.Atoi(s)
	return v, err
}

func parseCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
