package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ericogr/greenhouse-controller/pkg/config"
	"github.com/ericogr/greenhouse-controller/pkg/controller"
	"github.com/ericogr/greenhouse-controller/pkg/indicator"
	gpioind "github.com/ericogr/greenhouse-controller/pkg/indicator/gpio"
	"github.com/ericogr/greenhouse-controller/pkg/output"
	"github.com/ericogr/greenhouse-controller/pkg/output/console"
	mqttout "github.com/ericogr/greenhouse-controller/pkg/output/mqtt"
	"github.com/ericogr/greenhouse-controller/pkg/sensor"
)

func main() {
	fmt.Println("starting...")

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatal(err)
	}

	s, err := initSensor(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	ind, err := initIndicator(cfg.Indicator)
	if err != nil {
		log.Fatal(err)
	}
	defer ind.Close()

	entries, err := initOutputs(&cfg, cfg.IntervalMs)
	if err != nil {
		log.Fatal(err)
	}
	defer closeOutputs(entries)

	ctrl := controller.New(cfg, s, ind, entries)

	stop := make(chan struct{})
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigc
		log.Println("shutting down...")
		close(stop)
	}()

	ctrl.Run(stop, time.Duration(cfg.IntervalMs)*time.Millisecond)
}

func initSensor(cfg config.Config) (sensor.Sensor, error) {
	switch strings.ToLower(cfg.SensorType) {
	case "fake", "simulation":
		return sensor.NewFakeSensor(cfg)
	default:
		return sensor.NewADS1115Sensor(cfg)
	}
}

func initIndicator(cfg config.IndicatorConfig) (indicator.Indicator, error) {
	switch strings.ToLower(cfg.Type) {
	case "gpio":
		return gpioind.NewGPIO(cfg)
	default:
		return indicator.NewNoop(), nil
	}
}

func initOutputs(cfg *config.Config, defaultIntervalMs int) ([]*controller.OutputEntry, error) {
	entries := make([]*controller.OutputEntry, 0, len(cfg.Outputs))
	for i := range cfg.Outputs {
		oc := &cfg.Outputs[i]
		if oc.IntervalMs == 0 {
			oc.IntervalMs = defaultIntervalMs
		}
		var out output.Output
		var err error
		switch strings.ToLower(oc.Type) {
		case "console":
			out = console.NewConsole()
		case "mqtt":
			var m config.MQTTConfig
			if oc.MQTT != nil {
				m = *oc.MQTT
			}
			out, err = mqttout.NewMQTT(m)
			if err != nil {
				return nil, fmt.Errorf("mqtt output: %w", err)
			}
		default:
			return nil, fmt.Errorf("unknown output type %q", oc.Type)
		}
		entries = append(entries, &controller.OutputEntry{Output: out, IntervalMs: oc.IntervalMs})
	}
	return entries, nil
}

func closeOutputs(entries []*controller.OutputEntry) {
	for _, e := range entries {
		if err := e.Output.Close(); err != nil {
			log.Printf("output close error: %v", err)
		}
	}
}
