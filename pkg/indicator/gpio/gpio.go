package gpio

import (
	"fmt"
	"sync"
	"time"

	"github.com/ericogr/greenhouse-controller/pkg/classify"
	"github.com/ericogr/greenhouse-controller/pkg/config"
	"github.com/ericogr/greenhouse-controller/pkg/indicator"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// GPIOIndicator renders states on five LED lines: three mutually exclusive
// time-of-day lines, one heater line and one irrigation line. The irrigation
// line blinks while the bed is dry and holds steady on while sufficient; the
// blink runs in its own goroutine so classification never waits on it.
type GPIOIndicator struct {
	night      gpio.PinIO
	day        gpio.PinIO
	bright     gpio.PinIO
	heater     gpio.PinIO
	irrigation gpio.PinIO

	mu       sync.Mutex
	blinking bool
	ledOn    bool
	done     chan struct{}
	wg       sync.WaitGroup
}

func NewGPIO(cfg config.IndicatorConfig) (indicator.Indicator, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	pins := make(map[string]gpio.PinIO, 5)
	for _, name := range []string{cfg.NightPin, cfg.DayPin, cfg.BrightPin, cfg.HeaterPin, cfg.IrrigationPin} {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("gpio pin %q not found", name)
		}
		if err := p.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("init pin %q: %w", name, err)
		}
		pins[name] = p
	}

	g := &GPIOIndicator{
		night:      pins[cfg.NightPin],
		day:        pins[cfg.DayPin],
		bright:     pins[cfg.BrightPin],
		heater:     pins[cfg.HeaterPin],
		irrigation: pins[cfg.IrrigationPin],
		done:       make(chan struct{}),
	}

	blink := time.Duration(cfg.BlinkMs) * time.Millisecond
	if blink <= 0 {
		blink = 500 * time.Millisecond
	}
	g.wg.Add(1)
	go g.blinkLoop(blink)

	return g, nil
}

func (g *GPIOIndicator) SetTimeOfDay(d classify.TimeOfDay) error {
	if err := g.night.Out(level(d == classify.Night)); err != nil {
		return fmt.Errorf("night line: %w", err)
	}
	if err := g.day.Out(level(d == classify.NormalDay)); err != nil {
		return fmt.Errorf("day line: %w", err)
	}
	if err := g.bright.Out(level(d == classify.BrightDay)); err != nil {
		return fmt.Errorf("bright line: %w", err)
	}
	return nil
}

func (g *GPIOIndicator) SetHeater(h classify.HeaterState) error {
	if err := g.heater.Out(level(h == classify.HeaterOn)); err != nil {
		return fmt.Errorf("heater line: %w", err)
	}
	return nil
}

func (g *GPIOIndicator) SetIrrigation(i classify.IrrigationState) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if i == classify.SoilDry {
		g.blinking = true
		return nil
	}
	g.blinking = false
	g.ledOn = true
	if err := g.irrigation.Out(gpio.High); err != nil {
		return fmt.Errorf("irrigation line: %w", err)
	}
	return nil
}

func (g *GPIOIndicator) Close() error {
	close(g.done)
	g.wg.Wait()
	var firstErr error
	for _, p := range []gpio.PinIO{g.night, g.day, g.bright, g.heater, g.irrigation} {
		if err := p.Out(gpio.Low); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (g *GPIOIndicator) blinkLoop(period time.Duration) {
	defer g.wg.Done()
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-g.done:
			return
		case <-ticker.C:
			g.mu.Lock()
			if g.blinking {
				g.ledOn = !g.ledOn
				_ = g.irrigation.Out(level(g.ledOn))
			}
			g.mu.Unlock()
		}
	}
}

func level(on bool) gpio.Level {
	if on {
		return gpio.High
	}
	return gpio.Low
}
