package main

import (
	"testing"

	"github.com/ericogr/greenhouse-controller/pkg/config"
)

func TestInitOutputsSetsInterval(t *testing.T) {
	cfg := config.Config{Outputs: []config.OutputConfig{{Type: "console"}}}
	entries, err := initOutputs(&cfg, 123)
	if err != nil {
		t.Fatalf("initOutputs: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries len: %d", len(entries))
	}
	if cfg.Outputs[0].IntervalMs != 123 {
		t.Fatalf("cfg output interval not set, got %d", cfg.Outputs[0].IntervalMs)
	}
	if entries[0].IntervalMs != 123 {
		t.Fatalf("entry interval not set, got %d", entries[0].IntervalMs)
	}
}

func TestInitOutputsRejectsUnknownType(t *testing.T) {
	cfg := config.Config{Outputs: []config.OutputConfig{{Type: "carrier-pigeon"}}}
	if _, err := initOutputs(&cfg, 1000); err == nil {
		t.Fatalf("expected error for unknown output type")
	}
}

func TestInitIndicatorDefaultsToNoop(t *testing.T) {
	ind, err := initIndicator(config.IndicatorConfig{Type: "none"})
	if err != nil {
		t.Fatalf("initIndicator: %v", err)
	}
	if ind == nil {
		t.Fatalf("nil indicator")
	}
	if err := ind.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
