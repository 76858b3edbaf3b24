package indicator

import (
	"testing"

	"github.com/ericogr/greenhouse-controller/pkg/classify"
)

func TestFakeRecordsStates(t *testing.T) {
	f := NewFake()
	if err := f.SetTimeOfDay(classify.BrightDay); err != nil {
		t.Fatalf("SetTimeOfDay: %v", err)
	}
	if err := f.SetHeater(classify.HeaterOn); err != nil {
		t.Fatalf("SetHeater: %v", err)
	}
	if err := f.SetIrrigation(classify.SoilDry); err != nil {
		t.Fatalf("SetIrrigation: %v", err)
	}
	d, h, i := f.States()
	if d != classify.BrightDay || h != classify.HeaterOn || i != classify.SoilDry {
		t.Fatalf("recorded states: %v %v %v", d, h, i)
	}
	if f.Sets != 3 {
		t.Fatalf("set count: %d", f.Sets)
	}
}
