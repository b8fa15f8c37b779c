package solve

import (
	"context"
	"testing"

	"example.com/your_project/network-design/internal/cost"
	"example.com/your_project/network-design/internal/instance"
)

func emptyInstance() instance.Instance {
	return instance.Instance{}
}

func TestRunRejectsInvalidInstance(t *testing.T) {
	_, err := Run(context.Background(), emptyInstance(), cost.Tables{}, []string{"DC1"}, 1, MultipleSource, DefaultOptions())
	if err == nil {
		t.Fatal("expected validation error for empty instance")
	}
}

func TestRunRejectsUnknownVariant(t *testing.T) {
	inst := instance.Instance{
		Weight: map[string]int{"P01": 1},
		Cust:   map[string]instance.Location{"K1": {Lat: 0, Lon: 0}},
		Plant:  map[string]instance.Location{"PL1": {Lat: 0, Lon: 0}},
		DC:     map[string]instance.Location{"DC1": {Lat: 0, Lon: 0}},
		DCLB:   map[string]float64{"DC1": 0},
		DCUB:   map[string]float64{"DC1": 10},
		Demand: map[instance.DemandKey]float64{{Customer: "K1", Product: "P01"}: 1},
		PlantUB: map[instance.PlantKey]float64{
			{Plant: "PL1", Product: "P01"}: 10,
		},
	}

	_, err := Run(context.Background(), inst, cost.Tables{}, []string{"DC1"}, 1, Variant(99), DefaultOptions())
	if err == nil {
		t.Fatal("expected error for unrecognized variant")
	}
}

func TestDefaultOptionsAppliesReferenceValues(t *testing.T) {
	opts := DefaultOptions()
	if opts.Solve.Duration != DefaultTimeLimit {
		t.Errorf("Solve.Duration = %v, want %v", opts.Solve.Duration, DefaultTimeLimit)
	}
	if opts.MultiSource.SlackPenalty != 1e6 {
		t.Errorf("MultiSource.SlackPenalty = %v, want 1e6", opts.MultiSource.SlackPenalty)
	}
	if opts.SingleSource.SlackPenalty != 1e8 {
		t.Errorf("SingleSource.SlackPenalty = %v, want 1e8", opts.SingleSource.SlackPenalty)
	}
}
