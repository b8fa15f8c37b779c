package network

import (
	"testing"

	"example.com/your_project/network-design/internal/instance"
)

func sampleInstance() instance.Instance {
	return instance.Instance{
		Weight: map[string]int{"P01": 1, "P02": 2},
		Cust: map[string]instance.Location{
			"K1": {Lat: 0, Lon: 2},
			"K2": {Lat: 0, Lon: 3},
		},
		Plant: map[string]instance.Location{
			"PL1": {Lat: 0, Lon: 0},
		},
		DC: map[string]instance.Location{
			"DC1": {Lat: 0, Lon: 1},
			"DC2": {Lat: 0, Lon: 1.5},
		},
		DCLB: map[string]float64{"DC1": 0, "DC2": 0},
		DCUB: map[string]float64{"DC1": 100, "DC2": 100},
		Demand: map[instance.DemandKey]float64{
			{Customer: "K1", Product: "P01"}: 10,
			{Customer: "K2", Product: "P01"}: 0,
			{Customer: "K2", Product: "P02"}: 5,
		},
		PlantUB: map[instance.PlantKey]float64{
			{Plant: "PL1", Product: "P01"}: 100,
			{Plant: "PL1", Product: "P02"}: 0,
		},
	}
}

func TestPlantDCArcsOnlyEligible(t *testing.T) {
	inst := sampleInstance()
	arcs := PlantDCArcs(inst, []string{"DC1", "DC2"})

	for _, a := range arcs {
		if a.Product != "P01" {
			t.Fatalf("arc for ineligible product present: %+v", a)
		}
	}
	// PL1 eligible for P01 only, across both DCs: 2 arcs.
	if len(arcs) != 2 {
		t.Fatalf("len(arcs) = %d, want 2", len(arcs))
	}
}

func TestDCCustomerArcsOnlyPositiveDemand(t *testing.T) {
	inst := sampleInstance()
	arcs := DCCustomerArcs(inst, []string{"DC1", "DC2"})

	for _, a := range arcs {
		if a.Customer == "K2" && a.Product == "P01" {
			t.Fatalf("arc present for zero-demand (customer, product): %+v", a)
		}
	}
	// K1/P01 and K2/P02, each across 2 DCs: 4 arcs.
	if len(arcs) != 4 {
		t.Fatalf("len(arcs) = %d, want 4", len(arcs))
	}
}

func TestTotalDemandSumsAcrossProducts(t *testing.T) {
	inst := sampleInstance()
	totals := TotalDemand(inst)
	if totals["K1"] != 10 {
		t.Errorf("TotalDemand[K1] = %v, want 10", totals["K1"])
	}
	if totals["K2"] != 5 {
		t.Errorf("TotalDemand[K2] = %v, want 5", totals["K2"])
	}
}

func TestWeightedDemandAppliesProductWeight(t *testing.T) {
	inst := sampleInstance()
	weighted := WeightedDemand(inst)
	// K2: weight[P02]=2 * demand 5 = 10.
	if weighted["K2"] != 10 {
		t.Errorf("WeightedDemand[K2] = %v, want 10", weighted["K2"])
	}
	// K1: weight[P01]=1 * demand 10 = 10.
	if weighted["K1"] != 10 {
		t.Errorf("WeightedDemand[K1] = %v, want 10", weighted["K1"])
	}
}
