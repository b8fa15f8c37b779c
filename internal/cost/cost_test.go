package cost

import (
	"math"
	"testing"

	"example.com/your_project/network-design/internal/geo"
	"example.com/your_project/network-design/internal/instance"
)

func TestBuildTPCostMatchesFormula(t *testing.T) {
	plant := map[string]instance.Location{"P1": {Lat: 0, Lon: 0}}
	dc := map[string]instance.Location{"DC1": {Lat: 0, Lon: 1}}
	cust := map[string]instance.Location{"C1": {Lat: 0, Lon: 2}}

	opts := DefaultOptions()
	tables := Build(plant, dc, cust, opts)

	want := opts.UnitTPCost * geo.KM(plant["P1"], dc["DC1"])
	got := tables.TP[ArcKey{From: "P1", To: "DC1"}]
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("TP cost = %v, want %v", got, want)
	}
}

func TestBuildDeliveryCostMatchesFormula(t *testing.T) {
	plant := map[string]instance.Location{"P1": {Lat: 0, Lon: 0}}
	dc := map[string]instance.Location{"DC1": {Lat: 0, Lon: 1}}
	cust := map[string]instance.Location{"C1": {Lat: 0, Lon: 2}}

	opts := DefaultOptions()
	tables := Build(plant, dc, cust, opts)

	want := opts.UnitDeliveryCost * geo.KM(dc["DC1"], cust["C1"])
	got := tables.Delivery[ArcKey{From: "DC1", To: "C1"}]
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("delivery cost = %v, want %v", got, want)
	}
}

func TestBuildFixedAndVariableCostConstant(t *testing.T) {
	dc := map[string]instance.Location{"DC1": {Lat: 1, Lon: 1}, "DC2": {Lat: 2, Lon: 2}}
	plant := map[string]instance.Location{"P1": {Lat: 0, Lon: 0}}
	cust := map[string]instance.Location{"C1": {Lat: 3, Lon: 3}}

	opts := DefaultOptions()
	tables := Build(plant, dc, cust, opts)

	for j := range dc {
		if tables.FixedCost[j] != opts.UnitDCFixedCost {
			t.Errorf("FixedCost[%s] = %v, want %v", j, tables.FixedCost[j], opts.UnitDCFixedCost)
		}
		if tables.VariableCost[j] != opts.UnitDCVariableCost {
			t.Errorf("VariableCost[%s] = %v, want %v", j, tables.VariableCost[j], opts.UnitDCVariableCost)
		}
	}
}

func TestBuildCostSymmetricUnderLocationSwap(t *testing.T) {
	// tp_cost[i,j] should equal unit_tp_cost * km(plant_i, dc_j) regardless
	// of which map a location happens to sit in.
	loc1 := instance.Location{Lat: 10, Lon: 20}
	loc2 := instance.Location{Lat: 30, Lon: 40}

	opts := DefaultOptions()
	tables := Build(
		map[string]instance.Location{"A": loc1},
		map[string]instance.Location{"B": loc2},
		map[string]instance.Location{},
		opts,
	)

	forward := tables.TP[ArcKey{From: "A", To: "B"}]
	want := opts.UnitTPCost * geo.KM(loc2, loc1)
	if math.Abs(forward-want) > 1e-9 {
		t.Fatalf("TP cost not symmetric w.r.t. location swap: got %v want %v", forward, want)
	}
}
