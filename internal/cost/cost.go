// Package cost builds the unit transport/delivery cost tables and the
// per-distribution-center fixed/variable cost scalars from plant, DC and
// customer coordinates.
package cost

import (
	"example.com/your_project/network-design/internal/geo"
	"example.com/your_project/network-design/internal/instance"
)

// ArcKey indexes a unit cost by (origin, destination).
type ArcKey struct {
	From string
	To   string
}

// Options holds the unit-cost scalars. Defaults match the reference
// values from the data model.
type Options struct {
	UnitTPCost         float64 `json:"unit_tp_cost" default:"1" usage:"unit transport cost per km, plant to distribution center"`
	UnitDeliveryCost   float64 `json:"unit_delivery_cost" default:"10" usage:"unit delivery cost per km, distribution center to customer"`
	UnitDCFixedCost    float64 `json:"unit_dc_fixed_cost" default:"1000" usage:"fixed cost of opening a distribution center"`
	UnitDCVariableCost float64 `json:"unit_dc_variable_cost" default:"1" usage:"variable cost per unit of flow through a distribution center"`
}

// DefaultOptions returns the reference unit-cost scalars.
func DefaultOptions() Options {
	return Options{
		UnitTPCost:         1,
		UnitDeliveryCost:   10,
		UnitDCFixedCost:    1000,
		UnitDCVariableCost: 1,
	}
}

// Tables holds the dense plant-to-DC and DC-to-customer unit cost
// matrices and the per-DC fixed/variable cost scalars.
type Tables struct {
	TP           map[ArcKey]float64
	Delivery     map[ArcKey]float64
	FixedCost    map[string]float64
	VariableCost map[string]float64
}

// Build computes the four cost maps from plant, DC and customer
// coordinates. It is a pure, deterministic function of its inputs.
func Build(plant, dc, cust map[string]instance.Location, opts Options) Tables {
	tables := Tables{
		TP:           make(map[ArcKey]float64, len(plant)*len(dc)),
		Delivery:     make(map[ArcKey]float64, len(dc)*len(cust)),
		FixedCost:    make(map[string]float64, len(dc)),
		VariableCost: make(map[string]float64, len(dc)),
	}

	for i, plantLoc := range plant {
		for j, dcLoc := range dc {
			tables.TP[ArcKey{From: i, To: j}] = opts.UnitTPCost * geo.KM(plantLoc, dcLoc)
		}
	}

	for j, dcLoc := range dc {
		for k, custLoc := range cust {
			tables.Delivery[ArcKey{From: j, To: k}] = opts.UnitDeliveryCost * geo.KM(dcLoc, custLoc)
		}
		tables.FixedCost[j] = opts.UnitDCFixedCost
		tables.VariableCost[j] = opts.UnitDCVariableCost
	}

	return tables
}
