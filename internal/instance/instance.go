// Package instance holds the immutable contract types the network design
// core consumes: plants, distribution centers, customers, products and
// demand, all keyed by stable string identifiers.
package instance

import "sort"

// Location is a (latitude, longitude) pair in decimal degrees.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DemandKey indexes demand by (customer, product).
type DemandKey struct {
	Customer string
	Product  string
}

// PlantKey indexes plant output bounds by (plant, product).
type PlantKey struct {
	Plant   string
	Product string
}

// Instance is the tuple yielded by an external instance builder:
// (weight, cust, plant, dc, dc_lb, dc_ub, demand, plant_ub, name).
type Instance struct {
	Weight  map[string]int
	Cust    map[string]Location
	Plant   map[string]Location
	DC      map[string]Location
	DCLB    map[string]float64
	DCUB    map[string]float64
	Demand  map[DemandKey]float64
	PlantUB map[PlantKey]float64
	Name    map[string]string
}

// Products returns the product identifiers in sorted order, so downstream
// iteration is deterministic.
func (in Instance) Products() []string {
	products := make([]string, 0, len(in.Weight))
	for p := range in.Weight {
		products = append(products, p)
	}
	sort.Strings(products)
	return products
}

// CustomerIDs returns customer identifiers in sorted order.
func (in Instance) CustomerIDs() []string {
	return sortedKeys(in.Cust)
}

// PlantIDs returns plant identifiers in sorted order.
func (in Instance) PlantIDs() []string {
	return sortedKeys(in.Plant)
}

// DCIDs returns the full distribution-center candidate universe, sorted.
func (in Instance) DCIDs() []string {
	return sortedKeys(in.DC)
}

func sortedKeys(m map[string]Location) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks the invariants from the data model: coordinates in
// range, positive weights, positive DC upper bounds, zero DC lower
// bounds, and non-negative demand/plant capacity. It fails fast with
// InvalidInputError, as required of every component's entry point.
func (in Instance) Validate() error {
	if len(in.Cust) == 0 {
		return &InvalidInputError{Reason: "instance has no customers"}
	}
	if len(in.Plant) == 0 {
		return &InvalidInputError{Reason: "instance has no plants"}
	}
	if len(in.DC) == 0 {
		return &InvalidInputError{Reason: "instance has no distribution centers"}
	}
	for id, loc := range in.Cust {
		if err := validateLocation(id, loc); err != nil {
			return err
		}
	}
	for id, loc := range in.Plant {
		if err := validateLocation(id, loc); err != nil {
			return err
		}
	}
	for id, loc := range in.DC {
		if err := validateLocation(id, loc); err != nil {
			return err
		}
	}
	for p, w := range in.Weight {
		if w <= 0 {
			return &InvalidInputError{Reason: "product " + p + " weight must be positive"}
		}
	}
	for j := range in.DC {
		if in.DCUB[j] <= 0 {
			return &InvalidInputError{Reason: "dc " + j + " upper bound must be positive"}
		}
		if in.DCLB[j] != 0 {
			return &InvalidInputError{Reason: "dc " + j + " lower bound must be zero"}
		}
	}
	for k, d := range in.Demand {
		if d < 0 {
			return &InvalidInputError{Reason: "demand for " + k.Customer + "/" + k.Product + " must be non-negative"}
		}
	}
	for k, u := range in.PlantUB {
		if u < 0 {
			return &InvalidInputError{Reason: "plant capacity for " + k.Plant + "/" + k.Product + " must be non-negative"}
		}
	}
	return nil
}

func validateLocation(id string, loc Location) error {
	if loc.Lat < -90 || loc.Lat > 90 {
		return &InvalidInputError{Reason: "location " + id + " latitude out of range"}
	}
	if loc.Lon < -180 || loc.Lon > 180 {
		return &InvalidInputError{Reason: "location " + id + " longitude out of range"}
	}
	return nil
}
