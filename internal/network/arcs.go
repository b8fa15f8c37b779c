// Package network builds the two-echelon multi-commodity facility
// location MIP: the multiple-source variant (§4.4) and the single-source
// variant (§4.5). Both are returned as an explicit record of
// {model, variables} rather than stashed as private model attributes.
package network

import (
	"example.com/your_project/network-design/internal/instance"
)

// PlantDCArc is a candidate (plant, dc, product) flow arc: plant i can
// supply product p (plant_ub[i,p] > 0) and j is one of the clustered DC
// candidates.
type PlantDCArc struct {
	Plant   string
	DC      string
	Product string
}

// ID implements model.Identifier.
func (a PlantDCArc) ID() string {
	return a.Plant + "\x00" + a.DC + "\x00" + a.Product
}

// DCCustomerArc is a candidate (dc, customer, product) arc: customer k
// has positive demand for product p.
type DCCustomerArc struct {
	DC       string
	Customer string
	Product  string
}

// ID implements model.Identifier.
func (a DCCustomerArc) ID() string {
	return a.DC + "\x00" + a.Customer + "\x00" + a.Product
}

// SlackKey indexes the per-(customer,product) slack variable in the
// multiple-source model.
type SlackKey struct {
	Customer string
	Product  string
}

// ID implements model.Identifier.
func (s SlackKey) ID() string {
	return s.Customer + "\x00" + s.Product
}

// AssignmentArc is a candidate (dc, customer) single-source assignment.
type AssignmentArc struct {
	DC       string
	Customer string
}

// ID implements model.Identifier.
func (a AssignmentArc) ID() string {
	return a.DC + "\x00" + a.Customer
}

// PlantDCArcs returns the P arc set from §3: every (i, j, p) with
// plant_ub[i,p] > 0, restricted to the DC candidate subset.
func PlantDCArcs(inst instance.Instance, dcCandidates []string) []PlantDCArc {
	arcs := make([]PlantDCArc, 0)
	for _, i := range inst.PlantIDs() {
		for _, j := range dcCandidates {
			for _, p := range inst.Products() {
				if inst.PlantUB[instance.PlantKey{Plant: i, Product: p}] > 0 {
					arcs = append(arcs, PlantDCArc{Plant: i, DC: j, Product: p})
				}
			}
		}
	}
	return arcs
}

// DCCustomerArcs returns the C arc set from §3: every (j, k, p) with
// demand[k,p] > 0, restricted to the DC candidate subset.
func DCCustomerArcs(inst instance.Instance, dcCandidates []string) []DCCustomerArc {
	arcs := make([]DCCustomerArc, 0)
	for _, j := range dcCandidates {
		for _, k := range inst.CustomerIDs() {
			for _, p := range inst.Products() {
				if inst.Demand[instance.DemandKey{Customer: k, Product: p}] > 0 {
					arcs = append(arcs, DCCustomerArc{DC: j, Customer: k, Product: p})
				}
			}
		}
	}
	return arcs
}

// TotalDemand returns, per customer, the sum of demand across all
// products. It is a diagnostic complement to WeightedDemand, not itself
// consumed by either model builder's objective.
func TotalDemand(inst instance.Instance) map[string]float64 {
	totals := make(map[string]float64, len(inst.Cust))
	for _, k := range inst.CustomerIDs() {
		var total float64
		for _, p := range inst.Products() {
			total += inst.Demand[instance.DemandKey{Customer: k, Product: p}]
		}
		totals[k] = total
	}
	return totals
}

// WeightedDemand returns, per customer, Σ_p weight[p]*demand[k,p] — the
// per-customer scalar used to price the single-source delivery-cost
// objective term (§4.5), since z[j,k] carries no product index of its
// own but every unit shipped still costs weight[p] per km.
func WeightedDemand(inst instance.Instance) map[string]float64 {
	weighted := make(map[string]float64, len(inst.Cust))
	for _, k := range inst.CustomerIDs() {
		var total float64
		for _, p := range inst.Products() {
			total += float64(inst.Weight[p]) * inst.Demand[instance.DemandKey{Customer: k, Product: p}]
		}
		weighted[k] = total
	}
	return weighted
}
