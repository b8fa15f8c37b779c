package network

import (
	"math"

	"github.com/nextmv-io/sdk/mip"
	"github.com/nextmv-io/sdk/model"

	"example.com/your_project/network-design/internal/cost"
	"example.com/your_project/network-design/internal/instance"
)

// MultiSourceOptions configures the multiple-source model. SlackPenalty
// is the large-M constant (§4.4, default 10^6) that makes unmet demand
// ruinously expensive without ever making the model infeasible.
type MultiSourceOptions struct {
	SlackPenalty float64 `json:"slack_penalty" default:"1000000" usage:"per-unit penalty for unmet demand"`
}

// DefaultMultiSourceOptions returns the reference slack penalty.
func DefaultMultiSourceOptions() MultiSourceOptions {
	return MultiSourceOptions{SlackPenalty: 1e6}
}

// MultiSourceModel is the explicit record returned by BuildMultiSource:
// the model plus every variable family the solver driver needs to read
// back, instead of a side channel attached to the model itself.
type MultiSourceModel struct {
	Model        mip.Model
	PlantDCArcs  []PlantDCArc
	DCCustArcs   []DCCustomerArc
	XPlantDC     model.MultiMap[mip.Float, PlantDCArc]
	XDCCust      model.MultiMap[mip.Float, DCCustomerArc]
	Y            map[string]mip.Bool
	Slack        model.MultiMap[mip.Float, SlackKey]
	SlackKeys    []SlackKey
	DCCandidates []string
}

// BuildMultiSource builds the multiple-source logistics network design
// MIP (§4.4): customer demand for a product may be split across several
// opened distribution centers.
func BuildMultiSource(
	inst instance.Instance,
	tables cost.Tables,
	dcCandidates []string,
	dcNum int,
	opts MultiSourceOptions,
) (*MultiSourceModel, error) {
	if len(dcCandidates) == 0 {
		return nil, &SolverError{Reason: "no distribution center candidates"}
	}
	if dcNum <= 0 {
		return nil, &instance.InvalidInputError{Reason: "dc_num must be positive"}
	}

	plantDCArcs := PlantDCArcs(inst, dcCandidates)
	dcCustArcs := DCCustomerArcs(inst, dcCandidates)

	slackKeys := make([]SlackKey, 0)
	for _, k := range inst.CustomerIDs() {
		for _, p := range inst.Products() {
			if inst.Demand[instance.DemandKey{Customer: k, Product: p}] > 0 {
				slackKeys = append(slackKeys, SlackKey{Customer: k, Product: p})
			}
		}
	}

	m := mip.NewModel()
	m.Objective().SetMinimize()

	xPlantDC := model.NewMultiMap(
		func(...PlantDCArc) mip.Float {
			return m.NewFloat(0, math.MaxFloat64)
		}, plantDCArcs)

	xDCCust := model.NewMultiMap(
		func(...DCCustomerArc) mip.Float {
			return m.NewFloat(0, math.MaxFloat64)
		}, dcCustArcs)

	slack := model.NewMultiMap(
		func(...SlackKey) mip.Float {
			return m.NewFloat(0, math.MaxFloat64)
		}, slackKeys)

	y := make(map[string]mip.Bool, len(dcCandidates))
	for _, j := range dcCandidates {
		y[j] = m.NewBool()
	}

	inByDCProduct := plantDCArcsByDCProduct(plantDCArcs)
	outByDCProduct := dcCustArcsByDCProduct(dcCustArcs)
	byCustProduct := dcCustArcsByCustProduct(dcCustArcs)
	byDC := plantDCArcsByDC(plantDCArcs)
	byPlantProduct := plantDCArcsByPlantProduct(plantDCArcs)

	// Customer demand constraint: Σ_j x[j,k,p] + slack[k,p] = demand[k,p].
	for _, key := range slackKeys {
		demandValue := inst.Demand[instance.DemandKey{Customer: key.Customer, Product: key.Product}]
		con := m.NewConstraint(mip.Equal, demandValue)
		for _, a := range byCustProduct[custProductKey{Customer: key.Customer, Product: key.Product}] {
			con.NewTerm(1.0, xDCCust.Get(a))
		}
		con.NewTerm(1.0, slack.Get(key))
	}

	// DC flow conservation, per product: Σ_i x[i,j,p] = Σ_k x[j,k,p].
	for _, j := range dcCandidates {
		for _, p := range inst.Products() {
			key := dcProductKey{DC: j, Product: p}
			in, hasIn := inByDCProduct[key]
			out, hasOut := outByDCProduct[key]
			if !hasIn && !hasOut {
				continue
			}
			con := m.NewConstraint(mip.Equal, 0.0)
			for _, a := range in {
				con.NewTerm(1.0, xPlantDC.Get(a))
			}
			for _, a := range out {
				con.NewTerm(-1.0, xDCCust.Get(a))
			}
		}
	}

	// Strong DC activation: x[j,k,p] <= demand[k,p] * y[j].
	for _, a := range dcCustArcs {
		demandValue := inst.Demand[instance.DemandKey{Customer: a.Customer, Product: a.Product}]
		con := m.NewConstraint(mip.LessThanOrEqual, 0.0)
		con.NewTerm(1.0, xDCCust.Get(a))
		con.NewTerm(-demandValue, y[a.DC])
	}

	// DC throughput upper bound: Σ_{i,p} x[i,j,p] <= dc_ub[j] * y[j].
	for _, j := range dcCandidates {
		con := m.NewConstraint(mip.LessThanOrEqual, 0.0)
		for _, a := range byDC[j] {
			con.NewTerm(1.0, xPlantDC.Get(a))
		}
		con.NewTerm(-inst.DCUB[j], y[j])
	}

	// Plant capacity: Σ_j x[i,j,p] <= plant_ub[i,p].
	for _, i := range inst.PlantIDs() {
		for _, p := range inst.Products() {
			key := plantProductKey{Plant: i, Product: p}
			arcs, ok := byPlantProduct[key]
			if !ok {
				continue
			}
			con := m.NewConstraint(mip.LessThanOrEqual, inst.PlantUB[instance.PlantKey{Plant: i, Product: p}])
			for _, a := range arcs {
				con.NewTerm(1.0, xPlantDC.Get(a))
			}
		}
	}

	// Cardinality on opened DCs: Σ_j y[j] <= dc_num.
	cardinality := m.NewConstraint(mip.LessThanOrEqual, float64(dcNum))
	for _, j := range dcCandidates {
		cardinality.NewTerm(1.0, y[j])
	}

	// Objective: transport + DC variable cost (combined per arc) +
	// delivery cost + DC fixed cost + slack penalty.
	for _, a := range plantDCArcs {
		coef := float64(inst.Weight[a.Product])*tables.TP[cost.ArcKey{From: a.Plant, To: a.DC}] + tables.VariableCost[a.DC]
		m.Objective().NewTerm(coef, xPlantDC.Get(a))
	}
	for _, a := range dcCustArcs {
		coef := float64(inst.Weight[a.Product]) * tables.Delivery[cost.ArcKey{From: a.DC, To: a.Customer}]
		m.Objective().NewTerm(coef, xDCCust.Get(a))
	}
	for _, j := range dcCandidates {
		m.Objective().NewTerm(tables.FixedCost[j], y[j])
	}
	for _, key := range slackKeys {
		m.Objective().NewTerm(opts.SlackPenalty, slack.Get(key))
	}

	return &MultiSourceModel{
		Model:        m,
		PlantDCArcs:  plantDCArcs,
		DCCustArcs:   dcCustArcs,
		XPlantDC:     xPlantDC,
		XDCCust:      xDCCust,
		Y:            y,
		Slack:        slack,
		SlackKeys:    slackKeys,
		DCCandidates: dcCandidates,
	}, nil
}
