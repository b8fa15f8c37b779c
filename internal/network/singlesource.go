package network

import (
	"math"

	"github.com/nextmv-io/sdk/mip"
	"github.com/nextmv-io/sdk/model"

	"example.com/your_project/network-design/internal/cost"
	"example.com/your_project/network-design/internal/instance"
)

// SingleSourceOptions configures the single-source model. SlackPenalty
// is the large-M constant (§4.5, default 10^8) — larger than the
// multiple-source penalty because leaving a customer entirely unserved
// is a coarser failure than splitting one product's demand.
type SingleSourceOptions struct {
	SlackPenalty float64 `json:"slack_penalty" default:"100000000" usage:"per-customer penalty for being left unassigned"`
}

// DefaultSingleSourceOptions returns the reference slack penalty.
func DefaultSingleSourceOptions() SingleSourceOptions {
	return SingleSourceOptions{SlackPenalty: 1e8}
}

// SingleSourceModel is the explicit record returned by
// BuildSingleSource.
type SingleSourceModel struct {
	Model        mip.Model
	PlantDCArcs  []PlantDCArc
	XPlantDC     model.MultiMap[mip.Float, PlantDCArc]
	Z            model.MultiMap[mip.Bool, AssignmentArc]
	Y            map[string]mip.Bool
	Slack        map[string]mip.Float
	DCCandidates []string
}

// BuildSingleSource builds the single-source logistics network design
// MIP (§4.5): every customer is served, for all its products, by exactly
// one opened distribution center.
func BuildSingleSource(
	inst instance.Instance,
	tables cost.Tables,
	dcCandidates []string,
	dcNum int,
	opts SingleSourceOptions,
) (*SingleSourceModel, error) {
	if len(dcCandidates) == 0 {
		return nil, &SolverError{Reason: "no distribution center candidates"}
	}
	if dcNum <= 0 {
		return nil, &instance.InvalidInputError{Reason: "dc_num must be positive"}
	}

	plantDCArcs := PlantDCArcs(inst, dcCandidates)
	custIDs := inst.CustomerIDs()

	assignmentArcs := make([]AssignmentArc, 0, len(dcCandidates)*len(custIDs))
	for _, j := range dcCandidates {
		for _, k := range custIDs {
			assignmentArcs = append(assignmentArcs, AssignmentArc{DC: j, Customer: k})
		}
	}

	m := mip.NewModel()
	m.Objective().SetMinimize()

	xPlantDC := model.NewMultiMap(
		func(...PlantDCArc) mip.Float {
			return m.NewFloat(0, math.MaxFloat64)
		}, plantDCArcs)

	z := model.NewMultiMap(
		func(...AssignmentArc) mip.Bool {
			return m.NewBool()
		}, assignmentArcs)

	y := make(map[string]mip.Bool, len(dcCandidates))
	for _, j := range dcCandidates {
		y[j] = m.NewBool()
	}

	slack := make(map[string]mip.Float, len(custIDs))
	for _, k := range custIDs {
		slack[k] = m.NewFloat(0, 1.0)
	}

	byDC := plantDCArcsByDC(plantDCArcs)
	byPlantProduct := plantDCArcsByPlantProduct(plantDCArcs)
	byDCCustomer := make(map[string][]AssignmentArc, len(dcCandidates))
	byCustomerDC := make(map[string][]AssignmentArc, len(custIDs))
	for _, a := range assignmentArcs {
		byDCCustomer[a.DC] = append(byDCCustomer[a.DC], a)
		byCustomerDC[a.Customer] = append(byCustomerDC[a.Customer], a)
	}

	// Single assignment: Σ_j z[j,k] + slack[k] = 1.
	for _, k := range custIDs {
		con := m.NewConstraint(mip.Equal, 1.0)
		for _, a := range byCustomerDC[k] {
			con.NewTerm(1.0, z.Get(a))
		}
		con.NewTerm(1.0, slack[k])
	}

	// DC flow conservation: Σ_i x[i,j,p] = Σ_k demand[k,p] * z[j,k].
	for _, j := range dcCandidates {
		for _, p := range inst.Products() {
			con := m.NewConstraint(mip.Equal, 0.0)
			for _, a := range byDC[j] {
				if a.Product == p {
					con.NewTerm(1.0, xPlantDC.Get(a))
				}
			}
			for _, a := range byDCCustomer[j] {
				d := inst.Demand[instance.DemandKey{Customer: a.Customer, Product: p}]
				if d > 0 {
					con.NewTerm(-d, z.Get(a))
				}
			}
		}
	}

	// Weak DC activation: z[j,k] <= y[j].
	for _, a := range assignmentArcs {
		con := m.NewConstraint(mip.LessThanOrEqual, 0.0)
		con.NewTerm(1.0, z.Get(a))
		con.NewTerm(-1.0, y[a.DC])
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
	// weighted delivery cost + DC fixed cost + slack penalty.
	weightedDemand := WeightedDemand(inst)
	for _, a := range plantDCArcs {
		coef := float64(inst.Weight[a.Product])*tables.TP[cost.ArcKey{From: a.Plant, To: a.DC}] + tables.VariableCost[a.DC]
		m.Objective().NewTerm(coef, xPlantDC.Get(a))
	}
	for _, a := range assignmentArcs {
		coef := tables.Delivery[cost.ArcKey{From: a.DC, To: a.Customer}] * weightedDemand[a.Customer]
		m.Objective().NewTerm(coef, z.Get(a))
	}
	for _, j := range dcCandidates {
		m.Objective().NewTerm(tables.FixedCost[j], y[j])
	}
	for _, k := range custIDs {
		m.Objective().NewTerm(opts.SlackPenalty, slack[k])
	}

	return &SingleSourceModel{
		Model:        m,
		PlantDCArcs:  plantDCArcs,
		XPlantDC:     xPlantDC,
		Z:            z,
		Y:            y,
		Slack:        slack,
		DCCandidates: dcCandidates,
	}, nil
}
