// Package solve is the thin solver driver: it builds the requested MIP
// model variant, invokes the branch-and-cut solver under a wall-clock
// budget, and extracts the opened-DC set and flow assignments above the
// numeric threshold. It does not retry or transform the problem.
package solve

import (
	"context"
	"sort"
	"time"

	"github.com/nextmv-io/sdk/mip"

	"example.com/your_project/network-design/internal/cost"
	"example.com/your_project/network-design/internal/instance"
	"example.com/your_project/network-design/internal/network"
)

// Variant selects which MIP formulation to build.
type Variant int

const (
	// MultipleSource allows a customer's demand for a product to be
	// split across several opened distribution centers.
	MultipleSource Variant = iota
	// SingleSource requires every customer to be served, for all its
	// products, by exactly one opened distribution center.
	SingleSource
)

// FlowEpsilon is the numeric threshold below which a flow/assignment
// value is treated as zero, per §4.6.
const FlowEpsilon = 1e-6

// DefaultTimeLimit is the solver's default wall-clock budget.
const DefaultTimeLimit = 300 * time.Second

// Options configures model construction and the solve call.
type Options struct {
	Solve        mip.SolveOptions            `json:"solve,omitempty"`
	MultiSource  network.MultiSourceOptions  `json:"multi_source,omitempty"`
	SingleSource network.SingleSourceOptions `json:"single_source,omitempty"`
}

// DefaultOptions returns the reference time limit and slack penalties.
func DefaultOptions() Options {
	return Options{
		Solve:        mip.SolveOptions{Duration: DefaultTimeLimit},
		MultiSource:  network.DefaultMultiSourceOptions(),
		SingleSource: network.DefaultSingleSourceOptions(),
	}
}

// Flow is a single plant→DC or DC→customer flow/assignment record with
// value above FlowEpsilon.
type Flow struct {
	Origin      string
	Destination string
	Product     string
	Value       float64
}

// Result is what the driver hands back to its caller: the opened DCs
// (ordered by identifier), every non-negligible flow, the objective
// value, a solver status string, and — when the optimal solution still
// carries slack — the list of unmet (customer, product) pairs.
type Result struct {
	OpenedDCs   []string
	Flows       []Flow
	Objective   float64
	Status      string
	UnmetDemand []instance.DemandKey
}

// Run builds the requested variant and solves it. On a hard solver
// failure (model rejected, license missing, numerical failure) it
// returns a *network.SolverError. A suboptimal (time-limit) result or
// a slack-bearing optimal solution are not errors — they are reported
// through Result.Status and Result.UnmetDemand.
func Run(
	ctx context.Context,
	inst instance.Instance,
	tables cost.Tables,
	dcCandidates []string,
	dcNum int,
	variant Variant,
	opts Options,
) (Result, error) {
	if err := inst.Validate(); err != nil {
		return Result{}, err
	}
	if opts.Solve.Duration <= 0 {
		opts.Solve.Duration = DefaultTimeLimit
	}
	opts.Solve.MIP.Gap.Relative = 0.0
	opts.Solve.Verbosity = mip.Off

	switch variant {
	case MultipleSource:
		return runMultiSource(ctx, inst, tables, dcCandidates, dcNum, opts)
	case SingleSource:
		return runSingleSource(ctx, inst, tables, dcCandidates, dcNum, opts)
	default:
		return Result{}, &instance.InvalidInputError{Reason: "unknown MIP variant"}
	}
}

func runMultiSource(
	_ context.Context,
	inst instance.Instance,
	tables cost.Tables,
	dcCandidates []string,
	dcNum int,
	opts Options,
) (Result, error) {
	built, err := network.BuildMultiSource(inst, tables, dcCandidates, dcNum, opts.MultiSource)
	if err != nil {
		return Result{}, err
	}

	solver, err := mip.NewSolver(mip.Highs, built.Model)
	if err != nil {
		return Result{}, &network.SolverError{Reason: err.Error()}
	}

	solution, err := solver.Solve(opts.Solve)
	if err != nil {
		return Result{}, &network.SolverError{Reason: err.Error()}
	}

	if solution == nil || !solution.HasValues() {
		return Result{Status: "infeasible"}, nil
	}

	result := Result{
		Status:    status(solution),
		Objective: solution.ObjectiveValue(),
	}

	for _, j := range built.DCCandidates {
		if solution.Value(built.Y[j]) > 0.5 {
			result.OpenedDCs = append(result.OpenedDCs, j)
		}
	}
	sort.Strings(result.OpenedDCs)

	for _, a := range built.PlantDCArcs {
		if v := solution.Value(built.XPlantDC.Get(a)); v > FlowEpsilon {
			result.Flows = append(result.Flows, Flow{Origin: a.Plant, Destination: a.DC, Product: a.Product, Value: v})
		}
	}
	for _, a := range built.DCCustArcs {
		if v := solution.Value(built.XDCCust.Get(a)); v > FlowEpsilon {
			result.Flows = append(result.Flows, Flow{Origin: a.DC, Destination: a.Customer, Product: a.Product, Value: v})
		}
	}

	for _, key := range built.SlackKeys {
		if solution.Value(built.Slack.Get(key)) > FlowEpsilon {
			result.UnmetDemand = append(result.UnmetDemand, instance.DemandKey{Customer: key.Customer, Product: key.Product})
		}
	}
	if result.Status == "optimal" && len(result.UnmetDemand) > 0 {
		result.Status = "optimal-with-unmet-demand"
	}

	return result, nil
}

func runSingleSource(
	_ context.Context,
	inst instance.Instance,
	tables cost.Tables,
	dcCandidates []string,
	dcNum int,
	opts Options,
) (Result, error) {
	built, err := network.BuildSingleSource(inst, tables, dcCandidates, dcNum, opts.SingleSource)
	if err != nil {
		return Result{}, err
	}

	solver, err := mip.NewSolver(mip.Highs, built.Model)
	if err != nil {
		return Result{}, &network.SolverError{Reason: err.Error()}
	}

	solution, err := solver.Solve(opts.Solve)
	if err != nil {
		return Result{}, &network.SolverError{Reason: err.Error()}
	}

	if solution == nil || !solution.HasValues() {
		return Result{Status: "infeasible"}, nil
	}

	result := Result{
		Status:    status(solution),
		Objective: solution.ObjectiveValue(),
	}

	for _, j := range built.DCCandidates {
		if solution.Value(built.Y[j]) > 0.5 {
			result.OpenedDCs = append(result.OpenedDCs, j)
		}
	}
	sort.Strings(result.OpenedDCs)

	for _, a := range built.PlantDCArcs {
		if v := solution.Value(built.XPlantDC.Get(a)); v > FlowEpsilon {
			result.Flows = append(result.Flows, Flow{Origin: a.Plant, Destination: a.DC, Product: a.Product, Value: v})
		}
	}

	products := inst.Products()
	for _, j := range built.DCCandidates {
		for _, k := range inst.CustomerIDs() {
			z := built.Z.Get(network.AssignmentArc{DC: j, Customer: k})
			if solution.Value(z) <= 0.5 {
				continue
			}
			for _, p := range products {
				d := inst.Demand[instance.DemandKey{Customer: k, Product: p}]
				if d > FlowEpsilon {
					result.Flows = append(result.Flows, Flow{Origin: j, Destination: k, Product: p, Value: d})
				}
			}
		}
	}

	for _, k := range inst.CustomerIDs() {
		if solution.Value(built.Slack[k]) > FlowEpsilon {
			for _, p := range products {
				if inst.Demand[instance.DemandKey{Customer: k, Product: p}] > 0 {
					result.UnmetDemand = append(result.UnmetDemand, instance.DemandKey{Customer: k, Product: p})
				}
			}
		}
	}
	if result.Status == "optimal" && len(result.UnmetDemand) > 0 {
		result.Status = "optimal-with-unmet-demand"
	}

	return result, nil
}

func status(solution mip.Solution) string {
	switch {
	case solution.IsOptimal():
		return "optimal"
	case solution.IsSubOptimal():
		return "suboptimal"
	default:
		return "infeasible"
	}
}
