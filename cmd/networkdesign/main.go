// package main wires an input instance through pre-clustering, cost table
// construction and the network design MIP, and writes the solved result.
package main

import (
	"context"
	"log"

	"github.com/nextmv-io/sdk"
	"github.com/nextmv-io/sdk/run"
	"github.com/nextmv-io/sdk/run/schema"
	"github.com/nextmv-io/sdk/run/statistics"

	"example.com/your_project/network-design/internal/cluster"
	"example.com/your_project/network-design/internal/cost"
	"example.com/your_project/network-design/internal/instance"
	"example.com/your_project/network-design/internal/solve"
)

func main() {
	err := run.CLI(solver).Run(context.Background())
	if err != nil {
		log.Fatal(err)
	}
}

type input struct {
	Weight  map[string]int                `json:"weight"`
	Cust    map[string]instance.Location  `json:"cust"`
	Plant   map[string]instance.Location  `json:"plant"`
	DC      map[string]instance.Location  `json:"dc"`
	DCLB    map[string]float64            `json:"dc_lb"`
	DCUB    map[string]float64            `json:"dc_ub"`
	Demand  map[string]map[string]float64 `json:"demand"`
	PlantUB map[string]map[string]float64 `json:"plant_ub"`
	Name    map[string]string             `json:"name,omitempty"`
}

func (i input) toInstance() instance.Instance {
	inst := instance.Instance{
		Weight:  i.Weight,
		Cust:    i.Cust,
		Plant:   i.Plant,
		DC:      i.DC,
		DCLB:    i.DCLB,
		DCUB:    i.DCUB,
		Name:    i.Name,
		Demand:  make(map[instance.DemandKey]float64),
		PlantUB: make(map[instance.PlantKey]float64),
	}
	for k, products := range i.Demand {
		for p, v := range products {
			inst.Demand[instance.DemandKey{Customer: k, Product: p}] = v
		}
	}
	for pl, products := range i.PlantUB {
		for p, v := range products {
			inst.PlantUB[instance.PlantKey{Plant: pl, Product: p}] = v
		}
	}
	return inst
}

type options struct {
	Cost         cost.Options  `json:"cost,omitempty"`
	DCNum        int           `json:"dc_num" default:"0" usage:"maximum number of distribution centers to open; 0 disables the cardinality limit"`
	ClusterNum   int           `json:"cluster_num" default:"0" usage:"pre-clustering target cluster count; 0 disables pre-clustering"`
	SingleSource bool          `json:"single_source" default:"false" usage:"require each customer to be served by exactly one distribution center"`
	Solve        solve.Options `json:"solve,omitempty"`
}

func solver(_ context.Context, i input, opts options) (schema.Output, error) {
	inst := i.toInstance()
	if err := inst.Validate(); err != nil {
		return schema.Output{}, err
	}

	if opts.Cost == (cost.Options{}) {
		opts.Cost = cost.DefaultOptions()
	}
	tables := cost.Build(inst.Plant, inst.DC, inst.Cust, opts.Cost)

	dcCandidates := inst.DCIDs()
	if opts.ClusterNum > 0 && opts.ClusterNum < len(dcCandidates) {
		clustered, err := cluster.Precluster(
			inst.CustomerIDs(), inst.Cust,
			dcCandidates, inst.DC,
			inst.Products(), inst.Demand,
			opts.ClusterNum,
		)
		if err != nil {
			return schema.Output{}, err
		}
		dcCandidates = clustered
	}

	dcNum := opts.DCNum
	if dcNum <= 0 {
		dcNum = len(dcCandidates)
	}

	solveOpts := opts.Solve
	if solveOpts.Solve.Duration <= 0 {
		solveOpts = solve.DefaultOptions()
	}

	variant := solve.MultipleSource
	if opts.SingleSource {
		variant = solve.SingleSource
	}

	result, err := solve.Run(context.Background(), inst, tables, dcCandidates, dcNum, variant, solveOpts)
	if err != nil {
		return schema.Output{}, err
	}

	return format(result)
}

type flowOutput struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Product     string  `json:"product"`
	Value       float64 `json:"value"`
}

type unmetDemandOutput struct {
	Customer string `json:"customer"`
	Product  string `json:"product"`
}

type networkDesignSolution struct {
	Status      string              `json:"status"`
	Value       float64             `json:"value"`
	OpenedDCs   []string            `json:"opened_distribution_centers"`
	Flows       []flowOutput        `json:"flows"`
	UnmetDemand []unmetDemandOutput `json:"unmet_demand,omitempty"`
}

type customResultStatistics struct {
	OpenedDCCount int `json:"opened_distribution_center_count"`
	UnmetCount    int `json:"unmet_demand_count"`
}

func format(result solve.Result) (schema.Output, error) {
	o := schema.Output{}
	o.Version = schema.Version{Sdk: sdk.VERSION}

	stats := statistics.NewStatistics()
	res := statistics.Result{}
	runStats := statistics.Run{}

	val := statistics.Float64(result.Objective)
	res.Value = &val
	res.Custom = customResultStatistics{
		OpenedDCCount: len(result.OpenedDCs),
		UnmetCount:    len(result.UnmetDemand),
	}

	stats.Result = &res
	stats.Run = &runStats
	o.Statistics = stats

	sol := networkDesignSolution{
		Status:    result.Status,
		Value:     result.Objective,
		OpenedDCs: result.OpenedDCs,
	}
	for _, f := range result.Flows {
		sol.Flows = append(sol.Flows, flowOutput{
			Origin:      f.Origin,
			Destination: f.Destination,
			Product:     f.Product,
			Value:       f.Value,
		})
	}
	for _, u := range result.UnmetDemand {
		sol.UnmetDemand = append(sol.UnmetDemand, unmetDemandOutput{Customer: u.Customer, Product: u.Product})
	}

	o.Solutions = append(o.Solutions, sol)

	return o, nil
}
