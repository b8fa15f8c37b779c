// Package cluster implements the pre-clusterer: it reduces a large set of
// candidate distribution centers to a smaller representative subset via
// agglomerative hierarchical clustering on a precomputed geographic
// distance matrix, picking the highest-demand DC per cluster.
package cluster

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"example.com/your_project/network-design/internal/geo"
	"example.com/your_project/network-design/internal/instance"
)

// DistanceMatrix builds the N x N integer (floor(+0.5)) symmetric
// great-circle distance matrix over dcIDs, in the given order. The
// integer rounding matches the reference pre-clusterer so that
// tie-breaking and linkage merges are reproducible.
func DistanceMatrix(dcIDs []string, dc map[string]instance.Location) *mat.SymDense {
	n := len(dcIDs)
	d := mat.NewSymDense(n, nil)
	for a := 0; a < n; a++ {
		for b := a; b < n; b++ {
			if a == b {
				d.SetSym(a, b, 0)
				continue
			}
			km := geo.KM(dc[dcIDs[a]], dc[dcIDs[b]])
			d.SetSym(a, b, math.Floor(km+0.5))
		}
	}
	return d
}

// DemandScore assigns each customer to its nearest DC (first occurrence
// wins ties) and accumulates that customer's total demand across
// products onto the DC's score.
func DemandScore(
	custIDs []string,
	cust map[string]instance.Location,
	dcIDs []string,
	dc map[string]instance.Location,
	products []string,
	demand map[instance.DemandKey]float64,
) []float64 {
	score := make([]float64, len(dcIDs))
	dists := make([]float64, len(dcIDs))

	for _, k := range custIDs {
		for a, j := range dcIDs {
			dists[a] = math.Floor(geo.KM(cust[k], dc[j])+0.5)
		}
		// floats.MinIdx returns the index of the first occurrence of the
		// minimum value, matching the first-occurrence tie-break rule.
		nearest := floats.MinIdx(dists)

		var total float64
		for _, p := range products {
			total += demand[instance.DemandKey{Customer: k, Product: p}]
		}
		score[nearest] += total
	}

	return score
}

// Precluster reduces dcIDs to exactly k representative distribution
// centers: it clusters the DCs by average-linkage agglomeration on the
// precomputed distance matrix, then picks the maximum-demand-score DC in
// each cluster (first occurrence wins ties).
func Precluster(
	custIDs []string,
	cust map[string]instance.Location,
	dcIDs []string,
	dc map[string]instance.Location,
	products []string,
	demand map[instance.DemandKey]float64,
	k int,
) ([]string, error) {
	n := len(dcIDs)
	if k <= 0 {
		return nil, &instance.InvalidInputError{Reason: "cluster count must be positive"}
	}
	if k > n {
		return nil, &instance.InvalidInputError{Reason: "cluster count exceeds number of candidate distribution centers"}
	}
	for _, j := range dcIDs {
		loc := dc[j]
		if loc.Lat < -90 || loc.Lat > 90 || loc.Lon < -180 || loc.Lon > 180 {
			return nil, &instance.InvalidInputError{Reason: "distribution center " + j + " has an invalid coordinate"}
		}
	}

	dist := DistanceMatrix(dcIDs, dc)
	score := DemandScore(custIDs, cust, dcIDs, dc, products, demand)

	labels, err := averageLinkage(dist, n, k)
	if err != nil {
		return nil, err
	}

	selected := make([]string, k)
	for c := 0; c < k; c++ {
		best := -1
		bestScore := math.Inf(-1)
		for a := 0; a < n; a++ {
			if labels[a] != c {
				continue
			}
			if score[a] > bestScore {
				bestScore = score[a]
				best = a
			}
		}
		selected[c] = dcIDs[best]
	}

	return selected, nil
}
