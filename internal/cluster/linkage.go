package cluster

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"example.com/your_project/network-design/internal/instance"
)

// pairKey identifies an unordered pair of cluster node indices in the
// working distance store.
type pairKey struct {
	lo, hi int
}

func newPairKey(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// averageLinkage performs UPGMA (unweighted pair-group average linkage)
// agglomerative clustering over a precomputed n x n dissimilarity
// matrix, merging down to exactly k clusters, and returns a label per
// original point in [0, k).
//
// Adapted from the Lance-Williams merge-and-active-set-tracking
// structure used for Ward's method elsewhere in this codebase's lineage
// (active-node bookkeeping over n+step synthetic cluster indices), with
// the recurrence swapped for the unweighted-average-linkage update
// d(new,k) = (n_i*d(i,k) + n_j*d(j,k)) / (n_i+n_j).
func averageLinkage(dist *mat.SymDense, n, k int) ([]int, error) {
	if n <= 0 {
		return nil, &instance.InvalidInputError{Reason: "no distribution centers to cluster"}
	}

	totalNodes := 2*n - 1
	active := make([]bool, totalNodes)
	size := make([]int, totalNodes)
	members := make([][]int, totalNodes)

	d := make(map[pairKey]float64, n*(n-1)/2)
	for i := 0; i < n; i++ {
		active[i] = true
		size[i] = 1
		members[i] = []int{i}
		for j := i + 1; j < n; j++ {
			d[newPairKey(i, j)] = dist.At(i, j)
		}
	}

	getDist := func(a, b int) float64 { return d[newPairKey(a, b)] }
	setDist := func(a, b int, v float64) { d[newPairKey(a, b)] = v }

	mergeCount := n - k
	for step := 0; step < mergeCount; step++ {
		actives := activeIndices(active, n+step)

		minDist := math.Inf(1)
		minI, minJ := -1, -1
		for ii := 0; ii < len(actives); ii++ {
			for jj := ii + 1; jj < len(actives); jj++ {
				a, b := actives[ii], actives[jj]
				if dij := getDist(a, b); dij < minDist {
					minDist = dij
					minI, minJ = a, b
				}
			}
		}

		newCluster := n + step
		ni := float64(size[minI])
		nj := float64(size[minJ])

		active[minI] = false
		active[minJ] = false
		active[newCluster] = true
		size[newCluster] = int(ni) + int(nj)
		members[newCluster] = append(append([]int{}, members[minI]...), members[minJ]...)

		for _, other := range actives {
			if other == minI || other == minJ {
				continue
			}
			dik := getDist(minI, other)
			djk := getDist(minJ, other)
			setDist(newCluster, other, (ni*dik+nj*djk)/(ni+nj))
		}
	}

	var finalClusters []int
	for i := 0; i < totalNodes; i++ {
		if active[i] {
			finalClusters = append(finalClusters, i)
		}
	}
	sort.Slice(finalClusters, func(x, y int) bool {
		return minMember(members[finalClusters[x]]) < minMember(members[finalClusters[y]])
	})

	labels := make([]int, n)
	for label, clusterIdx := range finalClusters {
		for _, point := range members[clusterIdx] {
			labels[point] = label
		}
	}
	return labels, nil
}

func activeIndices(active []bool, upTo int) []int {
	indices := make([]int, 0, upTo)
	for i := 0; i <= upTo && i < len(active); i++ {
		if active[i] {
			indices = append(indices, i)
		}
	}
	return indices
}

func minMember(points []int) int {
	m := points[0]
	for _, p := range points[1:] {
		if p < m {
			m = p
		}
	}
	return m
}
