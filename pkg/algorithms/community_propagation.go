package algorithms

import (
	"github.com/dd0wney/cluso-netanalyzer/pkg/graph"
)

// DefaultLabelPropagationIterations caps the number of full passes.
const DefaultLabelPropagationIterations = 100

// LabelPropagation detects communities by iterative label propagation.
//
// Every node's label starts as its own identifier. Nodes are visited in the
// graph's node enumeration order; each adopts the most frequent label among
// its neighbors (symmetric view). This is the deterministic variant: when
// several labels tie for most frequent, the lexicographically smallest label
// wins. Iteration stops after a full pass with no label change, or after
// maxIterations passes (DefaultLabelPropagationIterations when <= 0).
// Isolated nodes never change label.
func LabelPropagation(g *graph.Graph, maxIterations int) Partition {
	if maxIterations <= 0 {
		maxIterations = DefaultLabelPropagationIterations
	}

	n := g.NumNodes()
	labels := make([]string, n)
	for idx, id := range g.Nodes() {
		labels[idx] = id
	}

	for iter := 0; iter < maxIterations; iter++ {
		changed := false

		for v := 0; v < n; v++ {
			neighbors := g.UndirectedNeighbors(v)
			if len(neighbors) == 0 {
				continue
			}

			counts := make(map[string]int, len(neighbors))
			for _, w := range neighbors {
				counts[labels[w]]++
			}

			best := ""
			bestCount := 0
			for label, count := range counts {
				if count > bestCount || (count == bestCount && label < best) {
					best = label
					bestCount = count
				}
			}

			if best != labels[v] {
				labels[v] = best
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	// Collapse string labels to dense ids in enumeration-discovery order.
	labelIDs := make(map[string]int, n)
	raw := make([]int, n)
	for v := 0; v < n; v++ {
		id, ok := labelIDs[labels[v]]
		if !ok {
			id = len(labelIDs)
			labelIDs[labels[v]] = id
		}
		raw[v] = id
	}
	return normalizePartition(g, raw)
}
