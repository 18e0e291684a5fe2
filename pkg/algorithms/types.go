// Package algorithms implements the analysis engine: centrality measures,
// community detection, link prediction, and partition-quality metrics. All
// routines are synchronous pure functions over an immutable graph; results map
// back to string node identifiers at the boundary.
package algorithms

import (
	"sort"

	"github.com/dd0wney/cluso-netanalyzer/pkg/graph"
)

// CentralityResult maps node identifiers to their scores.
type CentralityResult map[string]float64

// Partition maps node identifiers to community labels. Labels are dense
// integers renumbered in enumeration-discovery order.
type Partition map[string]int

// NumCommunities returns the number of distinct labels in the partition.
func (p Partition) NumCommunities() int {
	seen := make(map[int]struct{}, len(p))
	for _, c := range p {
		seen[c] = struct{}{}
	}
	return len(seen)
}

// RankedNode pairs a node identifier with its score.
type RankedNode struct {
	ID    string
	Score float64
}

// TopNodes returns the n highest-scoring nodes in descending score order.
// Equal scores rank by graph enumeration order.
func TopNodes(g *graph.Graph, scores CentralityResult, n int) []RankedNode {
	ranked := make([]RankedNode, 0, len(scores))
	for _, id := range g.Nodes() {
		if score, ok := scores[id]; ok {
			ranked = append(ranked, RankedNode{ID: id, Score: score})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// normalizePartition converts a per-index label slice into a Partition with
// labels renumbered densely from 0 in order of first appearance.
func normalizePartition(g *graph.Graph, raw []int) Partition {
	renumber := make(map[int]int)
	p := make(Partition, len(raw))
	for idx, label := range raw {
		dense, ok := renumber[label]
		if !ok {
			dense = len(renumber)
			renumber[label] = dense
		}
		p[g.ID(idx)] = dense
	}
	return p
}
