package algorithms

import (
	"math"
	"sort"

	"github.com/dd0wney/cluso-netanalyzer/pkg/graph"
)

// LinkPredictionMethod selects the scoring formula for link prediction.
type LinkPredictionMethod int

const (
	// LinkPredCommonNeighbours scores by |N(u) ∩ N(v)| — integer counts.
	LinkPredCommonNeighbours LinkPredictionMethod = iota

	// LinkPredJaccard scores by |N(u) ∩ N(v)| / |N(u) ∪ N(v)|, 0 when the
	// union is empty.
	LinkPredJaccard

	// LinkPredAdamicAdar scores by Σ_{w ∈ N(u)∩N(v)} 1/ln(|N(w)|), skipping
	// common neighbors of degree <= 1 to avoid division by zero or negative
	// weights.
	LinkPredAdamicAdar

	// LinkPredPreferentialAttachment scores by |N(u)| × |N(v)| — degree
	// product. Requires no intersection computation.
	LinkPredPreferentialAttachment
)

// LinkPrediction holds a predicted link score between two nodes.
type LinkPrediction struct {
	Source string
	Target string
	Score  float64
}

// PredictLinks scores every unordered pair of distinct, unconnected nodes
// using neighbor-set algebra over the undirected neighbor view (directed
// graphs are treated as symmetric here). Pairs already joined by an edge in
// either direction are never emitted, nor are self-pairs.
//
// Most methods emit only strictly positive scores; Jaccard emits whenever
// the neighbor union is non-empty, even when the score is 0. Results are
// sorted by score descending, ties kept in pair-enumeration order.
func PredictLinks(g *graph.Graph, method LinkPredictionMethod) []LinkPrediction {
	n := g.NumNodes()

	sets := make([]map[int]struct{}, n)
	for v := 0; v < n; v++ {
		neighbors := g.UndirectedNeighbors(v)
		sets[v] = make(map[int]struct{}, len(neighbors))
		for _, w := range neighbors {
			sets[v][w] = struct{}{}
		}
	}

	var predictions []LinkPrediction
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if g.HasEdge(u, v) || g.HasEdge(v, u) {
				continue
			}

			score, emit := scorePair(sets, u, v, method)
			if !emit {
				continue
			}
			predictions = append(predictions, LinkPrediction{
				Source: g.ID(u),
				Target: g.ID(v),
				Score:  score,
			})
		}
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Score > predictions[j].Score
	})
	return predictions
}

func scorePair(sets []map[int]struct{}, u, v int, method LinkPredictionMethod) (float64, bool) {
	setU, setV := sets[u], sets[v]

	switch method {
	case LinkPredPreferentialAttachment:
		score := float64(len(setU)) * float64(len(setV))
		return score, score > 0

	case LinkPredCommonNeighbours:
		score := float64(countIntersection(setU, setV))
		return score, score > 0

	case LinkPredJaccard:
		union := len(setU) + len(setV) - countIntersection(setU, setV)
		if union == 0 {
			return 0, false
		}
		return float64(countIntersection(setU, setV)) / float64(union), true

	case LinkPredAdamicAdar:
		small, big := setU, setV
		if len(small) > len(big) {
			small, big = big, small
		}
		sum := 0.0
		for w := range small {
			if _, ok := big[w]; !ok {
				continue
			}
			if degree := len(sets[w]); degree > 1 {
				sum += 1.0 / math.Log(float64(degree))
			}
		}
		return sum, sum > 0

	default:
		return 0, false
	}
}

func countIntersection(a, b map[int]struct{}) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	count := 0
	for w := range a {
		if _, ok := b[w]; ok {
			count++
		}
	}
	return count
}
