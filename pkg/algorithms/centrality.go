package algorithms

import (
	"github.com/dd0wney/cluso-netanalyzer/pkg/graph"
)

// DegreeDirection selects which degree to normalize for degree centrality.
type DegreeDirection int

const (
	DegreeOut DegreeDirection = iota // out-degree (total degree when undirected)
	DegreeIn                         // in-degree (total degree when undirected)
)

// DegreeCentrality computes degree centrality for all nodes: the raw degree
// count normalized by (n-1), or zero when the graph has at most one node.
func DegreeCentrality(g *graph.Graph, direction DegreeDirection) CentralityResult {
	n := g.NumNodes()
	result := make(CentralityResult, n)
	for idx, id := range g.Nodes() {
		if n <= 1 {
			result[id] = 0.0
			continue
		}
		deg := g.OutDegree(idx)
		if direction == DegreeIn {
			deg = g.InDegree(idx)
		}
		result[id] = float64(deg) / float64(n-1)
	}
	return result
}

// ClosenessCentrality computes closeness centrality for all nodes via single
// source BFS over the forward adjacency. Score = reachable / totalDistance,
// or 0 for nodes that reach nothing. Disconnected nodes are scored on their
// own reachable component only; no harmonic correction is applied.
func ClosenessCentrality(g *graph.Graph) CentralityResult {
	n := g.NumNodes()
	result := make(CentralityResult, n)
	dist := make([]int, n)

	for source, id := range g.Nodes() {
		for i := range dist {
			dist[i] = -1
		}
		dist[source] = 0

		queue := []int{source}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, w := range g.Neighbors(v) {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
			}
		}

		totalDistance := 0
		reachable := 0
		for _, d := range dist {
			if d > 0 {
				totalDistance += d
				reachable++
			}
		}

		if totalDistance > 0 {
			result[id] = float64(reachable) / float64(totalDistance)
		} else {
			result[id] = 0.0
		}
	}
	return result
}

// brandesAccumulate runs one Brandes pass per source over the given adjacency
// and returns raw (unnormalized) node betweenness plus per-edge betweenness.
// The caller applies normalization so that node and edge variants can each
// use the appropriate factor. When undirected is true, edge credit from both
// traversal directions accumulates onto the canonical (min,max) key.
func brandesAccumulate(adj [][]int, undirected bool) ([]float64, map[[2]int]float64) {
	n := len(adj)
	nodeBetweenness := make([]float64, n)
	edgeBetweenness := make(map[[2]int]float64)

	sigma := make([]float64, n)
	dist := make([]int, n)
	delta := make([]float64, n)
	preds := make([][]int, n)
	stack := make([]int, 0, n)

	for source := 0; source < n; source++ {
		for i := 0; i < n; i++ {
			sigma[i] = 0
			dist[i] = -1
			delta[i] = 0
			preds[i] = preds[i][:0]
		}
		stack = stack[:0]

		sigma[source] = 1
		dist[source] = 0
		queue := []int{source}

		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)

			for _, w := range adj[v] {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					preds[w] = append(preds[w], v)
				}
			}
		}

		// Back-propagate dependency in reverse BFS-finish order, crediting
		// both the predecessor node and the edge used on the shortest path.
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range preds[w] {
				contribution := (sigma[v] / sigma[w]) * (1.0 + delta[w])
				delta[v] += contribution

				key := [2]int{v, w}
				if undirected && w < v {
					key = [2]int{w, v}
				}
				edgeBetweenness[key] += contribution
			}
			if w != source {
				nodeBetweenness[w] += delta[w]
			}
		}
	}

	return nodeBetweenness, edgeBetweenness
}

// BetweennessCentrality computes betweenness centrality for all nodes using
// Brandes' algorithm. Raw accumulations are scaled by 1/((n-1)(n-2)) for
// directed graphs and 2/((n-1)(n-2)) for undirected graphs, applied only when
// n > 2, so values are comparable across graph sizes.
func BetweennessCentrality(g *graph.Graph) CentralityResult {
	n := g.NumNodes()
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		adj[i] = g.Neighbors(i)
	}

	raw, _ := brandesAccumulate(adj, !g.Directed())

	scale := 1.0
	if n > 2 {
		if g.Directed() {
			scale = 1.0 / float64((n-1)*(n-2))
		} else {
			scale = 2.0 / float64((n-1)*(n-2))
		}
	}

	result := make(CentralityResult, n)
	for idx, id := range g.Nodes() {
		result[id] = raw[idx] * scale
	}
	return result
}
