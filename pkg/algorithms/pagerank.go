package algorithms

import (
	"math"

	"github.com/dd0wney/cluso-netanalyzer/pkg/graph"
)

// PageRankOptions configures the power iteration.
type PageRankOptions struct {
	DampingFactor float64 // usually 0.85
	MaxIterations int
	Tolerance     float64 // convergence threshold on the L1 rank change
}

// DefaultPageRankOptions returns the default PageRank configuration.
func DefaultPageRankOptions() PageRankOptions {
	return PageRankOptions{
		DampingFactor: 0.85,
		MaxIterations: 100,
		Tolerance:     1e-6,
	}
}

// PageRankResult contains PageRank scores for all nodes.
type PageRankResult struct {
	Scores     CentralityResult
	Iterations int
	Converged  bool
}

// PageRank computes PageRank scores by power iteration. Rank belonging to
// dangling nodes (out-degree zero) is redistributed uniformly each iteration.
// Iteration stops when the sum of absolute per-node rank changes falls below
// the tolerance. After convergence ranks are renormalized to sum to exactly 1
// to guard against floating-point drift; if the total rank underflows below
// 1e-9 an empty result is returned.
func PageRank(g *graph.Graph, opts PageRankOptions) *PageRankResult {
	n := g.NumNodes()
	if n == 0 {
		return &PageRankResult{Scores: CentralityResult{}, Converged: true}
	}

	ranks := make([]float64, n)
	next := make([]float64, n)
	for i := range ranks {
		ranks[i] = 1.0 / float64(n)
	}

	converged := false
	iterations := 0

	for iterations < opts.MaxIterations {
		iterations++

		// Rank held by dangling nodes is spread uniformly over all nodes.
		danglingSum := 0.0
		for i := 0; i < n; i++ {
			if g.OutDegree(i) == 0 {
				danglingSum += ranks[i]
			}
		}
		danglingShare := danglingSum / float64(n)

		base := (1.0 - opts.DampingFactor) / float64(n)
		for v := 0; v < n; v++ {
			incoming := 0.0
			for _, u := range g.InNeighbors(v) {
				if outDeg := g.OutDegree(u); outDeg > 0 {
					incoming += ranks[u] / float64(outDeg)
				}
			}
			next[v] = base + opts.DampingFactor*(incoming+danglingShare)
		}

		totalChange := 0.0
		for i := 0; i < n; i++ {
			totalChange += math.Abs(next[i] - ranks[i])
		}
		ranks, next = next, ranks

		if totalChange < opts.Tolerance {
			converged = true
			break
		}
	}

	total := 0.0
	for _, r := range ranks {
		total += r
	}
	if total < 1e-9 {
		return &PageRankResult{Scores: CentralityResult{}, Iterations: iterations, Converged: converged}
	}

	scores := make(CentralityResult, n)
	for idx, id := range g.Nodes() {
		scores[id] = ranks[idx] / total
	}

	return &PageRankResult{
		Scores:     scores,
		Iterations: iterations,
		Converged:  converged,
	}
}
