package algorithms

import (
	"math"

	"github.com/dd0wney/cluso-netanalyzer/pkg/graph"
)

// HITSOptions configures the mutual-reinforcement iteration.
type HITSOptions struct {
	MaxIterations int
	Tolerance     float64 // convergence threshold on the authority change
}

// DefaultHITSOptions returns the default HITS configuration.
func DefaultHITSOptions() HITSOptions {
	return HITSOptions{
		MaxIterations: 100,
		Tolerance:     1e-6,
	}
}

// HITSResult contains parallel authority and hub score mappings.
type HITSResult struct {
	Authority  CentralityResult
	Hub        CentralityResult
	Iterations int
	Converged  bool
}

// HITS computes authority and hub scores by mutual reinforcement. Each
// iteration recomputes authority as the sum of hub scores of in-neighbors,
// L2-normalizes, then recomputes hub as the sum of the just-updated authority
// scores of out-neighbors and L2-normalizes again. Iteration stops when the
// total authority-score change falls below the tolerance.
func HITS(g *graph.Graph, opts HITSOptions) *HITSResult {
	n := g.NumNodes()

	authority := make([]float64, n)
	hub := make([]float64, n)
	for i := 0; i < n; i++ {
		authority[i] = 1.0
		hub[i] = 1.0
	}

	prev := make([]float64, n)
	converged := false
	iterations := 0

	for iterations < opts.MaxIterations {
		iterations++
		copy(prev, authority)

		for v := 0; v < n; v++ {
			sum := 0.0
			for _, u := range g.InNeighbors(v) {
				sum += hub[u]
			}
			authority[v] = sum
		}
		l2Normalize(authority)

		// Hub uses the freshly normalized authority values, not the prior
		// iteration's.
		for v := 0; v < n; v++ {
			sum := 0.0
			for _, w := range g.Neighbors(v) {
				sum += authority[w]
			}
			hub[v] = sum
		}
		l2Normalize(hub)

		change := 0.0
		for i := 0; i < n; i++ {
			change += math.Abs(authority[i] - prev[i])
		}
		if change < opts.Tolerance {
			converged = true
			break
		}
	}

	authScores := make(CentralityResult, n)
	hubScores := make(CentralityResult, n)
	for idx, id := range g.Nodes() {
		authScores[id] = authority[idx]
		hubScores[id] = hub[idx]
	}

	return &HITSResult{
		Authority:  authScores,
		Hub:        hubScores,
		Iterations: iterations,
		Converged:  converged,
	}
}

// l2Normalize divides by the L2 norm in place. The divisor defaults to 1 when
// the sum of squares is zero (empty or edgeless graph).
func l2Normalize(scores []float64) {
	sumSquares := 0.0
	for _, s := range scores {
		sumSquares += s * s
	}
	norm := math.Sqrt(sumSquares)
	if norm == 0 {
		norm = 1
	}
	for i := range scores {
		scores[i] /= norm
	}
}
