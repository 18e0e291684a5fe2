package algorithms

import (
	"github.com/dd0wney/cluso-netanalyzer/pkg/graph"
)

// Modularity scores a partition against the null model: the fraction of
// edges falling inside communities minus the fraction expected if edges were
// rewired at random preserving degrees. Computed over the symmetric
// unit-weight view; resolution scales the expectation term. Returns 0 for an
// edgeless graph.
func Modularity(g *graph.Graph, p Partition, resolution float64) float64 {
	if resolution <= 0 {
		resolution = 1.0
	}

	m := 0
	intra := make(map[int]int)   // community -> internal edge count
	degrees := make(map[int]int) // community -> total degree

	n := g.NumNodes()
	for v := 0; v < n; v++ {
		cv, ok := p[g.ID(v)]
		if !ok {
			continue
		}
		neighbors := g.UndirectedNeighbors(v)
		degrees[cv] += len(neighbors)
		for _, w := range neighbors {
			if v >= w {
				continue // each undirected edge once
			}
			m++
			if cw, ok := p[g.ID(w)]; ok && cw == cv {
				intra[cv]++
			}
		}
	}

	if m == 0 {
		return 0.0
	}

	twoM := 2.0 * float64(m)
	q := 0.0
	for c, deg := range degrees {
		q += float64(intra[c])/float64(m) - resolution*(float64(deg)/twoM)*(float64(deg)/twoM)
	}
	return q
}
