package algorithms

import (
	"sort"

	"github.com/dd0wney/cluso-netanalyzer/pkg/graph"
)

// LouvainOptions configures multilevel modularity optimization.
type LouvainOptions struct {
	// Resolution scales the degree-penalty term of the modularity gain.
	// Values below 1 bias toward larger communities, above 1 toward smaller
	// ones. Must be positive.
	Resolution float64

	// MaxPasses bounds the local-optimization passes per level.
	MaxPasses int
}

// DefaultLouvainOptions returns the standard configuration.
func DefaultLouvainOptions() LouvainOptions {
	return LouvainOptions{
		Resolution: 1.0,
		MaxPasses:  100,
	}
}

// levelEdge is a weighted neighbor entry in an aggregated graph level.
// Weights are integer edge multiplicities.
type levelEdge struct {
	to     int
	weight int
}

// levelGraph is one level of the Louvain hierarchy: the original graph viewed
// as undirected unit-weight edges at level zero, community aggregates above.
type levelGraph struct {
	n      int
	adj    [][]levelEdge
	degree []int // sum of incident edge weights per node
	m      int   // total edge weight, each undirected edge counted once
}

// Louvain detects communities by multilevel modularity optimization: local
// moves until no node improves modularity, then aggregation of communities
// into a coarser graph, repeated until aggregation stops merging. The
// hierarchy is composed top-down so every original node maps to its final
// community, with ids renumbered densely.
//
// Node visiting order is the ascending dense index, and tied candidate
// communities resolve to the smallest community id, so repeated runs on the
// same input produce identical partitions.
func Louvain(g *graph.Graph, opts LouvainOptions) Partition {
	if opts.Resolution <= 0 {
		opts.Resolution = 1.0
	}
	if opts.MaxPasses <= 0 {
		opts.MaxPasses = 100
	}

	n := g.NumNodes()
	if n == 0 {
		return Partition{}
	}

	level := levelFromGraph(g)

	// levels[i] maps a level-i node to its community, which becomes a node of
	// level i+1.
	var levels [][]int

	for {
		comm, moved := localMove(level, opts)
		merged, next := aggregate(level, comm)
		levels = append(levels, merged)

		if !moved || next.n == level.n || next.m == 0 {
			break
		}
		level = next
	}

	// Compose the hierarchy: chase each original node through every level.
	raw := make([]int, n)
	for v := 0; v < n; v++ {
		c := v
		for _, mapping := range levels {
			c = mapping[c]
		}
		raw[v] = c
	}
	return normalizePartition(g, raw)
}

// levelFromGraph builds level zero from the symmetric unit-weight view.
func levelFromGraph(g *graph.Graph) *levelGraph {
	n := g.NumNodes()
	lvl := &levelGraph{
		n:      n,
		adj:    make([][]levelEdge, n),
		degree: make([]int, n),
	}
	for v := 0; v < n; v++ {
		neighbors := g.UndirectedNeighbors(v)
		lvl.adj[v] = make([]levelEdge, 0, len(neighbors))
		for _, w := range neighbors {
			lvl.adj[v] = append(lvl.adj[v], levelEdge{to: w, weight: 1})
			if v < w {
				lvl.m++
			}
		}
		lvl.degree[v] = len(neighbors)
	}
	return lvl
}

// localMove runs modularity-optimizing single-node moves until a full pass
// yields none, bounded by the pass failsafe. Returns the community of each
// node and whether any node moved at all.
func localMove(lvl *levelGraph, opts LouvainOptions) ([]int, bool) {
	comm := make([]int, lvl.n)
	tot := make([]int, lvl.n) // total degree per community
	for v := 0; v < lvl.n; v++ {
		comm[v] = v
		tot[v] = lvl.degree[v]
	}

	if lvl.m == 0 {
		return comm, false
	}

	twoM := 2.0 * float64(lvl.m)
	anyMoved := false

	for pass := 0; pass < opts.MaxPasses; pass++ {
		movedThisPass := false

		for v := 0; v < lvl.n; v++ {
			own := comm[v]
			kv := float64(lvl.degree[v])

			// Edge weight from v into each neighboring community.
			weightTo := map[int]int{own: 0}
			for _, e := range lvl.adj[v] {
				weightTo[comm[e.to]] += e.weight
			}

			// Gain of membership in community c, with v detached from its
			// current community so both sides use the same quantity.
			gain := func(c int) float64 {
				totC := tot[c]
				if c == own {
					totC -= lvl.degree[v]
				}
				return float64(weightTo[c]) - opts.Resolution*kv*float64(totC)/twoM
			}

			current := gain(own)
			bestComm := own
			bestGain := current

			candidates := make([]int, 0, len(weightTo))
			for c := range weightTo {
				if c != own {
					candidates = append(candidates, c)
				}
			}
			sort.Ints(candidates)

			for _, c := range candidates {
				if q := gain(c); q > bestGain {
					bestGain = q
					bestComm = c
				}
			}

			if bestComm != own {
				tot[own] -= lvl.degree[v]
				tot[bestComm] += lvl.degree[v]
				comm[v] = bestComm
				movedThisPass = true
				anyMoved = true
			}
		}

		if !movedThisPass {
			break
		}
	}

	return comm, anyMoved
}

// aggregate renumbers the communities densely and builds the next level,
// whose nodes are communities and whose edge multiplicity between two
// communities is the total weight of edges between their members.
// Intra-community edges are discarded, not retained as weighted self-loops.
func aggregate(lvl *levelGraph, comm []int) ([]int, *levelGraph) {
	dense := make(map[int]int)
	merged := make([]int, lvl.n)
	for v := 0; v < lvl.n; v++ {
		id, ok := dense[comm[v]]
		if !ok {
			id = len(dense)
			dense[comm[v]] = id
		}
		merged[v] = id
	}

	k := len(dense)
	weights := make(map[[2]int]int)
	for v := 0; v < lvl.n; v++ {
		for _, e := range lvl.adj[v] {
			if v >= e.to {
				continue // each undirected edge once
			}
			ca, cb := merged[v], merged[e.to]
			if ca == cb {
				continue
			}
			if cb < ca {
				ca, cb = cb, ca
			}
			weights[[2]int{ca, cb}] += e.weight
		}
	}

	next := &levelGraph{
		n:      k,
		adj:    make([][]levelEdge, k),
		degree: make([]int, k),
	}
	keys := make([][2]int, 0, len(weights))
	for key := range weights {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})
	for _, key := range keys {
		w := weights[key]
		ca, cb := key[0], key[1]
		next.adj[ca] = append(next.adj[ca], levelEdge{to: cb, weight: w})
		next.adj[cb] = append(next.adj[cb], levelEdge{to: ca, weight: w})
		next.degree[ca] += w
		next.degree[cb] += w
		next.m += w
	}

	return merged, next
}
