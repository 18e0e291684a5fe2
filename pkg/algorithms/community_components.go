package algorithms

import (
	"github.com/dd0wney/cluso-netanalyzer/pkg/graph"
)

// ConnectedComponents assigns each node a community id equal to its connected
// component, treating adjacency as symmetric even for directed graphs
// (weak connectivity). Components are numbered in the order their first node
// appears in the graph's node enumeration.
func ConnectedComponents(g *graph.Graph) Partition {
	n := g.NumNodes()
	component := make([]int, n)
	for i := range component {
		component[i] = -1
	}

	next := 0
	for start := 0; start < n; start++ {
		if component[start] >= 0 {
			continue
		}
		component[start] = next
		queue := []int{start}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, w := range g.UndirectedNeighbors(v) {
				if component[w] < 0 {
					component[w] = next
					queue = append(queue, w)
				}
			}
		}
		next++
	}

	return normalizePartition(g, component)
}

// componentsOf labels connected components over a mutable adjacency copy.
// Used by Girvan-Newman between edge removals.
func componentsOf(adj map[int]map[int]struct{}, n int) ([]int, int) {
	component := make([]int, n)
	for i := range component {
		component[i] = -1
	}

	count := 0
	for start := 0; start < n; start++ {
		if component[start] >= 0 {
			continue
		}
		component[start] = count
		queue := []int{start}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for w := range adj[v] {
				if component[w] < 0 {
					component[w] = count
					queue = append(queue, w)
				}
			}
		}
		count++
	}
	return component, count
}
