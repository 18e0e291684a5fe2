// Package graph builds arena-indexed adjacency structures from raw edge
// lists. Node identifiers are opaque strings; internally every node gets a
// dense integer index assigned in order of first appearance, and adjacency is
// stored as contiguous neighbor slices keyed by that index. All analysis
// packages operate on these dense indices and translate back to string
// identifiers only at their result boundaries.
package graph

// Graph holds the adjacency structures produced by the builder.
// For undirected graphs adjacency is symmetric and in-degree equals
// out-degree; for directed graphs a reverse adjacency table is maintained for
// algorithms that need incoming neighbors (PageRank, HITS, in-degree
// centrality).
type Graph struct {
	directed bool

	ids   []string       // dense index -> node identifier, enumeration order
	index map[string]int // node identifier -> dense index

	adj  [][]int // forward neighbors per node
	radj [][]int // reverse neighbors per node (directed only; nil otherwise)

	outDeg []int
	inDeg  []int

	edges   [][2]int           // dense index pairs in insertion order
	edgeSet map[[2]int]struct{} // canonical keys for duplicate detection
}

// New creates an empty graph with the given directedness.
func New(directed bool) *Graph {
	return &Graph{
		directed: directed,
		index:    make(map[string]int),
		edgeSet:  make(map[[2]int]struct{}),
	}
}

// Build constructs a graph over an explicit node set. Edges whose endpoints
// are not in the node set are dropped silently, as are self-loops and
// duplicates (in undirected mode (u,v) and (v,u) are the same relation).
func Build(nodes []string, edges [][2]string, directed bool) *Graph {
	g := New(directed)
	for _, id := range nodes {
		g.AddNode(id)
	}
	for _, e := range edges {
		if _, ok := g.index[e[0]]; !ok {
			continue
		}
		if _, ok := g.index[e[1]]; !ok {
			continue
		}
		g.AddEdge(e[0], e[1])
	}
	return g
}

// BuildFromEdgeList constructs a graph whose node set is derived from the
// edge endpoints, enumerated in order of first appearance.
func BuildFromEdgeList(edges [][2]string, directed bool) *Graph {
	g := New(directed)
	for _, e := range edges {
		g.AddNode(e[0])
		g.AddNode(e[1])
		g.AddEdge(e[0], e[1])
	}
	return g
}

// AddNode inserts a node if absent and returns its dense index.
func (g *Graph) AddNode(id string) int {
	if idx, ok := g.index[id]; ok {
		return idx
	}
	idx := len(g.ids)
	g.index[id] = idx
	g.ids = append(g.ids, id)
	g.adj = append(g.adj, nil)
	if g.directed {
		g.radj = append(g.radj, nil)
	}
	g.outDeg = append(g.outDeg, 0)
	g.inDeg = append(g.inDeg, 0)
	return idx
}

// AddEdge inserts an edge between two existing nodes. Self-loops, edges with
// unknown endpoints, and duplicates are dropped; it reports whether the edge
// was inserted.
func (g *Graph) AddEdge(from, to string) bool {
	u, ok := g.index[from]
	if !ok {
		return false
	}
	v, ok := g.index[to]
	if !ok {
		return false
	}
	return g.addEdgeIdx(u, v)
}

func (g *Graph) addEdgeIdx(u, v int) bool {
	if u == v {
		return false
	}

	key := [2]int{u, v}
	if !g.directed && v < u {
		key = [2]int{v, u}
	}
	if _, dup := g.edgeSet[key]; dup {
		return false
	}
	g.edgeSet[key] = struct{}{}
	g.edges = append(g.edges, [2]int{u, v})

	g.adj[u] = append(g.adj[u], v)
	g.outDeg[u]++
	g.inDeg[v]++

	if g.directed {
		g.radj[v] = append(g.radj[v], u)
	} else {
		g.adj[v] = append(g.adj[v], u)
		g.outDeg[v]++
		g.inDeg[u]++
	}
	return true
}

// Directed reports whether the graph is directed.
func (g *Graph) Directed() bool { return g.directed }

// NumNodes returns the node count.
func (g *Graph) NumNodes() int { return len(g.ids) }

// NumEdges returns the edge count (undirected edges counted once).
func (g *Graph) NumEdges() int { return len(g.edges) }

// Nodes returns node identifiers in enumeration order. The returned slice is
// owned by the graph and must not be mutated.
func (g *Graph) Nodes() []string { return g.ids }

// ID returns the identifier for a dense index.
func (g *Graph) ID(idx int) string { return g.ids[idx] }

// Index returns the dense index for an identifier.
func (g *Graph) Index(id string) (int, bool) {
	idx, ok := g.index[id]
	return idx, ok
}

// Neighbors returns the forward (outgoing) neighbors of a node.
func (g *Graph) Neighbors(idx int) []int { return g.adj[idx] }

// InNeighbors returns the nodes with an edge into idx. For undirected graphs
// this is the same slice as Neighbors.
func (g *Graph) InNeighbors(idx int) []int {
	if g.directed {
		return g.radj[idx]
	}
	return g.adj[idx]
}

// OutDegree returns a node's out-degree (total degree when undirected).
func (g *Graph) OutDegree(idx int) int { return g.outDeg[idx] }

// InDegree returns a node's in-degree (total degree when undirected).
func (g *Graph) InDegree(idx int) int { return g.inDeg[idx] }

// Edges returns all edges as dense index pairs in insertion order. The slice
// is owned by the graph and must not be mutated.
func (g *Graph) Edges() [][2]int { return g.edges }

// HasEdge reports whether an edge exists. For undirected graphs the order of
// endpoints is irrelevant.
func (g *Graph) HasEdge(u, v int) bool {
	key := [2]int{u, v}
	if !g.directed && v < u {
		key = [2]int{v, u}
	}
	_, ok := g.edgeSet[key]
	return ok
}

// UndirectedNeighbors returns the union of forward and reverse neighbors,
// deduplicated, preserving forward-insertion order first. For undirected
// graphs it is the plain neighbor slice. Link prediction operates on this
// symmetric view even for directed graphs.
func (g *Graph) UndirectedNeighbors(idx int) []int {
	if !g.directed {
		return g.adj[idx]
	}
	seen := make(map[int]struct{}, len(g.adj[idx])+len(g.radj[idx]))
	out := make([]int, 0, len(g.adj[idx])+len(g.radj[idx]))
	for _, w := range g.adj[idx] {
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	for _, w := range g.radj[idx] {
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}
