package algorithms

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/dd0wney/cluso-netanalyzer/pkg/graph"
)

// twoTriangles is two triangles joined by a single bridge edge.
func twoTriangles() *graph.Graph {
	return graph.BuildFromEdgeList([][2]string{
		{"a", "b"}, {"b", "c"}, {"c", "a"},
		{"x", "y"}, {"y", "z"}, {"z", "x"},
		{"c", "x"},
	}, false)
}

func sameCommunity(t *testing.T, p Partition, ids ...string) {
	t.Helper()
	for _, id := range ids[1:] {
		if p[id] != p[ids[0]] {
			t.Errorf("Expected %s and %s in the same community, got %d vs %d",
				ids[0], id, p[ids[0]], p[id])
		}
	}
}

func TestConnectedComponents(t *testing.T) {
	g := graph.Build(
		[]string{"a", "b", "c", "d", "lonely"},
		[][2]string{{"a", "b"}, {"c", "d"}},
		false,
	)

	p := ConnectedComponents(g)

	if p.NumCommunities() != 3 {
		t.Fatalf("Expected 3 components, got %d", p.NumCommunities())
	}
	sameCommunity(t, p, "a", "b")
	sameCommunity(t, p, "c", "d")
	if p["a"] != 0 || p["c"] != 1 || p["lonely"] != 2 {
		t.Errorf("Expected dense ids in discovery order, got %v", p)
	}
}

func TestConnectedComponents_DirectedIsWeak(t *testing.T) {
	g := graph.BuildFromEdgeList([][2]string{{"a", "b"}, {"c", "b"}}, true)

	p := ConnectedComponents(g)

	if p.NumCommunities() != 1 {
		t.Errorf("Expected one weak component, got %d", p.NumCommunities())
	}
}

func TestLabelPropagation_TwoTriangles(t *testing.T) {
	// Smallest-label tie-breaking can flood a lexicographically small label
	// across a bridge; this fixture keeps the invading label from winning
	// the far side's ties.
	g := graph.BuildFromEdgeList([][2]string{
		{"x", "y"}, {"y", "z"}, {"z", "x"},
		{"a", "b"}, {"b", "c"}, {"c", "a"},
		{"z", "a"},
	}, false)

	p := LabelPropagation(g, 0)

	sameCommunity(t, p, "x", "y", "z")
	sameCommunity(t, p, "a", "b", "c")
	if p["x"] == p["a"] {
		t.Error("Expected the triangles in different communities")
	}
}

func TestLabelPropagation_IsolatedNodeKeepsLabel(t *testing.T) {
	g := graph.Build([]string{"a", "b", "x"}, [][2]string{{"a", "b"}}, false)

	p := LabelPropagation(g, 0)

	if p["x"] == p["a"] {
		t.Error("Expected isolated node in its own community")
	}
	if _, ok := p["x"]; !ok {
		t.Error("Expected isolated node present in partition")
	}
}

func TestLabelPropagation_Deterministic(t *testing.T) {
	g := twoTriangles()
	first := LabelPropagation(g, 0)
	for i := 0; i < 5; i++ {
		again := LabelPropagation(g, 0)
		for id, c := range first {
			if again[id] != c {
				t.Fatalf("Run %d diverged at %s: %d vs %d", i, id, again[id], c)
			}
		}
	}
}

func TestLouvain_TwoCliques(t *testing.T) {
	// Two K4 cliques with one bridge edge.
	var edges [][2]string
	clique := func(ids []string) {
		for i := range ids {
			for j := i + 1; j < len(ids); j++ {
				edges = append(edges, [2]string{ids[i], ids[j]})
			}
		}
	}
	clique([]string{"a", "b", "c", "d"})
	clique([]string{"w", "x", "y", "z"})
	edges = append(edges, [2]string{"d", "w"})
	g := graph.BuildFromEdgeList(edges, false)

	p := Louvain(g, DefaultLouvainOptions())

	if p.NumCommunities() != 2 {
		t.Fatalf("Expected 2 communities, got %d", p.NumCommunities())
	}
	sameCommunity(t, p, "a", "b", "c", "d")
	sameCommunity(t, p, "w", "x", "y", "z")
}

func TestLouvain_ModularityInvariantAcrossRuns(t *testing.T) {
	g := karateGraph(t)

	first := Louvain(g, DefaultLouvainOptions())
	second := Louvain(g, DefaultLouvainOptions())

	q1 := Modularity(g, first, 1.0)
	q2 := Modularity(g, second, 1.0)

	if math.Abs(q1-q2) > 1e-12 {
		t.Errorf("Expected identical modularity across runs, got %f vs %f", q1, q2)
	}
	if q1 < 0.3 {
		t.Errorf("Expected karate modularity >= 0.3, got %f", q1)
	}
}

func TestLouvain_ResolutionBias(t *testing.T) {
	g := karateGraph(t)

	coarse := Louvain(g, LouvainOptions{Resolution: 0.5, MaxPasses: 100})
	fine := Louvain(g, LouvainOptions{Resolution: 2.0, MaxPasses: 100})

	if coarse.NumCommunities() > fine.NumCommunities() {
		t.Errorf("Expected resolution 0.5 to produce no more communities than 2.0: %d vs %d",
			coarse.NumCommunities(), fine.NumCommunities())
	}
}

func TestLouvain_EdgelessGraph(t *testing.T) {
	g := graph.Build([]string{"a", "b", "c"}, nil, false)

	p := Louvain(g, DefaultLouvainOptions())

	if p.NumCommunities() != 3 {
		t.Errorf("Expected singleton communities on edgeless graph, got %d", p.NumCommunities())
	}
}

func TestLouvain_EmptyGraph(t *testing.T) {
	g := graph.Build(nil, nil, false)
	p := Louvain(g, DefaultLouvainOptions())
	if len(p) != 0 {
		t.Errorf("Expected empty partition, got %v", p)
	}
}

func TestModularity_PerfectSplitBeatsMerged(t *testing.T) {
	g := twoTriangles()

	split := Partition{"a": 0, "b": 0, "c": 0, "x": 1, "y": 1, "z": 1}
	merged := Partition{"a": 0, "b": 0, "c": 0, "x": 0, "y": 0, "z": 0}

	if Modularity(g, split, 1.0) <= Modularity(g, merged, 1.0) {
		t.Errorf("Expected split (%f) > merged (%f)",
			Modularity(g, split, 1.0), Modularity(g, merged, 1.0))
	}
	// Everything in one community scores zero.
	if Modularity(g, merged, 1.0) != 0.0 {
		t.Errorf("Expected 0 for single community, got %f", Modularity(g, merged, 1.0))
	}
}

func TestGirvanNewman_SplitsBridge(t *testing.T) {
	p, err := GirvanNewman(twoTriangles(), GirvanNewmanOptions{TargetCommunities: 2})
	if err != nil {
		t.Fatalf("GirvanNewman failed: %v", err)
	}

	if p.NumCommunities() != 2 {
		t.Fatalf("Expected 2 communities, got %d", p.NumCommunities())
	}
	sameCommunity(t, p, "a", "b", "c")
	sameCommunity(t, p, "x", "y", "z")
}

func TestGirvanNewman_TargetAlreadyMet(t *testing.T) {
	// Two components, target 2: return initial components, remove no edges.
	g := graph.BuildFromEdgeList([][2]string{{"a", "b"}, {"c", "d"}}, false)

	p, err := GirvanNewman(g, GirvanNewmanOptions{TargetCommunities: 2})
	if err != nil {
		t.Fatalf("GirvanNewman failed: %v", err)
	}

	if p.NumCommunities() != 2 {
		t.Errorf("Expected the 2 initial components, got %d", p.NumCommunities())
	}
	sameCommunity(t, p, "a", "b")
	sameCommunity(t, p, "c", "d")
}

func TestGirvanNewman_GraphTooLarge(t *testing.T) {
	var edges [][2]string
	for i := 0; i < MaxGirvanNewmanNodes+1; i++ {
		edges = append(edges, [2]string{fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", i+1)})
	}
	g := graph.BuildFromEdgeList(edges, false)

	_, err := GirvanNewman(g, GirvanNewmanOptions{TargetCommunities: 2})

	if !errors.Is(err, ErrGraphTooLarge) {
		t.Fatalf("Expected ErrGraphTooLarge, got %v", err)
	}
}

func TestGirvanNewman_ExhaustsEdges(t *testing.T) {
	// Target above what the topology yields: every edge gets removed and
	// each node ends up alone.
	g := graph.BuildFromEdgeList([][2]string{{"a", "b"}, {"b", "c"}}, false)

	p, err := GirvanNewman(g, GirvanNewmanOptions{TargetCommunities: 5})
	if err != nil {
		t.Fatalf("GirvanNewman failed: %v", err)
	}

	if p.NumCommunities() != 3 {
		t.Errorf("Expected 3 singleton communities, got %d", p.NumCommunities())
	}
}

func TestDetectCommunities_UnknownAlgorithm(t *testing.T) {
	g := twoTriangles()

	_, err := DetectCommunities(g, "spectral", CommunityOptions{})

	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("Expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestDetectCommunities_Dispatch(t *testing.T) {
	g := twoTriangles()

	for _, name := range []string{
		CommunityLabelPropagation,
		CommunityLouvain,
		CommunityGirvanNewman,
		CommunityComponents,
	} {
		opts := CommunityOptions{TargetCommunities: 2}
		p, err := DetectCommunities(g, name, opts)
		if err != nil {
			t.Fatalf("%s failed: %v", name, err)
		}
		if len(p) != g.NumNodes() {
			t.Errorf("%s: expected every node mapped, got %d of %d", name, len(p), g.NumNodes())
		}
	}
}
