package algorithms

import (
	"fmt"

	"github.com/dd0wney/cluso-netanalyzer/pkg/graph"
)

// Algorithm selector names accepted by the dispatch entry points.
const (
	CentralityInDegree    = "in_degree"
	CentralityOutDegree   = "out_degree"
	CentralityCloseness   = "closeness"
	CentralityBetweenness = "betweenness"
	CentralityPageRank    = "pagerank"
	CentralityHITS        = "hits"

	CommunityLabelPropagation = "label_propagation"
	CommunityLouvain          = "louvain"
	CommunityGirvanNewman     = "girvan_newman"
	CommunityComponents       = "components"

	LinkCommonNeighbours       = "common_neighbours"
	LinkJaccard                = "jaccard"
	LinkAdamicAdar             = "adamic_adar"
	LinkPreferentialAttachment = "preferential_attachment"
)

// CentralityOutput carries a centrality computation result. Scores holds the
// per-node mapping (authority scores for HITS); Hub is populated only for
// HITS.
type CentralityOutput struct {
	Scores CentralityResult
	Hub    CentralityResult
}

// ComputeCentrality dispatches to a centrality measure by name. An unknown
// name is a configuration error, surfaced verbatim and never retried.
func ComputeCentrality(g *graph.Graph, algorithm string) (*CentralityOutput, error) {
	switch algorithm {
	case CentralityInDegree:
		return &CentralityOutput{Scores: DegreeCentrality(g, DegreeIn)}, nil
	case CentralityOutDegree:
		return &CentralityOutput{Scores: DegreeCentrality(g, DegreeOut)}, nil
	case CentralityCloseness:
		return &CentralityOutput{Scores: ClosenessCentrality(g)}, nil
	case CentralityBetweenness:
		return &CentralityOutput{Scores: BetweennessCentrality(g)}, nil
	case CentralityPageRank:
		return &CentralityOutput{Scores: PageRank(g, DefaultPageRankOptions()).Scores}, nil
	case CentralityHITS:
		result := HITS(g, DefaultHITSOptions())
		return &CentralityOutput{Scores: result.Authority, Hub: result.Hub}, nil
	default:
		return nil, fmt.Errorf("centrality %q: %w", algorithm, ErrUnknownAlgorithm)
	}
}

// CommunityOptions bundles the per-algorithm parameters for the community
// detection dispatch. Zero values select defaults.
type CommunityOptions struct {
	Resolution        float64 // Louvain
	TargetCommunities int     // Girvan-Newman
	MaxIterations     int     // label propagation
}

// DetectCommunities dispatches to a community detection algorithm by name.
func DetectCommunities(g *graph.Graph, algorithm string, opts CommunityOptions) (Partition, error) {
	switch algorithm {
	case CommunityLabelPropagation:
		return LabelPropagation(g, opts.MaxIterations), nil
	case CommunityLouvain:
		louvainOpts := DefaultLouvainOptions()
		if opts.Resolution > 0 {
			louvainOpts.Resolution = opts.Resolution
		}
		return Louvain(g, louvainOpts), nil
	case CommunityGirvanNewman:
		return GirvanNewman(g, GirvanNewmanOptions{TargetCommunities: opts.TargetCommunities})
	case CommunityComponents:
		return ConnectedComponents(g), nil
	default:
		return nil, fmt.Errorf("community detection %q: %w", algorithm, ErrUnknownAlgorithm)
	}
}

// PredictLinksByName dispatches to a link prediction method by name.
func PredictLinksByName(g *graph.Graph, algorithm string) ([]LinkPrediction, error) {
	switch algorithm {
	case LinkCommonNeighbours:
		return PredictLinks(g, LinkPredCommonNeighbours), nil
	case LinkJaccard:
		return PredictLinks(g, LinkPredJaccard), nil
	case LinkAdamicAdar:
		return PredictLinks(g, LinkPredAdamicAdar), nil
	case LinkPreferentialAttachment:
		return PredictLinks(g, LinkPredPreferentialAttachment), nil
	default:
		return nil, fmt.Errorf("link prediction %q: %w", algorithm, ErrUnknownAlgorithm)
	}
}
