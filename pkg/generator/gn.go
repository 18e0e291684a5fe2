package generator

import (
	"fmt"

	"github.com/dd0wney/cluso-netanalyzer/pkg/validation"
)

// GNParams configures the planted-partition (GN) model.
type GNParams struct {
	NumCommunities    int     `yaml:"num_communities" validate:"required,min=1"`
	NodesPerCommunity int     `yaml:"nodes_per_community" validate:"required,min=1"`
	PIn               float64 `yaml:"p_in" validate:"min=0,max=1"`
	POut              float64 `yaml:"p_out" validate:"min=0,max=1"`
	Seed              int64   `yaml:"seed"`
}

// GenerateGN produces a planted-partition network: n = communities ×
// nodes-per-community nodes split evenly into labeled blocks, with every node
// pair connected by an independent Bernoulli trial at probability PIn inside a
// block and POut across blocks. Self-loops are never created.
func GenerateGN(params GNParams) (*GeneratedNetwork, error) {
	if err := validation.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	rng := newRand(params.Seed)
	n := params.NumCommunities * params.NodesPerCommunity

	assignment := make([]int, n)
	for i := 0; i < n; i++ {
		assignment[i] = i / params.NodesPerCommunity
	}

	var edges [][2]string
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			p := params.POut
			if assignment[u] == assignment[v] {
				p = params.PIn
			}
			if rng.Float64() < p {
				edges = append(edges, [2]string{nodeID(u), nodeID(v)})
			}
		}
	}

	return buildNetwork(n, assignment, edges), nil
}
