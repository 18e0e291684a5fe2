package generator

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/dd0wney/cluso-netanalyzer/pkg/validation"
)

// LFRParams configures the LFR-style power-law benchmark.
type LFRParams struct {
	N                 int     `yaml:"n" validate:"required,min=1"`
	Mu                float64 `yaml:"mu" validate:"min=0,max=1"`
	MinCommunity      int     `yaml:"min_community" validate:"required,min=1"`
	MaxCommunity      int     `yaml:"max_community" validate:"required,gtefield=MinCommunity"`
	MinDegree         int     `yaml:"min_degree" validate:"required,min=1"`
	MaxDegree         int     `yaml:"max_degree" validate:"required,gtefield=MinDegree"`
	DegreeExponent    float64 `yaml:"degree_exponent" validate:"required,gt=1"`
	CommunityExponent float64 `yaml:"community_exponent" validate:"required,gt=1"`
	Seed              int64   `yaml:"seed"`
}

// GenerateLFR produces an LFR-style benchmark network. Community sizes and
// node degrees follow bounded power-law distributions; each node's degree is
// split into internal stubs (1-mu fraction, paired within the community) and
// external stubs (mu fraction, paired globally) via a configuration-model
// shuffle-and-pair, discarding self-pairings and duplicate pairs. The mixing
// parameter mu is the fraction of a node's degree directed outside its own
// community.
func GenerateLFR(params LFRParams) (*GeneratedNetwork, error) {
	if err := validation.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	rng := newRand(params.Seed)
	n := params.N

	sizes, assignment := sampleCommunities(rng, params)

	members := make([][]int, len(sizes))
	for i := 0; i < n; i++ {
		c := assignment[i]
		members[c] = append(members[c], i)
	}

	deg := sampleDegrees(rng, params, sizes, assignment)

	// Total degree must be even before stub splitting.
	total := 0
	for _, d := range deg {
		total += d
	}
	if total%2 != 0 {
		deg[rng.Intn(n)]++
	}

	intDeg, extDeg := splitStubs(rng, params.Mu, sizes, assignment, members, deg)

	edgeSeen := make(map[[2]int]struct{})
	var edges [][2]string
	addEdge := func(u, v int) {
		if u == v {
			return
		}
		key := [2]int{u, v}
		if v < u {
			key = [2]int{v, u}
		}
		if _, dup := edgeSeen[key]; dup {
			return
		}
		edgeSeen[key] = struct{}{}
		edges = append(edges, [2]string{nodeID(u), nodeID(v)})
	}

	// Pair internal stubs within each community.
	for c := range members {
		var stubs []int
		for _, i := range members[c] {
			for s := 0; s < intDeg[i]; s++ {
				stubs = append(stubs, i)
			}
		}
		pairStubs(rng, stubs, addEdge)
	}

	// Pair external stubs globally.
	var externalStubs []int
	for i := 0; i < n; i++ {
		for s := 0; s < extDeg[i]; s++ {
			externalStubs = append(externalStubs, i)
		}
	}
	pairStubs(rng, externalStubs, addEdge)

	return buildNetwork(n, assignment, edges), nil
}

// sampleCommunities draws community sizes from the bounded power law until
// every node is assigned. When the remainder cannot form a valid new
// community it is forced into the largest existing one.
func sampleCommunities(rng *rand.Rand, params LFRParams) (sizes []int, assignment []int) {
	n := params.N
	maxC := params.MaxCommunity
	if maxC > n {
		maxC = n
	}
	minC := params.MinCommunity
	if minC > maxC {
		minC = maxC
	}

	remaining := n
	for remaining > 0 {
		s := samplePowerLaw(rng, minC, maxC, params.CommunityExponent)
		if s > remaining {
			if remaining >= minC {
				s = remaining
			} else if len(sizes) == 0 {
				s = remaining
			} else {
				largest := 0
				for i, sz := range sizes {
					if sz > sizes[largest] {
						largest = i
					}
				}
				sizes[largest] += remaining
				remaining = 0
				break
			}
		}
		sizes = append(sizes, s)
		remaining -= s
	}

	assignment = make([]int, n)
	node := 0
	for c, size := range sizes {
		for s := 0; s < size && node < n; s++ {
			assignment[node] = c
			node++
		}
	}
	for ; node < n; node++ {
		assignment[node] = len(sizes) - 1
	}
	return sizes, assignment
}

// sampleDegrees draws each node's total degree from the bounded power law,
// capping the upper bound both at MaxDegree and at the community-size-derived
// bound keeping internal degree within community_size - 1 under the mixing
// parameter.
func sampleDegrees(rng *rand.Rand, params LFRParams, sizes []int, assignment []int) []int {
	deg := make([]int, params.N)
	for i := range deg {
		size := sizes[assignment[i]]

		hi := params.MaxDegree
		if params.Mu < 1.0 {
			bound := int(float64(size-1) / (1.0 - params.Mu))
			if bound < hi {
				hi = bound
			}
		}
		if hi < 0 {
			hi = 0
		}
		lo := params.MinDegree
		if lo > hi {
			lo = hi
		}
		deg[i] = samplePowerLaw(rng, lo, hi, params.DegreeExponent)
	}
	return deg
}

// splitStubs divides each node's degree into internal and external stubs and
// restores internal-stub parity per community by flipping one stub on a
// random member.
func splitStubs(rng *rand.Rand, mu float64, sizes []int, assignment []int, members [][]int, deg []int) (intDeg, extDeg []int) {
	n := len(deg)
	intDeg = make([]int, n)
	extDeg = make([]int, n)

	for i := 0; i < n; i++ {
		internal := int(math.Round((1.0 - mu) * float64(deg[i])))
		if max := sizes[assignment[i]] - 1; internal > max {
			internal = max
		}
		if internal < 0 {
			internal = 0
		}
		intDeg[i] = internal
		extDeg[i] = deg[i] - internal
	}

	for c := range members {
		sum := 0
		for _, i := range members[c] {
			sum += intDeg[i]
		}
		if sum%2 == 0 {
			continue
		}
		// Flip one internal stub to external on a random member that has
		// one. With mu=0 the stub is dropped instead, so a zero mixing
		// parameter never leaks edges across communities.
		offset := rng.Intn(len(members[c]))
		for j := range members[c] {
			i := members[c][(offset+j)%len(members[c])]
			if intDeg[i] > 0 {
				intDeg[i]--
				if mu > 0 {
					extDeg[i]++
				}
				break
			}
		}
	}
	return intDeg, extDeg
}

// pairStubs shuffles the stub list and pairs consecutive entries into edges.
// Self-pairings and duplicates are discarded by the supplied add function; an
// odd trailing stub is dropped.
func pairStubs(rng *rand.Rand, stubs []int, add func(u, v int)) {
	rng.Shuffle(len(stubs), func(i, j int) {
		stubs[i], stubs[j] = stubs[j], stubs[i]
	})
	for i := 0; i+1 < len(stubs); i += 2 {
		add(stubs[i], stubs[i+1])
	}
}
