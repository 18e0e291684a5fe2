package algorithms

import "errors"

var (
	// ErrUnknownAlgorithm is returned when a dispatch entry point receives a
	// name it does not recognize. This is a configuration error; callers
	// should surface it rather than retry.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrGraphTooLarge is returned when a graph exceeds an algorithm's scale
	// limit. Results are never silently truncated.
	ErrGraphTooLarge = errors.New("graph exceeds algorithm scale limit")
)

// MaxGirvanNewmanNodes caps Girvan-Newman input size. Each edge removal
// recomputes edge betweenness over the whole graph, so cost grows too fast
// past this point for interactive use.
const MaxGirvanNewmanNodes = 100
