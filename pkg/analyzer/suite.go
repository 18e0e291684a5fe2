package analyzer

import (
	"context"
	"sync"
	"time"

	"github.com/dd0wney/cluso-netanalyzer/pkg/algorithms"
	"github.com/dd0wney/cluso-netanalyzer/pkg/graph"
	"github.com/dd0wney/cluso-netanalyzer/pkg/parallel"
)

// CentralitySuite computes several centrality measures over the same graph
// concurrently. Measures are independent and read-only over the graph, so
// they fan out across a bounded worker pool; workers defaults to GOMAXPROCS
// when non-positive. The result maps algorithm name to its output. If any
// measure fails the first error is returned alongside the successful results.
func (a *Analyzer) CentralitySuite(ctx context.Context, g *graph.Graph, names []string, workers int) (map[string]*algorithms.CentralityOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pool := parallel.NewPool(workers)
	var (
		mu       sync.Mutex
		results  = make(map[string]*algorithms.CentralityOutput, len(names))
		firstErr error
	)

	for _, name := range names {
		name := name
		err := pool.Submit(ctx, func() {
			start := time.Now()
			out, err := algorithms.ComputeCentrality(g, name)
			a.record(name, g, start, err)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			results[name] = out
		})
		if err != nil {
			break
		}
	}
	pool.Wait()

	if firstErr != nil {
		return results, firstErr
	}
	return results, ctx.Err()
}
