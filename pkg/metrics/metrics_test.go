package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r)
	require.NotNil(t, r.GetPrometheusRegistry())

	// A fresh registry carries no samples until something is recorded.
	families, err := r.GetPrometheusRegistry().Gather()
	require.NoError(t, err)
	assert.Empty(t, families)
}

func TestDefaultRegistry_Singleton(t *testing.T) {
	assert.Same(t, DefaultRegistry(), DefaultRegistry())
}

func TestRecordAnalysis(t *testing.T) {
	r := NewRegistry()

	r.RecordAnalysis("pagerank", "ok", 5*time.Millisecond, 100, 450)
	r.RecordAnalysis("pagerank", "ok", 2*time.Millisecond, 100, 450)
	r.RecordAnalysis("louvain", "error", time.Millisecond, 10, 20)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.AnalysisRunsTotal.WithLabelValues("pagerank", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.AnalysisRunsTotal.WithLabelValues("louvain", "error")))
	assert.Zero(t, testutil.ToFloat64(r.SlowAnalyses.WithLabelValues("pagerank")))
}

func TestRecordAnalysis_SlowRun(t *testing.T) {
	r := NewRegistry()

	r.RecordAnalysis("girvan_newman", "ok", 2*time.Second, 90, 300)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.SlowAnalyses.WithLabelValues("girvan_newman")))
}

func TestRecordGeneration(t *testing.T) {
	r := NewRegistry()

	r.RecordGeneration("lfr", "ok", 250)
	r.RecordGeneration("lfr", "error", 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.NetworksGeneratedTotal.WithLabelValues("lfr", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.NetworksGeneratedTotal.WithLabelValues("lfr", "error")))

	// Failed generations never observe a node count.
	count, err := testutil.GatherAndCount(r.GetPrometheusRegistry(), "netanalyzer_generated_network_nodes")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
