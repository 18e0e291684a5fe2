// Package metrics exposes prometheus instrumentation for analysis runs.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metrics for the analysis engine.
type Registry struct {
	// Analysis metrics
	AnalysisRunsTotal  *prometheus.CounterVec
	AnalysisDuration   *prometheus.HistogramVec
	AnalysisGraphNodes *prometheus.HistogramVec
	AnalysisGraphEdges *prometheus.HistogramVec
	SlowAnalyses       *prometheus.CounterVec

	// Generator metrics
	NetworksGeneratedTotal *prometheus.CounterVec
	GeneratedNetworkNodes  *prometheus.HistogramVec

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}

	r.AnalysisRunsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netanalyzer_analysis_runs_total",
			Help: "Total number of analysis runs by algorithm and status",
		},
		[]string{"algorithm", "status"},
	)

	r.AnalysisDuration = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netanalyzer_analysis_duration_seconds",
			Help:    "Analysis run duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
		},
		[]string{"algorithm"},
	)

	r.AnalysisGraphNodes = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netanalyzer_analysis_graph_nodes",
			Help:    "Number of nodes in analyzed graphs",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		},
		[]string{"algorithm"},
	)

	r.AnalysisGraphEdges = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netanalyzer_analysis_graph_edges",
			Help:    "Number of edges in analyzed graphs",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		},
		[]string{"algorithm"},
	)

	r.SlowAnalyses = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netanalyzer_slow_analyses_total",
			Help: "Total number of slow analysis runs (>1s)",
		},
		[]string{"algorithm"},
	)

	r.NetworksGeneratedTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netanalyzer_networks_generated_total",
			Help: "Total number of synthetic networks generated by model",
		},
		[]string{"model", "status"},
	)

	r.GeneratedNetworkNodes = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netanalyzer_generated_network_nodes",
			Help:    "Number of nodes in generated networks",
			Buckets: []float64{10, 100, 1000, 10000},
		},
		[]string{"model"},
	)

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// RecordAnalysis records one analysis run with its duration and graph size.
func (r *Registry) RecordAnalysis(algorithm, status string, duration time.Duration, nodes, edges int) {
	r.AnalysisRunsTotal.WithLabelValues(algorithm, status).Inc()
	r.AnalysisDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	r.AnalysisGraphNodes.WithLabelValues(algorithm).Observe(float64(nodes))
	r.AnalysisGraphEdges.WithLabelValues(algorithm).Observe(float64(edges))

	if duration > time.Second {
		r.SlowAnalyses.WithLabelValues(algorithm).Inc()
	}
}

// RecordGeneration records one synthetic network generation.
func (r *Registry) RecordGeneration(model, status string, nodes int) {
	r.NetworksGeneratedTotal.WithLabelValues(model, status).Inc()
	if status == "ok" {
		r.GeneratedNetworkNodes.WithLabelValues(model).Observe(float64(nodes))
	}
}
