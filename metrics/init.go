package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewRegistry creates a Registry with every metric registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initCacheMetrics()
	r.initAnalysisMetrics()
	return r
}

func (r *Registry) initCacheMetrics() {
	r.CacheLookupsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomgraph_weight_cache_lookups_total",
			Help: "Weight cache lookups by result (hit or miss)",
		},
		[]string{"result"},
	)

	r.CacheResetsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "roomgraph_weight_cache_resets_total",
			Help: "Number of weight cache resets",
		},
	)

	r.CacheClearedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "roomgraph_weight_cache_cleared_entries_total",
			Help: "Cached pairs dropped by resets",
		},
	)
}

func (r *Registry) initAnalysisMetrics() {
	r.AnalysesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomgraph_analyses_total",
			Help: "Analysis phases run, by phase and status",
		},
		[]string{"phase", "status"},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roomgraph_analysis_duration_seconds",
			Help:    "Wall time of a full analysis run",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0},
		},
	)

	r.GraphNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "roomgraph_graph_nodes",
			Help: "Nodes in the most recently built activity graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "roomgraph_graph_edges",
			Help: "Edges in the most recently built activity graph",
		},
	)
}
