package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// CacheHit implements weights.Observer.
func (r *Registry) CacheHit() {
	r.CacheLookupsTotal.WithLabelValues("hit").Inc()
}

// CacheMiss implements weights.Observer.
func (r *Registry) CacheMiss() {
	r.CacheLookupsTotal.WithLabelValues("miss").Inc()
}

// CacheReset implements weights.Observer.
func (r *Registry) CacheReset(cleared int) {
	r.CacheResetsTotal.Inc()
	r.CacheClearedTotal.Add(float64(cleared))
}

// RecordPhase counts one analysis phase outcome.
func (r *Registry) RecordPhase(phase, status string) {
	r.AnalysesTotal.WithLabelValues(phase, status).Inc()
}

// ObserveAnalysis records the duration of a full run.
func (r *Registry) ObserveAnalysis(d time.Duration) {
	r.AnalysisDuration.Observe(d.Seconds())
}

// SetGraphSize records the size of the last built graph.
func (r *Registry) SetGraphSize(nodes, edges int) {
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteText writes every metric family in the prometheus text format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
