// Package metrics exposes prometheus instrumentation for the hotel lab:
// weight cache activity, analysis phases and graph sizes.
//
// Every Registry owns a private prometheus.Registry, so several labs (and
// tests) can coexist in one process without duplicate-registration panics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Phase labels.
const (
	PhaseBuild    = "build"
	PhaseSort     = "sort"
	PhaseCritical = "critical"
)

// Status labels.
const (
	StatusOK    = "ok"
	StatusCycle = "cycle"
	StatusError = "error"
)

// Registry holds all lab metrics.
type Registry struct {
	// Weight cache
	CacheLookupsTotal *prometheus.CounterVec
	CacheResetsTotal  prometheus.Counter
	CacheClearedTotal prometheus.Counter

	// Analysis
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram
	GraphNodes       prometheus.Gauge
	GraphEdges       prometheus.Gauge

	registry *prometheus.Registry
}
