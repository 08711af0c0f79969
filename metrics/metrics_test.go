package metrics_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomgraph/metrics"
	"github.com/katalvlaran/roomgraph/weights"
)

func TestRegistry_CacheObserver(t *testing.T) {
	r := metrics.NewRegistry()
	c := weights.New(weights.Constant(3), weights.WithObserver(r))

	c.WeightOf(101, 201)
	c.WeightOf(101, 201)
	c.WeightOf(101, 201)
	c.WeightOf(102, 201)
	c.Reset()

	assert.Equal(t, 2.0, testutil.ToFloat64(r.CacheLookupsTotal.WithLabelValues("miss")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.CacheLookupsTotal.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.CacheResetsTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.CacheClearedTotal))
}

func TestRegistry_Phases(t *testing.T) {
	r := metrics.NewRegistry()
	r.RecordPhase(metrics.PhaseSort, metrics.StatusOK)
	r.RecordPhase(metrics.PhaseSort, metrics.StatusOK)
	r.RecordPhase(metrics.PhaseCritical, metrics.StatusCycle)
	r.SetGraphSize(14, 20)
	r.ObserveAnalysis(3 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.AnalysesTotal.WithLabelValues(metrics.PhaseSort, metrics.StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.AnalysesTotal.WithLabelValues(metrics.PhaseCritical, metrics.StatusCycle)))
	assert.Equal(t, 14.0, testutil.ToFloat64(r.GraphNodes))
	assert.Equal(t, 20.0, testutil.ToFloat64(r.GraphEdges))
}

func TestRegistry_Independent(t *testing.T) {
	a, b := metrics.NewRegistry(), metrics.NewRegistry()
	a.CacheHit()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.CacheLookupsTotal.WithLabelValues("hit")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.CacheLookupsTotal.WithLabelValues("hit")))
}

func TestRegistry_WriteText(t *testing.T) {
	r := metrics.NewRegistry()
	r.CacheMiss()
	r.SetGraphSize(3, 2)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, `roomgraph_weight_cache_lookups_total{result="miss"} 1`)
	assert.Contains(t, out, "roomgraph_graph_edges 2")
}
