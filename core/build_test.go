package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomgraph/core"
	"github.com/katalvlaran/roomgraph/room"
	"github.com/katalvlaran/roomgraph/weights"
)

func TestBuild_TwoFloorsTwoArcs(t *testing.T) {
	w := fixed(-1, map[weights.Pair]int{
		{From: 101, To: 201}: W5,
		{From: 102, To: 201}: W3,
	})

	g, err := core.BuildGraph(rooms(101, 102, 201), w, core.WithWeighted())
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []core.Arc{{To: 201, Weight: W5}}, g.Arcs(101))
	assert.Equal(t, []core.Arc{{To: 201, Weight: W3}}, g.Arcs(102))
	assert.Empty(t, g.Arcs(201))
	assert.Equal(t, 2, g.InDegree(201))
	assert.Equal(t, 0, g.InDegree(101))
}

func TestBuild_UnweightedStoresPresenceOnly(t *testing.T) {
	g, err := core.BuildGraph(rooms(101, 201), everywhere(W7))
	require.NoError(t, err)

	assert.False(t, g.Weighted())
	assert.Equal(t, []int{201}, g.Neighbors(101))
	assert.Equal(t, []core.Arc{{To: 201, Weight: 0}}, g.Arcs(101))
}

func TestBuild_NonPositiveWeightsSuppressArcs(t *testing.T) {
	for _, w := range []int{0, -1, weights.MinWeight} {
		g, err := core.BuildGraph(rooms(101, 102, 201, 202), everywhere(w), core.WithWeighted())
		require.NoError(t, err)
		assert.Zero(t, g.EdgeCount(), "weight %d", w)
		for _, id := range g.NodeIDs() {
			assert.Zero(t, g.InDegree(id))
			assert.Empty(t, g.Neighbors(id))
		}
	}
}

func TestBuild_SkipsEmptyFloorsButNotOccupiedOnes(t *testing.T) {
	// floors 1, 3, 5 occupied; 2 and 4 empty
	g, err := core.BuildGraph(rooms(101, 301, 501), everywhere(1), core.WithWeighted())
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3, 5}, g.Floors())
	assert.Equal(t, []int{301}, g.Neighbors(101))
	assert.Equal(t, []int{501}, g.Neighbors(301))
	assert.Empty(t, g.Neighbors(501))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestBuild_NoSameFloorArcs(t *testing.T) {
	g, err := core.BuildGraph(rooms(101, 102, 103), everywhere(10), core.WithWeighted())
	require.NoError(t, err)
	assert.Zero(t, g.EdgeCount())
}

func TestBuild_ArcOrderFollowsRoomOrder(t *testing.T) {
	g, err := core.BuildGraph(rooms(101, 203, 201, 202), everywhere(2))
	require.NoError(t, err)

	assert.Equal(t, []int{101, 203, 201, 202}, g.NodeIDs())
	assert.Equal(t, []int{203, 201, 202}, g.Neighbors(101))
}

func TestBuild_EmptyAndSingle(t *testing.T) {
	g, err := core.BuildGraph(nil, everywhere(1))
	require.NoError(t, err)
	assert.Zero(t, g.NodeCount())
	assert.Empty(t, g.NodeIDs())
	assert.Empty(t, g.Edges())

	g, err = core.BuildGraph(rooms(101), everywhere(1))
	require.NoError(t, err)
	assert.Equal(t, []int{101}, g.NodeIDs())
	assert.Zero(t, g.EdgeCount())
}

func TestBuild_Errors(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.Build(rooms(101), nil), core.ErrNilWeightSource)

	err := g.Build(rooms(101, 201, 101), everywhere(1))
	assert.ErrorIs(t, err, core.ErrDuplicateNode)
	assert.Zero(t, g.NodeCount(), "failed build leaves the graph empty")
}

func TestBuild_ClearsPreviousState(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.Build(rooms(101, 201, 301), everywhere(4)))
	require.Equal(t, 2, g.EdgeCount())

	require.NoError(t, g.Build(rooms(501, 601), everywhere(4)))
	assert.Equal(t, []int{501, 601}, g.NodeIDs())
	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.HasNode(101))
	assert.Zero(t, g.InDegree(201))
}

func TestBuild_SameCacheSameGraph(t *testing.T) {
	cache := weights.New(weights.NewUniformSource(2024))
	rs := room.DefaultRooms()

	a, err := core.BuildGraph(rs, cache, core.WithWeighted())
	require.NoError(t, err)
	b, err := core.BuildGraph(rs, cache, core.WithWeighted())
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())

	// the precedence graph is the unweighted projection of the activity graph
	aov, err := core.BuildGraph(rs, cache)
	require.NoError(t, err)
	assert.Equal(t, a.Projection().Edges(), aov.Edges())
	for _, id := range aov.NodeIDs() {
		assert.Equal(t, a.Neighbors(id), aov.Neighbors(id))
		assert.Equal(t, a.InDegree(id), aov.InDegree(id))
	}
}

func TestBuild_ResetDoesNotTouchBuiltGraphs(t *testing.T) {
	cache := weights.New(weights.NewUniformSource(5))
	rs := room.DefaultRooms()

	g, err := core.BuildGraph(rs, cache, core.WithWeighted())
	require.NoError(t, err)
	before := g.Edges()

	cache.Reset()
	assert.Zero(t, cache.Len())
	assert.Equal(t, before, g.Edges())
}

func TestBuild_QueriesEveryCrossPairOnce(t *testing.T) {
	seen := make(map[weights.Pair]int)
	src := core.WeightFunc(func(from, to int) int {
		seen[weights.Pair{From: from, To: to}]++
		return 1
	})
	_, err := core.BuildGraph(rooms(101, 102, 201, 202, 203, 401), src)
	require.NoError(t, err)

	// 2x3 pairs between floors 1-2, 3x1 between floors 2-4
	assert.Len(t, seen, 9)
	for p, n := range seen {
		assert.Equal(t, 1, n, p.String())
	}
	assert.NotContains(t, seen, weights.Pair{From: 101, To: 401})
}
