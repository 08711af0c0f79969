package core_test

import (
	"github.com/katalvlaran/roomgraph/core"
	"github.com/katalvlaran/roomgraph/room"
	"github.com/katalvlaran/roomgraph/weights"
)

// Weights used across core tests.
const (
	W3 = 3
	W5 = 5
	W7 = 7
)

// rooms turns bare numbers into valid Room records.
func rooms(ids ...int) []room.Room {
	out := make([]room.Room, len(ids))
	for i, id := range ids {
		out[i] = room.Room{ID: id, Category: room.CategorySingle, Area: 20}
	}
	return out
}

// fixed is a deterministic stub: listed pairs get their weight, all others fallback.
func fixed(fallback int, pairs map[weights.Pair]int) core.WeightSource {
	return weights.New(weights.Fixed{Weights: pairs, Fallback: fallback})
}

// everywhere yields w for every pair.
func everywhere(w int) core.WeightSource {
	return core.WeightFunc(func(int, int) int { return w })
}
