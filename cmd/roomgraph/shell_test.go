package main

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomgraph/config"
	"github.com/katalvlaran/roomgraph/room"
)

func newTestApp(t *testing.T, rooms ...room.Room) *app {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 11
	cfg.Rooms = rooms
	a, err := newApp(cfg, io.Discard)
	require.NoError(t, err)
	return a
}

func run(t *testing.T, a *app, line string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := a.exec(context.Background(), line, &out)
	return out.String(), err
}

func TestShell_AddRemove(t *testing.T) {
	a := newTestApp(t, room.Room{ID: 101, Category: room.CategorySingle, Area: 20})

	out, err := run(t, a, "add 201 double 38.5")
	require.NoError(t, err)
	assert.Equal(t, "added room 201\n", out)
	assert.Equal(t, 2, a.catalog.Len())

	_, err = run(t, a, "add 201 double 38.5")
	assert.ErrorIs(t, err, room.ErrDuplicateRoom)

	_, err = run(t, a, "add 301 suite -1")
	assert.ErrorIs(t, err, room.ErrInvalidRoom)

	_, err = run(t, a, "add x suite 10")
	assert.Error(t, err)

	_, err = run(t, a, "add 301")
	assert.Error(t, err)

	out, err = run(t, a, "remove 101")
	require.NoError(t, err)
	assert.Equal(t, "removed room 101\n", out)

	_, err = run(t, a, "remove 101")
	assert.ErrorIs(t, err, room.ErrRoomNotFound)
}

func TestShell_AnalyzeAndReset(t *testing.T) {
	a := newTestApp(t,
		room.Room{ID: 101, Category: room.CategorySingle, Area: 20},
		room.Room{ID: 102, Category: room.CategorySingle, Area: 22},
		room.Room{ID: 201, Category: room.CategoryDouble, Area: 40},
	)

	out, err := run(t, a, "analyze")
	require.NoError(t, err)
	assert.Contains(t, out, "rooms analyzed: 3")
	assert.Equal(t, 2, a.cache.Len())

	// A second run reuses the cached weights.
	again, err := run(t, a, "analyze")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	out, err = run(t, a, "reset")
	require.NoError(t, err)
	assert.Equal(t, "cleared 2 cached weights\n", out)
	assert.Zero(t, a.cache.Len())
}

func TestShell_NoRooms(t *testing.T) {
	a := newTestApp(t, room.Room{ID: 101, Category: room.CategorySingle, Area: 20})
	_, err := run(t, a, "remove 101")
	require.NoError(t, err)

	_, err = run(t, a, "analyze")
	assert.Error(t, err)

	out, err := run(t, a, "rooms")
	require.NoError(t, err)
	assert.Contains(t, out, "no rooms")
}

func TestShell_Misc(t *testing.T) {
	a := newTestApp(t)

	out, err := run(t, a, "   ")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = run(t, a, "help")
	require.NoError(t, err)
	assert.Contains(t, out, "add <id> <category> <area>")

	_, err = run(t, a, "frobnicate")
	assert.ErrorContains(t, err, "unknown command")

	_, err = run(t, a, "EXIT")
	assert.ErrorIs(t, err, errQuit)

	_, err = run(t, a, "weights")
	require.NoError(t, err)
	out, err = run(t, a, "metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "roomgraph_weight_cache_lookups_total")
}
