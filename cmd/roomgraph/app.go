package main

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/roomgraph/config"
	"github.com/katalvlaran/roomgraph/lab"
	"github.com/katalvlaran/roomgraph/metrics"
	"github.com/katalvlaran/roomgraph/room"
	"github.com/katalvlaran/roomgraph/weights"
)

// app is the wired process: one catalog, one weight cache shared by every
// analysis until reset, one lab.
type app struct {
	cfg     config.Config
	log     *slog.Logger
	catalog *room.Catalog
	cache   *weights.Cache
	metrics *metrics.Registry
	lab     *lab.Lab
}

func newApp(cfg config.Config, logOut io.Writer) (*app, error) {
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	catalog, err := room.NewCatalog(cfg.RoomList()...)
	if err != nil {
		return nil, err
	}

	reg := metrics.NewRegistry()
	cache := weights.New(weights.NewUniformSource(cfg.Seed), weights.WithObserver(reg))

	a := &app{
		cfg:     cfg,
		log:     logger,
		catalog: catalog,
		cache:   cache,
		metrics: reg,
		lab:     lab.New(catalog, cache, lab.WithLogger(logger), lab.WithMetrics(reg)),
	}
	logger.Debug("roomgraph ready", slog.Int("rooms", catalog.Len()), slog.Int64("seed", cfg.Seed))
	return a, nil
}
