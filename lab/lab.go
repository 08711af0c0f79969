package lab

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/roomgraph/core"
	"github.com/katalvlaran/roomgraph/critical"
	"github.com/katalvlaran/roomgraph/metrics"
	"github.com/katalvlaran/roomgraph/report"
	"github.com/katalvlaran/roomgraph/room"
	"github.com/katalvlaran/roomgraph/topo"
	"github.com/katalvlaran/roomgraph/weights"
)

// ErrNoRooms is returned when there is nothing to analyze.
var ErrNoRooms = errors.New("lab: no rooms to analyze")

// RoomLister supplies the current room list. *room.Catalog satisfies it.
type RoomLister interface {
	Rooms() []room.Room
}

// Option configures a Lab.
type Option func(*Lab)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("lab: WithLogger(nil)")
	}
	return func(lb *Lab) { lb.log = l }
}

// WithMetrics records phase outcomes in r. Panics on nil.
func WithMetrics(r *metrics.Registry) Option {
	if r == nil {
		panic("lab: WithMetrics(nil)")
	}
	return func(lb *Lab) { lb.metrics = r }
}

// Lab ties a room source to a shared weight cache.
type Lab struct {
	rooms   RoomLister
	cache   *weights.Cache
	log     *slog.Logger
	metrics *metrics.Registry
}

// New returns a Lab. Panics if rooms or cache is nil.
func New(rooms RoomLister, cache *weights.Cache, opts ...Option) *Lab {
	if rooms == nil || cache == nil {
		panic("lab: New requires a room lister and a weight cache")
	}
	l := &Lab{
		rooms: rooms,
		cache: cache,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Report is the outcome of one analysis run. OrderErr and CriticalErr hold
// per-phase failures; a phase with an error has no output.
type Report struct {
	RunID uuid.UUID
	Rooms int

	Order    []int
	OrderErr error

	Critical    *critical.Result
	CriticalErr error

	// Edges of the activity graph, sorted by source then target.
	Edges []core.Edge
}

// Analyze builds both graphs from the current rooms and evaluates them.
func (l *Lab) Analyze(ctx context.Context) (*Report, error) {
	rooms := l.rooms.Rooms()
	if len(rooms) == 0 {
		return nil, ErrNoRooms
	}
	start := time.Now()

	aov, aoe, err := l.build(ctx, rooms)
	if err != nil {
		l.record(metrics.PhaseBuild, metrics.StatusError)
		return nil, err
	}
	l.record(metrics.PhaseBuild, metrics.StatusOK)

	rep, err := l.Evaluate(ctx, aov, aoe)
	if err != nil {
		return nil, err
	}
	if l.metrics != nil {
		l.metrics.ObserveAnalysis(time.Since(start))
	}
	return rep, nil
}

// build constructs the activity graph, then the precedence graph. The
// activity graph goes first so it fixes the order in which the cache draws
// weights; the precedence graph only reads them back.
func (l *Lab) build(ctx context.Context, rooms []room.Room) (*core.Graph, *core.Graph, error) {
	aoe, err := core.BuildGraph(rooms, l.cache, core.WithWeighted())
	if err != nil {
		return nil, nil, fmt.Errorf("lab: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("lab: %w", err)
	}
	aov, err := core.BuildGraph(rooms, l.cache)
	if err != nil {
		return nil, nil, fmt.Errorf("lab: %w", err)
	}
	return aov, aoe, nil
}

// Evaluate sorts aov and runs critical-path analysis on aoe in parallel.
// Cycles are reported per phase in the Report; any other phase error, such
// as cancellation, fails the call.
func (l *Lab) Evaluate(ctx context.Context, aov topo.Digraph, aoe critical.WeightedDigraph) (*Report, error) {
	if aov == nil {
		return nil, fmt.Errorf("lab: %w", topo.ErrGraphNil)
	}
	if aoe == nil {
		return nil, fmt.Errorf("lab: %w", critical.ErrGraphNil)
	}
	rep := &Report{RunID: uuid.New(), Rooms: len(aov.NodeIDs())}
	log := l.log.With(slog.String("run", rep.RunID.String()))

	if g, ok := aoe.(*core.Graph); ok {
		rep.Edges = g.Edges()
		if l.metrics != nil {
			l.metrics.SetGraphSize(g.NodeCount(), g.EdgeCount())
		}
	}
	log.Debug("graphs ready", slog.Int("rooms", rep.Rooms), slog.Int("edges", len(rep.Edges)))

	var eg errgroup.Group
	eg.Go(func() error {
		rep.Order, rep.OrderErr = topo.Sort(aov, topo.WithContext(ctx))
		return l.phase(log, metrics.PhaseSort, rep.OrderErr)
	})
	eg.Go(func() error {
		rep.Critical, rep.CriticalErr = critical.Analyze(aoe, critical.WithContext(ctx))
		return l.phase(log, metrics.PhaseCritical, rep.CriticalErr)
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if rep.Critical != nil {
		log.Info("analysis complete",
			slog.Int("completion_time", rep.Critical.CompletionTime),
			slog.Int("critical_activities", len(rep.Critical.Critical)))
	}

	return rep, nil
}

// phase logs and counts a phase outcome, returning err only when the run
// must stop. Evaluate calls it from both phase goroutines.
func (l *Lab) phase(log *slog.Logger, name string, err error) error {
	switch {
	case err == nil:
		l.record(name, metrics.StatusOK)
		return nil
	case errors.Is(err, topo.ErrCycleDetected):
		l.record(name, metrics.StatusCycle)
		log.Warn("structural cycle detected", slog.String("phase", name), slog.Any("error", err))
		return nil
	default:
		l.record(name, metrics.StatusError)
		log.Error("analysis phase failed", slog.String("phase", name), slog.Any("error", err))
		return fmt.Errorf("lab: %s: %w", name, err)
	}
}

func (l *Lab) record(phase, status string) {
	if l.metrics != nil {
		l.metrics.RecordPhase(phase, status)
	}
}

// DumpWeights builds the activity graph for the current rooms and prints
// its weight table. With all set it prints every cached pair instead,
// including the ones that produced no edge.
func (l *Lab) DumpWeights(w io.Writer, all bool) error {
	rooms := l.rooms.Rooms()
	if len(rooms) == 0 {
		return ErrNoRooms
	}
	g, err := core.BuildGraph(rooms, l.cache, core.WithWeighted())
	if err != nil {
		return fmt.Errorf("lab: %w", err)
	}
	if all {
		return report.WriteCacheTable(w, l.cache.Snapshot())
	}
	return report.WriteWeightTable(w, g.Edges())
}

// ResetWeights clears the weight cache; the next build draws fresh weights.
func (l *Lab) ResetWeights() int {
	n := l.cache.Reset()
	l.log.Info("weight cache cleared", slog.Int("entries", n))
	return n
}

// WriteReport prints both phases of rep. A failed phase prints a diagnostic
// naming the condition instead of its report.
func WriteReport(w io.Writer, rep *Report) error {
	if _, err := fmt.Fprintf(w, "rooms analyzed: %d\n\n[1/2] precedence graph, topological sort\n", rep.Rooms); err != nil {
		return err
	}
	if rep.OrderErr != nil {
		if _, err := fmt.Fprintf(w, "sort failed: %v\n", rep.OrderErr); err != nil {
			return err
		}
	} else if err := report.WriteOrder(w, rep.Order); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "\n[2/2] activity graph, critical path\n"); err != nil {
		return err
	}
	if rep.CriticalErr != nil {
		_, err := fmt.Fprintf(w, "critical path failed: %v\n", rep.CriticalErr)
		return err
	}
	return report.WriteCritical(w, rep.Critical)
}
