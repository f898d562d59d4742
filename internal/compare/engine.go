package compare

import (
	"context"
	"time"

	"github.com/2beens/squadstats/internal/catalog"
	"github.com/2beens/squadstats/internal/telemetry/metrics"
	"github.com/2beens/squadstats/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=engine_mocks_test.go -package=compare_test

// athleteDirectory is the read side of the athlete catalog.
type athleteDirectory interface {
	Athletes(ctx context.Context) ([]catalog.Athlete, error)
}

// PlacedPoint is a comparison point together with its normalized
// chart coordinates.
type PlacedPoint struct {
	ComparisonPoint
	ChartCoords
}

// Snapshot is everything the rendering layer needs for one frame of
// the compare chart. Pending lists athlete ids whose series are still
// being fetched; clients re-snapshot while it is non-empty.
type Snapshot struct {
	Points  []PlacedPoint `json:"points"`
	Bounds  ChartBounds   `json:"bounds"`
	Pending []string      `json:"pending,omitempty"`
}

// Engine drives the compare screen: it kicks off series fetches for
// newly referenced athletes and recomputes points, bounds and
// coordinates in full on every snapshot.
type Engine struct {
	directory      athleteDirectory
	cache          *SeriesCache
	metricsManager *metrics.Manager
}

func NewEngine(directory athleteDirectory, fetcher SeriesFetcher, metricsManager *metrics.Manager) *Engine {
	return &Engine{
		directory:      directory,
		cache:          NewSeriesCache(fetcher, metricsManager),
		metricsManager: metricsManager,
	}
}

// Cache exposes the series cache, mainly for status endpoints.
func (e *Engine) Cache() *SeriesCache {
	return e.cache
}

// Snapshot computes the compare chart for the given selection at the
// given time. A failing catalog fetch degrades to an empty directory
// (position groups then produce no points) rather than an error.
func (e *Engine) Snapshot(ctx context.Context, sel *Selection, now time.Time) *Snapshot {
	ctx, span := tracing.GlobalTracer.Start(ctx, "compare.engine.snapshot")
	defer span.End()
	span.SetAttributes(attribute.String("mode", string(sel.Mode())))

	if e.metricsManager != nil {
		e.metricsManager.CounterSnapshots.Inc()
	}

	athletes, err := e.directory.Athletes(ctx)
	if err != nil {
		log.Errorf("snapshot: fetch athlete catalog: %s", err)
		athletes = nil
	}

	referenced := referencedAthleteIDs(sel, athletes)
	for _, athleteID := range referenced {
		e.cache.EnsureLoaded(ctx, athleteID)
	}

	points := Aggregate(sel, e.cache, athletes, now)
	bounds := CalculateBounds(points)

	placed := make([]PlacedPoint, 0, len(points))
	for _, point := range points {
		placed = append(placed, PlacedPoint{
			ComparisonPoint: point,
			ChartCoords:     MapToChart(point, bounds),
		})
	}

	return &Snapshot{
		Points:  placed,
		Bounds:  bounds,
		Pending: e.cache.Pending(referenced),
	}
}

// referencedAthleteIDs lists every athlete id the selection needs
// series for, in a stable order, depending on the active mode.
func referencedAthleteIDs(sel *Selection, athletes []catalog.Athlete) []string {
	switch sel.Mode() {
	case ModeByAthlete:
		return sel.AthleteIDs()
	case ModeBySessionsOfAthlete:
		if id := sel.SingleAthleteID(); id != "" {
			return []string{id}
		}
		return nil
	case ModeByPositionGroup:
		selected := make(map[string]bool)
		for _, position := range sel.Positions() {
			selected[position] = true
		}
		var ids []string
		for _, athlete := range athletes {
			if selected[athlete.Position] {
				ids = append(ids, athlete.ID)
			}
		}
		return ids
	default:
		return nil
	}
}
