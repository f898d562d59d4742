package compare

import (
	"context"
	"sync"

	"github.com/2beens/squadstats/internal/sessions"
	"github.com/2beens/squadstats/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

type LoadStatus int

const (
	StatusNotLoaded LoadStatus = iota
	StatusLoading
	StatusLoaded
)

func (s LoadStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	default:
		return "not-loaded"
	}
}

// CacheEntry holds the fetch state of one athlete's session series.
// A failed fetch ends up as StatusLoaded with empty sessions, so the
// compare screen degrades to "no data" instead of an error state.
type CacheEntry struct {
	Status   LoadStatus
	Sessions []sessions.Session
}

//go:generate mockgen -source=$GOFILE -destination=seriescache_mocks_test.go -package=compare_test

// SeriesFetcher gets the full session history of one athlete.
type SeriesFetcher interface {
	History(ctx context.Context, athleteID string) ([]sessions.Session, error)
}

// SeriesCache accumulates per-athlete session series for the lifetime
// of a compare screen. Entries are never evicted and failed fetches are
// never retried (re-requesting a Loaded entry is a no-op).
type SeriesCache struct {
	mu      sync.Mutex
	entries map[string]CacheEntry

	fetcher        SeriesFetcher
	metricsManager *metrics.Manager
}

func NewSeriesCache(fetcher SeriesFetcher, metricsManager *metrics.Manager) *SeriesCache {
	return &SeriesCache{
		entries:        make(map[string]CacheEntry),
		fetcher:        fetcher,
		metricsManager: metricsManager,
	}
}

// EnsureLoaded starts an asynchronous fetch of the athlete's session
// series, unless one is already in flight or done. The Loading mark is
// checked-and-set under one lock hold, so two rapid calls for the same
// unseen athlete start exactly one fetch.
func (c *SeriesCache) EnsureLoaded(ctx context.Context, athleteID string) {
	if athleteID == "" {
		return
	}

	c.mu.Lock()
	if entry := c.entries[athleteID]; entry.Status != StatusNotLoaded {
		c.mu.Unlock()
		return
	}
	c.entries[athleteID] = CacheEntry{Status: StatusLoading}
	c.mu.Unlock()

	if c.metricsManager != nil {
		c.metricsManager.CounterSeriesFetches.Inc()
	}

	// the fetch deliberately outlives the request: a deselected
	// athlete's series is still usable if the athlete is reselected
	fetchCtx := context.WithoutCancel(ctx)
	go func() {
		history, err := c.fetcher.History(fetchCtx, athleteID)
		if err != nil {
			log.Errorf("fetch session series for athlete [%s]: %s", athleteID, err)
			if c.metricsManager != nil {
				c.metricsManager.CounterSeriesFetchErrors.Inc()
			}
			history = []sessions.Session{}
		}

		c.mu.Lock()
		c.entries[athleteID] = CacheEntry{
			Status:   StatusLoaded,
			Sessions: history,
		}
		c.mu.Unlock()
	}()
}

// Get returns the cache entry for the athlete; athletes never
// requested come back as StatusNotLoaded with no sessions.
func (c *SeriesCache) Get(athleteID string) CacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[athleteID]
}

// Pending returns the subset of the given ids not yet Loaded,
// preserving the input order.
func (c *SeriesCache) Pending(athleteIDs []string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var pending []string
	for _, id := range athleteIDs {
		if c.entries[id].Status != StatusLoaded {
			pending = append(pending, id)
		}
	}
	return pending
}

// Len returns the number of cache entries, loaded or in flight.
func (c *SeriesCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Statuses returns a snapshot of the load status per athlete id.
func (c *SeriesCache) Statuses() map[string]LoadStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	statuses := make(map[string]LoadStatus, len(c.entries))
	for id, entry := range c.entries {
		statuses[id] = entry.Status
	}
	return statuses
}
