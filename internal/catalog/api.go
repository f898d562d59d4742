package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/squadstats/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	athletesCacheKey = "athletes::all"
	// the directory barely changes during a screen session
	defaultCacheExpireSeconds = 5 * 60
)

// Api is the client for the athlete directory service.
// Responses are cached for a short while, since the compare screen
// re-reads the catalog on every snapshot.
type Api struct {
	cache              *freecache.Cache
	baseURL            string
	apiKey             string
	cacheExpireSeconds int
	httpClient         *http.Client
}

func NewApi(baseURL, apiKey string, cacheExpireSeconds int, httpClient *http.Client) *Api {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte

	if cacheExpireSeconds <= 0 {
		cacheExpireSeconds = defaultCacheExpireSeconds
	}

	return &Api{
		cache:              freecache.NewCache(cacheSize),
		baseURL:            baseURL,
		apiKey:             apiKey,
		cacheExpireSeconds: cacheExpireSeconds,
		httpClient:         httpClient,
	}
}

// Athletes returns the athlete directory for the signed-in coach.
func (a *Api) Athletes(ctx context.Context) (_ []Athlete, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalogApi.athletes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if athletesBytes, err := a.cache.Get([]byte(athletesCacheKey)); err == nil {
		var athletes []Athlete
		if err = json.Unmarshal(athletesBytes, &athletes); err == nil {
			log.Tracef("found %d athletes in cache", len(athletes))
			return athletes, nil
		}
		log.Errorf("failed to unmarshal athletes from cache: %s", err)
	}

	athletesURL := fmt.Sprintf("%s/athletes", a.baseURL)
	log.Debugf("calling athlete directory: %s", athletesURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, athletesURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("athlete directory status: %s", resp.Status)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read athlete directory response: %w", err)
	}

	var athletes []Athlete
	if err := json.Unmarshal(respBytes, &athletes); err != nil {
		return nil, fmt.Errorf("unmarshal athlete directory response: %w", err)
	}

	if err := a.cache.Set([]byte(athletesCacheKey), respBytes, a.cacheExpireSeconds); err != nil {
		log.Errorf("failed to write athletes cache: %s", err)
	}

	return athletes, nil
}
