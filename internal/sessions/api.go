package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/2beens/squadstats/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrAthleteIDEmpty = errors.New("athlete id is empty")

// Api is the client for the sessions service, giving the
// per-athlete session history for the signed-in coach.
type Api struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewApi(baseURL, apiKey string, httpClient *http.Client) *Api {
	return &Api{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// History returns all recorded sessions for the given athlete.
func (a *Api) History(ctx context.Context, athleteID string) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessionsApi.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("athlete.id", athleteID))

	if athleteID == "" {
		return nil, ErrAthleteIDEmpty
	}

	historyURL := fmt.Sprintf("%s/athletes/%s/sessions", a.baseURL, url.PathEscape(athleteID))
	log.Tracef("getting session history: %s", historyURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, historyURL, nil)
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
		return nil, fmt.Errorf("sessions api status: %s", resp.Status)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read sessions api response: %w", err)
	}

	var history []Session
	if err := json.Unmarshal(respBytes, &history); err != nil {
		return nil, fmt.Errorf("unmarshal sessions api response: %w", err)
	}

	return history, nil
}
