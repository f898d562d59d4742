package compare

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/squadstats/internal/telemetry/tracing"
	"github.com/2beens/squadstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SnapshotRequest carries the full client-side selection. The engine
// holds no per-client UI state: the screen sends its selection with
// every snapshot and polls while Pending is non-empty.
type SnapshotRequest struct {
	Mode            string   `json:"mode"`
	AthleteIDs      []string `json:"athleteIds"`
	SingleAthleteID string   `json:"singleAthleteId"`
	Positions       []string `json:"positions"`
	DateRange       string   `json:"dateRange"`
}

type CacheStatusResponse struct {
	Statuses map[string]string `json:"statuses"`
}

type Handler struct {
	engine    *Engine
	directory athleteDirectory
}

func NewHandler(engine *Engine, directory athleteDirectory) *Handler {
	return &Handler{
		engine:    engine,
		directory: directory,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/compare/snapshot", handler.HandleSnapshot).Methods("POST", "OPTIONS").Name("compare-snapshot")
	r.HandleFunc("/compare/athletes", handler.HandleAthletes).Methods("GET", "OPTIONS").Name("compare-athletes")
	r.HandleFunc("/compare/cache/status", handler.HandleCacheStatus).Methods("GET", "OPTIONS").Name("compare-cache-status")
}

func (handler *Handler) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.compare.snapshot")
	defer span.End()

	var req SnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("handle snapshot, unmarshal request: %s", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	mode := Mode(req.Mode)
	switch mode {
	case ModeByAthlete, ModeBySessionsOfAthlete, ModeByPositionGroup:
	default:
		http.Error(w, "invalid mode", http.StatusBadRequest)
		return
	}

	sel := NewSelection()
	sel.SetMode(mode)
	switch DateRange(req.DateRange) {
	case DateRange7Days, DateRange30Days, DateRangeAll:
		sel.SetDateRange(DateRange(req.DateRange))
	case "":
		// keep the default
	default:
		http.Error(w, "invalid date range", http.StatusBadRequest)
		return
	}
	for _, athleteID := range req.AthleteIDs {
		sel.ToggleAthlete(athleteID)
	}
	if req.SingleAthleteID != "" {
		sel.SetSingleAthlete(req.SingleAthleteID)
	}
	for _, position := range req.Positions {
		sel.TogglePosition(position)
	}

	snapshot := handler.engine.Snapshot(ctx, sel, time.Now())

	snapshotJson, err := json.Marshal(snapshot)
	if err != nil {
		log.Errorf("handle snapshot, marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, snapshotJson)
}

func (handler *Handler) HandleAthletes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.compare.athletes")
	defer span.End()

	athletes, err := handler.directory.Athletes(ctx)
	if err != nil {
		log.Errorf("handle athletes, get catalog: %s", err)
		http.Error(w, "failed to get athletes", http.StatusInternalServerError)
		return
	}

	athletesJson, err := json.Marshal(athletes)
	if err != nil {
		log.Errorf("handle athletes, marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, athletesJson)
}

func (handler *Handler) HandleCacheStatus(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.compare.cacheStatus")
	defer span.End()

	statuses := handler.engine.Cache().Statuses()
	response := CacheStatusResponse{
		Statuses: make(map[string]string, len(statuses)),
	}
	for athleteID, status := range statuses {
		response.Statuses[athleteID] = status.String()
	}

	responseJson, err := json.Marshal(response)
	if err != nil {
		log.Errorf("handle cache status, marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, responseJson)
}
