package compare

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/2beens/squadstats/internal/catalog"
	"github.com/2beens/squadstats/internal/sessions"
)

// ComparisonPoint is one entity placed on the compare chart:
// x = total distance, y = high intensity distance. Recomputed on
// every snapshot, never persisted.
type ComparisonPoint struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
}

// chartPalette is rotated over by selection order.
var chartPalette = [...]string{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8", "#f58231",
	"#911eb4", "#42d4f4", "#f032e6", "#bfef45", "#469990",
}

func paletteColor(index int) string {
	return chartPalette[index%len(chartPalette)]
}

// positionColors keeps position groups visually stable between
// selections; unknown positions fall back to the rotating palette.
var positionColors = map[string]string{
	"Goalkeeper": "#f58231",
	"Defender":   "#4363d8",
	"Midfielder": "#3cb44b",
	"Winger":     "#911eb4",
	"Forward":    "#e6194b",
}

// PeriodNotePrefix marks session notes that carry a training period
// label, e.g. "Period: Preseason W3". The remainder of such a note
// becomes the point label in sessions mode.
const PeriodNotePrefix = "Period: "

func sessionLabel(notes string, index int) string {
	if strings.HasPrefix(notes, PeriodNotePrefix) {
		if label := notes[len(PeriodNotePrefix):]; label != "" {
			return label
		}
	}
	return fmt.Sprintf("Session %d", index+1)
}

// SeriesReader is the read side of the series cache. The aggregator
// gets it injected so it stays a pure function over cache contents.
type SeriesReader interface {
	Get(athleteID string) CacheEntry
}

// Aggregate turns the current selection, cache contents and athlete
// catalog into comparison points, in selection order. Entities without
// usable (finite) aggregates are silently dropped, never an error.
func Aggregate(sel *Selection, series SeriesReader, athletes []catalog.Athlete, now time.Time) []ComparisonPoint {
	switch sel.Mode() {
	case ModeByAthlete:
		return aggregateByAthlete(sel, series, athletes, now)
	case ModeBySessionsOfAthlete:
		return aggregateBySessions(sel, series, now)
	case ModeByPositionGroup:
		return aggregateByPosition(sel, series, athletes, now)
	default:
		return nil
	}
}

func aggregateByAthlete(sel *Selection, series SeriesReader, athletes []catalog.Athlete, now time.Time) []ComparisonPoint {
	id2athlete := make(map[string]catalog.Athlete, len(athletes))
	for _, athlete := range athletes {
		id2athlete[athlete.ID] = athlete
	}

	var points []ComparisonPoint
	for i, athleteID := range sel.AthleteIDs() {
		filtered := filterByDateRange(series.Get(athleteID).Sessions, sel.DateRange(), now)
		if len(filtered) == 0 {
			continue
		}

		x, y := meanDistances(filtered)
		if !isFinite(x) || !isFinite(y) {
			continue
		}

		label := athleteID
		if athlete, ok := id2athlete[athleteID]; ok {
			label = athlete.Name
		}

		points = append(points, ComparisonPoint{
			ID:    athleteID,
			Label: label,
			X:     x,
			Y:     y,
			Color: paletteColor(i),
		})
	}
	return points
}

func aggregateBySessions(sel *Selection, series SeriesReader, now time.Time) []ComparisonPoint {
	athleteID := sel.SingleAthleteID()
	if athleteID == "" {
		return nil
	}

	filtered := filterByDateRange(series.Get(athleteID).Sessions, sel.DateRange(), now)

	var points []ComparisonPoint
	for i, session := range filtered {
		if !isFinite(session.TotalDistance) || !isFinite(session.HighIntensityDistance) {
			continue
		}
		points = append(points, ComparisonPoint{
			ID:    fmt.Sprintf("%s-%d", athleteID, i+1),
			Label: sessionLabel(session.Notes, i),
			X:     session.TotalDistance,
			Y:     session.HighIntensityDistance,
			Color: paletteColor(i),
		})
	}
	return points
}

func aggregateByPosition(sel *Selection, series SeriesReader, athletes []catalog.Athlete, now time.Time) []ComparisonPoint {
	var points []ComparisonPoint
	for i, position := range sel.Positions() {
		// pool the sessions of every athlete in the group: the group
		// mean is a flat mean over all pooled sessions, NOT a mean of
		// per-athlete means, so prolific athletes weigh more
		var pooled []sessions.Session
		groupSize := 0
		for _, athlete := range athletes {
			if athlete.Position != position {
				continue
			}
			groupSize++
			filtered := filterByDateRange(series.Get(athlete.ID).Sessions, sel.DateRange(), now)
			pooled = append(pooled, filtered...)
		}

		if len(pooled) == 0 {
			continue
		}

		x, y := meanDistances(pooled)
		if !isFinite(x) || !isFinite(y) {
			continue
		}

		color, ok := positionColors[position]
		if !ok {
			color = paletteColor(i)
		}

		points = append(points, ComparisonPoint{
			ID:    position,
			Label: fmt.Sprintf("%s (%d)", position, groupSize),
			X:     x,
			Y:     y,
			Color: color,
		})
	}
	return points
}

// filterByDateRange keeps sessions within now - N days, compared as
// local calendar dates. Sessions with unparseable dates are dropped
// for the ranged filters and kept for DateRangeAll.
func filterByDateRange(list []sessions.Session, dateRange DateRange, now time.Time) []sessions.Session {
	var days int
	switch dateRange {
	case DateRange7Days:
		days = 7
	case DateRange30Days:
		days = 30
	default:
		return list
	}

	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -days)

	var filtered []sessions.Session
	for _, session := range list {
		day, ok := session.Day()
		if !ok {
			continue
		}
		if day.Before(cutoff) {
			continue
		}
		filtered = append(filtered, session)
	}
	return filtered
}

func meanDistances(list []sessions.Session) (x, y float64) {
	for _, session := range list {
		x += session.TotalDistance
		y += session.HighIntensityDistance
	}
	x /= float64(len(list))
	y /= float64(len(list))
	return x, y
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
