package sessions

import "time"

const dateLayout = "2006-01-02"

// Session is one dated performance record for one athlete,
// with GPS-derived distance metrics.
type Session struct {
	AthleteID             string  `json:"athleteId"`
	Date                  string  `json:"date"` // ISO date, e.g. 2026-08-23
	TotalDistance         float64 `json:"totalDistance"`
	HighIntensityDistance float64 `json:"highIntensityDistance"`
	Notes                 string  `json:"notes,omitempty"`
}

// Day parses the session date as a local calendar date.
// The second return value is false for unparseable dates.
func (s Session) Day() (time.Time, bool) {
	day, err := time.ParseInLocation(dateLayout, s.Date, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}
