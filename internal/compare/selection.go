package compare

// Mode is the strategy by which comparison entities
// are selected and aggregated.
type Mode string

const (
	ModeByAthlete           Mode = "athlete"
	ModeBySessionsOfAthlete Mode = "sessions"
	ModeByPositionGroup     Mode = "position"
)

type DateRange string

const (
	DateRange7Days  DateRange = "7d"
	DateRange30Days DateRange = "30d"
	DateRangeAll    DateRange = "all"
)

// MaxSelectedAthletes caps the athlete set in ModeByAthlete.
// Toggling an athlete in once the cap is reached is a silent no-op.
const MaxSelectedAthletes = 10

// Selection holds the active comparison mode and the per-mode picks.
// Each mode keeps its own fields; switching modes never clears the
// other modes' picks, they are simply ignored until that mode is active.
type Selection struct {
	mode            Mode
	athleteIDs      []string
	singleAthleteID string
	positions       []string
	dateRange       DateRange
}

func NewSelection() *Selection {
	return &Selection{
		mode:      ModeByAthlete,
		dateRange: DateRangeAll,
	}
}

func (s *Selection) Mode() Mode {
	return s.mode
}

func (s *Selection) SetMode(mode Mode) {
	s.mode = mode
}

func (s *Selection) DateRange() DateRange {
	return s.dateRange
}

func (s *Selection) SetDateRange(dateRange DateRange) {
	s.dateRange = dateRange
}

// ToggleAthlete adds or removes an athlete id, in selection order.
// Adding an 11th distinct athlete is silently rejected.
func (s *Selection) ToggleAthlete(id string) {
	for i, selectedID := range s.athleteIDs {
		if selectedID == id {
			s.athleteIDs = append(s.athleteIDs[:i], s.athleteIDs[i+1:]...)
			return
		}
	}
	if len(s.athleteIDs) >= MaxSelectedAthletes {
		return
	}
	s.athleteIDs = append(s.athleteIDs, id)
}

// AthleteIDs returns the selected athlete ids in selection order.
func (s *Selection) AthleteIDs() []string {
	ids := make([]string, len(s.athleteIDs))
	copy(ids, s.athleteIDs)
	return ids
}

// SetSingleAthlete replaces the single-athlete pick;
// passing the currently selected id clears it.
func (s *Selection) SetSingleAthlete(id string) {
	if s.singleAthleteID == id {
		s.singleAthleteID = ""
		return
	}
	s.singleAthleteID = id
}

func (s *Selection) SingleAthleteID() string {
	return s.singleAthleteID
}

// TogglePosition adds or removes a position label, no cap.
func (s *Selection) TogglePosition(position string) {
	for i, selected := range s.positions {
		if selected == position {
			s.positions = append(s.positions[:i], s.positions[i+1:]...)
			return
		}
	}
	s.positions = append(s.positions, position)
}

// Positions returns the selected position labels in selection order.
func (s *Selection) Positions() []string {
	positions := make([]string, len(s.positions))
	copy(positions, s.positions)
	return positions
}
