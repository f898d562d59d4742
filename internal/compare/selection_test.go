package compare_test

import (
	"fmt"
	"testing"

	"github.com/2beens/squadstats/internal/compare"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_Defaults(t *testing.T) {
	sel := compare.NewSelection()
	assert.Equal(t, compare.ModeByAthlete, sel.Mode())
	assert.Equal(t, compare.DateRangeAll, sel.DateRange())
	assert.Empty(t, sel.AthleteIDs())
	assert.Empty(t, sel.Positions())
	assert.Empty(t, sel.SingleAthleteID())
}

func TestSelection_ToggleAthlete(t *testing.T) {
	sel := compare.NewSelection()

	sel.ToggleAthlete("a1")
	sel.ToggleAthlete("a2")
	sel.ToggleAthlete("a3")
	assert.Equal(t, []string{"a1", "a2", "a3"}, sel.AthleteIDs())

	// toggling an already selected athlete removes it
	sel.ToggleAthlete("a2")
	assert.Equal(t, []string{"a1", "a3"}, sel.AthleteIDs())

	// and toggling it again adds it back, at the end
	sel.ToggleAthlete("a2")
	assert.Equal(t, []string{"a1", "a3", "a2"}, sel.AthleteIDs())
}

func TestSelection_ToggleAthlete_Cap(t *testing.T) {
	sel := compare.NewSelection()
	for i := 0; i < compare.MaxSelectedAthletes; i++ {
		sel.ToggleAthlete(fmt.Sprintf("athlete-%d", i))
	}
	require.Len(t, sel.AthleteIDs(), compare.MaxSelectedAthletes)

	// the 11th distinct athlete is silently rejected
	sel.ToggleAthlete("one-too-many")
	assert.Len(t, sel.AthleteIDs(), compare.MaxSelectedAthletes)
	assert.NotContains(t, sel.AthleteIDs(), "one-too-many")

	// toggling an already selected one still removes it
	sel.ToggleAthlete("athlete-0")
	assert.Len(t, sel.AthleteIDs(), compare.MaxSelectedAthletes-1)

	// and with the cap freed up, a new athlete fits again
	sel.ToggleAthlete("one-too-many")
	assert.Contains(t, sel.AthleteIDs(), "one-too-many")
}

func TestSelection_SetSingleAthlete(t *testing.T) {
	sel := compare.NewSelection()

	sel.SetSingleAthlete("a1")
	assert.Equal(t, "a1", sel.SingleAthleteID())

	sel.SetSingleAthlete("a2")
	assert.Equal(t, "a2", sel.SingleAthleteID())

	// setting the currently selected id clears it
	sel.SetSingleAthlete("a2")
	assert.Empty(t, sel.SingleAthleteID())
}

func TestSelection_TogglePosition(t *testing.T) {
	sel := compare.NewSelection()

	sel.TogglePosition("Midfielder")
	sel.TogglePosition("Forward")
	assert.Equal(t, []string{"Midfielder", "Forward"}, sel.Positions())

	sel.TogglePosition("Midfielder")
	assert.Equal(t, []string{"Forward"}, sel.Positions())

	// no cap on positions
	for i := 0; i < 20; i++ {
		sel.TogglePosition(fmt.Sprintf("position-%d", i))
	}
	assert.Len(t, sel.Positions(), 21)
}

func TestSelection_ModeSwitchKeepsOtherModesSelections(t *testing.T) {
	sel := compare.NewSelection()
	sel.ToggleAthlete("a1")
	sel.SetSingleAthlete("a2")
	sel.TogglePosition("Defender")

	sel.SetMode(compare.ModeByPositionGroup)
	sel.SetMode(compare.ModeBySessionsOfAthlete)
	sel.SetMode(compare.ModeByAthlete)

	assert.Equal(t, []string{"a1"}, sel.AthleteIDs())
	assert.Equal(t, "a2", sel.SingleAthleteID())
	assert.Equal(t, []string{"Defender"}, sel.Positions())
}
