package sessions_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/squadstats/internal/sessions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	history := []sessions.Session{
		{AthleteID: "a1", Date: "2026-08-20", TotalDistance: 8000, HighIntensityDistance: 500, Notes: "Period: Preseason W3"},
		{AthleteID: "a1", Date: "2026-08-21", TotalDistance: 10000, HighIntensityDistance: 700},
	}

	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/athletes/a1/sessions", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewEncoder(w).Encode(history))
	}))
	defer testServer.Close()

	api := sessions.NewApi(testServer.URL, "test-api-key", testServer.Client())

	received, err := api.History(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, history, received)
}

func TestHistory_EmptyAthleteID(t *testing.T) {
	api := sessions.NewApi("http://localhost:1", "test-api-key", http.DefaultClient)

	history, err := api.History(context.Background(), "")
	assert.ErrorIs(t, err, sessions.ErrAthleteIDEmpty)
	assert.Nil(t, history)
}

func TestHistory_ServerError(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer testServer.Close()

	api := sessions.NewApi(testServer.URL, "test-api-key", testServer.Client())

	history, err := api.History(context.Background(), "a1")
	require.Error(t, err)
	assert.Nil(t, history)
	assert.Contains(t, err.Error(), "sessions api status")
}

func TestHistory_MalformedResponse(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte("]["))
		require.NoError(t, err)
	}))
	defer testServer.Close()

	api := sessions.NewApi(testServer.URL, "test-api-key", testServer.Client())

	history, err := api.History(context.Background(), "a1")
	require.Error(t, err)
	assert.Nil(t, history)
}

func TestSessionDay(t *testing.T) {
	s := sessions.Session{Date: "2026-08-21"}
	day, ok := s.Day()
	require.True(t, ok)
	assert.Equal(t, 2026, day.Year())
	assert.Equal(t, 21, day.Day())

	s = sessions.Session{Date: "21.08.2026"}
	_, ok = s.Day()
	assert.False(t, ok)

	s = sessions.Session{}
	_, ok = s.Day()
	assert.False(t, ok)
}
