package availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"glambook/internal/shared/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicCheckerDetectsOverlap(t *testing.T) {
	checker := &heuristicChecker{}
	busy := time.Now().AddDate(0, 0, 30).Truncate(24 * time.Hour).Add(10 * time.Hour)

	req := CheckRequest{
		ExistingBookings: []BookingWindow{
			{StartsAt: busy, DurationMinutes: 120},
		},
		RequestedDurationMinutes: 90,
		TravelAllowanceMinutes:   60,
		AppointmentAt:            busy.Add(30 * time.Minute),
	}

	res, err := checker.Check(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.NotEmpty(t, res.Reason)
}

func TestHeuristicCheckerAllowsFreeSlot(t *testing.T) {
	checker := &heuristicChecker{}

	// Far away from both the provided window and the hardcoded samples.
	res, err := checker.Check(context.Background(), CheckRequest{
		ExistingBookings: []BookingWindow{
			{StartsAt: time.Now().AddDate(0, 0, 30), DurationMinutes: 120},
		},
		RequestedDurationMinutes: 90,
		TravelAllowanceMinutes:   60,
		AppointmentAt:            time.Now().AddDate(0, 0, 60),
	})
	require.NoError(t, err)
	assert.True(t, res.Available)
}

func TestAICheckerForwardsRequest(t *testing.T) {
	var received CheckRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(aiResponse{Available: false, Reason: "double booked"})
	}))
	defer server.Close()

	checker := New(config.AvailabilityConfig{
		ServiceURL:     server.URL,
		RequestTimeout: 5 * time.Second,
	})

	res, err := checker.Check(context.Background(), CheckRequest{
		RequestedDurationMinutes: 180,
		TravelAllowanceMinutes:   60,
		AppointmentAt:            time.Date(2026, 10, 10, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, "double booked", res.Reason)
	assert.Equal(t, 180, received.RequestedDurationMinutes)
}

func TestAICheckerErrorsOnBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	checker := New(config.AvailabilityConfig{ServiceURL: server.URL, RequestTimeout: 5 * time.Second})
	_, err := checker.Check(context.Background(), CheckRequest{AppointmentAt: time.Now()})
	assert.Error(t, err)
}
