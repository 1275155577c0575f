package availability

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"glambook/internal/shared/config"
)

// Checker is the availability oracle contract. Implementations are opaque to
// callers: any rule engine, ML call or stub that answers the same question is
// acceptable. Callers treat errors as advisory, never as a rejection.
type Checker interface {
	Check(ctx context.Context, req CheckRequest) (*Result, error)
}

// New returns the AI-backed checker when a service URL is configured,
// otherwise the built-in heuristic over sample bookings.
func New(cfg config.AvailabilityConfig) Checker {
	if cfg.ServiceURL != "" {
		return &aiChecker{
			url: cfg.ServiceURL,
			client: &http.Client{
				Timeout: cfg.RequestTimeout,
			},
		}
	}
	return &heuristicChecker{}
}

// aiChecker forwards the check to an external prompt-based service and trusts
// its boolean answer.
type aiChecker struct {
	url    string
	client *http.Client
}

type aiResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason"`
}

func (a *aiChecker) Check(ctx context.Context, req CheckRequest) (*Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal availability request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build availability request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("availability service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("availability service returned status %d", resp.StatusCode)
	}

	var parsed aiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode availability response: %w", err)
	}

	return &Result{Available: parsed.Available, Reason: parsed.Reason}, nil
}

// heuristicChecker is the stub implementation: it merges a fixed set of sample
// bookings with the provided ones and rejects overlapping windows, padding each
// side with the travel allowance.
type heuristicChecker struct{}

// sampleBookings are the hardcoded demo appointments the stub checks against.
func sampleBookings() []BookingWindow {
	base := time.Now().AddDate(0, 0, 14).Truncate(24 * time.Hour)
	return []BookingWindow{
		{StartsAt: base.Add(9 * time.Hour), DurationMinutes: 180, Location: "toronto"},
		{StartsAt: base.AddDate(0, 0, 1).Add(7 * time.Hour), DurationMinutes: 150, Location: "gta"},
	}
}

func (h *heuristicChecker) Check(_ context.Context, req CheckRequest) (*Result, error) {
	windows := append(sampleBookings(), req.ExistingBookings...)

	pad := time.Duration(req.TravelAllowanceMinutes) * time.Minute
	start := req.AppointmentAt.Add(-pad)
	end := req.AppointmentAt.Add(time.Duration(req.RequestedDurationMinutes)*time.Minute + pad)

	for _, w := range windows {
		wStart := w.StartsAt
		wEnd := w.StartsAt.Add(time.Duration(w.DurationMinutes) * time.Minute)
		if start.Before(wEnd) && wStart.Before(end) {
			return &Result{
				Available: false,
				Reason: fmt.Sprintf("the artist is already booked around %s",
					wStart.Format("Jan 2 at 3:04 PM")),
			}, nil
		}
	}

	return &Result{Available: true}, nil
}
