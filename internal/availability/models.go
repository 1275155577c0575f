package availability

import "time"

// BookingWindow is one already-committed appointment the oracle should
// consider when judging availability.
type BookingWindow struct {
	StartsAt        time.Time `json:"starts_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location,omitempty"`
}

// CheckRequest is the oracle input contract: existing bookings, the requested
// total duration, a fixed travel-time allowance and the combined appointment
// timestamp for the new request.
type CheckRequest struct {
	ExistingBookings         []BookingWindow `json:"existing_bookings"`
	RequestedDurationMinutes int             `json:"requested_duration_minutes"`
	TravelAllowanceMinutes   int             `json:"travel_allowance_minutes"`
	AppointmentAt            time.Time       `json:"appointment_at"`
}

// Result is the oracle verdict.
type Result struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}
