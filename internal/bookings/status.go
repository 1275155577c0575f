package bookings

type Status string

const (
	StatusQuoted    Status = "QUOTED"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

// IsValid checks if the booking status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusQuoted, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks whether the lifecycle allows moving to the target
// status. The only flows are quoted -> confirmed and quoted/confirmed -> cancelled.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusQuoted:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusCancelled
	}
	return false
}

// IsActive checks if the booking is still live (not cancelled)
func (s Status) IsActive() bool {
	return s == StatusQuoted || s == StatusConfirmed
}
