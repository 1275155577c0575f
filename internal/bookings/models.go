package bookings

import (
	"time"

	"glambook/internal/pricing"

	"github.com/google/uuid"
)

// Booking is the persisted aggregate for one client submission: contact info,
// the normalized booking summary, both tier quotes and payment tracking.
type Booking struct {
	ID          string `gorm:"type:varchar(12);primaryKey" json:"id"`
	ClientName  string `gorm:"not null;size:120" json:"client_name"`
	ClientEmail string `gorm:"not null;size:255" json:"client_email"`
	ClientPhone string `gorm:"not null;size:32" json:"client_phone"`
	OwnerID     string `gorm:"index;size:255" json:"owner_id"`

	Days  []DaySummary                `gorm:"serializer:json" json:"days"`
	Trial TrialSummary                `gorm:"serializer:json" json:"trial"`
	Party pricing.BridalPartyServices `gorm:"serializer:json" json:"party"`

	LeadQuote pricing.Quote `gorm:"serializer:json" json:"lead_quote"`
	TeamQuote pricing.Quote `gorm:"serializer:json" json:"team_quote"`

	SelectedTier *string `gorm:"type:varchar(10)" json:"selected_tier,omitempty"`

	AppointmentAt        time.Time `gorm:"index;not null" json:"appointment_at"`
	TotalDurationMinutes int       `gorm:"not null" json:"total_duration_minutes"`

	Status      string     `gorm:"type:varchar(20);check:status IN ('QUOTED', 'CONFIRMED', 'CANCELLED');default:'QUOTED'" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	// Relationships
	Payment *Payment `json:"payment,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
}

// DaySummary is the normalized descriptive record for one booked day.
type DaySummary struct {
	Date            string   `json:"date"`
	ReadyTime       string   `json:"ready_time"`
	ServiceID       string   `json:"service_id"`
	ServiceName     string   `json:"service_name"`
	OptionLabel     string   `json:"option_label"`
	DeliveryMode    string   `json:"delivery_mode"`
	LocationLabel   string   `json:"location_label,omitempty"`
	AddOns          []string `json:"add_ons,omitempty"`
	DurationMinutes int      `json:"duration_minutes"`
}

// TrialSummary is the normalized bridal-trial record.
type TrialSummary struct {
	Enabled bool   `json:"enabled"`
	Date    string `json:"date,omitempty"`
	Time    string `json:"time,omitempty"`
}

// Payment tracks the Stripe deposit for a booking.
type Payment struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingID       string     `gorm:"type:varchar(12);index;not null" json:"booking_id"`
	Amount          float64    `gorm:"not null" json:"amount"`
	Currency        string     `gorm:"type:varchar(3);default:'CAD'" json:"currency"`
	Status          string     `gorm:"type:varchar(20);check:status IN ('PENDING', 'DEPOSIT_PAID', 'FAILED');default:'PENDING'" json:"status"`
	StripeSessionID string     `gorm:"uniqueIndex;size:255" json:"stripe_session_id"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
	FailureReason   string     `json:"failure_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// TableName sets the table name for Payment
func (Payment) TableName() string {
	return "payments"
}

// Payment status values
const (
	PaymentStatusPending     = "PENDING"
	PaymentStatusDepositPaid = "DEPOSIT_PAID"
	PaymentStatusFailed      = "FAILED"
)

// IsPending reports whether the deposit is still outstanding
func (p *Payment) IsPending() bool {
	return p.Status == PaymentStatusPending
}

// IsDepositPaid reports whether the deposit has been collected
func (p *Payment) IsDepositPaid() bool {
	return p.Status == PaymentStatusDepositPaid
}

// MarkDepositPaid transitions the payment to its paid state
func (p *Payment) MarkDepositPaid() {
	p.Status = PaymentStatusDepositPaid
	now := time.Now()
	p.ProcessedAt = &now
	p.UpdatedAt = now
}

// MarkFailed records a failed payment attempt
func (p *Payment) MarkFailed(reason string) {
	p.Status = PaymentStatusFailed
	p.FailureReason = reason
	now := time.Now()
	p.ProcessedAt = &now
	p.UpdatedAt = now
}

// QuoteForTier returns the quote matching the given tier name.
func (b *Booking) QuoteForTier(tier string) pricing.Quote {
	if tier == "team" {
		return b.TeamQuote
	}
	return b.LeadQuote
}
