package bookings

import (
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"
)

// ErrBookingNotFound is returned when no booking matches the given id.
var ErrBookingNotFound = errors.New("booking not found")

// ErrPaymentNotFound is returned when no payment matches the given session.
var ErrPaymentNotFound = errors.New("payment not found")

type Repository interface {
	// Core booking operations
	CreateBooking(ctx context.Context, booking *Booking) error
	GetBookingByID(ctx context.Context, id string) (*Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status Status, cancelledAt *time.Time) error
	DeleteBooking(ctx context.Context, id string) error

	// Admin operations
	GetAllBookings(ctx context.Context, query BookingListQuery) ([]Booking, int64, error)
	Stats(ctx context.Context) (*DashboardStats, error)

	// Availability support
	UpcomingConfirmed(ctx context.Context, from time.Time, limit int) ([]Booking, error)

	// Payment tracking
	SetSelectedTier(ctx context.Context, id string, tier string) error
	SavePayment(ctx context.Context, payment *Payment) error
	GetPaymentBySessionID(ctx context.Context, sessionID string) (*Payment, error)
	UpdatePayment(ctx context.Context, payment *Payment) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBooking(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *repository) GetBookingByID(ctx context.Context, id string) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Payment").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) UpdateBookingStatus(ctx context.Context, id string, status Status, cancelledAt *time.Time) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if cancelledAt != nil {
		updates["cancelled_at"] = *cancelledAt
	}

	result := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *repository) DeleteBooking(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Booking{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *repository) GetAllBookings(ctx context.Context, query BookingListQuery) ([]Booking, int64, error) {
	var bookings []Booking
	var totalCount int64

	// Set defaults
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	baseQuery := r.db.WithContext(ctx).Model(&Booking{})
	if query.Status != "" {
		baseQuery = baseQuery.Where("status = ?", query.Status)
	}

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := baseQuery.
		Preload("Payment").
		Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}

	return bookings, totalCount, nil
}

func (r *repository) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	counts := []struct {
		status Status
		target *int64
	}{
		{StatusQuoted, &stats.Quoted},
		{StatusConfirmed, &stats.Confirmed},
		{StatusCancelled, &stats.Cancelled},
	}
	for _, c := range counts {
		if err := r.db.WithContext(ctx).
			Model(&Booking{}).
			Where("status = ?", c.status).
			Count(c.target).Error; err != nil {
			return nil, err
		}
	}
	stats.TotalBookings = stats.Quoted + stats.Confirmed + stats.Cancelled

	if err := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("status != ? AND appointment_at > ?", StatusCancelled, time.Now()).
		Count(&stats.Upcoming).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(&Payment{}).
		Where("status = ?", PaymentStatusDepositPaid).
		Count(&stats.DepositsPaid).Error; err != nil {
		return nil, err
	}

	// Quote totals live inside serialized JSON columns, so revenue is summed
	// in process over the confirmed set.
	var confirmed []Booking
	if err := r.db.WithContext(ctx).
		Where("status = ?", StatusConfirmed).
		Find(&confirmed).Error; err != nil {
		return nil, err
	}
	for _, b := range confirmed {
		tier := "lead"
		if b.SelectedTier != nil {
			tier = *b.SelectedTier
		}
		stats.ConfirmedRevenue += b.QuoteForTier(tier).Total
	}
	stats.ConfirmedRevenue = math.Round(stats.ConfirmedRevenue*100) / 100

	return stats, nil
}

func (r *repository) UpcomingConfirmed(ctx context.Context, from time.Time, limit int) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("status = ? AND appointment_at >= ?", StatusConfirmed, from).
		Order("appointment_at ASC").
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) SetSelectedTier(ctx context.Context, id string, tier string) error {
	result := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"selected_tier": tier,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *repository) SavePayment(ctx context.Context, payment *Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *repository) GetPaymentBySessionID(ctx context.Context, sessionID string) (*Payment, error) {
	var payment Payment
	err := r.db.WithContext(ctx).
		Where("stripe_session_id = ?", sessionID).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *repository) UpdatePayment(ctx context.Context, payment *Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}
