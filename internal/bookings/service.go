package bookings

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sort"
	"time"

	"glambook/internal/availability"
	"glambook/internal/catalog"
	"glambook/internal/pricing"
	"glambook/internal/shared/constants"
	"glambook/pkg/cache"
	"glambook/pkg/logger"
)

// ValidationError carries the field -> message map for a rejected submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("submission failed validation on %d field(s)", len(e.Fields))
}

// UnavailableError is returned when the requested slot conflicts with the
// artist's confirmed schedule.
type UnavailableError struct {
	Reason string
}

func (e *UnavailableError) Error() string {
	return "requested slot is unavailable: " + e.Reason
}

// ErrInvalidTransition is returned when an admin status change breaks the
// booking lifecycle.
var ErrInvalidTransition = fmt.Errorf("status transition not allowed")

// QuoteNotifier publishes booking emails. Implemented by the notifications
// adapter so this package stays free of transport details.
type QuoteNotifier interface {
	PublishQuoteEmail(ctx context.Context, booking *Booking) error
}

// Service defines the booking business logic.
type Service interface {
	SubmitQuote(ctx context.Context, req *SubmitQuoteRequest) (*Booking, error)
	GetBooking(ctx context.Context, id string) (*Booking, error)
	ListBookings(ctx context.Context, query BookingListQuery) (*BookingListResponse, error)
	UpdateStatus(ctx context.Context, id string, target Status) (*Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}

type service struct {
	repo            Repository
	catalog         *catalog.Catalog
	checker         availability.Checker
	notifier        QuoteNotifier
	cache           cache.Service
	travelAllowance int
}

// NewService wires the booking service with its collaborators. notifier and
// cacheService may be nil in tests.
func NewService(repo Repository, cat *catalog.Catalog, checker availability.Checker, notifier QuoteNotifier, cacheService cache.Service, travelAllowanceMinutes int) Service {
	return &service{
		repo:            repo,
		catalog:         cat,
		checker:         checker,
		notifier:        notifier,
		cache:           cacheService,
		travelAllowance: travelAllowanceMinutes,
	}
}

func (s *service) SubmitQuote(ctx context.Context, req *SubmitQuoteRequest) (*Booking, error) {
	if fields := ValidateSubmitRequest(s.catalog, req); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	days := toPricingDays(req.Days)
	sort.SliceStable(days, func(i, j int) bool {
		if days[i].Date == days[j].Date {
			return days[i].ReadyTime < days[j].ReadyTime
		}
		return days[i].Date < days[j].Date
	})

	appointmentAt, totalDuration := s.schedule(days)

	if err := s.checkAvailability(ctx, appointmentAt, totalDuration); err != nil {
		return nil, err
	}

	trial := toPricingTrial(req.BridalTrial)
	party := toPricingParty(req.BridalParty)

	leadQuote, teamQuote := pricing.ComputeQuotes(s.catalog, days, trial, party)

	booking := &Booking{
		ID:                   generateBookingRef(),
		ClientName:           req.Name,
		ClientEmail:          req.Email,
		ClientPhone:          req.Phone,
		Days:                 s.summarizeDays(days),
		Trial:                TrialSummary{Enabled: trial.Enabled, Date: trial.Date, Time: trial.Time},
		Party:                party,
		LeadQuote:            leadQuote,
		TeamQuote:            teamQuote,
		AppointmentAt:        appointmentAt,
		TotalDurationMinutes: totalDuration,
		Status:               StatusQuoted.String(),
	}

	if err := s.repo.CreateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	// The booking is already durable; email delivery failures are retried by
	// the pipeline and must not fail the submission.
	if s.notifier != nil {
		if err := s.notifier.PublishQuoteEmail(ctx, booking); err != nil {
			logger.Error("Failed to enqueue quote email", "booking_id", booking.ID, "error", err)
		}
	}

	s.invalidateListCaches(ctx)
	logger.BookingQuoted(booking.ID, booking.ClientEmail, booking.LeadQuote.Total, booking.TeamQuote.Total)

	return booking, nil
}

func (s *service) GetBooking(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetBookingByID(ctx, id)
}

func (s *service) ListBookings(ctx context.Context, query BookingListQuery) (*BookingListResponse, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	bookings, totalCount, err := s.repo.GetAllBookings(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	totalPages := int((totalCount + int64(query.Limit) - 1) / int64(query.Limit))
	return &BookingListResponse{
		Bookings: bookings,
		Pagination: Pagination{
			Page:       query.Page,
			Limit:      query.Limit,
			TotalCount: totalCount,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, target Status) (*Booking, error) {
	if !target.IsValid() {
		return nil, ErrInvalidTransition
	}

	booking, err := s.repo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current := Status(booking.Status)
	if !current.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	var cancelledAt *time.Time
	if target == StatusCancelled {
		now := time.Now()
		cancelledAt = &now
	}

	if err := s.repo.UpdateBookingStatus(ctx, id, target, cancelledAt); err != nil {
		return nil, err
	}

	booking.Status = target.String()
	booking.CancelledAt = cancelledAt

	s.invalidateListCaches(ctx)
	logger.BookingStatusChanged(id, current.String(), target.String())

	return booking, nil
}

func (s *service) DeleteBooking(ctx context.Context, id string) error {
	if err := s.repo.DeleteBooking(ctx, id); err != nil {
		return err
	}
	s.invalidateListCaches(ctx)
	logger.Info("Booking deleted", "booking_id", id)
	return nil
}

func (s *service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	return s.repo.Stats(ctx)
}

// schedule derives the earliest appointment timestamp and the summed service
// duration across all requested days. Days are already sorted, so the first
// one anchors the appointment.
func (s *service) schedule(days []pricing.BookingDay) (time.Time, int) {
	total := 0
	for _, day := range days {
		if svc, ok := s.catalog.ServiceByID(day.ServiceID); ok {
			total += svc.DurationMinutes
		}
	}

	first := days[0]
	appointmentAt, err := time.ParseInLocation(dateLayout+" "+timeLayout, first.Date+" "+first.ReadyTime, time.Local)
	if err != nil {
		appointmentAt = time.Now()
	}
	return appointmentAt, total
}

// checkAvailability runs the advisory scheduling oracle. Oracle failures are
// logged and the quote proceeds; only an explicit conflict blocks it.
func (s *service) checkAvailability(ctx context.Context, appointmentAt time.Time, durationMinutes int) error {
	if s.checker == nil {
		return nil
	}

	existing, err := s.repo.UpcomingConfirmed(ctx, time.Now(), 50)
	if err != nil {
		logger.Warn("Could not load confirmed bookings for availability check", "error", err)
		return nil
	}

	windows := make([]availability.BookingWindow, 0, len(existing))
	for _, b := range existing {
		windows = append(windows, availability.BookingWindow{
			StartsAt:        b.AppointmentAt,
			DurationMinutes: b.TotalDurationMinutes,
		})
	}

	result, err := s.checker.Check(ctx, availability.CheckRequest{
		ExistingBookings:         windows,
		RequestedDurationMinutes: durationMinutes,
		TravelAllowanceMinutes:   s.travelAllowance,
		AppointmentAt:            appointmentAt,
	})
	if err != nil {
		logger.Warn("Availability check failed, proceeding with quote", "error", err)
		return nil
	}
	if !result.Available {
		return &UnavailableError{Reason: result.Reason}
	}
	return nil
}

func (s *service) summarizeDays(days []pricing.BookingDay) []DaySummary {
	summaries := make([]DaySummary, 0, len(days))
	for _, day := range days {
		summary := DaySummary{
			Date:         day.Date,
			ReadyTime:    day.ReadyTime,
			ServiceID:    day.ServiceID,
			DeliveryMode: string(day.DeliveryMode),
		}

		if svc, ok := s.catalog.ServiceByID(day.ServiceID); ok {
			summary.ServiceName = svc.Name
			summary.DurationMinutes = svc.DurationMinutes
		}

		summary.OptionLabel = "Standard"
		if day.Option != nil {
			if opt, ok := s.catalog.OptionByID(*day.Option); ok {
				summary.OptionLabel = opt.Label
			}
		}

		if day.DeliveryMode == catalog.DeliveryMobile {
			if loc, ok := s.catalog.LocationByID(day.TravelLocationID); ok {
				summary.LocationLabel = loc.Label
			}
		}

		if day.HairExtensions > 0 {
			summary.AddOns = append(summary.AddOns, fmt.Sprintf("Hair Extensions (x%d)", day.HairExtensions))
		}
		if day.JewellerySetting {
			summary.AddOns = append(summary.AddOns, "Jewellery Setting")
		}
		if day.SareeDraping {
			summary.AddOns = append(summary.AddOns, "Saree Draping")
		}
		if day.HijabSetting {
			summary.AddOns = append(summary.AddOns, "Hijab Setting")
		}

		summaries = append(summaries, summary)
	}
	return summaries
}

func (s *service) invalidateListCaches(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, constants.BookingsPattern()); err != nil {
		logger.Warn("Failed to invalidate booking caches", "error", err)
	}
	if err := s.cache.Delete(ctx, constants.CACHE_KEY_DASHBOARD_STATS); err != nil {
		logger.Warn("Failed to invalidate dashboard cache", "error", err)
	}
}

func toPricingDays(reqDays []BookingDayRequest) []pricing.BookingDay {
	days := make([]pricing.BookingDay, 0, len(reqDays))
	for _, d := range reqDays {
		day := pricing.BookingDay{
			Date:             d.Date,
			ReadyTime:        d.ReadyTime,
			ServiceID:        d.ServiceID,
			HairExtensions:   d.HairExtensions,
			JewellerySetting: d.JewellerySetting,
			SareeDraping:     d.SareeDraping,
			HijabSetting:     d.HijabSetting,
			DeliveryMode:     catalog.DeliveryMode(d.DeliveryMode),
			TravelLocationID: d.TravelLocationID,
		}
		if d.Option != "" {
			opt := catalog.ServiceOption(d.Option)
			day.Option = &opt
		}
		days = append(days, day)
	}
	return days
}

func toPricingTrial(req *BridalTrialRequest) pricing.BridalTrial {
	if req == nil {
		return pricing.BridalTrial{}
	}
	return pricing.BridalTrial{Enabled: req.Enabled, Date: req.Date, Time: req.Time}
}

func toPricingParty(req *BridalPartyRequest) pricing.BridalPartyServices {
	if req == nil || !req.Enabled {
		return pricing.BridalPartyServices{}
	}
	return pricing.BridalPartyServices{
		Enabled:               true,
		HairAndMakeup:         req.HairAndMakeup,
		MakeupOnly:            req.MakeupOnly,
		HairOnly:              req.HairOnly,
		DupattaSetting:        req.DupattaSetting,
		ExtensionInstallation: req.ExtensionInstallation,
		SareeDraping:          req.SareeDraping,
		HijabSetting:          req.HijabSetting,
		Airbrush:              req.Airbrush,
	}
}

// generateBookingRef produces a 6-digit reference like "483920". Collisions
// are caught by the primary key constraint on insert.
func generateBookingRef() string {
	max := big.NewInt(900000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return fmt.Sprintf("%06d", time.Now().UnixNano()%1000000)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}
