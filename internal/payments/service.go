package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"glambook/internal/bookings"
	"glambook/internal/notifications"
	"glambook/internal/shared/config"
	"glambook/pkg/logger"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
)

// ErrTierRequired is returned when checkout is requested without a tier and
// the booking has none selected yet.
var ErrTierRequired = errors.New("a tier must be selected before checkout")

// ErrBookingNotPayable is returned when the booking is cancelled or already
// has a paid deposit.
var ErrBookingNotPayable = errors.New("booking is not payable")

// Service drives the optional deposit flow: create a Stripe Checkout session
// for half the selected tier's total, then confirm the booking when the
// webhook reports payment.
type Service interface {
	CreateCheckoutSession(ctx context.Context, bookingID, tier string) (*CheckoutSessionResponse, error)
	HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error
}

type service struct {
	repo        bookings.Repository
	notifier    notifications.NotificationService
	cfg         config.StripeConfig
	adminNotify string
}

// NewService wires the payment service. notifier may be nil.
func NewService(repo bookings.Repository, notifier notifications.NotificationService, cfg config.StripeConfig, adminNotify string) Service {
	stripe.Key = cfg.SecretKey
	return &service{
		repo:        repo,
		notifier:    notifier,
		cfg:         cfg,
		adminNotify: adminNotify,
	}
}

// DepositCents returns the 50% deposit for a quote total, in cents.
func DepositCents(total float64) int64 {
	return int64(math.Round(total * 50))
}

// paymentCurrency normalizes the configured currency code for payment records.
// Stripe takes the lowercase form; stored rows use the ISO uppercase form.
func paymentCurrency(code string) string {
	if code == "" {
		return "CAD"
	}
	return strings.ToUpper(code)
}

func (s *service) CreateCheckoutSession(ctx context.Context, bookingID, tier string) (*CheckoutSessionResponse, error) {
	booking, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !bookings.Status(booking.Status).IsActive() {
		return nil, ErrBookingNotPayable
	}
	if booking.Payment != nil && booking.Payment.IsDepositPaid() {
		return nil, ErrBookingNotPayable
	}

	if tier == "" {
		if booking.SelectedTier == nil {
			return nil, ErrTierRequired
		}
		tier = *booking.SelectedTier
	}
	if tier != "lead" && tier != "team" {
		return nil, ErrTierRequired
	}

	quote := booking.QuoteForTier(tier)
	depositCents := DepositCents(quote.Total)
	deposit := float64(depositCents) / 100

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(s.cfg.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("Booking %s - 50%% deposit", booking.ID)),
						Description: stripe.String(fmt.Sprintf("Deposit for makeup services, %s artist tier", tier)),
					},
					UnitAmount: stripe.Int64(depositCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:    stripe.String(s.cfg.SuccessURL),
		CancelURL:     stripe.String(s.cfg.CancelURL),
		CustomerEmail: stripe.String(booking.ClientEmail),
	}
	params.AddMetadata("booking_id", booking.ID)
	params.AddMetadata("tier", tier)

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	if err := s.repo.SetSelectedTier(ctx, booking.ID, tier); err != nil {
		return nil, err
	}

	payment := &bookings.Payment{
		BookingID:       booking.ID,
		Amount:          deposit,
		Currency:        paymentCurrency(s.cfg.Currency),
		Status:          bookings.PaymentStatusPending,
		StripeSessionID: sess.ID,
	}
	if err := s.repo.SavePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record pending payment: %w", err)
	}

	logger.Info("Checkout session created",
		"booking_id", booking.ID,
		"session_id", sess.ID,
		"deposit", deposit,
	)

	return &CheckoutSessionResponse{
		SessionID:   sess.ID,
		CheckoutURL: sess.URL,
		Amount:      deposit,
		Currency:    paymentCurrency(s.cfg.Currency),
	}, nil
}

func (s *service) HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.cfg.WebhookSecret)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return fmt.Errorf("failed to parse checkout session: %w", err)
		}
		return s.handleCheckoutCompleted(ctx, &sess)

	case "checkout.session.expired":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return fmt.Errorf("failed to parse checkout session: %w", err)
		}
		return s.handleCheckoutExpired(ctx, &sess)

	default:
		logger.Debug("Ignoring webhook event", "type", string(event.Type))
		return nil
	}
}

// handleCheckoutCompleted marks the deposit paid and confirms the booking.
// Stripe retries webhooks, so the handler is idempotent per session id.
func (s *service) handleCheckoutCompleted(ctx context.Context, sess *stripe.CheckoutSession) error {
	payment, err := s.repo.GetPaymentBySessionID(ctx, sess.ID)
	if err != nil {
		return fmt.Errorf("no payment recorded for session %s: %w", sess.ID, err)
	}

	if payment.IsDepositPaid() {
		logger.Debug("Webhook replay for already-paid session", "session_id", sess.ID)
		return nil
	}

	payment.MarkDepositPaid()
	if err := s.repo.UpdatePayment(ctx, payment); err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}

	booking, err := s.repo.GetBookingByID(ctx, payment.BookingID)
	if err != nil {
		return err
	}

	if bookings.Status(booking.Status).CanTransitionTo(bookings.StatusConfirmed) {
		if err := s.repo.UpdateBookingStatus(ctx, booking.ID, bookings.StatusConfirmed, nil); err != nil {
			return fmt.Errorf("failed to confirm booking: %w", err)
		}
		logger.BookingStatusChanged(booking.ID, booking.Status, bookings.StatusConfirmed.String())
	}

	logger.GetDefault().LogDepositPaid(ctx, booking.ID, payment.Amount)

	if s.notifier != nil {
		data := map[string]interface{}{
			"client_name": booking.ClientName,
			"booking_ref": booking.ID,
			"amount":      payment.Amount,
		}
		if err := s.notifier.SendDepositPaidEmail(ctx, booking.ClientEmail, booking.ClientName, booking.ID, data); err != nil {
			logger.Error("Failed to enqueue deposit confirmation email", "booking_id", booking.ID, "error", err)
		}
		if s.adminNotify != "" {
			if err := s.notifier.SendDepositPaidEmail(ctx, s.adminNotify, "Admin", booking.ID, data); err != nil {
				logger.Error("Failed to enqueue admin deposit notice", "booking_id", booking.ID, "error", err)
			}
		}
	}

	return nil
}

// handleCheckoutExpired records the abandoned session so the admin dashboard
// does not count it as an open deposit.
func (s *service) handleCheckoutExpired(ctx context.Context, sess *stripe.CheckoutSession) error {
	payment, err := s.repo.GetPaymentBySessionID(ctx, sess.ID)
	if err != nil {
		if errors.Is(err, bookings.ErrPaymentNotFound) {
			return nil
		}
		return err
	}

	if !payment.IsPending() {
		return nil
	}

	payment.MarkFailed("checkout session expired")
	return s.repo.UpdatePayment(ctx, payment)
}
