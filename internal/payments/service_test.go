package payments

import (
	"context"
	"testing"
	"time"

	"glambook/internal/bookings"
	"glambook/internal/notifications"
	"glambook/internal/pricing"
	"glambook/internal/shared/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

type fakeRepo struct {
	bookings map[string]*bookings.Booking
	payments map[string]*bookings.Payment

	updatedPayments []*bookings.Payment
	statusUpdates   []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		bookings: make(map[string]*bookings.Booking),
		payments: make(map[string]*bookings.Payment),
	}
}

func (r *fakeRepo) CreateBooking(ctx context.Context, booking *bookings.Booking) error {
	r.bookings[booking.ID] = booking
	return nil
}

func (r *fakeRepo) GetBookingByID(ctx context.Context, id string) (*bookings.Booking, error) {
	if b, ok := r.bookings[id]; ok {
		return b, nil
	}
	return nil, bookings.ErrBookingNotFound
}

func (r *fakeRepo) UpdateBookingStatus(ctx context.Context, id string, status bookings.Status, cancelledAt *time.Time) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookings.ErrBookingNotFound
	}
	b.Status = status.String()
	r.statusUpdates = append(r.statusUpdates, id+":"+status.String())
	return nil
}

func (r *fakeRepo) DeleteBooking(ctx context.Context, id string) error { return nil }

func (r *fakeRepo) GetAllBookings(ctx context.Context, query bookings.BookingListQuery) ([]bookings.Booking, int64, error) {
	return nil, 0, nil
}

func (r *fakeRepo) Stats(ctx context.Context) (*bookings.DashboardStats, error) {
	return &bookings.DashboardStats{}, nil
}

func (r *fakeRepo) UpcomingConfirmed(ctx context.Context, from time.Time, limit int) ([]bookings.Booking, error) {
	return nil, nil
}

func (r *fakeRepo) SetSelectedTier(ctx context.Context, id string, tier string) error {
	if b, ok := r.bookings[id]; ok {
		b.SelectedTier = &tier
	}
	return nil
}

func (r *fakeRepo) SavePayment(ctx context.Context, payment *bookings.Payment) error {
	r.payments[payment.StripeSessionID] = payment
	return nil
}

func (r *fakeRepo) GetPaymentBySessionID(ctx context.Context, sessionID string) (*bookings.Payment, error) {
	if p, ok := r.payments[sessionID]; ok {
		return p, nil
	}
	return nil, bookings.ErrPaymentNotFound
}

func (r *fakeRepo) UpdatePayment(ctx context.Context, payment *bookings.Payment) error {
	r.updatedPayments = append(r.updatedPayments, payment)
	return nil
}

type fakeNotifier struct {
	depositEmails []string
}

func (n *fakeNotifier) SendNotification(ctx context.Context, notification *notifications.EmailNotification) error {
	return nil
}

func (n *fakeNotifier) SendQuoteEmail(ctx context.Context, email, name, bookingRef string, templateData map[string]interface{}) error {
	return nil
}

func (n *fakeNotifier) SendDepositPaidEmail(ctx context.Context, email, name, bookingRef string, templateData map[string]interface{}) error {
	n.depositEmails = append(n.depositEmails, email)
	return nil
}

func (n *fakeNotifier) Start(ctx context.Context) error       { return nil }
func (n *fakeNotifier) Stop() error                           { return nil }
func (n *fakeNotifier) HealthCheck(ctx context.Context) error { return nil }

func quotedBooking(id string) *bookings.Booking {
	return &bookings.Booking{
		ID:          id,
		ClientName:  "Priya Sharma",
		ClientEmail: "priya@example.com",
		Status:      bookings.StatusQuoted.String(),
		LeadQuote:   pricing.Quote{Subtotal: 253.5, Tax: 28.6455, Total: 286.455},
		TeamQuote:   pricing.Quote{Subtotal: 200, Tax: 22.6, Total: 226.0},
	}
}

func TestDepositCents(t *testing.T) {
	assert.Equal(t, int64(14323), DepositCents(286.455)) // half of 28645.5 cents, rounded
	assert.Equal(t, int64(11300), DepositCents(226.0))
	assert.Equal(t, int64(5000), DepositCents(100))
	assert.Equal(t, int64(0), DepositCents(0))
}

func TestPaymentCurrency(t *testing.T) {
	assert.Equal(t, "CAD", paymentCurrency(""))
	assert.Equal(t, "CAD", paymentCurrency("cad"))
	assert.Equal(t, "USD", paymentCurrency("usd"))
	assert.Equal(t, "EUR", paymentCurrency("EUR"))
}

func TestCreateCheckoutSessionUnknownBooking(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, config.StripeConfig{}, "")

	_, err := svc.CreateCheckoutSession(context.Background(), "000000", "lead")
	assert.ErrorIs(t, err, bookings.ErrBookingNotFound)
}

func TestCreateCheckoutSessionRejectsCancelled(t *testing.T) {
	repo := newFakeRepo()
	b := quotedBooking("123456")
	b.Status = bookings.StatusCancelled.String()
	repo.bookings[b.ID] = b

	svc := NewService(repo, nil, config.StripeConfig{}, "")

	_, err := svc.CreateCheckoutSession(context.Background(), "123456", "lead")
	assert.ErrorIs(t, err, ErrBookingNotPayable)
}

func TestCreateCheckoutSessionRejectsPaidDeposit(t *testing.T) {
	repo := newFakeRepo()
	b := quotedBooking("123456")
	b.Status = bookings.StatusConfirmed.String()
	paid := &bookings.Payment{BookingID: b.ID}
	paid.MarkDepositPaid()
	b.Payment = paid
	repo.bookings[b.ID] = b

	svc := NewService(repo, nil, config.StripeConfig{}, "")

	_, err := svc.CreateCheckoutSession(context.Background(), "123456", "lead")
	assert.ErrorIs(t, err, ErrBookingNotPayable)
}

func TestCreateCheckoutSessionRequiresTier(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings["123456"] = quotedBooking("123456")

	svc := NewService(repo, nil, config.StripeConfig{}, "")

	_, err := svc.CreateCheckoutSession(context.Background(), "123456", "")
	assert.ErrorIs(t, err, ErrTierRequired)

	_, err = svc.CreateCheckoutSession(context.Background(), "123456", "platinum")
	assert.ErrorIs(t, err, ErrTierRequired)
}

func TestHandleCheckoutCompletedConfirmsBooking(t *testing.T) {
	repo := newFakeRepo()
	b := quotedBooking("123456")
	repo.bookings[b.ID] = b
	repo.payments["cs_test_1"] = &bookings.Payment{
		BookingID:       b.ID,
		Amount:          143.23,
		Status:          bookings.PaymentStatusPending,
		StripeSessionID: "cs_test_1",
	}

	notifier := &fakeNotifier{}
	svc := &service{repo: repo, notifier: notifier, adminNotify: "admin@example.com"}

	err := svc.handleCheckoutCompleted(context.Background(), &stripe.CheckoutSession{ID: "cs_test_1"})
	require.NoError(t, err)

	require.Len(t, repo.updatedPayments, 1)
	assert.Equal(t, bookings.PaymentStatusDepositPaid, repo.updatedPayments[0].Status)
	assert.Equal(t, bookings.StatusConfirmed.String(), b.Status)
	assert.Equal(t, []string{"priya@example.com", "admin@example.com"}, notifier.depositEmails)
}

func TestHandleCheckoutCompletedIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	b := quotedBooking("123456")
	b.Status = bookings.StatusConfirmed.String()
	repo.bookings[b.ID] = b

	paid := &bookings.Payment{BookingID: b.ID, StripeSessionID: "cs_test_1"}
	paid.MarkDepositPaid()
	repo.payments["cs_test_1"] = paid

	notifier := &fakeNotifier{}
	svc := &service{repo: repo, notifier: notifier}

	err := svc.handleCheckoutCompleted(context.Background(), &stripe.CheckoutSession{ID: "cs_test_1"})
	require.NoError(t, err)

	assert.Empty(t, repo.updatedPayments)
	assert.Empty(t, repo.statusUpdates)
	assert.Empty(t, notifier.depositEmails)
}

func TestHandleCheckoutExpiredMarksFailed(t *testing.T) {
	repo := newFakeRepo()
	repo.payments["cs_test_1"] = &bookings.Payment{
		BookingID:       "123456",
		Status:          bookings.PaymentStatusPending,
		StripeSessionID: "cs_test_1",
	}

	svc := &service{repo: repo}

	err := svc.handleCheckoutExpired(context.Background(), &stripe.CheckoutSession{ID: "cs_test_1"})
	require.NoError(t, err)

	require.Len(t, repo.updatedPayments, 1)
	assert.Equal(t, bookings.PaymentStatusFailed, repo.updatedPayments[0].Status)
	assert.Equal(t, "checkout session expired", repo.updatedPayments[0].FailureReason)
}

func TestHandleCheckoutExpiredUnknownSessionIsNoop(t *testing.T) {
	svc := &service{repo: newFakeRepo()}

	err := svc.handleCheckoutExpired(context.Background(), &stripe.CheckoutSession{ID: "cs_unknown"})
	require.NoError(t, err)
}
