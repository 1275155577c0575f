package notifications

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationBuilderDefaults(t *testing.T) {
	n := NewNotificationBuilder().
		WithType(NotificationTypeQuoteReady).
		WithRecipient("priya@example.com", "Priya Sharma").
		WithBookingContext("123456").
		Build()

	assert.NotEqual(t, "", n.ID.String())
	assert.Equal(t, NotificationTypeQuoteReady, n.Type)
	assert.Equal(t, NotificationPriorityHigh, n.Priority)
	assert.Equal(t, NotificationStatusPending, n.Status)
	assert.Equal(t, 3, n.MaxRetries)
	assert.Equal(t, "123456", n.BookingRef)
}

func TestGetDefaultPriority(t *testing.T) {
	assert.Equal(t, NotificationPriorityHigh, GetDefaultPriority(NotificationTypeQuoteReady))
	assert.Equal(t, NotificationPriorityMedium, GetDefaultPriority(NotificationTypeDepositPaid))
	assert.Equal(t, NotificationPriorityLow, GetDefaultPriority(NotificationTypeBookingCancelled))
	assert.Equal(t, NotificationPriorityMedium, GetDefaultPriority(NotificationType("SOMETHING_ELSE")))
}

func TestGetPartitionKeyPrefersBookingRef(t *testing.T) {
	n := NewNotificationBuilder().
		WithRecipient("priya@example.com", "Priya").
		WithBookingContext("654321").
		Build()
	assert.Equal(t, "654321", n.GetPartitionKey())

	n.BookingRef = ""
	assert.Equal(t, "priya@example.com", n.GetPartitionKey())
}

func TestShouldRetryLifecycle(t *testing.T) {
	n := NewNotificationBuilder().
		WithType(NotificationTypeQuoteReady).
		WithMaxRetries(2).
		Build()

	// pending messages are not retried
	assert.False(t, n.ShouldRetry())

	n.MarkFailed(errors.New("smtp refused"))
	require.NotNil(t, n.LastError)
	assert.Equal(t, "smtp refused", *n.LastError)
	assert.True(t, n.ShouldRetry())

	n.IncrementRetry()
	assert.Equal(t, 1, n.RetryCount)
	assert.Equal(t, NotificationStatusRetrying, n.Status)

	n.MarkFailed(errors.New("smtp refused again"))
	n.IncrementRetry()
	assert.Equal(t, 2, n.RetryCount)
	assert.Equal(t, NotificationStatusExpired, n.Status)
	assert.False(t, n.ShouldRetry())
}

func TestIsExpired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	n := NewNotificationBuilder().WithExpiration(&past).Build()
	assert.True(t, n.IsExpired())

	n = NewNotificationBuilder().WithExpiration(&future).Build()
	assert.False(t, n.IsExpired())

	n = NewNotificationBuilder().Build()
	assert.False(t, n.IsExpired())
}

func TestMarkSent(t *testing.T) {
	n := NewNotificationBuilder().WithType(NotificationTypeDepositPaid).Build()
	n.MarkSent()

	assert.Equal(t, NotificationStatusSent, n.Status)
	require.NotNil(t, n.SentAt)
}

func TestToJSONRoundTrip(t *testing.T) {
	n := NewNotificationBuilder().
		WithType(NotificationTypeQuoteReady).
		WithRecipient("priya@example.com", "Priya Sharma").
		WithSubject("Your GlamBook quote is ready (ref 123456)").
		WithTemplateData(map[string]interface{}{"booking_ref": "123456"}).
		WithBookingContext("123456").
		Build()

	data, err := n.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"booking_ref":"123456"`)
	assert.Contains(t, string(data), `"type":"QUOTE_READY"`)
}
