package notifications

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	publishErr error
	published  []*EmailNotification
}

func (p *fakeProducer) PublishNotification(ctx context.Context, notification *EmailNotification) error {
	if p.publishErr != nil {
		return p.publishErr
	}
	p.published = append(p.published, notification)
	return nil
}

func (p *fakeProducer) PublishToDeadLetter(ctx context.Context, notification *EmailNotification) error {
	return nil
}

func (p *fakeProducer) Close() error { return nil }

type fakeEmailSender struct {
	sendErr error
	sent    []*EmailNotification
}

func (s *fakeEmailSender) SendNotification(ctx context.Context, notification *EmailNotification) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, notification)
	return nil
}

func (s *fakeEmailSender) SendHTML(ctx context.Context, to, subject, htmlBody, textBody string) error {
	return nil
}

func quoteNotification() *EmailNotification {
	return NewNotificationBuilder().
		WithType(NotificationTypeQuoteReady).
		WithRecipient("priya@example.com", "Priya Sharma").
		WithBookingContext("123456").
		WithSubject("Your GlamBook quote is ready (ref 123456)").
		Build()
}

func TestPublishEnqueuesWithoutDirectSend(t *testing.T) {
	producer := &fakeProducer{}
	sender := &fakeEmailSender{}
	svc := &EmailNotificationService{producer: producer, emailService: sender}

	n := quoteNotification()
	err := svc.SendNotification(context.Background(), n)
	require.NoError(t, err)

	require.Len(t, producer.published, 1)
	assert.Empty(t, sender.sent)
}

func TestPublishFallsBackToDirectSend(t *testing.T) {
	producer := &fakeProducer{publishErr: errors.New("kafka: broker unreachable")}
	sender := &fakeEmailSender{}
	svc := &EmailNotificationService{producer: producer, emailService: sender}

	n := quoteNotification()
	err := svc.SendNotification(context.Background(), n)
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Same(t, n, sender.sent[0])
	assert.Equal(t, NotificationStatusSent, n.Status)
	assert.NotNil(t, n.SentAt)
}

func TestPublishReportsDoubleFailure(t *testing.T) {
	producer := &fakeProducer{publishErr: errors.New("kafka: broker unreachable")}
	sender := &fakeEmailSender{sendErr: errors.New("smtp: connection refused")}
	svc := &EmailNotificationService{producer: producer, emailService: sender}

	n := quoteNotification()
	err := svc.SendNotification(context.Background(), n)
	require.Error(t, err)
	assert.ErrorContains(t, err, "smtp: connection refused")
	assert.ErrorContains(t, err, "kafka: broker unreachable")
	assert.NotEqual(t, NotificationStatusSent, n.Status)
}

func TestSendQuoteEmailFallsBackToDirectSend(t *testing.T) {
	producer := &fakeProducer{publishErr: errors.New("kafka: broker unreachable")}
	sender := &fakeEmailSender{}
	svc := &EmailNotificationService{producer: producer, emailService: sender}

	err := svc.SendQuoteEmail(context.Background(), "priya@example.com", "Priya Sharma", "123456",
		map[string]interface{}{"booking_ref": "123456"})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	sent := sender.sent[0]
	assert.Equal(t, NotificationTypeQuoteReady, sent.Type)
	assert.Equal(t, "priya@example.com", sent.RecipientEmail)
	assert.Equal(t, NotificationStatusSent, sent.Status)
}
