package notifications

import (
	"context"
	"fmt"
	"sync"

	"glambook/internal/shared/config"
	"glambook/pkg/logger"
)

// NotificationService is the facade the rest of the app talks to: publish an
// email, and manage the lifecycle of the Kafka worker pool behind it.
type NotificationService interface {
	SendNotification(ctx context.Context, notification *EmailNotification) error

	SendQuoteEmail(ctx context.Context, email, name, bookingRef string,
		templateData map[string]interface{}) error
	SendDepositPaidEmail(ctx context.Context, email, name, bookingRef string,
		templateData map[string]interface{}) error

	Start(ctx context.Context) error
	Stop() error
	HealthCheck(ctx context.Context) error
}

type EmailNotificationService struct {
	kafkaCfg     config.KafkaConfig
	producer     NotificationProducer
	consumer     NotificationConsumer
	emailService EmailService

	// State
	isRunning bool
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewEmailNotificationService wires the producer, the SMTP sender and the
// consumer pool. When SMTP is not configured, emails are logged instead of
// sent so local development still exercises the full pipeline.
func NewEmailNotificationService(kafkaCfg config.KafkaConfig, emailCfg config.EmailConfig) (NotificationService, error) {
	var emailService EmailService
	if emailCfg.SMTPHost == "" || emailCfg.SMTPUsername == "" {
		logger.Warn("SMTP not configured, using mock email sender")
		emailService = NewMockEmailService()
	} else {
		smtpService, err := NewSMTPEmailService(NewSMTPConfig(emailCfg))
		if err != nil {
			return nil, fmt.Errorf("failed to create SMTP email service: %w", err)
		}
		emailService = smtpService
	}

	producer, err := NewKafkaNotificationProducer(NewKafkaProducerConfig(kafkaCfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create email producer: %w", err)
	}

	consumer, err := NewKafkaNotificationConsumer(NewConsumerConfig(kafkaCfg), emailService, producer)
	if err != nil {
		return nil, fmt.Errorf("failed to create email consumer: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	logger.Info("Email notification service initialized",
		"topic", kafkaCfg.EmailTopic,
		"group", kafkaCfg.ConsumerGroupID,
	)

	return &EmailNotificationService{
		kafkaCfg:     kafkaCfg,
		producer:     producer,
		consumer:     consumer,
		emailService: emailService,
		isRunning:    false,
		ctx:          ctx,
		cancel:       cancel,
	}, nil
}

func (ens *EmailNotificationService) Start(ctx context.Context) error {
	ens.mu.Lock()
	defer ens.mu.Unlock()

	if ens.isRunning {
		return fmt.Errorf("notification service is already running")
	}

	logger.Info("Starting email notification service")

	if err := ens.consumer.StartConsumers(ens.ctx, ens.kafkaCfg.NumWorkers); err != nil {
		return fmt.Errorf("failed to start consumers: %w", err)
	}

	ens.isRunning = true
	return nil
}

func (ens *EmailNotificationService) Stop() error {
	ens.mu.Lock()
	defer ens.mu.Unlock()

	if !ens.isRunning {
		return fmt.Errorf("notification service is not running")
	}

	logger.Info("Stopping email notification service")

	ens.cancel()

	if err := ens.consumer.Stop(); err != nil {
		logger.Error("Error stopping consumer", "error", err)
	}

	if err := ens.producer.Close(); err != nil {
		logger.Error("Error closing producer", "error", err)
	}

	ens.isRunning = false
	return nil
}

func (ens *EmailNotificationService) SendNotification(ctx context.Context, notification *EmailNotification) error {
	return ens.publish(ctx, notification)
}

// publish enqueues the notification, falling back to a direct send when the
// broker is unreachable. The booking is already durable at this point; losing
// the queue must not lose the email.
func (ens *EmailNotificationService) publish(ctx context.Context, notification *EmailNotification) error {
	if err := ens.producer.PublishNotification(ctx, notification); err != nil {
		logger.Warn("Kafka publish failed, sending email directly",
			"notification_id", notification.ID.String(),
			"type", string(notification.Type),
			"error", err,
		)
		if sendErr := ens.emailService.SendNotification(ctx, notification); sendErr != nil {
			return fmt.Errorf("publish failed (%v) and direct send failed: %w", err, sendErr)
		}
		notification.MarkSent()
	}
	return nil
}

// SendQuoteEmail enqueues the itemized quote email for a new submission.
func (ens *EmailNotificationService) SendQuoteEmail(ctx context.Context, email, name, bookingRef string,
	templateData map[string]interface{}) error {

	notification := NewNotificationBuilder().
		WithType(NotificationTypeQuoteReady).
		WithRecipient(email, name).
		WithBookingContext(bookingRef).
		WithSubject(fmt.Sprintf("Your GlamBook quote is ready (ref %s)", bookingRef)).
		WithTemplateData(templateData).
		Build()

	return ens.publish(ctx, notification)
}

// SendDepositPaidEmail enqueues the confirmation email after a paid deposit.
func (ens *EmailNotificationService) SendDepositPaidEmail(ctx context.Context, email, name, bookingRef string,
	templateData map[string]interface{}) error {

	notification := NewNotificationBuilder().
		WithType(NotificationTypeDepositPaid).
		WithRecipient(email, name).
		WithBookingContext(bookingRef).
		WithSubject(fmt.Sprintf("Booking %s confirmed - deposit received", bookingRef)).
		WithTemplateData(templateData).
		Build()

	return ens.publish(ctx, notification)
}

func (ens *EmailNotificationService) HealthCheck(ctx context.Context) error {
	ens.mu.RLock()
	isRunning := ens.isRunning
	ens.mu.RUnlock()

	if !isRunning {
		return fmt.Errorf("notification service is not running")
	}

	if err := ens.consumer.HealthCheck(ctx); err != nil {
		return fmt.Errorf("consumer health check failed: %w", err)
	}

	return nil
}
