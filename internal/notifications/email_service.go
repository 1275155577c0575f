package notifications

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"
	"strconv"
	"time"

	"glambook/internal/shared/config"
	"glambook/pkg/logger"
)

// EmailService interface for sending emails
type EmailService interface {
	SendNotification(ctx context.Context, notification *EmailNotification) error
	SendHTML(ctx context.Context, to, subject, htmlBody, textBody string) error
}

// SMTPConfig holds SMTP configuration
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
	Timeout   time.Duration
}

// NewSMTPConfig builds SMTP settings from app config.
func NewSMTPConfig(cfg config.EmailConfig) *SMTPConfig {
	return &SMTPConfig{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUsername,
		Password:  cfg.SMTPPassword,
		FromEmail: cfg.FromEmail,
		FromName:  cfg.FromName,
		UseTLS:    true,
		Timeout:   30 * time.Second,
	}
}

// SMTPEmailService is a real SMTP implementation of the EmailService interface
type SMTPEmailService struct {
	config    *SMTPConfig
	templates map[string]*template.Template
}

// NewSMTPEmailService creates a new SMTP email service
func NewSMTPEmailService(config *SMTPConfig) (*SMTPEmailService, error) {
	if err := validateSMTPConfig(config); err != nil {
		return nil, fmt.Errorf("invalid SMTP configuration: %w", err)
	}

	service := &SMTPEmailService{
		config:    config,
		templates: make(map[string]*template.Template),
	}
	service.loadTemplates()

	return service, nil
}

// validateSMTPConfig validates SMTP configuration
func validateSMTPConfig(config *SMTPConfig) error {
	if config == nil {
		return fmt.Errorf("SMTP config is nil")
	}
	if config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("SMTP port must be between 1 and 65535")
	}
	if config.Username == "" {
		return fmt.Errorf("SMTP username is required")
	}
	if config.Password == "" {
		return fmt.Errorf("SMTP password is required")
	}
	if config.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// SendNotification renders and sends one queued email
func (s *SMTPEmailService) SendNotification(ctx context.Context, notification *EmailNotification) error {
	logger.Debug("Sending email",
		"type", string(notification.Type),
		"recipient", notification.RecipientEmail,
	)

	htmlBody, textBody, err := s.generateContent(notification)
	if err != nil {
		return fmt.Errorf("failed to generate email content: %w", err)
	}

	return s.SendHTML(ctx, notification.RecipientEmail, notification.Subject, htmlBody, textBody)
}

// SendHTML sends an HTML email
func (s *SMTPEmailService) SendHTML(ctx context.Context, to, subject, htmlBody, textBody string) error {
	message := s.buildMessage(to, subject, htmlBody, textBody)

	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	var err error
	if s.config.UseTLS {
		err = s.sendWithSTARTTLS(addr, auth, to, message)
	} else {
		err = smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	}

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.Debug("Email sent", "to", to)
	return nil
}

// sendWithSTARTTLS sends email with STARTTLS encryption (recommended for Gmail)
func (s *SMTPEmailService) sendWithSTARTTLS(addr string, auth smtp.Auth, to string, message []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Quit()

	tlsconfig := &tls.Config{
		InsecureSkipVerify: false,
		ServerName:         s.config.Host,
	}

	if err = client.StartTLS(tlsconfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	if auth != nil {
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err = client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}

	if _, err = w.Write(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return w.Close()
}

// buildMessage creates the email message with proper headers
func (s *SMTPEmailService) buildMessage(to, subject, htmlBody, textBody string) []byte {
	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	headers["To"] = to
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Date"] = time.Now().Format(time.RFC1123Z)

	boundary := "boundary_" + strconv.FormatInt(time.Now().UnixNano(), 10)
	headers["Content-Type"] = fmt.Sprintf("multipart/alternative; boundary=%s", boundary)

	message := ""
	for k, v := range headers {
		message += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	message += "\r\n"

	if textBody != "" {
		message += fmt.Sprintf("--%s\r\n", boundary)
		message += "Content-Type: text/plain; charset=UTF-8\r\n"
		message += "\r\n"
		message += textBody + "\r\n"
	}

	if htmlBody != "" {
		message += fmt.Sprintf("--%s\r\n", boundary)
		message += "Content-Type: text/html; charset=UTF-8\r\n"
		message += "\r\n"
		message += htmlBody + "\r\n"
	}

	message += fmt.Sprintf("--%s--\r\n", boundary)

	return []byte(message)
}

// generateContent renders the email body for a notification type
func (s *SMTPEmailService) generateContent(notification *EmailNotification) (string, string, error) {
	if tmpl, exists := s.templates[string(notification.Type)]; exists {
		var htmlBuf bytes.Buffer
		if err := tmpl.Execute(&htmlBuf, notification.TemplateData); err != nil {
			return "", "", err
		}
		return htmlBuf.String(), s.generateTextContent(notification), nil
	}
	return s.generateDefaultContent(notification)
}

func (s *SMTPEmailService) generateTextContent(notification *EmailNotification) string {
	data := notification.TemplateData

	switch notification.Type {
	case NotificationTypeQuoteReady:
		return fmt.Sprintf(
			"Hi %s,\n\nYour quote is ready. Booking reference: %s.\nLead artist total: $%v\nTeam artist total: $%v\n\nReply to this email or pay your deposit online to confirm.\n\nGlamBook Studio",
			notification.RecipientName,
			notification.BookingRef,
			data["lead_total"],
			data["team_total"],
		)
	case NotificationTypeDepositPaid:
		return fmt.Sprintf(
			"Hi %s,\n\nWe received your deposit of $%v for booking %s. Your appointment is confirmed!\n\nGlamBook Studio",
			notification.RecipientName,
			data["amount"],
			notification.BookingRef,
		)
	default:
		return fmt.Sprintf("Hi %s,\n\n%s\n\nGlamBook Studio", notification.RecipientName, notification.Subject)
	}
}

// generateDefaultContent creates default email content for notification types
func (s *SMTPEmailService) generateDefaultContent(notification *EmailNotification) (string, string, error) {
	data := notification.TemplateData

	switch notification.Type {
	case NotificationTypeQuoteReady:
		htmlBody := fmt.Sprintf(`
			<h2>Your quote is ready</h2>
			<p>Hi %s,</p>
			<p>Thank you for your booking request. Your reference is <strong>%s</strong>.</p>
			<p>Lead artist total: <strong>$%v</strong><br>
			Team artist total: <strong>$%v</strong></p>
			<p>Reply to this email or pay your deposit online to confirm your date.</p>
			<p>GlamBook Studio</p>
		`,
			notification.RecipientName,
			notification.BookingRef,
			data["lead_total"],
			data["team_total"],
		)
		return htmlBody, s.generateTextContent(notification), nil

	case NotificationTypeDepositPaid:
		htmlBody := fmt.Sprintf(`
			<h2>Deposit received</h2>
			<p>Hi %s,</p>
			<p>We received your deposit of <strong>$%v</strong> for booking <strong>%s</strong>.</p>
			<p>Your appointment is confirmed. See you soon!</p>
			<p>GlamBook Studio</p>
		`,
			notification.RecipientName,
			data["amount"],
			notification.BookingRef,
		)
		return htmlBody, s.generateTextContent(notification), nil

	default:
		htmlBody := fmt.Sprintf(`
			<h2>%s</h2>
			<p>Hi %s,</p>
			<p>This is a notification from GlamBook Studio.</p>
		`,
			notification.Subject,
			notification.RecipientName,
		)
		return htmlBody, s.generateTextContent(notification), nil
	}
}

// quoteEmailTemplate is the richer HTML body used when the publisher supplies
// an itemized breakdown for each tier.
const quoteEmailTemplate = `
<h2>Your quote is ready</h2>
<p>Hi {{.client_name}},</p>
<p>Thank you for your booking request. Your reference is <strong>{{.booking_ref}}</strong>.</p>
{{if .lead_lines}}
<h3>Lead Artist &mdash; ${{.lead_total}}</h3>
<ul>
{{range .lead_lines}}<li>{{.description}} &mdash; ${{printf "%.2f" .price}}</li>
{{end}}</ul>
{{end}}
{{if .team_lines}}
<h3>Team Artist &mdash; ${{.team_total}}</h3>
<ul>
{{range .team_lines}}<li>{{.description}} &mdash; ${{printf "%.2f" .price}}</li>
{{end}}</ul>
{{end}}
<p>Subtotals include 13% GST. Reply to this email or pay your deposit online to confirm your date.</p>
<p>GlamBook Studio</p>
`

// loadTemplates parses the built-in email templates
func (s *SMTPEmailService) loadTemplates() {
	tmpl, err := template.New(string(NotificationTypeQuoteReady)).Parse(quoteEmailTemplate)
	if err != nil {
		logger.Error("Failed to parse quote email template", "error", err)
		return
	}
	s.templates[string(NotificationTypeQuoteReady)] = tmpl
	logger.Debug("Email templates loaded")
}

// MockEmailService logs instead of sending, for local development without SMTP.
type MockEmailService struct{}

// NewMockEmailService creates a new mock email service
func NewMockEmailService() *MockEmailService {
	return &MockEmailService{}
}

// SendNotification logs a mock notification
func (s *MockEmailService) SendNotification(ctx context.Context, notification *EmailNotification) error {
	logger.Info("[MOCK] Email notification",
		"type", string(notification.Type),
		"recipient", notification.RecipientEmail,
		"booking_ref", notification.BookingRef,
	)
	return nil
}

// SendHTML logs a mock HTML email
func (s *MockEmailService) SendHTML(ctx context.Context, to, subject, htmlBody, textBody string) error {
	logger.Info("[MOCK] Email", "to", to, "subject", subject)
	return nil
}
