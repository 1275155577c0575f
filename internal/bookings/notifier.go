package bookings

import (
	"context"

	"glambook/internal/notifications"
)

// notificationAdapter bridges the booking service to the email pipeline
// without this package knowing about Kafka or SMTP.
type notificationAdapter struct {
	service notifications.NotificationService
}

// NewQuoteNotifier wraps the notification service as a QuoteNotifier.
func NewQuoteNotifier(service notifications.NotificationService) QuoteNotifier {
	return &notificationAdapter{service: service}
}

func (a *notificationAdapter) PublishQuoteEmail(ctx context.Context, booking *Booking) error {
	return a.service.SendQuoteEmail(ctx, booking.ClientEmail, booking.ClientName, booking.ID, quoteTemplateData(booking))
}

// quoteTemplateData flattens both quotes into the shape the email template
// renders. Line items go in as maps so the structure survives the JSON
// round-trip through the queue.
func quoteTemplateData(booking *Booking) map[string]interface{} {
	leadLines := make([]map[string]interface{}, 0, len(booking.LeadQuote.LineItems))
	for _, li := range booking.LeadQuote.LineItems {
		leadLines = append(leadLines, map[string]interface{}{"description": li.Description, "price": li.Price})
	}
	teamLines := make([]map[string]interface{}, 0, len(booking.TeamQuote.LineItems))
	for _, li := range booking.TeamQuote.LineItems {
		teamLines = append(teamLines, map[string]interface{}{"description": li.Description, "price": li.Price})
	}

	return map[string]interface{}{
		"client_name": booking.ClientName,
		"booking_ref": booking.ID,
		"lead_lines":  leadLines,
		"lead_total":  booking.LeadQuote.Total,
		"team_lines":  teamLines,
		"team_total":  booking.TeamQuote.Total,
	}
}
